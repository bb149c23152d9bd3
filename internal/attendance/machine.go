// Package attendance holds the punch-in/punch-out rules of a daily record
// and the view state derived from it.
package attendance

import (
	"github.com/protomem/time-clock/internal/model"
)

type State int

const (
	Unpunched State = iota
	PunchedIn
	PunchedOut
)

func (s State) String() string {
	switch s {
	case Unpunched:
		return "unpunched"
	case PunchedIn:
		return "punched_in"
	case PunchedOut:
		return "punched_out"
	default:
		return "unknown"
	}
}

// StateOf reports the state of rec. A nil record is unpunched.
func StateOf(rec *model.DailyRecord) State {
	switch {
	case rec == nil || !rec.PunchedIn:
		return Unpunched
	case rec.FinishTime == nil:
		return PunchedIn
	default:
		return PunchedOut
	}
}

// PunchIn records the start time. It only applies to an unpunched record and
// reports whether rec changed.
func PunchIn(rec *model.DailyRecord, now model.WallTime) bool {
	if rec == nil || StateOf(rec) != Unpunched {
		return false
	}

	rec.StartTime = &now
	rec.PunchedIn = true

	return true
}

// PunchOut records the finish time. It only applies to a punched-in record
// and reports whether rec changed.
func PunchOut(rec *model.DailyRecord, now model.WallTime) bool {
	if StateOf(rec) != PunchedIn {
		return false
	}

	rec.FinishTime = &now

	return true
}

// Valid reports whether rec satisfies the record invariants.
func Valid(rec model.DailyRecord) bool {
	if rec.FinishTime != nil && (!rec.PunchedIn || rec.StartTime == nil) {
		return false
	}
	if rec.PunchedIn != (rec.StartTime != nil) {
		return false
	}
	return true
}
