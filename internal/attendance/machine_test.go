package attendance

import (
	"testing"

	"github.com/protomem/time-clock/internal/model"
)

func strPtr(s string) *string { return &s }

func TestPunchInIsAppliedOnce(t *testing.T) {
	var rec model.DailyRecord

	if !PunchIn(&rec, "09:00") {
		t.Fatalf("expected first punch-in to change the record")
	}
	if PunchIn(&rec, "09:30") {
		t.Fatalf("expected second punch-in to be ignored")
	}

	if rec.StartTime == nil || *rec.StartTime != "09:00" {
		t.Fatalf("start time = %v, want 09:00", rec.StartTime)
	}
	if !rec.PunchedIn {
		t.Fatalf("expected record to be punched in")
	}
	if rec.FinishTime != nil {
		t.Fatalf("finish time = %v, want nil", *rec.FinishTime)
	}
}

func TestPunchOutIsAppliedOnce(t *testing.T) {
	rec := model.DailyRecord{StartTime: strPtr("09:00"), PunchedIn: true}

	if !PunchOut(&rec, "18:00") {
		t.Fatalf("expected first punch-out to change the record")
	}
	if PunchOut(&rec, "19:00") {
		t.Fatalf("expected second punch-out to be ignored")
	}
	if rec.FinishTime == nil || *rec.FinishTime != "18:00" {
		t.Fatalf("finish time = %v, want 18:00", rec.FinishTime)
	}
}

func TestPunchOutBeforePunchIn(t *testing.T) {
	var rec model.DailyRecord

	if PunchOut(&rec, "18:00") {
		t.Fatalf("expected punch-out on an unpunched record to be ignored")
	}
	if rec != (model.DailyRecord{}) {
		t.Fatalf("record changed: %+v", rec)
	}
}

func TestPunchInAfterPunchOut(t *testing.T) {
	rec := model.DailyRecord{StartTime: strPtr("09:00"), FinishTime: strPtr("18:00"), PunchedIn: true}

	if PunchIn(&rec, "19:00") {
		t.Fatalf("expected punch-in on a punched-out record to be ignored")
	}
	if PunchOut(&rec, "19:00") {
		t.Fatalf("expected punch-out on a punched-out record to be ignored")
	}
	if *rec.StartTime != "09:00" || *rec.FinishTime != "18:00" {
		t.Fatalf("record changed: start %s finish %s", *rec.StartTime, *rec.FinishTime)
	}
}

func TestNilRecord(t *testing.T) {
	if PunchIn(nil, "09:00") {
		t.Fatalf("expected punch-in on nil record to be ignored")
	}
	if PunchOut(nil, "09:00") {
		t.Fatalf("expected punch-out on nil record to be ignored")
	}
	if got := StateOf(nil); got != Unpunched {
		t.Fatalf("state = %s, want %s", got, Unpunched)
	}
}

func TestInvariantHoldsAfterEveryTransition(t *testing.T) {
	type step struct {
		punchIn bool
		at      string
	}

	sequences := map[string][]step{
		"in-out":        {{true, "09:00"}, {false, "18:00"}},
		"out-in-out":    {{false, "08:00"}, {true, "09:00"}, {false, "18:00"}},
		"in-in-out-out": {{true, "09:00"}, {true, "10:00"}, {false, "18:00"}, {false, "19:00"}},
		"out-out":       {{false, "08:00"}, {false, "09:00"}},
	}

	for name, steps := range sequences {
		t.Run(name, func(t *testing.T) {
			var rec model.DailyRecord
			for i, s := range steps {
				if s.punchIn {
					PunchIn(&rec, s.at)
				} else {
					PunchOut(&rec, s.at)
				}
				if !Valid(rec) {
					t.Fatalf("step %d: invariant broken: %+v", i, rec)
				}
			}
		})
	}
}

func TestStateOf(t *testing.T) {
	tests := []struct {
		name string
		rec  model.DailyRecord
		want State
	}{
		{"fresh", model.DailyRecord{}, Unpunched},
		{"punched in", model.DailyRecord{StartTime: strPtr("09:00"), PunchedIn: true}, PunchedIn},
		{"punched out", model.DailyRecord{StartTime: strPtr("09:00"), FinishTime: strPtr("18:00"), PunchedIn: true}, PunchedOut},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := tt.rec
			if got := StateOf(&rec); got != tt.want {
				t.Fatalf("state = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestValid(t *testing.T) {
	tests := []struct {
		name string
		rec  model.DailyRecord
		want bool
	}{
		{"fresh", model.DailyRecord{}, true},
		{"punched in", model.DailyRecord{StartTime: strPtr("09:00"), PunchedIn: true}, true},
		{"punched out", model.DailyRecord{StartTime: strPtr("09:00"), FinishTime: strPtr("18:00"), PunchedIn: true}, true},
		{"finish without punch-in", model.DailyRecord{FinishTime: strPtr("18:00")}, false},
		{"finish without start", model.DailyRecord{FinishTime: strPtr("18:00"), PunchedIn: true}, false},
		{"start without punch-in", model.DailyRecord{StartTime: strPtr("09:00")}, false},
		{"punch-in without start", model.DailyRecord{PunchedIn: true}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Valid(tt.rec); got != tt.want {
				t.Fatalf("Valid(%+v) = %v, want %v", tt.rec, got, tt.want)
			}
		})
	}
}
