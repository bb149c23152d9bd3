package clock

import (
	"fmt"
	"time"

	"github.com/protomem/time-clock/internal/model"
)

const (
	_timeDisplayLayout = "15 : 04 : 05"
	_timestampLayout   = "2006-01-02T15:04:05.000Z07:00"
)

type Clock interface {
	Now() time.Time
}

type Func func() time.Time

func (f Func) Now() time.Time { return f() }

// System reads the local wall clock.
var System Clock = Func(time.Now)

// Fixed always returns t.
func Fixed(t time.Time) Clock {
	return Func(func() time.Time { return t })
}

func DateKey(t time.Time) model.DateKey {
	return t.Format(model.DateKeyLayout)
}

// WallTime drops seconds, records only keep minutes.
func WallTime(t time.Time) model.WallTime {
	return t.Format(model.WallTimeLayout)
}

func Today(c Clock) model.DateKey {
	return DateKey(c.Now())
}

func ValidDateKey(s string) bool {
	t, err := time.Parse(model.DateKeyLayout, s)
	return err == nil && DateKey(t) == s
}

func ValidWallTime(s string) bool {
	t, err := time.Parse(model.WallTimeLayout, s)
	return err == nil && WallTime(t) == s
}

// Timestamp renders t in UTC with milliseconds, e.g. "2025-05-28T00:00:30.000Z".
func Timestamp(t time.Time) string {
	return t.UTC().Format(_timestampLayout)
}

// DateDisplay renders the ambient date line, e.g. "2025-05-28 (Wednesday)".
func DateDisplay(t time.Time) string {
	return fmt.Sprintf("%s (%s)", DateKey(t), t.Weekday())
}

// TimeDisplay renders the ambient clock line, with seconds.
func TimeDisplay(t time.Time) string {
	return t.Format(_timeDisplayLayout)
}
