package model

type (
	// UserID identifies an employee. Owned by the roster.
	UserID = string

	// DateKey is a local calendar date in the form YYYY-MM-DD.
	DateKey = string

	// WallTime is a local wall-clock time in the form HH:MM.
	WallTime = string
)

const (
	DateKeyLayout  = "2006-01-02"
	WallTimeLayout = "15:04"
)

// DailyRecord is the attendance fact for one user on one date.
// Fields only ever move from unset to set.
type DailyRecord struct {
	StartTime  *WallTime `json:"startTime"`
	FinishTime *WallTime `json:"finishTime"`
	PunchedIn  bool      `json:"punchedIn"`

	// Denormalized at punch time, informational only.
	UserName   string `json:"userName,omitempty"`
	Department string `json:"department,omitempty"`
	Timestamp  string `json:"timestamp,omitempty"`
}

// DailyRecords maps a date to the record of that date.
type DailyRecords map[DateKey]*DailyRecord

// Dataset maps every known user to its daily records.
type Dataset map[UserID]DailyRecords

type Employee struct {
	ID         UserID `json:"id" yaml:"id"`
	Name       string `json:"name" yaml:"name"`
	Department string `json:"department" yaml:"department"`
}
