package database

import "time"

// Session status values
const (
	SessionRunning   = "running"
	SessionCompleted = "completed"
	SessionFailed    = "failed"
)

// Session is one process run
type Session struct {
	ID           string
	Aspect       string
	Target       string
	AutoEmpty    bool
	FrameWidth   int
	FrameHeight  int
	Scale        float64
	StartedAt    time.Time
	EndedAt      *time.Time
	Status       string
	ErrorMessage *string
}

// CycleEntry is one journaled loop event
type CycleEntry struct {
	ID         int64
	SessionID  string
	Outcome    string
	Active     bool
	Candidates int
	TargetX    *int
	TargetY    *int
	RecordedAt time.Time
}
