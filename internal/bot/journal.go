package bot

import (
	"jordanella.com/autoscape-go/internal/database"
)

// Journal writes loop events to a database session
type Journal struct {
	db        *database.DB
	sessionID string
}

// NewJournal records into the given session
func NewJournal(db *database.DB, sessionID string) *Journal {
	return &Journal{db: db, sessionID: sessionID}
}

func (j *Journal) Record(rec CycleRecord) error {
	entry := database.CycleEntry{
		SessionID:  j.sessionID,
		Outcome:    string(rec.Outcome),
		Active:     rec.State.Active(),
		Candidates: rec.Candidates,
	}
	if rec.HasTarget {
		x, y := rec.Target.X, rec.Target.Y
		entry.TargetX, entry.TargetY = &x, &y
	}

	_, err := j.db.RecordCycle(entry)
	return err
}
