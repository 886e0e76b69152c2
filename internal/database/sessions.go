package database

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// StartSession inserts a running session and returns it with a fresh id
func (db *DB) StartSession(s Session) (*Session, error) {
	s.ID = uuid.NewString()
	s.StartedAt = time.Now()
	s.Status = SessionRunning
	s.EndedAt = nil
	s.ErrorMessage = nil

	err := db.ExecTx(func(tx *sql.Tx) error {
		_, err := tx.Exec(`
			INSERT INTO sessions (
				id, aspect, target, auto_empty, frame_width, frame_height,
				scale, started_at, status
			) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		`, s.ID, s.Aspect, s.Target, s.AutoEmpty, s.FrameWidth, s.FrameHeight,
			s.Scale, s.StartedAt, s.Status)
		if err != nil {
			return fmt.Errorf("failed to insert session: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &s, nil
}

// CompleteSession marks a session as ended normally
func (db *DB) CompleteSession(id string) error {
	return db.endSession(id, SessionCompleted, nil)
}

// FailSession marks a session as ended by a fatal error
func (db *DB) FailSession(id string, errorMessage string) error {
	return db.endSession(id, SessionFailed, &errorMessage)
}

func (db *DB) endSession(id, status string, errorMessage *string) error {
	return db.ExecTx(func(tx *sql.Tx) error {
		result, err := tx.Exec(`
			UPDATE sessions
			SET ended_at = ?,
				status = ?,
				error_message = ?
			WHERE id = ?
		`, time.Now(), status, errorMessage, id)
		if err != nil {
			return err
		}

		n, err := result.RowsAffected()
		if err != nil {
			return err
		}
		if n == 0 {
			return fmt.Errorf("session %s not found", id)
		}
		return nil
	})
}

// GetSession retrieves a session by id
func (db *DB) GetSession(id string) (*Session, error) {
	var s Session
	var endedAt sql.NullTime
	var errorMessage sql.NullString

	err := db.conn.QueryRow(`
		SELECT id, aspect, target, auto_empty, frame_width, frame_height,
			scale, started_at, ended_at, status, error_message
		FROM sessions
		WHERE id = ?
	`, id).Scan(
		&s.ID, &s.Aspect, &s.Target, &s.AutoEmpty, &s.FrameWidth, &s.FrameHeight,
		&s.Scale, &s.StartedAt, &endedAt, &s.Status, &errorMessage,
	)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("session %s not found", id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get session: %w", err)
	}

	if endedAt.Valid {
		s.EndedAt = &endedAt.Time
	}
	if errorMessage.Valid {
		s.ErrorMessage = &errorMessage.String
	}

	return &s, nil
}
