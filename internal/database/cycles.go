package database

import (
	"database/sql"
	"fmt"
	"time"
)

// RecordCycle appends a journal entry for a session
func (db *DB) RecordCycle(entry CycleEntry) (int64, error) {
	if entry.RecordedAt.IsZero() {
		entry.RecordedAt = time.Now()
	}

	result, err := db.conn.Exec(`
		INSERT INTO cycles (
			session_id, outcome, active, candidates, target_x, target_y, recorded_at
		) VALUES (?, ?, ?, ?, ?, ?, ?)
	`, entry.SessionID, entry.Outcome, entry.Active, entry.Candidates,
		entry.TargetX, entry.TargetY, entry.RecordedAt)
	if err != nil {
		return 0, fmt.Errorf("failed to insert cycle: %w", err)
	}

	return result.LastInsertId()
}

// ListCycles returns a session's entries in insertion order
func (db *DB) ListCycles(sessionID string) ([]CycleEntry, error) {
	rows, err := db.conn.Query(`
		SELECT id, session_id, outcome, active, candidates, target_x, target_y, recorded_at
		FROM cycles
		WHERE session_id = ?
		ORDER BY id
	`, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to query cycles: %w", err)
	}
	defer rows.Close()

	var entries []CycleEntry
	for rows.Next() {
		var e CycleEntry
		var x, y sql.NullInt64
		if err := rows.Scan(&e.ID, &e.SessionID, &e.Outcome, &e.Active, &e.Candidates, &x, &y, &e.RecordedAt); err != nil {
			return nil, fmt.Errorf("failed to scan cycle: %w", err)
		}
		if x.Valid && y.Valid {
			tx, ty := int(x.Int64), int(y.Int64)
			e.TargetX, e.TargetY = &tx, &ty
		}
		entries = append(entries, e)
	}

	return entries, rows.Err()
}

// CountOutcomes tallies a session's entries by outcome
func (db *DB) CountOutcomes(sessionID string) (map[string]int, error) {
	rows, err := db.conn.Query(`
		SELECT outcome, COUNT(*)
		FROM cycles
		WHERE session_id = ?
		GROUP BY outcome
	`, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to count outcomes: %w", err)
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var outcome string
		var n int
		if err := rows.Scan(&outcome, &n); err != nil {
			return nil, err
		}
		counts[outcome] = n
	}

	return counts, rows.Err()
}
