package database

import (
	"database/sql"
	"fmt"
	"time"
)

// Migration represents a database schema migration
type Migration struct {
	Version     int
	Description string
	Up          func(*sql.Tx) error
}

// migrations is the ordered list of all database migrations
var migrations = []Migration{
	{
		Version:     1,
		Description: "Create schema_version table",
		Up:          migration001Up,
	},
	{
		Version:     2,
		Description: "Create sessions table",
		Up:          migration002Up,
	},
	{
		Version:     3,
		Description: "Create cycles table",
		Up:          migration003Up,
	},
}

// LatestVersion is the schema version after all migrations
func LatestVersion() int {
	return migrations[len(migrations)-1].Version
}

// RunMigrations runs all pending database migrations
func (db *DB) RunMigrations() error {
	currentVersion, err := db.getCurrentVersion()
	if err != nil {
		return fmt.Errorf("failed to get current version: %w", err)
	}

	for _, migration := range migrations {
		if migration.Version <= currentVersion {
			continue
		}

		err := db.ExecTx(func(tx *sql.Tx) error {
			if err := migration.Up(tx); err != nil {
				return fmt.Errorf("migration %d failed: %w", migration.Version, err)
			}

			_, err := tx.Exec(`
				INSERT INTO schema_version (version, description, applied_at)
				VALUES (?, ?, ?)
			`, migration.Version, migration.Description, time.Now())

			return err
		})

		if err != nil {
			return err
		}
	}

	return nil
}

// getCurrentVersion returns the current schema version
func (db *DB) getCurrentVersion() (int, error) {
	var tableExists bool
	err := db.conn.QueryRow(`
		SELECT COUNT(*) > 0
		FROM sqlite_master
		WHERE type='table' AND name='schema_version'
	`).Scan(&tableExists)

	if err != nil {
		return 0, err
	}

	if !tableExists {
		return 0, nil
	}

	var version int
	err = db.conn.QueryRow(`
		SELECT COALESCE(MAX(version), 0)
		FROM schema_version
	`).Scan(&version)

	if err != nil {
		return 0, err
	}

	return version, nil
}

func migration001Up(tx *sql.Tx) error {
	_, err := tx.Exec(`
		CREATE TABLE IF NOT EXISTS schema_version (
			version INTEGER PRIMARY KEY,
			description TEXT NOT NULL,
			applied_at DATETIME NOT NULL
		)
	`)
	return err
}

func migration002Up(tx *sql.Tx) error {
	_, err := tx.Exec(`
		CREATE TABLE sessions (
			id TEXT PRIMARY KEY,
			aspect TEXT NOT NULL,
			target TEXT NOT NULL,
			auto_empty INTEGER NOT NULL DEFAULT 0,
			frame_width INTEGER NOT NULL,
			frame_height INTEGER NOT NULL,
			scale REAL NOT NULL,
			started_at DATETIME NOT NULL,
			ended_at DATETIME,
			status TEXT NOT NULL DEFAULT 'running',
			error_message TEXT
		)
	`)
	return err
}

func migration003Up(tx *sql.Tx) error {
	if _, err := tx.Exec(`
		CREATE TABLE cycles (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			session_id TEXT NOT NULL REFERENCES sessions(id) ON DELETE CASCADE,
			outcome TEXT NOT NULL,
			active INTEGER NOT NULL,
			candidates INTEGER NOT NULL DEFAULT 0,
			target_x INTEGER,
			target_y INTEGER,
			recorded_at DATETIME NOT NULL
		)
	`); err != nil {
		return err
	}

	_, err := tx.Exec(`CREATE INDEX idx_cycles_session ON cycles(session_id, outcome)`)
	return err
}
