package storage

import (
	"database/sql"
	"fmt"
)

// InitDB initializes the database schema.
// Foreign-key enforcement is per connection in SQLite, so it must come from
// the DSN (_pragma=foreign_keys(ON)) rather than an Exec here, which would
// bind only one pooled connection.
// PRE: db is a valid database connection
// POST: All tables are created, WAL mode enabled
func InitDB(db *sql.DB) error {
	// Enable WAL mode for better concurrency
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		return fmt.Errorf("failed to enable WAL mode: %w", err)
	}

	schema := `
	CREATE TABLE IF NOT EXISTS account (
		id TEXT PRIMARY KEY,
		email TEXT NOT NULL UNIQUE,
		password_hash TEXT NOT NULL DEFAULT '',
		role TEXT NOT NULL,
		created_at TEXT NOT NULL,
		failed_logins INTEGER NOT NULL DEFAULT 0,
		locked_until TEXT
	);

	CREATE TABLE IF NOT EXISTS shooter (
		id TEXT PRIMARY KEY,
		account_id TEXT,
		name TEXT NOT NULL,
		number TEXT NOT NULL UNIQUE,
		club TEXT NOT NULL DEFAULT '',
		province TEXT NOT NULL DEFAULT '',
		status TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS discipline (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		stage_count INTEGER NOT NULL DEFAULT 1,
		display_order INTEGER NOT NULL DEFAULT 0
	);

	CREATE TABLE IF NOT EXISTS competition (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		location TEXT NOT NULL DEFAULT '',
		start_date TEXT NOT NULL,
		end_date TEXT,
		status TEXT NOT NULL,
		created_by TEXT,
		created_at TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS stage (
		id TEXT PRIMARY KEY,
		competition_id TEXT NOT NULL,
		discipline_id TEXT NOT NULL,
		number INTEGER NOT NULL,
		scoring_rounds INTEGER NOT NULL,
		sighter_count INTEGER NOT NULL DEFAULT 0,
		max_score_per_shot INTEGER NOT NULL DEFAULT 5,
		FOREIGN KEY (competition_id) REFERENCES competition(id),
		FOREIGN KEY (discipline_id) REFERENCES discipline(id)
	);

	CREATE TABLE IF NOT EXISTS team (
		id TEXT PRIMARY KEY,
		competition_id TEXT NOT NULL,
		discipline_id TEXT NOT NULL,
		name TEXT NOT NULL,
		province TEXT NOT NULL DEFAULT '',
		FOREIGN KEY (competition_id) REFERENCES competition(id),
		FOREIGN KEY (discipline_id) REFERENCES discipline(id)
	);

	CREATE TABLE IF NOT EXISTS registration (
		id TEXT PRIMARY KEY,
		competition_id TEXT NOT NULL,
		shooter_id TEXT NOT NULL,
		discipline_id TEXT NOT NULL,
		team_id TEXT,
		age_classification TEXT NOT NULL,
		FOREIGN KEY (competition_id) REFERENCES competition(id),
		FOREIGN KEY (shooter_id) REFERENCES shooter(id),
		FOREIGN KEY (discipline_id) REFERENCES discipline(id)
	);

	CREATE TABLE IF NOT EXISTS stage_score (
		id TEXT PRIMARY KEY,
		registration_id TEXT NOT NULL,
		stage_id TEXT NOT NULL,
		sighter_mode TEXT NOT NULL,
		total_score REAL NOT NULL DEFAULT 0,
		x_count INTEGER NOT NULL DEFAULT 0,
		v_count INTEGER NOT NULL DEFAULT 0,
		is_dnf INTEGER NOT NULL DEFAULT 0,
		is_dq INTEGER NOT NULL DEFAULT 0,
		shots TEXT NOT NULL DEFAULT '[]',
		version INTEGER NOT NULL DEFAULT 1,
		submitted_at TEXT NOT NULL,
		verified_at TEXT,
		verified_by TEXT,
		UNIQUE (registration_id, stage_id),
		FOREIGN KEY (registration_id) REFERENCES registration(id),
		FOREIGN KEY (stage_id) REFERENCES stage(id)
	);

	CREATE TABLE IF NOT EXISTS article (
		id TEXT PRIMARY KEY,
		title TEXT NOT NULL,
		body TEXT NOT NULL,
		status TEXT NOT NULL,
		author_id TEXT,
		created_at TEXT NOT NULL,
		published_at TEXT
	);
	`

	if _, err := db.Exec(schema); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}
