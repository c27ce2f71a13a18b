package internal

import (
	"database/sql"

	_ "modernc.org/sqlite"
)

// OpenDatabase opens (creating if necessary) the sessions database
func OpenDatabase(path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", path+"?_pragma=journal_mode(wal)")
	if err != nil {
		return nil, &StorageError{Path: path, Op: "open", Err: err}
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, &StorageError{Path: path, Op: "open", Err: err}
	}

	return db, nil
}

// InitSchema creates the three tables if absent. Safe to call on every start.
func InitSchema(db *sql.DB) error {
	schema := `
	CREATE TABLE IF NOT EXISTS sessions (
		id          TEXT PRIMARY KEY,
		timestamp   DATETIME,
		project     TEXT,
		event_count INTEGER,
		summary     TEXT
	);

	CREATE TABLE IF NOT EXISTS events (
		id         TEXT PRIMARY KEY,
		session_id TEXT,
		timestamp  DATETIME,
		event_type TEXT,
		content    TEXT,
		metadata   TEXT,
		FOREIGN KEY (session_id) REFERENCES sessions(id)
	);

	CREATE TABLE IF NOT EXISTS skills (
		id           TEXT PRIMARY KEY,
		name         TEXT,
		category     TEXT,
		created_date DATETIME,
		success_rate REAL,
		use_count    INTEGER,
		filepath     TEXT
	);
	`
	if _, err := db.Exec(schema); err != nil {
		return &StorageError{Op: "init", Err: err}
	}
	return nil
}
