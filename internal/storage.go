package internal

import (
	"database/sql"
)

// Storage provides row-level access to the sessions database. All writes use
// replace-on-conflict semantics keyed by primary id.
type Storage struct {
	db *sql.DB
}

// NewStorage creates a new Storage instance over an open database
func NewStorage(db *sql.DB) *Storage {
	return &Storage{db: db}
}

// UpsertSession inserts or wholly replaces a session row
func (s *Storage) UpsertSession(session *Session) error {
	_, err := s.db.Exec(`
		INSERT OR REPLACE INTO sessions (id, timestamp, project, event_count, summary)
		VALUES (?, ?, ?, ?, ?)`,
		session.ID, session.Timestamp, session.Project, session.EventCount, session.Summary)
	if err != nil {
		return &StorageError{Path: "sessions", Op: "upsert", Err: err}
	}
	return nil
}

// UpsertEvent inserts or wholly replaces an event row
func (s *Storage) UpsertEvent(event *Event) error {
	_, err := s.db.Exec(`
		INSERT OR REPLACE INTO events (id, session_id, timestamp, event_type, content, metadata)
		VALUES (?, ?, ?, ?, ?, ?)`,
		event.ID, event.SessionID, event.Timestamp, event.EventType, event.Content, event.Metadata)
	if err != nil {
		return &StorageError{Path: "events", Op: "upsert", Err: err}
	}
	return nil
}

// UpsertSkill inserts or wholly replaces a skill row
func (s *Storage) UpsertSkill(skill *Skill) error {
	_, err := s.db.Exec(`
		INSERT OR REPLACE INTO skills (id, name, category, created_date, success_rate, use_count, filepath)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		skill.ID, skill.Name, skill.Category, skill.CreatedDate, skill.SuccessRate, skill.UseCount, skill.Filepath)
	if err != nil {
		return &StorageError{Path: "skills", Op: "upsert", Err: err}
	}
	return nil
}

// GetSession looks up a session by id. Returns (nil, nil) when absent.
func (s *Storage) GetSession(id string) (*Session, error) {
	var session Session
	err := s.db.QueryRow(`
		SELECT id, timestamp, project, event_count, summary
		FROM sessions WHERE id = ?`, id).
		Scan(&session.ID, &session.Timestamp, &session.Project, &session.EventCount, &session.Summary)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, &StorageError{Path: "sessions", Op: "query", Err: err}
	}
	return &session, nil
}

// ListSessions returns all sessions ordered by timestamp, newest first
func (s *Storage) ListSessions() ([]*Session, error) {
	rows, err := s.db.Query(`
		SELECT id, timestamp, project, event_count, summary
		FROM sessions ORDER BY timestamp DESC`)
	if err != nil {
		return nil, &StorageError{Path: "sessions", Op: "query", Err: err}
	}
	defer rows.Close()

	var sessions []*Session
	for rows.Next() {
		var session Session
		if err := rows.Scan(&session.ID, &session.Timestamp, &session.Project, &session.EventCount, &session.Summary); err != nil {
			return nil, &StorageError{Path: "sessions", Op: "query", Err: err}
		}
		sessions = append(sessions, &session)
	}
	if err := rows.Err(); err != nil {
		return nil, &StorageError{Path: "sessions", Op: "query", Err: err}
	}

	return sessions, nil
}

// ListEvents returns events for a session, optionally filtered by type.
// Ordering follows storage order; callers key off content, not position.
func (s *Storage) ListEvents(sessionID, eventType string) ([]*Event, error) {
	query := `
		SELECT id, session_id, timestamp, event_type, content, metadata
		FROM events WHERE session_id = ?`
	args := []interface{}{sessionID}
	if eventType != "" {
		query += ` AND event_type = ?`
		args = append(args, eventType)
	}

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, &StorageError{Path: "events", Op: "query", Err: err}
	}
	defer rows.Close()

	var events []*Event
	for rows.Next() {
		var event Event
		if err := rows.Scan(&event.ID, &event.SessionID, &event.Timestamp, &event.EventType, &event.Content, &event.Metadata); err != nil {
			return nil, &StorageError{Path: "events", Op: "query", Err: err}
		}
		events = append(events, &event)
	}
	if err := rows.Err(); err != nil {
		return nil, &StorageError{Path: "events", Op: "query", Err: err}
	}

	return events, nil
}

// GetSkill looks up a skill by normalized id. Returns (nil, nil) when absent.
func (s *Storage) GetSkill(id string) (*Skill, error) {
	var skill Skill
	err := s.db.QueryRow(`
		SELECT id, name, category, created_date, success_rate, use_count, filepath
		FROM skills WHERE id = ?`, id).
		Scan(&skill.ID, &skill.Name, &skill.Category, &skill.CreatedDate, &skill.SuccessRate, &skill.UseCount, &skill.Filepath)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, &StorageError{Path: "skills", Op: "query", Err: err}
	}
	return &skill, nil
}

// CountSessions returns the number of imported sessions
func (s *Storage) CountSessions() (int, error) {
	var n int
	if err := s.db.QueryRow(`SELECT COUNT(*) FROM sessions`).Scan(&n); err != nil {
		return 0, &StorageError{Path: "sessions", Op: "query", Err: err}
	}
	return n, nil
}
