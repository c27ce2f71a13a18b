package internal

import (
	"encoding/json"
	"fmt"
	"time"
)

// Importer parses session payloads and persists them into the relational
// store. It is the only writer of session and event rows.
type Importer struct {
	paths *Paths
}

// NewImporter creates a new Importer
func NewImporter(paths *Paths) *Importer {
	return &Importer{paths: paths}
}

// ImportFile imports a session payload file and returns the resolved session
// id, the handle for all subsequent projection steps
func (i *Importer) ImportFile(path string) (string, error) {
	payload, err := ParseSessionFile(path)
	if err != nil {
		return "", err
	}
	return i.Import(payload)
}

// Import persists one session row and its event rows. Re-importing the same
// session id replaces the session row wholesale; events accumulate by id and
// are never deleted here. There is no all-or-nothing boundary: a failure
// mid-loop leaves earlier writes committed.
func (i *Importer) Import(payload *SessionPayload) (string, error) {
	db, err := OpenDatabase(i.paths.DatabasePath())
	if err != nil {
		return "", err
	}
	defer db.Close()
	store := NewStorage(db)

	sessionID := payload.ID
	if sessionID == "" {
		// Wall-clock fallback; not stable across runs. Callers needing
		// idempotent re-import must supply an id.
		sessionID = fallbackSessionID(time.Now())
		LogWarn("session payload has no id, using fallback %s", sessionID)
	}

	timestamp := payload.Timestamp
	if timestamp == "" {
		timestamp = NowISO()
	}

	project := payload.Project
	if project == "" {
		project = "default"
	}

	session := &Session{
		ID:         sessionID,
		Timestamp:  timestamp,
		Project:    project,
		EventCount: len(payload.Events),
		Summary:    payload.Summary,
	}
	if err := store.UpsertSession(session); err != nil {
		return "", err
	}

	for _, ev := range payload.Events {
		eventID := ev.ID
		if eventID == "" {
			eventID = NewEventID()
		}

		content, err := marshalOpaque(ev.Content)
		if err != nil {
			return "", &ParseError{Source: "payload", Key: eventID, Err: err}
		}
		metadata, err := marshalOpaque(ev.Metadata)
		if err != nil {
			return "", &ParseError{Source: "payload", Key: eventID, Err: err}
		}

		event := &Event{
			ID:        eventID,
			SessionID: sessionID,
			Timestamp: ev.Timestamp,
			EventType: ev.Type,
			Content:   content,
			Metadata:  metadata,
		}
		if err := store.UpsertEvent(event); err != nil {
			return "", err
		}
	}

	LogDebug("imported session %s with %d event(s)", sessionID, len(payload.Events))
	return sessionID, nil
}

// marshalOpaque serializes a structured payload for opaque storage. Absent
// payloads persist as an empty object, not null.
func marshalOpaque(m map[string]interface{}) (string, error) {
	if m == nil {
		m = map[string]interface{}{}
	}
	data, err := json.Marshal(m)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func fallbackSessionID(now time.Time) string {
	return fmt.Sprintf("%.6f", float64(now.UnixMicro())/1e6)
}
