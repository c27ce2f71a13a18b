package internal

import (
	"strings"
	"testing"
)

func TestImporter_Import_Defaults(t *testing.T) {
	paths := newTestPaths(t)

	payload := &SessionPayload{
		ID:        "s1",
		Timestamp: "2024-01-15T10:30:00",
		Events: []EventPayload{
			{Type: "Note"},
		},
	}

	sessionID, err := NewImporter(paths).Import(payload)
	if err != nil {
		t.Fatalf("Import() error = %v", err)
	}
	if sessionID != "s1" {
		t.Errorf("session id = %q, want supplied id", sessionID)
	}

	db := openTestDB(t, paths)
	defer db.Close()
	store := NewStorage(db)

	session, err := store.GetSession("s1")
	if err != nil {
		t.Fatalf("GetSession() error = %v", err)
	}
	if session == nil {
		t.Fatal("session row not written")
	}
	if session.Project != "default" {
		t.Errorf("Project = %q, want default", session.Project)
	}
	if session.EventCount != 1 {
		t.Errorf("EventCount = %d, want recomputed 1", session.EventCount)
	}

	events, err := store.ListEvents("s1", "")
	if err != nil {
		t.Fatalf("ListEvents() error = %v", err)
	}
	if len(events) != 1 {
		t.Fatalf("len(events) = %d, want 1", len(events))
	}
	if !strings.HasPrefix(events[0].ID, "evt_") {
		t.Errorf("generated event id = %q, want evt_ prefix", events[0].ID)
	}
	if events[0].Content != "{}" {
		t.Errorf("absent content stored as %q, want empty object", events[0].Content)
	}
	if events[0].Metadata != "{}" {
		t.Errorf("absent metadata stored as %q, want empty object", events[0].Metadata)
	}
}

func TestImporter_Import_FallbackSessionID(t *testing.T) {
	paths := newTestPaths(t)

	sessionID, err := NewImporter(paths).Import(&SessionPayload{})
	if err != nil {
		t.Fatalf("Import() error = %v", err)
	}
	if sessionID == "" {
		t.Fatal("fallback session id is empty")
	}
	if !strings.Contains(sessionID, ".") {
		t.Errorf("fallback id = %q, want epoch-seconds decimal string", sessionID)
	}

	db := openTestDB(t, paths)
	defer db.Close()
	session, err := NewStorage(db).GetSession(sessionID)
	if err != nil {
		t.Fatalf("GetSession() error = %v", err)
	}
	if session == nil {
		t.Fatal("session row not written under fallback id")
	}
	if session.Timestamp == "" {
		t.Error("missing timestamp should default to current wall clock")
	}
}

func TestImporter_Reimport_ReplacesSessionAccumulatesEvents(t *testing.T) {
	paths := newTestPaths(t)
	importer := NewImporter(paths)

	first := &SessionPayload{
		ID:        "s1",
		Timestamp: "2024-01-15T10:30:00",
		Summary:   "original",
		Events: []EventPayload{
			{ID: "e1", Type: "Note"},
			{ID: "e2", Type: "Note"},
			{ID: "e3", Type: "Note"},
		},
	}
	if _, err := importer.Import(first); err != nil {
		t.Fatalf("Import() error = %v", err)
	}

	second := &SessionPayload{
		ID:        "s1",
		Timestamp: "2024-01-15T10:30:00",
		Summary:   "updated",
		Events: []EventPayload{
			{ID: "e4", Type: "Note"},
		},
	}
	if _, err := importer.Import(second); err != nil {
		t.Fatalf("re-Import() error = %v", err)
	}

	db := openTestDB(t, paths)
	defer db.Close()
	store := NewStorage(db)

	n, err := store.CountSessions()
	if err != nil {
		t.Fatalf("CountSessions() error = %v", err)
	}
	if n != 1 {
		t.Errorf("CountSessions() = %d, want exactly 1 after re-import", n)
	}

	session, err := store.GetSession("s1")
	if err != nil {
		t.Fatalf("GetSession() error = %v", err)
	}
	if session.Summary != "updated" {
		t.Errorf("Summary = %q, want replaced value", session.Summary)
	}

	// Events accumulate: the original three survive alongside the new one
	events, err := store.ListEvents("s1", "")
	if err != nil {
		t.Fatalf("ListEvents() error = %v", err)
	}
	if len(events) != 4 {
		t.Errorf("len(events) = %d, want 4 (3 original + 1 new)", len(events))
	}
	seen := make(map[string]bool)
	for _, e := range events {
		seen[e.ID] = true
	}
	for _, id := range []string{"e1", "e2", "e3"} {
		if !seen[id] {
			t.Errorf("original event %s missing after re-import", id)
		}
	}
}

func TestImporter_ImportFile(t *testing.T) {
	paths := newTestPaths(t)

	path := writeTempFile(t, `{"id":"s-file","timestamp":"2024-01-15T10:30:00","project":"demo","events":[]}`)
	sessionID, err := NewImporter(paths).ImportFile(path)
	if err != nil {
		t.Fatalf("ImportFile() error = %v", err)
	}
	if sessionID != "s-file" {
		t.Errorf("session id = %q, want s-file", sessionID)
	}
}

func TestImporter_ImportFile_Malformed(t *testing.T) {
	paths := newTestPaths(t)

	path := writeTempFile(t, "not json at all")
	if _, err := NewImporter(paths).ImportFile(path); err == nil {
		t.Fatal("ImportFile() expected error for malformed payload")
	}
}

func TestImporter_ImportFile_Missing(t *testing.T) {
	paths := newTestPaths(t)

	if _, err := NewImporter(paths).ImportFile("/nonexistent/session.json"); err == nil {
		t.Fatal("ImportFile() expected error for missing file")
	}
}
