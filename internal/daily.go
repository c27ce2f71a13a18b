package internal

import (
	"path/filepath"
	"strings"

	"github.com/agentkb/memoria/internal/render"
)

// DailyNoteProjector appends a session summary section to the per-date note
// shared by all sessions on that calendar date
type DailyNoteProjector struct {
	paths *Paths
}

// NewDailyNoteProjector creates a new DailyNoteProjector
func NewDailyNoteProjector(paths *Paths) *DailyNoteProjector {
	return &DailyNoteProjector{paths: paths}
}

// Sync projects the session onto its daily note. An unknown session id is a
// silent no-op. The note is rewritten whole (read, append section, atomic
// replace); concurrent writers for the same date are not coordinated.
func (p *DailyNoteProjector) Sync(sessionID string) error {
	db, err := OpenDatabase(p.paths.DatabasePath())
	if err != nil {
		return err
	}
	defer db.Close()

	session, err := NewStorage(db).GetSession(sessionID)
	if err != nil {
		return err
	}
	if session == nil {
		LogDebug("daily note: session %s not found, skipping", sessionID)
		return nil
	}

	t, err := ParseTimestamp(session.Timestamp)
	if err != nil {
		return &ParseError{Source: "sessions", Key: sessionID, Err: err}
	}
	date := t.Format("2006-01-02")
	notePath := filepath.Join(p.paths.DailyDir(), date+".md")

	existing, err := ReadVaultFile(notePath)
	if err != nil {
		return err
	}

	var doc strings.Builder
	if existing != "" {
		doc.WriteString(existing)
	} else if err := render.DailyHeading(&doc, date); err != nil {
		return err
	}

	section := &render.DailySection{
		Time:       t.Format("15:04"),
		Project:    session.Project,
		Summary:    session.Summary,
		EventCount: session.EventCount,
		SessionID:  session.ID,
	}
	if err := section.Render(&doc); err != nil {
		return err
	}

	if err := WriteVaultFile(notePath, []byte(doc.String())); err != nil {
		return err
	}

	PrintSuccess("Synced daily note: " + notePath)
	return nil
}
