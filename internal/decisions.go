package internal

import (
	"encoding/json"
	"fmt"
	"path/filepath"

	"github.com/agentkb/memoria/internal/render"
)

// DecisionExtractor projects DecisionMade events into write-once decision
// records. Each run emits fresh files; re-running over an already-processed
// session duplicates them rather than overwriting.
type DecisionExtractor struct {
	paths *Paths
}

// NewDecisionExtractor creates a new DecisionExtractor
func NewDecisionExtractor(paths *Paths) *DecisionExtractor {
	return &DecisionExtractor{paths: paths}
}

// Extract writes one decision file per DecisionMade event in the session and
// returns the paths written
func (e *DecisionExtractor) Extract(sessionID string) ([]string, error) {
	db, err := OpenDatabase(e.paths.DatabasePath())
	if err != nil {
		return nil, err
	}
	defer db.Close()

	events, err := NewStorage(db).ListEvents(sessionID, EventDecisionMade)
	if err != nil {
		return nil, err
	}

	var written []string
	for _, event := range events {
		var content DecisionContent
		if err := json.Unmarshal([]byte(event.Content), &content); err != nil {
			return written, &ParseError{Source: "events", Key: event.ID, Err: err}
		}

		title := content.Decision
		if title == "" {
			title = "Untitled Decision"
		}
		impact := content.ImpactLevel
		if impact == "" {
			impact = "medium"
		}

		slug := SanitizeFilename(title, "untitled")
		if runes := []rune(slug); len(runes) > 30 {
			slug = string(runes[:30])
		}
		date := DatePart(event.Timestamp)
		name := fmt.Sprintf("%s_%s_%s.md", date, slug, NewFileSuffix())
		path := filepath.Join(e.paths.DecisionsDir(), name)

		note := &render.Decision{
			Title:        title,
			Timestamp:    event.Timestamp,
			Date:         date,
			SessionID:    sessionID,
			Rationale:    content.Rationale,
			Alternatives: content.AlternativesConsidered,
			ImpactLevel:  impact,
		}
		if err := WriteVaultFile(path, []byte(note.String())); err != nil {
			return written, err
		}

		PrintSuccess("Extracted decision: " + path)
		written = append(written, path)
	}

	return written, nil
}
