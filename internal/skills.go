package internal

import (
	"encoding/json"
	"path/filepath"

	"github.com/agentkb/memoria/internal/render"
)

// SkillExtractor projects SkillLearned events into per-skill records. The
// sanitized skill name is a stable key: repeated extraction of the same name
// overwrites both the file and the row, with no merge of prior history.
type SkillExtractor struct {
	paths *Paths
}

// NewSkillExtractor creates a new SkillExtractor
func NewSkillExtractor(paths *Paths) *SkillExtractor {
	return &SkillExtractor{paths: paths}
}

// Extract writes one skill file per SkillLearned event in the session,
// upserts the matching skill row, and returns the paths written
func (e *SkillExtractor) Extract(sessionID string) ([]string, error) {
	db, err := OpenDatabase(e.paths.DatabasePath())
	if err != nil {
		return nil, err
	}
	defer db.Close()
	store := NewStorage(db)

	events, err := store.ListEvents(sessionID, EventSkillLearned)
	if err != nil {
		return nil, err
	}

	var written []string
	for _, event := range events {
		var content SkillContent
		if err := json.Unmarshal([]byte(event.Content), &content); err != nil {
			return written, &ParseError{Source: "events", Key: event.ID, Err: err}
		}

		name := content.SkillName
		if name == "" {
			name = "Untitled Skill"
		}
		category := content.Category
		if category == "" {
			category = "general"
		}

		path := filepath.Join(e.paths.SkillsDir(), SanitizeFilename(name, "untitled")+".md")

		note := &render.Skill{
			Name:        name,
			Timestamp:   event.Timestamp,
			Date:        DatePart(event.Timestamp),
			Category:    category,
			SuccessRate: content.SuccessRate,
			Pattern:     content.Pattern,
			Examples:    content.Examples,
		}
		if err := WriteVaultFile(path, []byte(note.String())); err != nil {
			return written, err
		}

		skill := &Skill{
			ID:          NormalizeSkillID(name),
			Name:        name,
			Category:    category,
			CreatedDate: event.Timestamp,
			SuccessRate: content.SuccessRate,
			UseCount:    1,
			Filepath:    path,
		}
		if err := store.UpsertSkill(skill); err != nil {
			return written, err
		}

		PrintSuccess("Extracted skill: " + path)
		written = append(written, path)
	}

	return written, nil
}
