package internal

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"
)

// Recognized event types. Anything else is imported but never projected.
const (
	EventDecisionMade = "DecisionMade"
	EventSkillLearned = "SkillLearned"
)

// SessionPayload is the raw session file format produced by the agent runtime
type SessionPayload struct {
	ID        string         `json:"id,omitempty"`
	Timestamp string         `json:"timestamp,omitempty"`
	Project   string         `json:"project,omitempty"`
	Summary   string         `json:"summary,omitempty"`
	Events    []EventPayload `json:"events,omitempty"`
}

// EventPayload is a single raw event within a session payload
type EventPayload struct {
	ID        string                 `json:"id,omitempty"`
	Timestamp string                 `json:"timestamp,omitempty"`
	Type      string                 `json:"type,omitempty"`
	Content   map[string]interface{} `json:"content,omitempty"`
	Metadata  map[string]interface{} `json:"metadata,omitempty"`
}

// Session is a persisted session row
type Session struct {
	ID         string
	Timestamp  string
	Project    string
	EventCount int
	Summary    string
}

// Event is a persisted event row. Content and Metadata hold JSON text; the
// store treats them as opaque.
type Event struct {
	ID        string
	SessionID string
	Timestamp string
	EventType string
	Content   string
	Metadata  string
}

// Skill is a persisted skill row, keyed by the normalized skill name
type Skill struct {
	ID          string
	Name        string
	Category    string
	CreatedDate string
	SuccessRate float64
	UseCount    int
	Filepath    string
}

// DecisionContent is the content shape of a DecisionMade event
type DecisionContent struct {
	Decision               string   `json:"decision"`
	Rationale              string   `json:"rationale"`
	AlternativesConsidered []string `json:"alternatives_considered"`
	ImpactLevel            string   `json:"impact_level"`
}

// SkillContent is the content shape of a SkillLearned event
type SkillContent struct {
	SkillName   string   `json:"skill_name"`
	Category    string   `json:"category"`
	SuccessRate float64  `json:"success_rate"`
	Pattern     string   `json:"pattern"`
	Examples    []string `json:"examples"`
}

// ParseSessionFile reads and parses a session payload from disk
func ParseSessionFile(path string) (*SessionPayload, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &FileSystemError{Path: path, Op: "read", Err: err}
	}
	payload, err := ParseSessionPayload(data)
	if err != nil {
		var perr *ParseError
		if errors.As(err, &perr) {
			perr.Source = path
		}
		return nil, err
	}
	return payload, nil
}

// ParseSessionPayload parses a JSON session payload
func ParseSessionPayload(data []byte) (*SessionPayload, error) {
	var payload SessionPayload
	if err := json.Unmarshal(data, &payload); err != nil {
		return nil, &ParseError{Source: "payload", Err: err}
	}
	return &payload, nil
}

// NormalizeSkillID derives a stable skill identity from its name
func NormalizeSkillID(name string) string {
	return strings.ReplaceAll(strings.ToLower(name), " ", "_")
}

// timestampLayouts are tried in order when parsing stored ISO-8601 strings
var timestampLayouts = []string{
	"2006-01-02T15:04:05.999999999Z07:00",
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05Z07:00",
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// ParseTimestamp parses an ISO-8601 timestamp as written by the agent runtime
func ParseTimestamp(value string) (time.Time, error) {
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized timestamp %q", value)
}

// DatePart returns the calendar-date prefix of an ISO-8601 timestamp. Used
// for decision file names, which key off the raw string rather than a parsed
// time.
func DatePart(timestamp string) string {
	if i := strings.IndexByte(timestamp, 'T'); i >= 0 {
		return timestamp[:i]
	}
	return timestamp
}

// NowISO returns the current wall-clock time in the runtime's ISO-8601 shape
func NowISO() string {
	return time.Now().Format("2006-01-02T15:04:05.000000")
}
