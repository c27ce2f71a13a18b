package render

import (
	"fmt"
	"io"
)

// DailySection is one session's entry in a daily note
type DailySection struct {
	Time       string // clock time, HH:MM
	Project    string
	Summary    string
	EventCount int
	SessionID  string
}

// Render writes the section, including its leading separator newline
func (s *DailySection) Render(w io.Writer) error {
	_, err := fmt.Fprintf(w, "\n## %s - %s\n\n%s\n\nEvents: %d | Session ID: `%s`\n",
		s.Time, s.Project, s.Summary, s.EventCount, s.SessionID)
	return err
}

// DailyHeading writes the heading that opens a fresh daily note
func DailyHeading(w io.Writer, date string) error {
	_, err := fmt.Fprintf(w, "# %s\n\n", date)
	return err
}
