package render

import (
	"fmt"
	"io"
	"strings"
)

// Decision is an immutable decision record
type Decision struct {
	Title        string
	Timestamp    string
	Date         string // calendar date, backlink target for the daily note
	SessionID    string
	Rationale    string
	Alternatives []string
	ImpactLevel  string
}

// Render writes the full decision document
func (d *Decision) Render(w io.Writer) error {
	if _, err := fmt.Fprintf(w, "# %s\n\n", d.Title); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "## Metadata\n- **Date**: %s\n- **Session ID**: `%s`\n\n", d.Timestamp, d.SessionID); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "## Decision\n%s\n\n", d.Title); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "## Rationale\n%s\n\n", d.Rationale); err != nil {
		return err
	}
	if _, err := io.WriteString(w, "## Alternatives Considered\n"); err != nil {
		return err
	}
	if err := bullets(w, d.Alternatives); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "\n\n## Impact Level\n%s\n\n", d.ImpactLevel); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "## Related\n[[%s]]\n", d.Date)
	return err
}

// String renders the decision to a string, for callers writing whole files
func (d *Decision) String() string {
	var b strings.Builder
	_ = d.Render(&b)
	return b.String()
}
