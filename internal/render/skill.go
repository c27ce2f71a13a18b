package render

import (
	"fmt"
	"io"
	"strings"
)

// Skill is a skill record, overwritten wholesale on each re-extraction
type Skill struct {
	Name        string
	Timestamp   string
	Date        string // calendar date for the version-history line
	Category    string
	SuccessRate float64
	Pattern     string
	Examples    []string
}

// Render writes the full skill document. Use count is fixed at 1: the
// extractor overwrites rather than accumulates.
func (s *Skill) Render(w io.Writer) error {
	if _, err := fmt.Fprintf(w, "# %s\n\n", s.Name); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w,
		"## Metadata\n- **Created**: %s\n- **Category**: %s\n- **Success Rate**: %.1f%%\n- **Use Count**: 1\n\n",
		s.Timestamp, s.Category, s.SuccessRate*100); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "## Pattern\n%s\n\n", s.Pattern); err != nil {
		return err
	}
	if _, err := io.WriteString(w, "## Examples\n"); err != nil {
		return err
	}
	if err := bullets(w, s.Examples); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "\n\n## Version History\n- v1.0 (%s): initial version\n", s.Date)
	return err
}

// String renders the skill to a string, for callers writing whole files
func (s *Skill) String() string {
	var b strings.Builder
	_ = s.Render(&b)
	return b.String()
}
