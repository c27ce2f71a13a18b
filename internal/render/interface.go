// Package render produces the fixed markdown shapes written into the
// knowledge vault: daily-note sections, decision records, and skill records.
package render

import "io"

// Note is implemented by every vault artifact shape
type Note interface {
	Render(w io.Writer) error
}

// bullets writes one markdown list item per line, nothing for an empty list
func bullets(w io.Writer, items []string) error {
	for i, item := range items {
		sep := ""
		if i < len(items)-1 {
			sep = "\n"
		}
		if _, err := io.WriteString(w, "- "+item+sep); err != nil {
			return err
		}
	}
	return nil
}
