package internal

import (
	"strings"
	"testing"
)

func TestSanitizeFilename(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		fallback string
		want     string
	}{
		{
			name:     "already safe token is a no-op",
			input:    "use-sqlite",
			fallback: "untitled",
			want:     "use-sqlite",
		},
		{
			name:     "reserved path characters become underscores",
			input:    "a<b>c:d",
			fallback: "untitled",
			want:     "a_b_c_d",
		},
		{
			name:     "slashes and backslashes",
			input:    "path/to\\file",
			fallback: "untitled",
			want:     "path_to_file",
		},
		{
			name:     "whitespace runs collapse to one underscore",
			input:    "Use   SQLite\tfor storage",
			fallback: "untitled",
			want:     "Use_SQLite_for_storage",
		},
		{
			name:     "control characters become underscores",
			input:    "a\x00b\x1fc",
			fallback: "untitled",
			want:     "a_b_c",
		},
		{
			name:     "leading and trailing underscores and dots trimmed",
			input:    "..name_.",
			fallback: "untitled",
			want:     "name",
		},
		{
			name:     "all-reserved input returns fallback",
			input:    `<>:"/\|?*`,
			fallback: "untitled",
			want:     "untitled",
		},
		{
			name:     "empty input returns fallback",
			input:    "",
			fallback: "fallback",
			want:     "fallback",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SanitizeFilename(tt.input, tt.fallback)
			if got != tt.want {
				t.Errorf("SanitizeFilename(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestSanitizeFilename_NoReservedCharsSurvive(t *testing.T) {
	input := "a<b>c:d\"e/f\\g|h?i*j\x00k\x1fl m"
	got := SanitizeFilename(input, "untitled")

	if strings.ContainsAny(got, `<>:"/\|?* `) {
		t.Errorf("SanitizeFilename(%q) = %q still contains reserved characters", input, got)
	}
	for _, r := range got {
		if r < 0x20 {
			t.Errorf("SanitizeFilename(%q) = %q still contains control character %#x", input, got, r)
		}
	}
}
