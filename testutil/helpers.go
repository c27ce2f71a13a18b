// Package testutil provides fixtures for exercising the import pipeline
// against a throwaway home directory.
package testutil

import (
	"database/sql"
	"os"
	"path/filepath"
	"testing"

	"github.com/agentkb/memoria/internal"
)

// OpenTestDB opens the sessions database for a test home
func OpenTestDB(t *testing.T, paths *internal.Paths) *sql.DB {
	t.Helper()

	db, err := internal.OpenDatabase(paths.DatabasePath())
	if err != nil {
		t.Fatalf("OpenDatabase() error = %v", err)
	}
	return db
}

// WriteSessionFile writes a session payload JSON file and returns its path
func WriteSessionFile(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "session.json")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write session file: %v", err)
	}
	return path
}
