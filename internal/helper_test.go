package internal

import (
	"database/sql"
	"os"
	"path/filepath"
	"testing"
)

// newTestPaths creates an initialized memoria home in a temp directory
func newTestPaths(t *testing.T) *Paths {
	t.Helper()

	paths, err := ResolvePaths(t.TempDir())
	if err != nil {
		t.Fatalf("ResolvePaths() error = %v", err)
	}
	if err := paths.EnsureDirs(); err != nil {
		t.Fatalf("EnsureDirs() error = %v", err)
	}

	db := openTestDB(t, paths)
	defer db.Close()
	if err := InitSchema(db); err != nil {
		t.Fatalf("InitSchema() error = %v", err)
	}

	return paths
}

func openTestDB(t *testing.T, paths *Paths) *sql.DB {
	t.Helper()

	db, err := OpenDatabase(paths.DatabasePath())
	if err != nil {
		t.Fatalf("OpenDatabase() error = %v", err)
	}
	return db
}

func writeTempFile(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "session.json")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write temp file: %v", err)
	}
	return path
}
