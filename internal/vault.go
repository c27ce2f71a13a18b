package internal

import (
	"os"
	"path/filepath"
)

// WriteVaultFile writes an artifact by writing to a temporary file in the
// target directory and renaming it into place. A crash mid-write never
// leaves a truncated artifact behind.
func WriteVaultFile(path string, content []byte) error {
	dir := filepath.Dir(path)

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".tmp*")
	if err != nil {
		return &FileSystemError{Path: path, Op: "write", Err: err}
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(content); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return &FileSystemError{Path: path, Op: "write", Err: err}
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return &FileSystemError{Path: path, Op: "write", Err: err}
	}

	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return &FileSystemError{Path: path, Op: "rename", Err: err}
	}
	return nil
}

// ReadVaultFile reads an existing artifact. Returns ("", nil) when the file
// does not exist yet.
func ReadVaultFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return "", nil
	}
	if err != nil {
		return "", &FileSystemError{Path: path, Op: "read", Err: err}
	}
	return string(data), nil
}
