package internal

import "fmt"

// ParseError represents errors parsing a session payload
type ParseError struct {
	Source string // file path or payload description
	Key    string // offending field, if known
	Err    error
}

func (e *ParseError) Error() string {
	if e.Key != "" {
		return fmt.Sprintf("parse error [%s] %s: %v", e.Source, e.Key, e.Err)
	}
	return fmt.Sprintf("parse error [%s]: %v", e.Source, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// StorageError represents errors accessing the session database
type StorageError struct {
	Path string
	Op   string // "open", "init", "upsert", "query"
	Err  error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage error: %s %s: %v", e.Op, e.Path, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

// FileSystemError represents errors writing vault artifacts
type FileSystemError struct {
	Path string
	Op   string // "read", "write", "rename"
	Err  error
}

func (e *FileSystemError) Error() string {
	return fmt.Sprintf("filesystem error: %s %s: %v", e.Op, e.Path, e.Err)
}

func (e *FileSystemError) Unwrap() error {
	return e.Err
}
