// Package store persists produced audio to disk. Every save creates a new
// file; artifacts are never reused or cleaned up automatically, so a path
// handed to an agent stays valid for the lifetime of the host's temp dir
// (or until the owner runs the clean command).
package store

import (
	"fmt"
	"os"
)

// Store writes audio bytes somewhere durable and names the result.
type Store interface {
	// Save writes data to a newly created file matching pattern (one "*",
	// os.CreateTemp conventions) and returns its path.
	Save(data []byte, pattern string) (string, error)
}

// FileStore saves artifacts into a single directory.
type FileStore struct {
	// Dir is the target directory; empty means the system temp dir.
	Dir string
}

// NewFileStore creates a FileStore rooted at dir, creating it if needed.
// An empty dir defers to the system temp dir.
func NewFileStore(dir string) (*FileStore, error) {
	if dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create artifact directory %s: %w", dir, err)
		}
	}
	return &FileStore{Dir: dir}, nil
}

// Save writes data to a distinct new file and returns its path. Concurrent
// saves never collide; os.CreateTemp picks unique names.
func (s *FileStore) Save(data []byte, pattern string) (string, error) {
	f, err := os.CreateTemp(s.Dir, pattern)
	if err != nil {
		return "", fmt.Errorf("failed to create artifact file: %w", err)
	}
	defer func() { _ = f.Close() }()

	if _, err := f.Write(data); err != nil {
		return "", fmt.Errorf("failed to write artifact %s: %w", f.Name(), err)
	}
	return f.Name(), nil
}
