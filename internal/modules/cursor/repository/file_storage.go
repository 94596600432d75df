package repository

import (
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/samber/oops"
)

const cursorFileName = "last_entry_id.txt"

// FileStorage implements cursor.Repository using a plain text file
type FileStorage struct {
	path string
	mu   sync.RWMutex
}

// NewFileStorage creates a new file-based cursor repository
func NewFileStorage(basePath string) (Repository, error) {
	if err := os.MkdirAll(basePath, 0755); err != nil {
		return nil, oops.With("base_path", basePath, "context", "failed to create storage directory").Wrap(err)
	}

	path := filepath.Join(basePath, cursorFileName)
	if _, err := os.Stat(path); os.IsNotExist(err) {
		if err := os.WriteFile(path, nil, 0644); err != nil {
			return nil, oops.With("path", path, "context", "failed to create cursor file").Wrap(err)
		}
	}

	return &FileStorage{path: path}, nil
}

// Load returns the persisted entry id, or an empty string when no cursor
// exists yet.
func (s *FileStorage) Load() (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", nil
		}
		return "", oops.With("path", s.path, "context", "failed to read cursor file").Wrap(err)
	}

	return strings.TrimSpace(string(data)), nil
}

// Save overwrites the persisted entry id.
func (s *FileStorage) Save(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.WriteFile(s.path, []byte(id), 0644); err != nil {
		return oops.With("path", s.path, "context", "failed to write cursor file").Wrap(err)
	}

	return nil
}
