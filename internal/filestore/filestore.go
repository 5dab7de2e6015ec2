package filestore

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// Store persists uploaded bytes and returns an opaque reference string.
type Store interface {
	Save(data []byte, suggestedName string) (string, error)
}

// DiskStore writes files under a base directory, prefixing names with a
// uuid so repeated uploads of the same filename never collide.
type DiskStore struct {
	baseDir string
}

func NewDiskStore(baseDir string) (*DiskStore, error) {
	if err := os.MkdirAll(baseDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create storage directory %s: %w", baseDir, err)
	}
	return &DiskStore{baseDir: baseDir}, nil
}

func (s *DiskStore) Save(data []byte, suggestedName string) (string, error) {
	name := uuid.NewString()
	if suggestedName != "" {
		name = name + "_" + filepath.Base(suggestedName)
	}

	path := filepath.Join(s.baseDir, name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("failed to write %s: %w", path, err)
	}
	return name, nil
}
