// Package filestore persists snapshot files on the local filesystem.
package filestore

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/namastexlabs/automagik-roadmap/internal/domain"
)

// Ensure Store implements domain.SnapshotStore.
var _ domain.SnapshotStore = (*Store)(nil)

const (
	dirPerm  = 0o750
	filePerm = 0o644
)

// Store writes snapshot files atomically.
type Store struct{}

// New creates a new Store.
func New() *Store {
	return &Store{}
}

// Save renders the content through write and replaces the file at path.
// Nothing is written when write fails.
func (s *Store) Save(path string, write func(io.Writer) error) error {
	var buf bytes.Buffer
	if err := write(&buf); err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), dirPerm); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}
	return writeAtomic(path, buf.Bytes(), filePerm)
}

func writeAtomic(path string, content []byte, perm os.FileMode) error {
	tmpPath := path + ".tmp"
	if err := os.WriteFile(tmpPath, content, perm); err != nil {
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("rename temp file: %w", err)
	}
	return nil
}
