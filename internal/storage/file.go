package storage

import (
	"context"
	"errors"
	"log"
	"os"
	"path/filepath"

	"github.com/jonathan/resume-builder/internal/types"
)

// FileStore keeps the blob as <dir>/<key>.json on the local filesystem
type FileStore struct {
	dir     string
	key     string
	verbose bool
}

// NewFileStore creates a file-backed store. An empty key uses DefaultKey.
func NewFileStore(dir, key string, verbose bool) *FileStore {
	if key == "" {
		key = DefaultKey
	}
	return &FileStore{dir: dir, key: key, verbose: verbose}
}

// Path returns the file the blob is stored in
func (f *FileStore) Path() string {
	return filepath.Join(f.dir, f.key+".json")
}

// Get reads the stored blob. A missing file is not an error.
func (f *FileStore) Get(_ context.Context) ([]byte, error) {
	b, err := os.ReadFile(f.Path())
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, &StoreError{Op: "get", Key: f.key, Message: "failed to read file", Cause: err}
	}
	return b, nil
}

// Set writes the blob through a temp file and rename so readers never see a partial write
func (f *FileStore) Set(_ context.Context, data types.ResumeData) error {
	b, err := encode(f.key, data)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(f.dir, 0755); err != nil {
		return &StoreError{Op: "set", Key: f.key, Message: "failed to create data directory", Cause: err}
	}

	tmp, err := os.CreateTemp(f.dir, f.key+".*.tmp")
	if err != nil {
		return &StoreError{Op: "set", Key: f.key, Message: "failed to create temp file", Cause: err}
	}
	defer func() { _ = os.Remove(tmp.Name()) }()

	if _, err := tmp.Write(b); err != nil {
		_ = tmp.Close()
		return &StoreError{Op: "set", Key: f.key, Message: "failed to write temp file", Cause: err}
	}
	if err := tmp.Close(); err != nil {
		return &StoreError{Op: "set", Key: f.key, Message: "failed to close temp file", Cause: err}
	}
	if err := os.Rename(tmp.Name(), f.Path()); err != nil {
		return &StoreError{Op: "set", Key: f.key, Message: "failed to replace file", Cause: err}
	}

	if f.verbose {
		log.Printf("[storage] Wrote %d bytes to %s", len(b), f.Path())
	}
	return nil
}
