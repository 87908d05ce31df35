// Package storage provides the persistence port for the résumé blob and its
// in-memory, file, and PostgreSQL adapters.
package storage

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jonathan/resume-builder/internal/types"
)

// DefaultKey is the fixed identifier the résumé blob is stored under
const DefaultKey = "ai-resume-data"

// Store persists a single JSON résumé blob under a fixed key.
// Get returns (nil, nil) when nothing has been stored yet; the raw bytes are
// returned unparsed so older schema versions can be migrated by the caller.
type Store interface {
	Get(ctx context.Context) ([]byte, error)
	Set(ctx context.Context, data types.ResumeData) error
}

// StoreError represents a failure reading or writing the backing store
type StoreError struct {
	Op      string
	Key     string
	Message string
	Cause   error
}

func (e *StoreError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("store %s %q: %s: %v", e.Op, e.Key, e.Message, e.Cause)
	}
	return fmt.Sprintf("store %s %q: %s", e.Op, e.Key, e.Message)
}

func (e *StoreError) Unwrap() error {
	return e.Cause
}

func encode(key string, data types.ResumeData) ([]byte, error) {
	b, err := json.Marshal(data)
	if err != nil {
		return nil, &StoreError{Op: "set", Key: key, Message: "failed to marshal resume", Cause: err}
	}
	return b, nil
}
