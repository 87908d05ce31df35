package storage

import (
	"context"
	"sync"

	"github.com/jonathan/resume-builder/internal/types"
)

// MemoryStore keeps the blob in process memory. It is used by tests and by
// the CLI when no durable store is configured.
type MemoryStore struct {
	mu   sync.RWMutex
	raw  []byte
	sets int
}

// NewMemoryStore creates an empty in-memory store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// NewMemoryStoreWith creates an in-memory store pre-seeded with a raw blob
func NewMemoryStoreWith(raw []byte) *MemoryStore {
	return &MemoryStore{raw: append([]byte(nil), raw...)}
}

// Get returns a copy of the stored blob, or nil if nothing is stored
func (m *MemoryStore) Get(_ context.Context) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.raw == nil {
		return nil, nil
	}
	return append([]byte(nil), m.raw...), nil
}

// Set replaces the stored blob
func (m *MemoryStore) Set(_ context.Context, data types.ResumeData) error {
	b, err := encode(DefaultKey, data)
	if err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.raw = b
	m.sets++
	return nil
}

// Writes reports how many times Set has succeeded
func (m *MemoryStore) Writes() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.sets
}
