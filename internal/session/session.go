package session

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"

	"github.com/google/uuid"
	"github.com/jonathan/resume-builder/internal/migration"
	"github.com/jonathan/resume-builder/internal/storage"
	"github.com/jonathan/resume-builder/internal/types"
)

// Recorder observes session mutations. A nil Recorder is allowed.
type Recorder interface {
	RecordMutation(op string, err error)
}

// Options configures a Session
type Options struct {
	Recorder Recorder
	Verbose  bool
}

// Session owns the current ResumeData for one user context. All mutations go
// through Update, which persists the new value before it becomes visible.
type Session struct {
	id    uuid.UUID
	store storage.Store
	opts  Options

	mu   sync.RWMutex
	data types.ResumeData
}

// Load reads the stored blob and normalizes it. Malformed or absent data
// yields an empty résumé; only a failing store returns an error.
func Load(ctx context.Context, store storage.Store, opts Options) (*Session, error) {
	raw, err := store.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load resume: %w", err)
	}

	s := &Session{
		id:    uuid.New(),
		store: store,
		opts:  opts,
		data:  migration.Normalize(raw),
	}
	if opts.Verbose {
		log.Printf("[session %s] Loaded resume (%d bytes stored)", s.id, len(raw))
	}
	return s, nil
}

// ID returns the identifier of this session, used in logs
func (s *Session) ID() uuid.UUID {
	return s.id
}

// Snapshot returns a deep copy of the current résumé
func (s *Session) Snapshot() types.ResumeData {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.data.Clone()
}

// errNoChange lets an update function report that nothing changed, so
// nothing is written
var errNoChange = errors.New("no change")

// Update applies fn to a copy of the current résumé, writes the result
// through to the store, and only then replaces the in-memory value. If fn or
// the store fails, the session keeps its previous value.
func (s *Session) Update(ctx context.Context, op string, fn func(*types.ResumeData) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.data.Clone()
	err := fn(&next)
	if errors.Is(err, errNoChange) {
		return nil
	}
	if err == nil {
		err = s.store.Set(ctx, next)
		if err != nil {
			err = fmt.Errorf("failed to persist %s: %w", op, err)
		}
	}

	if s.opts.Recorder != nil {
		s.opts.Recorder.RecordMutation(op, err)
	}
	if err != nil {
		if s.opts.Verbose {
			log.Printf("[session %s] %s rejected: %v", s.id, op, err)
		}
		return err
	}

	s.data = next
	if s.opts.Verbose {
		log.Printf("[session %s] %s applied", s.id, op)
	}
	return nil
}
