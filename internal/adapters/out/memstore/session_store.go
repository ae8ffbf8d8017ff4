// Package memstore implements the SessionRepository port as a concurrent
// in-memory store. Sessions are deliberately transient: the service holds
// them only for the lifetime of the interaction.
package memstore

import (
	"context"
	"sync"

	"mapsession/internal/core/domain/model/kernel"
	"mapsession/internal/core/domain/model/session"
	"mapsession/internal/core/ports"
	"mapsession/internal/pkg/errs"
)

type entry struct {
	mu         sync.Mutex
	mapSession *session.MapSession
}

// snapshot copies the aggregate under the entry lock. A shallow copy is
// sufficient: selections and routes are immutable value objects and every
// aggregate mutation replaces their pointers instead of writing through them.
func (e *entry) snapshot() *session.MapSession {
	e.mu.Lock()
	defer e.mu.Unlock()

	clone := *e.mapSession
	return &clone
}

// SessionStore keeps live map sessions in a map guarded by a read-write
// lock, with a per-session mutex serializing mutations so concurrent
// requests against one session apply in a defined order.
type SessionStore struct {
	mu      sync.RWMutex
	entries map[string]*entry
}

// NewSessionStore creates an empty session store.
func NewSessionStore() *SessionStore {
	return &SessionStore{entries: make(map[string]*entry)}
}

var _ ports.SessionRepository = &SessionStore{}

// Add stores a newly created session.
func (s *SessionStore) Add(_ context.Context, mapSession *session.MapSession) error {
	if err := mapSession.Validate(); err != nil {
		return err
	}

	key := mapSession.ID().String()

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.entries[key]; exists {
		return ports.ErrSessionAlreadyExists
	}
	s.entries[key] = &entry{mapSession: mapSession}

	return nil
}

// Get returns a point-in-time snapshot of the session with the given
// identifier. The snapshot is taken under the session's mutation lock, so
// readers never observe a half-applied mutation and never race with writers
// holding the live aggregate.
func (s *SessionStore) Get(_ context.Context, id kernel.UUID) (*session.MapSession, error) {
	s.mu.RLock()
	e, ok := s.entries[id.String()]
	s.mu.RUnlock()

	if !ok {
		return nil, errs.NewObjectNotFoundError("sessionId", id.String())
	}

	return e.snapshot(), nil
}

// Mutate runs fn under the session's mutation lock.
func (s *SessionStore) Mutate(ctx context.Context, id kernel.UUID, fn func(*session.MapSession) error) error {
	s.mu.RLock()
	e, ok := s.entries[id.String()]
	s.mu.RUnlock()

	if !ok {
		return errs.NewObjectNotFoundError("sessionId", id.String())
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	return fn(e.mapSession)
}

// Remove deletes the session; removing an unknown identifier is a no-op.
func (s *SessionStore) Remove(_ context.Context, id kernel.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.entries, id.String())

	return nil
}

// GetAll returns a point-in-time snapshot of every live session. Each
// snapshot is taken under its session's mutation lock; the collection as a
// whole is not atomic across sessions.
func (s *SessionStore) GetAll(_ context.Context) ([]*session.MapSession, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sessions := make([]*session.MapSession, 0, len(s.entries))
	for _, e := range s.entries {
		sessions = append(sessions, e.snapshot())
	}

	return sessions, nil
}
