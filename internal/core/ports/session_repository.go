// Package ports defines the driven-side interfaces of the map session
// service. These interfaces establish contracts between the application core
// and infrastructure adapters, enabling dependency inversion and testability.
package ports

import (
	"context"
	"errors"

	"mapsession/internal/core/domain/model/kernel"
	"mapsession/internal/core/domain/model/session"
)

// ErrSessionAlreadyExists is returned when adding a session whose identifier
// is already present in the store.
var ErrSessionAlreadyExists = errors.New("session already exists")

// SessionRepository defines the in-memory storage contract for map session
// aggregates. Sessions are transient: they live for the duration of the
// interaction and are never written to durable storage.
//
// Concurrent access contract:
//   - Add, Get, Remove and GetAll may be called from any goroutine.
//   - Mutate serializes all mutations of a single session. Handlers that
//     modify a session must do so inside Mutate.
//   - Get and GetAll return point-in-time snapshots, detached from the
//     stored aggregate; mutating a snapshot has no effect on the store.
type SessionRepository interface {
	// Add stores a newly created session aggregate.
	// Returns ErrSessionAlreadyExists if the identifier is taken.
	Add(ctx context.Context, mapSession *session.MapSession) error

	// Get retrieves a point-in-time snapshot of a session by its unique
	// identifier. Returns an object-not-found error when the session does
	// not exist or has been expired.
	Get(ctx context.Context, id kernel.UUID) (*session.MapSession, error)

	// Mutate runs fn against the session with the given identifier while
	// holding that session's mutation lock. Mutations of different sessions
	// proceed in parallel; mutations of the same session are serialized.
	// The error returned by fn is passed through unchanged.
	Mutate(ctx context.Context, id kernel.UUID, fn func(*session.MapSession) error) error

	// Remove deletes a session from the store. Removing an unknown
	// identifier is not an error.
	Remove(ctx context.Context, id kernel.UUID) error

	// GetAll returns a point-in-time snapshot of every live session.
	// Used by the expiry sweeper and the active-sessions query.
	GetAll(ctx context.Context) ([]*session.MapSession, error)
}
