package commands

import (
	"context"

	"mapsession/internal/core/domain/model/session"
	"mapsession/internal/core/ports"
)

// ResetSessionCommandHandler clears a session back to its empty state.
// The reset advances the session generation, so any in-flight geocoding
// or routing result started before it is discarded on arrival.
type ResetSessionCommandHandler struct {
	sessionRepository ports.SessionRepository
}

// NewResetSessionCommandHandler creates a handler for session resets.
func NewResetSessionCommandHandler(sessionRepository ports.SessionRepository) ResetSessionCommandHandler {
	return ResetSessionCommandHandler{
		sessionRepository: sessionRepository,
	}
}

// Handle processes the reset.
func (h *ResetSessionCommandHandler) Handle(ctx context.Context, cmd ResetSessionCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return h.sessionRepository.Mutate(ctx, cmd.SessionID(), func(s *session.MapSession) error {
		return s.Reset()
	})
}
