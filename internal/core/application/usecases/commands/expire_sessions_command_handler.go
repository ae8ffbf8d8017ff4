package commands

import (
	"context"
	"time"

	"mapsession/internal/core/ports"
)

// ExpireSessionsCommandHandler removes sessions that saw no activity for
// longer than the command's idle limit. Sessions hold no durable state,
// so expiry is simply forgetting them.
type ExpireSessionsCommandHandler struct {
	sessionRepository ports.SessionRepository
}

// NewExpireSessionsCommandHandler creates a handler for the expiry sweep.
func NewExpireSessionsCommandHandler(sessionRepository ports.SessionRepository) ExpireSessionsCommandHandler {
	return ExpireSessionsCommandHandler{
		sessionRepository: sessionRepository,
	}
}

// Handle runs one sweep and returns the number of sessions removed.
func (h *ExpireSessionsCommandHandler) Handle(ctx context.Context, cmd ExpireSessionsCommand) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	sessions, err := h.sessionRepository.GetAll(ctx)
	if err != nil {
		return 0, err
	}

	deadline := time.Now().Add(-cmd.MaxIdle())
	removed := 0

	for _, s := range sessions {
		if s.LastActivity().After(deadline) {
			continue
		}

		if err := h.sessionRepository.Remove(ctx, s.ID()); err != nil {
			return removed, err
		}
		removed++
	}

	return removed, nil
}
