package commands

import (
	"context"

	"mapsession/internal/core/domain/model/session"
	"mapsession/internal/core/ports"
)

// UpdatePermissionCommandHandler records a permission event against the
// session. Transitions follow the permission state machine: once a user
// has answered, the session never returns to the unknown status.
type UpdatePermissionCommandHandler struct {
	sessionRepository ports.SessionRepository
}

// NewUpdatePermissionCommandHandler creates a handler for permission
// events.
func NewUpdatePermissionCommandHandler(sessionRepository ports.SessionRepository) UpdatePermissionCommandHandler {
	return UpdatePermissionCommandHandler{
		sessionRepository: sessionRepository,
	}
}

// Handle processes the permission event.
func (h *UpdatePermissionCommandHandler) Handle(ctx context.Context, cmd UpdatePermissionCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return h.sessionRepository.Mutate(ctx, cmd.SessionID(), func(s *session.MapSession) error {
		return s.UpdatePermission(cmd.Status())
	})
}
