package commands

import (
	"errors"

	"mapsession/internal/core/domain/model/kernel"
	"mapsession/internal/core/domain/model/permission"
	"mapsession/internal/pkg/guard"
)

var ErrUpdatePermissionCommandIsNotConstructed = errors.New(
	"UpdatePermissionCommand must be created via NewUpdatePermissionCommand constructor",
)

// UpdatePermissionCommand represents an explicit geolocation permission
// event reported by the client (the user granted or revoked access in the
// browser or device settings).
type UpdatePermissionCommand struct { //nolint:recvcheck //using for validation
	sessionID kernel.UUID
	status    permission.Status

	guard guard.ConstructorGuard
}

// NewUpdatePermissionCommand creates a command to record a permission
// event.
func NewUpdatePermissionCommand(
	sessionID kernel.UUID, status permission.Status,
) (UpdatePermissionCommand, error) {
	command := UpdatePermissionCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setSessionID(sessionID),
		command.setStatus(status),
	); err != nil {
		return UpdatePermissionCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdatePermissionCommand) Validate() error {
	return c.guard.Validate(ErrUpdatePermissionCommandIsNotConstructed)
}

// SessionID returns the target session identifier.
func (c UpdatePermissionCommand) SessionID() kernel.UUID {
	return c.sessionID
}

// Status returns the reported permission status.
func (c UpdatePermissionCommand) Status() permission.Status {
	return c.status
}

func (c *UpdatePermissionCommand) setSessionID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.sessionID = id
	return nil
}

func (c *UpdatePermissionCommand) setStatus(status permission.Status) error {
	if err := status.Validate(); err != nil {
		return err
	}

	c.status = status
	return nil
}
