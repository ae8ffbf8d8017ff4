package commands

import (
	"errors"

	"mapsession/internal/core/domain/model/kernel"
	"mapsession/internal/pkg/guard"
)

var ErrComputeRouteCommandIsNotConstructed = errors.New(
	"ComputeRouteCommand must be created via NewComputeRouteCommand constructor",
)

// ComputeRouteCommand represents a request to build the route between the
// session's selected origin and destination.
type ComputeRouteCommand struct { //nolint:recvcheck //using for validation
	sessionID kernel.UUID

	guard guard.ConstructorGuard
}

// NewComputeRouteCommand creates a command to compute the session route.
func NewComputeRouteCommand(sessionID kernel.UUID) (ComputeRouteCommand, error) {
	command := ComputeRouteCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := command.setSessionID(sessionID); err != nil {
		return ComputeRouteCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c ComputeRouteCommand) Validate() error {
	return c.guard.Validate(ErrComputeRouteCommandIsNotConstructed)
}

// SessionID returns the target session identifier.
func (c ComputeRouteCommand) SessionID() kernel.UUID {
	return c.sessionID
}

func (c *ComputeRouteCommand) setSessionID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.sessionID = id
	return nil
}
