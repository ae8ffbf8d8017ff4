package commands

import (
	"errors"

	"mapsession/internal/core/domain/model/kernel"
	"mapsession/internal/pkg/guard"
)

var ErrOpenSessionCommandIsNotConstructed = errors.New(
	"OpenSessionCommand must be created via NewOpenSessionCommand constructor",
)

// OpenSessionCommand represents a request to start a new map interaction
// session. A unique session ID is generated on construction so the caller
// can read it back after the handler ran.
type OpenSessionCommand struct { //nolint:recvcheck //using for validation
	sessionID kernel.UUID

	guard guard.ConstructorGuard
}

// NewOpenSessionCommand creates a command to open a new session.
func NewOpenSessionCommand() (OpenSessionCommand, error) {
	command := OpenSessionCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := command.setSessionID(kernel.NewUUID()); err != nil {
		return OpenSessionCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c OpenSessionCommand) Validate() error {
	return c.guard.Validate(ErrOpenSessionCommandIsNotConstructed)
}

// SessionID returns the generated session identifier.
func (c OpenSessionCommand) SessionID() kernel.UUID {
	return c.sessionID
}

func (c *OpenSessionCommand) setSessionID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.sessionID = id
	return nil
}
