package commands

import (
	"errors"

	"mapsession/internal/core/domain/model/kernel"
	"mapsession/internal/pkg/guard"
)

var ErrResetSessionCommandIsNotConstructed = errors.New(
	"ResetSessionCommand must be created via NewResetSessionCommand constructor",
)

// ResetSessionCommand represents a request to clear all selections and the
// route of a session, returning it to the empty state.
type ResetSessionCommand struct { //nolint:recvcheck //using for validation
	sessionID kernel.UUID

	guard guard.ConstructorGuard
}

// NewResetSessionCommand creates a command to reset the session.
func NewResetSessionCommand(sessionID kernel.UUID) (ResetSessionCommand, error) {
	command := ResetSessionCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := command.setSessionID(sessionID); err != nil {
		return ResetSessionCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c ResetSessionCommand) Validate() error {
	return c.guard.Validate(ErrResetSessionCommandIsNotConstructed)
}

// SessionID returns the target session identifier.
func (c ResetSessionCommand) SessionID() kernel.UUID {
	return c.sessionID
}

func (c *ResetSessionCommand) setSessionID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.sessionID = id
	return nil
}
