package commands

import (
	"errors"

	"mapsession/internal/core/domain/model/kernel"
	"mapsession/internal/pkg/guard"
)

var ErrSelectPointCommandIsNotConstructed = errors.New(
	"SelectPointCommand must be created via NewSelectPointCommand constructor",
)

// SelectPointCommand represents a map click: the user picked a coordinate
// that becomes the next selection in the session's origin/destination
// cycle.
type SelectPointCommand struct { //nolint:recvcheck //using for validation
	sessionID  kernel.UUID
	coordinate kernel.Coordinate

	guard guard.ConstructorGuard
}

// NewSelectPointCommand creates a command to select the clicked point.
func NewSelectPointCommand(sessionID kernel.UUID, coordinate kernel.Coordinate) (SelectPointCommand, error) {
	command := SelectPointCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setSessionID(sessionID),
		command.setCoordinate(coordinate),
	); err != nil {
		return SelectPointCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c SelectPointCommand) Validate() error {
	return c.guard.Validate(ErrSelectPointCommandIsNotConstructed)
}

// SessionID returns the target session identifier.
func (c SelectPointCommand) SessionID() kernel.UUID {
	return c.sessionID
}

// Coordinate returns the clicked map coordinate.
func (c SelectPointCommand) Coordinate() kernel.Coordinate {
	return c.coordinate
}

func (c *SelectPointCommand) setSessionID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.sessionID = id
	return nil
}

func (c *SelectPointCommand) setCoordinate(coordinate kernel.Coordinate) error {
	if err := coordinate.Validate(); err != nil {
		return err
	}

	c.coordinate = coordinate
	return nil
}
