package commands

import (
	"errors"

	"mapsession/internal/core/domain/model/kernel"
	"mapsession/internal/pkg/guard"
)

var ErrUseCurrentLocationCommandIsNotConstructed = errors.New(
	"UseCurrentLocationCommand must be created via NewUseCurrentLocationCommand constructor",
)

// UseCurrentLocationCommand represents a request to set the session origin
// from the device's current position.
//
// Confirmed records that the user explicitly approved sharing their
// position for this request; it is required unless the session already
// holds a granted permission. DeviceCoordinate optionally carries a
// position the caller captured itself, bypassing the location provider.
type UseCurrentLocationCommand struct { //nolint:recvcheck //using for validation
	sessionID        kernel.UUID
	confirmed        bool
	deviceCoordinate *kernel.Coordinate

	guard guard.ConstructorGuard
}

// NewUseCurrentLocationCommand creates a command to capture the device
// position as the origin. deviceCoordinate may be nil, in which case the
// handler asks the location provider.
func NewUseCurrentLocationCommand(
	sessionID kernel.UUID, confirmed bool, deviceCoordinate *kernel.Coordinate,
) (UseCurrentLocationCommand, error) {
	command := UseCurrentLocationCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setSessionID(sessionID),
		command.setConfirmed(confirmed),
		command.setDeviceCoordinate(deviceCoordinate),
	); err != nil {
		return UseCurrentLocationCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c UseCurrentLocationCommand) Validate() error {
	return c.guard.Validate(ErrUseCurrentLocationCommandIsNotConstructed)
}

// SessionID returns the target session identifier.
func (c UseCurrentLocationCommand) SessionID() kernel.UUID {
	return c.sessionID
}

// Confirmed reports whether the user approved sharing their position.
func (c UseCurrentLocationCommand) Confirmed() bool {
	return c.confirmed
}

// DeviceCoordinate returns the caller-captured position, nil when the
// provider should be asked instead.
func (c UseCurrentLocationCommand) DeviceCoordinate() *kernel.Coordinate {
	return c.deviceCoordinate
}

func (c *UseCurrentLocationCommand) setSessionID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.sessionID = id
	return nil
}

func (c *UseCurrentLocationCommand) setConfirmed(confirmed bool) error {
	c.confirmed = confirmed
	return nil
}

func (c *UseCurrentLocationCommand) setDeviceCoordinate(coordinate *kernel.Coordinate) error {
	if coordinate == nil {
		return nil
	}

	if err := coordinate.Validate(); err != nil {
		return err
	}

	c.deviceCoordinate = coordinate
	return nil
}
