package commands

import (
	"errors"
	"time"

	"mapsession/internal/pkg/guard"
)

var (
	ErrExpireSessionsCommandIsNotConstructed = errors.New(
		"ExpireSessionsCommand must be created via NewExpireSessionsCommand constructor",
	)
	ErrMaxIdleIsInvalid = errors.New("max idle must be greater than 0")
)

// ExpireSessionsCommand represents a sweep over all live sessions that
// removes the ones idle for longer than the given duration.
type ExpireSessionsCommand struct { //nolint:recvcheck //using for validation
	maxIdle time.Duration

	guard guard.ConstructorGuard
}

// NewExpireSessionsCommand creates a command to expire idle sessions.
func NewExpireSessionsCommand(maxIdle time.Duration) (ExpireSessionsCommand, error) {
	command := ExpireSessionsCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := command.setMaxIdle(maxIdle); err != nil {
		return ExpireSessionsCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c ExpireSessionsCommand) Validate() error {
	return c.guard.Validate(ErrExpireSessionsCommandIsNotConstructed)
}

// MaxIdle returns the idle duration after which a session expires.
func (c ExpireSessionsCommand) MaxIdle() time.Duration {
	return c.maxIdle
}

func (c *ExpireSessionsCommand) setMaxIdle(maxIdle time.Duration) error {
	if maxIdle <= 0 {
		return ErrMaxIdleIsInvalid
	}

	c.maxIdle = maxIdle
	return nil
}
