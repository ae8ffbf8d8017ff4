package commands_test

import (
	"testing"

	"mapsession/internal/core/application/usecases/commands"
	"mapsession/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/require"
)

func TestNewSelectPointCommand(t *testing.T) {
	t.Run("should create a valid command", func(t *testing.T) {
		cmd, err := commands.NewSelectPointCommand(kernel.NewUUID(), mustTestCoordinate(t, 10, 10))

		require.NoError(t, err)
		require.NoError(t, cmd.Validate())
	})

	t.Run("should reject an invalid session ID", func(t *testing.T) {
		_, err := commands.NewSelectPointCommand(kernel.UUID{}, mustTestCoordinate(t, 10, 10))

		require.Error(t, err)
	})

	t.Run("should reject an unconstructed coordinate", func(t *testing.T) {
		_, err := commands.NewSelectPointCommand(kernel.NewUUID(), kernel.Coordinate{})

		require.Error(t, err)
	})

	t.Run("zero value command is invalid", func(t *testing.T) {
		var cmd commands.SelectPointCommand

		require.ErrorIs(t, cmd.Validate(), commands.ErrSelectPointCommandIsNotConstructed)
	})
}
