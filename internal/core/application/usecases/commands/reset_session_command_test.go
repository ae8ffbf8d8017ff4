package commands_test

import (
	"testing"

	"mapsession/internal/core/application/usecases/commands"
	"mapsession/internal/core/domain/model/kernel"
	"mapsession/internal/core/domain/model/permission"
	"mapsession/internal/core/domain/model/session"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewResetSessionCommand(t *testing.T) {
	t.Run("should create a valid command", func(t *testing.T) {
		cmd, err := commands.NewResetSessionCommand(kernel.NewUUID())

		require.NoError(t, err)
		require.NoError(t, cmd.Validate())
	})

	t.Run("should reject an invalid session ID", func(t *testing.T) {
		_, err := commands.NewResetSessionCommand(kernel.UUID{})

		require.Error(t, err)
	})

	t.Run("zero value command is invalid", func(t *testing.T) {
		var cmd commands.ResetSessionCommand

		require.ErrorIs(t, cmd.Validate(), commands.ErrResetSessionCommandIsNotConstructed)
	})
}

func TestResetSessionCommandHandler_Handle(t *testing.T) {
	t.Run("clears the session back to empty", func(t *testing.T) {
		ctx := t.Context()
		store, mapSession := newStoreWithSession(t, permission.Granted)
		applyClick(t, mapSession, 10, 10, "Origin")
		applyClick(t, mapSession, 20, 20, "Destination")

		handler := commands.NewResetSessionCommandHandler(store)

		cmd, err := commands.NewResetSessionCommand(mapSession.ID())
		require.NoError(t, err)
		require.NoError(t, handler.Handle(ctx, cmd))

		got, err := store.Get(ctx, mapSession.ID())
		require.NoError(t, err)
		assert.Equal(t, session.Empty, got.State())
		assert.Nil(t, got.OriginSelection())
		assert.Nil(t, got.DestinationSelection())
		assert.Equal(t, permission.Granted, got.Permission())
	})

	t.Run("should reject an unconstructed command", func(t *testing.T) {
		store, _ := newStoreWithSession(t, permission.Unknown)
		handler := commands.NewResetSessionCommandHandler(store)

		var cmd commands.ResetSessionCommand
		err := handler.Handle(t.Context(), cmd)

		require.ErrorIs(t, err, commands.ErrResetSessionCommandIsNotConstructed)
	})
}
