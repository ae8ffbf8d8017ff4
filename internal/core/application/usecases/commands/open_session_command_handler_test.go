package commands_test

import (
	"testing"

	"mapsession/internal/adapters/out/memstore"
	"mapsession/internal/core/application/usecases/commands"
	"mapsession/internal/core/domain/model/permission"
	"mapsession/internal/core/domain/model/session"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenSessionCommandHandler_Handle(t *testing.T) {
	t.Run("should create an empty session with the probed permission", func(t *testing.T) {
		ctx := t.Context()
		store := memstore.NewSessionStore()
		mockProvider := new(MockLocationProvider)
		mockProvider.On("QueryPermission", ctx).Return(permission.Granted).Once()

		handler := commands.NewOpenSessionCommandHandler(store, mockProvider)

		cmd, err := commands.NewOpenSessionCommand()
		require.NoError(t, err)
		require.NoError(t, handler.Handle(ctx, cmd))

		created, err := store.Get(ctx, cmd.SessionID())
		require.NoError(t, err)
		assert.Equal(t, session.Empty, created.State())
		assert.Equal(t, permission.Granted, created.Permission())
		mockProvider.AssertExpectations(t)
	})

	t.Run("should start with unknown permission when the probe cannot tell", func(t *testing.T) {
		ctx := t.Context()
		store := memstore.NewSessionStore()
		mockProvider := new(MockLocationProvider)
		mockProvider.On("QueryPermission", ctx).Return(permission.Unknown).Once()

		handler := commands.NewOpenSessionCommandHandler(store, mockProvider)

		cmd, err := commands.NewOpenSessionCommand()
		require.NoError(t, err)
		require.NoError(t, handler.Handle(ctx, cmd))

		created, err := store.Get(ctx, cmd.SessionID())
		require.NoError(t, err)
		assert.Equal(t, permission.Unknown, created.Permission())
	})

	t.Run("should reject an unconstructed command", func(t *testing.T) {
		handler := commands.NewOpenSessionCommandHandler(memstore.NewSessionStore(), new(MockLocationProvider))

		var cmd commands.OpenSessionCommand
		err := handler.Handle(t.Context(), cmd)

		require.ErrorIs(t, err, commands.ErrOpenSessionCommandIsNotConstructed)
	})
}
