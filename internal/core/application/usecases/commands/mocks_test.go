package commands_test

import (
	"context"
	"testing"

	"mapsession/internal/adapters/out/memstore"
	"mapsession/internal/core/domain/model/kernel"
	"mapsession/internal/core/domain/model/permission"
	"mapsession/internal/core/domain/model/session"
	"mapsession/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// Mock implementations for the outbound ports. The session store itself is
// exercised through the real in-memory implementation: Mutate takes
// closures, and the real store is the simpler and stricter double.
type MockGeocoder struct {
	mock.Mock
}

func (m *MockGeocoder) ResolveAddress(ctx context.Context, coordinate kernel.Coordinate) ports.Address {
	args := m.Called(ctx, coordinate)
	return args.Get(0).(ports.Address)
}

type MockRouter struct {
	mock.Mock
}

func (m *MockRouter) ComputeRoute(
	ctx context.Context, origin, destination kernel.Coordinate,
) (session.RouteResult, error) {
	args := m.Called(ctx, origin, destination)
	return args.Get(0).(session.RouteResult), args.Error(1)
}

type MockLocationProvider struct {
	mock.Mock
}

func (m *MockLocationProvider) QueryPermission(ctx context.Context) permission.Status {
	args := m.Called(ctx)
	return args.Get(0).(permission.Status)
}

func (m *MockLocationProvider) CurrentPosition(ctx context.Context) (kernel.Coordinate, error) {
	args := m.Called(ctx)
	return args.Get(0).(kernel.Coordinate), args.Error(1)
}

func newStoreWithSession(t *testing.T, status permission.Status) (*memstore.SessionStore, *session.MapSession) {
	t.Helper()

	store := memstore.NewSessionStore()
	mapSession, err := session.NewMapSession(kernel.NewUUID(), status)
	require.NoError(t, err)
	require.NoError(t, store.Add(t.Context(), mapSession))

	return store, mapSession
}

func mustTestCoordinate(t *testing.T, lat, lon float64) kernel.Coordinate {
	t.Helper()

	coordinate, err := kernel.NewCoordinate(lat, lon)
	require.NoError(t, err)
	return coordinate
}

func applyClick(t *testing.T, s *session.MapSession, lat, lon float64, address string) {
	t.Helper()

	coordinate := mustTestCoordinate(t, lat, lon)
	role, generation, err := s.StartClickSelection(coordinate)
	require.NoError(t, err)

	selection, err := session.NewAddressSelection(role, coordinate, address)
	require.NoError(t, err)
	require.NoError(t, s.CompleteSelection(generation, selection))
}
