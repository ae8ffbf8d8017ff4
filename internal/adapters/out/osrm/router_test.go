package osrm_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"mapsession/internal/adapters/out/osrm"
	"mapsession/internal/core/domain/model/kernel"
	"mapsession/internal/core/ports"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const routeAnswer = `{
	"code": "Ok",
	"routes": [{
		"distance": 1523.4,
		"geometry": {"coordinates": [[37.6173, 55.7558], [37.62, 55.76], [37.63, 55.77]]}
	}]
}`

func routeEndpoints(t *testing.T) (kernel.Coordinate, kernel.Coordinate) {
	t.Helper()

	origin, err := kernel.NewCoordinate(55.7558, 37.6173)
	require.NoError(t, err)
	destination, err := kernel.NewCoordinate(55.77, 37.63)
	require.NoError(t, err)
	return origin, destination
}

func TestRouter_ComputeRoute(t *testing.T) {
	t.Run("should decode geometry and distance", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/route/v1/driving/37.617300,55.755800;37.630000,55.770000", r.URL.Path)
			assert.Equal(t, "full", r.URL.Query().Get("overview"))
			assert.Equal(t, "geojson", r.URL.Query().Get("geometries"))

			_, _ = w.Write([]byte(routeAnswer))
		}))
		defer server.Close()

		router := osrm.NewRouter(server.URL)
		origin, destination := routeEndpoints(t)

		route, err := router.ComputeRoute(context.Background(), origin, destination)

		require.NoError(t, err)
		assert.InDelta(t, 1523.4, route.DistanceMeters(), 0)

		geometry := route.Geometry()
		require.Len(t, geometry, 3)
		// GeoJSON pairs are [lon, lat]; the route points must come back
		// swapped into lat/lon coordinates.
		assert.InDelta(t, 55.7558, geometry[0].Latitude(), 0)
		assert.InDelta(t, 37.6173, geometry[0].Longitude(), 0)
	})

	t.Run("should map NoRoute to ErrRouteNotFound", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadRequest)
			_, _ = w.Write([]byte(`{"code": "NoRoute", "routes": []}`))
		}))
		defer server.Close()

		router := osrm.NewRouter(server.URL)
		origin, destination := routeEndpoints(t)

		_, err := router.ComputeRoute(context.Background(), origin, destination)
		require.ErrorIs(t, err, ports.ErrRouteNotFound)

		// The same request asked again answers the same; nothing about a
		// not-found result is sticky or stateful.
		_, err = router.ComputeRoute(context.Background(), origin, destination)
		require.ErrorIs(t, err, ports.ErrRouteNotFound)
	})

	t.Run("should retry once and succeed after a transient failure", func(t *testing.T) {
		var calls atomic.Int32
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if calls.Add(1) == 1 {
				w.WriteHeader(http.StatusBadGateway)
				return
			}
			_, _ = w.Write([]byte(routeAnswer))
		}))
		defer server.Close()

		router := osrm.NewRouter(server.URL)
		origin, destination := routeEndpoints(t)

		route, err := router.ComputeRoute(context.Background(), origin, destination)

		require.NoError(t, err)
		assert.EqualValues(t, 2, calls.Load())
		assert.InDelta(t, 1523.4, route.DistanceMeters(), 0)
	})

	t.Run("should give up after the retry with ErrRoutingUnavailable", func(t *testing.T) {
		var calls atomic.Int32
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			calls.Add(1)
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer server.Close()

		router := osrm.NewRouter(server.URL)
		origin, destination := routeEndpoints(t)

		_, err := router.ComputeRoute(context.Background(), origin, destination)

		require.ErrorIs(t, err, ports.ErrRoutingUnavailable)
		assert.EqualValues(t, 2, calls.Load())
	})

	t.Run("should not retry a NoRoute answer", func(t *testing.T) {
		var calls atomic.Int32
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			calls.Add(1)
			_, _ = w.Write([]byte(`{"code": "NoRoute"}`))
		}))
		defer server.Close()

		router := osrm.NewRouter(server.URL)
		origin, destination := routeEndpoints(t)

		_, err := router.ComputeRoute(context.Background(), origin, destination)

		require.ErrorIs(t, err, ports.ErrRouteNotFound)
		assert.EqualValues(t, 1, calls.Load())
	})
}
