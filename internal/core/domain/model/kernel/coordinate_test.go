package kernel_test

import (
	"testing"

	"mapsession/internal/core/domain/model/kernel"
	"mapsession/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCoordinate(t *testing.T) {
	t.Run("should create a valid coordinate", func(t *testing.T) {
		coord, err := kernel.NewCoordinate(34.05, -118.24)

		require.NoError(t, err)
		require.NoError(t, coord.Validate())
		assert.InDelta(t, 34.05, coord.Latitude(), 0)
		assert.InDelta(t, -118.24, coord.Longitude(), 0)
	})

	t.Run("should accept boundary values", func(t *testing.T) {
		cases := []struct {
			name     string
			lat, lon float64
		}{
			{"south pole", kernel.LatitudeMin, 0},
			{"north pole", kernel.LatitudeMax, 0},
			{"date line west", 0, kernel.LongitudeMin},
			{"date line east", 0, kernel.LongitudeMax},
			{"null island", 0, 0},
		}

		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				coord, err := kernel.NewCoordinate(tc.lat, tc.lon)
				require.NoError(t, err)
				require.NoError(t, coord.Validate())
			})
		}
	})

	t.Run("should reject out-of-range latitude", func(t *testing.T) {
		_, err := kernel.NewCoordinate(90.01, 0)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("should reject out-of-range longitude", func(t *testing.T) {
		_, err := kernel.NewCoordinate(0, -180.5)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("should aggregate errors when both components are invalid", func(t *testing.T) {
		_, err := kernel.NewCoordinate(-91, 181)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "latitude")
		assert.Contains(t, err.Error(), "longitude")
	})
}

func TestCoordinate_Validate(t *testing.T) {
	t.Run("zero value is invalid", func(t *testing.T) {
		var coord kernel.Coordinate

		require.ErrorIs(t, coord.Validate(), errs.ErrValueIsRequired)
	})
}

func TestCoordinate_FallbackLabel(t *testing.T) {
	t.Run("renders both components with five decimal places", func(t *testing.T) {
		coord, err := kernel.NewCoordinate(34.05, -118.24)
		require.NoError(t, err)

		assert.Equal(t, "34.05000, -118.24000", coord.FallbackLabel())
	})

	t.Run("is deterministic", func(t *testing.T) {
		coord, err := kernel.NewCoordinate(55.7558, 37.6173)
		require.NoError(t, err)

		assert.Equal(t, coord.FallbackLabel(), coord.FallbackLabel())
		assert.Equal(t, "55.75580, 37.61730", coord.FallbackLabel())
	})
}

func TestCoordinate_IsEqual(t *testing.T) {
	t.Run("equal coordinates", func(t *testing.T) {
		a, _ := kernel.NewCoordinate(10, 20)
		b, _ := kernel.NewCoordinate(10, 20)

		equal, err := a.IsEqual(b)
		require.NoError(t, err)
		assert.True(t, equal)
	})

	t.Run("different coordinates", func(t *testing.T) {
		a, _ := kernel.NewCoordinate(10, 20)
		b, _ := kernel.NewCoordinate(20, 10)

		equal, err := a.IsEqual(b)
		require.NoError(t, err)
		assert.False(t, equal)
	})

	t.Run("comparison with zero value fails", func(t *testing.T) {
		a, _ := kernel.NewCoordinate(10, 20)
		var b kernel.Coordinate

		_, err := a.IsEqual(b)
		require.Error(t, err)
	})
}
