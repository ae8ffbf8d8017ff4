package ports

import (
	"context"
	"errors"

	"mapsession/internal/core/domain/model/kernel"
	"mapsession/internal/core/domain/model/permission"
)

// ErrPermissionDenied is returned when the positioning source refuses to
// provide a position.
var ErrPermissionDenied = errors.New("location permission denied")

// ErrPositionUnavailable is returned when the positioning source is
// reachable but has no fix.
var ErrPositionUnavailable = errors.New("position unavailable")

// ErrLocationTimeout is returned when no position arrives within the
// provider's deadline.
var ErrLocationTimeout = errors.New("location request timed out")

// LocationProvider supplies the device's current position and the state of
// the permission to read it.
type LocationProvider interface {
	// QueryPermission reports the current permission status without
	// triggering a position request. It never blocks on user interaction;
	// when the status cannot be determined it reports permission.Unknown.
	QueryPermission(ctx context.Context) permission.Status

	// CurrentPosition requests a single position fix.
	//
	// Returns ErrPermissionDenied, ErrPositionUnavailable or
	// ErrLocationTimeout depending on how the request fails.
	CurrentPosition(ctx context.Context) (kernel.Coordinate, error)
}
