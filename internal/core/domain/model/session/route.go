package session

import (
	"errors"
	"fmt"

	"mapsession/internal/core/domain/model/kernel"
	"mapsession/internal/pkg/errs"
	"mapsession/internal/pkg/guard"
)

// routeMinPoints is the minimum number of geometry points a drawable route
// must have (at least its two endpoints).
const routeMinPoints = 2

// ErrRouteResultIsNotConstructed is returned when using an improperly
// initialized RouteResult.
var ErrRouteResultIsNotConstructed = errors.New(
	"RouteResult must be created via NewRouteResult constructor")

// RouteResult is an immutable value object holding a computed path geometry
// and its distance in meters. RouteResult is transient by design: it is
// discarded and recomputed whenever the origin or destination changes and is
// never persisted.
type RouteResult struct {
	geometry       []kernel.Coordinate
	distanceMeters float64
	guard          guard.ConstructorGuard
}

// NewRouteResult creates a RouteResult from a path geometry and total distance.
// The geometry must contain at least two valid coordinates and the distance
// must not be negative.
func NewRouteResult(geometry []kernel.Coordinate, distanceMeters float64) (RouteResult, error) {
	if len(geometry) < routeMinPoints {
		return RouteResult{}, errs.NewValueIsInvalidErrorWithCause(
			"geometry",
			fmt.Errorf("route geometry needs at least %d points, got %d", routeMinPoints, len(geometry)),
		)
	}

	for _, point := range geometry {
		if err := point.Validate(); err != nil {
			return RouteResult{}, err
		}
	}

	if distanceMeters < 0 {
		return RouteResult{}, errs.NewValueIsInvalidError("distanceMeters")
	}

	points := make([]kernel.Coordinate, len(geometry))
	copy(points, geometry)

	return RouteResult{
		geometry:       points,
		distanceMeters: distanceMeters,
		guard:          guard.NewConstructorGuard(),
	}, nil
}

// Validate checks if the RouteResult was properly constructed.
func (r RouteResult) Validate() error {
	return r.guard.Validate(ErrRouteResultIsNotConstructed)
}

// Geometry returns a copy of the path geometry so callers cannot mutate the
// value object.
func (r RouteResult) Geometry() []kernel.Coordinate {
	points := make([]kernel.Coordinate, len(r.geometry))
	copy(points, r.geometry)
	return points
}

// DistanceMeters returns the total route distance in meters.
func (r RouteResult) DistanceMeters() float64 {
	return r.distanceMeters
}
