package ports

import (
	"context"
	"errors"

	"mapsession/internal/core/domain/model/kernel"
	"mapsession/internal/core/domain/model/session"
)

// ErrRouteNotFound is returned when the routing engine answers successfully
// but cannot connect the two points (for example across water with no road).
var ErrRouteNotFound = errors.New("route not found")

// ErrRoutingUnavailable is returned when the routing engine cannot be
// reached or keeps failing after a retry. It is distinct from
// ErrRouteNotFound: the session keeps both selections and the client may
// try again.
var ErrRoutingUnavailable = errors.New("routing unavailable")

// Router computes a drivable route between two selected points.
type Router interface {
	// ComputeRoute returns the route geometry and driving distance between
	// origin and destination.
	//
	// Returns ErrRouteNotFound when no route connects the points and
	// ErrRoutingUnavailable when the engine itself fails.
	ComputeRoute(ctx context.Context, origin, destination kernel.Coordinate) (session.RouteResult, error)
}
