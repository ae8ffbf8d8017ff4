// Package queries contains read operations for retrieving session state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries return read models derived from the session aggregate, with the
// presentation flags computed by the domain presenter.
package queries

import (
	"errors"

	"mapsession/internal/core/domain/model/kernel"
	"mapsession/internal/core/domain/model/permission"
	"mapsession/internal/core/domain/model/session"
	"mapsession/internal/core/domain/services"
	"mapsession/internal/pkg/guard"
)

var ErrGetSessionQueryIsNotConstructed = errors.New(
	"GetSessionQuery must be created via NewGetSessionQuery constructor",
)

// GetSessionQuery retrieves the full state of one map session: selections,
// active route, permission status and the derived view flags.
type GetSessionQuery struct { //nolint:recvcheck //using for validation
	sessionID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetSessionQuery creates a query for the given session.
func NewGetSessionQuery(sessionID kernel.UUID) (GetSessionQuery, error) {
	query := GetSessionQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := query.setSessionID(sessionID); err != nil {
		return GetSessionQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
func (q GetSessionQuery) Validate() error {
	return q.guard.Validate(ErrGetSessionQueryIsNotConstructed)
}

// SessionID returns the requested session identifier.
func (q GetSessionQuery) SessionID() kernel.UUID {
	return q.sessionID
}

func (q *GetSessionQuery) setSessionID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	q.sessionID = id
	return nil
}

// SelectionResponse is the read model of one selected point.
type SelectionResponse struct {
	Coordinate     kernel.Coordinate
	DisplayAddress string
}

// RouteResponse is the read model of the active route.
type RouteResponse struct {
	Geometry       []kernel.Coordinate
	DistanceMeters float64
}

// GetSessionQueryResponse is the full session read model.
type GetSessionQueryResponse struct {
	ID          kernel.UUID
	State       session.State
	Permission  permission.Status
	Origin      *SelectionResponse
	Destination *SelectionResponse
	Route       *RouteResponse
	View        services.SelectionView
}
