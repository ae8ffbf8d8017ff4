package queries

import (
	"errors"
	"time"

	"mapsession/internal/core/domain/model/kernel"
	"mapsession/internal/core/domain/model/permission"
	"mapsession/internal/core/domain/model/session"
	"mapsession/internal/pkg/guard"
)

var ErrGetActiveSessionsQueryIsNotConstructed = errors.New(
	"GetActiveSessionsQuery must be created via NewGetActiveSessionsQuery constructor",
)

// GetActiveSessionsQuery lists all live sessions. Used for operational
// visibility: how many interactions are open and how far along they are.
type GetActiveSessionsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetActiveSessionsQuery creates a query for the active session list.
func NewGetActiveSessionsQuery() GetActiveSessionsQuery {
	return GetActiveSessionsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetActiveSessionsQuery) Validate() error {
	return q.guard.Validate(ErrGetActiveSessionsQueryIsNotConstructed)
}

// GetActiveSessionsQueryResponse is the per-session summary read model.
type GetActiveSessionsQueryResponse struct {
	ID         kernel.UUID
	State      session.State
	Permission permission.Status
	Idle       time.Duration
}
