package commands

import (
	"context"
	"errors"

	"mapsession/internal/core/domain/model/session"
	"mapsession/internal/core/ports"
)

// ComputeRouteCommandHandler runs the routing flow: snapshot the selected
// points, ask the routing engine off the session lock, then attach the
// route if the selections were not changed in the meantime.
//
// Routing failures keep both selections in place: the caller can retry
// without re-selecting. A stale result after a successful computation is
// silently discarded.
type ComputeRouteCommandHandler struct {
	sessionRepository ports.SessionRepository
	router            ports.Router
}

// NewComputeRouteCommandHandler creates a handler for route computation.
func NewComputeRouteCommandHandler(
	sessionRepository ports.SessionRepository,
	router ports.Router,
) ComputeRouteCommandHandler {
	return ComputeRouteCommandHandler{
		sessionRepository: sessionRepository,
		router:            router,
	}
}

// Handle processes the route request.
func (h *ComputeRouteCommandHandler) Handle(ctx context.Context, cmd ComputeRouteCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	var plan session.RoutePlan

	err := h.sessionRepository.Mutate(ctx, cmd.SessionID(), func(s *session.MapSession) error {
		var err error
		plan, err = s.PlanRoute()
		return err
	})
	if err != nil {
		return err
	}

	route, err := h.router.ComputeRoute(ctx, plan.Origin, plan.Destination)
	if err != nil {
		return err
	}

	err = h.sessionRepository.Mutate(ctx, cmd.SessionID(), func(s *session.MapSession) error {
		return s.AttachRoute(plan.Generation, route)
	})
	if errors.Is(err, session.ErrStaleResult) {
		return nil
	}

	return err
}
