package queries

import (
	"context"

	"mapsession/internal/core/domain/model/session"
	"mapsession/internal/core/domain/services"
	"mapsession/internal/core/ports"
)

// GetSessionQueryHandler builds the session read model from the store and
// the selection presenter.
type GetSessionQueryHandler struct {
	sessionRepository ports.SessionRepository
	presenter         services.SelectionPresenter
}

// NewGetSessionQueryHandler creates a handler for session retrieval.
func NewGetSessionQueryHandler(
	sessionRepository ports.SessionRepository,
	presenter services.SelectionPresenter,
) GetSessionQueryHandler {
	return GetSessionQueryHandler{
		sessionRepository: sessionRepository,
		presenter:         presenter,
	}
}

// Handle executes the query.
func (h GetSessionQueryHandler) Handle(
	ctx context.Context, query GetSessionQuery,
) (GetSessionQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetSessionQueryResponse{}, err
	}

	mapSession, err := h.sessionRepository.Get(ctx, query.SessionID())
	if err != nil {
		return GetSessionQueryResponse{}, err
	}

	view, err := h.presenter.Present(mapSession)
	if err != nil {
		return GetSessionQueryResponse{}, err
	}

	response := GetSessionQueryResponse{
		ID:          mapSession.ID(),
		State:       mapSession.State(),
		Permission:  mapSession.Permission(),
		Origin:      selectionResponse(mapSession.OriginSelection()),
		Destination: selectionResponse(mapSession.DestinationSelection()),
		View:        view,
	}

	if route := mapSession.ActiveRoute(); route != nil {
		response.Route = &RouteResponse{
			Geometry:       route.Geometry(),
			DistanceMeters: route.DistanceMeters(),
		}
	}

	return response, nil
}

func selectionResponse(selection *session.AddressSelection) *SelectionResponse {
	if selection == nil {
		return nil
	}

	return &SelectionResponse{
		Coordinate:     selection.Coordinate(),
		DisplayAddress: selection.DisplayAddress(),
	}
}
