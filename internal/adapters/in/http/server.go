// Package http implements the inbound HTTP adapter: it binds the generated
// server interface to the application's command and query handlers and maps
// domain errors to HTTP status codes.
package http

import (
	"errors"
	"net/http"
	"time"

	"mapsession/internal/core/application/usecases/commands"
	"mapsession/internal/core/application/usecases/queries"
	"mapsession/internal/core/domain/model/kernel"
	"mapsession/internal/core/domain/model/permission"
	"mapsession/internal/core/domain/model/session"
	"mapsession/internal/core/ports"
	"mapsession/internal/generated/servers"
	"mapsession/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// Server implements the ServerInterface for handling HTTP requests.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	openSessionHandler        commands.OpenSessionCommandHandler
	selectPointHandler        commands.SelectPointCommandHandler
	useCurrentLocationHandler commands.UseCurrentLocationCommandHandler
	computeRouteHandler       commands.ComputeRouteCommandHandler
	resetSessionHandler       commands.ResetSessionCommandHandler
	updatePermissionHandler   commands.UpdatePermissionCommandHandler

	// Query handlers
	getSessionHandler        queries.GetSessionQueryHandler
	getActiveSessionsHandler queries.GetActiveSessionsQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	openSessionHandler commands.OpenSessionCommandHandler,
	selectPointHandler commands.SelectPointCommandHandler,
	useCurrentLocationHandler commands.UseCurrentLocationCommandHandler,
	computeRouteHandler commands.ComputeRouteCommandHandler,
	resetSessionHandler commands.ResetSessionCommandHandler,
	updatePermissionHandler commands.UpdatePermissionCommandHandler,
	getSessionHandler queries.GetSessionQueryHandler,
	getActiveSessionsHandler queries.GetActiveSessionsQueryHandler,
) *Server {
	return &Server{
		openSessionHandler:        openSessionHandler,
		selectPointHandler:        selectPointHandler,
		useCurrentLocationHandler: useCurrentLocationHandler,
		computeRouteHandler:       computeRouteHandler,
		resetSessionHandler:       resetSessionHandler,
		updatePermissionHandler:   updatePermissionHandler,
		getSessionHandler:         getSessionHandler,
		getActiveSessionsHandler:  getActiveSessionsHandler,
	}
}

// OpenSession handles POST /api/v1/sessions - opens a new map session.
func (s *Server) OpenSession(ctx echo.Context) error {
	cmd, err := commands.NewOpenSessionCommand()
	if err != nil {
		return errorResponse(ctx, err)
	}

	if err := s.openSessionHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	return s.sessionView(ctx, cmd.SessionID(), http.StatusCreated)
}

// GetSessions handles GET /api/v1/sessions - lists active sessions.
func (s *Server) GetSessions(ctx echo.Context) error {
	summaries, err := s.getActiveSessionsHandler.Handle(
		ctx.Request().Context(), queries.NewGetActiveSessionsQuery())
	if err != nil {
		return errorResponse(ctx, err)
	}

	response := make([]servers.SessionSummary, len(summaries))
	for i, summary := range summaries {
		response[i] = servers.SessionSummary{
			Id:          openapi_types.UUID(summary.ID.Bytes()),
			State:       servers.SessionState(summary.State.String()),
			Permission:  servers.PermissionStatus(summary.Permission.String()),
			IdleSeconds: summary.Idle.Round(time.Millisecond).Seconds(),
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetSession handles GET /api/v1/sessions/{sessionId} - returns session state.
func (s *Server) GetSession(ctx echo.Context, sessionId openapi_types.UUID) error {
	id, err := kernel.UUIDFromBytes(sessionId[:])
	if err != nil {
		return errorResponse(ctx, err)
	}

	return s.sessionView(ctx, id, http.StatusOK)
}

// SelectPoint handles POST /api/v1/sessions/{sessionId}/clicks - selects the
// clicked coordinate as origin or destination.
func (s *Server) SelectPoint(ctx echo.Context, sessionId openapi_types.UUID) error {
	id, err := kernel.UUIDFromBytes(sessionId[:])
	if err != nil {
		return errorResponse(ctx, err)
	}

	var request servers.ClickRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	coordinate, err := kernel.NewCoordinate(
		request.Coordinate.Latitude, request.Coordinate.Longitude)
	if err != nil {
		return errorResponse(ctx, err)
	}

	cmd, err := commands.NewSelectPointCommand(id, coordinate)
	if err != nil {
		return errorResponse(ctx, err)
	}

	if err := s.selectPointHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	return s.sessionView(ctx, id, http.StatusOK)
}

// UseCurrentLocation handles POST /api/v1/sessions/{sessionId}/location -
// captures the device position as the origin.
func (s *Server) UseCurrentLocation(ctx echo.Context, sessionId openapi_types.UUID) error {
	id, err := kernel.UUIDFromBytes(sessionId[:])
	if err != nil {
		return errorResponse(ctx, err)
	}

	var request servers.LocationRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	var device *kernel.Coordinate
	if request.Coordinate != nil {
		coordinate, err := kernel.NewCoordinate(
			request.Coordinate.Latitude, request.Coordinate.Longitude)
		if err != nil {
			return errorResponse(ctx, err)
		}
		device = &coordinate
	}

	cmd, err := commands.NewUseCurrentLocationCommand(id, request.Confirmed, device)
	if err != nil {
		return errorResponse(ctx, err)
	}

	if err := s.useCurrentLocationHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	return s.sessionView(ctx, id, http.StatusOK)
}

// ComputeRoute handles POST /api/v1/sessions/{sessionId}/route - computes
// the route between the selected points.
func (s *Server) ComputeRoute(ctx echo.Context, sessionId openapi_types.UUID) error {
	id, err := kernel.UUIDFromBytes(sessionId[:])
	if err != nil {
		return errorResponse(ctx, err)
	}

	cmd, err := commands.NewComputeRouteCommand(id)
	if err != nil {
		return errorResponse(ctx, err)
	}

	if err := s.computeRouteHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	return s.sessionView(ctx, id, http.StatusOK)
}

// ResetSession handles POST /api/v1/sessions/{sessionId}/reset - clears all
// selections and the route.
func (s *Server) ResetSession(ctx echo.Context, sessionId openapi_types.UUID) error {
	id, err := kernel.UUIDFromBytes(sessionId[:])
	if err != nil {
		return errorResponse(ctx, err)
	}

	cmd, err := commands.NewResetSessionCommand(id)
	if err != nil {
		return errorResponse(ctx, err)
	}

	if err := s.resetSessionHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	return s.sessionView(ctx, id, http.StatusOK)
}

// UpdatePermission handles POST /api/v1/sessions/{sessionId}/permission -
// records an explicit permission event.
func (s *Server) UpdatePermission(ctx echo.Context, sessionId openapi_types.UUID) error {
	id, err := kernel.UUIDFromBytes(sessionId[:])
	if err != nil {
		return errorResponse(ctx, err)
	}

	var request servers.PermissionRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	status, err := permission.StatusFromString(string(request.Status))
	if err != nil {
		return errorResponse(ctx, err)
	}

	cmd, err := commands.NewUpdatePermissionCommand(id, status)
	if err != nil {
		return errorResponse(ctx, err)
	}

	if err := s.updatePermissionHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	return s.sessionView(ctx, id, http.StatusOK)
}

// sessionView responds with the current session read model.
func (s *Server) sessionView(ctx echo.Context, id kernel.UUID, status int) error {
	query, err := queries.NewGetSessionQuery(id)
	if err != nil {
		return errorResponse(ctx, err)
	}

	response, err := s.getSessionHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, err)
	}

	view := servers.SessionView{
		Id:                     openapi_types.UUID(response.ID.Bytes()),
		State:                  servers.SessionState(response.State.String()),
		Permission:             servers.PermissionStatus(response.Permission.String()),
		PromptOrigin:           response.View.PromptOrigin,
		PromptDestination:      response.View.PromptDestination,
		RouteControlEnabled:    response.View.RouteControlEnabled,
		DeliveryOptionsVisible: response.View.DeliveryOptionsVisible,
		Origin:                 toSelection(response.Origin),
		Destination:            toSelection(response.Destination),
	}

	if response.Route != nil {
		geometry := make([]servers.Coordinate, len(response.Route.Geometry))
		for i, point := range response.Route.Geometry {
			geometry[i] = toCoordinate(point)
		}
		view.Route = &servers.Route{
			Geometry:       geometry,
			DistanceMeters: response.Route.DistanceMeters,
		}
	}

	return ctx.JSON(status, view)
}

func toSelection(selection *queries.SelectionResponse) *servers.Selection {
	if selection == nil {
		return nil
	}

	return &servers.Selection{
		Coordinate:     toCoordinate(selection.Coordinate),
		DisplayAddress: selection.DisplayAddress,
	}
}

func toCoordinate(coordinate kernel.Coordinate) servers.Coordinate {
	return servers.Coordinate{
		Latitude:  coordinate.Latitude(),
		Longitude: coordinate.Longitude(),
	}
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, servers.Error{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

// errorResponse maps domain and port errors to HTTP status codes.
func errorResponse(ctx echo.Context, err error) error {
	code := http.StatusInternalServerError

	switch {
	case errors.Is(err, errs.ErrObjectNotFound),
		errors.Is(err, ports.ErrRouteNotFound):
		code = http.StatusNotFound
	case errors.Is(err, ports.ErrRoutingUnavailable):
		code = http.StatusBadGateway
	case errors.Is(err, commands.ErrConfirmationRequired),
		errors.Is(err, ports.ErrPermissionDenied):
		code = http.StatusForbidden
	case errors.Is(err, ports.ErrPositionUnavailable),
		errors.Is(err, ports.ErrLocationTimeout):
		code = http.StatusServiceUnavailable
	case errors.Is(err, session.ErrStaleResult),
		errors.Is(err, session.ErrRouteAlreadyActive),
		errors.Is(err, ports.ErrSessionAlreadyExists):
		code = http.StatusConflict
	case errors.Is(err, session.ErrSelectionsIncomplete),
		errors.Is(err, session.ErrOriginIsRequired):
		code = http.StatusUnprocessableEntity
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange),
		errors.Is(err, errs.ErrValueIsRequired):
		code = http.StatusBadRequest
	}

	return ctx.JSON(code, servers.Error{
		Code:    code,
		Message: err.Error(),
	})
}
