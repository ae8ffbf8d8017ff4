package commands

import (
	"context"

	"mapsession/internal/core/domain/model/session"
	"mapsession/internal/core/ports"
)

// OpenSessionCommandHandler creates a new map session seeded with the
// current geolocation permission status.
//
// The permission probe never blocks on user interaction: when the
// positioning source cannot tell, the session simply starts with an
// unknown status and the confirmation gate of UseCurrentLocation applies.
type OpenSessionCommandHandler struct {
	sessionRepository ports.SessionRepository
	locationProvider  ports.LocationProvider
}

// NewOpenSessionCommandHandler creates a handler for opening sessions.
func NewOpenSessionCommandHandler(
	sessionRepository ports.SessionRepository,
	locationProvider ports.LocationProvider,
) OpenSessionCommandHandler {
	return OpenSessionCommandHandler{
		sessionRepository: sessionRepository,
		locationProvider:  locationProvider,
	}
}

// Handle creates the session and stores it.
func (h *OpenSessionCommandHandler) Handle(ctx context.Context, cmd OpenSessionCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	permissionStatus := h.locationProvider.QueryPermission(ctx)

	mapSession, err := session.NewMapSession(cmd.SessionID(), permissionStatus)
	if err != nil {
		return err
	}

	return h.sessionRepository.Add(ctx, mapSession)
}
