package commands

import (
	"context"
	"errors"

	"mapsession/internal/core/domain/model/kernel"
	"mapsession/internal/core/domain/model/permission"
	"mapsession/internal/core/domain/model/session"
	"mapsession/internal/core/ports"
)

// ErrConfirmationRequired is returned when the session's permission status
// is not yet granted and the request did not carry the user's explicit
// confirmation. The caller is expected to ask and retry with Confirmed.
var ErrConfirmationRequired = errors.New("location confirmation required")

// UseCurrentLocationCommandHandler captures the device position and makes
// it the session origin, replacing any previous selection work.
//
// Permission bookkeeping rides along with the outcome: a failed position
// request (denied, unavailable or timed out) marks the session permission
// Denied so the UI falls back to manual map selection, a successful one
// marks it Granted. A session that was denied can still retry; a fresh
// confirmation counts as a new grant attempt.
type UseCurrentLocationCommandHandler struct {
	sessionRepository ports.SessionRepository
	locationProvider  ports.LocationProvider
	geocoder          ports.Geocoder
}

// NewUseCurrentLocationCommandHandler creates a handler for origin capture.
func NewUseCurrentLocationCommandHandler(
	sessionRepository ports.SessionRepository,
	locationProvider ports.LocationProvider,
	geocoder ports.Geocoder,
) UseCurrentLocationCommandHandler {
	return UseCurrentLocationCommandHandler{
		sessionRepository: sessionRepository,
		locationProvider:  locationProvider,
		geocoder:          geocoder,
	}
}

// Handle processes the origin-capture request.
func (h *UseCurrentLocationCommandHandler) Handle(ctx context.Context, cmd UseCurrentLocationCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	var generation uint64

	err := h.sessionRepository.Mutate(ctx, cmd.SessionID(), func(s *session.MapSession) error {
		if s.Permission() != permission.Granted && !cmd.Confirmed() {
			return ErrConfirmationRequired
		}

		var err error
		generation, err = s.StartLocate()
		return err
	})
	if err != nil {
		return err
	}

	coordinate, err := h.resolvePosition(ctx, cmd)
	if err != nil {
		// Every capture failure counts as a denial, not just an explicit
		// one: the session must not keep reporting Granted when the device
		// cannot actually deliver a position.
		if errors.Is(err, ports.ErrPermissionDenied) ||
			errors.Is(err, ports.ErrPositionUnavailable) ||
			errors.Is(err, ports.ErrLocationTimeout) {
			_ = h.sessionRepository.Mutate(ctx, cmd.SessionID(), func(s *session.MapSession) error {
				return s.UpdatePermission(permission.Denied)
			})
		}
		return err
	}

	address := h.geocoder.ResolveAddress(ctx, coordinate)

	selection, err := session.NewAddressSelection(session.Origin, coordinate, address.Label)
	if err != nil {
		return err
	}

	err = h.sessionRepository.Mutate(ctx, cmd.SessionID(), func(s *session.MapSession) error {
		if s.Permission() != permission.Granted {
			if err := s.UpdatePermission(permission.Granted); err != nil {
				return err
			}
		}

		return s.CompleteOriginCapture(generation, selection)
	})
	if errors.Is(err, session.ErrStaleResult) {
		return nil
	}

	return err
}

func (h *UseCurrentLocationCommandHandler) resolvePosition(
	ctx context.Context, cmd UseCurrentLocationCommand,
) (kernel.Coordinate, error) {
	if device := cmd.DeviceCoordinate(); device != nil {
		return *device, nil
	}

	return h.locationProvider.CurrentPosition(ctx)
}
