package commands

import (
	"context"
	"errors"

	"mapsession/internal/core/domain/model/session"
	"mapsession/internal/core/ports"
)

// SelectPointCommandHandler runs the click-selection flow: register the
// click, resolve the address off the session lock, then apply the
// selection if no later action superseded it.
//
// A stale geocoding result is not an error from the caller's point of
// view: the user already moved on, so the handler reports success and the
// newer state stands.
type SelectPointCommandHandler struct {
	sessionRepository ports.SessionRepository
	geocoder          ports.Geocoder
}

// NewSelectPointCommandHandler creates a handler for click selections.
func NewSelectPointCommandHandler(
	sessionRepository ports.SessionRepository,
	geocoder ports.Geocoder,
) SelectPointCommandHandler {
	return SelectPointCommandHandler{
		sessionRepository: sessionRepository,
		geocoder:          geocoder,
	}
}

// Handle processes the click.
func (h *SelectPointCommandHandler) Handle(ctx context.Context, cmd SelectPointCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	var (
		role       session.Role
		generation uint64
	)

	err := h.sessionRepository.Mutate(ctx, cmd.SessionID(), func(s *session.MapSession) error {
		var err error
		role, generation, err = s.StartClickSelection(cmd.Coordinate())
		return err
	})
	if err != nil {
		return err
	}

	address := h.geocoder.ResolveAddress(ctx, cmd.Coordinate())

	selection, err := session.NewAddressSelection(role, cmd.Coordinate(), address.Label)
	if err != nil {
		return err
	}

	err = h.sessionRepository.Mutate(ctx, cmd.SessionID(), func(s *session.MapSession) error {
		return s.CompleteSelection(generation, selection)
	})
	if errors.Is(err, session.ErrStaleResult) {
		return nil
	}

	return err
}
