package services

import (
	"mapsession/internal/core/domain/model/session"
)

// SelectionView is the presentation snapshot of a map session derived from
// its current selection state. It drives which controls a client should
// render without leaking aggregate internals.
type SelectionView struct {
	// PromptOrigin is set while the session waits for the pickup point.
	PromptOrigin bool

	// PromptDestination is set while an origin exists and the session waits
	// for the destination point.
	PromptDestination bool

	// RouteControlEnabled is set when both points are selected and no route
	// has been computed yet, i.e. the route action is available.
	RouteControlEnabled bool

	// DeliveryOptionsVisible is set once a route is attached to the session.
	DeliveryOptionsVisible bool

	// OriginLabel and DestinationLabel carry the resolved display addresses,
	// empty when the corresponding point is not selected.
	OriginLabel      string
	DestinationLabel string
}

// SelectionPresenter is a domain service that maps a session's selection
// state to the view flags clients render from.
//
// Derivation rules:
//   - Empty: prompt for the origin, everything else hidden
//   - OriginSet: prompt for the destination
//   - BothSet without a route: the route control is enabled
//   - BothSet with a route: delivery options become visible and the route
//     control is no longer offered
type SelectionPresenter struct{}

// NewSelectionPresenter creates a new SelectionPresenter instance.
func NewSelectionPresenter() SelectionPresenter {
	return SelectionPresenter{}
}

// Present derives the SelectionView for the given session.
//
// Parameters:
//   - mapSession: The session to present (must be valid)
//
// Returns:
//   - SelectionView: The derived view flags and address labels
//   - error: Validation error if the session is not properly constructed
func (p SelectionPresenter) Present(mapSession *session.MapSession) (SelectionView, error) {
	if err := mapSession.Validate(); err != nil {
		return SelectionView{}, err
	}

	view := SelectionView{}

	switch mapSession.State() {
	case session.Empty:
		view.PromptOrigin = true
	case session.OriginSet:
		view.PromptDestination = true
	case session.BothSet:
		if mapSession.ActiveRoute() == nil {
			view.RouteControlEnabled = true
		} else {
			view.DeliveryOptionsVisible = true
		}
	}

	if origin := mapSession.OriginSelection(); origin != nil {
		view.OriginLabel = origin.DisplayAddress()
	}

	if destination := mapSession.DestinationSelection(); destination != nil {
		view.DestinationLabel = destination.DisplayAddress()
	}

	return view, nil
}
