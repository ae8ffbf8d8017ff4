package session

import (
	"errors"
	"time"

	"mapsession/internal/core/domain/model/kernel"
	"mapsession/internal/core/domain/model/permission"
)

// Domain errors for map session operations.
var (
	// ErrMapSessionIsNotConstructed is returned when using an improperly
	// initialized MapSession.
	ErrMapSessionIsNotConstructed = errors.New("MapSession must be created via NewMapSession constructor")
	// ErrStaleResult is returned when an asynchronous result arrives for a
	// generation that a later user action has superseded. The caller must
	// discard the result; the session is unchanged.
	ErrStaleResult = errors.New("result belongs to a superseded user action")
	// ErrOriginIsRequired is returned when a destination selection is applied
	// while no origin exists.
	ErrOriginIsRequired = errors.New("origin must be selected before destination")
	// ErrSelectionsIncomplete is returned when a route is requested before
	// both origin and destination have been selected.
	ErrSelectionsIncomplete = errors.New("origin and destination must both be selected before routing")
	// ErrRouteAlreadyActive is returned when a route is requested while a
	// previously computed route is still drawn. Only one route may be active.
	ErrRouteAlreadyActive = errors.New("a route is already active")
)

// MapSession is the aggregate root owning the interactive pickup/destination
// selection flow for one map view. It tracks the selection state machine, the
// geolocation permission status, the active route, and a generation counter
// used to discard stale asynchronous results.
//
// Every user action (map click, GPS capture, route request, reset) advances
// the generation at issue time. Results of the slow work that the action
// triggered (reverse geocoding, routing, device capture) are applied through
// generation-checked methods: if any later action has bumped the generation,
// the stale result is rejected with ErrStaleResult so the latest user action
// always wins.
//
// Two-phase operations:
//
//	role, gen, _ := s.StartClickSelection(coord) // fast, under store lock
//	addr := geocoder.ResolveAddress(ctx, coord)  // slow, outside the lock
//	sel, _ := session.NewAddressSelection(role, coord, addr.Label)
//	err := s.CompleteSelection(gen, sel)         // fast; ErrStaleResult if superseded
type MapSession struct {
	// id uniquely identifies the session
	id kernel.UUID

	// permissionStatus is the geolocation permission state for this session
	permissionStatus permission.Status

	// state is the current selection state machine position
	state State

	// origin is the pickup selection (nil until selected)
	origin *AddressSelection

	// destination is the delivery selection (nil until selected)
	destination *AddressSelection

	// route is the currently drawn route (nil when none)
	route *RouteResult

	// generation increases with every user action; async results carry the
	// generation they were issued under and are discarded on mismatch
	generation uint64

	// lastActivity is the time of the most recent user action, used by the
	// expiry sweeper to reap abandoned sessions
	lastActivity time.Time

	// isConstructed ensures the session was created via NewMapSession
	isConstructed bool
}

// NewMapSession creates a new session in the Empty state with the given
// geolocation permission status (queried non-blocking at session open).
//
// Parameters:
//   - id: Unique identifier for the session (must be valid UUID)
//   - permissionStatus: Initial permission status (must be a valid status)
//
// Returns:
//   - *MapSession: The created session if all validations pass
//   - error: Validation error if any parameter is invalid
func NewMapSession(id kernel.UUID, permissionStatus permission.Status) (*MapSession, error) {
	if err := errors.Join(id.Validate(), permissionStatus.Validate()); err != nil {
		return nil, err
	}

	return &MapSession{
		id:               id,
		permissionStatus: permissionStatus,
		state:            Empty,
		lastActivity:     time.Now(),
		isConstructed:    true,
	}, nil
}

// Validate ensures the MapSession instance was properly constructed through
// NewMapSession. This prevents bypassing validation by directly instantiating
// the struct.
func (s *MapSession) Validate() error {
	if s == nil || !s.isConstructed {
		return ErrMapSessionIsNotConstructed
	}

	return nil
}

// ID returns the session's unique identifier.
func (s *MapSession) ID() kernel.UUID {
	return s.id
}

// Permission returns the current geolocation permission status.
func (s *MapSession) Permission() permission.Status {
	return s.permissionStatus
}

// State returns the current selection state.
func (s *MapSession) State() State {
	return s.state
}

// OriginSelection returns the pickup selection, or nil if none exists.
func (s *MapSession) OriginSelection() *AddressSelection {
	return s.origin
}

// DestinationSelection returns the delivery selection, or nil if none exists.
func (s *MapSession) DestinationSelection() *AddressSelection {
	return s.destination
}

// ActiveRoute returns the currently drawn route, or nil if none exists.
func (s *MapSession) ActiveRoute() *RouteResult {
	return s.route
}

// Generation returns the current generation counter value.
func (s *MapSession) Generation() uint64 {
	return s.generation
}

// LastActivity returns the time of the most recent user action.
func (s *MapSession) LastActivity() time.Time {
	return s.lastActivity
}

// StartClickSelection records a map click and decides which role the click
// selects based on the current state:
//
//   - Empty: the click selects the origin.
//   - OriginSet: the click selects the destination.
//   - BothSet: both selections and any drawn route are cleared first, then
//     the same click selects a fresh origin. The restart is a direct internal
//     transition; no second physical click and no re-dispatched event is needed.
//
// The generation is advanced and returned together with the decided role.
// The state itself does not advance until the resolved address is applied via
// CompleteSelection.
func (s *MapSession) StartClickSelection(coordinate kernel.Coordinate) (Role, uint64, error) {
	if err := errors.Join(s.Validate(), coordinate.Validate()); err != nil {
		return RoleUnspecified, 0, err
	}

	var role Role
	switch s.state {
	case OriginSet:
		role = Destination
	case BothSet:
		s.clearSelections()
		role = Origin
	default: // Empty
		role = Origin
	}

	return role, s.nextGeneration(), nil
}

// CompleteSelection applies a resolved address selection issued by
// StartClickSelection. The selection is applied only if generation still
// matches the session's current generation; otherwise ErrStaleResult is
// returned and the session is left untouched (a later user action has
// superseded this result).
//
// Applying a selection replaces any previous selection of the same role,
// clears the active route, and advances the state machine (Origin ->
// OriginSet, Destination -> BothSet).
func (s *MapSession) CompleteSelection(generation uint64, selection AddressSelection) error {
	if err := errors.Join(s.Validate(), selection.Validate()); err != nil {
		return err
	}

	if generation != s.generation {
		return ErrStaleResult
	}

	switch selection.Role() {
	case Origin:
		s.origin = &selection
		s.state = OriginSet
	case Destination:
		if s.origin == nil {
			return ErrOriginIsRequired
		}
		s.destination = &selection
		s.state = BothSet
	default:
		return selection.Role().Validate()
	}

	// Any selection change invalidates the drawn route.
	s.route = nil
	s.touch()
	return nil
}

// StartLocate records a GPS-based origin capture request and returns the
// generation it was issued under. Nothing else changes: if the capture fails,
// the session state is untouched and manual map selection remains possible.
func (s *MapSession) StartLocate() (uint64, error) {
	if err := s.Validate(); err != nil {
		return 0, err
	}

	return s.nextGeneration(), nil
}

// CompleteOriginCapture applies a GPS-captured origin selection issued by
// StartLocate. Using the current location always restarts the two-step
// selection: any prior destination and drawn route are cleared and the state
// is forced to OriginSet. Returns ErrStaleResult if a later user action has
// superseded the capture.
func (s *MapSession) CompleteOriginCapture(generation uint64, selection AddressSelection) error {
	if err := errors.Join(s.Validate(), selection.Validate()); err != nil {
		return err
	}

	if selection.Role() != Origin {
		return ErrOriginIsRequired
	}

	if generation != s.generation {
		return ErrStaleResult
	}

	s.origin = &selection
	s.destination = nil
	s.route = nil
	s.state = OriginSet
	s.touch()
	return nil
}

// Reset clears both selections and any drawn route and returns the session to
// the Empty state. The generation is advanced so results of any in-flight
// geocoding or routing call are discarded when they arrive.
func (s *MapSession) Reset() error {
	if err := s.Validate(); err != nil {
		return err
	}

	s.clearSelections()
	_ = s.nextGeneration()
	return nil
}

// RoutePlan carries the coordinates of a route request together with the
// generation it was issued under.
type RoutePlan struct {
	Origin      kernel.Coordinate
	Destination kernel.Coordinate
	Generation  uint64
}

// PlanRoute validates that a route may be requested and issues a RoutePlan.
//
// A route may only be requested when both selections exist and no route is
// currently drawn — a second request while a route is active is rejected with
// ErrRouteAlreadyActive (prevents duplicate overlapping route requests).
func (s *MapSession) PlanRoute() (RoutePlan, error) {
	if err := s.Validate(); err != nil {
		return RoutePlan{}, err
	}

	if s.state != BothSet {
		return RoutePlan{}, ErrSelectionsIncomplete
	}

	if s.route != nil {
		return RoutePlan{}, ErrRouteAlreadyActive
	}

	return RoutePlan{
		Origin:      s.origin.Coordinate(),
		Destination: s.destination.Coordinate(),
		Generation:  s.nextGeneration(),
	}, nil
}

// AttachRoute applies a successfully computed route issued by PlanRoute.
// A new route replaces any previous drawn result entirely. Returns
// ErrStaleResult if a later user action (click, reset, GPS capture) has
// superseded the route request.
func (s *MapSession) AttachRoute(generation uint64, route RouteResult) error {
	if err := errors.Join(s.Validate(), route.Validate()); err != nil {
		return err
	}

	if generation != s.generation {
		return ErrStaleResult
	}

	s.route = &route
	s.touch()
	return nil
}

// UpdatePermission applies a permission status transition (explicit grant or
// deny event, or revocation detected during capture). Invalid transitions are
// rejected; re-applying the current status is a no-op.
func (s *MapSession) UpdatePermission(target permission.Status) error {
	if err := s.Validate(); err != nil {
		return err
	}

	next, err := s.permissionStatus.TransitionTo(target)
	if err != nil {
		return err
	}

	s.permissionStatus = next
	s.touch()
	return nil
}

// clearSelections drops both selections and the drawn route and returns the
// state machine to Empty.
func (s *MapSession) clearSelections() {
	s.origin = nil
	s.destination = nil
	s.route = nil
	s.state = Empty
}

// nextGeneration advances the generation counter and refreshes the activity
// timestamp. Called exactly once per user action, at issue time.
func (s *MapSession) nextGeneration() uint64 {
	s.generation++
	s.touch()
	return s.generation
}

func (s *MapSession) touch() {
	s.lastActivity = time.Now()
}
