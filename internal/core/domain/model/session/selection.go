package session

import (
	"errors"
	"fmt"

	"mapsession/internal/core/domain/model/kernel"
	"mapsession/internal/pkg/errs"
	"mapsession/internal/pkg/guard"
)

// Role distinguishes the two ends of a requested route.
type Role int

const (
	// RoleUnspecified represents an invalid or undefined role.
	// This value (0) helps catch uninitialized Role values.
	RoleUnspecified Role = iota

	// Origin is the pickup end of the route.
	Origin

	// Destination is the delivery end of the route.
	Destination
)

// Validate checks if the Role value is valid.
// Valid roles are Origin and Destination.
func (r Role) Validate() error {
	if r != Origin && r != Destination {
		return errs.NewValueIsInvalidErrorWithCause(
			"selection role is invalid",
			fmt.Errorf("%d is not a valid selection role", r),
		)
	}
	return nil
}

// String returns the human-readable name of the role.
// This method implements the fmt.Stringer interface.
func (r Role) String() string {
	switch r {
	case Origin:
		return "Origin"
	case Destination:
		return "Destination"
	default:
		return "Unspecified"
	}
}

// ErrAddressSelectionIsNotConstructed is returned when using an improperly
// initialized AddressSelection.
var ErrAddressSelectionIsNotConstructed = errors.New(
	"AddressSelection must be created via NewAddressSelection constructor")

// AddressSelection is an immutable value object binding a selected coordinate
// to its role and resolved display address. A selection is created when a map
// click or GPS capture resolves and is replaced, never mutated, when the same
// role is selected again.
type AddressSelection struct {
	role           Role
	coordinate     kernel.Coordinate
	displayAddress string
	guard          guard.ConstructorGuard
}

// NewAddressSelection creates a selection for the given role and coordinate.
// When displayAddress is empty (reverse geocoding failed or returned nothing),
// the deterministic coordinate fallback label is substituted so a selection is
// never blocked on geocoding.
//
// Returns:
//   - AddressSelection: A valid selection instance
//   - error: Validation error if the role or coordinate is invalid
func NewAddressSelection(role Role, coordinate kernel.Coordinate, displayAddress string) (AddressSelection, error) {
	if err := errors.Join(role.Validate(), coordinate.Validate()); err != nil {
		return AddressSelection{}, err
	}

	if displayAddress == "" {
		displayAddress = coordinate.FallbackLabel()
	}

	return AddressSelection{
		role:           role,
		coordinate:     coordinate,
		displayAddress: displayAddress,
		guard:          guard.NewConstructorGuard(),
	}, nil
}

// Validate checks if the AddressSelection was properly constructed.
func (a AddressSelection) Validate() error {
	return a.guard.Validate(ErrAddressSelectionIsNotConstructed)
}

// Role returns the selection role (Origin or Destination).
func (a AddressSelection) Role() Role {
	return a.role
}

// Coordinate returns the selected geographic coordinate.
func (a AddressSelection) Coordinate() kernel.Coordinate {
	return a.coordinate
}

// DisplayAddress returns the human-readable address shown to the user.
// This is either a reverse-geocoded address or the coordinate fallback label.
func (a AddressSelection) DisplayAddress() string {
	return a.displayAddress
}
