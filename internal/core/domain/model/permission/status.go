// Package permission models the geolocation permission state consumed by the
// map selection flow. The status is queried once, non-blocking, when a session
// opens (the query must never trigger a location prompt) and is updated only on
// explicit grant/deny events or capture failures.
package permission

import (
	"fmt"

	"mapsession/internal/pkg/errs"
)

// Status represents the device geolocation permission state.
// It implements a small state machine with defined transitions:
//
//	Unknown ──┬──> Granted <──────┐
//	          │       │           │
//	          └──> Denied ────────┘
//	      (Denied -> Granted via explicit user confirmation,
//	       Granted -> Denied on external revocation)
//
// Once the status has left Unknown it can never return to it; the browser or
// device either granted or denied access and only explicit events flip it.
type Status int

const (
	// Unspecified represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unspecified Status = iota

	// Unknown is the initial status before the permission has been queried
	// or when the platform cannot report it. Capturing the device location
	// from this status requires explicit user confirmation first.
	Unknown

	// Granted indicates the user has allowed geolocation access.
	// Device capture may proceed immediately.
	Granted

	// Denied indicates the user has refused geolocation access or a capture
	// attempt failed. The flow falls back to manual map selection; a later
	// explicit confirmation may transition back to Granted.
	Denied
)

// getStatusStrings returns a map of Status values to their string representations.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unspecified: "Unspecified",
		Unknown:     "Unknown",
		Granted:     "Granted",
		Denied:      "Denied",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unspecified is intentionally excluded as it's invalid
	return map[Status]string{
		Unknown: "Unknown",
		Granted: "Granted",
		Denied:  "Denied",
	}
}

// Validate checks if the Status value is valid.
//
// Valid statuses are: Unknown, Granted, Denied.
// Unspecified (0) and any other values are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"permission status is invalid",
			fmt.Errorf("%d is not a valid permission status", s),
		)
	}
	return nil
}

// String returns the human-readable name of the status.
// Returns "Unspecified" for invalid status values.
// This method implements the fmt.Stringer interface.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unspecified"
}

// StatusFromString parses a status name produced by String.
// Returns an error for unrecognized names and for "Unspecified".
func StatusFromString(value string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == value {
			return status, nil
		}
	}

	return Unspecified, errs.NewValueIsInvalidErrorWithCause(
		"permission status is invalid",
		fmt.Errorf("%q is not a valid permission status", value),
	)
}

// TransitionTo validates a transition from the current status to target and
// returns the resulting status.
//
// Valid transitions:
//   - Unknown -> Granted (initial grant)
//   - Unknown -> Denied (initial denial)
//   - Denied -> Granted (explicit user confirmation)
//   - Granted -> Denied (external revocation or capture failure)
//   - X -> X (re-applying the current status is a no-op)
//
// Invalid transitions:
//   - Granted/Denied -> Unknown (the answer cannot be unlearned)
//   - anything involving Unspecified
//
// Returns:
//   - (target, nil) on a valid transition
//   - (0, error) if the transition is not allowed
func (s Status) TransitionTo(target Status) (Status, error) {
	if err := s.Validate(); err != nil {
		return 0, err
	}
	if err := target.Validate(); err != nil {
		return 0, err
	}

	if target == Unknown && s != Unknown {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"permission status is invalid",
			fmt.Errorf("cannot transition %s back to %s", s, target),
		)
	}

	return target, nil
}

// Grant transitions the status to Granted.
// Valid from every status; Denied -> Granted represents the explicit
// user confirmation path of the permission gate.
func (s Status) Grant() (Status, error) {
	return s.TransitionTo(Granted)
}

// Deny transitions the status to Denied.
// Used on explicit refusal and whenever a device capture attempt fails.
func (s Status) Deny() (Status, error) {
	return s.TransitionTo(Denied)
}
