package session

import (
	"fmt"

	"mapsession/internal/pkg/errs"
)

// State represents the progress of the two-step origin/destination selection.
// It implements a state machine with defined transitions owned exclusively by
// the MapSession aggregate:
//
//	Empty ──> OriginSet ──> BothSet
//	  ^           ^            │
//	  │           └────────────┘
//	  └──────────(reset)──────── (third click or GPS capture restarts at OriginSet)
//
// The invariants are structural: OriginSet implies an origin selection exists
// and no destination exists; BothSet implies both exist.
type State int

const (
	// Unspecified represents an invalid or undefined state.
	// This value (0) helps catch uninitialized State values.
	Unspecified State = iota

	// Empty is the initial state: no selection has been made yet.
	// The next map click selects the origin.
	Empty

	// OriginSet indicates the origin has been selected and no destination
	// exists. The next map click selects the destination.
	OriginSet

	// BothSet indicates both origin and destination are selected.
	// A route may be computed; the next map click restarts the cycle.
	BothSet
)

// getStateStrings returns a map of State values to their string representations.
func getStateStrings() map[State]string {
	return map[State]string{
		Unspecified: "Unspecified",
		Empty:       "Empty",
		OriginSet:   "OriginSet",
		BothSet:     "BothSet",
	}
}

// getValidStateStrings returns a map of only valid State values.
func getValidStateStrings() map[State]string {
	//nolint:exhaustive // Unspecified is intentionally excluded as it's invalid
	return map[State]string{
		Empty:     "Empty",
		OriginSet: "OriginSet",
		BothSet:   "BothSet",
	}
}

// Validate checks if the State value is valid.
//
// Valid states are: Empty, OriginSet, BothSet.
// Unspecified (0) and any other values are invalid.
func (s State) Validate() error {
	if _, ok := getValidStateStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"selection state is invalid",
			fmt.Errorf("%d is not a valid selection state", s),
		)
	}
	return nil
}

// String returns the human-readable name of the state.
// Returns "Unspecified" for invalid state values.
// This method implements the fmt.Stringer interface.
func (s State) String() string {
	if str, ok := getStateStrings()[s]; ok {
		return str
	}
	return "Unspecified"
}
