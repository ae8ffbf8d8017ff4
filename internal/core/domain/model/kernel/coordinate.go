package kernel

import (
	"errors"
	"fmt"

	"mapsession/internal/pkg/errs"
	"mapsession/internal/pkg/guard"
)

const (
	// LatitudeMin is the minimum valid latitude in decimal degrees.
	LatitudeMin = -90.0
	// LatitudeMax is the maximum valid latitude in decimal degrees.
	LatitudeMax = 90.0
	// LongitudeMin is the minimum valid longitude in decimal degrees.
	LongitudeMin = -180.0
	// LongitudeMax is the maximum valid longitude in decimal degrees.
	LongitudeMax = 180.0
)

// ErrCoordinateIsNotConstructed is returned when attempting to use an improperly
// initialized Coordinate. Coordinates must be created via NewCoordinate to ensure
// their latitude and longitude are within valid bounds.
var ErrCoordinateIsNotConstructed = errs.NewValueIsRequiredError(
	"coordinate must be created via NewCoordinate constructor")

// Coordinate represents a geographic position as a latitude/longitude pair in
// decimal degrees (WGS 84). Coordinate is an immutable value object; the zero
// value is invalid and fails validation — use NewCoordinate to create instances.
//
// Example:
//
//	coord, err := kernel.NewCoordinate(34.05, -118.24)
//	if err != nil {
//	    // Handle validation error
//	}
//	fmt.Println(coord) // Output: Coordinate(34.050000,-118.240000)
type Coordinate struct { //nolint:recvcheck //using for validation
	latitude  float64
	longitude float64
	guard     guard.ConstructorGuard
}

// NewCoordinate creates a new Coordinate with the specified latitude and longitude.
// Latitude must be within [LatitudeMin..LatitudeMax] and longitude within
// [LongitudeMin..LongitudeMax]. Returns an aggregated validation error if either
// component is outside its valid bounds.
//
// Parameters:
//   - latitude: Decimal degrees north of the equator (negative for south)
//   - longitude: Decimal degrees east of the prime meridian (negative for west)
//
// Returns:
//   - Coordinate: A valid coordinate instance
//   - error: Validation error if either component is out of bounds
func NewCoordinate(latitude float64, longitude float64) (Coordinate, error) {
	coord := Coordinate{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(coord.setLatitude(latitude), coord.setLongitude(longitude)); err != nil {
		return Coordinate{}, err
	}

	return coord, nil
}

// Validate checks if the Coordinate was properly constructed via NewCoordinate.
// The zero value of Coordinate is invalid and fails this validation.
//
// Returns:
//   - error: ErrCoordinateIsNotConstructed if the coordinate was not properly
//     initialized, nil otherwise
func (c Coordinate) Validate() error {
	return c.guard.Validate(ErrCoordinateIsNotConstructed)
}

// Latitude returns the latitude component in decimal degrees.
// The returned value is guaranteed to be within [LatitudeMin..LatitudeMax]
// for properly constructed Coordinate instances.
func (c Coordinate) Latitude() float64 {
	return c.latitude
}

// Longitude returns the longitude component in decimal degrees.
// The returned value is guaranteed to be within [LongitudeMin..LongitudeMax]
// for properly constructed Coordinate instances.
func (c Coordinate) Longitude() float64 {
	return c.longitude
}

// String returns a human-readable representation of the Coordinate.
// The format is "Coordinate(latitude,longitude)" which is useful for debugging
// and logging. This method implements the fmt.Stringer interface.
func (c Coordinate) String() string {
	return fmt.Sprintf("Coordinate(%f,%f)", c.latitude, c.longitude)
}

// FallbackLabel returns a deterministic, human-readable address substitute
// derived purely from the coordinate components, rendered with five decimal
// places (roughly meter precision). It is used whenever reverse geocoding
// cannot produce a real address, so address resolution never blocks a
// selection.
//
// Example:
//
//	coord, _ := kernel.NewCoordinate(34.05, -118.24)
//	coord.FallbackLabel() // "34.05000, -118.24000"
func (c Coordinate) FallbackLabel() string {
	return fmt.Sprintf("%.5f, %.5f", c.latitude, c.longitude)
}

// IsEqual compares two coordinates for equality.
// Two coordinates are considered equal if both components match exactly.
// Both coordinates must be properly constructed for the comparison to succeed.
//
// Returns:
//   - bool: true if coordinates are equal, false otherwise
//   - error: Validation error if either coordinate is improperly constructed
func (c Coordinate) IsEqual(other Coordinate) (bool, error) {
	if err := errors.Join(c.Validate(), other.Validate()); err != nil {
		return false, err
	}

	return c == other, nil
}

// setLatitude sets the latitude with validation.
// Note: We intentionally use a pointer receiver here while other methods use
// value receivers. The private setters enable self-encapsulated validation of
// business requirements during object construction.
func (c *Coordinate) setLatitude(latitude float64) error {
	if latitude < LatitudeMin || latitude > LatitudeMax {
		return errs.NewValueIsOutOfRangeError("latitude", latitude, LatitudeMin, LatitudeMax)
	}

	c.latitude = latitude
	return nil
}

// setLongitude sets the longitude with validation.
// Note: We intentionally use a pointer receiver here while other methods use
// value receivers. The private setters enable self-encapsulated validation of
// business requirements during object construction.
func (c *Coordinate) setLongitude(longitude float64) error {
	if longitude < LongitudeMin || longitude > LongitudeMax {
		return errs.NewValueIsOutOfRangeError("longitude", longitude, LongitudeMin, LongitudeMax)
	}

	c.longitude = longitude
	return nil
}
