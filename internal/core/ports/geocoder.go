package ports

import (
	"context"

	"mapsession/internal/core/domain/model/kernel"
)

// Address is the outcome of a reverse-geocoding lookup.
type Address struct {
	// Label is the human-readable address for the coordinate. When the
	// lookup failed or produced nothing usable, Label carries the
	// coordinate's numeric fallback text instead.
	Label string

	// Fallback marks that Label is the numeric fallback rather than a
	// resolved address. Fallback results must not be cached.
	Fallback bool
}

// Geocoder resolves a coordinate to a display address.
//
// Implementations never fail: any transport error, non-2xx response or
// unusable payload is absorbed into a fallback Address so the selection
// flow always completes. The context bounds the lookup.
type Geocoder interface {
	ResolveAddress(ctx context.Context, coordinate kernel.Coordinate) Address
}
