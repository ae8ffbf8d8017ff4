// Package geocache decorates a Geocoder with an in-memory cache keyed by
// geohash, so repeated clicks in the same small area skip the network.
package geocache

import (
	"context"
	"sync"
	"time"

	"github.com/mmcloughlin/geohash"

	"mapsession/internal/core/domain/model/kernel"
	"mapsession/internal/core/ports"
)

// geohashPrecision of 9 gives cells of roughly 5x5 meters, fine enough
// that every point in a cell shares one street address.
const geohashPrecision = 9

type cacheEntry struct {
	address   ports.Address
	expiresAt time.Time
}

// CachedGeocoder wraps a Geocoder with a TTL cache.
//
// Fallback results are never cached: a failed lookup should be retried the
// next time the same spot is clicked, not remembered.
type CachedGeocoder struct {
	inner ports.Geocoder
	ttl   time.Duration

	mu      sync.RWMutex
	entries map[string]cacheEntry
}

// NewCachedGeocoder wraps inner with a cache whose entries live for ttl.
func NewCachedGeocoder(inner ports.Geocoder, ttl time.Duration) *CachedGeocoder {
	return &CachedGeocoder{
		inner:   inner,
		ttl:     ttl,
		entries: make(map[string]cacheEntry),
	}
}

var _ ports.Geocoder = &CachedGeocoder{}

// ResolveAddress answers from the cache when a fresh entry covers the
// coordinate's geohash cell, delegating to the wrapped geocoder otherwise.
func (c *CachedGeocoder) ResolveAddress(ctx context.Context, coordinate kernel.Coordinate) ports.Address {
	key := geohash.EncodeWithPrecision(coordinate.Latitude(), coordinate.Longitude(), geohashPrecision)

	c.mu.RLock()
	entry, ok := c.entries[key]
	c.mu.RUnlock()

	if ok && time.Now().Before(entry.expiresAt) {
		return entry.address
	}

	address := c.inner.ResolveAddress(ctx, coordinate)
	if address.Fallback {
		return address
	}

	c.mu.Lock()
	c.entries[key] = cacheEntry{address: address, expiresAt: time.Now().Add(c.ttl)}
	c.mu.Unlock()

	return address
}
