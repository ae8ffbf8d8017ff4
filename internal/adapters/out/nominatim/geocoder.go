// Package nominatim implements the Geocoder port against the Nominatim
// reverse-geocoding HTTP API.
package nominatim

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"mapsession/internal/core/domain/model/kernel"
	"mapsession/internal/core/ports"
)

const requestTimeout = 5 * time.Second

// Geocoder resolves coordinates to display addresses via Nominatim's
// /reverse endpoint.
//
// Lookups never fail from the caller's point of view: any transport error,
// non-200 status or unusable payload is logged and absorbed into a fallback
// Address carrying the coordinate's numeric label, so the selection flow
// always completes.
type Geocoder struct {
	httpClient *http.Client
	baseURL    string
	userAgent  string
}

// NewGeocoder creates a Nominatim geocoder.
// userAgent is required by Nominatim's usage policy.
func NewGeocoder(baseURL, userAgent string) *Geocoder {
	return &Geocoder{
		httpClient: &http.Client{Timeout: requestTimeout},
		baseURL:    baseURL,
		userAgent:  userAgent,
	}
}

var _ ports.Geocoder = &Geocoder{}

// ResolveAddress reverse-geocodes the coordinate to a human-readable
// address, falling back to the numeric label when the lookup fails.
func (g *Geocoder) ResolveAddress(ctx context.Context, coordinate kernel.Coordinate) ports.Address {
	label, err := g.reverse(ctx, coordinate)
	if err != nil {
		slog.Warn("reverse geocoding failed, using fallback label",
			"coordinate", coordinate.String(), "error", err)
		return ports.Address{Label: coordinate.FallbackLabel(), Fallback: true}
	}

	return ports.Address{Label: label}
}

func (g *Geocoder) reverse(ctx context.Context, coordinate kernel.Coordinate) (string, error) {
	u := g.baseURL + "/reverse?" + url.Values{
		"format": {"jsonv2"},
		"lat":    {strconv.FormatFloat(coordinate.Latitude(), 'f', -1, 64)},
		"lon":    {strconv.FormatFloat(coordinate.Longitude(), 'f', -1, 64)},
	}.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("User-Agent", g.userAgent)

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("nominatim request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("nominatim status %d", resp.StatusCode)
	}

	var result struct {
		DisplayName string `json:"display_name"`
		Error       string `json:"error"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", fmt.Errorf("nominatim decode: %w", err)
	}

	if result.Error != "" {
		return "", fmt.Errorf("nominatim error: %s", result.Error)
	}

	if result.DisplayName == "" {
		return "", errors.New("nominatim returned no display name")
	}

	return result.DisplayName, nil
}
