// Package osrm implements the Router port against an OSRM routing engine.
package osrm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"mapsession/internal/core/domain/model/kernel"
	"mapsession/internal/core/domain/model/session"
	"mapsession/internal/core/ports"
)

const requestTimeout = 5 * time.Second

// osrmResponse mirrors the OSRM /route answer: GeoJSON geometry as
// [lon, lat] pairs plus the driving distance in meters.
type osrmResponse struct {
	Code   string `json:"code"`
	Routes []struct {
		Distance float64 `json:"distance"`
		Geometry struct {
			Coordinates [][]float64 `json:"coordinates"`
		} `json:"geometry"`
	} `json:"routes"`
}

// Router computes driving routes via OSRM's /route/v1/driving endpoint.
//
// A failed request (transport error or 5xx) is retried exactly once before
// the call gives up with ports.ErrRoutingUnavailable. A successful answer
// that connects no route maps to ports.ErrRouteNotFound and is not retried.
type Router struct {
	httpClient *http.Client
	baseURL    string
}

// NewRouter creates an OSRM router for the given engine base URL.
func NewRouter(baseURL string) *Router {
	return &Router{
		httpClient: &http.Client{Timeout: requestTimeout},
		baseURL:    baseURL,
	}
}

var _ ports.Router = &Router{}

// ComputeRoute returns the driving route between origin and destination.
func (r *Router) ComputeRoute(
	ctx context.Context, origin, destination kernel.Coordinate) (session.RouteResult, error) {
	route, err := r.requestRoute(ctx, origin, destination)
	if err == nil || errors.Is(err, ports.ErrRouteNotFound) {
		return route, err
	}

	slog.Warn("routing request failed, retrying once", "error", err)

	route, err = r.requestRoute(ctx, origin, destination)
	if err == nil || errors.Is(err, ports.ErrRouteNotFound) {
		return route, err
	}

	return session.RouteResult{}, fmt.Errorf("%w: %w", ports.ErrRoutingUnavailable, err)
}

func (r *Router) requestRoute(
	ctx context.Context, origin, destination kernel.Coordinate) (session.RouteResult, error) {
	u := fmt.Sprintf("%s/route/v1/driving/%f,%f;%f,%f?overview=full&geometries=geojson",
		r.baseURL,
		origin.Longitude(), origin.Latitude(),
		destination.Longitude(), destination.Latitude())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return session.RouteResult{}, err
	}

	resp, err := r.httpClient.Do(req)
	if err != nil {
		return session.RouteResult{}, fmt.Errorf("osrm request: %w", err)
	}
	defer resp.Body.Close()

	// OSRM answers 400 with Code "NoRoute" when the points cannot be
	// connected; treat every 4xx body as a candidate for that mapping.
	if resp.StatusCode >= http.StatusInternalServerError {
		return session.RouteResult{}, fmt.Errorf("osrm status %d", resp.StatusCode)
	}

	var parsed osrmResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return session.RouteResult{}, fmt.Errorf("osrm decode: %w", err)
	}

	if parsed.Code == "NoRoute" || (parsed.Code == "Ok" && len(parsed.Routes) == 0) {
		return session.RouteResult{}, ports.ErrRouteNotFound
	}

	if parsed.Code != "Ok" {
		return session.RouteResult{}, fmt.Errorf("osrm code %q", parsed.Code)
	}

	best := parsed.Routes[0]
	geometry := make([]kernel.Coordinate, 0, len(best.Geometry.Coordinates))
	for _, pair := range best.Geometry.Coordinates {
		if len(pair) < 2 {
			return session.RouteResult{}, fmt.Errorf("osrm geometry: malformed point %v", pair)
		}

		point, err := kernel.NewCoordinate(pair[1], pair[0])
		if err != nil {
			return session.RouteResult{}, fmt.Errorf("osrm geometry: %w", err)
		}
		geometry = append(geometry, point)
	}

	return session.NewRouteResult(geometry, best.Distance)
}
