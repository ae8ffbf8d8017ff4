// Package gpsd implements the LocationProvider port on top of a gpsd
// daemon, the positioning source of the host the service runs on.
package gpsd

import (
	"context"
	"log/slog"
	"net"
	"time"

	"github.com/stratoberry/go-gpsd"

	"mapsession/internal/core/domain/model/kernel"
	"mapsession/internal/core/domain/model/permission"
	"mapsession/internal/core/ports"
)

const (
	fixTimeout   = 5 * time.Second
	probeTimeout = time.Second
)

// LocationProvider reads the device position from gpsd.
//
// Permission semantics map onto daemon reachability: a reachable daemon
// means position access is granted, an unreachable one leaves the status
// unknown until a position is actually requested.
type LocationProvider struct {
	addr string
}

// NewLocationProvider creates a provider talking to gpsd at addr
// (host:port, conventionally localhost:2947).
func NewLocationProvider(addr string) *LocationProvider {
	return &LocationProvider{addr: addr}
}

var _ ports.LocationProvider = &LocationProvider{}

// QueryPermission probes the daemon without requesting a fix.
func (p *LocationProvider) QueryPermission(_ context.Context) permission.Status {
	conn, err := net.DialTimeout("tcp", p.addr, probeTimeout)
	if err != nil {
		return permission.Unknown
	}
	_ = conn.Close()

	return permission.Granted
}

// CurrentPosition waits for a single 2D-or-better fix from gpsd.
//
// An unreachable daemon maps to ErrPermissionDenied, a closed watch stream
// to ErrPositionUnavailable, and an expired deadline to ErrLocationTimeout.
func (p *LocationProvider) CurrentPosition(ctx context.Context) (kernel.Coordinate, error) {
	session, err := gpsd.Dial(p.addr)
	if err != nil {
		slog.Warn("gpsd unreachable", "addr", p.addr, "error", err)
		return kernel.Coordinate{}, ports.ErrPermissionDenied
	}

	fixes := make(chan kernel.Coordinate, 1)
	session.AddFilter("TPV", func(r interface{}) {
		tpv, ok := r.(*gpsd.TPVReport)
		if !ok || tpv.Mode < gpsd.Mode2D {
			return
		}

		coordinate, err := kernel.NewCoordinate(tpv.Lat, tpv.Lon)
		if err != nil {
			return
		}

		select {
		case fixes <- coordinate:
		default:
		}
	})

	// Watch returns a channel that closes when the watch ends, e.g. on a
	// lost connection. go-gpsd has no Close(); an abandoned session is torn
	// down when the watch goroutine sees the dead connection.
	done := session.Watch()

	timer := time.NewTimer(fixTimeout)
	defer timer.Stop()

	select {
	case coordinate := <-fixes:
		return coordinate, nil
	case <-done:
		return kernel.Coordinate{}, ports.ErrPositionUnavailable
	case <-timer.C:
		return kernel.Coordinate{}, ports.ErrLocationTimeout
	case <-ctx.Done():
		return kernel.Coordinate{}, ports.ErrLocationTimeout
	}
}
