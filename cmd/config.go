package cmd

import "time"

// Config carries the runtime settings of the map session service.
// All values come from the environment; see cmd/app/main.go for the
// variable names and defaults.
type Config struct {
	HTTPPort          string
	GeocoderBaseURL   string
	GeocoderUserAgent string
	GeocoderCacheTTL  time.Duration
	RouterBaseURL     string
	GpsdAddr          string
	SessionMaxIdle    time.Duration
}
