package cmd

import (
	"log/slog"

	"mapsession/internal/adapters/out/geocache"
	"mapsession/internal/adapters/out/gpsd"
	"mapsession/internal/adapters/out/memstore"
	"mapsession/internal/adapters/out/nominatim"
	"mapsession/internal/adapters/out/osrm"
	"mapsession/internal/core/application/usecases/commands"
	"mapsession/internal/core/application/usecases/queries"
	"mapsession/internal/core/domain/services"
	"mapsession/internal/core/ports"
	"mapsession/internal/jobs"
)

// CompositionRoot wires the adapters to the application handlers.
// All dependencies are created once and shared; the session store is the
// single in-memory source of truth.
type CompositionRoot struct {
	config Config

	sessionStore     *memstore.SessionStore
	geocoder         ports.Geocoder
	router           ports.Router
	locationProvider ports.LocationProvider
	presenter        services.SelectionPresenter
}

// NewCompositionRoot builds the object graph from the configuration.
func NewCompositionRoot(config Config) CompositionRoot {
	geocoder := geocache.NewCachedGeocoder(
		nominatim.NewGeocoder(config.GeocoderBaseURL, config.GeocoderUserAgent),
		config.GeocoderCacheTTL,
	)

	return CompositionRoot{
		config:           config,
		sessionStore:     memstore.NewSessionStore(),
		geocoder:         geocoder,
		router:           osrm.NewRouter(config.RouterBaseURL),
		locationProvider: gpsd.NewLocationProvider(config.GpsdAddr),
		presenter:        services.NewSelectionPresenter(),
	}
}

func (c *CompositionRoot) CreateOpenSessionCommandHandler() commands.OpenSessionCommandHandler {
	return commands.NewOpenSessionCommandHandler(c.sessionStore, c.locationProvider)
}

func (c *CompositionRoot) CreateSelectPointCommandHandler() commands.SelectPointCommandHandler {
	return commands.NewSelectPointCommandHandler(c.sessionStore, c.geocoder)
}

func (c *CompositionRoot) CreateUseCurrentLocationCommandHandler() commands.UseCurrentLocationCommandHandler {
	return commands.NewUseCurrentLocationCommandHandler(c.sessionStore, c.locationProvider, c.geocoder)
}

func (c *CompositionRoot) CreateComputeRouteCommandHandler() commands.ComputeRouteCommandHandler {
	return commands.NewComputeRouteCommandHandler(c.sessionStore, c.router)
}

func (c *CompositionRoot) CreateResetSessionCommandHandler() commands.ResetSessionCommandHandler {
	return commands.NewResetSessionCommandHandler(c.sessionStore)
}

func (c *CompositionRoot) CreateUpdatePermissionCommandHandler() commands.UpdatePermissionCommandHandler {
	return commands.NewUpdatePermissionCommandHandler(c.sessionStore)
}

func (c *CompositionRoot) CreateExpireSessionsCommandHandler() commands.ExpireSessionsCommandHandler {
	return commands.NewExpireSessionsCommandHandler(c.sessionStore)
}

func (c *CompositionRoot) CreateGetSessionQueryHandler() queries.GetSessionQueryHandler {
	return queries.NewGetSessionQueryHandler(c.sessionStore, c.presenter)
}

func (c *CompositionRoot) CreateGetActiveSessionsQueryHandler() queries.GetActiveSessionsQueryHandler {
	return queries.NewGetActiveSessionsQueryHandler(c.sessionStore)
}

// CreateJobManager wires the background jobs.
func (c *CompositionRoot) CreateJobManager(logger *slog.Logger) *jobs.JobManager {
	return jobs.NewJobManager(
		c.CreateExpireSessionsCommandHandler(),
		c.config.SessionMaxIdle,
		logger,
	)
}
