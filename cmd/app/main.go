package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"mapsession/cmd"
	_ "mapsession/docs"
	adapterhttp "mapsession/internal/adapters/in/http"
	"mapsession/internal/generated/servers"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	echoSwagger "github.com/swaggo/echo-swagger"
)

func main() {
	configs := getConfigs()

	app := cmd.NewCompositionRoot(configs)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	jobManager := app.CreateJobManager(logger)
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start background jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(&app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	// A missing .env file is fine in containerized deployments where the
	// environment is injected directly.
	_ = godotenv.Load(".env")

	return cmd.Config{
		HTTPPort:          envOrDefault("HTTP_PORT", "8080"),
		GeocoderBaseURL:   envOrDefault("GEOCODER_BASE_URL", "https://nominatim.openstreetmap.org"),
		GeocoderUserAgent: envOrDefault("GEOCODER_USER_AGENT", "mapsession/1.0"),
		GeocoderCacheTTL:  envDuration("GEOCODER_CACHE_TTL", 10*time.Minute),
		RouterBaseURL:     envOrDefault("ROUTER_BASE_URL", "https://router.project-osrm.org"),
		GpsdAddr:          envOrDefault("GPSD_ADDR", "localhost:2947"),
		SessionMaxIdle:    envDuration("SESSION_MAX_IDLE", 30*time.Minute),
	}
}

func envOrDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func envDuration(key string, fallback time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}

	parsed, err := time.ParseDuration(value)
	if err != nil {
		log.Fatalf("Invalid duration in %s: %v", key, err)
	}
	return parsed
}

func startWebServer(app *cmd.CompositionRoot, port string) {
	e := echo.New()

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})

	registerOpenAPI(e)
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	server := adapterhttp.NewServer(
		app.CreateOpenSessionCommandHandler(),
		app.CreateSelectPointCommandHandler(),
		app.CreateUseCurrentLocationCommandHandler(),
		app.CreateComputeRouteCommandHandler(),
		app.CreateResetSessionCommandHandler(),
		app.CreateUpdatePermissionCommandHandler(),
		app.CreateGetSessionQueryHandler(),
		app.CreateGetActiveSessionsQueryHandler(),
	)
	servers.RegisterHandlersWithBaseURL(e, server, "/api/v1")

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}

// registerOpenAPI validates the contract document on startup and serves it
// as JSON, so clients and gateways always see the contract the binary was
// built against.
func registerOpenAPI(e *echo.Echo) {
	loader := openapi3.NewLoader()

	doc, err := loader.LoadFromFile("api/openapi.yml")
	if err != nil {
		log.Fatalf("Failed to load OpenAPI document: %v", err)
	}

	if err := doc.Validate(loader.Context); err != nil {
		log.Fatalf("OpenAPI document is invalid: %v", err)
	}

	e.GET("/openapi.json", func(c echo.Context) error {
		return c.JSON(http.StatusOK, doc)
	})
}
