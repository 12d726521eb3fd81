package app

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"

	"breadthpulse/config"
	"breadthpulse/internal/api"
	"breadthpulse/internal/realtime"
	"breadthpulse/internal/service"
	"breadthpulse/internal/storage"
)

// InitializeApp sets up all application dependencies and returns
// a fully configured Gin router, a cleanup function for graceful shutdown,
// and any error encountered during initialization.
//
// Responsibilities:
//   - Connects to PostgreSQL using InitPostgres().
//   - Initializes the repository layer (SnapshotsRepository).
//   - Creates the service layer with the configured window, bucket width,
//     and universe allow-list.
//   - Configures the Gin router with all API routes.
//   - Registers health probes and the websocket endpoint.
//   - Provides a cleanup function to close resources (e.g., DB connection).
func InitializeApp() (*gin.Engine, func(), error) {
	// Load global configuration
	cfg := config.AppConfig

	// Connect to PostgreSQL
	// indirection for unit testing
	db, err := postgresOpener(cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize postgres: %w", err)
	}

	// Initialize repository layer (responsible for DB access)
	repo := storage.NewSnapshotsRepository(db)

	// Initialize service layer (business logic)
	svc := service.NewBreadthService(repo, service.Options{
		Window:      time.Duration(cfg.Breadth.WindowMinutes) * time.Minute,
		BucketWidth: time.Duration(cfg.Breadth.BucketSeconds) * time.Second,
		UniverseIDs: cfg.Universe.SecurityIDs,
	})

	// Initialize HTTP handler layer (business logic to HTTP mapping)
	handler := api.NewHandler(svc)

	// Setup Gin router with routes
	router := api.NewRouter(handler)

	// Register health and readiness probes
	healthHandler := api.NewHealthHandler(db.Ping)
	healthHandler.Register(router)

	// Register the websocket endpoint (connection logging only, no fan-out)
	realtime.NewServer().Register(router)

	// Cleanup resources on shutdown
	cleanup := func() {
		_ = db.Close()
	}

	return router, cleanup, nil
}
