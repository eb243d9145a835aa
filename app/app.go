package app

import (
	"context"
	"fmt"

	"inmobiliaria-premium/app/controller"
	"inmobiliaria-premium/app/router"
	"inmobiliaria-premium/cache"
	"inmobiliaria-premium/config"
	"inmobiliaria-premium/scheduler"
	"inmobiliaria-premium/service"
)

// Initialize wires the application together and registers the routes.
// It returns the config and the refresh scheduler so main can pick the
// listen address and stop the scheduler on shutdown.
func Initialize(ctx context.Context) (*config.Config, *scheduler.Scheduler, error) {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		return nil, nil, fmt.Errorf("invalid configuration: %w", err)
	}

	// Initialize Drive service
	driveService, err := service.NewDriveService(ctx, cfg)
	if err != nil {
		return nil, nil, err
	}

	// Catalog cache and service
	catalogCache := cache.NewCatalog(cfg.CacheTTL)
	catalogService := service.NewCatalogService(driveService, catalogCache, cfg.RootFolderID, cfg.MaxConcurrency)

	// Create controllers
	controllers := &router.Controllers{
		Property: controller.NewPropertyController(catalogService, cfg.Agency),
	}

	// Setup routes using standard http router
	router.SetupRoutes(controllers)

	// Background catalog refresh
	refresher := scheduler.New(cfg, catalogService)
	if err := refresher.Start(ctx); err != nil {
		return nil, nil, err
	}

	return cfg, refresher, nil
}
