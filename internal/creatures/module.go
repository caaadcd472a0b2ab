package creatures

import (
	"context"
	"log/slog"

	"oldenera-wiki/internal/creatures/routes"
	"oldenera-wiki/internal/creatures/services"
	"oldenera-wiki/pkg/cache"
	"oldenera-wiki/pkg/catalog"
	"oldenera-wiki/pkg/database"
	"oldenera-wiki/pkg/module"

	"github.com/danielgtaylor/huma/v2"
)

// Module represents the creatures module
type Module struct {
	*module.BaseModule
	store   catalog.Provider
	service *services.Service
	routes  *routes.Routes
	preload bool
}

// Config holds the creatures module options
type Config struct {
	// Preload builds every catalog when background tasks start instead of on first request
	Preload bool
}

// New creates a new creatures module
func New(store catalog.Provider, catalogCache cache.CatalogCache, redis *database.Redis, cfg Config) *Module {
	service := services.NewService(store, catalogCache)

	return &Module{
		BaseModule: module.NewBaseModule("creatures", redis),
		store:      store,
		service:    service,
		routes:     routes.NewRoutes(service),
		preload:    cfg.Preload,
	}
}

// RegisterUnifiedRoutes registers all module routes with the Huma API
func (m *Module) RegisterUnifiedRoutes(api huma.API) {
	m.routes.RegisterUnifiedRoutes(api)
	slog.Info("Creatures module routes registered", "paths", []string{"/creatures", "/locales", "/status"})
}

// StartBackgroundTasks optionally preloads the catalog, then waits for shutdown
func (m *Module) StartBackgroundTasks(ctx context.Context) {
	if m.preload {
		slog.InfoContext(ctx, "Preloading creature catalog")
		if err := m.store.EnsureInitialized(ctx); err != nil {
			// The failure is cached by the store and reported on every query
			slog.ErrorContext(ctx, "Creature catalog preload failed", "error", err)
		}
	}

	m.BaseModule.StartBackgroundTasks(ctx)
}

// Stop stops background tasks and waits for pending cache writes
func (m *Module) Stop() {
	m.BaseModule.Stop()
	m.service.Close()
}

// GetService returns the creatures service for external use
func (m *Module) GetService() *services.Service {
	return m.service
}

// Ensure Module implements the module interface
var _ module.Module = (*Module)(nil)
