package app

import (
	"context"
	"fmt"
	"io/fs"
	"log"
	"log/slog"
	"os"

	"oldenera-wiki/data"
	"oldenera-wiki/pkg/cache"
	"oldenera-wiki/pkg/catalog"
	"oldenera-wiki/pkg/config"
	"oldenera-wiki/pkg/database"
	"oldenera-wiki/pkg/logging"

	"github.com/joho/godotenv"
)

// AppContext holds the shared application context and dependencies
type AppContext struct {
	Config           *config.Config
	Redis            *database.Redis
	Store            *catalog.Store
	Cache            cache.CatalogCache
	TelemetryManager *logging.TelemetryManager
	ServiceName      string
	shutdownFuncs    []func(context.Context) error
}

// InitializeApp initializes common application dependencies
func InitializeApp(serviceName string) (*AppContext, error) {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Printf("No .env file found or error loading it: %v", err)
	}

	ctx := context.Background()

	// Initialize telemetry
	telemetryManager := logging.NewTelemetryManager(serviceName)
	if err := telemetryManager.Initialize(ctx); err != nil {
		log.Printf("Warning: Failed to initialize telemetry: %v", err)
		// Continue without telemetry rather than failing
	}

	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	appCtx := &AppContext{
		Config:           cfg,
		TelemetryManager: telemetryManager,
		ServiceName:      serviceName,
	}

	if cfg.CacheBackend == config.CacheRedis {
		redis, err := database.NewRedis(ctx, cfg.RedisURL)
		if err != nil {
			slog.Error("Failed to connect to Redis, catalog cache disabled", "error", err)
			// Continue without Redis, the store serves every request
			cfg.CacheBackend = config.CacheDisabled
		} else {
			appCtx.Redis = redis
			appCtx.shutdownFuncs = append(appCtx.shutdownFuncs, func(ctx context.Context) error {
				return redis.Close()
			})
		}
	}

	appCtx.Cache, err = cache.New(cfg.CacheBackend, cfg.CacheTTL, appCtx.Redis)
	if err != nil {
		return nil, err
	}

	fsys, source, err := DataFS(cfg.DataDir)
	if err != nil {
		return nil, err
	}
	appCtx.Store = catalog.NewStore(fsys, catalog.WithLoadConcurrency(cfg.LoadConcurrency))

	slog.Info("Creature data store created",
		"data_source", source,
		"cache", appCtx.Cache.Name(),
		"load_concurrency", cfg.LoadConcurrency,
	)

	appCtx.shutdownFuncs = append(appCtx.shutdownFuncs, telemetryManager.Shutdown)

	return appCtx, nil
}

// DataFS returns the reference data directory, or the bundled data when dir is empty
func DataFS(dir string) (fs.FS, string, error) {
	if dir == "" {
		return data.FS(), "embedded", nil
	}

	info, err := os.Stat(dir)
	if err != nil {
		return nil, "", fmt.Errorf("data directory: %w", err)
	}
	if !info.IsDir() {
		return nil, "", fmt.Errorf("data directory %s is not a directory", dir)
	}

	return os.DirFS(dir), dir, nil
}

// Shutdown gracefully shuts down all application dependencies
func (a *AppContext) Shutdown(ctx context.Context) error {
	slog.Info("Shutting down application", "service", a.ServiceName)

	for _, shutdown := range a.shutdownFuncs {
		if err := shutdown(ctx); err != nil {
			slog.Error("Error during shutdown", "error", err)
		}
	}

	slog.Info("Application shutdown completed", "service", a.ServiceName)
	return nil
}
