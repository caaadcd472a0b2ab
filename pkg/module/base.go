package module

import (
	"context"
	"log/slog"
	"sync"

	"oldenera-wiki/pkg/database"

	"github.com/danielgtaylor/huma/v2"
)

// Status represents health status values
type Status string

const (
	StatusHealthy   Status = "healthy"
	StatusUnhealthy Status = "unhealthy"
	StatusDegraded  Status = "degraded"
)

// Module defines the interface that all application modules must implement
type Module interface {
	// RegisterUnifiedRoutes registers the module endpoints on the shared API
	RegisterUnifiedRoutes(api huma.API)

	// StartBackgroundTasks runs module background work until ctx ends or Stop is called
	StartBackgroundTasks(ctx context.Context)

	// Stop gracefully stops the module and its background tasks
	Stop()

	// Name returns the module name for logging and identification
	Name() string
}

// BaseModule provides common functionality for all modules
type BaseModule struct {
	name     string
	redis    *database.Redis
	stopCh   chan struct{}
	stopOnce sync.Once
}

// NewBaseModule creates a new base module. redis may be nil.
func NewBaseModule(name string, redis *database.Redis) *BaseModule {
	return &BaseModule{
		name:   name,
		redis:  redis,
		stopCh: make(chan struct{}),
	}
}

// Name returns the module name
func (b *BaseModule) Name() string {
	return b.name
}

// Redis returns the Redis connection, nil when not configured
func (b *BaseModule) Redis() *database.Redis {
	return b.redis
}

// StopChannel returns the stop channel for background tasks
func (b *BaseModule) StopChannel() <-chan struct{} {
	return b.stopCh
}

// Stop gracefully stops the module. Safe to call more than once.
func (b *BaseModule) Stop() {
	b.stopOnce.Do(func() {
		close(b.stopCh)
		slog.Info("Module stopped", "module", b.name)
	})
}

// StartBackgroundTasks blocks until the context is cancelled or the module is stopped
func (b *BaseModule) StartBackgroundTasks(ctx context.Context) {
	select {
	case <-ctx.Done():
		slog.Debug("Background tasks context cancelled", "module", b.name)
	case <-b.stopCh:
		slog.Debug("Background tasks stopped", "module", b.name)
	}
}
