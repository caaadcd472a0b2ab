package cache

import (
	"context"
	"fmt"
	"time"

	"oldenera-wiki/pkg/catalog"
	"oldenera-wiki/pkg/config"
	"oldenera-wiki/pkg/database"
)

// CatalogCache memoizes resolved catalogs by locale.
// It tracks presence only; there is no size bound or eviction policy.
type CatalogCache interface {
	// Get returns the cached catalog for locale and whether it was present
	Get(ctx context.Context, locale string) ([]catalog.Creature, bool, error)

	// Set stores the catalog for locale
	Set(ctx context.Context, locale string, creatures []catalog.Creature) error

	// Name identifies the backend in logs and status output
	Name() string
}

// New creates the cache backend selected by backend.
// redis may be nil unless backend is config.CacheRedis.
func New(backend string, ttl time.Duration, redis *database.Redis) (CatalogCache, error) {
	switch backend {
	case "", config.CacheDisabled:
		return Disabled{}, nil
	case config.CacheMemory:
		return NewMemory(), nil
	case config.CacheRedis:
		if redis == nil {
			return nil, fmt.Errorf("cache backend %q requires a Redis connection", backend)
		}
		return NewRedis(redis, ttl), nil
	default:
		return nil, fmt.Errorf("unknown cache backend %q", backend)
	}
}
