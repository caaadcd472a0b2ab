package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"oldenera-wiki/pkg/catalog"
	"oldenera-wiki/pkg/database"
)

const keyPrefix = "wiki:creatures:"

// Redis stores catalogs as JSON documents with a TTL
type Redis struct {
	redis *database.Redis
	ttl   time.Duration
}

// Ensure Redis implements CatalogCache
var _ CatalogCache = (*Redis)(nil)

// NewRedis creates a Redis-backed cache. A zero ttl keeps entries until evicted by the server.
func NewRedis(redis *database.Redis, ttl time.Duration) *Redis {
	return &Redis{
		redis: redis,
		ttl:   ttl,
	}
}

// Key returns the Redis key holding the catalog for locale
func Key(locale string) string {
	return keyPrefix + locale
}

func (r *Redis) Get(ctx context.Context, locale string) ([]catalog.Creature, bool, error) {
	var creatures []catalog.Creature
	if err := r.redis.GetJSON(ctx, Key(locale), &creatures); err != nil {
		if errors.Is(err, database.ErrNil) {
			return nil, false, nil // Cache miss
		}
		return nil, false, fmt.Errorf("failed to read cached catalog for %s: %w", locale, err)
	}
	return creatures, true, nil
}

func (r *Redis) Set(ctx context.Context, locale string, creatures []catalog.Creature) error {
	if err := r.redis.SetJSON(ctx, Key(locale), creatures, r.ttl); err != nil {
		return fmt.Errorf("failed to cache catalog for %s: %w", locale, err)
	}
	return nil
}

func (r *Redis) Name() string { return "redis" }
