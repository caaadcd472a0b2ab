package services

import (
	"context"
	"log/slog"
	"strings"
	"sync"
	"time"

	"oldenera-wiki/internal/creatures/dto"
	"oldenera-wiki/pkg/cache"
	"oldenera-wiki/pkg/catalog"
	"oldenera-wiki/pkg/module"
)

const defaultCacheWriteTimeout = 5 * time.Second

// Service answers creature queries from the catalog cache or the data store
type Service struct {
	store catalog.Provider
	cache cache.CatalogCache

	writeTimeout time.Duration
	writes       sync.WaitGroup
}

// NewService creates a query service. A nil cache disables caching.
func NewService(store catalog.Provider, catalogCache cache.CatalogCache) *Service {
	if catalogCache == nil {
		catalogCache = cache.Disabled{}
	}
	return &Service{
		store:        store,
		cache:        catalogCache,
		writeTimeout: defaultCacheWriteTimeout,
	}
}

// Query returns the creatures of locale whose name or faction contains filter.
// An empty filter matches every creature. Catalog order is preserved and the
// result is never nil.
func (s *Service) Query(ctx context.Context, filter, locale string) ([]catalog.Creature, error) {
	creatures, err := s.catalog(ctx, locale)
	if err != nil {
		return nil, err
	}

	result := make([]catalog.Creature, 0, len(creatures))
	for _, c := range creatures {
		if strings.Contains(c.Name, filter) || strings.Contains(c.Faction, filter) {
			result = append(result, c)
		}
	}

	slog.DebugContext(ctx, "Creature query served",
		"locale", locale,
		"filter", filter,
		"matched", len(result),
		"total", len(creatures),
	)

	return result, nil
}

// catalog reads the locale catalog from the cache, falling back to the store.
// A store hit is written back to the cache without delaying the caller.
func (s *Service) catalog(ctx context.Context, locale string) ([]catalog.Creature, error) {
	creatures, found, err := s.cache.Get(ctx, locale)
	if err != nil {
		slog.WarnContext(ctx, "Catalog cache read failed, using data store",
			"cache", s.cache.Name(),
			"locale", locale,
			"error", err,
		)
	} else if found {
		return creatures, nil
	}

	creatures, err = s.store.GetCreatures(ctx, locale)
	if err != nil {
		return nil, err
	}

	s.populate(ctx, locale, creatures)
	return creatures, nil
}

// populate stores the catalog in the background. Failures are only logged.
func (s *Service) populate(ctx context.Context, locale string, creatures []catalog.Creature) {
	s.writes.Add(1)
	go func() {
		defer s.writes.Done()

		writeCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.writeTimeout)
		defer cancel()

		if err := s.cache.Set(writeCtx, locale, creatures); err != nil {
			slog.WarnContext(writeCtx, "Failed to populate catalog cache",
				"cache", s.cache.Name(),
				"locale", locale,
				"error", err,
			)
		}
	}()
}

// Locales returns the discovered locale codes
func (s *Service) Locales(ctx context.Context) ([]string, error) {
	return s.store.Locales(ctx)
}

// GetStatus reports the store state without triggering initialization
func (s *Service) GetStatus(ctx context.Context) *dto.StatusResponse {
	state := s.store.State()

	status := module.StatusDegraded
	message := "Creature catalog not loaded yet"
	switch state {
	case catalog.StateReady:
		status = module.StatusHealthy
		message = ""
	case catalog.StateFailed:
		status = module.StatusUnhealthy
		if err := s.store.EnsureInitialized(ctx); err != nil {
			message = err.Error()
		}
	}

	return &dto.StatusResponse{
		Module:     "creatures",
		Status:     string(status),
		StoreState: state.String(),
		Cache:      s.cache.Name(),
		Message:    message,
	}
}

// Close waits for pending cache writes
func (s *Service) Close() {
	s.writes.Wait()
}
