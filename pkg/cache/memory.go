package cache

import (
	"context"
	"sync"

	"oldenera-wiki/pkg/catalog"
)

// Memory keeps catalogs in process memory
type Memory struct {
	mu    sync.RWMutex
	items map[string][]catalog.Creature
}

// Ensure Memory implements CatalogCache
var _ CatalogCache = (*Memory)(nil)

// NewMemory creates an empty in-memory cache
func NewMemory() *Memory {
	return &Memory{
		items: make(map[string][]catalog.Creature),
	}
}

func (m *Memory) Get(_ context.Context, locale string) ([]catalog.Creature, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	creatures, ok := m.items[locale]
	return creatures, ok, nil
}

func (m *Memory) Set(_ context.Context, locale string, creatures []catalog.Creature) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.items[locale] = creatures
	return nil
}

func (m *Memory) Name() string { return "memory" }
