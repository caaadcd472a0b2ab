package cache

import (
	"context"

	"oldenera-wiki/pkg/catalog"
)

// Disabled is a cache that never holds anything
type Disabled struct{}

// Ensure Disabled implements CatalogCache
var _ CatalogCache = Disabled{}

func (Disabled) Get(context.Context, string) ([]catalog.Creature, bool, error) {
	return nil, false, nil
}

func (Disabled) Set(context.Context, string, []catalog.Creature) error {
	return nil
}

func (Disabled) Name() string { return "disabled" }
