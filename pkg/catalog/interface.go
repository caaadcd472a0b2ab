package catalog

import "context"

// Provider defines the read access to resolved creature catalogs
type Provider interface {
	// EnsureInitialized loads every reference file and builds all catalogs once
	EnsureInitialized(ctx context.Context) error

	// GetCreatures returns the catalog for locale. The slice is shared and must not be modified.
	GetCreatures(ctx context.Context, locale string) ([]Creature, error)

	// Locales returns the discovered locale codes in sorted order
	Locales(ctx context.Context) ([]string, error)

	// State reports the initialization progress
	State() State
}
