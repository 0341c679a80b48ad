package ports

import (
	"context"

	"github.com/aloksharma10/lorrigo-v2-sub007/internal/features/mappings/domain"
)

// MappingService is the primary port for managing externally-sourced vendor
// status mappings.
type MappingService interface {
	// Reload fetches the mapping document from the store and replaces the
	// resolver's external table with it, clearing the lookup cache. Returns
	// the number of vendors loaded. A missing document loads an empty table.
	Reload(ctx context.Context) (int, error)
	// Put validates and stores a new mapping document, then loads it.
	Put(ctx context.Context, mappings domain.VendorMappings) error
	// CacheSize reports the resolver's memoized entry count.
	CacheSize() int
	// ClearCache empties the resolver's lookup cache.
	ClearCache()
}

// MappingRepository is the secondary port for mapping storage.
type MappingRepository interface {
	// Get returns the stored mappings, or (nil, nil) when none are stored.
	Get(ctx context.Context) (domain.VendorMappings, error)
	// Save stores the mappings, replacing any previous document.
	Save(ctx context.Context, mappings domain.VendorMappings) error
}
