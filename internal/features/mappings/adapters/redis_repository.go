package adapters

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/aloksharma10/lorrigo-v2-sub007/internal/core/cache"
	"github.com/aloksharma10/lorrigo-v2-sub007/internal/features/mappings/domain"
)

// RedisMappingRepository implements ports.MappingRepository on the cache port.
// The whole mapping document lives as one JSON value under a fixed key; it is
// configuration, not hot data, so there is no per-vendor sharding.
type RedisMappingRepository struct {
	cache cache.Cache
	key   string
}

// NewRedisMappingRepository creates a new RedisMappingRepository storing the
// document under the given key.
func NewRedisMappingRepository(c cache.Cache, key string) *RedisMappingRepository {
	return &RedisMappingRepository{
		cache: c,
		key:   key,
	}
}

// Get retrieves the stored mapping document. Returns (nil, nil) when no
// document has been stored yet.
func (r *RedisMappingRepository) Get(ctx context.Context) (domain.VendorMappings, error) {
	data, err := r.cache.Get(ctx, r.key)
	if err != nil {
		if errors.Is(err, cache.ErrKeyNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get vendor mappings: %w", err)
	}

	var mappings domain.VendorMappings
	if err := json.Unmarshal(data, &mappings); err != nil {
		return nil, fmt.Errorf("failed to unmarshal vendor mappings: %w", err)
	}

	return mappings, nil
}

// Save stores the mapping document, replacing any previous one. Mappings are
// configuration and never expire.
func (r *RedisMappingRepository) Save(ctx context.Context, mappings domain.VendorMappings) error {
	data, err := json.Marshal(mappings)
	if err != nil {
		return fmt.Errorf("failed to marshal vendor mappings: %w", err)
	}

	if err := r.cache.Set(ctx, r.key, data, 0); err != nil {
		return fmt.Errorf("failed to save vendor mappings: %w", err)
	}

	return nil
}
