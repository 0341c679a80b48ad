package service

import (
	"context"
	"fmt"

	"github.com/aloksharma10/lorrigo-v2-sub007/internal/core/logger"
	bucketports "github.com/aloksharma10/lorrigo-v2-sub007/internal/features/buckets/ports"
	"github.com/aloksharma10/lorrigo-v2-sub007/internal/features/mappings/domain"
	"github.com/aloksharma10/lorrigo-v2-sub007/internal/features/mappings/ports"

	"go.uber.org/zap"
)

// MappingServiceImpl implements ports.MappingService. It is the one writer of
// the resolver's external table; the resolver itself never fetches anything.
type MappingServiceImpl struct {
	repo     ports.MappingRepository
	resolver bucketports.StatusResolver
}

// NewMappingService creates a new MappingServiceImpl.
func NewMappingService(repo ports.MappingRepository, resolver bucketports.StatusResolver) *MappingServiceImpl {
	return &MappingServiceImpl{
		repo:     repo,
		resolver: resolver,
	}
}

// Reload fetches the mapping document from the store and pushes it into the
// resolver, replacing the previous external table and clearing the lookup
// cache. A missing document loads an empty table, dropping any previously
// loaded external entries.
func (s *MappingServiceImpl) Reload(ctx context.Context) (int, error) {
	mappings, err := s.repo.Get(ctx)
	if err != nil {
		return 0, fmt.Errorf("service: failed to load vendor mappings: %w", err)
	}

	if err := mappings.Validate(); err != nil {
		return 0, fmt.Errorf("service: stored vendor mappings are invalid: %w", err)
	}

	s.resolver.LoadExternalVendorMappings(mappings.ToBuckets())

	logger.Get().Info("Vendor mappings reloaded",
		zap.Int("vendors", len(mappings)),
	)
	return len(mappings), nil
}

// Put validates and stores a new mapping document, then loads it into the
// resolver so the change takes effect without a restart.
func (s *MappingServiceImpl) Put(ctx context.Context, mappings domain.VendorMappings) error {
	if err := mappings.Validate(); err != nil {
		return err
	}

	if err := s.repo.Save(ctx, mappings); err != nil {
		return fmt.Errorf("service: failed to save vendor mappings: %w", err)
	}

	s.resolver.LoadExternalVendorMappings(mappings.ToBuckets())
	return nil
}

// CacheSize reports the resolver's memoized entry count.
func (s *MappingServiceImpl) CacheSize() int {
	return s.resolver.CacheSize()
}

// ClearCache empties the resolver's lookup cache.
func (s *MappingServiceImpl) ClearCache() {
	s.resolver.ClearCache()
}
