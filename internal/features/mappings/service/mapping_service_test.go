package service

import (
	"context"
	"errors"
	"testing"

	bucketdomain "github.com/aloksharma10/lorrigo-v2-sub007/internal/features/buckets/domain"
	"github.com/aloksharma10/lorrigo-v2-sub007/internal/features/mappings/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockMappingRepository is a mock implementation of MappingRepository for testing.
type mockMappingRepository struct {
	stored      domain.VendorMappings
	returnError error
	saveCalls   int
}

// Get implements MappingRepository.
func (m *mockMappingRepository) Get(ctx context.Context) (domain.VendorMappings, error) {
	if m.returnError != nil {
		return nil, m.returnError
	}
	return m.stored, nil
}

// Save implements MappingRepository.
func (m *mockMappingRepository) Save(ctx context.Context, mappings domain.VendorMappings) error {
	if m.returnError != nil {
		return m.returnError
	}
	m.stored = mappings
	m.saveCalls++
	return nil
}

// TestMappingService_Reload verifies stored mappings reach the resolver and
// stale cached resolutions are invalidated.
func TestMappingService_Reload(t *testing.T) {
	resolver := bucketdomain.NewResolver()
	repo := &mockMappingRepository{
		stored: domain.VendorMappings{
			"ACME": {"X1": bucketdomain.BucketInTransit.Code()},
		},
	}

	svc := NewMappingService(repo, resolver)

	vendors, err := svc.Reload(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, vendors)

	b, ok := resolver.BucketFromVendorCode("X1", "ACME")
	require.True(t, ok)
	assert.Equal(t, bucketdomain.BucketInTransit, b)

	// Change the stored value and reload: the previously cached resolution
	// must not survive.
	repo.stored = domain.VendorMappings{
		"ACME": {"X1": bucketdomain.BucketOutForDelivery.Code()},
	}
	_, err = svc.Reload(context.Background())
	require.NoError(t, err)

	b, ok = resolver.BucketFromVendorCode("X1", "ACME")
	require.True(t, ok)
	assert.Equal(t, bucketdomain.BucketOutForDelivery, b)
}

// TestMappingService_Reload_MissingDocument verifies a missing document loads
// an empty table and drops previously loaded entries.
func TestMappingService_Reload_MissingDocument(t *testing.T) {
	resolver := bucketdomain.NewResolver()
	repo := &mockMappingRepository{
		stored: domain.VendorMappings{
			"ACME": {"X1": bucketdomain.BucketInTransit.Code()},
		},
	}
	svc := NewMappingService(repo, resolver)

	_, err := svc.Reload(context.Background())
	require.NoError(t, err)

	repo.stored = nil
	vendors, err := svc.Reload(context.Background())
	require.NoError(t, err)
	assert.Zero(t, vendors)

	_, ok := resolver.BucketFromVendorCode("X1", "ACME")
	assert.False(t, ok)
}

// TestMappingService_Reload_RepositoryError verifies error propagation.
func TestMappingService_Reload_RepositoryError(t *testing.T) {
	repo := &mockMappingRepository{returnError: errors.New("store down")}
	svc := NewMappingService(repo, bucketdomain.NewResolver())

	_, err := svc.Reload(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load vendor mappings")
}

// TestMappingService_Put verifies validation, storage and activation.
func TestMappingService_Put(t *testing.T) {
	resolver := bucketdomain.NewResolver()
	repo := &mockMappingRepository{}
	svc := NewMappingService(repo, resolver)

	err := svc.Put(context.Background(), domain.VendorMappings{
		"ACME": {"X9": bucketdomain.BucketNDR.Code()},
	})
	require.NoError(t, err)
	assert.Equal(t, 1, repo.saveCalls)

	b, ok := resolver.BucketFromVendorCode("X9", "ACME")
	require.True(t, ok)
	assert.Equal(t, bucketdomain.BucketNDR, b)
}

// TestMappingService_Put_Invalid verifies invalid documents never reach the store.
func TestMappingService_Put_Invalid(t *testing.T) {
	repo := &mockMappingRepository{}
	svc := NewMappingService(repo, bucketdomain.NewResolver())

	err := svc.Put(context.Background(), domain.VendorMappings{
		"ACME": {"X1": 999},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidBucketCode)
	assert.Zero(t, repo.saveCalls)
}

// TestMappingService_CacheOps verifies the cache passthroughs.
func TestMappingService_CacheOps(t *testing.T) {
	resolver := bucketdomain.NewResolver()
	svc := NewMappingService(&mockMappingRepository{}, resolver)

	resolver.DetectBucket("Lost", "C1", "ACME")
	assert.Equal(t, 1, svc.CacheSize())

	svc.ClearCache()
	assert.Zero(t, svc.CacheSize())
}
