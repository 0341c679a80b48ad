package domain

import (
	"errors"
	"fmt"

	bucketdomain "github.com/aloksharma10/lorrigo-v2-sub007/internal/features/buckets/domain"
)

var (
	// ErrInvalidBucketCode is returned when a mapping references a code
	// outside the canonical taxonomy.
	ErrInvalidBucketCode = errors.New("invalid bucket code")
	// ErrEmptyVendor is returned when a mapping entry carries no vendor name.
	ErrEmptyVendor = errors.New("empty vendor name")
)

// VendorMappings is the externally-sourced configuration shape: vendor name →
// raw status code → canonical bucket code. It is stored as JSON in the config
// store and pushed into the resolver wholesale on reload.
type VendorMappings map[string]map[string]int

// Validate rejects mappings that reference unknown bucket codes or blank
// vendors before they can reach the resolver.
func (m VendorMappings) Validate() error {
	for vendor, codes := range m {
		if vendor == "" {
			return ErrEmptyVendor
		}
		for code, bucketCode := range codes {
			if !bucketdomain.ValidCode(bucketCode) {
				return fmt.Errorf("%w: vendor %s code %s -> %d", ErrInvalidBucketCode, vendor, code, bucketCode)
			}
		}
	}
	return nil
}

// ToBuckets converts the wire shape into the resolver's bucket-typed shape.
func (m VendorMappings) ToBuckets() map[string]map[string]bucketdomain.Bucket {
	out := make(map[string]map[string]bucketdomain.Bucket, len(m))
	for vendor, codes := range m {
		table := make(map[string]bucketdomain.Bucket, len(codes))
		for code, bucketCode := range codes {
			table[code] = bucketdomain.Bucket(bucketCode)
		}
		out[vendor] = table
	}
	return out
}
