package ports

import (
	"context"

	bucketdomain "github.com/aloksharma10/lorrigo-v2-sub007/internal/features/buckets/domain"
	"github.com/aloksharma10/lorrigo-v2-sub007/internal/features/tracking/domain"
)

// StatusClassifier is the slice of the bucket resolver the event processor
// needs, satisfied by *buckets/domain.Resolver.
type StatusClassifier interface {
	// BucketFromVendorCode resolves a vendor token via the dictionaries;
	// false means unknown and the caller falls through to DetectBucket.
	BucketFromVendorCode(vendorStatusCode, vendorName string) (bucketdomain.Bucket, bool)
	// DetectBucket combines every strategy and never fails.
	DetectBucket(status, statusCode, vendorName string) bucketdomain.Bucket
}

// EventSource defines the interface for vendor tracking API implementations.
type EventSource interface {
	// FetchEvents retrieves the tracking events for a waybill.
	FetchEvents(ctx context.Context, awb string) ([]domain.TrackingEvent, error)
	// SupportsVendor returns true if this source serves the given vendor name.
	SupportsVendor(vendorName string) bool
}
