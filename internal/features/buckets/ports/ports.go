package ports

import "github.com/aloksharma10/lorrigo-v2-sub007/internal/features/buckets/domain"

// Classification is the resolved view of one raw status input.
type Classification struct {
	// BucketCode is the stable integer code persisted for the shipment.
	BucketCode int `json:"bucket_code"`
	// BucketName is the canonical name for APIs and the dashboard.
	BucketName string `json:"bucket_name"`
	// Final is true when the shipment needs no further tracking updates.
	Final bool `json:"final"`
	// RTO, NDR and Delivered are the coarse family flags downstream
	// aggregation branches on.
	RTO       bool `json:"rto"`
	NDR       bool `json:"ndr"`
	Delivered bool `json:"delivered"`
}

// BucketInfo describes one bucket of the canonical taxonomy.
type BucketInfo struct {
	Code  int    `json:"code"`
	Name  string `json:"name"`
	Final bool   `json:"final"`
}

// StatusService is the primary port for status classification operations.
type StatusService interface {
	// Classify resolves a raw status using every strategy (vendor dictionary,
	// cache, keyword fallback) and reports the family flags alongside.
	Classify(status, statusCode, vendorName string) Classification
	// ListBuckets returns the full taxonomy in code order.
	ListBuckets() []BucketInfo
	// ExpandFamily expands a dashboard family name. ok is false for unknown
	// families; "ALL" yields an empty expansion with ok true.
	ExpandFamily(family string) (buckets []BucketInfo, ok bool)
	// IsFinal reports whether a canonical status name ends the lifecycle.
	IsFinal(status string) bool
}

// StatusResolver is the secondary port over the bucket resolver, satisfied by
// *domain.Resolver.
type StatusResolver interface {
	BucketFromVendorCode(vendorStatusCode, vendorName string) (domain.Bucket, bool)
	DetectBucket(status, statusCode, vendorName string) domain.Bucket
	LoadExternalVendorMappings(mappings map[string]map[string]domain.Bucket)
	ClearCache()
	CacheSize() int
}
