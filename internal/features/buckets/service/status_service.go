package service

import (
	"github.com/aloksharma10/lorrigo-v2-sub007/internal/core/logger"
	"github.com/aloksharma10/lorrigo-v2-sub007/internal/features/buckets/domain"
	"github.com/aloksharma10/lorrigo-v2-sub007/internal/features/buckets/ports"

	"go.uber.org/zap"
)

// StatusServiceImpl implements ports.StatusService on top of the resolver.
type StatusServiceImpl struct {
	resolver ports.StatusResolver
}

// NewStatusService creates a new StatusServiceImpl.
func NewStatusService(resolver ports.StatusResolver) *StatusServiceImpl {
	return &StatusServiceImpl{
		resolver: resolver,
	}
}

// Classify resolves a raw status input into its bucket and family flags.
func (s *StatusServiceImpl) Classify(status, statusCode, vendorName string) ports.Classification {
	bucket := s.resolver.DetectBucket(status, statusCode, vendorName)

	if bucket == domain.BucketAll && status != "" {
		// Unclassifiable input is absorbed, not rejected; surface it for the
		// data-quality reports instead.
		logger.Get().Warn("Status could not be classified",
			zap.String("status", status),
			zap.String("status_code", statusCode),
			zap.String("vendor", vendorName),
		)
	}

	return ports.Classification{
		BucketCode: bucket.Code(),
		BucketName: bucket.String(),
		Final:      bucket.IsFinal(),
		RTO:        domain.IsRTOStatus(status, statusCode),
		NDR:        domain.IsNDRStatus(status, statusCode),
		Delivered:  domain.IsDeliveredStatus(status, statusCode),
	}
}

// ListBuckets returns the full canonical taxonomy in code order.
func (s *StatusServiceImpl) ListBuckets() []ports.BucketInfo {
	buckets := domain.Buckets()
	out := make([]ports.BucketInfo, 0, len(buckets))
	for _, b := range buckets {
		out = append(out, ports.BucketInfo{
			Code:  b.Code(),
			Name:  b.String(),
			Final: b.IsFinal(),
		})
	}
	return out
}

// ExpandFamily expands a dashboard family name into its bucket set.
func (s *StatusServiceImpl) ExpandFamily(family string) ([]ports.BucketInfo, bool) {
	set, ok := domain.BucketsForStatusFamily(family)
	if !ok {
		return nil, false
	}
	out := make([]ports.BucketInfo, 0, len(set))
	for _, b := range set {
		out = append(out, ports.BucketInfo{
			Code:  b.Code(),
			Name:  b.String(),
			Final: b.IsFinal(),
		})
	}
	return out, true
}

// IsFinal reports whether a canonical status name ends the shipment lifecycle.
func (s *StatusServiceImpl) IsFinal(status string) bool {
	return domain.IsFinalStatus(status)
}
