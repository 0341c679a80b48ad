package service

import (
	"github.com/aloksharma10/lorrigo-v2-sub007/internal/core/logger"
	bucketdomain "github.com/aloksharma10/lorrigo-v2-sub007/internal/features/buckets/domain"
	"github.com/aloksharma10/lorrigo-v2-sub007/internal/features/tracking/domain"
	"github.com/aloksharma10/lorrigo-v2-sub007/internal/features/tracking/ports"

	"go.uber.org/zap"
)

// Processor classifies raw tracking events into shipment updates. It is the
// glue between vendor webhooks/polling and the bucket resolver: vendor
// dictionary first, free-text detection as the fallback, never an error.
type Processor struct {
	classifier ports.StatusClassifier
}

// NewProcessor creates a new Processor using the given classifier.
func NewProcessor(classifier ports.StatusClassifier) *Processor {
	return &Processor{
		classifier: classifier,
	}
}

// Process classifies one tracking event.
func (p *Processor) Process(event domain.TrackingEvent) domain.ShipmentUpdate {
	bucket, known := p.classifier.BucketFromVendorCode(event.StatusCode, event.Vendor)
	if !known {
		if event.StatusCode != "" && event.Vendor != "" {
			// Unknown vendor vocabulary is absorbed by keyword detection, but
			// each token is worth a mapping entry in the config store.
			logger.Get().Warn("Unknown vendor status code encountered",
				zap.String("vendor", event.Vendor),
				zap.String("status_code", event.StatusCode),
				zap.String("status", event.Status),
			)
		}
		bucket = p.classifier.DetectBucket(event.Status, event.StatusCode, event.Vendor)
	}

	return domain.ShipmentUpdate{
		BucketCode: bucket.Code(),
		BucketName: bucket.String(),
		Final:      bucket.IsFinal(),
		RTO:        bucketdomain.IsRTOStatus(event.Status, event.StatusCode),
		NDR:        bucketdomain.IsNDRStatus(event.Status, event.StatusCode),
		Delivered:  bucketdomain.IsDeliveredStatus(event.Status, event.StatusCode),
	}
}

// ProcessAll classifies a chronological event batch and returns the update for
// the latest event, which is what gets persisted as the shipment's status.
// ok is false for an empty batch.
func (p *Processor) ProcessAll(events []domain.TrackingEvent) (domain.ShipmentUpdate, bool) {
	if len(events) == 0 {
		return domain.ShipmentUpdate{}, false
	}
	var update domain.ShipmentUpdate
	for _, event := range events {
		update = p.Process(event)
	}
	return update, true
}
