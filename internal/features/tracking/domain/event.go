package domain

import (
	"time"

	"github.com/google/uuid"
)

// TrackingEvent is one raw status update from a courier, either pushed via
// webhook or pulled from the vendor's tracking API. Status and StatusCode are
// the vendor's own vocabulary; classification happens downstream.
type TrackingEvent struct {
	// ID identifies the event for dedup and audit.
	ID uuid.UUID `json:"id"`
	// Vendor is the courier integration the event came from.
	Vendor string `json:"vendor"`
	// AWB is the vendor's waybill number for the shipment.
	AWB string `json:"awb"`
	// Status is the raw, possibly free-text status string.
	Status string `json:"status"`
	// StatusCode is the vendor-specific status code, if any.
	StatusCode string `json:"status_code,omitempty"`
	// Location is where the event occurred, if reported.
	Location string `json:"location,omitempty"`
	// OccurredAt is the vendor-reported event time.
	OccurredAt time.Time `json:"occurred_at"`
}

// ShipmentUpdate is the classified outcome of processing tracking events: the
// canonical bucket to persist plus the family flags downstream logic branches
// on. Final means polling for further events can stop.
type ShipmentUpdate struct {
	BucketCode int    `json:"bucket_code"`
	BucketName string `json:"bucket_name"`
	Final      bool   `json:"final"`
	RTO        bool   `json:"rto"`
	NDR        bool   `json:"ndr"`
	Delivered  bool   `json:"delivered"`
}
