package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/aloksharma10/lorrigo-v2-sub007/internal/features/tracking/domain"
	"github.com/aloksharma10/lorrigo-v2-sub007/internal/features/tracking/ports"
)

var (
	// ErrVendorNotSupported is returned when no event source serves the vendor.
	ErrVendorNotSupported = errors.New("vendor not supported")
	// ErrNoEvents is returned when the vendor reports no events for a waybill.
	ErrNoEvents = errors.New("no tracking events")
)

// PollResult carries the fetched events and the classified update for the
// latest one. Update.Final tells the caller to stop polling this shipment.
type PollResult struct {
	Update domain.ShipmentUpdate  `json:"update"`
	Events []domain.TrackingEvent `json:"events"`
}

// Poller fetches tracking events from vendor APIs and classifies them.
type Poller struct {
	sources   []ports.EventSource
	processor *Processor
}

// NewPoller creates a new Poller over the given event sources.
func NewPoller(sources []ports.EventSource, processor *Processor) *Poller {
	return &Poller{
		sources:   sources,
		processor: processor,
	}
}

// Poll fetches the events for a waybill from the vendor's tracking API and
// returns the classified result.
func (p *Poller) Poll(ctx context.Context, vendorName, awb string) (*PollResult, error) {
	for _, source := range p.sources {
		if !source.SupportsVendor(vendorName) {
			continue
		}

		events, err := source.FetchEvents(ctx, awb)
		if err != nil {
			return nil, fmt.Errorf("failed to fetch tracking events: %w", err)
		}

		update, ok := p.processor.ProcessAll(events)
		if !ok {
			return nil, ErrNoEvents
		}

		return &PollResult{
			Update: update,
			Events: events,
		}, nil
	}

	return nil, ErrVendorNotSupported
}
