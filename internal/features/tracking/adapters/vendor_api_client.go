package adapters

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/aloksharma10/lorrigo-v2-sub007/internal/features/tracking/domain"

	"github.com/google/uuid"
)

// VendorAPIClient fetches tracking events from one courier's JSON tracking
// API. The URL template carries a %s placeholder for the waybill; templates
// without one get the waybill appended as a query value.
type VendorAPIClient struct {
	vendor      string
	urlTemplate string
	client      *http.Client
}

// NewVendorAPIClient creates a new VendorAPIClient for the given vendor.
func NewVendorAPIClient(vendor, urlTemplate string, client *http.Client) *VendorAPIClient {
	return &VendorAPIClient{
		vendor:      strings.ToUpper(strings.TrimSpace(vendor)),
		urlTemplate: urlTemplate,
		client:      client,
	}
}

// vendorTrackingResponse is the JSON shape the courier tracking APIs share
// after the ingestion gateway normalizes their envelopes.
type vendorTrackingResponse struct {
	AWB    string `json:"awb"`
	Events []struct {
		Status     string `json:"status"`
		StatusCode string `json:"status_code"`
		Location   string `json:"location"`
		Timestamp  string `json:"timestamp"`
	} `json:"events"`
}

// FetchEvents retrieves the tracking events for a waybill.
func (a *VendorAPIClient) FetchEvents(ctx context.Context, awb string) ([]domain.TrackingEvent, error) {
	url := a.buildURL(awb)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build tracking request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := a.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("tracking request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("tracking API returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read tracking response: %w", err)
	}

	var parsed vendorTrackingResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, fmt.Errorf("failed to parse tracking response: %w", err)
	}

	return a.mapResponseToDomain(awb, parsed), nil
}

func (a *VendorAPIClient) buildURL(awb string) string {
	if strings.Contains(a.urlTemplate, "%s") {
		return fmt.Sprintf(a.urlTemplate, awb)
	}
	if strings.HasSuffix(a.urlTemplate, "=") {
		return a.urlTemplate + awb
	}
	return fmt.Sprintf("%s?awb=%s", a.urlTemplate, awb)
}

// mapResponseToDomain converts the vendor payload into domain events,
// preserving chronological order. Unparseable timestamps are kept as zero
// times rather than dropping the event.
func (a *VendorAPIClient) mapResponseToDomain(awb string, resp vendorTrackingResponse) []domain.TrackingEvent {
	const timeLayout = "2006-01-02 15:04:05"

	events := make([]domain.TrackingEvent, 0, len(resp.Events))
	for _, item := range resp.Events {
		occurredAt, _ := time.Parse(timeLayout, item.Timestamp)

		events = append(events, domain.TrackingEvent{
			ID:         uuid.New(),
			Vendor:     a.vendor,
			AWB:        awb,
			Status:     item.Status,
			StatusCode: item.StatusCode,
			Location:   item.Location,
			OccurredAt: occurredAt,
		})
	}
	return events
}

// SupportsVendor returns true if this client serves the given vendor name.
func (a *VendorAPIClient) SupportsVendor(vendorName string) bool {
	return strings.ToUpper(strings.TrimSpace(vendorName)) == a.vendor
}
