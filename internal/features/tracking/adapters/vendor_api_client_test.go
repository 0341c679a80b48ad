package adapters

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestVendorAPIClient_FetchEvents verifies fetching and mapping a tracking payload.
func TestVendorAPIClient_FetchEvents(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/track/AWB123", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"awb": "AWB123",
			"events": [
				{"status": "Picked Up", "status_code": "PP", "location": "Gurgaon_HUB", "timestamp": "2026-08-01 09:15:00"},
				{"status": "In Transit", "status_code": "UD", "location": "Delhi_GW", "timestamp": "2026-08-02 03:40:00"}
			]
		}`))
	}))
	defer ts.Close()

	client := NewVendorAPIClient("DELHIVERY", ts.URL+"/track/%s", &http.Client{Timeout: time.Second})

	events, err := client.FetchEvents(context.Background(), "AWB123")
	require.NoError(t, err)
	require.Len(t, events, 2)

	assert.Equal(t, "DELHIVERY", events[0].Vendor)
	assert.Equal(t, "AWB123", events[0].AWB)
	assert.Equal(t, "Picked Up", events[0].Status)
	assert.Equal(t, "PP", events[0].StatusCode)
	assert.Equal(t, "Gurgaon_HUB", events[0].Location)
	assert.Equal(t, 2026, events[0].OccurredAt.Year())
	assert.NotEqual(t, events[0].ID, events[1].ID)
}

// TestVendorAPIClient_FetchEvents_HTTPError verifies non-200 handling.
func TestVendorAPIClient_FetchEvents_HTTPError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer ts.Close()

	client := NewVendorAPIClient("DELHIVERY", ts.URL+"/track/%s", &http.Client{Timeout: time.Second})

	_, err := client.FetchEvents(context.Background(), "AWB123")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "returned status 503")
}

// TestVendorAPIClient_FetchEvents_BadJSON verifies parse error handling.
func TestVendorAPIClient_FetchEvents_BadJSON(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("not json"))
	}))
	defer ts.Close()

	client := NewVendorAPIClient("DELHIVERY", ts.URL+"/track/%s", &http.Client{Timeout: time.Second})

	_, err := client.FetchEvents(context.Background(), "AWB123")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse tracking response")
}

// TestVendorAPIClient_BuildURL verifies the template fallbacks.
func TestVendorAPIClient_BuildURL(t *testing.T) {
	withPlaceholder := NewVendorAPIClient("X", "https://api.test/track/%s", nil)
	assert.Equal(t, "https://api.test/track/AWB1", withPlaceholder.buildURL("AWB1"))

	withQuery := NewVendorAPIClient("X", "https://api.test/track?awb=", nil)
	assert.Equal(t, "https://api.test/track?awb=AWB1", withQuery.buildURL("AWB1"))

	bare := NewVendorAPIClient("X", "https://api.test/track", nil)
	assert.Equal(t, "https://api.test/track?awb=AWB1", bare.buildURL("AWB1"))
}

// TestVendorAPIClient_SupportsVendor verifies case-insensitive vendor matching.
func TestVendorAPIClient_SupportsVendor(t *testing.T) {
	client := NewVendorAPIClient("Delhivery", "https://api.test/%s", nil)

	assert.True(t, client.SupportsVendor("DELHIVERY"))
	assert.True(t, client.SupportsVendor("  delhivery "))
	assert.False(t, client.SupportsVendor("SHIPROCKET"))
}
