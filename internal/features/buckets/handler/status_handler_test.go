package handler

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/aloksharma10/lorrigo-v2-sub007/internal/features/buckets/domain"
	"github.com/aloksharma10/lorrigo-v2-sub007/internal/features/buckets/ports"
	"github.com/aloksharma10/lorrigo-v2-sub007/internal/features/buckets/service"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestApp(t *testing.T) *fiber.App {
	t.Helper()

	handler := NewStatusHandler(service.NewStatusService(domain.NewResolver()))

	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		c.Locals("requestid", "test-ray-id")
		return c.Next()
	})
	app.Post("/v1/status/classify", handler.Classify)
	app.Get("/v1/status/buckets", handler.ListBuckets)
	app.Get("/v1/status/families/:name", handler.ExpandFamily)
	app.Get("/v1/status/final/:status", handler.Finality)

	return app
}

// TestStatusHandler_Classify verifies a raw status resolves over HTTP.
func TestStatusHandler_Classify(t *testing.T) {
	app := newTestApp(t)

	body := `{"status": "Package Lost In Transit", "status_code": "FOOBAR", "vendor": "ACME"}`
	req := httptest.NewRequest("POST", "/v1/status/classify", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var result ports.Classification
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))
	assert.Equal(t, "EXCEPTION", result.BucketName)
	assert.Equal(t, domain.BucketException.Code(), result.BucketCode)
}

// TestStatusHandler_Classify_InvalidBody verifies malformed JSON is rejected.
func TestStatusHandler_Classify_InvalidBody(t *testing.T) {
	app := newTestApp(t)

	req := httptest.NewRequest("POST", "/v1/status/classify", strings.NewReader("{not json"))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

// TestStatusHandler_ListBuckets verifies the taxonomy endpoint.
func TestStatusHandler_ListBuckets(t *testing.T) {
	app := newTestApp(t)

	resp, err := app.Test(httptest.NewRequest("GET", "/v1/status/buckets", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var result []ports.BucketInfo
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))
	assert.Len(t, result, len(domain.Buckets()))
}

// TestStatusHandler_ExpandFamily verifies expansion, the ALL case and unknown families.
func TestStatusHandler_ExpandFamily(t *testing.T) {
	app := newTestApp(t)

	resp, err := app.Test(httptest.NewRequest("GET", "/v1/status/families/RTO", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var result FamilyResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))
	assert.Len(t, result.Buckets, 3)

	resp, err = app.Test(httptest.NewRequest("GET", "/v1/status/families/ALL", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))
	assert.NotNil(t, result.Buckets)
	assert.Empty(t, result.Buckets)

	resp, err = app.Test(httptest.NewRequest("GET", "/v1/status/families/BOGUS", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

// TestStatusHandler_Finality verifies the finality endpoint.
func TestStatusHandler_Finality(t *testing.T) {
	app := newTestApp(t)

	resp, err := app.Test(httptest.NewRequest("GET", "/v1/status/final/DELIVERED", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var result FinalityResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))
	assert.True(t, result.Final)

	resp, err = app.Test(httptest.NewRequest("GET", "/v1/status/final/IN_TRANSIT", nil))
	require.NoError(t, err)
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))
	assert.False(t, result.Final)
}
