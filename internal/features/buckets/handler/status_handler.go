package handler

import (
	"github.com/aloksharma10/lorrigo-v2-sub007/internal/features/buckets/ports"

	"github.com/gofiber/fiber/v2"
)

// StatusHandler handles HTTP requests for status classification.
type StatusHandler struct {
	statusService ports.StatusService
}

// NewStatusHandler creates a new StatusHandler.
func NewStatusHandler(statusService ports.StatusService) *StatusHandler {
	return &StatusHandler{
		statusService: statusService,
	}
}

// ErrorResponse represents an error response with Ray ID.
type ErrorResponse struct {
	// Message is the error description.
	Message string `json:"message"`
	// RayID is the unique request identifier for tracing.
	RayID string `json:"ray_id,omitempty"`
}

// ClassifyRequest is the raw status input from an ingestion collaborator.
type ClassifyRequest struct {
	// Status is the raw, possibly free-text status string.
	Status string `json:"status"`
	// StatusCode is the vendor-specific status code, if any.
	StatusCode string `json:"status_code,omitempty"`
	// Vendor is the courier integration the status came from, if known.
	Vendor string `json:"vendor,omitempty"`
}

// FamilyResponse is the expansion of one dashboard family.
type FamilyResponse struct {
	// Family is the normalized family name.
	Family string `json:"family"`
	// Buckets is the expansion. Empty for "ALL", meaning "no filter".
	Buckets []ports.BucketInfo `json:"buckets"`
}

// FinalityResponse reports whether a status ends the shipment lifecycle.
type FinalityResponse struct {
	Status string `json:"status"`
	Final  bool   `json:"final"`
}

// Classify godoc
// @Summary Classify a raw shipment status
// @Description Resolves a vendor status string and optional code into a canonical bucket with family flags
// @Tags status
// @Accept json
// @Produce json
// @Param request body ClassifyRequest true "Raw status input"
// @Success 200 {object} ports.Classification
// @Failure 400 {object} ErrorResponse
// @Router /v1/status/classify [post]
func (h *StatusHandler) Classify(c *fiber.Ctx) error {
	var req ClassifyRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Message: "invalid request body",
			RayID:   c.Locals("requestid").(string),
		})
	}

	return c.JSON(h.statusService.Classify(req.Status, req.StatusCode, req.Vendor))
}

// ListBuckets godoc
// @Summary List the canonical bucket taxonomy
// @Tags status
// @Produce json
// @Success 200 {array} ports.BucketInfo
// @Router /v1/status/buckets [get]
func (h *StatusHandler) ListBuckets(c *fiber.Ctx) error {
	return c.JSON(h.statusService.ListBuckets())
}

// ExpandFamily godoc
// @Summary Expand a dashboard status family into buckets
// @Description Returns the bucket set a dashboard tab filters by. "ALL" expands to an empty set meaning no filter.
// @Tags status
// @Produce json
// @Param name path string true "Family name (e.g. RTO, TRANSIT, CANCELLED, ALL)"
// @Success 200 {object} FamilyResponse
// @Failure 404 {object} ErrorResponse
// @Router /v1/status/families/{name} [get]
func (h *StatusHandler) ExpandFamily(c *fiber.Ctx) error {
	name := c.Params("name")

	buckets, ok := h.statusService.ExpandFamily(name)
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(ErrorResponse{
			Message: "unknown status family",
			RayID:   c.Locals("requestid").(string),
		})
	}

	if buckets == nil {
		buckets = []ports.BucketInfo{}
	}
	return c.JSON(FamilyResponse{
		Family:  name,
		Buckets: buckets,
	})
}

// Finality godoc
// @Summary Check whether a canonical status is final
// @Description Exact match against DELIVERED and RTO_DELIVERED; final shipments need no further vendor polling
// @Tags status
// @Produce json
// @Param status path string true "Canonical status name"
// @Success 200 {object} FinalityResponse
// @Router /v1/status/final/{status} [get]
func (h *StatusHandler) Finality(c *fiber.Ctx) error {
	status := c.Params("status")
	return c.JSON(FinalityResponse{
		Status: status,
		Final:  h.statusService.IsFinal(status),
	})
}
