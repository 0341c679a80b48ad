package handler

import (
	"time"

	"github.com/aloksharma10/lorrigo-v2-sub007/internal/features/tracking/domain"
	"github.com/aloksharma10/lorrigo-v2-sub007/internal/features/tracking/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// TrackingHandler handles HTTP requests for tracking-event processing.
type TrackingHandler struct {
	processor *service.Processor
	poller    *service.Poller
}

// NewTrackingHandler creates a new TrackingHandler.
func NewTrackingHandler(processor *service.Processor, poller *service.Poller) *TrackingHandler {
	return &TrackingHandler{
		processor: processor,
		poller:    poller,
	}
}

// ErrorResponse represents an error response with Ray ID.
type ErrorResponse struct {
	// Message is the error description.
	Message string `json:"message"`
	// RayID is the unique request identifier for tracing.
	RayID string `json:"ray_id,omitempty"`
}

// WebhookRequest is the payload a courier webhook delivers for one scan.
type WebhookRequest struct {
	AWB        string `json:"awb"`
	Status     string `json:"status"`
	StatusCode string `json:"status_code,omitempty"`
	Location   string `json:"location,omitempty"`
	// Timestamp is the vendor-reported scan time, RFC 3339.
	Timestamp time.Time `json:"timestamp,omitempty"`
}

// Webhook godoc
// @Summary Process a courier tracking webhook
// @Description Classifies one vendor scan into a canonical shipment update
// @Tags tracking
// @Accept json
// @Produce json
// @Param vendor path string true "Vendor name (e.g. DELHIVERY, SHIPROCKET)"
// @Param event body WebhookRequest true "Vendor scan payload"
// @Success 200 {object} domain.ShipmentUpdate
// @Failure 400 {object} ErrorResponse
// @Router /v1/webhooks/tracking/{vendor} [post]
func (h *TrackingHandler) Webhook(c *fiber.Ctx) error {
	var req WebhookRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Message: "invalid webhook payload",
			RayID:   c.Locals("requestid").(string),
		})
	}

	if req.Status == "" && req.StatusCode == "" {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Message: "status or status_code is required",
			RayID:   c.Locals("requestid").(string),
		})
	}

	update := h.processor.Process(domain.TrackingEvent{
		ID:         uuid.New(),
		Vendor:     c.Params("vendor"),
		AWB:        req.AWB,
		Status:     req.Status,
		StatusCode: req.StatusCode,
		Location:   req.Location,
		OccurredAt: req.Timestamp,
	})

	return c.JSON(update)
}

// Poll godoc
// @Summary Fetch and classify tracking events for a waybill
// @Description Pulls the vendor's tracking API and returns the classified latest status; a final update means polling can stop
// @Tags tracking
// @Produce json
// @Param vendor path string true "Vendor name"
// @Param awb path string true "Waybill number"
// @Success 200 {object} service.PollResult
// @Failure 404 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse
// @Router /v1/tracking/{vendor}/{awb} [get]
func (h *TrackingHandler) Poll(c *fiber.Ctx) error {
	vendor := c.Params("vendor")
	awb := c.Params("awb")

	result, err := h.poller.Poll(c.Context(), vendor, awb)
	if err != nil {
		switch err {
		case service.ErrVendorNotSupported:
			return c.Status(fiber.StatusNotFound).JSON(ErrorResponse{
				Message: "vendor not supported",
				RayID:   c.Locals("requestid").(string),
			})
		case service.ErrNoEvents:
			return c.Status(fiber.StatusNotFound).JSON(ErrorResponse{
				Message: "no tracking events for waybill",
				RayID:   c.Locals("requestid").(string),
			})
		default:
			return c.Status(fiber.StatusBadGateway).JSON(ErrorResponse{
				Message: err.Error(),
				RayID:   c.Locals("requestid").(string),
			})
		}
	}

	return c.JSON(result)
}
