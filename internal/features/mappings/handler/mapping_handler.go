package handler

import (
	"errors"
	"net/http"

	"github.com/aloksharma10/lorrigo-v2-sub007/internal/core/logger"
	"github.com/aloksharma10/lorrigo-v2-sub007/internal/features/mappings/domain"
	"github.com/aloksharma10/lorrigo-v2-sub007/internal/features/mappings/ports"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// MappingHandler handles admin HTTP requests for vendor status mappings.
type MappingHandler struct {
	service ports.MappingService
}

// NewMappingHandler creates a new MappingHandler.
func NewMappingHandler(service ports.MappingService) *MappingHandler {
	return &MappingHandler{
		service: service,
	}
}

// PutMappings handles PUT /v1/admin/mappings.
// @Summary Replace the external vendor status mappings
// @Description Validates, stores and activates a new mapping document (vendor -> raw code -> bucket code). Replaces the previous document wholesale.
// @Tags admin
// @Accept json
// @Produce json
// @Param mappings body domain.VendorMappings true "Mapping document"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /v1/admin/mappings [put]
func (h *MappingHandler) PutMappings(c *fiber.Ctx) error {
	var mappings domain.VendorMappings
	if err := c.BodyParser(&mappings); err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	if err := h.service.Put(c.Context(), mappings); err != nil {
		if errors.Is(err, domain.ErrInvalidBucketCode) || errors.Is(err, domain.ErrEmptyVendor) {
			return c.Status(http.StatusBadRequest).JSON(fiber.Map{
				"error": err.Error(),
			})
		}
		logger.Get().Error("Failed to store vendor mappings", zap.Error(err))
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{
			"error": "Internal server error",
		})
	}

	return c.Status(http.StatusOK).JSON(fiber.Map{
		"message": "Vendor mappings updated",
	})
}

// ReloadMappings handles POST /v1/admin/mappings/reload.
// @Summary Reload vendor status mappings from the config store
// @Description Replaces the resolver's external table with the stored document and clears the lookup cache.
// @Tags admin
// @Produce json
// @Success 200 {object} map[string]int
// @Failure 500 {object} map[string]string
// @Router /v1/admin/mappings/reload [post]
func (h *MappingHandler) ReloadMappings(c *fiber.Ctx) error {
	vendors, err := h.service.Reload(c.Context())
	if err != nil {
		logger.Get().Error("Failed to reload vendor mappings", zap.Error(err))
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{
			"error": "Internal server error",
		})
	}

	return c.Status(http.StatusOK).JSON(fiber.Map{
		"vendors": vendors,
	})
}

// CacheStats handles GET /v1/admin/status-cache.
// @Summary Report the resolver lookup-cache size
// @Tags admin
// @Produce json
// @Success 200 {object} map[string]int
// @Router /v1/admin/status-cache [get]
func (h *MappingHandler) CacheStats(c *fiber.Ctx) error {
	return c.Status(http.StatusOK).JSON(fiber.Map{
		"entries": h.service.CacheSize(),
	})
}

// ClearCache handles DELETE /v1/admin/status-cache.
// @Summary Clear the resolver lookup cache
// @Tags admin
// @Produce json
// @Success 200 {object} map[string]string
// @Router /v1/admin/status-cache [delete]
func (h *MappingHandler) ClearCache(c *fiber.Ctx) error {
	h.service.ClearCache()
	return c.Status(http.StatusOK).JSON(fiber.Map{
		"message": "Lookup cache cleared",
	})
}
