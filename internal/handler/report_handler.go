package handler

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/vendoreval/vendoreval-api/internal/dto"
	"github.com/vendoreval/vendoreval-api/internal/service"
	"github.com/vendoreval/vendoreval-api/internal/utils"
)

// ReportHandler wires the PDF export route.
type ReportHandler struct {
	service service.ReportService
	logger  zerolog.Logger
}

// NewReportHandler constructs the handler.
func NewReportHandler(service service.ReportService, logger zerolog.Logger) *ReportHandler {
	return &ReportHandler{
		service: service,
		logger:  logger.With().Str("component", "report_handler").Logger(),
	}
}

// Register attaches the report endpoint to the router group.
func (h *ReportHandler) Register(router fiber.Router) {
	router.Post("", h.exportPDF)
}

func (h *ReportHandler) exportPDF(c *fiber.Ctx) error {
	var payload dto.ReportRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid request body")
	}
	if strings.TrimSpace(payload.VendorID) == "" {
		return utils.SendError(c, fiber.StatusBadRequest, "vendorId is required")
	}

	document, filename, err := h.service.RenderPDF(c.Context(), payload.VendorID)
	if err != nil {
		if errors.Is(err, service.ErrVendorNotFound) {
			return utils.SendError(c, fiber.StatusNotFound, "vendor not found")
		}
		h.logger.Error().Err(err).Msg("failed to generate pdf")
		return utils.SendError(c, fiber.StatusInternalServerError, "failed to generate pdf")
	}

	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", filename))

	return c.Send(document)
}
