package handler

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/vendoreval/vendoreval-api/internal/dto"
	"github.com/vendoreval/vendoreval-api/internal/service"
	"github.com/vendoreval/vendoreval-api/internal/utils"
)

// SegmentHandler wires catalog HTTP routes.
type SegmentHandler struct {
	service service.CatalogService
	logger  zerolog.Logger
}

// NewSegmentHandler constructs the handler.
func NewSegmentHandler(service service.CatalogService, logger zerolog.Logger) *SegmentHandler {
	return &SegmentHandler{
		service: service,
		logger:  logger.With().Str("component", "segment_handler").Logger(),
	}
}

// Register attaches catalog endpoints to the router group.
func (h *SegmentHandler) Register(router fiber.Router) {
	router.Get("", h.list)
	router.Post("", h.create)
	router.Put("", h.update)
	router.Delete("", h.delete)
}

func (h *SegmentHandler) list(c *fiber.Ctx) error {
	segments, err := h.service.List(c.Context())
	if err != nil {
		return h.internalError(c, err)
	}

	return utils.SendSuccess(c, "segments retrieved", segments)
}

func (h *SegmentHandler) create(c *fiber.Ctx) error {
	var payload dto.SegmentCreateRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid request body")
	}

	segment, err := h.service.Create(c.Context(), payload)
	if err != nil {
		return h.handleError(c, err)
	}

	return utils.SendSuccessWithStatus(c, fiber.StatusCreated, "segment created", segment)
}

func (h *SegmentHandler) update(c *fiber.Ctx) error {
	var payload dto.SegmentUpdateRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid request body")
	}
	if strings.TrimSpace(payload.SegmentID) == "" {
		return utils.SendError(c, fiber.StatusBadRequest, "segmentId is required")
	}

	segment, err := h.service.Update(c.Context(), payload)
	if err != nil {
		return h.handleError(c, err)
	}

	return utils.SendSuccess(c, "segment updated", segment)
}

func (h *SegmentHandler) delete(c *fiber.Ctx) error {
	var payload dto.SegmentDeleteRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid request body")
	}
	if strings.TrimSpace(payload.SegmentID) == "" {
		return utils.SendError(c, fiber.StatusBadRequest, "segmentId is required")
	}

	if err := h.service.Delete(c.Context(), payload.SegmentID); err != nil {
		return h.handleError(c, err)
	}

	return utils.SendSuccess(c, "segment deleted", fiber.Map{"id": payload.SegmentID})
}

func (h *SegmentHandler) handleError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, service.ErrSegmentNotFound):
		return utils.SendError(c, fiber.StatusNotFound, "segment not found")
	case errors.Is(err, service.ErrQuestionNotFound):
		return utils.SendError(c, fiber.StatusNotFound, "question not found")
	case errors.Is(err, service.ErrSegmentNameRequired):
		return utils.SendError(c, fiber.StatusBadRequest, "segment name is required")
	case isValidationError(err):
		return utils.SendError(c, fiber.StatusBadRequest, err.Error())
	default:
		return h.internalError(c, err)
	}
}

func (h *SegmentHandler) internalError(c *fiber.Ctx, err error) error {
	h.logger.Error().Err(err).Msg("internal server error")
	return utils.SendError(c, fiber.StatusInternalServerError, "internal server error")
}
