package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/vendoreval/vendoreval-api/internal/dto"
	"github.com/vendoreval/vendoreval-api/internal/service"
	"github.com/vendoreval/vendoreval-api/internal/utils"
)

// RatingHandler wires rating HTTP routes.
type RatingHandler struct {
	service service.RatingService
	reports service.ReportService
	logger  zerolog.Logger
}

// NewRatingHandler constructs the handler.
func NewRatingHandler(service service.RatingService, reports service.ReportService, logger zerolog.Logger) *RatingHandler {
	return &RatingHandler{
		service: service,
		reports: reports,
		logger:  logger.With().Str("component", "rating_handler").Logger(),
	}
}

// Register attaches rating endpoints to the router group. The static routes
// come before the vendor-parameter routes so "saveAll" and "score" never
// resolve as vendor identifiers.
func (h *RatingHandler) Register(router fiber.Router) {
	router.Get("", h.listAll)
	router.Delete("", h.deleteAll)
	router.Post("/saveAll", h.saveAll)
	router.Get("/score/:vendorId", h.score)
	router.Get("/:vendorId", h.listByVendor)
	router.Post("/:vendorId", h.upsert)
}

func (h *RatingHandler) listAll(c *fiber.Ctx) error {
	ratings, err := h.service.ListAll(c.Context())
	if err != nil {
		return h.internalError(c, err)
	}

	return utils.SendSuccess(c, "ratings retrieved", ratings)
}

func (h *RatingHandler) listByVendor(c *fiber.Ctx) error {
	ratings, err := h.service.ListByVendor(c.Context(), c.Params("vendorId"))
	if err != nil {
		return h.handleError(c, err)
	}

	return utils.SendSuccess(c, "ratings retrieved", ratings)
}

func (h *RatingHandler) upsert(c *fiber.Ctx) error {
	var payload dto.RatingUpsertRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid request body")
	}

	rating, err := h.service.Upsert(c.Context(), c.Params("vendorId"), payload, userIDFromContext(c))
	if err != nil {
		return h.handleError(c, err)
	}

	return utils.SendSuccess(c, "rating saved", rating)
}

func (h *RatingHandler) saveAll(c *fiber.Ctx) error {
	var payload dto.RatingBulkRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid request body")
	}

	ratings, err := h.service.SaveAll(c.Context(), payload, userIDFromContext(c))
	if err != nil {
		return h.handleError(c, err)
	}

	return utils.SendSuccess(c, "ratings saved", ratings)
}

func (h *RatingHandler) score(c *fiber.Ctx) error {
	summary, err := h.reports.Score(c.Context(), c.Params("vendorId"))
	if err != nil {
		return h.handleError(c, err)
	}

	return utils.SendSuccess(c, "score computed", summary)
}

func (h *RatingHandler) deleteAll(c *fiber.Ctx) error {
	if err := h.service.DeleteAll(c.Context()); err != nil {
		return h.internalError(c, err)
	}

	return utils.SendSuccess(c, "all ratings deleted", nil)
}

func (h *RatingHandler) handleError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, service.ErrVendorNotFound):
		return utils.SendError(c, fiber.StatusNotFound, "vendor not found")
	case errors.Is(err, service.ErrQuestionNotFound):
		return utils.SendError(c, fiber.StatusNotFound, "question not found")
	case isValidationError(err):
		return utils.SendError(c, fiber.StatusBadRequest, err.Error())
	default:
		return h.internalError(c, err)
	}
}

func (h *RatingHandler) internalError(c *fiber.Ctx, err error) error {
	h.logger.Error().Err(err).Msg("internal server error")
	return utils.SendError(c, fiber.StatusInternalServerError, "internal server error")
}
