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

// VendorHandler wires vendor HTTP routes.
type VendorHandler struct {
	service service.VendorService
	logger  zerolog.Logger
}

// NewVendorHandler constructs the handler.
func NewVendorHandler(service service.VendorService, logger zerolog.Logger) *VendorHandler {
	return &VendorHandler{
		service: service,
		logger:  logger.With().Str("component", "vendor_handler").Logger(),
	}
}

// Register attaches vendor endpoints to the router group.
func (h *VendorHandler) Register(router fiber.Router) {
	router.Get("", h.list)
	router.Post("", h.create)
	router.Delete("", h.deleteByBody)
	router.Get("/:id", h.get)
	router.Put("/:id", h.update)
	router.Delete("/:id", h.delete)
}

func (h *VendorHandler) list(c *fiber.Ctx) error {
	vendors, err := h.service.List(c.Context())
	if err != nil {
		return h.internalError(c, err)
	}

	return utils.SendSuccess(c, "vendors retrieved", vendors)
}

func (h *VendorHandler) get(c *fiber.Ctx) error {
	vendor, err := h.service.Get(c.Context(), c.Params("id"))
	if err != nil {
		return h.handleError(c, err)
	}

	return utils.SendSuccess(c, "vendor retrieved", vendor)
}

func (h *VendorHandler) create(c *fiber.Ctx) error {
	var payload dto.VendorCreateRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid request body")
	}

	vendor, err := h.service.Create(c.Context(), payload)
	if err != nil {
		return h.handleError(c, err)
	}

	return utils.SendSuccessWithStatus(c, fiber.StatusCreated, "vendor created", vendor)
}

func (h *VendorHandler) update(c *fiber.Ctx) error {
	var payload dto.VendorUpdateRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid request body")
	}

	vendor, err := h.service.Update(c.Context(), c.Params("id"), payload)
	if err != nil {
		return h.handleError(c, err)
	}

	return utils.SendSuccess(c, "vendor updated", vendor)
}

func (h *VendorHandler) delete(c *fiber.Ctx) error {
	return h.deleteByID(c, c.Params("id"))
}

// deleteByBody supports the body-addressed deletion variant used by the
// vendor list screen.
func (h *VendorHandler) deleteByBody(c *fiber.Ctx) error {
	var payload dto.VendorDeleteRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid request body")
	}
	if strings.TrimSpace(payload.VendorID) == "" {
		return utils.SendError(c, fiber.StatusBadRequest, "vendorId is required")
	}

	return h.deleteByID(c, payload.VendorID)
}

func (h *VendorHandler) deleteByID(c *fiber.Ctx, id string) error {
	if err := h.service.Delete(c.Context(), id); err != nil {
		return h.handleError(c, err)
	}

	return utils.SendSuccess(c, "vendor deleted", fiber.Map{"id": id})
}

func (h *VendorHandler) handleError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, service.ErrVendorNotFound):
		return utils.SendError(c, fiber.StatusNotFound, "vendor not found")
	case errors.Is(err, service.ErrVendorNameRequired):
		return utils.SendError(c, fiber.StatusBadRequest, "vendor name is required")
	case isValidationError(err):
		return utils.SendError(c, fiber.StatusBadRequest, err.Error())
	default:
		return h.internalError(c, err)
	}
}

func (h *VendorHandler) internalError(c *fiber.Ctx, err error) error {
	h.logger.Error().Err(err).Msg("internal server error")
	return utils.SendError(c, fiber.StatusInternalServerError, "internal server error")
}
