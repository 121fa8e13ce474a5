package handlers

import (
	"Relief-Ops-Console/domain"
	"Relief-Ops-Console/internal/api/presenters"
	"Relief-Ops-Console/pkg/disaster"
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	DisasterHandler interface {
		CreateDisaster(c *fiber.Ctx) error
		GetDisasters(c *fiber.Ctx) error
		UpdateSeverity(c *fiber.Ctx) error
		SetLocation(c *fiber.Ctx) error
	}

	disasterHandler struct {
		disasterService disaster.DisasterService
		validator       *validator.Validate
	}
)

func NewDisasterHandler(disasterService disaster.DisasterService, validator *validator.Validate) DisasterHandler {
	return &disasterHandler{
		disasterService: disasterService,
		validator:       validator,
	}
}

func (h *disasterHandler) CreateDisaster(c *fiber.Ctx) error {
	req := new(domain.CreateDisasterRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateDisaster, err)
	}

	res, err := h.disasterService.CreateDisaster(c.Context(), *req)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateDisaster, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessCreateDisaster)
}

func (h *disasterHandler) GetDisasters(c *fiber.Ctx) error {
	res, err := h.disasterService.GetDisasters(c.Context())
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetDisasters, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetDisasters)
}

func (h *disasterHandler) UpdateSeverity(c *fiber.Ctx) error {
	disasterID := c.Params("id")
	req := new(domain.UpdateSeverityRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateSeverity, err)
	}

	if err := h.disasterService.UpdateSeverity(c.Context(), disasterID, *req); err != nil {
		if errors.Is(err, domain.ErrDisasterNotFound) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedUpdateSeverity, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateSeverity, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessUpdateSeverity)
}

func (h *disasterHandler) SetLocation(c *fiber.Ctx) error {
	disasterID := c.Params("id")
	req := new(domain.SetDisasterGeoRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedSetDisasterGeo, err)
	}

	if err := h.disasterService.SetLocation(c.Context(), disasterID, *req); err != nil {
		if errors.Is(err, domain.ErrDisasterNotFound) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedSetDisasterGeo, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedSetDisasterGeo, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessSetDisasterGeo)
}
