package handlers

import (
	"Relief-Ops-Console/domain"
	"Relief-Ops-Console/internal/api/presenters"
	"Relief-Ops-Console/pkg/logistics"
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	LogisticsHandler interface {
		CreateTransport(c *fiber.Ctx) error
		GetTransports(c *fiber.Ctx) error
		UpdateTransportStatus(c *fiber.Ctx) error
		CreateDispatch(c *fiber.Ctx) error
		GetDispatches(c *fiber.Ctx) error
		UpdateDispatchStatus(c *fiber.Ctx) error
	}

	logisticsHandler struct {
		logisticsService logistics.LogisticsService
		validator        *validator.Validate
	}
)

func NewLogisticsHandler(logisticsService logistics.LogisticsService, validator *validator.Validate) LogisticsHandler {
	return &logisticsHandler{
		logisticsService: logisticsService,
		validator:        validator,
	}
}

func (h *logisticsHandler) CreateTransport(c *fiber.Ctx) error {
	req := new(domain.CreateTransportRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateTransport, err)
	}

	res, err := h.logisticsService.CreateTransport(c.Context(), *req)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateTransport, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessCreateTransport)
}

func (h *logisticsHandler) GetTransports(c *fiber.Ctx) error {
	res, err := h.logisticsService.GetTransports(c.Context())
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetTransports, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetTransports)
}

func (h *logisticsHandler) UpdateTransportStatus(c *fiber.Ctx) error {
	transportID := c.Params("id")
	req := new(domain.UpdateTransportStatusRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateTransportStatus, err)
	}

	res, err := h.logisticsService.UpdateTransportStatus(c.Context(), transportID, *req)
	if err != nil {
		if errors.Is(err, domain.ErrTransportNotFound) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedUpdateTransportStatus, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateTransportStatus, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessUpdateTransportStatus)
}

func (h *logisticsHandler) CreateDispatch(c *fiber.Ctx) error {
	req := new(domain.CreateDispatchRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateDispatch, err)
	}

	res, err := h.logisticsService.CreateDispatch(c.Context(), *req)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateDispatch, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessCreateDispatch)
}

func (h *logisticsHandler) GetDispatches(c *fiber.Ctx) error {
	res, err := h.logisticsService.GetDispatches(c.Context())
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetDispatches, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetDispatches)
}

func (h *logisticsHandler) UpdateDispatchStatus(c *fiber.Ctx) error {
	dispatchID := c.Params("id")
	req := new(domain.UpdateDispatchStatusRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateDispatchStatus, err)
	}

	res, err := h.logisticsService.UpdateDispatchStatus(c.Context(), dispatchID, *req)
	if err != nil {
		if errors.Is(err, domain.ErrDispatchNotFound) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedUpdateDispatchStatus, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateDispatchStatus, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessUpdateDispatchStatus)
}
