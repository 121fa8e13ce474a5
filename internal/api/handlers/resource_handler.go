package handlers

import (
	"Relief-Ops-Console/domain"
	"Relief-Ops-Console/internal/api/presenters"
	"Relief-Ops-Console/pkg/resource"
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	ResourceHandler interface {
		CreateResource(c *fiber.Ctx) error
		GetResources(c *fiber.Ctx) error
		UpdateResource(c *fiber.Ctx) error
		Replenish(c *fiber.Ctx) error
		GetLowStock(c *fiber.Ctx) error
	}

	resourceHandler struct {
		resourceService resource.ResourceService
		validator       *validator.Validate
	}
)

func NewResourceHandler(resourceService resource.ResourceService, validator *validator.Validate) ResourceHandler {
	return &resourceHandler{
		resourceService: resourceService,
		validator:       validator,
	}
}

func (h *resourceHandler) CreateResource(c *fiber.Ctx) error {
	req := new(domain.CreateResourceRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateResource, err)
	}

	res, err := h.resourceService.CreateResource(c.Context(), *req)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateResource, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessCreateResource)
}

func (h *resourceHandler) GetResources(c *fiber.Ctx) error {
	res, err := h.resourceService.GetResources(c.Context())
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetResources, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetResources)
}

func (h *resourceHandler) UpdateResource(c *fiber.Ctx) error {
	resourceID := c.Params("id")
	req := new(domain.UpdateResourceRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateResource, err)
	}

	res, err := h.resourceService.UpdateResource(c.Context(), resourceID, *req)
	if err != nil {
		if errors.Is(err, domain.ErrResourceNotFound) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedUpdateResource, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateResource, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessUpdateResource)
}

func (h *resourceHandler) Replenish(c *fiber.Ctx) error {
	resourceID := c.Params("id")
	req := new(domain.ReplenishResourceRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusUnprocessableEntity, domain.MessageFailedReplenishResource, err)
	}

	res, err := h.resourceService.Replenish(c.Context(), resourceID, *req)
	if err != nil {
		if errors.Is(err, domain.ErrResourceNotFound) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedReplenishResource, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedReplenishResource, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessReplenishResource)
}

func (h *resourceHandler) GetLowStock(c *fiber.Ctx) error {
	res, err := h.resourceService.GetLowStock(c.Context())
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetLowStock, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetLowStock)
}
