package handlers

import (
	"Relief-Ops-Console/domain"
	"Relief-Ops-Console/internal/api/presenters"
	"Relief-Ops-Console/pkg/allocation"
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	AllocationHandler interface {
		Allocate(c *fiber.Ctx) error
		GetAllocations(c *fiber.Ctx) error
		UpdateAllocationStatus(c *fiber.Ctx) error
		GetAllocationLogs(c *fiber.Ctx) error
	}

	allocationHandler struct {
		allocationService allocation.AllocationService
		validator         *validator.Validate
	}
)

func NewAllocationHandler(allocationService allocation.AllocationService, validator *validator.Validate) AllocationHandler {
	return &allocationHandler{
		allocationService: allocationService,
		validator:         validator,
	}
}

func (h *allocationHandler) Allocate(c *fiber.Ctx) error {
	req := new(domain.CreateAllocationRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusUnprocessableEntity, domain.MessageFailedCreateAllocation, err)
	}

	res, err := h.allocationService.Allocate(c.Context(), *req)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRequestNotFound), errors.Is(err, domain.ErrResourceNotFound):
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedCreateAllocation, err)
		case errors.Is(err, domain.ErrInvalidQuantity):
			return presenters.ErrorResponse(c, fiber.StatusUnprocessableEntity, domain.MessageFailedCreateAllocation, err)
		case errors.Is(err, domain.ErrInsufficientInventory),
			errors.Is(err, domain.ErrOverRequested),
			errors.Is(err, domain.ErrRequestClosed),
			errors.Is(err, domain.ErrResourceClosed),
			errors.Is(err, domain.ErrAllocationConflict):
			return presenters.ErrorResponse(c, fiber.StatusConflict, domain.MessageFailedCreateAllocation, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateAllocation, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessCreateAllocation)
}

func (h *allocationHandler) GetAllocations(c *fiber.Ctx) error {
	res, err := h.allocationService.GetAllocations(c.Context())
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetAllocations, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetAllocations)
}

func (h *allocationHandler) UpdateAllocationStatus(c *fiber.Ctx) error {
	allocationID := c.Params("id")
	req := new(domain.UpdateAllocationStatusRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateAllocationStatus, err)
	}

	res, err := h.allocationService.UpdateAllocationStatus(c.Context(), allocationID, *req)
	if err != nil {
		if errors.Is(err, domain.ErrAllocationNotFound) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedUpdateAllocationStatus, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateAllocationStatus, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessUpdateAllocationStatus)
}

func (h *allocationHandler) GetAllocationLogs(c *fiber.Ctx) error {
	res, err := h.allocationService.GetAllocationLogs(c.Context())
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetAllocationLogs, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetAllocationLogs)
}
