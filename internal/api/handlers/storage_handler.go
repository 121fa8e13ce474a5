package handlers

import (
	"Relief-Ops-Console/domain"
	"Relief-Ops-Console/internal/api/presenters"
	"Relief-Ops-Console/pkg/storage"
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	StorageHandler interface {
		CreateStorageLocation(c *fiber.Ctx) error
		GetStorageLocations(c *fiber.Ctx) error
		DeleteStorageLocation(c *fiber.Ctx) error
	}

	storageHandler struct {
		storageService storage.StorageService
		validator      *validator.Validate
	}
)

func NewStorageHandler(storageService storage.StorageService, validator *validator.Validate) StorageHandler {
	return &storageHandler{
		storageService: storageService,
		validator:      validator,
	}
}

func (h *storageHandler) CreateStorageLocation(c *fiber.Ctx) error {
	req := new(domain.CreateStorageLocationRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateStorageLocation, err)
	}

	res, err := h.storageService.CreateStorageLocation(c.Context(), *req)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateStorageLocation, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessCreateStorageLocation)
}

func (h *storageHandler) GetStorageLocations(c *fiber.Ctx) error {
	res, err := h.storageService.GetStorageLocations(c.Context())
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetStorageLocations, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetStorageLocations)
}

func (h *storageHandler) DeleteStorageLocation(c *fiber.Ctx) error {
	locationID := c.Params("id")

	if err := h.storageService.DeleteStorageLocation(c.Context(), locationID); err != nil {
		if errors.Is(err, domain.ErrStorageLocationNotFound) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedDeleteStorageLocation, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedDeleteStorageLocation, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDeleteStorageLocation)
}
