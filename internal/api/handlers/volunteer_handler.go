package handlers

import (
	"Relief-Ops-Console/domain"
	"Relief-Ops-Console/internal/api/presenters"
	"Relief-Ops-Console/pkg/volunteer"
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	VolunteerHandler interface {
		CreateVolunteer(c *fiber.Ctx) error
		GetRoster(c *fiber.Ctx) error
		Assign(c *fiber.Ctx) error
		GetAssignments(c *fiber.Ctx) error
		GetVolunteerAssignments(c *fiber.Ctx) error
		UpdateAssignmentStatus(c *fiber.Ctx) error
	}

	volunteerHandler struct {
		volunteerService volunteer.VolunteerService
		validator        *validator.Validate
	}
)

func NewVolunteerHandler(volunteerService volunteer.VolunteerService, validator *validator.Validate) VolunteerHandler {
	return &volunteerHandler{
		volunteerService: volunteerService,
		validator:        validator,
	}
}

func (h *volunteerHandler) CreateVolunteer(c *fiber.Ctx) error {
	req := new(domain.CreateVolunteerRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateVolunteer, err)
	}

	res, err := h.volunteerService.CreateVolunteer(c.Context(), *req)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateVolunteer, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessCreateVolunteer)
}

func (h *volunteerHandler) GetRoster(c *fiber.Ctx) error {
	res, err := h.volunteerService.GetRoster(c.Context())
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetVolunteers, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetVolunteers)
}

func (h *volunteerHandler) Assign(c *fiber.Ctx) error {
	req := new(domain.AssignVolunteerRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusUnprocessableEntity, domain.MessageFailedAssignVolunteer, err)
	}

	res, err := h.volunteerService.Assign(c.Context(), *req)
	if err != nil {
		if errors.Is(err, domain.ErrDisasterNotFound) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedAssignVolunteer, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAssignVolunteer, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessAssignVolunteer)
}

func (h *volunteerHandler) GetAssignments(c *fiber.Ctx) error {
	res, err := h.volunteerService.GetAssignments(c.Context())
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetAssignments, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetAssignments)
}

func (h *volunteerHandler) GetVolunteerAssignments(c *fiber.Ctx) error {
	volunteerID := c.Params("id")

	res, err := h.volunteerService.GetVolunteerAssignments(c.Context(), volunteerID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetAssignments, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetAssignments)
}

func (h *volunteerHandler) UpdateAssignmentStatus(c *fiber.Ctx) error {
	assignmentID := c.Params("id")
	req := new(domain.UpdateAssignmentStatusRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateAssignmentStatus, err)
	}

	res, err := h.volunteerService.UpdateAssignmentStatus(c.Context(), assignmentID, *req)
	if err != nil {
		if errors.Is(err, domain.ErrAssignmentNotFound) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedUpdateAssignmentStatus, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateAssignmentStatus, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessUpdateAssignmentStatus)
}
