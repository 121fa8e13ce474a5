package handlers

import (
	"Relief-Ops-Console/domain"
	"Relief-Ops-Console/internal/api/presenters"
	"Relief-Ops-Console/pkg/analytics"

	"github.com/gofiber/fiber/v2"
)

type (
	AnalyticsHandler interface {
		GetSummary(c *fiber.Ctx) error
		GetPendingByDisaster(c *fiber.Ctx) error
		GetResourceUtilization(c *fiber.Ctx) error
	}

	analyticsHandler struct {
		analyticsService analytics.AnalyticsService
	}
)

func NewAnalyticsHandler(analyticsService analytics.AnalyticsService) AnalyticsHandler {
	return &analyticsHandler{analyticsService: analyticsService}
}

func (h *analyticsHandler) GetSummary(c *fiber.Ctx) error {
	res, err := h.analyticsService.GetSummary(c.Context())
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetSummary, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetSummary)
}

func (h *analyticsHandler) GetPendingByDisaster(c *fiber.Ctx) error {
	res, err := h.analyticsService.GetPendingByDisaster(c.Context())
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetPending, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetPending)
}

func (h *analyticsHandler) GetResourceUtilization(c *fiber.Ctx) error {
	res, err := h.analyticsService.GetResourceUtilization(c.Context())
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetUtilization, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetUtilization)
}
