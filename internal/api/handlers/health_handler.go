package handlers

import (
	"Relief-Ops-Console/internal/api/presenters"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type (
	HealthHandler interface {
		Check(c *fiber.Ctx) error
	}

	healthHandler struct {
		db *gorm.DB
	}
)

func NewHealthHandler(db *gorm.DB) HealthHandler {
	return &healthHandler{db: db}
}

func (h *healthHandler) Check(c *fiber.Ctx) error {
	sqlDB, err := h.db.DB()
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusServiceUnavailable, "database unavailable", err)
	}
	if err := sqlDB.PingContext(c.Context()); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusServiceUnavailable, "database unavailable", err)
	}

	return presenters.SuccessResponse(c, fiber.Map{"database": "up"}, fiber.StatusOK, "service healthy")
}
