package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/sabbebasta/booking-platform/internal/persistence"
)

// HealthHandler reports process and database liveness.
type HealthHandler struct {
	pg *persistence.Postgres
}

func NewHealthHandler(pg *persistence.Postgres) *HealthHandler {
	return &HealthHandler{pg: pg}
}

// Check handles GET /api/health. Always returns 200; database state is
// reported in the body.
func (h *HealthHandler) Check(c *fiber.Ctx) error {
	database := "disconnected"
	if h.pg.IsAvailable(c.Context()) {
		database = "connected"
	}
	return c.JSON(fiber.Map{
		"status":    "OK",
		"message":   "Server is running",
		"database":  database,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}
