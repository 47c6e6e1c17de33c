package http

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/sabbebasta/booking-platform/internal/api/http/handlers"
	"github.com/sabbebasta/booking-platform/internal/auth"
	"github.com/sabbebasta/booking-platform/internal/persistence"
)

// RouteConfig bundles everything RegisterRoutes needs.
type RouteConfig struct {
	Postgres *persistence.Postgres
	Auth     *auth.AuthMiddleware

	Health   *handlers.HealthHandler
	AuthH    *handlers.AuthHandler
	Users    *handlers.UsersHandler
	Services *handlers.ServicesHandler
	Staff    *handlers.StaffHandler
	Bookings *handlers.BookingsHandler
}

// RegisterRoutes mounts the API under /api. Every storage-backed route
// sits behind the database availability gate; /api/health stays
// reachable so the outage itself can be observed.
func RegisterRoutes(app *fiber.App, rc RouteConfig) {
	api := app.Group("/api")

	api.Get("/health", rc.Health.Check)

	requireDB := RequireDatabase(rc.Postgres)
	authenticate := rc.Auth.Authenticate
	requireAdmin := auth.RequireAdmin()

	authGroup := api.Group("/auth", requireDB)
	authGroup.Post("/register", rc.AuthH.Register)
	authGroup.Post("/login", rc.AuthH.Login)
	authGroup.Get("/me", authenticate, rc.AuthH.Me)

	services := api.Group("/services", requireDB)
	services.Get("/", rc.Services.List)
	services.Get("/:id", rc.Services.Get)
	services.Post("/", authenticate, requireAdmin, rc.Services.Create)
	services.Put("/:id", authenticate, requireAdmin, rc.Services.Update)
	services.Delete("/:id", authenticate, requireAdmin, rc.Services.Delete)

	users := api.Group("/users", requireDB, authenticate)
	users.Get("/", requireAdmin, rc.Users.List)
	users.Get("/:id", rc.Users.Get)
	users.Put("/:id", rc.Users.Update)
	users.Put("/:id/password", rc.Users.ChangePassword)
	users.Delete("/:id", requireAdmin, rc.Users.Delete)

	staff := api.Group("/staff", requireDB, authenticate, requireAdmin)
	staff.Get("/", rc.Staff.List)
	staff.Get("/:id", rc.Staff.Get)
	staff.Post("/", rc.Staff.Create)
	staff.Put("/:id", rc.Staff.Update)
	staff.Delete("/:id", rc.Staff.Delete)

	bookings := api.Group("/bookings", requireDB, authenticate)
	bookings.Get("/", rc.Bookings.List)
	bookings.Get("/:id", rc.Bookings.Get)
	bookings.Post("/", rc.Bookings.Create)
	bookings.Put("/:id/status", requireAdmin, rc.Bookings.UpdateStatus)
	bookings.Delete("/:id", rc.Bookings.Cancel)

	app.Use(func(c *fiber.Ctx) error {
		return c.Status(http.StatusNotFound).JSON(fiber.Map{
			"message": "API endpoint not found",
			"path":    c.Path(),
		})
	})
}
