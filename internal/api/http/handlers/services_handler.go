package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/sabbebasta/booking-platform/internal/api/dto"
	"github.com/sabbebasta/booking-platform/internal/auth"
	"github.com/sabbebasta/booking-platform/internal/domain"
	"github.com/sabbebasta/booking-platform/internal/service"
	apperrors "github.com/sabbebasta/booking-platform/pkg/util"
)

// ServicesHandler exposes the service catalog endpoints.
type ServicesHandler struct {
	catalog *service.CatalogService
}

func NewServicesHandler(catalog *service.CatalogService) *ServicesHandler {
	return &ServicesHandler{catalog: catalog}
}

// List handles GET /api/services. Public, active services only.
func (h *ServicesHandler) List(c *fiber.Ctx) error {
	services, err := h.catalog.List(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(dto.NewServiceResponses(services))
}

// Get handles GET /api/services/:id. Public, returns inactive services too.
func (h *ServicesHandler) Get(c *fiber.Ctx) error {
	svc, err := h.catalog.Get(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(dto.NewServiceResponse(svc))
}

// Create handles POST /api/services.
func (h *ServicesHandler) Create(c *fiber.Ctx) error {
	caller, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}

	var req dto.ServiceRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	svc, err := h.catalog.Create(c.Context(), caller, serviceInputFromRequest(req))
	if err != nil {
		return err
	}

	return c.Status(http.StatusCreated).JSON(fiber.Map{
		"message": "Service created successfully",
		"service": dto.NewServiceResponse(svc),
	})
}

// Update handles PUT /api/services/:id.
func (h *ServicesHandler) Update(c *fiber.Ctx) error {
	caller, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}

	var req dto.ServiceRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	svc, err := h.catalog.Update(c.Context(), caller, c.Params("id"), serviceInputFromRequest(req))
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"message": "Service updated successfully",
		"service": dto.NewServiceResponse(svc),
	})
}

// Delete handles DELETE /api/services/:id. Deactivates rather than removes.
func (h *ServicesHandler) Delete(c *fiber.Ctx) error {
	caller, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}

	if err := h.catalog.Deactivate(c.Context(), caller, c.Params("id")); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"message": "Service deleted successfully"})
}

func serviceInputFromRequest(req dto.ServiceRequest) service.ServiceInput {
	return service.ServiceInput{
		Title:       req.Title,
		Description: req.Description,
		ServiceType: domain.ServiceType(req.ServiceType),
		Price:       req.Price,
		Duration:    req.Duration,
		Rating:      req.Rating,
		ImageURL:    req.ImageURL,
		Location: domain.Location{
			Latitude:  req.Location.Latitude,
			Longitude: req.Location.Longitude,
			Address:   req.Location.Address,
		},
	}
}
