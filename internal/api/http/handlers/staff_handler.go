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

// StaffHandler exposes the staff directory endpoints. All routes are
// admin only; authorization is enforced in the service layer.
type StaffHandler struct {
	staff *service.StaffService
}

func NewStaffHandler(staff *service.StaffService) *StaffHandler {
	return &StaffHandler{staff: staff}
}

// List handles GET /api/staff.
func (h *StaffHandler) List(c *fiber.Ctx) error {
	caller, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}

	members, err := h.staff.List(c.Context(), caller)
	if err != nil {
		return err
	}
	return c.JSON(dto.NewStaffResponses(members))
}

// Get handles GET /api/staff/:id.
func (h *StaffHandler) Get(c *fiber.Ctx) error {
	caller, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}

	member, err := h.staff.Get(c.Context(), caller, c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(dto.NewStaffResponse(member))
}

// Create handles POST /api/staff.
func (h *StaffHandler) Create(c *fiber.Ctx) error {
	caller, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}

	var req dto.StaffCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	member, err := h.staff.Create(c.Context(), caller, service.StaffCreateInput{
		FirstName:      req.FirstName,
		LastName:       req.LastName,
		Email:          req.Email,
		Phone:          req.Phone,
		Role:           domain.StaffRole(req.Role),
		Specialization: req.Specialization,
	})
	if err != nil {
		return err
	}

	return c.Status(http.StatusCreated).JSON(fiber.Map{
		"message": "Staff member created successfully",
		"staff":   dto.NewStaffResponse(member),
	})
}

// Update handles PUT /api/staff/:id.
func (h *StaffHandler) Update(c *fiber.Ctx) error {
	caller, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}

	var req dto.StaffUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	var role *domain.StaffRole
	if req.Role != nil {
		r := domain.StaffRole(*req.Role)
		role = &r
	}
	member, err := h.staff.Update(c.Context(), caller, c.Params("id"), service.StaffUpdateInput{
		FirstName:      req.FirstName,
		LastName:       req.LastName,
		Email:          req.Email,
		Phone:          req.Phone,
		Role:           role,
		Specialization: req.Specialization,
		IsActive:       req.IsActive,
	})
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"message": "Staff member updated successfully",
		"staff":   dto.NewStaffResponse(member),
	})
}

// Delete handles DELETE /api/staff/:id. Deactivates rather than removes.
func (h *StaffHandler) Delete(c *fiber.Ctx) error {
	caller, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}

	if err := h.staff.Deactivate(c.Context(), caller, c.Params("id")); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"message": "Staff member deleted successfully"})
}
