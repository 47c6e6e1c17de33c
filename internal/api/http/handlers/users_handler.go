package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/sabbebasta/booking-platform/internal/api/dto"
	"github.com/sabbebasta/booking-platform/internal/auth"
	"github.com/sabbebasta/booking-platform/internal/service"
	apperrors "github.com/sabbebasta/booking-platform/pkg/util"
)

// UsersHandler exposes account administration and profile endpoints.
type UsersHandler struct {
	users *service.UserService
	auth  *service.AuthService
}

func NewUsersHandler(userService *service.UserService, authService *service.AuthService) *UsersHandler {
	return &UsersHandler{users: userService, auth: authService}
}

// List handles GET /api/users.
func (h *UsersHandler) List(c *fiber.Ctx) error {
	caller, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}

	users, err := h.users.List(c.Context(), caller)
	if err != nil {
		return err
	}

	resp := make([]dto.UserProfileResponse, 0, len(users))
	for i := range users {
		resp = append(resp, dto.NewUserProfileResponse(&users[i]))
	}
	return c.JSON(resp)
}

// Get handles GET /api/users/:id.
func (h *UsersHandler) Get(c *fiber.Ctx) error {
	caller, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}

	user, err := h.users.Get(c.Context(), caller, c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(dto.NewUserProfileResponse(user))
}

// Update handles PUT /api/users/:id.
func (h *UsersHandler) Update(c *fiber.Ctx) error {
	caller, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}

	var req dto.UpdateProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if req.Email != nil && !validEmail(*req.Email) {
		return apperrors.NewValidationError("invalid profile payload", []apperrors.FieldError{
			{Field: "email", Message: "please enter a valid email"},
		})
	}

	user, err := h.users.UpdateProfile(c.Context(), caller, c.Params("id"), service.ProfileUpdateInput{
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		UserName:    req.UserName,
		Email:       req.Email,
		Phone:       req.Phone,
		CountryCode: req.CountryCode,
	})
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"message": "Profile updated successfully",
		"user":    dto.NewUserProfileResponse(user),
	})
}

// ChangePassword handles PUT /api/users/:id/password.
func (h *UsersHandler) ChangePassword(c *fiber.Ctx) error {
	caller, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}

	var req dto.ChangePasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	var errs []apperrors.FieldError
	errs = appendRequired(errs, "currentPassword", req.CurrentPassword, "current password is required")
	errs = appendRequired(errs, "newPassword", req.NewPassword, "new password is required")
	if len(errs) > 0 {
		return apperrors.NewValidationError("invalid password payload", errs)
	}

	if err := h.auth.ChangePassword(c.Context(), caller, c.Params("id"), req.CurrentPassword, req.NewPassword); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"message": "Password changed successfully"})
}

// Delete handles DELETE /api/users/:id.
func (h *UsersHandler) Delete(c *fiber.Ctx) error {
	caller, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}

	if err := h.users.Delete(c.Context(), caller, c.Params("id")); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"message": "User deleted successfully"})
}
