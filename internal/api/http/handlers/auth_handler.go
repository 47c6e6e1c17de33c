package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/sabbebasta/booking-platform/internal/api/dto"
	"github.com/sabbebasta/booking-platform/internal/auth"
	"github.com/sabbebasta/booking-platform/internal/service"
	apperrors "github.com/sabbebasta/booking-platform/pkg/util"
)

// AuthHandler exposes registration, login and the current-user endpoint.
type AuthHandler struct {
	auth *service.AuthService
}

// NewAuthHandler constructs handler.
func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{auth: authService}
}

// Register handles POST /api/auth/register.
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	var errs []apperrors.FieldError
	errs = appendRequired(errs, "firstName", req.FirstName, "first name is required")
	errs = appendRequired(errs, "lastName", req.LastName, "last name is required")
	errs = appendRequired(errs, "userName", req.UserName, "username is required")
	errs = appendRequired(errs, "phone", req.Phone, "phone number is required")
	if !validEmail(req.Email) {
		errs = append(errs, apperrors.FieldError{Field: "email", Message: "please enter a valid email"})
	}
	if len(errs) > 0 {
		return apperrors.NewValidationError("invalid registration payload", errs)
	}

	user, token, _, err := h.auth.Register(c.Context(), service.RegisterInput{
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		UserName:    req.UserName,
		Email:       req.Email,
		Phone:       req.Phone,
		CountryCode: req.CountryCode,
		Password:    req.Password,
	})
	if err != nil {
		return err
	}

	return c.Status(http.StatusCreated).JSON(fiber.Map{
		"message": "User registered successfully",
		"token":   token,
		"user":    dto.NewUserPublic(user),
	})
}

// Login handles POST /api/auth/login.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	var errs []apperrors.FieldError
	errs = appendRequired(errs, "email", req.Email, "email or username is required")
	errs = appendRequired(errs, "password", req.Password, "password is required")
	if len(errs) > 0 {
		return apperrors.NewValidationError("invalid login payload", errs)
	}

	user, token, _, err := h.auth.Login(c.Context(), req.Email, req.Password)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"message": "Login successful",
		"token":   token,
		"user":    dto.NewUserPublic(user),
	})
}

// Me handles GET /api/auth/me.
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	user, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}
	return c.JSON(fiber.Map{"user": dto.NewUserPublic(user)})
}
