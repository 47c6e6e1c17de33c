package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/sabbebasta/booking-platform/internal/api/dto"
	"github.com/sabbebasta/booking-platform/internal/auth"
	"github.com/sabbebasta/booking-platform/internal/domain"
	"github.com/sabbebasta/booking-platform/internal/service"
	apperrors "github.com/sabbebasta/booking-platform/pkg/util"
)

// BookingsHandler exposes the booking lifecycle endpoints.
type BookingsHandler struct {
	bookings *service.BookingService
}

func NewBookingsHandler(bookings *service.BookingService) *BookingsHandler {
	return &BookingsHandler{bookings: bookings}
}

// Create handles POST /api/bookings.
func (h *BookingsHandler) Create(c *fiber.Ctx) error {
	caller, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}

	var req dto.CreateBookingRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	var errs []apperrors.FieldError
	errs = appendRequired(errs, "service", req.Service, "service is required")
	bookingDate, dateErr := time.Parse(time.RFC3339, req.BookingDate)
	if dateErr != nil {
		errs = append(errs, apperrors.FieldError{Field: "bookingDate", Message: "booking date must be a valid date"})
	}
	if len(errs) > 0 {
		return apperrors.NewValidationError("invalid booking payload", errs)
	}

	input := service.BookingCreateInput{
		ServiceID:    req.Service,
		BookingDate:  bookingDate,
		Notes:        req.Notes,
		DeceasedName: req.DeceasedName,
		Relationship: req.Relationship,
	}
	if req.CustomLocation != nil {
		input.CustomLocation = &domain.Location{
			Latitude:  req.CustomLocation.Latitude,
			Longitude: req.CustomLocation.Longitude,
			Address:   req.CustomLocation.Address,
		}
	}

	booking, err := h.bookings.Create(c.Context(), caller, input)
	if err != nil {
		return err
	}

	return c.Status(http.StatusCreated).JSON(fiber.Map{
		"message": "Booking created successfully",
		"booking": dto.NewBookingResponse(booking, caller.IsAdmin()),
	})
}

// List handles GET /api/bookings. Admins see every booking, customers
// only their own.
func (h *BookingsHandler) List(c *fiber.Ctx) error {
	caller, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}

	bookings, err := h.bookings.List(c.Context(), caller)
	if err != nil {
		return err
	}
	return c.JSON(dto.NewBookingResponses(bookings, caller.IsAdmin()))
}

// Get handles GET /api/bookings/:id.
func (h *BookingsHandler) Get(c *fiber.Ctx) error {
	caller, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}

	booking, err := h.bookings.Get(c.Context(), caller, c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(dto.NewBookingResponse(booking, caller.IsAdmin()))
}

// UpdateStatus handles PUT /api/bookings/:id/status. The assignedStaff
// key is tri-state: omitted keeps the current assignment, null clears
// it, a value sets it.
func (h *BookingsHandler) UpdateStatus(c *fiber.Ctx) error {
	caller, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}

	var req dto.UpdateBookingStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(c.Body(), &raw); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	_, staffKeyPresent := raw["assignedStaff"]

	booking, err := h.bookings.UpdateStatus(c.Context(), caller, c.Params("id"), service.StatusUpdateInput{
		Status:           domain.BookingStatus(req.Status),
		AssignedStaffID:  req.AssignedStaff,
		AssignedStaffSet: staffKeyPresent,
	})
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"message": "Booking status updated successfully",
		"booking": dto.NewBookingResponse(booking, caller.IsAdmin()),
	})
}

// Cancel handles DELETE /api/bookings/:id. Cancels the booking rather
// than removing it.
func (h *BookingsHandler) Cancel(c *fiber.Ctx) error {
	caller, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}

	booking, err := h.bookings.Cancel(c.Context(), caller, c.Params("id"))
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"message": "Booking cancelled successfully",
		"booking": dto.NewBookingResponse(booking, caller.IsAdmin()),
	})
}
