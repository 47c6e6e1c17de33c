package dto

import (
	"time"

	"github.com/sabbebasta/booking-platform/internal/domain"
)

// CreateBookingRequest payload. Clients send the catalog id under the
// service key.
type CreateBookingRequest struct {
	Service        string           `json:"service"`
	BookingDate    string           `json:"bookingDate"`
	Notes          string           `json:"notes"`
	DeceasedName   string           `json:"deceasedName"`
	Relationship   string           `json:"relationship"`
	CustomLocation *LocationPayload `json:"customLocation"`
}

// UpdateBookingStatusRequest payload. Presence of the assignedStaff key
// is detected separately by the handler: omitted keeps the current
// assignment, explicit null clears it.
type UpdateBookingStatusRequest struct {
	Status        string  `json:"status"`
	AssignedStaff *string `json:"assignedStaff"`
}

// BookingUserRef is the owner subset embedded in booking views.
type BookingUserRef struct {
	ID        string `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
}

// BookingServiceRef is the catalog subset embedded in booking views.
type BookingServiceRef struct {
	ID       string  `json:"id"`
	Title    string  `json:"title"`
	Price    float64 `json:"price"`
	Duration string  `json:"duration"`
	ImageURL string  `json:"imageUrl,omitempty"`
}

// BookingStaffRef is the assignment subset embedded in booking views.
type BookingStaffRef struct {
	ID        string `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
}

// BookingResponse is the populated booking view.
type BookingResponse struct {
	ID             string               `json:"id"`
	User           *BookingUserRef      `json:"user,omitempty"`
	Service        *BookingServiceRef   `json:"service"`
	BookingDate    time.Time            `json:"bookingDate"`
	Status         domain.BookingStatus `json:"status"`
	TotalAmount    float64              `json:"totalAmount"`
	PaymentStatus  domain.PaymentStatus `json:"paymentStatus"`
	Notes          string               `json:"notes"`
	CustomLocation *LocationPayload     `json:"customLocation,omitempty"`
	DeceasedName   string               `json:"deceasedName"`
	Relationship   string               `json:"relationship"`
	AssignedStaff  *BookingStaffRef     `json:"assignedStaff"`
	CreatedAt      time.Time            `json:"createdAt"`
	UpdatedAt      time.Time            `json:"updatedAt"`
}

// NewBookingResponse maps a populated booking. The owner reference is
// included only when includeUser is set (admin views); dangling service
// or staff references map to null.
func NewBookingResponse(booking *domain.Booking, includeUser bool) BookingResponse {
	resp := BookingResponse{
		ID:            booking.ID,
		BookingDate:   booking.BookingDate,
		Status:        booking.Status,
		TotalAmount:   booking.TotalAmount,
		PaymentStatus: booking.PaymentStatus,
		Notes:         booking.Notes,
		DeceasedName:  booking.DeceasedName,
		Relationship:  booking.Relationship,
		CreatedAt:     booking.CreatedAt,
		UpdatedAt:     booking.UpdatedAt,
	}
	if booking.CustomLocation != nil {
		resp.CustomLocation = &LocationPayload{
			Latitude:  booking.CustomLocation.Latitude,
			Longitude: booking.CustomLocation.Longitude,
			Address:   booking.CustomLocation.Address,
		}
	}
	if includeUser && booking.Owner != nil {
		resp.User = &BookingUserRef{
			ID:        booking.Owner.ID,
			FirstName: booking.Owner.FirstName,
			LastName:  booking.Owner.LastName,
			Email:     booking.Owner.Email,
			Phone:     booking.Owner.Phone,
		}
	}
	if booking.Service != nil {
		resp.Service = &BookingServiceRef{
			ID:       booking.Service.ID,
			Title:    booking.Service.Title,
			Price:    booking.Service.Price,
			Duration: booking.Service.Duration,
			ImageURL: booking.Service.ImageURL,
		}
	}
	if booking.AssignedStaff != nil {
		resp.AssignedStaff = &BookingStaffRef{
			ID:        booking.AssignedStaff.ID,
			FirstName: booking.AssignedStaff.FirstName,
			LastName:  booking.AssignedStaff.LastName,
			Email:     booking.AssignedStaff.Email,
			Phone:     booking.AssignedStaff.Phone,
		}
	}
	return resp
}

// NewBookingResponses maps a listing.
func NewBookingResponses(bookings []domain.Booking, includeUser bool) []BookingResponse {
	result := make([]BookingResponse, 0, len(bookings))
	for i := range bookings {
		result = append(result, NewBookingResponse(&bookings[i], includeUser))
	}
	return result
}
