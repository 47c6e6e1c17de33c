package dto

import (
	"time"

	"github.com/sabbebasta/booking-platform/internal/domain"
)

// StaffCreateRequest payload.
type StaffCreateRequest struct {
	FirstName      string `json:"firstName"`
	LastName       string `json:"lastName"`
	Email          string `json:"email"`
	Phone          string `json:"phone"`
	Role           string `json:"role"`
	Specialization string `json:"specialization"`
}

// StaffUpdateRequest carries optional staff mutations.
type StaffUpdateRequest struct {
	FirstName      *string `json:"firstName"`
	LastName       *string `json:"lastName"`
	Email          *string `json:"email"`
	Phone          *string `json:"phone"`
	Role           *string `json:"role"`
	IsActive       *bool   `json:"isActive"`
	Specialization *string `json:"specialization"`
}

// StaffResponse is the staff directory view.
type StaffResponse struct {
	ID             string           `json:"id"`
	FirstName      string           `json:"firstName"`
	LastName       string           `json:"lastName"`
	Email          string           `json:"email"`
	Phone          string           `json:"phone"`
	Role           domain.StaffRole `json:"role"`
	IsActive       bool             `json:"isActive"`
	Specialization string           `json:"specialization"`
	CreatedAt      time.Time        `json:"createdAt"`
	UpdatedAt      time.Time        `json:"updatedAt"`
}

// NewStaffResponse maps a domain staff member.
func NewStaffResponse(staff *domain.StaffMember) StaffResponse {
	return StaffResponse{
		ID:             staff.ID,
		FirstName:      staff.FirstName,
		LastName:       staff.LastName,
		Email:          staff.Email,
		Phone:          staff.Phone,
		Role:           staff.Role,
		IsActive:       staff.IsActive,
		Specialization: staff.Specialization,
		CreatedAt:      staff.CreatedAt,
		UpdatedAt:      staff.UpdatedAt,
	}
}

// NewStaffResponses maps a listing.
func NewStaffResponses(staff []domain.StaffMember) []StaffResponse {
	result := make([]StaffResponse, 0, len(staff))
	for i := range staff {
		result = append(result, NewStaffResponse(&staff[i]))
	}
	return result
}
