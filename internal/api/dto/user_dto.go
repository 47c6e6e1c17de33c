package dto

import (
	"time"

	"github.com/sabbebasta/booking-platform/internal/domain"
)

// UserProfileResponse is the full credential-free account view.
type UserProfileResponse struct {
	ID          string          `json:"id"`
	FirstName   string          `json:"firstName"`
	LastName    string          `json:"lastName"`
	UserName    string          `json:"userName"`
	Email       string          `json:"email"`
	Phone       string          `json:"phone"`
	CountryCode string          `json:"countryCode"`
	Role        domain.UserRole `json:"role"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}

// NewUserProfileResponse maps a domain user.
func NewUserProfileResponse(user *domain.User) UserProfileResponse {
	return UserProfileResponse{
		ID:          user.ID,
		FirstName:   user.FirstName,
		LastName:    user.LastName,
		UserName:    user.UserName,
		Email:       user.Email,
		Phone:       user.Phone,
		CountryCode: user.CountryCode,
		Role:        user.Role,
		CreatedAt:   user.CreatedAt,
		UpdatedAt:   user.UpdatedAt,
	}
}

// UpdateProfileRequest carries optional profile mutations. password and
// role are deliberately absent: this route never changes credentials or
// privilege level.
type UpdateProfileRequest struct {
	FirstName   *string `json:"firstName"`
	LastName    *string `json:"lastName"`
	UserName    *string `json:"userName"`
	Email       *string `json:"email"`
	Phone       *string `json:"phone"`
	CountryCode *string `json:"countryCode"`
}

// ChangePasswordRequest payload.
type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
}
