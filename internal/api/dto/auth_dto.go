package dto

import (
	"github.com/sabbebasta/booking-platform/internal/domain"
)

// RegisterRequest payload for new accounts.
type RegisterRequest struct {
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	UserName    string `json:"userName"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	CountryCode string `json:"countryCode"`
	Password    string `json:"password"`
}

// LoginRequest payload. The email field accepts either the email or the
// username as the login identifier.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UserPublic is the credential-free account view returned by auth
// endpoints.
type UserPublic struct {
	ID        string          `json:"id"`
	FirstName string          `json:"firstName"`
	LastName  string          `json:"lastName"`
	UserName  string          `json:"userName"`
	Email     string          `json:"email"`
	Phone     string          `json:"phone"`
	Role      domain.UserRole `json:"role"`
}

// NewUserPublic maps a domain user, never exposing the password hash.
func NewUserPublic(user *domain.User) UserPublic {
	return UserPublic{
		ID:        user.ID,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		UserName:  user.UserName,
		Email:     user.Email,
		Phone:     user.Phone,
		Role:      user.Role,
	}
}
