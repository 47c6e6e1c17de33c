package domain

import "time"

// UserRole distinguishes customers from administrators.
type UserRole string

const (
	UserRoleCustomer UserRole = "customer"
	UserRoleAdmin    UserRole = "admin"
)

// User is the domain model for platform accounts.
type User struct {
	ID           string
	FirstName    string
	LastName     string
	UserName     string
	Email        string
	Phone        string
	CountryCode  string
	PasswordHash string
	Role         UserRole
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// IsAdmin reports whether the account holds the admin role.
func (u *User) IsAdmin() bool {
	return u != nil && u.Role == UserRoleAdmin
}
