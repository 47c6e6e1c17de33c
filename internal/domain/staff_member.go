package domain

import "time"

// StaffRole enumerates operational staff roles.
type StaffRole string

const (
	StaffRoleStaff      StaffRole = "staff"
	StaffRoleSupervisor StaffRole = "supervisor"
)

// ValidStaffRole reports whether r is a member of the closed enum.
func ValidStaffRole(r StaffRole) bool {
	return r == StaffRoleStaff || r == StaffRoleSupervisor
}

// StaffMember models an operational worker assignable to bookings.
// Deletion is a soft deactivation, never physical removal.
type StaffMember struct {
	ID             string
	FirstName      string
	LastName       string
	Email          string
	Phone          string
	Role           StaffRole
	IsActive       bool
	Specialization string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
