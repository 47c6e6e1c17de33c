package domain

import "time"

// BookingStatus enumerates booking lifecycle states. The intended flow is
// pending -> confirmed -> completed, with cancellation from pending or
// confirmed, but admin status writes are not ordered: any enum value may
// replace any other.
type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "pending"
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusCompleted BookingStatus = "completed"
	BookingStatusCancelled BookingStatus = "cancelled"
)

// ValidBookingStatus reports whether s is a member of the closed enum.
func ValidBookingStatus(s BookingStatus) bool {
	switch s {
	case BookingStatusPending, BookingStatusConfirmed, BookingStatusCompleted, BookingStatusCancelled:
		return true
	}
	return false
}

// PaymentStatus tracks the payment side of a booking.
type PaymentStatus string

const (
	PaymentStatusPending  PaymentStatus = "pending"
	PaymentStatusPaid     PaymentStatus = "paid"
	PaymentStatusRefunded PaymentStatus = "refunded"
)

// Booking is the aggregate tying a customer to a catalog service.
// TotalAmount snapshots the service price at creation time and never
// follows later price changes.
type Booking struct {
	ID              string
	UserID          string
	ServiceID       string
	BookingDate     time.Time
	Status          BookingStatus
	TotalAmount     float64
	PaymentStatus   PaymentStatus
	Notes           string
	CustomLocation  *Location
	DeceasedName    string
	Relationship    string
	AssignedStaffID *string
	CreatedAt       time.Time
	UpdatedAt       time.Time

	// Populated references for display. A dangling reference (deleted
	// user/service/staff row) leaves the pointer nil rather than failing
	// the read.
	Owner         *User
	Service       *Service
	AssignedStaff *StaffMember
}

// OwnedBy reports whether the booking belongs to the given user id.
func (b *Booking) OwnedBy(userID string) bool {
	return b != nil && b.UserID == userID
}
