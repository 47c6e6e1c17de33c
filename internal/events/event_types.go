package events

import (
	"time"

	"github.com/sabbebasta/booking-platform/internal/domain"
)

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventBookingCreated       EventType = "booking_created"
	EventBookingStatusChanged EventType = "booking_status_changed"
	EventBookingAssigned      EventType = "booking_assigned"
	EventBookingCancelled     EventType = "booking_cancelled"
)

// Event represents a domain event emitted by services.
type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	BookingID string      `json:"bookingId"`
	ActorID   string      `json:"actorId"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// BookingCreatedPayload payload.
type BookingCreatedPayload struct {
	ServiceID   string    `json:"serviceId"`
	BookingDate time.Time `json:"bookingDate"`
	TotalAmount float64   `json:"totalAmount"`
}

// BookingStatusChangedPayload payload.
type BookingStatusChangedPayload struct {
	OldStatus domain.BookingStatus `json:"oldStatus"`
	NewStatus domain.BookingStatus `json:"newStatus"`
}

// BookingAssignedPayload payload.
type BookingAssignedPayload struct {
	AssignedStaffID *string `json:"assignedStaffId"`
}
