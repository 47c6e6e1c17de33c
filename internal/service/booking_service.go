package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/sabbebasta/booking-platform/internal/domain"
	"github.com/sabbebasta/booking-platform/internal/events"
	"github.com/sabbebasta/booking-platform/internal/repository"
	apperrors "github.com/sabbebasta/booking-platform/pkg/util"
)

// BookingService coordinates the booking lifecycle: creation against the
// catalog, ownership-scoped reads, admin status writes with optional staff
// assignment, and soft cancellation.
type BookingService struct {
	bookings   repository.BookingRepository
	services   repository.ServiceRepository
	dispatcher events.Dispatcher
}

// BookingDependencies bundles repositories for the booking service.
type BookingDependencies struct {
	BookingRepo repository.BookingRepository
	ServiceRepo repository.ServiceRepository
	Dispatcher  events.Dispatcher
}

// NewBookingService constructs the service.
func NewBookingService(deps BookingDependencies) *BookingService {
	return &BookingService{
		bookings:   deps.BookingRepo,
		services:   deps.ServiceRepo,
		dispatcher: deps.Dispatcher,
	}
}

// BookingCreateInput describes a booking creation payload.
type BookingCreateInput struct {
	ServiceID      string
	BookingDate    time.Time
	Notes          string
	DeceasedName   string
	Relationship   string
	CustomLocation *domain.Location
}

// StatusUpdateInput describes an admin status write. AssignedStaffSet
// records whether the request mentioned the assignment at all: an omitted
// field leaves the current assignment untouched, while an explicit null
// clears it.
type StatusUpdateInput struct {
	Status           domain.BookingStatus
	AssignedStaffID  *string
	AssignedStaffSet bool
}

// Create books a service for the caller. The service price is snapshotted
// into TotalAmount at this moment; later catalog price changes never
// retroactively alter existing bookings. The price read and the booking
// write are two separate storage operations with no atomicity between
// them; a racing price change is accepted as last-write-wins.
func (s *BookingService) Create(ctx context.Context, caller *domain.User, input BookingCreateInput) (*domain.Booking, error) {
	if caller == nil {
		return nil, apperrors.NewUnauthorized("authentication required")
	}

	service, err := s.services.GetByID(ctx, input.ServiceID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.NewNotFound("service")
		}
		return nil, apperrors.MapError(err)
	}

	booking := &domain.Booking{
		UserID:         caller.ID,
		ServiceID:      service.ID,
		BookingDate:    input.BookingDate,
		Status:         domain.BookingStatusPending,
		TotalAmount:    service.Price,
		PaymentStatus:  domain.PaymentStatusPending,
		Notes:          input.Notes,
		CustomLocation: input.CustomLocation,
		DeceasedName:   input.DeceasedName,
		Relationship:   input.Relationship,
	}
	if err := s.bookings.Create(ctx, booking); err != nil {
		return nil, apperrors.MapError(err)
	}

	// populate service display fields for the response
	booking.Service = service

	s.publishEvent(ctx, events.Event{
		Type:      events.EventBookingCreated,
		BookingID: booking.ID,
		ActorID:   caller.ID,
		Payload: events.BookingCreatedPayload{
			ServiceID:   service.ID,
			BookingDate: booking.BookingDate,
			TotalAmount: booking.TotalAmount,
		},
	})
	return booking, nil
}

// List returns bookings most-recent-first. Admins see every booking;
// customers see only their own.
func (s *BookingService) List(ctx context.Context, caller *domain.User) ([]domain.Booking, error) {
	if caller == nil {
		return nil, apperrors.NewUnauthorized("authentication required")
	}
	var ownerID *string
	if !caller.IsAdmin() {
		ownerID = &caller.ID
	}
	bookings, err := s.bookings.List(ctx, ownerID)
	return bookings, apperrors.MapError(err)
}

// Get returns a booking visible to its owner or an admin.
func (s *BookingService) Get(ctx context.Context, caller *domain.User, bookingID string) (*domain.Booking, error) {
	booking, err := s.loadBooking(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if err := authorizeOwnerOrAdmin(caller, booking); err != nil {
		return nil, err
	}
	return booking, nil
}

// UpdateStatus writes a new status and optionally the staff assignment.
// Admin only. Any enum value may replace any other; the lifecycle ordering
// is advisory, not enforced.
func (s *BookingService) UpdateStatus(ctx context.Context, caller *domain.User, bookingID string, input StatusUpdateInput) (*domain.Booking, error) {
	if err := requireAdmin(caller); err != nil {
		return nil, err
	}
	if !domain.ValidBookingStatus(input.Status) {
		return nil, apperrors.NewValidationError("invalid status payload", []apperrors.FieldError{
			{Field: "status", Message: "invalid status"},
		})
	}

	booking, err := s.loadBooking(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	oldStatus := booking.Status
	booking.Status = input.Status
	assignmentChanged := false
	if input.AssignedStaffSet {
		booking.AssignedStaffID = input.AssignedStaffID
		assignmentChanged = true
	}

	if err := s.bookings.Update(ctx, booking); err != nil {
		return nil, apperrors.MapError(err)
	}

	// re-read to refresh populated references after the write
	updated, err := s.loadBooking(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	s.publishEvent(ctx, events.Event{
		Type:      events.EventBookingStatusChanged,
		BookingID: booking.ID,
		ActorID:   caller.ID,
		Payload: events.BookingStatusChangedPayload{
			OldStatus: oldStatus,
			NewStatus: booking.Status,
		},
	})
	if assignmentChanged {
		s.publishEvent(ctx, events.Event{
			Type:      events.EventBookingAssigned,
			BookingID: booking.ID,
			ActorID:   caller.ID,
			Payload: events.BookingAssignedPayload{
				AssignedStaffID: booking.AssignedStaffID,
			},
		})
	}
	return updated, nil
}

// Cancel marks the booking cancelled without deleting it. Owner or admin.
// Cancelling an already-cancelled booking is a plain status write and
// succeeds again.
func (s *BookingService) Cancel(ctx context.Context, caller *domain.User, bookingID string) (*domain.Booking, error) {
	booking, err := s.loadBooking(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if err := authorizeOwnerOrAdmin(caller, booking); err != nil {
		return nil, err
	}

	booking.Status = domain.BookingStatusCancelled
	if err := s.bookings.Update(ctx, booking); err != nil {
		return nil, apperrors.MapError(err)
	}

	s.publishEvent(ctx, events.Event{
		Type:      events.EventBookingCancelled,
		BookingID: booking.ID,
		ActorID:   caller.ID,
	})
	return booking, nil
}

func (s *BookingService) loadBooking(ctx context.Context, id string) (*domain.Booking, error) {
	booking, err := s.bookings.GetByID(ctx, id)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.NewNotFound("booking")
		}
		return nil, apperrors.MapError(err)
	}
	return booking, nil
}

func (s *BookingService) publishEvent(ctx context.Context, event events.Event) {
	if s.dispatcher == nil {
		return
	}
	if event.ID == "" {
		event.ID = uuid.NewString()
	}
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now()
	}
	_ = s.dispatcher.Publish(ctx, event)
}
