package service

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/sabbebasta/booking-platform/internal/domain"
	"github.com/sabbebasta/booking-platform/internal/events"
)

func newTestBookingService(bookings *mockBookingRepository, services *mockServiceRepository, dispatcher *mockDispatcher) *BookingService {
	return NewBookingService(BookingDependencies{
		BookingRepo: bookings,
		ServiceRepo: services,
		Dispatcher:  dispatcher,
	})
}

func TestCreateBookingSnapshotsServicePrice(t *testing.T) {
	bookings := new(mockBookingRepository)
	services := new(mockServiceRepository)
	dispatcher := new(mockDispatcher)
	svc := newTestBookingService(bookings, services, dispatcher)

	services.On("GetByID", mock.Anything, "svc-1").
		Return(&domain.Service{ID: "svc-1", Title: "Burial Ground Service", Price: 8000}, nil)
	bookings.On("Create", mock.Anything, mock.MatchedBy(func(b *domain.Booking) bool {
		return b.TotalAmount == 8000 &&
			b.Status == domain.BookingStatusPending &&
			b.PaymentStatus == domain.PaymentStatusPending &&
			b.UserID == "user-1"
	})).Run(func(args mock.Arguments) {
		args.Get(1).(*domain.Booking).ID = "bk-1"
	}).Return(nil)
	dispatcher.On("Publish", mock.Anything, mock.MatchedBy(func(e events.Event) bool {
		return e.Type == events.EventBookingCreated && e.BookingID == "bk-1"
	})).Return(nil)

	caller := &domain.User{ID: "user-1", Role: domain.UserRoleCustomer}
	booking, err := svc.Create(context.Background(), caller, BookingCreateInput{
		ServiceID:    "svc-1",
		BookingDate:  time.Now().Add(48 * time.Hour),
		DeceasedName: "John Smith",
		Relationship: "father",
	})

	require.NoError(t, err)
	assert.Equal(t, float64(8000), booking.TotalAmount)
	require.NotNil(t, booking.Service)
	assert.Equal(t, "Burial Ground Service", booking.Service.Title)
	bookings.AssertExpectations(t)
	dispatcher.AssertExpectations(t)
}

func TestCreateBookingUnknownService(t *testing.T) {
	bookings := new(mockBookingRepository)
	services := new(mockServiceRepository)
	svc := newTestBookingService(bookings, services, nil)

	services.On("GetByID", mock.Anything, "missing").Return(nil, pgx.ErrNoRows)

	caller := &domain.User{ID: "user-1", Role: domain.UserRoleCustomer}
	_, err := svc.Create(context.Background(), caller, BookingCreateInput{ServiceID: "missing"})

	domainErr := asDomainError(t, err)
	assert.Equal(t, "NOT_FOUND", domainErr.Code)
	bookings.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestListScopesCustomersToOwnBookings(t *testing.T) {
	bookings := new(mockBookingRepository)
	svc := newTestBookingService(bookings, new(mockServiceRepository), nil)

	customer := &domain.User{ID: "user-1", Role: domain.UserRoleCustomer}
	bookings.On("List", mock.Anything, mock.MatchedBy(func(ownerID *string) bool {
		return ownerID != nil && *ownerID == "user-1"
	})).Return([]domain.Booking{{ID: "bk-1", UserID: "user-1"}}, nil)

	result, err := svc.List(context.Background(), customer)

	require.NoError(t, err)
	assert.Len(t, result, 1)
	bookings.AssertExpectations(t)
}

func TestListGivesAdminsEverything(t *testing.T) {
	bookings := new(mockBookingRepository)
	svc := newTestBookingService(bookings, new(mockServiceRepository), nil)

	admin := &domain.User{ID: "admin-1", Role: domain.UserRoleAdmin}
	bookings.On("List", mock.Anything, (*string)(nil)).
		Return([]domain.Booking{{ID: "bk-1"}, {ID: "bk-2"}}, nil)

	result, err := svc.List(context.Background(), admin)

	require.NoError(t, err)
	assert.Len(t, result, 2)
	bookings.AssertExpectations(t)
}

func TestGetForbiddenForNonOwner(t *testing.T) {
	bookings := new(mockBookingRepository)
	svc := newTestBookingService(bookings, new(mockServiceRepository), nil)

	bookings.On("GetByID", mock.Anything, "bk-1").
		Return(&domain.Booking{ID: "bk-1", UserID: "user-1"}, nil)

	other := &domain.User{ID: "user-2", Role: domain.UserRoleCustomer}
	_, err := svc.Get(context.Background(), other, "bk-1")

	domainErr := asDomainError(t, err)
	assert.Equal(t, "FORBIDDEN", domainErr.Code)
}

func TestUpdateStatusRejectsUnknownStatus(t *testing.T) {
	bookings := new(mockBookingRepository)
	svc := newTestBookingService(bookings, new(mockServiceRepository), nil)

	admin := &domain.User{ID: "admin-1", Role: domain.UserRoleAdmin}
	_, err := svc.UpdateStatus(context.Background(), admin, "bk-1", StatusUpdateInput{Status: "shipped"})

	domainErr := asDomainError(t, err)
	assert.Equal(t, "VALIDATION_FAILED", domainErr.Code)
	bookings.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestUpdateStatusRequiresAdmin(t *testing.T) {
	bookings := new(mockBookingRepository)
	svc := newTestBookingService(bookings, new(mockServiceRepository), nil)

	customer := &domain.User{ID: "user-1", Role: domain.UserRoleCustomer}
	_, err := svc.UpdateStatus(context.Background(), customer, "bk-1", StatusUpdateInput{Status: domain.BookingStatusConfirmed})

	domainErr := asDomainError(t, err)
	assert.Equal(t, "FORBIDDEN", domainErr.Code)
}

func TestUpdateStatusKeepsAssignmentWhenKeyOmitted(t *testing.T) {
	bookings := new(mockBookingRepository)
	dispatcher := new(mockDispatcher)
	svc := newTestBookingService(bookings, new(mockServiceRepository), dispatcher)

	staffID := "staff-1"
	bookings.On("GetByID", mock.Anything, "bk-1").
		Return(&domain.Booking{ID: "bk-1", UserID: "user-1", Status: domain.BookingStatusPending, AssignedStaffID: &staffID}, nil)
	bookings.On("Update", mock.Anything, mock.MatchedBy(func(b *domain.Booking) bool {
		return b.Status == domain.BookingStatusConfirmed && b.AssignedStaffID != nil && *b.AssignedStaffID == "staff-1"
	})).Return(nil)
	dispatcher.On("Publish", mock.Anything, mock.MatchedBy(func(e events.Event) bool {
		return e.Type == events.EventBookingStatusChanged
	})).Return(nil)

	admin := &domain.User{ID: "admin-1", Role: domain.UserRoleAdmin}
	_, err := svc.UpdateStatus(context.Background(), admin, "bk-1", StatusUpdateInput{
		Status:           domain.BookingStatusConfirmed,
		AssignedStaffSet: false,
	})

	require.NoError(t, err)
	bookings.AssertExpectations(t)
	dispatcher.AssertNotCalled(t, "Publish", mock.Anything, mock.MatchedBy(func(e events.Event) bool {
		return e.Type == events.EventBookingAssigned
	}))
}

func TestUpdateStatusClearsAssignmentOnExplicitNull(t *testing.T) {
	bookings := new(mockBookingRepository)
	dispatcher := new(mockDispatcher)
	svc := newTestBookingService(bookings, new(mockServiceRepository), dispatcher)

	staffID := "staff-1"
	bookings.On("GetByID", mock.Anything, "bk-1").
		Return(&domain.Booking{ID: "bk-1", UserID: "user-1", Status: domain.BookingStatusPending, AssignedStaffID: &staffID}, nil)
	bookings.On("Update", mock.Anything, mock.MatchedBy(func(b *domain.Booking) bool {
		return b.AssignedStaffID == nil
	})).Return(nil)
	dispatcher.On("Publish", mock.Anything, mock.Anything).Return(nil)

	admin := &domain.User{ID: "admin-1", Role: domain.UserRoleAdmin}
	_, err := svc.UpdateStatus(context.Background(), admin, "bk-1", StatusUpdateInput{
		Status:           domain.BookingStatusConfirmed,
		AssignedStaffID:  nil,
		AssignedStaffSet: true,
	})

	require.NoError(t, err)
	bookings.AssertExpectations(t)
}

func TestCancelIsIdempotent(t *testing.T) {
	bookings := new(mockBookingRepository)
	dispatcher := new(mockDispatcher)
	svc := newTestBookingService(bookings, new(mockServiceRepository), dispatcher)

	bookings.On("GetByID", mock.Anything, "bk-1").
		Return(&domain.Booking{ID: "bk-1", UserID: "user-1", Status: domain.BookingStatusCancelled}, nil)
	bookings.On("Update", mock.Anything, mock.MatchedBy(func(b *domain.Booking) bool {
		return b.Status == domain.BookingStatusCancelled
	})).Return(nil)
	dispatcher.On("Publish", mock.Anything, mock.Anything).Return(nil)

	owner := &domain.User{ID: "user-1", Role: domain.UserRoleCustomer}
	booking, err := svc.Cancel(context.Background(), owner, "bk-1")

	require.NoError(t, err)
	assert.Equal(t, domain.BookingStatusCancelled, booking.Status)
}

func TestCancelForbiddenForNonOwner(t *testing.T) {
	bookings := new(mockBookingRepository)
	svc := newTestBookingService(bookings, new(mockServiceRepository), nil)

	bookings.On("GetByID", mock.Anything, "bk-1").
		Return(&domain.Booking{ID: "bk-1", UserID: "user-1"}, nil)

	other := &domain.User{ID: "user-2", Role: domain.UserRoleCustomer}
	_, err := svc.Cancel(context.Background(), other, "bk-1")

	domainErr := asDomainError(t, err)
	assert.Equal(t, "FORBIDDEN", domainErr.Code)
	bookings.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}
