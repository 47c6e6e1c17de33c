package service

import (
	"context"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/sabbebasta/booking-platform/internal/domain"
	apperrors "github.com/sabbebasta/booking-platform/pkg/util"
)

func TestStaffCreateRequiresAdmin(t *testing.T) {
	staffRepo := new(mockStaffRepository)
	svc := NewStaffService(staffRepo)

	customer := &domain.User{ID: "user-1", Role: domain.UserRoleCustomer}
	_, err := svc.Create(context.Background(), customer, StaffCreateInput{
		FirstName: "Ram", LastName: "Das", Email: "ram@example.com", Phone: "1112223333",
	})

	domainErr := asDomainError(t, err)
	assert.Equal(t, "FORBIDDEN", domainErr.Code)
	staffRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestStaffCreateDefaultsRoleAndLowercasesEmail(t *testing.T) {
	staffRepo := new(mockStaffRepository)
	svc := NewStaffService(staffRepo)

	staffRepo.On("GetByEmail", mock.Anything, "ram@example.com").Return(nil, pgx.ErrNoRows)
	staffRepo.On("Create", mock.Anything, mock.MatchedBy(func(s *domain.StaffMember) bool {
		return s.Email == "ram@example.com" && s.Role == domain.StaffRoleStaff && s.IsActive
	})).Return(nil)

	admin := &domain.User{ID: "admin-1", Role: domain.UserRoleAdmin}
	staff, err := svc.Create(context.Background(), admin, StaffCreateInput{
		FirstName: "Ram", LastName: "Das", Email: "Ram@Example.com", Phone: "1112223333",
	})

	require.NoError(t, err)
	assert.Equal(t, domain.StaffRoleStaff, staff.Role)
	staffRepo.AssertExpectations(t)
}

func TestStaffCreateDuplicateEmail(t *testing.T) {
	staffRepo := new(mockStaffRepository)
	svc := NewStaffService(staffRepo)

	staffRepo.On("GetByEmail", mock.Anything, "ram@example.com").
		Return(&domain.StaffMember{ID: "staff-1"}, nil)

	admin := &domain.User{ID: "admin-1", Role: domain.UserRoleAdmin}
	_, err := svc.Create(context.Background(), admin, StaffCreateInput{
		FirstName: "Ram", LastName: "Das", Email: "ram@example.com", Phone: "1112223333",
	})

	domainErr := asDomainError(t, err)
	assert.Equal(t, "CONFLICT", domainErr.Code)
	staffRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestStaffCreateCollectsFieldErrors(t *testing.T) {
	staffRepo := new(mockStaffRepository)
	svc := NewStaffService(staffRepo)

	admin := &domain.User{ID: "admin-1", Role: domain.UserRoleAdmin}
	_, err := svc.Create(context.Background(), admin, StaffCreateInput{Role: "manager"})

	domainErr := asDomainError(t, err)
	assert.Equal(t, "VALIDATION_FAILED", domainErr.Code)
	fieldErrs, ok := domainErr.Details["errors"].([]apperrors.FieldError)
	require.True(t, ok)
	assert.Len(t, fieldErrs, 5)
}

func TestStaffUpdateAppliesOnlyProvidedFields(t *testing.T) {
	staffRepo := new(mockStaffRepository)
	svc := NewStaffService(staffRepo)

	staffRepo.On("GetByID", mock.Anything, "staff-1").
		Return(&domain.StaffMember{
			ID: "staff-1", FirstName: "Ram", LastName: "Das",
			Email: "ram@example.com", Phone: "1112223333",
			Role: domain.StaffRoleStaff, IsActive: true,
		}, nil)
	staffRepo.On("Update", mock.Anything, mock.MatchedBy(func(s *domain.StaffMember) bool {
		return s.Phone == "9998887777" && s.FirstName == "Ram" && s.Role == domain.StaffRoleSupervisor
	})).Return(nil)

	admin := &domain.User{ID: "admin-1", Role: domain.UserRoleAdmin}
	phone := "9998887777"
	role := domain.StaffRoleSupervisor
	staff, err := svc.Update(context.Background(), admin, "staff-1", StaffUpdateInput{
		Phone: &phone,
		Role:  &role,
	})

	require.NoError(t, err)
	assert.Equal(t, "9998887777", staff.Phone)
	assert.Equal(t, domain.StaffRoleSupervisor, staff.Role)
	staffRepo.AssertExpectations(t)
}

func TestStaffDeactivateUnknownID(t *testing.T) {
	staffRepo := new(mockStaffRepository)
	svc := NewStaffService(staffRepo)

	staffRepo.On("Deactivate", mock.Anything, "missing").Return(pgx.ErrNoRows)

	admin := &domain.User{ID: "admin-1", Role: domain.UserRoleAdmin}
	err := svc.Deactivate(context.Background(), admin, "missing")

	domainErr := asDomainError(t, err)
	assert.Equal(t, "NOT_FOUND", domainErr.Code)
}
