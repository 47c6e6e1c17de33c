package service

import (
	"context"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/sabbebasta/booking-platform/internal/domain"
)

func TestUserListRequiresAdmin(t *testing.T) {
	users := new(mockUserRepository)
	svc := NewUserService(users)

	customer := &domain.User{ID: "user-1", Role: domain.UserRoleCustomer}
	_, err := svc.List(context.Background(), customer)

	domainErr := asDomainError(t, err)
	assert.Equal(t, "FORBIDDEN", domainErr.Code)
	users.AssertNotCalled(t, "List", mock.Anything)
}

func TestUserGetOwnProfile(t *testing.T) {
	users := new(mockUserRepository)
	svc := NewUserService(users)

	users.On("GetByID", mock.Anything, "user-1").
		Return(&domain.User{ID: "user-1", Email: "jane@example.com"}, nil)

	caller := &domain.User{ID: "user-1", Role: domain.UserRoleCustomer}
	user, err := svc.Get(context.Background(), caller, "user-1")

	require.NoError(t, err)
	assert.Equal(t, "jane@example.com", user.Email)
}

func TestUserGetForbiddenForOtherCustomers(t *testing.T) {
	users := new(mockUserRepository)
	svc := NewUserService(users)

	caller := &domain.User{ID: "user-1", Role: domain.UserRoleCustomer}
	_, err := svc.Get(context.Background(), caller, "user-2")

	domainErr := asDomainError(t, err)
	assert.Equal(t, "FORBIDDEN", domainErr.Code)
	users.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
}

func TestUpdateProfileLowercasesIdentifiers(t *testing.T) {
	users := new(mockUserRepository)
	svc := NewUserService(users)

	users.On("GetByID", mock.Anything, "user-1").
		Return(&domain.User{ID: "user-1", UserName: "janedoe", Email: "jane@example.com"}, nil)
	users.On("Update", mock.Anything, mock.MatchedBy(func(u *domain.User) bool {
		return u.UserName == "newname" && u.Email == "new@example.com"
	})).Return(nil)

	caller := &domain.User{ID: "user-1", Role: domain.UserRoleCustomer}
	userName := "NewName"
	email := "New@Example.com"
	user, err := svc.UpdateProfile(context.Background(), caller, "user-1", ProfileUpdateInput{
		UserName: &userName,
		Email:    &email,
	})

	require.NoError(t, err)
	assert.Equal(t, "newname", user.UserName)
	assert.Equal(t, "new@example.com", user.Email)
	users.AssertExpectations(t)
}

func TestUpdateProfileUnknownTarget(t *testing.T) {
	users := new(mockUserRepository)
	svc := NewUserService(users)

	users.On("GetByID", mock.Anything, "missing").Return(nil, pgx.ErrNoRows)

	admin := &domain.User{ID: "admin-1", Role: domain.UserRoleAdmin}
	_, err := svc.UpdateProfile(context.Background(), admin, "missing", ProfileUpdateInput{})

	domainErr := asDomainError(t, err)
	assert.Equal(t, "NOT_FOUND", domainErr.Code)
}

func TestUserDeleteRequiresAdmin(t *testing.T) {
	users := new(mockUserRepository)
	svc := NewUserService(users)

	caller := &domain.User{ID: "user-1", Role: domain.UserRoleCustomer}
	err := svc.Delete(context.Background(), caller, "user-1")

	domainErr := asDomainError(t, err)
	assert.Equal(t, "FORBIDDEN", domainErr.Code)
	users.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}
