package service

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/sabbebasta/booking-platform/internal/config"
	"github.com/sabbebasta/booking-platform/internal/domain"
	apperrors "github.com/sabbebasta/booking-platform/pkg/util"
)

func newTestAuthService(users *mockUserRepository) *AuthService {
	cfg := config.Config{
		Auth: config.AuthConfig{
			JWTSecret:          "test-secret",
			AccessTokenTTLDays: 7,
			BcryptCost:         bcrypt.MinCost,
			MinPasswordLength:  6,
		},
	}
	return NewAuthService(cfg, users)
}

func hashForTest(t *testing.T, password string) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(hash)
}

func asDomainError(t *testing.T, err error) *apperrors.DomainError {
	t.Helper()
	var domainErr *apperrors.DomainError
	require.True(t, errors.As(err, &domainErr))
	return domainErr
}

func TestRegisterLowercasesIdentifiers(t *testing.T) {
	users := new(mockUserRepository)
	svc := newTestAuthService(users)

	users.On("GetByEmailOrUserName", mock.Anything, "jane@example.com", "janedoe").
		Return(nil, pgx.ErrNoRows)
	users.On("Create", mock.Anything, mock.MatchedBy(func(u *domain.User) bool {
		return u.Email == "jane@example.com" && u.UserName == "janedoe" && u.Role == domain.UserRoleCustomer
	})).Run(func(args mock.Arguments) {
		args.Get(1).(*domain.User).ID = "user-1"
	}).Return(nil)

	user, token, _, err := svc.Register(context.Background(), RegisterInput{
		FirstName: "Jane",
		LastName:  "Doe",
		UserName:  "JaneDoe",
		Email:     "Jane@Example.com",
		Phone:     "1234567890",
		Password:  "secret123",
	})

	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, "jane@example.com", user.Email)
	assert.Equal(t, "janedoe", user.UserName)
	assert.Equal(t, "+1", user.CountryCode)
	users.AssertExpectations(t)
}

func TestRegisterRejectsShortPassword(t *testing.T) {
	users := new(mockUserRepository)
	svc := newTestAuthService(users)

	_, _, _, err := svc.Register(context.Background(), RegisterInput{
		UserName: "janedoe",
		Email:    "jane@example.com",
		Password: "short",
	})

	domainErr := asDomainError(t, err)
	assert.Equal(t, "VALIDATION_FAILED", domainErr.Code)
	users.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestRegisterConflictIsCaseInsensitive(t *testing.T) {
	users := new(mockUserRepository)
	svc := newTestAuthService(users)

	users.On("GetByEmailOrUserName", mock.Anything, "jane@example.com", "janedoe").
		Return(&domain.User{ID: "existing"}, nil)

	_, _, _, err := svc.Register(context.Background(), RegisterInput{
		UserName: "JANEDOE",
		Email:    "JANE@EXAMPLE.COM",
		Password: "secret123",
	})

	domainErr := asDomainError(t, err)
	assert.Equal(t, "CONFLICT", domainErr.Code)
	users.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestLoginFailureModesAreIndistinguishable(t *testing.T) {
	users := new(mockUserRepository)
	svc := newTestAuthService(users)

	users.On("GetByIdentifier", mock.Anything, "nobody@example.com").
		Return(nil, pgx.ErrNoRows)
	users.On("GetByIdentifier", mock.Anything, "jane@example.com").
		Return(&domain.User{ID: "user-1", PasswordHash: hashForTest(t, "correct-password")}, nil)

	_, _, _, noUserErr := svc.Login(context.Background(), "nobody@example.com", "whatever")
	_, _, _, badPassErr := svc.Login(context.Background(), "jane@example.com", "wrong-password")

	assert.Equal(t, asDomainError(t, noUserErr).Message, asDomainError(t, badPassErr).Message)
	assert.Equal(t, asDomainError(t, noUserErr).HTTPStatus, asDomainError(t, badPassErr).HTTPStatus)
}

func TestLoginMatchesUserNameToo(t *testing.T) {
	users := new(mockUserRepository)
	svc := newTestAuthService(users)

	users.On("GetByIdentifier", mock.Anything, "janedoe").
		Return(&domain.User{ID: "user-1", PasswordHash: hashForTest(t, "secret123")}, nil)

	user, token, _, err := svc.Login(context.Background(), "JaneDoe", "secret123")

	require.NoError(t, err)
	assert.Equal(t, "user-1", user.ID)
	assert.NotEmpty(t, token)
}

func TestChangePasswordSelfVerifiesOwnPassword(t *testing.T) {
	users := new(mockUserRepository)
	svc := newTestAuthService(users)

	caller := &domain.User{ID: "user-1", Role: domain.UserRoleCustomer}
	users.On("GetByID", mock.Anything, "user-1").
		Return(&domain.User{ID: "user-1", PasswordHash: hashForTest(t, "old-password")}, nil)

	err := svc.ChangePassword(context.Background(), caller, "user-1", "wrong-password", "new-password")

	domainErr := asDomainError(t, err)
	assert.Equal(t, "UNAUTHORIZED", domainErr.Code)
	assert.Equal(t, "current password is incorrect", domainErr.Message)
}

func TestChangePasswordAdminVerifiesAdminPassword(t *testing.T) {
	users := new(mockUserRepository)
	svc := newTestAuthService(users)

	admin := &domain.User{ID: "admin-1", Role: domain.UserRoleAdmin}
	users.On("GetByID", mock.Anything, "user-1").
		Return(&domain.User{ID: "user-1", PasswordHash: hashForTest(t, "user-password")}, nil)
	users.On("GetByID", mock.Anything, "admin-1").
		Return(&domain.User{ID: "admin-1", PasswordHash: hashForTest(t, "admin-password")}, nil)
	users.On("Update", mock.Anything, mock.MatchedBy(func(u *domain.User) bool {
		return u.ID == "user-1" && bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("new-password")) == nil
	})).Return(nil)

	err := svc.ChangePassword(context.Background(), admin, "user-1", "admin-password", "new-password")

	require.NoError(t, err)
	users.AssertExpectations(t)
}

func TestChangePasswordAdminWrongOwnPassword(t *testing.T) {
	users := new(mockUserRepository)
	svc := newTestAuthService(users)

	admin := &domain.User{ID: "admin-1", Role: domain.UserRoleAdmin}
	users.On("GetByID", mock.Anything, "user-1").
		Return(&domain.User{ID: "user-1", PasswordHash: hashForTest(t, "user-password")}, nil)
	users.On("GetByID", mock.Anything, "admin-1").
		Return(&domain.User{ID: "admin-1", PasswordHash: hashForTest(t, "admin-password")}, nil)

	err := svc.ChangePassword(context.Background(), admin, "user-1", "user-password", "new-password")

	domainErr := asDomainError(t, err)
	assert.Equal(t, "your admin password is incorrect", domainErr.Message)
	users.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestChangePasswordCustomerCannotTargetOthers(t *testing.T) {
	users := new(mockUserRepository)
	svc := newTestAuthService(users)

	caller := &domain.User{ID: "user-1", Role: domain.UserRoleCustomer}

	err := svc.ChangePassword(context.Background(), caller, "user-2", "whatever", "new-password")

	domainErr := asDomainError(t, err)
	assert.Equal(t, "FORBIDDEN", domainErr.Code)
}
