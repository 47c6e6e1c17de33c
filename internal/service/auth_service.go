package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/sabbebasta/booking-platform/internal/auth"
	"github.com/sabbebasta/booking-platform/internal/config"
	"github.com/sabbebasta/booking-platform/internal/domain"
	"github.com/sabbebasta/booking-platform/internal/repository"
	apperrors "github.com/sabbebasta/booking-platform/pkg/util"
)

// invalidCredentials is returned for every login failure mode so callers
// cannot distinguish a wrong identifier from a wrong password.
const invalidCredentials = "invalid credentials"

// AuthService coordinates registration, login and password flows.
type AuthService struct {
	users             repository.UserRepository
	tokenMgr          *auth.TokenManager
	bcryptCost        int
	minPasswordLength int
}

// NewAuthService builds the service.
func NewAuthService(cfg config.Config, users repository.UserRepository) *AuthService {
	return &AuthService{
		users:             users,
		tokenMgr:          auth.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.AccessTokenTTLDays),
		bcryptCost:        cfg.Auth.BcryptCost,
		minPasswordLength: cfg.Auth.MinPasswordLength,
	}
}

// RegisterInput describes a registration payload.
type RegisterInput struct {
	FirstName   string
	LastName    string
	UserName    string
	Email       string
	Phone       string
	CountryCode string
	Password    string
}

// Register creates a customer account and issues a session token.
// userName and email are stored lowercased, which makes the uniqueness
// checks case-insensitive.
func (s *AuthService) Register(ctx context.Context, input RegisterInput) (*domain.User, string, time.Time, error) {
	if len(input.Password) < s.minPasswordLength {
		return nil, "", time.Time{}, apperrors.NewValidationError("invalid registration payload", []apperrors.FieldError{
			{Field: "password", Message: fmt.Sprintf("password must be at least %d characters", s.minPasswordLength)},
		})
	}

	email := strings.ToLower(strings.TrimSpace(input.Email))
	userName := strings.ToLower(strings.TrimSpace(input.UserName))

	if _, err := s.users.GetByEmailOrUserName(ctx, email, userName); err == nil {
		return nil, "", time.Time{}, apperrors.NewConflict("user already exists with this email or username", nil)
	} else if err != pgx.ErrNoRows {
		return nil, "", time.Time{}, apperrors.MapError(err)
	}

	hash, err := auth.HashPassword(input.Password, s.bcryptCost)
	if err != nil {
		return nil, "", time.Time{}, apperrors.NewInternalError(err)
	}

	countryCode := input.CountryCode
	if countryCode == "" {
		countryCode = "+1"
	}

	user := &domain.User{
		FirstName:    strings.TrimSpace(input.FirstName),
		LastName:     strings.TrimSpace(input.LastName),
		UserName:     userName,
		Email:        email,
		Phone:        strings.TrimSpace(input.Phone),
		CountryCode:  countryCode,
		PasswordHash: hash,
		Role:         domain.UserRoleCustomer,
	}
	if err := s.users.Create(ctx, user); err != nil {
		// duplicate-key race with the existence check above
		if apperrors.IsDuplicateKey(err) {
			return nil, "", time.Time{}, apperrors.NewConflict("user already exists with this email or username", nil)
		}
		return nil, "", time.Time{}, apperrors.MapError(err)
	}

	token, exp, err := s.tokenMgr.GenerateToken(user.ID)
	if err != nil {
		return nil, "", time.Time{}, apperrors.NewInternalError(err)
	}
	return user, token, exp, nil
}

// Login authenticates by email or username, case-insensitively.
func (s *AuthService) Login(ctx context.Context, identifier, password string) (*domain.User, string, time.Time, error) {
	user, err := s.users.GetByIdentifier(ctx, strings.ToLower(strings.TrimSpace(identifier)))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, "", time.Time{}, apperrors.NewUnauthorized(invalidCredentials)
		}
		return nil, "", time.Time{}, apperrors.MapError(err)
	}
	if err := auth.ComparePassword(user.PasswordHash, password); err != nil {
		return nil, "", time.Time{}, apperrors.NewUnauthorized(invalidCredentials)
	}
	token, exp, err := s.tokenMgr.GenerateToken(user.ID)
	if err != nil {
		return nil, "", time.Time{}, apperrors.NewInternalError(err)
	}
	return user, token, exp, nil
}

// ChangePassword updates the target user's password. A user changing
// their own password proves knowledge of it; an admin changing someone
// else's proves knowledge of the admin's own password. Every other
// caller/target combination is forbidden.
func (s *AuthService) ChangePassword(ctx context.Context, caller *domain.User, targetID, currentPassword, newPassword string) error {
	if caller == nil {
		return apperrors.NewUnauthorized("authentication required")
	}
	if caller.ID != targetID && !caller.IsAdmin() {
		return apperrors.NewForbidden("access denied")
	}
	if len(newPassword) < s.minPasswordLength {
		return apperrors.NewValidationError("invalid password payload", []apperrors.FieldError{
			{Field: "newPassword", Message: fmt.Sprintf("new password must be at least %d characters", s.minPasswordLength)},
		})
	}

	target, err := s.users.GetByID(ctx, targetID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return apperrors.NewNotFound("user")
		}
		return apperrors.MapError(err)
	}

	if caller.ID == targetID {
		if err := auth.ComparePassword(target.PasswordHash, currentPassword); err != nil {
			return apperrors.NewUnauthorized("current password is incorrect")
		}
	} else {
		admin, err := s.users.GetByID(ctx, caller.ID)
		if err != nil {
			return apperrors.MapError(err)
		}
		if err := auth.ComparePassword(admin.PasswordHash, currentPassword); err != nil {
			return apperrors.NewUnauthorized("your admin password is incorrect")
		}
	}

	hash, err := auth.HashPassword(newPassword, s.bcryptCost)
	if err != nil {
		return apperrors.NewInternalError(err)
	}
	target.PasswordHash = hash
	return apperrors.MapError(s.users.Update(ctx, target))
}

// TokenManager exposes the underlying token manager for middleware usage.
func (s *AuthService) TokenManager() *auth.TokenManager {
	return s.tokenMgr
}
