package service

import (
	"context"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/sabbebasta/booking-platform/internal/domain"
	"github.com/sabbebasta/booking-platform/internal/repository"
	apperrors "github.com/sabbebasta/booking-platform/pkg/util"
)

// UserService manages account profiles.
type UserService struct {
	users repository.UserRepository
}

// NewUserService builds the service.
func NewUserService(users repository.UserRepository) *UserService {
	return &UserService{users: users}
}

// ProfileUpdateInput carries the mutable profile fields. Password and role
// never appear here, so this path cannot change credentials or privilege.
type ProfileUpdateInput struct {
	FirstName   *string
	LastName    *string
	UserName    *string
	Email       *string
	Phone       *string
	CountryCode *string
}

// List returns every account, most-recently-created first. Admin only.
func (s *UserService) List(ctx context.Context, caller *domain.User) ([]domain.User, error) {
	if err := requireAdmin(caller); err != nil {
		return nil, err
	}
	users, err := s.users.List(ctx)
	return users, apperrors.MapError(err)
}

// Get returns a single account. Callers see only their own profile unless
// they are admin.
func (s *UserService) Get(ctx context.Context, caller *domain.User, targetID string) (*domain.User, error) {
	if err := authorizeSelfOrAdmin(caller, targetID); err != nil {
		return nil, err
	}
	user, err := s.users.GetByID(ctx, targetID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.NewNotFound("user")
		}
		return nil, apperrors.MapError(err)
	}
	return user, nil
}

// UpdateProfile mutates profile fields for the target account.
func (s *UserService) UpdateProfile(ctx context.Context, caller *domain.User, targetID string, input ProfileUpdateInput) (*domain.User, error) {
	if err := authorizeSelfOrAdmin(caller, targetID); err != nil {
		return nil, err
	}

	user, err := s.users.GetByID(ctx, targetID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.NewNotFound("user")
		}
		return nil, apperrors.MapError(err)
	}

	if input.FirstName != nil {
		user.FirstName = strings.TrimSpace(*input.FirstName)
	}
	if input.LastName != nil {
		user.LastName = strings.TrimSpace(*input.LastName)
	}
	if input.UserName != nil {
		user.UserName = strings.ToLower(strings.TrimSpace(*input.UserName))
	}
	if input.Email != nil {
		user.Email = strings.ToLower(strings.TrimSpace(*input.Email))
	}
	if input.Phone != nil {
		user.Phone = strings.TrimSpace(*input.Phone)
	}
	if input.CountryCode != nil {
		user.CountryCode = *input.CountryCode
	}

	if err := s.users.Update(ctx, user); err != nil {
		if apperrors.IsDuplicateKey(err) {
			return nil, apperrors.NewConflict("user already exists with this email or username", nil)
		}
		return nil, apperrors.MapError(err)
	}
	return user, nil
}

// Delete removes an account permanently. Admin only.
func (s *UserService) Delete(ctx context.Context, caller *domain.User, targetID string) error {
	if err := requireAdmin(caller); err != nil {
		return err
	}
	if err := s.users.Delete(ctx, targetID); err != nil {
		if err == pgx.ErrNoRows {
			return apperrors.NewNotFound("user")
		}
		return apperrors.MapError(err)
	}
	return nil
}
