package service

import (
	"context"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/sabbebasta/booking-platform/internal/domain"
	"github.com/sabbebasta/booking-platform/internal/repository"
	apperrors "github.com/sabbebasta/booking-platform/pkg/util"
)

// StaffService manages the staff directory. Every operation is admin only.
type StaffService struct {
	staff repository.StaffRepository
}

// NewStaffService builds the service.
func NewStaffService(staff repository.StaffRepository) *StaffService {
	return &StaffService{staff: staff}
}

// StaffCreateInput describes a new staff member.
type StaffCreateInput struct {
	FirstName      string
	LastName       string
	Email          string
	Phone          string
	Role           domain.StaffRole
	Specialization string
}

// StaffUpdateInput carries mutable staff fields.
type StaffUpdateInput struct {
	FirstName      *string
	LastName       *string
	Email          *string
	Phone          *string
	Role           *domain.StaffRole
	IsActive       *bool
	Specialization *string
}

// List returns every staff member, most-recently-created first.
func (s *StaffService) List(ctx context.Context, caller *domain.User) ([]domain.StaffMember, error) {
	if err := requireAdmin(caller); err != nil {
		return nil, err
	}
	staff, err := s.staff.List(ctx)
	return staff, apperrors.MapError(err)
}

// Get returns a staff member by id.
func (s *StaffService) Get(ctx context.Context, caller *domain.User, id string) (*domain.StaffMember, error) {
	if err := requireAdmin(caller); err != nil {
		return nil, err
	}
	staff, err := s.staff.GetByID(ctx, id)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.NewNotFound("staff")
		}
		return nil, apperrors.MapError(err)
	}
	return staff, nil
}

// Create adds a staff member. Role defaults to staff when unspecified;
// duplicate emails fail with CONFLICT.
func (s *StaffService) Create(ctx context.Context, caller *domain.User, input StaffCreateInput) (*domain.StaffMember, error) {
	if err := requireAdmin(caller); err != nil {
		return nil, err
	}

	var errs []apperrors.FieldError
	if strings.TrimSpace(input.FirstName) == "" {
		errs = append(errs, apperrors.FieldError{Field: "firstName", Message: "first name is required"})
	}
	if strings.TrimSpace(input.LastName) == "" {
		errs = append(errs, apperrors.FieldError{Field: "lastName", Message: "last name is required"})
	}
	if strings.TrimSpace(input.Email) == "" {
		errs = append(errs, apperrors.FieldError{Field: "email", Message: "email is required"})
	}
	if strings.TrimSpace(input.Phone) == "" {
		errs = append(errs, apperrors.FieldError{Field: "phone", Message: "phone number is required"})
	}
	if input.Role != "" && !domain.ValidStaffRole(input.Role) {
		errs = append(errs, apperrors.FieldError{Field: "role", Message: "invalid staff role"})
	}
	if len(errs) > 0 {
		return nil, apperrors.NewValidationError("invalid staff payload", errs)
	}

	email := strings.ToLower(strings.TrimSpace(input.Email))
	if _, err := s.staff.GetByEmail(ctx, email); err == nil {
		return nil, apperrors.NewConflict("staff with this email already exists", nil)
	} else if err != pgx.ErrNoRows {
		return nil, apperrors.MapError(err)
	}

	role := input.Role
	if role == "" {
		role = domain.StaffRoleStaff
	}

	staff := &domain.StaffMember{
		FirstName:      strings.TrimSpace(input.FirstName),
		LastName:       strings.TrimSpace(input.LastName),
		Email:          email,
		Phone:          strings.TrimSpace(input.Phone),
		Role:           role,
		IsActive:       true,
		Specialization: strings.TrimSpace(input.Specialization),
	}
	if err := s.staff.Create(ctx, staff); err != nil {
		if apperrors.IsDuplicateKey(err) {
			return nil, apperrors.NewConflict("staff with this email already exists", nil)
		}
		return nil, apperrors.MapError(err)
	}
	return staff, nil
}

// Update mutates staff fields.
func (s *StaffService) Update(ctx context.Context, caller *domain.User, id string, input StaffUpdateInput) (*domain.StaffMember, error) {
	if err := requireAdmin(caller); err != nil {
		return nil, err
	}

	staff, err := s.staff.GetByID(ctx, id)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.NewNotFound("staff")
		}
		return nil, apperrors.MapError(err)
	}

	if input.Role != nil && !domain.ValidStaffRole(*input.Role) {
		return nil, apperrors.NewValidationError("invalid staff payload", []apperrors.FieldError{
			{Field: "role", Message: "invalid staff role"},
		})
	}

	if input.FirstName != nil {
		staff.FirstName = strings.TrimSpace(*input.FirstName)
	}
	if input.LastName != nil {
		staff.LastName = strings.TrimSpace(*input.LastName)
	}
	if input.Email != nil {
		staff.Email = strings.ToLower(strings.TrimSpace(*input.Email))
	}
	if input.Phone != nil {
		staff.Phone = strings.TrimSpace(*input.Phone)
	}
	if input.Role != nil {
		staff.Role = *input.Role
	}
	if input.IsActive != nil {
		staff.IsActive = *input.IsActive
	}
	if input.Specialization != nil {
		staff.Specialization = strings.TrimSpace(*input.Specialization)
	}

	if err := s.staff.Update(ctx, staff); err != nil {
		if apperrors.IsDuplicateKey(err) {
			return nil, apperrors.NewConflict("staff with this email already exists", nil)
		}
		return nil, apperrors.MapError(err)
	}
	return staff, nil
}

// Deactivate soft-deletes a staff member; bookings referencing them keep
// their assignment history.
func (s *StaffService) Deactivate(ctx context.Context, caller *domain.User, id string) error {
	if err := requireAdmin(caller); err != nil {
		return err
	}
	if err := s.staff.Deactivate(ctx, id); err != nil {
		if err == pgx.ErrNoRows {
			return apperrors.NewNotFound("staff")
		}
		return apperrors.MapError(err)
	}
	return nil
}
