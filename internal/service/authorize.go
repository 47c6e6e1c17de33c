package service

import (
	"github.com/sabbebasta/booking-platform/internal/domain"
	apperrors "github.com/sabbebasta/booking-platform/pkg/util"
)

// requireAdmin gates admin-only operations.
func requireAdmin(caller *domain.User) error {
	if caller == nil {
		return apperrors.NewUnauthorized("authentication required")
	}
	if !caller.IsAdmin() {
		return apperrors.NewForbidden("admin access required")
	}
	return nil
}

// authorizeSelfOrAdmin allows the target user themselves or any admin.
func authorizeSelfOrAdmin(caller *domain.User, targetID string) error {
	if caller == nil {
		return apperrors.NewUnauthorized("authentication required")
	}
	if caller.ID != targetID && !caller.IsAdmin() {
		return apperrors.NewForbidden("access denied")
	}
	return nil
}

// authorizeOwnerOrAdmin allows a booking's owner or any admin.
func authorizeOwnerOrAdmin(caller *domain.User, booking *domain.Booking) error {
	if caller == nil {
		return apperrors.NewUnauthorized("authentication required")
	}
	if !booking.OwnedBy(caller.ID) && !caller.IsAdmin() {
		return apperrors.NewForbidden("access denied")
	}
	return nil
}
