package handlers

import (
	"regexp"
	"strings"

	apperrors "github.com/sabbebasta/booking-platform/pkg/util"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

func validEmail(email string) bool {
	return emailPattern.MatchString(strings.TrimSpace(email))
}

func appendRequired(errs []apperrors.FieldError, field, value, message string) []apperrors.FieldError {
	if strings.TrimSpace(value) == "" {
		errs = append(errs, apperrors.FieldError{Field: field, Message: message})
	}
	return errs
}
