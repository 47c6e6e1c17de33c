package service

import (
	"context"
	"strings"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/sabbebasta/booking-platform/internal/domain"
	"github.com/sabbebasta/booking-platform/internal/persistence"
	"github.com/sabbebasta/booking-platform/internal/repository"
	apperrors "github.com/sabbebasta/booking-platform/pkg/util"
)

// CatalogService manages the service offering catalog.
type CatalogService struct {
	services repository.ServiceRepository
	cache    *persistence.CatalogCache
	logger   *zap.Logger
}

// NewCatalogService builds the service.
func NewCatalogService(services repository.ServiceRepository, cache *persistence.CatalogCache, logger *zap.Logger) *CatalogService {
	return &CatalogService{services: services, cache: cache, logger: logger}
}

// ServiceInput describes catalog create/update payloads.
type ServiceInput struct {
	Title       string
	Description string
	Price       float64
	Duration    string
	Rating      float64
	ImageURL    string
	ServiceType domain.ServiceType
	Location    domain.Location
}

func validateServiceInput(input ServiceInput) []apperrors.FieldError {
	var errs []apperrors.FieldError
	if strings.TrimSpace(input.Title) == "" {
		errs = append(errs, apperrors.FieldError{Field: "title", Message: "title is required"})
	}
	if strings.TrimSpace(input.Description) == "" {
		errs = append(errs, apperrors.FieldError{Field: "description", Message: "description is required"})
	}
	if strings.TrimSpace(input.Duration) == "" {
		errs = append(errs, apperrors.FieldError{Field: "duration", Message: "duration is required"})
	}
	if input.Price < 0 {
		errs = append(errs, apperrors.FieldError{Field: "price", Message: "price must be a non-negative number"})
	}
	if !domain.ValidServiceType(input.ServiceType) {
		errs = append(errs, apperrors.FieldError{Field: "serviceType", Message: "invalid service type"})
	}
	return errs
}

// List returns active services, most-recently-created first. The listing
// is served from cache when possible; cache failures fall back to the
// database.
func (s *CatalogService) List(ctx context.Context) ([]domain.Service, error) {
	if cached, err := s.cache.GetActiveServices(ctx); err == nil && cached != nil {
		return cached, nil
	} else if err != nil {
		s.logger.Warn("catalog cache read failed", zap.Error(err))
	}

	services, err := s.services.ListActive(ctx)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	if err := s.cache.SetActiveServices(ctx, services); err != nil {
		s.logger.Warn("catalog cache write failed", zap.Error(err))
	}
	return services, nil
}

// Get returns a service by id regardless of its active flag.
func (s *CatalogService) Get(ctx context.Context, id string) (*domain.Service, error) {
	service, err := s.services.GetByID(ctx, id)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.NewNotFound("service")
		}
		return nil, apperrors.MapError(err)
	}
	return service, nil
}

// Create adds a catalog offering. Admin only.
func (s *CatalogService) Create(ctx context.Context, caller *domain.User, input ServiceInput) (*domain.Service, error) {
	if err := requireAdmin(caller); err != nil {
		return nil, err
	}
	if errs := validateServiceInput(input); len(errs) > 0 {
		return nil, apperrors.NewValidationError("invalid service payload", errs)
	}

	service := &domain.Service{
		Title:       strings.TrimSpace(input.Title),
		Description: strings.TrimSpace(input.Description),
		Price:       input.Price,
		Duration:    strings.TrimSpace(input.Duration),
		Rating:      input.Rating,
		ImageURL:    input.ImageURL,
		ServiceType: input.ServiceType,
		Location:    input.Location,
		IsActive:    true,
	}
	if err := s.services.Create(ctx, service); err != nil {
		return nil, apperrors.MapError(err)
	}
	s.invalidateCache(ctx)
	return service, nil
}

// Update rewrites a catalog offering. Admin only.
func (s *CatalogService) Update(ctx context.Context, caller *domain.User, id string, input ServiceInput) (*domain.Service, error) {
	if err := requireAdmin(caller); err != nil {
		return nil, err
	}
	if errs := validateServiceInput(input); len(errs) > 0 {
		return nil, apperrors.NewValidationError("invalid service payload", errs)
	}

	service, err := s.services.GetByID(ctx, id)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.NewNotFound("service")
		}
		return nil, apperrors.MapError(err)
	}

	service.Title = strings.TrimSpace(input.Title)
	service.Description = strings.TrimSpace(input.Description)
	service.Price = input.Price
	service.Duration = strings.TrimSpace(input.Duration)
	service.Rating = input.Rating
	service.ImageURL = input.ImageURL
	service.ServiceType = input.ServiceType
	service.Location = input.Location

	if err := s.services.Update(ctx, service); err != nil {
		return nil, apperrors.MapError(err)
	}
	s.invalidateCache(ctx)
	return service, nil
}

// Deactivate soft-deletes a service: it disappears from listings but stays
// readable by id so historical bookings keep resolving. Admin only.
func (s *CatalogService) Deactivate(ctx context.Context, caller *domain.User, id string) error {
	if err := requireAdmin(caller); err != nil {
		return err
	}
	if err := s.services.Deactivate(ctx, id); err != nil {
		if err == pgx.ErrNoRows {
			return apperrors.NewNotFound("service")
		}
		return apperrors.MapError(err)
	}
	s.invalidateCache(ctx)
	return nil
}

func (s *CatalogService) invalidateCache(ctx context.Context) {
	if err := s.cache.Invalidate(ctx); err != nil {
		s.logger.Warn("catalog cache invalidation failed", zap.Error(err))
	}
}
