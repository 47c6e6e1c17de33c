package dto

import (
	"time"

	"github.com/sabbebasta/booking-platform/internal/domain"
)

// LocationPayload is the wire shape of a geographic point.
type LocationPayload struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Address   string  `json:"address"`
}

// ServiceRequest payload for catalog create/update.
type ServiceRequest struct {
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Price       float64         `json:"price"`
	Duration    string          `json:"duration"`
	Rating      float64         `json:"rating"`
	ImageURL    string          `json:"imageUrl"`
	ServiceType string          `json:"serviceType"`
	Location    LocationPayload `json:"location"`
}

// ServiceResponse is the full catalog entry view.
type ServiceResponse struct {
	ID          string             `json:"id"`
	Title       string             `json:"title"`
	Description string             `json:"description"`
	Price       float64            `json:"price"`
	Duration    string             `json:"duration"`
	Rating      float64            `json:"rating"`
	ImageURL    string             `json:"imageUrl"`
	ServiceType domain.ServiceType `json:"serviceType"`
	Location    LocationPayload    `json:"location"`
	IsActive    bool               `json:"isActive"`
	CreatedAt   time.Time          `json:"createdAt"`
	UpdatedAt   time.Time          `json:"updatedAt"`
}

// NewServiceResponse maps a domain service.
func NewServiceResponse(service *domain.Service) ServiceResponse {
	return ServiceResponse{
		ID:          service.ID,
		Title:       service.Title,
		Description: service.Description,
		Price:       service.Price,
		Duration:    service.Duration,
		Rating:      service.Rating,
		ImageURL:    service.ImageURL,
		ServiceType: service.ServiceType,
		Location: LocationPayload{
			Latitude:  service.Location.Latitude,
			Longitude: service.Location.Longitude,
			Address:   service.Location.Address,
		},
		IsActive:  service.IsActive,
		CreatedAt: service.CreatedAt,
		UpdatedAt: service.UpdatedAt,
	}
}

// NewServiceResponses maps a listing.
func NewServiceResponses(services []domain.Service) []ServiceResponse {
	result := make([]ServiceResponse, 0, len(services))
	for i := range services {
		result = append(result, NewServiceResponse(&services[i]))
	}
	return result
}
