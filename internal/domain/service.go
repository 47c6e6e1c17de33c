package domain

import "time"

// ServiceType enumerates the offered funerary service categories.
type ServiceType string

const (
	ServiceTypeElectricCrematorium ServiceType = "electric_crematorium"
	ServiceTypeFireBurning         ServiceType = "fire_burning"
	ServiceTypeBurialSystems       ServiceType = "burial_systems"
)

// ValidServiceType reports whether t is a member of the closed enum.
func ValidServiceType(t ServiceType) bool {
	switch t {
	case ServiceTypeElectricCrematorium, ServiceTypeFireBurning, ServiceTypeBurialSystems:
		return true
	}
	return false
}

// Location is a geographic point with a display address.
type Location struct {
	Latitude  float64
	Longitude float64
	Address   string
}

// Service is a catalog offering. Deactivated services stay readable by id
// but are excluded from listings.
type Service struct {
	ID          string
	Title       string
	Description string
	Price       float64
	Duration    string
	Rating      float64
	ImageURL    string
	ServiceType ServiceType
	Location    Location
	IsActive    bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
