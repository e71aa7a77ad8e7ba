package domain

import (
	"time"

	"github.com/google/uuid"
)

// Facility is a verified care facility listed in the directory.
type Facility struct {
	ID                  uuid.UUID
	Name                string
	FacilityType        string
	AddressLine1        string
	City                string
	State               string
	ZipCode             string
	Phone               *string
	Website             *string
	Description         *string
	Rating              *float64
	ReviewsCount        int
	PriceRangeMin       *int
	PriceRangeMax       *int
	CurrentAvailability *int
	AcceptsMedicare     bool
	AcceptsMedicaid     bool
	AcceptsVABenefits   bool
	IsVerified          bool
	IsFeatured          bool
	Latitude            *float64
	Longitude           *float64
	CreatedAt           time.Time
}

// HasCoordinates reports whether both latitude and longitude are known.
func (f Facility) HasCoordinates() bool {
	return f.Latitude != nil && f.Longitude != nil
}

// FacilityFilter narrows the verified facility directory.
// Nil pointers and empty strings mean "no filter".
type FacilityFilter struct {
	Location        string
	FacilityType    string
	PriceMin        *int
	PriceMax        *int
	AcceptsMedicare bool
	AcceptsMedicaid bool
	AcceptsVA       bool
	Limit           int
}

// SearchRequest is the analytics row recorded for a directory search.
type SearchRequest struct {
	ID           uuid.UUID
	UserID       uuid.UUID
	QueryParams  map[string]any
	ResultsCount *int
	CreatedAt    time.Time
}
