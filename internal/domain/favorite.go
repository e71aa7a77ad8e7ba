package domain

import (
	"time"

	"github.com/google/uuid"
)

// Favorite links a user to a saved facility. (user_id, facility_id) is unique.
type Favorite struct {
	ID         uuid.UUID
	UserID     uuid.UUID
	FacilityID uuid.UUID
	CreatedAt  time.Time
}

// FavoriteWithFacility is a favorite joined with its facility details.
type FavoriteWithFacility struct {
	Favorite
	Facility Facility
}
