package domain

import (
	"time"

	"github.com/google/uuid"
)

// EmergencyContact is a static hotline row (read-only reference data).
type EmergencyContact struct {
	ID               uuid.UUID
	Name             string
	Phone            string
	ContactType      string
	Description      string
	Available24x7    bool
	LocationSpecific *string
}

// UserEmergencyContact is a personal contact owned by one user.
// More than one contact may be marked primary.
type UserEmergencyContact struct {
	ID           uuid.UUID
	UserID       uuid.UUID
	Name         string
	Relationship string
	Phone        string
	IsPrimary    bool
	CreatedAt    time.Time
}
