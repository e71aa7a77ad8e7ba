// Package contact serves the emergency hotline directory and each user's
// personal emergency contacts.
package contact

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/kceleski/ava-care-compass/internal/domain"
)

type hotlineRepo interface {
	ListHotlines(ctx context.Context) ([]domain.EmergencyContact, error)
}

type contactRepo interface {
	Create(ctx context.Context, c domain.UserEmergencyContact) (domain.UserEmergencyContact, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.UserEmergencyContact, error)
	Delete(ctx context.Context, userID, id uuid.UUID) error
}

// Service provides emergency contact operations.
type Service struct {
	hotlines hotlineRepo
	contacts contactRepo
	log      *slog.Logger
}

// NewService creates a new contact service.
func NewService(log *slog.Logger, hotlines hotlineRepo, contacts contactRepo) *Service {
	return &Service{
		hotlines: hotlines,
		contacts: contacts,
		log:      log.With("service", "contact"),
	}
}
