// Package intake implements the five-step intake form and its submission.
package intake

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/kceleski/ava-care-compass/internal/domain"
)

type intakeRepo interface {
	Create(ctx context.Context, s domain.IntakeSubmission) (domain.IntakeSubmission, error)
	GetByID(ctx context.Context, id uuid.UUID) (domain.IntakeSubmission, error)
}

// Service persists completed intake forms.
type Service struct {
	repo intakeRepo
	log  *slog.Logger
}

// NewService creates a new intake service.
func NewService(log *slog.Logger, repo intakeRepo) *Service {
	return &Service{
		repo: repo,
		log:  log.With("service", "intake"),
	}
}
