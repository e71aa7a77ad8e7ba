// Package timeline generates care-planning milestones from an assessment.
package timeline

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/kceleski/ava-care-compass/internal/domain"
)

type milestoneCatalog interface {
	ListMilestones(ctx context.Context, names ...string) ([]domain.TimelineMilestone, error)
}

type timelineRepo interface {
	CreateAssessment(ctx context.Context, a domain.Assessment) (domain.Assessment, error)
	CreatePlan(ctx context.Context, p domain.TimelinePlan) (domain.TimelinePlan, error)
	SetMilestoneCompleted(ctx context.Context, id uuid.UUID, completed bool) error
	PlanIDByMilestone(ctx context.Context, milestoneID uuid.UUID) (uuid.UUID, error)
	GetPlan(ctx context.Context, id uuid.UUID) (domain.TimelinePlan, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service provides timeline planning.
type Service struct {
	catalog milestoneCatalog
	plans   timelineRepo
	tx      txManager
	now     func() time.Time
	log     *slog.Logger
}

// NewService creates a new timeline service.
func NewService(log *slog.Logger, catalog milestoneCatalog, plans timelineRepo, tx txManager) *Service {
	return &Service{
		catalog: catalog,
		plans:   plans,
		tx:      tx,
		now:     time.Now,
		log:     log.With("service", "timeline"),
	}
}
