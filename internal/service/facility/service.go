// Package facility searches the verified facility directory.
package facility

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/kceleski/ava-care-compass/internal/domain"
)

type facilityRepo interface {
	Search(ctx context.Context, filter domain.FacilityFilter) ([]domain.Facility, error)
}

type analyticsRepo interface {
	CreateSearchRequest(ctx context.Context, req domain.SearchRequest) (domain.SearchRequest, error)
	SetSearchRequestResults(ctx context.Context, id uuid.UUID, count int) error
	Record(ctx context.Context, e domain.AnalyticsEvent) error
}

// Service provides directory search.
type Service struct {
	facilities facilityRepo
	analytics  analyticsRepo
	limit      int
	log        *slog.Logger
}

// NewService creates a new facility service. limit caps the rows read from
// the directory before the distance filter is applied.
func NewService(log *slog.Logger, facilities facilityRepo, analytics analyticsRepo, limit int) *Service {
	return &Service{
		facilities: facilities,
		analytics:  analytics,
		limit:      limit,
		log:        log.With("service", "facility"),
	}
}
