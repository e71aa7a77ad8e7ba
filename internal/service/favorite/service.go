// Package favorite manages a user's saved facilities.
package favorite

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/kceleski/ava-care-compass/internal/domain"
)

type favoriteRepo interface {
	Add(ctx context.Context, userID, facilityID uuid.UUID) (domain.Favorite, error)
	Remove(ctx context.Context, userID, facilityID uuid.UUID) error
	ListWithFacility(ctx context.Context, userID uuid.UUID) ([]domain.FavoriteWithFacility, error)
}

type analyticsRecorder interface {
	Record(ctx context.Context, e domain.AnalyticsEvent) error
}

// Service provides favorites operations.
type Service struct {
	favorites favoriteRepo
	analytics analyticsRecorder
	log       *slog.Logger
}

// NewService creates a new favorite service.
func NewService(log *slog.Logger, favorites favoriteRepo, analytics analyticsRecorder) *Service {
	return &Service{
		favorites: favorites,
		analytics: analytics,
		log:       log.With("service", "favorite"),
	}
}
