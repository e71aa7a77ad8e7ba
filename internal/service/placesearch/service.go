// Package placesearch runs external places searches, stores the normalized
// places and generates a best-effort summary of each search.
package placesearch

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/singleflight"

	"github.com/kceleski/ava-care-compass/internal/config"
	"github.com/kceleski/ava-care-compass/internal/domain"
	"github.com/kceleski/ava-care-compass/internal/provider"
)

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type placesProvider interface {
	SearchPlaces(ctx context.Context, query, placeType string, num int) (provider.PlacesResult, error)
}

type textGenerator interface {
	Complete(ctx context.Context, system string, history []provider.Message) (string, error)
}

type searchRepo interface {
	CreateResult(ctx context.Context, sr domain.SearchResult) (domain.SearchResult, error)
	GetResult(ctx context.Context, id uuid.UUID) (domain.SearchResult, error)
	CreatePlace(ctx context.Context, p domain.Place) (domain.Place, error)
	ListPlaces(ctx context.Context, searchResultID uuid.UUID, limit int) ([]domain.Place, error)
	CreateSummary(ctx context.Context, s domain.ConversationSummary) (domain.ConversationSummary, error)
	GetSummary(ctx context.Context, searchResultID uuid.UUID) (domain.ConversationSummary, error)
}

type analyticsRecorder interface {
	Record(ctx context.Context, e domain.AnalyticsEvent) error
}

type observer interface {
	ObservePlacesSearch(found int, err error)
	ObserveAddressUnparsed()
	ObserveSummary(err error, d time.Duration)
}

// Service orchestrates places searches.
type Service struct {
	places    placesProvider
	generator textGenerator
	repo      searchRepo
	analytics analyticsRecorder
	obs       observer
	cfg       config.SearchConfig
	log       *slog.Logger

	group singleflight.Group
	tasks sync.WaitGroup
}

// NewService creates a new places search service.
func NewService(
	log *slog.Logger,
	cfg config.SearchConfig,
	places placesProvider,
	generator textGenerator,
	repo searchRepo,
	analytics analyticsRecorder,
	obs observer,
) *Service {
	return &Service{
		places:    places,
		generator: generator,
		repo:      repo,
		analytics: analytics,
		obs:       obs,
		cfg:       cfg,
		log:       log.With("service", "placesearch"),
	}
}

// Wait blocks until every dispatched summary task has finished or ctx is done.
func (s *Service) Wait(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		s.tasks.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
