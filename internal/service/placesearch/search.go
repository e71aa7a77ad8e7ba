package placesearch

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/kceleski/ava-care-compass/internal/domain"
	"github.com/kceleski/ava-care-compass/pkg/ctxutil"
	"github.com/kceleski/ava-care-compass/pkg/flight"
)

// searchTimeout bounds a shared search once it no longer belongs to one request.
const searchTimeout = 60 * time.Second

// SearchOutput is returned as soon as the places are stored. The summary is
// generated afterwards.
type SearchOutput struct {
	SearchResultID uuid.UUID
	PlacesFound    int
	Places         []domain.Place
}

// Search runs one places search. Identical concurrent searches by the same
// signed-in user share a single provider call; anonymous searches always run
// on their own.
func (s *Service) Search(ctx context.Context, input SearchInput) (SearchOutput, error) {
	if err := input.Validate(); err != nil {
		return SearchOutput{}, err
	}

	params := input.params(s.cfg.DefaultType, s.cfg.DefaultNum, s.cfg.MaxResults)
	query := input.providerQuery(params)

	userID := ctxutil.OptionalUserID(ctx)
	if userID == nil {
		return s.search(ctx, nil, params, query)
	}

	key := fmt.Sprintf("%s|%s|%s|%d", userID.String(), query, params.Type, params.Num)
	out, shared, err := flight.Do(ctx, &s.group, key, searchTimeout, func(ctx context.Context) (SearchOutput, error) {
		return s.search(ctx, userID, params, query)
	})
	if err != nil {
		return SearchOutput{}, err
	}
	if shared {
		s.log.DebugContext(ctx, "places search shared", slog.String("query", query))
	}
	return out, nil
}

func (s *Service) search(ctx context.Context, userID *uuid.UUID, params domain.SearchParameters, query string) (SearchOutput, error) {
	res, err := s.places.SearchPlaces(ctx, query, params.Type, params.Num)
	if err != nil {
		s.obs.ObservePlacesSearch(0, err)
		return SearchOutput{}, fmt.Errorf("search places: %w", err)
	}
	if len(res.Places) > s.cfg.MaxResults {
		res.Places = res.Places[:s.cfg.MaxResults]
	}

	stored, err := s.repo.CreateResult(ctx, domain.SearchResult{
		UserID:      userID,
		SearchQuery: query,
		Parameters:  params,
		RawResponse: res.Raw,
	})
	if err != nil {
		s.obs.ObservePlacesSearch(0, err)
		return SearchOutput{}, fmt.Errorf("create search result: %w", err)
	}

	places := make([]domain.Place, 0, len(res.Places))
	for i, pr := range res.Places {
		p, parseErr := normalizePlace(stored.ID, i, pr, s.cfg.DefaultPriceMin, s.cfg.DefaultPriceMax)
		if parseErr != nil {
			s.obs.ObserveAddressUnparsed()
			s.log.WarnContext(ctx, "address not parsed",
				slog.String("search_result_id", stored.ID.String()),
				slog.Int("position", p.Position),
				slog.String("error", parseErr.Error()),
			)
		}

		saved, err := s.repo.CreatePlace(ctx, p)
		if err != nil {
			if ctx.Err() != nil {
				return SearchOutput{}, fmt.Errorf("create place: %w", err)
			}
			s.log.ErrorContext(ctx, "store place failed",
				slog.String("search_result_id", stored.ID.String()),
				slog.Int("position", p.Position),
				slog.String("error", err.Error()),
			)
			places = append(places, p)
			continue
		}
		places = append(places, saved)
	}

	s.obs.ObservePlacesSearch(len(places), nil)
	s.dispatchSummary(ctx, stored, places)
	s.recordSearch(ctx, userID, stored.ID, params, len(places))

	s.log.InfoContext(ctx, "places search completed",
		slog.String("search_result_id", stored.ID.String()),
		slog.Int("places_found", len(places)),
	)

	return SearchOutput{
		SearchResultID: stored.ID,
		PlacesFound:    len(places),
		Places:         places[:min(len(places), s.cfg.ResponsePlaces)],
	}, nil
}

func (s *Service) recordSearch(ctx context.Context, userID *uuid.UUID, resultID uuid.UUID, params domain.SearchParameters, found int) {
	err := s.analytics.Record(ctx, domain.AnalyticsEvent{
		UserID:    userID,
		EventType: domain.EventPlacesSearch,
		Metadata: map[string]any{
			"search_result_id": resultID.String(),
			"query":            params.Query,
			"location":         params.Location,
			"type":             params.Type,
			"places_found":     found,
		},
	})
	if err != nil {
		s.log.WarnContext(ctx, "record analytics failed",
			slog.String("event", domain.EventPlacesSearch),
			slog.String("error", err.Error()),
		)
	}
}
