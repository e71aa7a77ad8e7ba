package facility

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/kceleski/ava-care-compass/internal/domain"
	"github.com/kceleski/ava-care-compass/pkg/ctxutil"
)

// SearchOutput holds the matching facilities.
type SearchOutput struct {
	Facilities []domain.Facility
	Total      int
}

// Search filters the verified directory. When lat, lng and radius are all
// set, facilities farther than radius miles, or without coordinates, are
// dropped.
func (s *Service) Search(ctx context.Context, input SearchInput) (SearchOutput, error) {
	if err := input.Validate(); err != nil {
		return SearchOutput{}, err
	}

	userID, hasUser := ctxutil.UserIDFromCtx(ctx)

	var requestID *uuid.UUID
	if hasUser {
		req, err := s.analytics.CreateSearchRequest(ctx, domain.SearchRequest{
			UserID:      userID,
			QueryParams: input.params(),
		})
		if err != nil {
			s.log.WarnContext(ctx, "record search request failed", slog.String("error", err.Error()))
		} else {
			requestID = &req.ID
		}
	}

	facilities, err := s.facilities.Search(ctx, input.filter(s.limit))
	if err != nil {
		return SearchOutput{}, fmt.Errorf("search facilities: %w", err)
	}

	if input.hasGeo() {
		facilities = withinRadius(facilities, *input.Lat, *input.Lng, *input.Radius)
	}

	if requestID != nil {
		if err := s.analytics.SetSearchRequestResults(ctx, *requestID, len(facilities)); err != nil {
			s.log.WarnContext(ctx, "update search request failed", slog.String("error", err.Error()))
		}
	}

	var eventUser *uuid.UUID
	if hasUser {
		eventUser = &userID
	}
	meta := input.params()
	meta["results_count"] = len(facilities)
	if err := s.analytics.Record(ctx, domain.AnalyticsEvent{
		UserID:    eventUser,
		EventType: domain.EventFacilitySearch,
		Metadata:  meta,
	}); err != nil {
		s.log.WarnContext(ctx, "record analytics failed",
			slog.String("event", domain.EventFacilitySearch),
			slog.String("error", err.Error()),
		)
	}

	return SearchOutput{Facilities: facilities, Total: len(facilities)}, nil
}

func withinRadius(facilities []domain.Facility, lat, lng, radius float64) []domain.Facility {
	kept := make([]domain.Facility, 0, len(facilities))
	for _, f := range facilities {
		if !f.HasCoordinates() {
			continue
		}
		if distanceMiles(lat, lng, *f.Latitude, *f.Longitude) <= radius {
			kept = append(kept, f)
		}
	}
	return kept
}
