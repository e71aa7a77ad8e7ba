package favorite

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/kceleski/ava-care-compass/internal/domain"
	"github.com/kceleski/ava-care-compass/pkg/ctxutil"
)

const (
	msgAdded   = "Added to favorites"
	msgExists  = "Facility already in favorites"
	msgRemoved = "Removed from favorites"
)

// ManageResult is the action-specific outcome. Message is set for add and
// remove; Favorites for list.
type ManageResult struct {
	Message   string
	Favorite  *domain.Favorite
	Favorites []domain.FavoriteWithFacility
}

// Manage adds, removes or lists the caller's favorites. Adding a facility
// that is already saved succeeds with a notice instead of an error.
func (s *Service) Manage(ctx context.Context, input ManageInput) (ManageResult, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return ManageResult{}, domain.NewValidationError("userId", "User ID is required")
	}
	if err := input.Validate(); err != nil {
		return ManageResult{}, err
	}

	var result ManageResult
	switch input.Action {
	case domain.FavoriteActionAdd:
		fav, err := s.favorites.Add(ctx, userID, *input.FacilityID)
		if errors.Is(err, domain.ErrAlreadyExists) {
			return ManageResult{Message: msgExists}, nil
		}
		if err != nil {
			return ManageResult{}, fmt.Errorf("add favorite: %w", err)
		}
		result = ManageResult{Message: msgAdded, Favorite: &fav}

	case domain.FavoriteActionRemove:
		if err := s.favorites.Remove(ctx, userID, *input.FacilityID); err != nil {
			return ManageResult{}, fmt.Errorf("remove favorite: %w", err)
		}
		result = ManageResult{Message: msgRemoved}

	case domain.FavoriteActionList:
		favs, err := s.favorites.ListWithFacility(ctx, userID)
		if err != nil {
			return ManageResult{}, fmt.Errorf("list favorites: %w", err)
		}
		result = ManageResult{Favorites: favs}
	}

	meta := map[string]any{"action": input.Action.String()}
	if input.FacilityID != nil {
		meta["facility_id"] = input.FacilityID.String()
	}
	if err := s.analytics.Record(ctx, domain.AnalyticsEvent{
		UserID:    &userID,
		EventType: domain.EventFavoriteAction,
		Metadata:  meta,
	}); err != nil {
		s.log.WarnContext(ctx, "record analytics failed",
			slog.String("event", domain.EventFavoriteAction),
			slog.String("error", err.Error()),
		)
	}

	return result, nil
}
