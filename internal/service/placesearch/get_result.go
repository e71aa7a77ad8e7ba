package placesearch

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/kceleski/ava-care-compass/internal/domain"
	"github.com/kceleski/ava-care-compass/pkg/ctxutil"
)

// ResultView is a stored search with its leading places and, once generated,
// its summary.
type ResultView struct {
	Result  domain.SearchResult
	Places  []domain.Place
	Summary *domain.ConversationSummary
}

// GetResult loads a stored search. Results owned by a user are visible to
// that user only. A missing summary is not an error.
func (s *Service) GetResult(ctx context.Context, id uuid.UUID) (ResultView, error) {
	res, err := s.repo.GetResult(ctx, id)
	if err != nil {
		return ResultView{}, fmt.Errorf("get search result: %w", err)
	}
	if !ctxutil.CanAccess(ctx, res.UserID) {
		return ResultView{}, fmt.Errorf("get search result: %w", domain.ErrNotFound)
	}

	places, err := s.repo.ListPlaces(ctx, id, s.cfg.ResponsePlaces)
	if err != nil {
		return ResultView{}, fmt.Errorf("list places: %w", err)
	}

	view := ResultView{Result: res, Places: places}

	summary, err := s.repo.GetSummary(ctx, id)
	switch {
	case err == nil:
		view.Summary = &summary
	case errors.Is(err, domain.ErrNotFound):
	default:
		return ResultView{}, fmt.Errorf("get summary: %w", err)
	}

	return view, nil
}
