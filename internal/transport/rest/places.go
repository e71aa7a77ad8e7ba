package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/kceleski/ava-care-compass/internal/service/placesearch"
)

type placeSearchService interface {
	Search(ctx context.Context, input placesearch.SearchInput) (placesearch.SearchOutput, error)
	GetResult(ctx context.Context, id uuid.UUID) (placesearch.ResultView, error)
}

// PlacesHandler serves the external places search and its stored results.
type PlacesHandler struct {
	svc placeSearchService
	log *slog.Logger
}

// NewPlacesHandler creates a PlacesHandler.
func NewPlacesHandler(svc placeSearchService, logger *slog.Logger) *PlacesHandler {
	return &PlacesHandler{svc: svc, log: logger.With("handler", "places")}
}

type placesSearchRequest struct {
	Query           string `json:"query"`
	Location        string `json:"location"`
	Type            string `json:"type"`
	Num             int    `json:"num"`
	AcceptsMedicare bool   `json:"acceptsMedicare"`
	AcceptsMedicaid bool   `json:"acceptsMedicaid"`
	AcceptsVA       bool   `json:"acceptsVA"`
	UserID          string `json:"userId"`
}

type placesSearchResponse struct {
	Success        bool       `json:"success"`
	SearchResultID uuid.UUID  `json:"searchResultId"`
	PlacesFound    int        `json:"placesFound"`
	Places         []placeDTO `json:"places"`
}

type searchResultResponse struct {
	SearchResult searchResultDTO `json:"searchResult"`
	Places       []placeDTO      `json:"places"`
	Summary      *summaryDTO     `json:"summary"`
}

// Search handles POST /serper-search.
func (h *PlacesHandler) Search(w http.ResponseWriter, r *http.Request) {
	var req placesSearchRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	ctx, err := withCaller(r, req.UserID)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	out, err := h.svc.Search(ctx, placesearch.SearchInput{
		Query:           req.Query,
		Location:        req.Location,
		Type:            req.Type,
		Num:             req.Num,
		AcceptsMedicare: req.AcceptsMedicare,
		AcceptsMedicaid: req.AcceptsMedicaid,
		AcceptsVA:       req.AcceptsVA,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, placesSearchResponse{
		Success:        true,
		SearchResultID: out.SearchResultID,
		PlacesFound:    out.PlacesFound,
		Places:         toPlaceDTOs(out.Places),
	})
}

// GetResult handles GET /search-results/{id}.
func (h *PlacesHandler) GetResult(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	ctx, err := withCaller(r, r.URL.Query().Get("userId"))
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	view, err := h.svc.GetResult(ctx, id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	resp := searchResultResponse{
		SearchResult: searchResultDTO{
			ID:          view.Result.ID,
			SearchQuery: view.Result.SearchQuery,
			Parameters:  view.Result.Parameters,
			CreatedAt:   view.Result.CreatedAt,
		},
		Places: toPlaceDTOs(view.Places),
	}
	if s := view.Summary; s != nil {
		resp.Summary = &summaryDTO{
			ID:            s.ID,
			SummaryText:   s.SummaryText,
			MarkupContent: s.MarkupContent,
			CreatedAt:     s.CreatedAt,
		}
	}
	writeJSON(w, http.StatusOK, resp)
}
