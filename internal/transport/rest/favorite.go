package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/kceleski/ava-care-compass/internal/domain"
	"github.com/kceleski/ava-care-compass/internal/service/favorite"
)

type favoriteService interface {
	Manage(ctx context.Context, input favorite.ManageInput) (favorite.ManageResult, error)
}

// FavoriteHandler serves the saved-facility endpoint.
type FavoriteHandler struct {
	svc favoriteService
	log *slog.Logger
}

// NewFavoriteHandler creates a FavoriteHandler.
func NewFavoriteHandler(svc favoriteService, logger *slog.Logger) *FavoriteHandler {
	return &FavoriteHandler{svc: svc, log: logger.With("handler", "favorite")}
}

type manageFavoritesRequest struct {
	Action     string  `json:"action"`
	FacilityID *string `json:"facilityId"`
	UserID     string  `json:"userId"`
}

type manageFavoritesResponse struct {
	Message   string         `json:"message,omitempty"`
	Favorite  *favoriteDTO   `json:"favorite,omitempty"`
	Favorites *[]favoriteDTO `json:"favorites,omitempty"`
}

// Manage handles POST /manage-favorites.
func (h *FavoriteHandler) Manage(w http.ResponseWriter, r *http.Request) {
	var req manageFavoritesRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	ctx, err := withCaller(r, req.UserID)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	facilityID, err := optionalUUID("facilityId", req.FacilityID)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	res, err := h.svc.Manage(ctx, favorite.ManageInput{
		Action:     domain.FavoriteAction(req.Action),
		FacilityID: facilityID,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	resp := manageFavoritesResponse{Message: res.Message}
	if res.Favorite != nil {
		resp.Favorite = &favoriteDTO{
			ID:         res.Favorite.ID,
			FacilityID: res.Favorite.FacilityID,
			CreatedAt:  res.Favorite.CreatedAt,
		}
	}
	if domain.FavoriteAction(req.Action) == domain.FavoriteActionList {
		list := make([]favoriteDTO, 0, len(res.Favorites))
		for _, f := range res.Favorites {
			fac := toFacilityDTO(f.Facility)
			list = append(list, favoriteDTO{
				ID:         f.ID,
				FacilityID: f.FacilityID,
				CreatedAt:  f.CreatedAt,
				Facility:   &fac,
			})
		}
		resp.Favorites = &list
	}

	writeJSON(w, http.StatusOK, resp)
}
