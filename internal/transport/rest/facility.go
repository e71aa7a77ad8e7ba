package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/kceleski/ava-care-compass/internal/service/facility"
)

type facilityService interface {
	Search(ctx context.Context, input facility.SearchInput) (facility.SearchOutput, error)
}

// FacilityHandler serves the verified-directory search.
type FacilityHandler struct {
	svc facilityService
	log *slog.Logger
}

// NewFacilityHandler creates a FacilityHandler.
func NewFacilityHandler(svc facilityService, logger *slog.Logger) *FacilityHandler {
	return &FacilityHandler{svc: svc, log: logger.With("handler", "facility")}
}

type searchFacilitiesRequest struct {
	SearchParams facility.SearchInput `json:"searchParams"`
	UserID       string               `json:"userId"`
}

type searchFacilitiesResponse struct {
	Facilities []facilityDTO `json:"facilities"`
	Total      int           `json:"total"`
}

// Search handles POST /search-facilities.
func (h *FacilityHandler) Search(w http.ResponseWriter, r *http.Request) {
	var req searchFacilitiesRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	ctx, err := withCaller(r, req.UserID)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	out, err := h.svc.Search(ctx, req.SearchParams)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, searchFacilitiesResponse{
		Facilities: toFacilityDTOs(out.Facilities),
		Total:      out.Total,
	})
}
