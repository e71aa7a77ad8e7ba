package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/kceleski/ava-care-compass/internal/domain"
	"github.com/kceleski/ava-care-compass/internal/service/cost"
)

type costService interface {
	CareTypes(ctx context.Context) ([]domain.CareType, error)
	Estimate(ctx context.Context, input cost.EstimateInput) (cost.Estimate, error)
}

// CostHandler serves the cost calculator.
type CostHandler struct {
	svc costService
	log *slog.Logger
}

// NewCostHandler creates a CostHandler.
func NewCostHandler(svc costService, logger *slog.Logger) *CostHandler {
	return &CostHandler{svc: svc, log: logger.With("handler", "cost")}
}

type costEstimateRequest struct {
	CareTypeID   string `json:"careTypeId"`
	HoursPerWeek int    `json:"hoursPerWeek"`
	State        string `json:"state"`
	City         string `json:"city"`
}

type costEstimateResponse struct {
	CareType           careTypeDTO `json:"careType"`
	HoursPerWeek       int         `json:"hoursPerWeek"`
	BaseCare           float64     `json:"baseCare"`
	LocationAdjustment float64     `json:"locationAdjustment"`
	Multiplier         float64     `json:"multiplier"`
	TotalWeekly        float64     `json:"totalWeekly"`
	TotalMonthly       float64     `json:"totalMonthly"`
}

// CareTypes handles GET /tools/care-types.
func (h *CostHandler) CareTypes(w http.ResponseWriter, r *http.Request) {
	types, err := h.svc.CareTypes(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	out := make([]careTypeDTO, 0, len(types))
	for _, t := range types {
		out = append(out, toCareTypeDTO(t))
	}
	writeJSON(w, http.StatusOK, map[string]any{"careTypes": out})
}

// Estimate handles POST /tools/cost-estimate.
func (h *CostHandler) Estimate(w http.ResponseWriter, r *http.Request) {
	var req costEstimateRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	careTypeID, err := uuid.Parse(req.CareTypeID)
	if err != nil {
		handleError(h.log, w, r, domain.NewValidationError("careTypeId", "invalid careTypeId"))
		return
	}

	est, err := h.svc.Estimate(r.Context(), cost.EstimateInput{
		CareTypeID:   careTypeID,
		HoursPerWeek: req.HoursPerWeek,
		State:        req.State,
		City:         req.City,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, costEstimateResponse{
		CareType:           toCareTypeDTO(est.CareType),
		HoursPerWeek:       est.HoursPerWeek,
		BaseCare:           est.Breakdown.BaseCare,
		LocationAdjustment: est.Breakdown.LocationAdjustment,
		Multiplier:         est.Breakdown.Multiplier,
		TotalWeekly:        est.Breakdown.TotalWeekly,
		TotalMonthly:       est.Breakdown.TotalMonthly,
	})
}
