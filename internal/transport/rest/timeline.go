package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/kceleski/ava-care-compass/internal/domain"
	"github.com/kceleski/ava-care-compass/internal/service/timeline"
)

type timelineService interface {
	CreatePlan(ctx context.Context, input timeline.CreatePlanInput) (domain.TimelinePlan, error)
	GetPlan(ctx context.Context, id uuid.UUID) (domain.TimelinePlan, error)
	SetMilestoneCompleted(ctx context.Context, milestoneID uuid.UUID, completed bool) error
}

// TimelineHandler serves the timeline planner.
type TimelineHandler struct {
	svc timelineService
	log *slog.Logger
}

// NewTimelineHandler creates a TimelineHandler.
func NewTimelineHandler(svc timelineService, logger *slog.Logger) *TimelineHandler {
	return &TimelineHandler{svc: svc, log: logger.With("handler", "timeline")}
}

type createPlanRequest struct {
	CurrentMobility   string `json:"currentMobility"`
	CognitiveStatus   string `json:"cognitiveStatus"`
	MedicalConditions string `json:"medicalConditions"`
	SupportSystem     string `json:"supportSystem"`
	UserID            string `json:"userId"`
}

type setCompletedRequest struct {
	Completed *bool  `json:"completed"`
	UserID    string `json:"userId"`
}

// CreatePlan handles POST /tools/timeline.
func (h *TimelineHandler) CreatePlan(w http.ResponseWriter, r *http.Request) {
	var req createPlanRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	ctx, err := withCaller(r, req.UserID)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	plan, err := h.svc.CreatePlan(ctx, timeline.CreatePlanInput{
		CurrentMobility:   domain.Mobility(req.CurrentMobility),
		CognitiveStatus:   domain.CognitiveStatus(req.CognitiveStatus),
		MedicalConditions: req.MedicalConditions,
		SupportSystem:     domain.SupportSystem(req.SupportSystem),
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, toPlanDTO(plan))
}

// GetPlan handles GET /tools/timeline/{id}.
func (h *TimelineHandler) GetPlan(w http.ResponseWriter, r *http.Request) {
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

	plan, err := h.svc.GetPlan(ctx, id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toPlanDTO(plan))
}

// SetMilestoneCompleted handles PATCH /tools/timeline/milestones/{id}.
func (h *TimelineHandler) SetMilestoneCompleted(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	var req setCompletedRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	if req.Completed == nil {
		handleError(h.log, w, r, domain.NewValidationError("completed", "completed is required"))
		return
	}
	ctx, err := withCaller(r, req.UserID)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	if err := h.svc.SetMilestoneCompleted(ctx, id, *req.Completed); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
