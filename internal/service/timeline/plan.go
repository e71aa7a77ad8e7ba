package timeline

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/kceleski/ava-care-compass/internal/domain"
	"github.com/kceleski/ava-care-compass/pkg/ctxutil"
)

// CreatePlan stores the assessment and a plan with the milestones the
// decision table selects for it. Templates missing from the catalog are
// skipped.
func (s *Service) CreatePlan(ctx context.Context, input CreatePlanInput) (domain.TimelinePlan, error) {
	if err := input.Validate(); err != nil {
		return domain.TimelinePlan{}, err
	}

	userID := ctxutil.OptionalUserID(ctx)

	assessment := domain.Assessment{
		ID:                uuid.New(),
		UserID:            userID,
		CurrentMobility:   input.CurrentMobility,
		CognitiveStatus:   input.CognitiveStatus,
		MedicalConditions: strings.TrimSpace(input.MedicalConditions),
		SupportSystem:     input.SupportSystem,
	}

	selected := selectMilestones(assessment, s.now())
	names := make([]string, len(selected))
	for i, sel := range selected {
		names[i] = sel.milestone
	}

	templates, err := s.catalog.ListMilestones(ctx, names...)
	if err != nil {
		return domain.TimelinePlan{}, fmt.Errorf("list milestones: %w", err)
	}
	byName := make(map[string]domain.TimelineMilestone, len(templates))
	for _, t := range templates {
		byName[t.Name] = t
	}

	plan := domain.TimelinePlan{
		ID:           uuid.New(),
		AssessmentID: assessment.ID,
		UserID:       userID,
	}
	for _, sel := range selected {
		tmpl, ok := byName[sel.milestone]
		if !ok {
			s.log.WarnContext(ctx, "milestone template missing", slog.String("milestone", sel.milestone))
			continue
		}
		plan.Milestones = append(plan.Milestones, domain.PlanMilestone{
			ID:             uuid.New(),
			TimelinePlanID: plan.ID,
			Milestone:      tmpl,
			EstimatedDate:  sel.date,
			Tasks:          tmpl.TaskTemplate,
		})
	}

	var created domain.TimelinePlan
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if _, err := s.plans.CreateAssessment(txCtx, assessment); err != nil {
			return fmt.Errorf("create assessment: %w", err)
		}
		var err error
		created, err = s.plans.CreatePlan(txCtx, plan)
		if err != nil {
			return fmt.Errorf("create plan: %w", err)
		}
		return nil
	})
	if err != nil {
		return domain.TimelinePlan{}, err
	}

	s.log.InfoContext(ctx, "timeline plan created",
		slog.String("plan_id", created.ID.String()),
		slog.Int("milestones", len(created.Milestones)),
	)
	return created, nil
}

// GetPlan returns a plan visible to the caller.
func (s *Service) GetPlan(ctx context.Context, id uuid.UUID) (domain.TimelinePlan, error) {
	plan, err := s.plans.GetPlan(ctx, id)
	if err != nil {
		return domain.TimelinePlan{}, fmt.Errorf("get plan: %w", err)
	}
	if !visible(ctx, plan) {
		return domain.TimelinePlan{}, fmt.Errorf("get plan: %w", domain.ErrNotFound)
	}
	return plan, nil
}

// SetMilestoneCompleted toggles one milestone instance. Other instances of the
// plan are not touched.
func (s *Service) SetMilestoneCompleted(ctx context.Context, milestoneID uuid.UUID, completed bool) error {
	planID, err := s.plans.PlanIDByMilestone(ctx, milestoneID)
	if err != nil {
		return fmt.Errorf("find milestone: %w", err)
	}
	if _, err := s.GetPlan(ctx, planID); err != nil {
		return err
	}
	if err := s.plans.SetMilestoneCompleted(ctx, milestoneID, completed); err != nil {
		return fmt.Errorf("set milestone completed: %w", err)
	}
	return nil
}

// visible reports whether the caller may see the plan. Anonymous plans are
// visible to anyone holding the id.
func visible(ctx context.Context, plan domain.TimelinePlan) bool {
	return ctxutil.CanAccess(ctx, plan.UserID)
}
