// Package timeline implements persistence for care assessments and the
// timeline plans generated from them.
package timeline

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/kceleski/ava-care-compass/internal/adapter/postgres"
	"github.com/kceleski/ava-care-compass/internal/domain"
)

// Repo provides timeline persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new timeline repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// CreateAssessment stores the answers a plan is generated from.
func (r *Repo) CreateAssessment(ctx context.Context, a domain.Assessment) (domain.Assessment, error) {
	err := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx,
		`INSERT INTO care_assessments (id, user_id, current_mobility, cognitive_status, medical_conditions, support_system)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING created_at`,
		a.ID, postgres.UUIDPtrToPg(a.UserID), string(a.CurrentMobility), string(a.CognitiveStatus),
		a.MedicalConditions, string(a.SupportSystem),
	).Scan(&a.CreatedAt)
	if err != nil {
		return domain.Assessment{}, postgres.MapError(err, "care_assessment", a.ID)
	}
	return a, nil
}

// CreatePlan stores a plan and its milestone instances. Callers run it inside
// a transaction to keep the plan and its milestones together.
func (r *Repo) CreatePlan(ctx context.Context, p domain.TimelinePlan) (domain.TimelinePlan, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	err := q.QueryRow(ctx,
		`INSERT INTO timeline_plans (id, assessment_id, user_id) VALUES ($1, $2, $3)
		 RETURNING created_at`,
		p.ID, p.AssessmentID, postgres.UUIDPtrToPg(p.UserID),
	).Scan(&p.CreatedAt)
	if err != nil {
		return domain.TimelinePlan{}, postgres.MapError(err, "timeline_plan", p.ID)
	}

	batch := &pgx.Batch{}
	for _, m := range p.Milestones {
		batch.Queue(
			`INSERT INTO timeline_plan_milestones (id, timeline_plan_id, milestone_id, estimated_date, tasks, completed)
			 VALUES ($1, $2, $3, $4, $5, $6)`,
			m.ID, p.ID, m.Milestone.ID, pgtype.Date{Time: m.EstimatedDate, Valid: true}, m.Tasks, m.Completed,
		)
	}
	if err := q.SendBatch(ctx, batch).Close(); err != nil {
		return domain.TimelinePlan{}, postgres.MapError(err, "timeline_plan", p.ID)
	}

	return p, nil
}

// SetMilestoneCompleted flips the completion flag of one milestone instance.
func (r *Repo) SetMilestoneCompleted(ctx context.Context, id uuid.UUID, completed bool) error {
	tag, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx,
		`UPDATE timeline_plan_milestones SET completed = $2 WHERE id = $1`, id, completed,
	)
	if err != nil {
		return postgres.MapError(err, "timeline_plan_milestone", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("timeline_plan_milestone %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// PlanIDByMilestone returns the plan a milestone instance belongs to.
func (r *Repo) PlanIDByMilestone(ctx context.Context, milestoneID uuid.UUID) (uuid.UUID, error) {
	var planID uuid.UUID
	err := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx,
		`SELECT timeline_plan_id FROM timeline_plan_milestones WHERE id = $1`, milestoneID,
	).Scan(&planID)
	if err != nil {
		return uuid.Nil, postgres.MapError(err, "timeline_plan_milestone", milestoneID)
	}
	return planID, nil
}

// GetPlan returns a plan with its milestone instances ordered by date.
func (r *Repo) GetPlan(ctx context.Context, id uuid.UUID) (domain.TimelinePlan, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var (
		p      domain.TimelinePlan
		userID pgtype.UUID
	)
	err := q.QueryRow(ctx,
		`SELECT id, assessment_id, user_id, created_at FROM timeline_plans WHERE id = $1`, id,
	).Scan(&p.ID, &p.AssessmentID, &userID, &p.CreatedAt)
	if err != nil {
		return domain.TimelinePlan{}, postgres.MapError(err, "timeline_plan", id)
	}
	p.UserID = postgres.PgToUUIDPtr(userID)

	rows, err := q.Query(ctx,
		`SELECT pm.id, pm.timeline_plan_id, pm.estimated_date, pm.tasks, pm.completed,
		        tm.id, tm.name, tm.description, tm.estimated_timeframe, tm.care_level_required, tm.task_template
		 FROM timeline_plan_milestones pm
		 JOIN timeline_milestones tm ON tm.id = pm.milestone_id
		 WHERE pm.timeline_plan_id = $1
		 ORDER BY pm.estimated_date, tm.name`,
		id,
	)
	if err != nil {
		return domain.TimelinePlan{}, fmt.Errorf("timeline.GetPlan milestones: %w", err)
	}

	p.Milestones, err = pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.PlanMilestone, error) {
		var (
			m    domain.PlanMilestone
			date pgtype.Date
		)
		err := row.Scan(
			&m.ID, &m.TimelinePlanID, &date, &m.Tasks, &m.Completed,
			&m.Milestone.ID, &m.Milestone.Name, &m.Milestone.Description,
			&m.Milestone.EstimatedTimeframe, &m.Milestone.CareLevelRequired, &m.Milestone.TaskTemplate,
		)
		m.EstimatedDate = date.Time
		return m, err
	})
	if err != nil {
		return domain.TimelinePlan{}, fmt.Errorf("timeline.GetPlan scan: %w", err)
	}

	return p, nil
}
