// Package reference implements read access to the planning-tool reference
// tables (care types, location multipliers, milestone templates, hotlines)
// and the upserts the seeder uses to load them.
package reference

import (
	"context"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/kceleski/ava-care-compass/internal/adapter/postgres"
	"github.com/kceleski/ava-care-compass/internal/domain"
)

// Repo provides reference data persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new reference data repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// ---------------------------------------------------------------------------
// Care types and multipliers
// ---------------------------------------------------------------------------

// ListCareTypes returns every care type ordered by name.
func (r *Repo) ListCareTypes(ctx context.Context) ([]domain.CareType, error) {
	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx,
		`SELECT id, name, description, base_hourly_rate, category FROM care_types ORDER BY name`,
	)
	if err != nil {
		return nil, fmt.Errorf("reference.ListCareTypes: %w", err)
	}
	out, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.CareType, error) {
		var ct domain.CareType
		err := row.Scan(&ct.ID, &ct.Name, &ct.Description, &ct.BaseHourlyRate, &ct.Category)
		return ct, err
	})
	if err != nil {
		return nil, fmt.Errorf("reference.ListCareTypes scan: %w", err)
	}
	return out, nil
}

// GetCareType returns a care type by exact name.
func (r *Repo) GetCareType(ctx context.Context, name string) (domain.CareType, error) {
	var ct domain.CareType
	err := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx,
		`SELECT id, name, description, base_hourly_rate, category FROM care_types WHERE name = $1`, name,
	).Scan(&ct.ID, &ct.Name, &ct.Description, &ct.BaseHourlyRate, &ct.Category)
	if err != nil {
		return domain.CareType{}, postgres.MapError(err, "care_type", name)
	}
	return ct, nil
}

// GetCareTypeByID returns a care type by id.
func (r *Repo) GetCareTypeByID(ctx context.Context, id uuid.UUID) (domain.CareType, error) {
	var ct domain.CareType
	err := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx,
		`SELECT id, name, description, base_hourly_rate, category FROM care_types WHERE id = $1`, id,
	).Scan(&ct.ID, &ct.Name, &ct.Description, &ct.BaseHourlyRate, &ct.Category)
	if err != nil {
		return domain.CareType{}, postgres.MapError(err, "care_type", id)
	}
	return ct, nil
}

// GetMultiplier returns the cost multiplier for an exact state and city.
// A missing row returns domain.ErrNotFound.
func (r *Repo) GetMultiplier(ctx context.Context, state, city string) (domain.LocationMultiplier, error) {
	var m domain.LocationMultiplier
	err := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx,
		`SELECT id, state, city, cost_multiplier FROM location_multipliers
		 WHERE state = $1 AND city = $2`,
		state, city,
	).Scan(&m.ID, &m.State, &m.City, &m.CostMultiplier)
	if err != nil {
		return domain.LocationMultiplier{}, postgres.MapError(err, "location_multiplier", state+"/"+city)
	}
	return m, nil
}

// UpsertCareType inserts or refreshes a care type keyed by name.
func (r *Repo) UpsertCareType(ctx context.Context, ct domain.CareType) error {
	_, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx,
		`INSERT INTO care_types (name, description, base_hourly_rate, category)
		 VALUES ($1, $2, $3, $4)
		 ON CONFLICT (name) DO UPDATE SET description = EXCLUDED.description,
		     base_hourly_rate = EXCLUDED.base_hourly_rate, category = EXCLUDED.category`,
		ct.Name, ct.Description, ct.BaseHourlyRate, ct.Category,
	)
	if err != nil {
		return postgres.MapError(err, "care_type", ct.Name)
	}
	return nil
}

// UpsertMultiplier inserts or refreshes a multiplier keyed by state and city.
func (r *Repo) UpsertMultiplier(ctx context.Context, m domain.LocationMultiplier) error {
	_, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx,
		`INSERT INTO location_multipliers (state, city, cost_multiplier)
		 VALUES ($1, $2, $3)
		 ON CONFLICT (state, city) DO UPDATE SET cost_multiplier = EXCLUDED.cost_multiplier`,
		m.State, m.City, m.CostMultiplier,
	)
	if err != nil {
		return postgres.MapError(err, "location_multiplier", m.State+"/"+m.City)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Milestone templates
// ---------------------------------------------------------------------------

// ListMilestones returns milestone templates, optionally restricted to names.
func (r *Repo) ListMilestones(ctx context.Context, names ...string) ([]domain.TimelineMilestone, error) {
	query := postgres.Builder().
		Select("id", "name", "description", "estimated_timeframe", "care_level_required", "task_template").
		From("timeline_milestones").
		OrderBy("name")
	if len(names) > 0 {
		query = query.Where(sq.Eq{"name": names})
	}

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("reference.ListMilestones build: %w", err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("reference.ListMilestones: %w", err)
	}
	out, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.TimelineMilestone, error) {
		var m domain.TimelineMilestone
		err := row.Scan(&m.ID, &m.Name, &m.Description, &m.EstimatedTimeframe, &m.CareLevelRequired, &m.TaskTemplate)
		return m, err
	})
	if err != nil {
		return nil, fmt.Errorf("reference.ListMilestones scan: %w", err)
	}
	return out, nil
}

// UpsertMilestone inserts or refreshes a milestone template keyed by name.
func (r *Repo) UpsertMilestone(ctx context.Context, m domain.TimelineMilestone) error {
	_, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx,
		`INSERT INTO timeline_milestones (name, description, estimated_timeframe, care_level_required, task_template)
		 VALUES ($1, $2, $3, $4, $5)
		 ON CONFLICT (name) DO UPDATE SET description = EXCLUDED.description,
		     estimated_timeframe = EXCLUDED.estimated_timeframe,
		     care_level_required = EXCLUDED.care_level_required,
		     task_template = EXCLUDED.task_template`,
		m.Name, m.Description, m.EstimatedTimeframe, m.CareLevelRequired, m.TaskTemplate,
	)
	if err != nil {
		return postgres.MapError(err, "timeline_milestone", m.Name)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Hotlines
// ---------------------------------------------------------------------------

// ListHotlines returns the static emergency contacts, round-the-clock lines
// first, then by contact type.
func (r *Repo) ListHotlines(ctx context.Context) ([]domain.EmergencyContact, error) {
	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx,
		`SELECT id, name, phone, contact_type, description, available_24_7, location_specific
		 FROM emergency_contacts
		 ORDER BY available_24_7 DESC, contact_type, name`,
	)
	if err != nil {
		return nil, fmt.Errorf("reference.ListHotlines: %w", err)
	}
	out, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.EmergencyContact, error) {
		var c domain.EmergencyContact
		err := row.Scan(&c.ID, &c.Name, &c.Phone, &c.ContactType, &c.Description, &c.Available24x7, &c.LocationSpecific)
		return c, err
	})
	if err != nil {
		return nil, fmt.Errorf("reference.ListHotlines scan: %w", err)
	}
	return out, nil
}

// UpsertHotline inserts or refreshes a hotline keyed by name and phone.
func (r *Repo) UpsertHotline(ctx context.Context, c domain.EmergencyContact) error {
	_, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx,
		`INSERT INTO emergency_contacts (name, phone, contact_type, description, available_24_7, location_specific)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 ON CONFLICT (name, phone) DO UPDATE SET contact_type = EXCLUDED.contact_type,
		     description = EXCLUDED.description, available_24_7 = EXCLUDED.available_24_7,
		     location_specific = EXCLUDED.location_specific`,
		c.Name, c.Phone, strings.ToLower(c.ContactType), c.Description, c.Available24x7, c.LocationSpecific,
	)
	if err != nil {
		return postgres.MapError(err, "emergency_contact", c.Name)
	}
	return nil
}
