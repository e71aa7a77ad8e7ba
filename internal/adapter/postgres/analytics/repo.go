// Package analytics implements the append-only usage event and search
// request repository.
package analytics

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/kceleski/ava-care-compass/internal/adapter/postgres"
	"github.com/kceleski/ava-care-compass/internal/domain"
)

// Repo provides analytics persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new analytics repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// Record appends one usage event.
func (r *Repo) Record(ctx context.Context, e domain.AnalyticsEvent) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	meta, err := marshalMap(e.Metadata)
	if err != nil {
		return fmt.Errorf("analytics marshal metadata: %w", err)
	}

	_, err = postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx,
		`INSERT INTO analytics (id, user_id, event_type, metadata) VALUES ($1, $2, $3, $4)`,
		e.ID, postgres.UUIDPtrToPg(e.UserID), e.EventType, meta,
	)
	if err != nil {
		return postgres.MapError(err, "analytics", e.ID)
	}
	return nil
}

// CreateSearchRequest records a directory search issued by a known user.
func (r *Repo) CreateSearchRequest(ctx context.Context, req domain.SearchRequest) (domain.SearchRequest, error) {
	if req.ID == uuid.Nil {
		req.ID = uuid.New()
	}
	params, err := marshalMap(req.QueryParams)
	if err != nil {
		return domain.SearchRequest{}, fmt.Errorf("search_request marshal params: %w", err)
	}

	err = postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx,
		`INSERT INTO search_requests (id, user_id, query_params) VALUES ($1, $2, $3)
		 RETURNING created_at`,
		req.ID, req.UserID, params,
	).Scan(&req.CreatedAt)
	if err != nil {
		return domain.SearchRequest{}, postgres.MapError(err, "search_request", req.ID)
	}
	return req, nil
}

// SetSearchRequestResults stores the result count of a recorded search.
func (r *Repo) SetSearchRequestResults(ctx context.Context, id uuid.UUID, count int) error {
	tag, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx,
		`UPDATE search_requests SET results_count = $2 WHERE id = $1`, id, count,
	)
	if err != nil {
		return postgres.MapError(err, "search_request", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("search_request %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

func marshalMap(m map[string]any) ([]byte, error) {
	if m == nil {
		return []byte(`{}`), nil
	}
	return json.Marshal(m)
}
