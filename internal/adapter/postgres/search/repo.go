// Package search implements persistence for places-search results, their
// places and the generated conversation summaries.
package search

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/kceleski/ava-care-compass/internal/adapter/postgres"
	"github.com/kceleski/ava-care-compass/internal/domain"
)

// Repo provides places-search persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new places-search repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// ---------------------------------------------------------------------------
// Search results
// ---------------------------------------------------------------------------

// CreateResult stores one places-search invocation and its raw payload.
func (r *Repo) CreateResult(ctx context.Context, sr domain.SearchResult) (domain.SearchResult, error) {
	params, err := json.Marshal(sr.Parameters)
	if err != nil {
		return domain.SearchResult{}, fmt.Errorf("search_result marshal parameters: %w", err)
	}
	raw := sr.RawResponse
	if len(raw) == 0 {
		raw = json.RawMessage(`{}`)
	}

	err = postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx,
		`INSERT INTO serperapi_search_results (id, user_id, search_query, search_parameters, raw_response)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING created_at`,
		sr.ID, postgres.UUIDPtrToPg(sr.UserID), sr.SearchQuery, params, []byte(raw),
	).Scan(&sr.CreatedAt)
	if err != nil {
		return domain.SearchResult{}, postgres.MapError(err, "search_result", sr.ID)
	}
	sr.RawResponse = raw
	return sr, nil
}

// GetResult returns a stored search result without its raw payload.
func (r *Repo) GetResult(ctx context.Context, id uuid.UUID) (domain.SearchResult, error) {
	var (
		sr     domain.SearchResult
		userID pgtype.UUID
		params []byte
	)
	err := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx,
		`SELECT id, user_id, search_query, search_parameters, created_at
		 FROM serperapi_search_results WHERE id = $1`, id,
	).Scan(&sr.ID, &userID, &sr.SearchQuery, &params, &sr.CreatedAt)
	if err != nil {
		return domain.SearchResult{}, postgres.MapError(err, "search_result", id)
	}
	sr.UserID = postgres.PgToUUIDPtr(userID)
	if err := json.Unmarshal(params, &sr.Parameters); err != nil {
		return domain.SearchResult{}, fmt.Errorf("search_result %s unmarshal parameters: %w", id, err)
	}
	return sr, nil
}

// DeleteOlderThan removes search results created before cutoff. Places and
// summaries go with them through ON DELETE CASCADE.
func (r *Repo) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	tag, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx,
		`DELETE FROM serperapi_search_results WHERE created_at < $1`, cutoff,
	)
	if err != nil {
		return 0, fmt.Errorf("search.DeleteOlderThan: %w", err)
	}
	return tag.RowsAffected(), nil
}

// ---------------------------------------------------------------------------
// Places
// ---------------------------------------------------------------------------

const placeColumns = `id, search_result_id, position, external_uuid, title, address,
	latitude, longitude, rating, rating_count, place_type, place_types, website,
	phone_number, opening_hours, thumbnail_url, cid, fid, place_id,
	street, city, state, zip_code, address_parsed,
	price_range_min, price_range_max, current_availability, created_at`

// CreatePlace stores one normalized place under its search result.
func (r *Repo) CreatePlace(ctx context.Context, p domain.Place) (domain.Place, error) {
	types := p.PlaceTypes
	if types == nil {
		types = []string{}
	}
	var hours []byte
	if len(p.OpeningHours) > 0 {
		hours = p.OpeningHours
	}

	err := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx,
		`INSERT INTO serperapi_places (id, search_result_id, position, external_uuid, title, address,
		     latitude, longitude, rating, rating_count, place_type, place_types, website,
		     phone_number, opening_hours, thumbnail_url, cid, fid, place_id,
		     street, city, state, zip_code, address_parsed,
		     price_range_min, price_range_max, current_availability)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15,
		         $16, $17, $18, $19, $20, $21, $22, $23, $24, $25, $26, $27)
		 RETURNING created_at`,
		p.ID, p.SearchResultID, p.Position, p.ExternalUUID, p.Title, p.RawAddress,
		p.Latitude, p.Longitude, p.Rating, p.RatingCount, p.PlaceType, types, p.Website,
		p.PhoneNumber, hours, p.ThumbnailURL, p.CID, p.FID, p.PlaceID,
		p.Address.Street, p.Address.City, p.Address.State, p.Address.ZipCode, p.AddressParsed,
		p.PriceRangeMin, p.PriceRangeMax, p.CurrentAvailability,
	).Scan(&p.CreatedAt)
	if err != nil {
		return domain.Place{}, postgres.MapError(err, "place", p.ID)
	}
	return p, nil
}

// ListPlaces returns up to limit places of a search result ordered by position.
func (r *Repo) ListPlaces(ctx context.Context, searchResultID uuid.UUID, limit int) ([]domain.Place, error) {
	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx,
		`SELECT `+placeColumns+`
		 FROM serperapi_places
		 WHERE search_result_id = $1
		 ORDER BY position, id
		 LIMIT $2`,
		searchResultID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("search.ListPlaces: %w", err)
	}

	places, err := pgx.CollectRows(rows, scanPlace)
	if err != nil {
		return nil, fmt.Errorf("search.ListPlaces scan: %w", err)
	}
	return places, nil
}

func scanPlace(row pgx.CollectableRow) (domain.Place, error) {
	var (
		p     domain.Place
		hours []byte
	)
	err := row.Scan(
		&p.ID, &p.SearchResultID, &p.Position, &p.ExternalUUID, &p.Title, &p.RawAddress,
		&p.Latitude, &p.Longitude, &p.Rating, &p.RatingCount, &p.PlaceType, &p.PlaceTypes, &p.Website,
		&p.PhoneNumber, &hours, &p.ThumbnailURL, &p.CID, &p.FID, &p.PlaceID,
		&p.Address.Street, &p.Address.City, &p.Address.State, &p.Address.ZipCode, &p.AddressParsed,
		&p.PriceRangeMin, &p.PriceRangeMax, &p.CurrentAvailability, &p.CreatedAt,
	)
	if len(hours) > 0 {
		p.OpeningHours = hours
	}
	return p, err
}

// ---------------------------------------------------------------------------
// Summaries
// ---------------------------------------------------------------------------

// CreateSummary attaches the generated summary to its search result.
// A second summary for the same result returns domain.ErrAlreadyExists.
func (r *Repo) CreateSummary(ctx context.Context, s domain.ConversationSummary) (domain.ConversationSummary, error) {
	err := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx,
		`INSERT INTO search_conversation_summaries (id, search_result_id, user_id, summary_text, markup_content)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING created_at`,
		s.ID, s.SearchResultID, postgres.UUIDPtrToPg(s.UserID), s.SummaryText, s.MarkupContent,
	).Scan(&s.CreatedAt)
	if err != nil {
		return domain.ConversationSummary{}, postgres.MapError(err, "search_summary", s.SearchResultID)
	}
	return s, nil
}

// GetSummary returns the summary of a search result, or domain.ErrNotFound
// when none was generated.
func (r *Repo) GetSummary(ctx context.Context, searchResultID uuid.UUID) (domain.ConversationSummary, error) {
	var (
		s      domain.ConversationSummary
		userID pgtype.UUID
	)
	err := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx,
		`SELECT id, search_result_id, user_id, summary_text, markup_content, created_at
		 FROM search_conversation_summaries WHERE search_result_id = $1`, searchResultID,
	).Scan(&s.ID, &s.SearchResultID, &userID, &s.SummaryText, &s.MarkupContent, &s.CreatedAt)
	if err != nil {
		return domain.ConversationSummary{}, postgres.MapError(err, "search_summary", searchResultID)
	}
	s.UserID = postgres.PgToUUIDPtr(userID)
	return s, nil
}
