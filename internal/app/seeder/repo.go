package seeder

import (
	"context"

	"github.com/google/uuid"

	"github.com/kceleski/ava-care-compass/internal/domain"
)

// ReferenceRepo writes the lookup tables behind the planning tools.
// Every method is idempotent on the row's natural key.
type ReferenceRepo interface {
	UpsertCareType(ctx context.Context, ct domain.CareType) error
	UpsertMultiplier(ctx context.Context, m domain.LocationMultiplier) error
	UpsertMilestone(ctx context.Context, m domain.TimelineMilestone) error
	UpsertHotline(ctx context.Context, c domain.EmergencyContact) error
}

// FacilityRepo writes directory facilities, matched on name and city.
type FacilityRepo interface {
	Upsert(ctx context.Context, f domain.Facility) (uuid.UUID, error)
}

// TxRunner runs fn inside one database transaction.
type TxRunner interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}
