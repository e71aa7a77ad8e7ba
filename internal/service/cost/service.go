// Package cost projects weekly and monthly care costs.
package cost

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/kceleski/ava-care-compass/internal/domain"
)

type referenceRepo interface {
	ListCareTypes(ctx context.Context) ([]domain.CareType, error)
	GetCareTypeByID(ctx context.Context, id uuid.UUID) (domain.CareType, error)
	GetMultiplier(ctx context.Context, state, city string) (domain.LocationMultiplier, error)
}

const (
	DefaultHoursPerWeek = 40
	MaxHoursPerWeek     = 168
)

// Service provides cost estimates.
type Service struct {
	reference referenceRepo
	log       *slog.Logger
}

// NewService creates a new cost service.
func NewService(log *slog.Logger, reference referenceRepo) *Service {
	return &Service{
		reference: reference,
		log:       log.With("service", "cost"),
	}
}

// CareTypes lists the care types a caller can estimate.
func (s *Service) CareTypes(ctx context.Context) ([]domain.CareType, error) {
	types, err := s.reference.ListCareTypes(ctx)
	if err != nil {
		return nil, fmt.Errorf("list care types: %w", err)
	}
	return types, nil
}

// EstimateInput selects a care type, weekly hours and a location.
type EstimateInput struct {
	CareTypeID   uuid.UUID
	HoursPerWeek int
	State        string
	City         string
}

func (i EstimateInput) Validate() error {
	var errs []domain.FieldError

	if i.CareTypeID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "careTypeId", Message: "required"})
	}
	if i.HoursPerWeek < 0 || i.HoursPerWeek > MaxHoursPerWeek {
		errs = append(errs, domain.FieldError{Field: "hoursPerWeek", Message: "must be between 0 and 168, 0 uses the default of 40"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// Estimate is a cost projection for one care type.
type Estimate struct {
	CareType     domain.CareType
	HoursPerWeek int
	Breakdown    domain.CostBreakdown
}

// Estimate projects costs. Zero hours means the default of 40. A location
// without a positive multiplier is not adjusted.
func (s *Service) Estimate(ctx context.Context, input EstimateInput) (Estimate, error) {
	if err := input.Validate(); err != nil {
		return Estimate{}, err
	}
	hours := input.HoursPerWeek
	if hours == 0 {
		hours = DefaultHoursPerWeek
	}

	careType, err := s.reference.GetCareTypeByID(ctx, input.CareTypeID)
	if err != nil {
		return Estimate{}, fmt.Errorf("get care type: %w", err)
	}

	multiplier := 1.0
	state, city := strings.TrimSpace(input.State), strings.TrimSpace(input.City)
	if state != "" && city != "" {
		m, err := s.reference.GetMultiplier(ctx, state, city)
		switch {
		case err == nil && m.CostMultiplier > 0:
			multiplier = m.CostMultiplier
		case err == nil:
			s.log.WarnContext(ctx, "non-positive location multiplier ignored",
				slog.String("state", state),
				slog.String("city", city),
				slog.Float64("multiplier", m.CostMultiplier),
			)
		case errors.Is(err, domain.ErrNotFound):
			s.log.DebugContext(ctx, "no location multiplier", slog.String("state", state), slog.String("city", city))
		default:
			return Estimate{}, fmt.Errorf("get multiplier: %w", err)
		}
	}

	return Estimate{
		CareType:     careType,
		HoursPerWeek: hours,
		Breakdown:    domain.ProjectCost(careType.BaseHourlyRate, hours, multiplier),
	}, nil
}
