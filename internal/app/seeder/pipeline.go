package seeder

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"time"
)

// Phase names in canonical execution order.
const (
	PhaseCareTypes   = "care_types"
	PhaseMultipliers = "multipliers"
	PhaseMilestones  = "milestones"
	PhaseHotlines    = "hotlines"
	PhaseFacilities  = "facilities"
)

var allPhases = []string{PhaseCareTypes, PhaseMultipliers, PhaseMilestones, PhaseHotlines, PhaseFacilities}

// PhaseResult holds the outcome of a single phase.
type PhaseResult struct {
	Upserted int
	Skipped  int
	Duration time.Duration
	Err      error
}

// Pipeline loads a Dataset into the database, one transaction per phase.
type Pipeline struct {
	log        *slog.Logger
	reference  ReferenceRepo
	facilities FacilityRepo
	tx         TxRunner
	cfg        Config
	results    map[string]PhaseResult
}

// NewPipeline creates a new Pipeline.
func NewPipeline(log *slog.Logger, reference ReferenceRepo, facilities FacilityRepo, tx TxRunner, cfg Config) *Pipeline {
	return &Pipeline{
		log:        log,
		reference:  reference,
		facilities: facilities,
		tx:         tx,
		cfg:        cfg,
		results:    make(map[string]PhaseResult),
	}
}

// Results returns phase results after Run completes.
func (p *Pipeline) Results() map[string]PhaseResult {
	return p.results
}

// HasErrors reports whether any phase failed.
func (p *Pipeline) HasErrors() bool {
	for _, r := range p.results {
		if r.Err != nil {
			return true
		}
	}
	return false
}

// Run executes the phases of ds. If phases is non-empty only the listed ones
// run, still in canonical order. A failed phase is rolled back and does not
// stop the phases after it.
func (p *Pipeline) Run(ctx context.Context, ds *Dataset, phases []string) error {
	for _, ph := range phases {
		if !slices.Contains(allPhases, ph) {
			return fmt.Errorf("unknown phase %q", ph)
		}
	}

	toRun := allPhases
	if len(phases) > 0 {
		toRun = slices.DeleteFunc(slices.Clone(allPhases), func(ph string) bool {
			return !slices.Contains(phases, ph)
		})
	}

	for _, phase := range toRun {
		start := time.Now()
		p.log.Info("starting phase", slog.String("phase", phase))

		result := p.runPhase(ctx, phase, ds)
		result.Duration = time.Since(start)
		p.results[phase] = result

		if result.Err != nil {
			p.log.Warn("phase failed",
				slog.String("phase", phase),
				slog.String("error", result.Err.Error()),
				slog.Duration("duration", result.Duration),
			)
			continue
		}
		p.log.Info("phase completed",
			slog.String("phase", phase),
			slog.Int("upserted", result.Upserted),
			slog.Int("skipped", result.Skipped),
			slog.Duration("duration", result.Duration),
		)
	}

	p.log.Info("pipeline completed", slog.Int("phases_run", len(toRun)))
	return nil
}

func (p *Pipeline) runPhase(ctx context.Context, phase string, ds *Dataset) PhaseResult {
	switch phase {
	case PhaseCareTypes:
		return upsertAll(ctx, p, ds.CareTypes, func(ctx context.Context, r CareTypeRecord) error {
			return p.reference.UpsertCareType(ctx, r.toDomain())
		})
	case PhaseMultipliers:
		return upsertAll(ctx, p, ds.Multipliers, func(ctx context.Context, r MultiplierRecord) error {
			return p.reference.UpsertMultiplier(ctx, r.toDomain())
		})
	case PhaseMilestones:
		return upsertAll(ctx, p, ds.Milestones, func(ctx context.Context, r MilestoneRecord) error {
			return p.reference.UpsertMilestone(ctx, r.toDomain())
		})
	case PhaseHotlines:
		return upsertAll(ctx, p, ds.Hotlines, func(ctx context.Context, r HotlineRecord) error {
			return p.reference.UpsertHotline(ctx, r.toDomain())
		})
	case PhaseFacilities:
		return upsertAll(ctx, p, ds.Facilities, func(ctx context.Context, r FacilityRecord) error {
			_, err := p.facilities.Upsert(ctx, r.toDomain())
			return err
		})
	}
	return PhaseResult{Err: fmt.Errorf("unknown phase %q", phase)}
}

// upsertAll writes records inside one transaction. The first failure
// rolls back the whole phase.
func upsertAll[T any](ctx context.Context, p *Pipeline, records []T, fn func(context.Context, T) error) PhaseResult {
	if p.cfg.DryRun {
		return PhaseResult{Skipped: len(records)}
	}
	if len(records) == 0 {
		return PhaseResult{}
	}

	err := p.tx.RunInTx(ctx, func(ctx context.Context) error {
		for i, r := range records {
			if err := fn(ctx, r); err != nil {
				return fmt.Errorf("record %d: %w", i, err)
			}
		}
		return nil
	})
	if err != nil {
		return PhaseResult{Err: err}
	}
	return PhaseResult{Upserted: len(records)}
}
