package testutil

import (
	"sync/atomic"
	"time"

	"github.com/dmarkov/sprintwise/internal/domain"
	"github.com/google/uuid"
)

var testSeqCounter atomic.Int64

// Requirement options
type RequirementOption func(*domain.Requirement)

func WithBusinessValue(v domain.BusinessValueTier) RequirementOption {
	return func(r *domain.Requirement) {
		r.BusinessValue = v
	}
}

func WithTimeCriticality(tc domain.TimeCriticality) RequirementOption {
	return func(r *domain.Requirement) {
		r.TimeCriticality = tc
	}
}

func WithHardDeadline(date *time.Time) RequirementOption {
	return func(r *domain.Requirement) {
		r.HardDeadline = true
		r.DeadlineDate = date
	}
}

func WithEffortDays(days int) RequirementOption {
	return func(r *domain.Requirement) {
		r.EffortDays = days
	}
}

func WithReadiness(rd domain.Readiness) RequirementOption {
	return func(r *domain.Requirement) {
		r.Readiness = rd
	}
}

func WithPoolID(poolID string) RequirementOption {
	return func(r *domain.Requirement) {
		r.PoolID = poolID
	}
}

// NewTestRequirement builds a schedulable requirement with sensible
// defaults: moderate value, no time window, 5 effort days, workload
// evaluated, unscheduled.
func NewTestRequirement(title string, opts ...RequirementOption) domain.Requirement {
	now := time.Now().UTC()
	r := domain.Requirement{
		ID:              uuid.New().String(),
		Title:           title,
		BusinessValue:   domain.ValueModerate,
		TimeCriticality: domain.TimeAnytime,
		EffortDays:      5,
		Readiness:       domain.ReadinessWorkloadEvaluated,
		Seq:             int(testSeqCounter.Add(1)),
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	for _, opt := range opts {
		opt(&r)
	}
	return r
}

// Pool options
type PoolOption func(*domain.SprintPool)

func WithCapacity(totalDays int) PoolOption {
	return func(p *domain.SprintPool) {
		p.TotalCapacityDays = totalDays
	}
}

func WithReserves(bug, refactor, other int) PoolOption {
	return func(p *domain.SprintPool) {
		p.BugReserve = bug
		p.RefactorReserve = refactor
		p.OtherReserve = other
	}
}

func WithItemIDs(ids ...string) PoolOption {
	return func(p *domain.SprintPool) {
		p.ItemIDs = ids
	}
}

// NewTestPool builds a pool with 100 total capacity days and no reserves.
func NewTestPool(name string, opts ...PoolOption) domain.SprintPool {
	now := time.Now().UTC()
	p := domain.SprintPool{
		ID:                uuid.New().String(),
		Name:              name,
		StartDate:         "2026-01-01",
		EndDate:           "2026-01-31",
		TotalCapacityDays: 100,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
	for _, opt := range opts {
		opt(&p)
	}
	return p
}
