package engine

import (
	"fmt"
	"time"

	"github.com/dmarkov/sprintwise/internal/domain"
)

// PoolConfig carries the caller-editable pool fields for create/update.
type PoolConfig struct {
	Name              string
	StartDate         string
	EndDate           string
	TotalCapacityDays int
	BugReserve        int
	RefactorReserve   int
	OtherReserve      int
}

func validatePoolConfig(cfg PoolConfig) error {
	if cfg.Name == "" {
		return &ValidationError{Field: "name", Reason: "is required"}
	}
	if cfg.TotalCapacityDays < 0 {
		return &ValidationError{Field: "total_capacity_days", Reason: "must not be negative"}
	}
	for _, rv := range []struct {
		name string
		val  int
	}{
		{"bug_reserve", cfg.BugReserve},
		{"refactor_reserve", cfg.RefactorReserve},
		{"other_reserve", cfg.OtherReserve},
	} {
		if rv.val < 0 || rv.val > 100 {
			return &ValidationError{Field: rv.name, Reason: "must be between 0 and 100"}
		}
	}
	if sum := cfg.BugReserve + cfg.RefactorReserve + cfg.OtherReserve; sum > 100 {
		return &ValidationError{Field: "reserves", Reason: fmt.Sprintf("sum to %d%%, exceeding 100%%", sum)}
	}
	return nil
}

// Move transfers a requirement between locations (a pool ID or
// domain.UnscheduledPoolID). Validation happens before any state
// changes, so a rejection leaves the batch exactly as it was. A move
// whose source equals its target is an accepted no-op.
func (b *Batch) Move(itemID, from, to string) error {
	item := b.item(itemID)
	if item == nil || item.PoolID != from {
		return &ItemNotFoundError{ItemID: itemID, Location: from}
	}
	if from == to {
		return nil
	}

	if to != domain.UnscheduledPoolID {
		target := b.pool(to)
		if target == nil {
			return &ValidationError{Field: "pool", Reason: fmt.Sprintf("unknown pool %q", to)}
		}
		if !item.Readiness.Schedulable() {
			return &NotReadyError{ItemID: itemID, Readiness: string(item.Readiness)}
		}
		// item is not in the target pool here (from != to), so UsedDays
		// already excludes it.
		projected := b.UsedDays(to) + item.EffortDays
		if net := target.NetCapacityDays(); projected > net {
			return &CapacityExceededError{PoolID: to, OverflowDays: projected - net}
		}
	}

	if from != domain.UnscheduledPoolID {
		source := b.pool(from)
		source.ItemIDs = removeID(source.ItemIDs, itemID)
		source.UpdatedAt = time.Now().UTC()
	}
	if to != domain.UnscheduledPoolID {
		target := b.pool(to)
		target.ItemIDs = append(target.ItemIDs, itemID)
		target.UpdatedAt = time.Now().UTC()
	}
	item.PoolID = to
	item.UpdatedAt = time.Now().UTC()

	b.renormalize()
	return nil
}

// AddRequirement inserts a new requirement into the unscheduled set and
// renormalizes. The caller supplies the ID; location and sequence are
// engine-owned.
func (b *Batch) AddRequirement(r domain.Requirement) domain.Requirement {
	r.PoolID = domain.UnscheduledPoolID
	r.Seq = b.nextSeq
	b.nextSeq++
	if r.Readiness == "" {
		r.Readiness = domain.ReadinessNotEvaluated
	}
	stored := r
	b.items = append(b.items, &stored)
	b.renormalize()
	return *b.item(r.ID)
}

// UpdateRequirement edits a requirement's caller-settable fields.
// Location, sequence, and creation time are preserved; moves go through
// Move.
func (b *Batch) UpdateRequirement(r domain.Requirement) error {
	existing := b.item(r.ID)
	if existing == nil {
		return &ItemNotFoundError{ItemID: r.ID}
	}
	existing.Title = r.Title
	existing.BusinessValue = r.BusinessValue
	existing.TimeCriticality = r.TimeCriticality
	existing.HardDeadline = r.HardDeadline
	existing.DeadlineDate = r.DeadlineDate
	existing.EffortDays = r.EffortDays
	existing.Readiness = r.Readiness
	existing.UpdatedAt = time.Now().UTC()

	b.renormalize()
	return nil
}

// DeleteRequirement removes a requirement from wherever it resides and
// from the batch used for normalization.
func (b *Batch) DeleteRequirement(id string) error {
	item := b.item(id)
	if item == nil {
		return &ItemNotFoundError{ItemID: id}
	}
	if !item.Unscheduled() {
		p := b.pool(item.PoolID)
		p.ItemIDs = removeID(p.ItemIDs, id)
		p.UpdatedAt = time.Now().UTC()
	}
	for i, r := range b.items {
		if r.ID == id {
			b.items = append(b.items[:i], b.items[i+1:]...)
			break
		}
	}
	b.renormalize()
	return nil
}

// CreatePool adds an empty pool with the given configuration.
func (b *Batch) CreatePool(id string, cfg PoolConfig) (domain.SprintPool, error) {
	if err := validatePoolConfig(cfg); err != nil {
		return domain.SprintPool{}, err
	}
	now := time.Now().UTC()
	p := &domain.SprintPool{
		ID:                id,
		Name:              cfg.Name,
		StartDate:         cfg.StartDate,
		EndDate:           cfg.EndDate,
		TotalCapacityDays: cfg.TotalCapacityDays,
		BugReserve:        cfg.BugReserve,
		RefactorReserve:   cfg.RefactorReserve,
		OtherReserve:      cfg.OtherReserve,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
	b.pools = append(b.pools, p)
	return *p, nil
}

// UpdatePool edits a pool's capacity, reserves, name, or date range. The
// edit may leave the pool over its new net capacity; that is allowed and
// surfaced via IsOverCapacity rather than ejecting assigned items.
// Capacity stays a hard constraint for new assignments only.
func (b *Batch) UpdatePool(id string, cfg PoolConfig) error {
	p := b.pool(id)
	if p == nil {
		return &ValidationError{Field: "pool", Reason: fmt.Sprintf("unknown pool %q", id)}
	}
	if err := validatePoolConfig(cfg); err != nil {
		return err
	}
	p.Name = cfg.Name
	p.StartDate = cfg.StartDate
	p.EndDate = cfg.EndDate
	p.TotalCapacityDays = cfg.TotalCapacityDays
	p.BugReserve = cfg.BugReserve
	p.RefactorReserve = cfg.RefactorReserve
	p.OtherReserve = cfg.OtherReserve
	p.UpdatedAt = time.Now().UTC()
	return nil
}

// DeletePool removes a pool. Assigned requirements return to the
// unscheduled set as part of the same operation; they are never
// discarded.
func (b *Batch) DeletePool(id string) error {
	p := b.pool(id)
	if p == nil {
		return &ValidationError{Field: "pool", Reason: fmt.Sprintf("unknown pool %q", id)}
	}
	for _, itemID := range p.ItemIDs {
		if r := b.item(itemID); r != nil {
			r.PoolID = domain.UnscheduledPoolID
			r.UpdatedAt = time.Now().UTC()
		}
	}
	for i, candidate := range b.pools {
		if candidate.ID == id {
			b.pools = append(b.pools[:i], b.pools[i+1:]...)
			break
		}
	}
	b.renormalize()
	return nil
}

func removeID(ids []string, id string) []string {
	out := ids[:0]
	for _, v := range ids {
		if v != id {
			out = append(out, v)
		}
	}
	return out
}
