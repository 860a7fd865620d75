package engine

import (
	"github.com/dmarkov/sprintwise/internal/domain"
)

// Batch is the whole working set: every requirement across every pool
// plus the unscheduled collection. It is the single owner of "where an
// item lives"; all mutations go through its methods, and each committed
// mutation renormalizes scores over the full batch.
//
// Batch assumes the records handed to NewBatch are structurally
// consistent (no item referenced by two locations, no pool referencing a
// missing item); the importer repairs batches before they get here.
type Batch struct {
	items   []*domain.Requirement
	pools   []*domain.SprintPool
	nextSeq int
}

// NewBatch builds a batch from stored records. Scores are recomputed
// fresh; the formula is the single source of truth, so persisted score
// fields are discarded.
func NewBatch(items []domain.Requirement, pools []domain.SprintPool) *Batch {
	b := &Batch{}
	for i := range pools {
		p := pools[i]
		p.ItemIDs = append([]string(nil), pools[i].ItemIDs...)
		b.pools = append(b.pools, &p)
	}
	for i := range items {
		r := items[i]
		b.items = append(b.items, &r)
		if r.Seq >= b.nextSeq {
			b.nextSeq = r.Seq + 1
		}
	}
	b.renormalize()
	return b
}

func (b *Batch) item(id string) *domain.Requirement {
	for _, r := range b.items {
		if r.ID == id {
			return r
		}
	}
	return nil
}

func (b *Batch) pool(id string) *domain.SprintPool {
	for _, p := range b.pools {
		if p.ID == id {
			return p
		}
	}
	return nil
}

// Requirement returns a copy of the requirement with the given ID.
func (b *Batch) Requirement(id string) (domain.Requirement, bool) {
	if r := b.item(id); r != nil {
		return *r, true
	}
	return domain.Requirement{}, false
}

// Pool returns a copy of the pool with the given ID.
func (b *Batch) Pool(id string) (domain.SprintPool, bool) {
	if p := b.pool(id); p != nil {
		cp := *p
		cp.ItemIDs = append([]string(nil), p.ItemIDs...)
		return cp, true
	}
	return domain.SprintPool{}, false
}

// Requirements returns a copy of every requirement in the batch, in
// creation order.
func (b *Batch) Requirements() []domain.Requirement {
	out := make([]domain.Requirement, 0, len(b.items))
	for _, r := range b.items {
		out = append(out, *r)
	}
	return out
}

// Pools returns a copy of every pool in creation order.
func (b *Batch) Pools() []domain.SprintPool {
	out := make([]domain.SprintPool, 0, len(b.pools))
	for _, p := range b.pools {
		cp := *p
		cp.ItemIDs = append([]string(nil), p.ItemIDs...)
		out = append(out, cp)
	}
	return out
}

// PoolItems returns the requirements assigned to a pool in assignment order.
func (b *Batch) PoolItems(poolID string) []domain.Requirement {
	p := b.pool(poolID)
	if p == nil {
		return nil
	}
	out := make([]domain.Requirement, 0, len(p.ItemIDs))
	for _, id := range p.ItemIDs {
		if r := b.item(id); r != nil {
			out = append(out, *r)
		}
	}
	return out
}

// UsedDays sums the effort of the requirements assigned to a pool.
func (b *Batch) UsedDays(poolID string) int {
	p := b.pool(poolID)
	if p == nil {
		return 0
	}
	used := 0
	for _, id := range p.ItemIDs {
		if r := b.item(id); r != nil {
			used += r.EffortDays
		}
	}
	return used
}

// IsOverCapacity reports whether a pool currently holds more effort than
// its net capacity. Pools can legitimately be over capacity after a
// reserve or capacity edit; the flag lets callers warn without ejecting.
func (b *Batch) IsOverCapacity(poolID string) bool {
	p := b.pool(poolID)
	if p == nil {
		return false
	}
	return b.UsedDays(poolID) > p.NetCapacityDays()
}

// ReadyUnscheduled returns the assignable unscheduled requirements in
// canonical presentation order.
func (b *Batch) ReadyUnscheduled() []domain.Requirement {
	ready, _ := PartitionReady(b.unscheduled())
	SortUnscheduled(ready)
	return copyValues(ready)
}

// NotReadyUnscheduled returns unscheduled requirements still awaiting
// evaluation, in creation order. They always render after the ready
// partition regardless of score.
func (b *Batch) NotReadyUnscheduled() []domain.Requirement {
	_, notReady := PartitionReady(b.unscheduled())
	return copyValues(notReady)
}

func (b *Batch) unscheduled() []*domain.Requirement {
	var out []*domain.Requirement
	for _, r := range b.items {
		if r.Unscheduled() {
			out = append(out, r)
		}
	}
	return out
}

// renormalize recomputes scores over the whole batch. The normalizer is
// a pure function over a snapshot; location state stays untouched.
func (b *Batch) renormalize() {
	values := make([]domain.Requirement, len(b.items))
	for i, r := range b.items {
		values[i] = *r
	}
	scored := Normalize(values)
	for i, r := range b.items {
		r.RawScore = scored[i].RawScore
		r.DisplayScore = scored[i].DisplayScore
		r.StarTier = scored[i].StarTier
	}
}

func copyValues(items []*domain.Requirement) []domain.Requirement {
	out := make([]domain.Requirement, 0, len(items))
	for _, r := range items {
		out = append(out, *r)
	}
	return out
}
