package importer

import (
	"time"

	"github.com/dmarkov/sprintwise/internal/domain"
	"github.com/google/uuid"
)

// RepairReport records the referential-integrity fixes applied during
// conversion. The engine assumes a structurally consistent batch, so the
// importer repairs rather than rejects.
type RepairReport struct {
	DanglingPoolRefs int // requirements pointing at a pool not in the file
	UnreadyUnpooled  int // not-evaluated requirements demoted to unscheduled
}

// Repaired reports whether any fix was applied.
func (r RepairReport) Repaired() bool {
	return r.DanglingPoolRefs > 0 || r.UnreadyUnpooled > 0
}

// Convert transforms a validated BatchSchema into domain records ready
// for the engine. Call ValidateBatchSchema first; Convert assumes the
// schema is valid. Missing IDs are minted, dangling pool references are
// dropped to unscheduled, and not-evaluated requirements never enter a
// pool (the readiness gate would have blocked the assignment).
func Convert(schema *BatchSchema) ([]domain.Requirement, []domain.SprintPool, RepairReport) {
	now := time.Now().UTC()
	var report RepairReport

	pools := make([]domain.SprintPool, 0, len(schema.Pools))
	poolIndex := make(map[string]int)
	for _, p := range schema.Pools {
		id := p.ID
		if id == "" {
			id = uuid.New().String()
		}
		poolIndex[id] = len(pools)
		pools = append(pools, domain.SprintPool{
			ID:                id,
			Name:              p.Name,
			StartDate:         p.StartDate,
			EndDate:           p.EndDate,
			TotalCapacityDays: p.TotalCapacityDays,
			BugReserve:        p.BugReserve,
			RefactorReserve:   p.RefactorReserve,
			OtherReserve:      p.OtherReserve,
			CreatedAt:         now,
			UpdatedAt:         now,
		})
	}

	items := make([]domain.Requirement, 0, len(schema.Requirements))
	for seq, r := range schema.Requirements {
		id := r.ID
		if id == "" {
			id = uuid.New().String()
		}

		readiness := domain.Readiness(r.Readiness)
		if r.Readiness == "" {
			readiness = domain.ReadinessNotEvaluated
		}

		poolID := r.PoolID
		if poolID != domain.UnscheduledPoolID {
			if _, ok := poolIndex[poolID]; !ok {
				poolID = domain.UnscheduledPoolID
				report.DanglingPoolRefs++
			} else if !readiness.Schedulable() {
				poolID = domain.UnscheduledPoolID
				report.UnreadyUnpooled++
			}
		}

		var deadline *time.Time
		if r.DeadlineDate != nil {
			if t, err := time.Parse(dateLayout, *r.DeadlineDate); err == nil {
				deadline = &t
			}
		}

		items = append(items, domain.Requirement{
			ID:              id,
			Title:           r.Title,
			BusinessValue:   domain.BusinessValueTier(r.BusinessValue),
			TimeCriticality: domain.TimeCriticality(r.TimeCriticality),
			HardDeadline:    r.HardDeadline,
			DeadlineDate:    deadline,
			EffortDays:      r.EffortDays,
			Readiness:       readiness,
			PoolID:          poolID,
			Seq:             seq,
			CreatedAt:       now,
			UpdatedAt:       now,
		})

		if poolID != domain.UnscheduledPoolID {
			i := poolIndex[poolID]
			pools[i].ItemIDs = append(pools[i].ItemIDs, id)
		}
	}

	return items, pools, report
}

// ExportSchema converts domain records back into the import file shape.
// Pool membership order is taken from each pool's ordered item set.
func ExportSchema(items []domain.Requirement, pools []domain.SprintPool) *BatchSchema {
	schema := &BatchSchema{}
	for _, p := range pools {
		schema.Pools = append(schema.Pools, PoolImport{
			ID:                p.ID,
			Name:              p.Name,
			StartDate:         p.StartDate,
			EndDate:           p.EndDate,
			TotalCapacityDays: p.TotalCapacityDays,
			BugReserve:        p.BugReserve,
			RefactorReserve:   p.RefactorReserve,
			OtherReserve:      p.OtherReserve,
		})
	}
	emit := func(r domain.Requirement) {
		var deadline *string
		if r.DeadlineDate != nil {
			s := r.DeadlineDate.Format(dateLayout)
			deadline = &s
		}
		schema.Requirements = append(schema.Requirements, RequirementImport{
			ID:              r.ID,
			Title:           r.Title,
			BusinessValue:   string(r.BusinessValue),
			TimeCriticality: string(r.TimeCriticality),
			HardDeadline:    r.HardDeadline,
			DeadlineDate:    deadline,
			EffortDays:      r.EffortDays,
			Readiness:       string(r.Readiness),
			PoolID:          r.PoolID,
		})
	}

	// Unscheduled first in creation order, then each pool's members in
	// slot order so that a reimport reconstructs the same pool ordering.
	byID := make(map[string]domain.Requirement, len(items))
	for _, r := range items {
		if r.Unscheduled() {
			emit(r)
		} else {
			byID[r.ID] = r
		}
	}
	for _, p := range pools {
		for _, id := range p.ItemIDs {
			if r, ok := byID[id]; ok {
				emit(r)
			}
		}
	}
	return schema
}
