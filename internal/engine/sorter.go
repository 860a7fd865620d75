package engine

import (
	"sort"

	"github.com/dmarkov/sprintwise/internal/domain"
)

// SortUnscheduled orders unscheduled requirements by the deterministic
// canonical rules:
// 1. Display score: higher first
// 2. Hard deadline: deadlined items first
// 3. Time criticality weight: higher first
// 4. Effort: smaller first
// 5. Stable fallback to creation order
func SortUnscheduled(items []*domain.Requirement) {
	sort.SliceStable(items, func(i, j int) bool {
		a, b := items[i], items[j]

		if a.DisplayScore != b.DisplayScore {
			return a.DisplayScore > b.DisplayScore
		}

		if a.HardDeadline != b.HardDeadline {
			return a.HardDeadline
		}

		tcA, tcB := TimeCriticalityWeight(a.TimeCriticality), TimeCriticalityWeight(b.TimeCriticality)
		if tcA != tcB {
			return tcA > tcB
		}

		if a.EffortDays != b.EffortDays {
			return a.EffortDays < b.EffortDays
		}

		return a.Seq < b.Seq
	})
}

// PartitionReady splits unscheduled requirements into the sortable,
// assignable subset and the "not ready" remainder. Not-ready items are
// always presented after the ready partition regardless of score.
func PartitionReady(items []*domain.Requirement) (ready, notReady []*domain.Requirement) {
	for _, r := range items {
		if r.Readiness == domain.ReadinessNotEvaluated {
			notReady = append(notReady, r)
		} else {
			ready = append(ready, r)
		}
	}
	return ready, notReady
}
