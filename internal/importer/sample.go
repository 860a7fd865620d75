package importer

import (
	"time"

	"github.com/dmarkov/sprintwise/internal/domain"
)

func date(s string) *time.Time {
	t, _ := time.Parse(dateLayout, s)
	return &t
}

// SampleBatch returns a seed dataset for first-time users: three empty
// sprint pools and a backlog of unscheduled requirements spanning every
// value tier, time criticality, and readiness state.
func SampleBatch() ([]domain.Requirement, []domain.SprintPool) {
	now := time.Now().UTC()

	pools := []domain.SprintPool{
		{ID: "SPRINT-01", Name: "Sprint 1", StartDate: "2026-09-01", EndDate: "2026-09-30", TotalCapacityDays: 200, BugReserve: 10, RefactorReserve: 15, OtherReserve: 5, CreatedAt: now, UpdatedAt: now},
		{ID: "SPRINT-02", Name: "Sprint 2", StartDate: "2026-10-01", EndDate: "2026-10-31", TotalCapacityDays: 200, BugReserve: 10, RefactorReserve: 15, OtherReserve: 5, CreatedAt: now, UpdatedAt: now},
		{ID: "SPRINT-03", Name: "Sprint 3", StartDate: "2026-11-01", EndDate: "2026-11-30", TotalCapacityDays: 200, BugReserve: 10, RefactorReserve: 15, OtherReserve: 5, CreatedAt: now, UpdatedAt: now},
	}

	type seed struct {
		title    string
		bv       domain.BusinessValueTier
		tc       domain.TimeCriticality
		deadline string
		hard     bool
		effort   int
		ready    domain.Readiness
	}

	seeds := []seed{
		{"UK retail channel adaptation", domain.ValueStrategicPlatform, domain.TimeMonthHardWindow, "2026-09-30", true, 45, domain.ReadinessPlanComplete},
		{"Korea authorized retail rollout", domain.ValueStrategicPlatform, domain.TimeMonthHardWindow, "2026-10-15", true, 50, domain.ReadinessWorkloadEvaluated},
		{"Cashback settlement flow", domain.ValueCoreLever, domain.TimeQuarterWindow, "2026-10-25", false, 35, domain.ReadinessWorkloadEvaluated},
		{"Bulk purchase-order approvals", domain.ValueCoreLever, domain.TimeQuarterWindow, "2026-11-20", false, 28, domain.ReadinessPlanComplete},
		{"Partial refusal on inbound orders", domain.ValueCoreLever, domain.TimeAnytime, "", false, 18, domain.ReadinessWorkloadEvaluated},
		{"Unified receipt formatting", domain.ValueModerate, domain.TimeAnytime, "", false, 20, domain.ReadinessWorkloadEvaluated},
		{"Promotion policy calendar", domain.ValueModerate, domain.TimeQuarterWindow, "2026-11-30", false, 12, domain.ReadinessPlanComplete},
		{"Defective stock return-to-warehouse", domain.ValueModerate, domain.TimeAnytime, "", false, 15, domain.ReadinessWorkloadEvaluated},
		{"Inventory turnover dashboard", domain.ValueModerate, domain.TimeAnytime, "", false, 25, domain.ReadinessWorkloadEvaluated},
		{"Store allowance reconciliation", domain.ValueLocal, domain.TimeAnytime, "", false, 8, domain.ReadinessWorkloadEvaluated},
		{"Gift card support", domain.ValueLocal, domain.TimeAnytime, "", false, 15, domain.ReadinessWorkloadEvaluated},
		{"Serial number trace lookup", domain.ValueLocal, domain.TimeAnytime, "", false, 4, domain.ReadinessWorkloadEvaluated},
		{"Partial consumer refunds", domain.ValueLocal, domain.TimeAnytime, "", false, 5, domain.ReadinessWorkloadEvaluated},
		{"Loyalty points system upgrade", domain.ValueModerate, domain.TimeAnytime, "", false, 10, domain.ReadinessNotEvaluated},
		{"Supplier collaboration platform", domain.ValueCoreLever, domain.TimeAnytime, "", false, 40, domain.ReadinessNotEvaluated},
		{"Support chatbot pilot", domain.ValueModerate, domain.TimeAnytime, "", false, 12, domain.ReadinessNotEvaluated},
	}

	items := make([]domain.Requirement, 0, len(seeds))
	for i, s := range seeds {
		r := domain.Requirement{
			ID:              newSampleID(i),
			Title:           s.title,
			BusinessValue:   s.bv,
			TimeCriticality: s.tc,
			HardDeadline:    s.hard,
			EffortDays:      s.effort,
			Readiness:       s.ready,
			PoolID:          domain.UnscheduledPoolID,
			Seq:             i,
			CreatedAt:       now,
			UpdatedAt:       now,
		}
		if s.deadline != "" {
			r.DeadlineDate = date(s.deadline)
		}
		items = append(items, r)
	}
	return items, pools
}

func newSampleID(i int) string {
	const digits = "0123456789"
	return "REQ-" + string([]byte{digits[(i+1)/100%10], digits[(i+1)/10%10], digits[(i+1)%10]})
}
