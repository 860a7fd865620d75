package domain

type BusinessValueTier string

const (
	ValueLocal             BusinessValueTier = "local"
	ValueModerate          BusinessValueTier = "moderate"
	ValueCoreLever         BusinessValueTier = "core-lever"
	ValueStrategicPlatform BusinessValueTier = "strategic-platform"
)

type TimeCriticality string

const (
	TimeAnytime         TimeCriticality = "anytime"
	TimeQuarterWindow   TimeCriticality = "quarter-window"
	TimeMonthHardWindow TimeCriticality = "month-hard-window"
)

type Readiness string

const (
	ReadinessNotEvaluated      Readiness = "not-evaluated"
	ReadinessWorkloadEvaluated Readiness = "workload-evaluated"
	ReadinessPlanComplete      Readiness = "plan-complete"
)

// Schedulable reports whether the readiness gate allows assignment
// into a sprint pool.
func (r Readiness) Schedulable() bool {
	return r == ReadinessWorkloadEvaluated || r == ReadinessPlanComplete
}

// ValidBusinessValueTiers is the canonical set of accepted tier strings.
var ValidBusinessValueTiers = map[string]bool{
	"local": true, "moderate": true, "core-lever": true, "strategic-platform": true,
}

// ValidTimeCriticalities is the canonical set of accepted time window strings.
var ValidTimeCriticalities = map[string]bool{
	"anytime": true, "quarter-window": true, "month-hard-window": true,
}

// ValidReadiness is the canonical set of accepted readiness strings.
var ValidReadiness = map[string]bool{
	"not-evaluated": true, "workload-evaluated": true, "plan-complete": true,
}
