package domain

import "time"

// UnscheduledPoolID is the sentinel location for requirements that are
// not assigned to any sprint pool.
const UnscheduledPoolID = ""

// Requirement is the schedulable unit of work. The three score fields
// are derived by the engine from the whole working batch and are never
// set by callers directly.
type Requirement struct {
	ID    string
	Title string

	// Priority inputs
	BusinessValue   BusinessValueTier
	TimeCriticality TimeCriticality
	HardDeadline    bool
	DeadlineDate    *time.Time // display only, never scored
	EffortDays      int
	Readiness       Readiness

	// Derived scores (engine-owned)
	RawScore     int
	DisplayScore int
	StarTier     int

	// Location: UnscheduledPoolID or a pool ID. Exactly one at any time.
	PoolID string

	// Seq preserves creation order; the unscheduled sort falls back to
	// it when every other key ties.
	Seq int

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Unscheduled reports whether the requirement currently sits outside
// every pool.
func (r *Requirement) Unscheduled() bool {
	return r.PoolID == UnscheduledPoolID
}

// DisplayID returns a short identifier for rendering. It truncates the
// UUID to 8 characters.
func (r *Requirement) DisplayID() string {
	if len(r.ID) >= 8 {
		return r.ID[:8]
	}
	return r.ID
}
