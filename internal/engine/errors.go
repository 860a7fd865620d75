package engine

import "fmt"

// The rejection taxonomy is small and closed. Every fallible engine
// operation returns one of these types; none of them is fatal to the
// batch, and state is untouched whenever one is returned.

// ItemNotFoundError reports that a requirement was absent from the
// location a move named as its source.
type ItemNotFoundError struct {
	ItemID   string
	Location string
}

func (e *ItemNotFoundError) Error() string {
	loc := e.Location
	if loc == "" {
		loc = "unscheduled"
	}
	return fmt.Sprintf("requirement %s not found in %s", e.ItemID, loc)
}

// NotReadyError reports a failed readiness gate: the requirement has not
// been evaluated enough to enter a sprint pool.
type NotReadyError struct {
	ItemID    string
	Readiness string
}

func (e *NotReadyError) Error() string {
	return fmt.Sprintf("requirement %s is %s and cannot be scheduled", e.ItemID, e.Readiness)
}

// CapacityExceededError reports that an assignment would push a pool
// past its net capacity. OverflowDays carries the overshoot so callers
// can say "over by N days".
type CapacityExceededError struct {
	PoolID       string
	OverflowDays int
}

func (e *CapacityExceededError) Error() string {
	return fmt.Sprintf("pool %s capacity exceeded by %d days", e.PoolID, e.OverflowDays)
}

// ValidationError reports malformed pool configuration or a reference to
// a pool that does not exist. Rejected at call time, never clamped.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Reason
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}
