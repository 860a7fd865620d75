package domain

import "time"

// SprintPool is a time-boxed capacity container. The date range is
// opaque to the engine and only rendered. ItemIDs holds assigned
// requirement IDs in assignment order.
type SprintPool struct {
	ID        string
	Name      string
	StartDate string
	EndDate   string

	TotalCapacityDays int
	BugReserve        int
	RefactorReserve   int
	OtherReserve      int

	ItemIDs []string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// ReservePct returns the summed reserve percentage.
func (p *SprintPool) ReservePct() int {
	return p.BugReserve + p.RefactorReserve + p.OtherReserve
}

// NetCapacityDays is the true assignable ceiling: total capacity minus
// the reserved share, floored.
func (p *SprintPool) NetCapacityDays() int {
	return p.TotalCapacityDays * (100 - p.ReservePct()) / 100
}

// Contains reports whether the given requirement ID is assigned to the pool.
func (p *SprintPool) Contains(itemID string) bool {
	for _, id := range p.ItemIDs {
		if id == itemID {
			return true
		}
	}
	return false
}
