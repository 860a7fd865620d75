package repository

import (
	"context"

	"github.com/dmarkov/sprintwise/internal/domain"
)

// RequirementRepo persists the requirement side of the working batch.
//
// SaveAll replaces the stored set wholesale: the engine owns batch state
// in memory and the persistence layer serializes the full batch after
// each committed mutation. slots maps a requirement ID to its position
// within its pool's ordered set (0 for unscheduled items).
type RequirementRepo interface {
	List(ctx context.Context) ([]domain.Requirement, error)
	SaveAll(ctx context.Context, items []domain.Requirement, slots map[string]int) error
}

// PoolRepo persists sprint pools. List returns pools with their ItemIDs
// reassembled in slot order.
type PoolRepo interface {
	List(ctx context.Context) ([]domain.SprintPool, error)
	SaveAll(ctx context.Context, pools []domain.SprintPool) error
}
