package service

import (
	"context"
	"time"

	"github.com/dmarkov/sprintwise/internal/domain"
	"github.com/dmarkov/sprintwise/internal/engine"
	"github.com/dmarkov/sprintwise/internal/importer"
)

// RequirementInput carries the caller-editable requirement fields.
type RequirementInput struct {
	Title           string
	BusinessValue   string
	TimeCriticality string
	HardDeadline    bool
	DeadlineDate    *time.Time
	EffortDays      int
	Readiness       string
}

// PoolView pairs a pool with its assigned items and capacity figures.
type PoolView struct {
	Pool         domain.SprintPool
	Items        []domain.Requirement
	UsedDays     int
	NetCapacity  int
	OverCapacity bool
}

// BoardState is a full snapshot of the planning board.
type BoardState struct {
	Pools    []PoolView
	Ready    []domain.Requirement // unscheduled and schedulable, canonical order
	NotReady []domain.Requirement // unscheduled, workload not evaluated
}

type PlanningService interface {
	Board(ctx context.Context) (*BoardState, error)

	ListRequirements(ctx context.Context) ([]domain.Requirement, error)
	GetRequirement(ctx context.Context, id string) (domain.Requirement, error)
	AddRequirement(ctx context.Context, in RequirementInput) (domain.Requirement, error)
	UpdateRequirement(ctx context.Context, id string, in RequirementInput) (domain.Requirement, error)
	DeleteRequirement(ctx context.Context, id string) error

	ListPools(ctx context.Context) ([]domain.SprintPool, error)
	CreatePool(ctx context.Context, cfg engine.PoolConfig) (domain.SprintPool, error)
	UpdatePool(ctx context.Context, id string, cfg engine.PoolConfig) (domain.SprintPool, error)
	DeletePool(ctx context.Context, id string) error

	// Move transfers a requirement to a pool or back to the unscheduled
	// set, from wherever it currently is. MoveFrom additionally pins the
	// expected source location; a mismatch fails the move untouched.
	Move(ctx context.Context, itemID, to string) error
	MoveFrom(ctx context.Context, itemID, from, to string) error
}

// ImportSummary holds the outcome of a batch import.
type ImportSummary struct {
	RequirementCount int
	PoolCount        int
	Report           importer.RepairReport
}

type ImportService interface {
	ImportFile(ctx context.Context, filePath string) (*ImportSummary, error)
	LoadSample(ctx context.Context) (*ImportSummary, error)
	ExportFile(ctx context.Context, filePath string) error
}
