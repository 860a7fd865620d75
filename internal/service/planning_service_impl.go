package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/dmarkov/sprintwise/internal/db"
	"github.com/dmarkov/sprintwise/internal/domain"
	"github.com/dmarkov/sprintwise/internal/engine"
	"github.com/dmarkov/sprintwise/internal/repository"
)

type planningService struct {
	requirements repository.RequirementRepo
	pools        repository.PoolRepo
	uow          db.UnitOfWork
}

func NewPlanningService(requirements repository.RequirementRepo, pools repository.PoolRepo, uow db.UnitOfWork) PlanningService {
	return &planningService{requirements: requirements, pools: pools, uow: uow}
}

// loadBatch reads the stored working set and rebuilds the engine state.
// Scores are recomputed on load, so stale persisted scores never leak.
func loadBatch(ctx context.Context, requirements repository.RequirementRepo, pools repository.PoolRepo) (*engine.Batch, error) {
	items, err := requirements.List(ctx)
	if err != nil {
		return nil, err
	}
	ps, err := pools.List(ctx)
	if err != nil {
		return nil, err
	}
	return engine.NewBatch(items, ps), nil
}

// persistBatch writes the full engine state back within the caller's
// transaction. Slot positions come from each pool's ordered item set.
func persistBatch(ctx context.Context, tx db.DBTX, b *engine.Batch) error {
	pools := b.Pools()
	slots := make(map[string]int)
	for _, p := range pools {
		for i, id := range p.ItemIDs {
			slots[id] = i
		}
	}
	if err := repository.NewSQLitePoolRepo(tx).SaveAll(ctx, pools); err != nil {
		return err
	}
	return repository.NewSQLiteRequirementRepo(tx).SaveAll(ctx, b.Requirements(), slots)
}

// mutate runs fn against the current batch and persists the result in a
// single transaction. A returned error rolls everything back.
func (s *planningService) mutate(ctx context.Context, fn func(b *engine.Batch) error) error {
	return s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		b, err := loadBatch(ctx, repository.NewSQLiteRequirementRepo(tx), repository.NewSQLitePoolRepo(tx))
		if err != nil {
			return err
		}
		if err := fn(b); err != nil {
			return err
		}
		return persistBatch(ctx, tx, b)
	})
}

func (s *planningService) Board(ctx context.Context) (*BoardState, error) {
	b, err := loadBatch(ctx, s.requirements, s.pools)
	if err != nil {
		return nil, err
	}
	state := &BoardState{
		Ready:    b.ReadyUnscheduled(),
		NotReady: b.NotReadyUnscheduled(),
	}
	for _, p := range b.Pools() {
		state.Pools = append(state.Pools, PoolView{
			Pool:         p,
			Items:        b.PoolItems(p.ID),
			UsedDays:     b.UsedDays(p.ID),
			NetCapacity:  p.NetCapacityDays(),
			OverCapacity: b.IsOverCapacity(p.ID),
		})
	}
	return state, nil
}

func (s *planningService) ListRequirements(ctx context.Context) ([]domain.Requirement, error) {
	b, err := loadBatch(ctx, s.requirements, s.pools)
	if err != nil {
		return nil, err
	}
	return b.Requirements(), nil
}

func (s *planningService) GetRequirement(ctx context.Context, id string) (domain.Requirement, error) {
	b, err := loadBatch(ctx, s.requirements, s.pools)
	if err != nil {
		return domain.Requirement{}, err
	}
	r, ok := b.Requirement(id)
	if !ok {
		return domain.Requirement{}, &engine.ItemNotFoundError{ItemID: id}
	}
	return r, nil
}

func validateRequirementInput(in RequirementInput) error {
	if in.Title == "" {
		return &engine.ValidationError{Field: "title", Reason: "is required"}
	}
	if in.EffortDays <= 0 {
		return &engine.ValidationError{Field: "effort_days", Reason: "must be positive"}
	}
	if in.Readiness != "" && !domain.ValidReadiness[in.Readiness] {
		return &engine.ValidationError{Field: "readiness", Reason: "unknown value " + in.Readiness}
	}
	return nil
}

func applyInput(r *domain.Requirement, in RequirementInput) {
	r.Title = in.Title
	r.BusinessValue = domain.BusinessValueTier(in.BusinessValue)
	r.TimeCriticality = domain.TimeCriticality(in.TimeCriticality)
	r.HardDeadline = in.HardDeadline
	r.DeadlineDate = in.DeadlineDate
	r.EffortDays = in.EffortDays
	r.Readiness = domain.Readiness(in.Readiness)
}

func (s *planningService) AddRequirement(ctx context.Context, in RequirementInput) (domain.Requirement, error) {
	if err := validateRequirementInput(in); err != nil {
		return domain.Requirement{}, err
	}

	now := time.Now().UTC()
	r := domain.Requirement{
		ID:        uuid.New().String(),
		CreatedAt: now,
		UpdatedAt: now,
	}
	applyInput(&r, in)

	var created domain.Requirement
	err := s.mutate(ctx, func(b *engine.Batch) error {
		created = b.AddRequirement(r)
		return nil
	})
	if err != nil {
		return domain.Requirement{}, err
	}
	return created, nil
}

func (s *planningService) UpdateRequirement(ctx context.Context, id string, in RequirementInput) (domain.Requirement, error) {
	if err := validateRequirementInput(in); err != nil {
		return domain.Requirement{}, err
	}

	var updated domain.Requirement
	err := s.mutate(ctx, func(b *engine.Batch) error {
		existing, ok := b.Requirement(id)
		if !ok {
			return &engine.ItemNotFoundError{ItemID: id}
		}
		applyInput(&existing, in)
		if err := b.UpdateRequirement(existing); err != nil {
			return err
		}
		updated, _ = b.Requirement(id)
		return nil
	})
	if err != nil {
		return domain.Requirement{}, err
	}
	return updated, nil
}

func (s *planningService) DeleteRequirement(ctx context.Context, id string) error {
	return s.mutate(ctx, func(b *engine.Batch) error {
		return b.DeleteRequirement(id)
	})
}

func (s *planningService) ListPools(ctx context.Context) ([]domain.SprintPool, error) {
	b, err := loadBatch(ctx, s.requirements, s.pools)
	if err != nil {
		return nil, err
	}
	return b.Pools(), nil
}

func (s *planningService) CreatePool(ctx context.Context, cfg engine.PoolConfig) (domain.SprintPool, error) {
	var created domain.SprintPool
	err := s.mutate(ctx, func(b *engine.Batch) error {
		var err error
		created, err = b.CreatePool(uuid.New().String(), cfg)
		return err
	})
	if err != nil {
		return domain.SprintPool{}, err
	}
	return created, nil
}

func (s *planningService) UpdatePool(ctx context.Context, id string, cfg engine.PoolConfig) (domain.SprintPool, error) {
	var updated domain.SprintPool
	err := s.mutate(ctx, func(b *engine.Batch) error {
		if err := b.UpdatePool(id, cfg); err != nil {
			return err
		}
		updated, _ = b.Pool(id)
		return nil
	})
	if err != nil {
		return domain.SprintPool{}, err
	}
	return updated, nil
}

func (s *planningService) DeletePool(ctx context.Context, id string) error {
	return s.mutate(ctx, func(b *engine.Batch) error {
		return b.DeletePool(id)
	})
}

func (s *planningService) Move(ctx context.Context, itemID, to string) error {
	return s.mutate(ctx, func(b *engine.Batch) error {
		source := domain.UnscheduledPoolID
		if r, ok := b.Requirement(itemID); ok {
			source = r.PoolID
		}
		return b.Move(itemID, source, to)
	})
}

func (s *planningService) MoveFrom(ctx context.Context, itemID, from, to string) error {
	return s.mutate(ctx, func(b *engine.Batch) error {
		return b.Move(itemID, from, to)
	})
}
