package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmarkov/sprintwise/internal/domain"
	"github.com/dmarkov/sprintwise/internal/engine"
	"github.com/dmarkov/sprintwise/internal/repository"
	"github.com/dmarkov/sprintwise/internal/testutil"
)

func newTestServices(t *testing.T) (PlanningService, ImportService) {
	t.Helper()
	database := testutil.NewTestDB(t)
	reqRepo := repository.NewSQLiteRequirementRepo(database)
	poolRepo := repository.NewSQLitePoolRepo(database)
	uow := testutil.NewTestUoW(database)
	return NewPlanningService(reqRepo, poolRepo, uow),
		NewImportService(reqRepo, poolRepo, uow)
}

func addReq(t *testing.T, svc PlanningService, in RequirementInput) domain.Requirement {
	t.Helper()
	r, err := svc.AddRequirement(context.Background(), in)
	require.NoError(t, err)
	return r
}

func basicInput(title string) RequirementInput {
	return RequirementInput{
		Title:           title,
		BusinessValue:   string(domain.ValueModerate),
		TimeCriticality: string(domain.TimeAnytime),
		EffortDays:      5,
		Readiness:       string(domain.ReadinessWorkloadEvaluated),
	}
}

func TestPlanningService_RequirementLifecycle(t *testing.T) {
	svc, _ := newTestServices(t)
	ctx := context.Background()

	r := addReq(t, svc, basicInput("Checkout revamp"))
	assert.NotEmpty(t, r.ID)
	assert.True(t, r.Unscheduled())
	assert.Equal(t, 60, r.DisplayScore) // single item in batch

	in := basicInput("Checkout revamp v2")
	in.BusinessValue = string(domain.ValueStrategicPlatform)
	updated, err := svc.UpdateRequirement(ctx, r.ID, in)
	require.NoError(t, err)
	assert.Equal(t, "Checkout revamp v2", updated.Title)
	assert.Equal(t, domain.ValueStrategicPlatform, updated.BusinessValue)

	got, err := svc.GetRequirement(ctx, r.ID)
	require.NoError(t, err)
	assert.Equal(t, "Checkout revamp v2", got.Title)

	require.NoError(t, svc.DeleteRequirement(ctx, r.ID))
	_, err = svc.GetRequirement(ctx, r.ID)
	var notFound *engine.ItemNotFoundError
	assert.ErrorAs(t, err, &notFound)
}

func TestPlanningService_AddRequirement_Validation(t *testing.T) {
	svc, _ := newTestServices(t)
	ctx := context.Background()

	var vErr *engine.ValidationError

	_, err := svc.AddRequirement(ctx, RequirementInput{EffortDays: 5})
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "title", vErr.Field)

	_, err = svc.AddRequirement(ctx, RequirementInput{Title: "X", EffortDays: 0})
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "effort_days", vErr.Field)

	in := basicInput("X")
	in.Readiness = "shipped"
	_, err = svc.AddRequirement(ctx, in)
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "readiness", vErr.Field)
}

func TestPlanningService_ScoresRescaleAcrossBatch(t *testing.T) {
	svc, _ := newTestServices(t)
	ctx := context.Background()

	low := basicInput("Low")
	low.BusinessValue = string(domain.ValueLocal)
	low.EffortDays = 40
	addReq(t, svc, low)

	high := basicInput("High")
	high.BusinessValue = string(domain.ValueStrategicPlatform)
	high.TimeCriticality = string(domain.TimeMonthHardWindow)
	high.HardDeadline = true
	high.EffortDays = 3
	addReq(t, svc, high)

	items, err := svc.ListRequirements(ctx)
	require.NoError(t, err)
	require.Len(t, items, 2)

	scores := map[string]int{}
	for _, r := range items {
		scores[r.Title] = r.DisplayScore
	}
	assert.Equal(t, 10, scores["Low"])
	assert.Equal(t, 100, scores["High"])
}

func TestPlanningService_MovePersists(t *testing.T) {
	svc, _ := newTestServices(t)
	ctx := context.Background()

	r := addReq(t, svc, basicInput("Payments"))
	pool, err := svc.CreatePool(ctx, engine.PoolConfig{Name: "Sprint 1", TotalCapacityDays: 50})
	require.NoError(t, err)

	require.NoError(t, svc.Move(ctx, r.ID, pool.ID))

	board, err := svc.Board(ctx)
	require.NoError(t, err)
	require.Len(t, board.Pools, 1)
	require.Len(t, board.Pools[0].Items, 1)
	assert.Equal(t, r.ID, board.Pools[0].Items[0].ID)
	assert.Equal(t, 5, board.Pools[0].UsedDays)
	assert.Empty(t, board.Ready)
}

func TestPlanningService_MoveFromChecksSource(t *testing.T) {
	svc, _ := newTestServices(t)
	ctx := context.Background()

	r := addReq(t, svc, basicInput("Payments"))
	first, err := svc.CreatePool(ctx, engine.PoolConfig{Name: "Sprint 1", TotalCapacityDays: 50})
	require.NoError(t, err)
	second, err := svc.CreatePool(ctx, engine.PoolConfig{Name: "Sprint 2", TotalCapacityDays: 50})
	require.NoError(t, err)
	require.NoError(t, svc.Move(ctx, r.ID, first.ID))

	// The item sits in Sprint 1, so naming the unscheduled set as the
	// source must fail rather than fall back to auto-resolution.
	err = svc.MoveFrom(ctx, r.ID, domain.UnscheduledPoolID, second.ID)
	var notFound *engine.ItemNotFoundError
	require.ErrorAs(t, err, &notFound)

	board, err := svc.Board(ctx)
	require.NoError(t, err)
	for _, p := range board.Pools {
		if p.Pool.ID == first.ID {
			require.Len(t, p.Items, 1)
			assert.Equal(t, r.ID, p.Items[0].ID)
		} else {
			assert.Empty(t, p.Items)
		}
	}

	// With the true source the pinned move goes through.
	require.NoError(t, svc.MoveFrom(ctx, r.ID, first.ID, second.ID))
}

func TestPlanningService_MoveRejectionLeavesStateUntouched(t *testing.T) {
	svc, _ := newTestServices(t)
	ctx := context.Background()

	in := basicInput("Big one")
	in.EffortDays = 80
	r := addReq(t, svc, in)
	pool, err := svc.CreatePool(ctx, engine.PoolConfig{Name: "Sprint 1", TotalCapacityDays: 50})
	require.NoError(t, err)

	err = svc.Move(ctx, r.ID, pool.ID)
	var capErr *engine.CapacityExceededError
	require.ErrorAs(t, err, &capErr)
	assert.Equal(t, 30, capErr.OverflowDays)

	// Nothing was committed.
	board, err := svc.Board(ctx)
	require.NoError(t, err)
	assert.Empty(t, board.Pools[0].Items)
	require.Len(t, board.Ready, 1)
	assert.True(t, board.Ready[0].Unscheduled())
}

func TestPlanningService_ReadinessGate(t *testing.T) {
	svc, _ := newTestServices(t)
	ctx := context.Background()

	in := basicInput("Vague idea")
	in.Readiness = string(domain.ReadinessNotEvaluated)
	r := addReq(t, svc, in)
	pool, err := svc.CreatePool(ctx, engine.PoolConfig{Name: "Sprint 1", TotalCapacityDays: 50})
	require.NoError(t, err)

	err = svc.Move(ctx, r.ID, pool.ID)
	var notReady *engine.NotReadyError
	require.ErrorAs(t, err, &notReady)
	assert.Equal(t, r.ID, notReady.ItemID)

	board, err := svc.Board(ctx)
	require.NoError(t, err)
	require.Len(t, board.NotReady, 1)
	assert.Empty(t, board.Ready)
}

func TestPlanningService_PoolLifecycle(t *testing.T) {
	svc, _ := newTestServices(t)
	ctx := context.Background()

	pool, err := svc.CreatePool(ctx, engine.PoolConfig{
		Name:              "Sprint 1",
		StartDate:         "2026-09-01",
		EndDate:           "2026-09-30",
		TotalCapacityDays: 100,
		BugReserve:        10,
		RefactorReserve:   15,
		OtherReserve:      5,
	})
	require.NoError(t, err)
	assert.Equal(t, 70, pool.NetCapacityDays())

	updated, err := svc.UpdatePool(ctx, pool.ID, engine.PoolConfig{Name: "Sprint 1", TotalCapacityDays: 40})
	require.NoError(t, err)
	assert.Equal(t, 40, updated.NetCapacityDays())

	require.NoError(t, svc.DeletePool(ctx, pool.ID))
	pools, err := svc.ListPools(ctx)
	require.NoError(t, err)
	assert.Empty(t, pools)
}

func TestPlanningService_CreatePool_Validation(t *testing.T) {
	svc, _ := newTestServices(t)

	_, err := svc.CreatePool(context.Background(), engine.PoolConfig{Name: "", TotalCapacityDays: 10})
	var vErr *engine.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "name", vErr.Field)
}

func TestPlanningService_DeletePoolReturnsItems(t *testing.T) {
	svc, _ := newTestServices(t)
	ctx := context.Background()

	r := addReq(t, svc, basicInput("Survivor"))
	pool, err := svc.CreatePool(ctx, engine.PoolConfig{Name: "Doomed", TotalCapacityDays: 50})
	require.NoError(t, err)
	require.NoError(t, svc.Move(ctx, r.ID, pool.ID))

	require.NoError(t, svc.DeletePool(ctx, pool.ID))

	got, err := svc.GetRequirement(ctx, r.ID)
	require.NoError(t, err)
	assert.True(t, got.Unscheduled())
}

func TestPlanningService_PoolEditBelowLoadFlagsOverCapacity(t *testing.T) {
	svc, _ := newTestServices(t)
	ctx := context.Background()

	in := basicInput("Committed work")
	in.EffortDays = 40
	r := addReq(t, svc, in)
	pool, err := svc.CreatePool(ctx, engine.PoolConfig{Name: "Sprint 1", TotalCapacityDays: 50})
	require.NoError(t, err)
	require.NoError(t, svc.Move(ctx, r.ID, pool.ID))

	_, err = svc.UpdatePool(ctx, pool.ID, engine.PoolConfig{Name: "Sprint 1", TotalCapacityDays: 30})
	require.NoError(t, err)

	board, err := svc.Board(ctx)
	require.NoError(t, err)
	require.Len(t, board.Pools, 1)
	assert.True(t, board.Pools[0].OverCapacity)
	// The committed item is flagged, never ejected.
	require.Len(t, board.Pools[0].Items, 1)
	assert.Equal(t, r.ID, board.Pools[0].Items[0].ID)
}

func TestPlanningService_BoardOrdersReadyCanonically(t *testing.T) {
	svc, _ := newTestServices(t)

	mid := basicInput("Mid")
	mid.BusinessValue = string(domain.ValueCoreLever)
	addReq(t, svc, mid)

	top := basicInput("Top")
	top.BusinessValue = string(domain.ValueStrategicPlatform)
	top.TimeCriticality = string(domain.TimeMonthHardWindow)
	addReq(t, svc, top)

	low := basicInput("Low")
	low.BusinessValue = string(domain.ValueLocal)
	low.EffortDays = 40
	addReq(t, svc, low)

	board, err := svc.Board(context.Background())
	require.NoError(t, err)
	require.Len(t, board.Ready, 3)
	assert.Equal(t, "Top", board.Ready[0].Title)
	assert.Equal(t, "Mid", board.Ready[1].Title)
	assert.Equal(t, "Low", board.Ready[2].Title)
}
