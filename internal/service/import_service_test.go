package service

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmarkov/sprintwise/internal/engine"
)

func writeBatchFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "batch.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestImportService_ImportFile(t *testing.T) {
	planning, imports := newTestServices(t)
	ctx := context.Background()

	path := writeBatchFile(t, `{
		"pools": [
			{"id": "p1", "name": "Sprint 1", "total_capacity_days": 100, "bug_reserve": 10}
		],
		"requirements": [
			{"id": "a", "title": "In pool", "effort_days": 10, "pool_id": "p1", "readiness": "workload-evaluated", "business_value": "core-lever"},
			{"id": "b", "title": "Backlog", "effort_days": 5, "readiness": "plan-complete"},
			{"id": "c", "title": "Orphan", "effort_days": 3, "pool_id": "ghost", "readiness": "workload-evaluated"}
		]
	}`)

	summary, err := imports.ImportFile(ctx, path)
	require.NoError(t, err)
	assert.Equal(t, 3, summary.RequirementCount)
	assert.Equal(t, 1, summary.PoolCount)
	assert.Equal(t, 1, summary.Report.DanglingPoolRefs)

	board, err := planning.Board(ctx)
	require.NoError(t, err)
	require.Len(t, board.Pools, 1)
	require.Len(t, board.Pools[0].Items, 1)
	assert.Equal(t, "In pool", board.Pools[0].Items[0].Title)
	assert.Equal(t, 10, board.Pools[0].UsedDays)
	assert.Len(t, board.Ready, 2)
}

func TestImportService_ImportFile_RejectsInvalid(t *testing.T) {
	planning, imports := newTestServices(t)
	ctx := context.Background()

	// Seed existing state to prove rejection leaves it alone.
	addReq(t, planning, basicInput("Existing"))

	path := writeBatchFile(t, `{
		"requirements": [{"title": "", "effort_days": 0}]
	}`)
	_, err := imports.ImportFile(ctx, path)
	require.ErrorContains(t, err, "import validation failed")

	items, err := planning.ListRequirements(ctx)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Existing", items[0].Title)
}

func TestImportService_ImportReplacesExistingState(t *testing.T) {
	planning, imports := newTestServices(t)
	ctx := context.Background()

	addReq(t, planning, basicInput("Old item"))

	path := writeBatchFile(t, `{
		"requirements": [{"id": "n1", "title": "New item", "effort_days": 2, "readiness": "workload-evaluated"}]
	}`)
	_, err := imports.ImportFile(ctx, path)
	require.NoError(t, err)

	items, err := planning.ListRequirements(ctx)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "New item", items[0].Title)
}

func TestImportService_LoadSample(t *testing.T) {
	planning, imports := newTestServices(t)
	ctx := context.Background()

	summary, err := imports.LoadSample(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, summary.PoolCount)
	assert.Positive(t, summary.RequirementCount)

	board, err := planning.Board(ctx)
	require.NoError(t, err)
	assert.Len(t, board.Pools, 3)
	assert.NotEmpty(t, board.Ready)
	assert.NotEmpty(t, board.NotReady)

	// Sample items carry normalized scores after load.
	for _, r := range board.Ready {
		assert.GreaterOrEqual(t, r.DisplayScore, 10)
		assert.LessOrEqual(t, r.DisplayScore, 100)
		assert.GreaterOrEqual(t, r.StarTier, 2)
		assert.LessOrEqual(t, r.StarTier, 5)
	}
}

func TestImportService_ExportRoundTrip(t *testing.T) {
	planning, imports := newTestServices(t)
	ctx := context.Background()

	r := addReq(t, planning, basicInput("Portable"))
	pool, err := planning.CreatePool(ctx, engine.PoolConfig{Name: "Sprint 1", TotalCapacityDays: 50})
	require.NoError(t, err)
	require.NoError(t, planning.Move(ctx, r.ID, pool.ID))

	path := filepath.Join(t.TempDir(), "export.json")
	require.NoError(t, imports.ExportFile(ctx, path))

	// Fresh database, same file.
	planning2, imports2 := newTestServices(t)
	summary, err := imports2.ImportFile(ctx, path)
	require.NoError(t, err)
	assert.False(t, summary.Report.Repaired())

	board, err := planning2.Board(ctx)
	require.NoError(t, err)
	require.Len(t, board.Pools, 1)
	require.Len(t, board.Pools[0].Items, 1)
	assert.Equal(t, "Portable", board.Pools[0].Items[0].Title)
	assert.Equal(t, 50, board.Pools[0].NetCapacity)
}
