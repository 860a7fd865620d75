package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/dmarkov/sprintwise/internal/db"
	"github.com/dmarkov/sprintwise/internal/domain"
)

const poolColumns = `id, name, start_date, end_date, total_capacity_days,
		bug_reserve, refactor_reserve, other_reserve, created_at, updated_at`

// SQLitePoolRepo implements PoolRepo over a DBTX.
type SQLitePoolRepo struct {
	db db.DBTX
}

// NewSQLitePoolRepo creates a new SQLitePoolRepo.
func NewSQLitePoolRepo(dbtx db.DBTX) *SQLitePoolRepo {
	return &SQLitePoolRepo{db: dbtx}
}

func (r *SQLitePoolRepo) List(ctx context.Context) ([]domain.SprintPool, error) {
	query := `SELECT ` + poolColumns + ` FROM sprint_pools ORDER BY created_at, id`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing sprint pools: %w", err)
	}
	defer rows.Close()

	var pools []domain.SprintPool
	index := map[string]int{}
	for rows.Next() {
		var p domain.SprintPool
		var createdAt, updatedAt string
		err := rows.Scan(
			&p.ID, &p.Name, &p.StartDate, &p.EndDate, &p.TotalCapacityDays,
			&p.BugReserve, &p.RefactorReserve, &p.OtherReserve, &createdAt, &updatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scanning sprint pool: %w", err)
		}
		if t, err := time.Parse(time.RFC3339, createdAt); err == nil {
			p.CreatedAt = t
		}
		if t, err := time.Parse(time.RFC3339, updatedAt); err == nil {
			p.UpdatedAt = t
		}
		index[p.ID] = len(pools)
		pools = append(pools, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating sprint pools: %w", err)
	}

	// Reassemble each pool's ordered item set from the requirement rows.
	memberRows, err := r.db.QueryContext(ctx,
		`SELECT id, pool_id FROM requirements WHERE pool_id IS NOT NULL ORDER BY pool_id, pool_slot`)
	if err != nil {
		return nil, fmt.Errorf("listing pool membership: %w", err)
	}
	defer memberRows.Close()

	for memberRows.Next() {
		var itemID, poolID string
		if err := memberRows.Scan(&itemID, &poolID); err != nil {
			return nil, fmt.Errorf("scanning pool membership: %w", err)
		}
		if i, ok := index[poolID]; ok {
			pools[i].ItemIDs = append(pools[i].ItemIDs, itemID)
		}
	}
	if err := memberRows.Err(); err != nil {
		return nil, fmt.Errorf("iterating pool membership: %w", err)
	}
	return pools, nil
}

func (r *SQLitePoolRepo) SaveAll(ctx context.Context, pools []domain.SprintPool) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM sprint_pools`); err != nil {
		return fmt.Errorf("clearing sprint pools: %w", err)
	}

	query := `INSERT INTO sprint_pools (` + poolColumns + `) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	for _, p := range pools {
		_, err := r.db.ExecContext(ctx, query,
			p.ID,
			p.Name,
			p.StartDate,
			p.EndDate,
			p.TotalCapacityDays,
			p.BugReserve,
			p.RefactorReserve,
			p.OtherReserve,
			p.CreatedAt.Format(time.RFC3339),
			p.UpdatedAt.Format(time.RFC3339),
		)
		if err != nil {
			return fmt.Errorf("inserting sprint pool %s: %w", p.ID, err)
		}
	}
	return nil
}
