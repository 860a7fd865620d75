package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/dmarkov/sprintwise/internal/db"
	"github.com/dmarkov/sprintwise/internal/domain"
)

// requirementColumns is the canonical SELECT column list for requirements.
const requirementColumns = `id, title, business_value, time_criticality, hard_deadline,
		deadline_date, effort_days, readiness, raw_score, display_score, star_tier,
		pool_id, pool_slot, seq, created_at, updated_at`

// SQLiteRequirementRepo implements RequirementRepo over a DBTX, so the
// same type serves both direct reads and tx-scoped writes.
type SQLiteRequirementRepo struct {
	db db.DBTX
}

// NewSQLiteRequirementRepo creates a new SQLiteRequirementRepo.
func NewSQLiteRequirementRepo(dbtx db.DBTX) *SQLiteRequirementRepo {
	return &SQLiteRequirementRepo{db: dbtx}
}

func (r *SQLiteRequirementRepo) List(ctx context.Context) ([]domain.Requirement, error) {
	query := `SELECT ` + requirementColumns + ` FROM requirements ORDER BY seq`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing requirements: %w", err)
	}
	defer rows.Close()

	var items []domain.Requirement
	for rows.Next() {
		item, err := scanRequirement(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating requirements: %w", err)
	}
	return items, nil
}

func (r *SQLiteRequirementRepo) SaveAll(ctx context.Context, items []domain.Requirement, slots map[string]int) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM requirements`); err != nil {
		return fmt.Errorf("clearing requirements: %w", err)
	}

	query := `INSERT INTO requirements (` + requirementColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	for _, item := range items {
		var poolID interface{}
		if item.PoolID != domain.UnscheduledPoolID {
			poolID = item.PoolID
		}
		_, err := r.db.ExecContext(ctx, query,
			item.ID,
			item.Title,
			string(item.BusinessValue),
			string(item.TimeCriticality),
			boolToInt(item.HardDeadline),
			nullableTimeToString(item.DeadlineDate, dateLayout),
			item.EffortDays,
			string(item.Readiness),
			item.RawScore,
			item.DisplayScore,
			item.StarTier,
			poolID,
			slots[item.ID],
			item.Seq,
			item.CreatedAt.Format(time.RFC3339),
			item.UpdatedAt.Format(time.RFC3339),
		)
		if err != nil {
			return fmt.Errorf("inserting requirement %s: %w", item.ID, err)
		}
	}
	return nil
}

func scanRequirement(rows *sql.Rows) (domain.Requirement, error) {
	var item domain.Requirement
	var businessValue, timeCriticality, readiness string
	var hardDeadline int
	var deadlineDate, poolID sql.NullString
	var poolSlot int
	var createdAt, updatedAt string

	err := rows.Scan(
		&item.ID, &item.Title, &businessValue, &timeCriticality, &hardDeadline,
		&deadlineDate, &item.EffortDays, &readiness,
		&item.RawScore, &item.DisplayScore, &item.StarTier,
		&poolID, &poolSlot, &item.Seq, &createdAt, &updatedAt,
	)
	if err != nil {
		return domain.Requirement{}, fmt.Errorf("scanning requirement: %w", err)
	}

	item.BusinessValue = domain.BusinessValueTier(businessValue)
	item.TimeCriticality = domain.TimeCriticality(timeCriticality)
	item.HardDeadline = intToBool(hardDeadline)
	item.DeadlineDate = parseNullableTime(deadlineDate, dateLayout)
	item.Readiness = domain.Readiness(readiness)
	if poolID.Valid {
		item.PoolID = poolID.String
	}
	if t, err := time.Parse(time.RFC3339, createdAt); err == nil {
		item.CreatedAt = t
	}
	if t, err := time.Parse(time.RFC3339, updatedAt); err == nil {
		item.UpdatedAt = t
	}
	return item, nil
}
