package db

import (
	"database/sql"
	"fmt"
	"strings"
)

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS sprint_pools (
		id                  TEXT PRIMARY KEY,
		name                TEXT NOT NULL,
		start_date          TEXT NOT NULL DEFAULT '',
		end_date            TEXT NOT NULL DEFAULT '',
		total_capacity_days INTEGER NOT NULL DEFAULT 0 CHECK(total_capacity_days >= 0),
		bug_reserve         INTEGER NOT NULL DEFAULT 0 CHECK(bug_reserve BETWEEN 0 AND 100),
		refactor_reserve    INTEGER NOT NULL DEFAULT 0 CHECK(refactor_reserve BETWEEN 0 AND 100),
		other_reserve       INTEGER NOT NULL DEFAULT 0 CHECK(other_reserve BETWEEN 0 AND 100),
		created_at          TEXT NOT NULL,
		updated_at          TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS requirements (
		id               TEXT PRIMARY KEY,
		title            TEXT NOT NULL,
		business_value   TEXT NOT NULL DEFAULT 'local',
		time_criticality TEXT NOT NULL DEFAULT 'anytime',
		hard_deadline    INTEGER NOT NULL DEFAULT 0,
		deadline_date    TEXT,
		effort_days      INTEGER NOT NULL DEFAULT 1,
		readiness        TEXT NOT NULL DEFAULT 'not-evaluated',
		raw_score        INTEGER NOT NULL DEFAULT 0,
		display_score    INTEGER NOT NULL DEFAULT 0,
		star_tier        INTEGER NOT NULL DEFAULT 0,
		pool_id          TEXT,
		pool_slot        INTEGER NOT NULL DEFAULT 0,
		seq              INTEGER NOT NULL DEFAULT 0,
		created_at       TEXT NOT NULL,
		updated_at       TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_requirements_pool ON requirements(pool_id, pool_slot)`,
	`CREATE INDEX IF NOT EXISTS idx_requirements_seq ON requirements(seq)`,
}

// Migrate runs all schema migrations. Statements are idempotent and
// re-run on every open.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			// Tolerate "duplicate column name" errors from ALTER TABLE
			// since the migration system re-runs all statements.
			if strings.Contains(err.Error(), "duplicate column name") {
				continue
			}
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}
