package importer

import (
	"encoding/json"
	"fmt"
	"os"
)

const dateLayout = "2006-01-02"

// BatchSchema is the top-level JSON structure for batch import/export.
// Export writes the same shape back out, so a round trip preserves the
// working set.
type BatchSchema struct {
	Pools        []PoolImport        `json:"pools,omitempty"`
	Requirements []RequirementImport `json:"requirements"`
}

// PoolImport defines a sprint pool in the import file.
type PoolImport struct {
	ID                string `json:"id,omitempty"`
	Name              string `json:"name"`
	StartDate         string `json:"start_date,omitempty"`
	EndDate           string `json:"end_date,omitempty"`
	TotalCapacityDays int    `json:"total_capacity_days"`
	BugReserve        int    `json:"bug_reserve,omitempty"`
	RefactorReserve   int    `json:"refactor_reserve,omitempty"`
	OtherReserve      int    `json:"other_reserve,omitempty"`
}

// RequirementImport defines a requirement in the import file. PoolID may
// reference a pool from the same file; requirements listed earlier keep
// earlier slots within their pool.
type RequirementImport struct {
	ID              string  `json:"id,omitempty"`
	Title           string  `json:"title"`
	BusinessValue   string  `json:"business_value,omitempty"`
	TimeCriticality string  `json:"time_criticality,omitempty"`
	HardDeadline    bool    `json:"hard_deadline,omitempty"`
	DeadlineDate    *string `json:"deadline_date,omitempty"`
	EffortDays      int     `json:"effort_days"`
	Readiness       string  `json:"readiness,omitempty"`
	PoolID          string  `json:"pool_id,omitempty"`
}

// LoadBatchSchema reads and parses a batch import JSON file.
func LoadBatchSchema(path string) (*BatchSchema, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var schema BatchSchema
	if err := json.Unmarshal(data, &schema); err != nil {
		return nil, fmt.Errorf("parsing import file: %w", err)
	}
	return &schema, nil
}
