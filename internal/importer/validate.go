package importer

import (
	"fmt"
	"time"

	"github.com/dmarkov/sprintwise/internal/domain"
)

// ValidateBatchSchema checks the import schema for errors before
// conversion. Returns a slice of all validation errors found.
//
// Unknown business_value / time_criticality strings are accepted (the
// scorer tolerates legacy values); structural problems are not.
func ValidateBatchSchema(schema *BatchSchema) []error {
	var errs []error

	poolIDs := make(map[string]bool)
	for i, p := range schema.Pools {
		if p.Name == "" {
			errs = append(errs, fmt.Errorf("pools[%d].name is required", i))
		}
		if p.TotalCapacityDays < 0 {
			errs = append(errs, fmt.Errorf("pools[%d].total_capacity_days must not be negative", i))
		}
		for _, rv := range []struct {
			name string
			val  int
		}{
			{"bug_reserve", p.BugReserve},
			{"refactor_reserve", p.RefactorReserve},
			{"other_reserve", p.OtherReserve},
		} {
			if rv.val < 0 || rv.val > 100 {
				errs = append(errs, fmt.Errorf("pools[%d].%s must be between 0 and 100", i, rv.name))
			}
		}
		if sum := p.BugReserve + p.RefactorReserve + p.OtherReserve; sum > 100 {
			errs = append(errs, fmt.Errorf("pools[%d]: reserves sum to %d%%, exceeding 100%%", i, sum))
		}
		if p.ID != "" {
			if poolIDs[p.ID] {
				errs = append(errs, fmt.Errorf("pools[%d]: duplicate pool id %q", i, p.ID))
			}
			poolIDs[p.ID] = true
		}
	}

	reqIDs := make(map[string]bool)
	for i, r := range schema.Requirements {
		if r.Title == "" {
			errs = append(errs, fmt.Errorf("requirements[%d].title is required", i))
		}
		if r.EffortDays <= 0 {
			errs = append(errs, fmt.Errorf("requirements[%d].effort_days must be positive", i))
		}
		if r.Readiness != "" && !domain.ValidReadiness[r.Readiness] {
			errs = append(errs, fmt.Errorf("requirements[%d].readiness: invalid value %q", i, r.Readiness))
		}
		if r.DeadlineDate != nil {
			if _, err := time.Parse(dateLayout, *r.DeadlineDate); err != nil {
				errs = append(errs, fmt.Errorf("requirements[%d].deadline_date: invalid date format %q (expected YYYY-MM-DD)", i, *r.DeadlineDate))
			}
		}
		if r.ID != "" {
			if reqIDs[r.ID] {
				errs = append(errs, fmt.Errorf("requirements[%d]: duplicate requirement id %q", i, r.ID))
			}
			reqIDs[r.ID] = true
		}
	}

	return errs
}
