package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/dmarkov/sprintwise/internal/domain"
)

// unscheduledKeyword lets move commands name the backlog as a target.
const unscheduledKeyword = "unscheduled"

func resolveRequirementID(ctx context.Context, app *App, input string) (string, error) {
	if input == "" {
		return "", fmt.Errorf("requirement ID is required")
	}

	items, err := app.Planning.ListRequirements(ctx)
	if err != nil {
		return "", err
	}

	// 1. Exact ID match
	for _, r := range items {
		if r.ID == input {
			return r.ID, nil
		}
	}

	// 2. ID prefix match
	var matches []string
	for _, r := range items {
		if strings.HasPrefix(r.ID, input) {
			matches = append(matches, r.ID)
		}
	}
	if len(matches) == 1 {
		return matches[0], nil
	}
	if len(matches) > 1 {
		return "", fmt.Errorf("requirement ID prefix %q is ambiguous (%d matches)", input, len(matches))
	}

	// 3. Exact title match (case-insensitive)
	for _, r := range items {
		if strings.EqualFold(r.Title, input) {
			matches = append(matches, r.ID)
		}
	}
	switch len(matches) {
	case 0:
		return "", fmt.Errorf("requirement not found: %q", input)
	case 1:
		return matches[0], nil
	default:
		return "", fmt.Errorf("requirement title %q is ambiguous (%d matches)", input, len(matches))
	}
}

func resolvePoolID(ctx context.Context, app *App, input string) (string, error) {
	if input == "" || strings.EqualFold(input, unscheduledKeyword) {
		return domain.UnscheduledPoolID, nil
	}

	pools, err := app.Planning.ListPools(ctx)
	if err != nil {
		return "", err
	}

	for _, p := range pools {
		if p.ID == input {
			return p.ID, nil
		}
	}

	var matches []string
	for _, p := range pools {
		if strings.HasPrefix(p.ID, input) {
			matches = append(matches, p.ID)
		}
	}
	if len(matches) == 1 {
		return matches[0], nil
	}
	if len(matches) > 1 {
		return "", fmt.Errorf("pool ID prefix %q is ambiguous (%d matches)", input, len(matches))
	}

	for _, p := range pools {
		if strings.EqualFold(p.Name, input) {
			matches = append(matches, p.ID)
		}
	}
	switch len(matches) {
	case 0:
		return "", fmt.Errorf("pool not found: %q", input)
	case 1:
		return matches[0], nil
	default:
		return "", fmt.Errorf("pool name %q is ambiguous (%d matches)", input, len(matches))
	}
}
