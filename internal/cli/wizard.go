package cli

import (
	"fmt"
	"strconv"
	"time"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/dmarkov/sprintwise/internal/cli/formatter"
	"github.com/dmarkov/sprintwise/internal/domain"
)

func sprintwiseHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	// Focused state: orange accent
	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.FocusedButton = lipgloss.NewStyle().Foreground(formatter.ColorFg).Background(formatter.ColorHeader).Padding(0, 1)
	t.Focused.BlurredButton = lipgloss.NewStyle().Foreground(formatter.ColorDim).Padding(0, 1)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	// Blurred state: dimmed
	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

func validatePositiveInt(s string) error {
	n, err := strconv.Atoi(s)
	if err != nil || n <= 0 {
		return fmt.Errorf("must be a positive whole number")
	}
	return nil
}

func validateOptionalDate(s string) error {
	if s == "" {
		return nil
	}
	if _, err := time.Parse("2006-01-02", s); err != nil {
		return fmt.Errorf("must be YYYY-MM-DD")
	}
	return nil
}

// reqFormValues collects the wizard's raw answers before conversion.
type reqFormValues struct {
	Title        string
	Value        string
	Criticality  string
	HardDeadline bool
	DeadlineDate string
	EffortDays   string
	Readiness    string
}

// requirementForm builds the interactive add/edit form.
func requirementForm(v *reqFormValues) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Title").
				Placeholder("Checkout revamp").
				Value(&v.Title).
				Validate(func(s string) error {
					if s == "" {
						return fmt.Errorf("title is required")
					}
					return nil
				}),
			huh.NewSelect[string]().
				Title("Business value").
				Options(
					huh.NewOption("Local improvement", string(domain.ValueLocal)),
					huh.NewOption("Moderate impact", string(domain.ValueModerate)),
					huh.NewOption("Core lever", string(domain.ValueCoreLever)),
					huh.NewOption("Strategic platform", string(domain.ValueStrategicPlatform)),
				).
				Value(&v.Value),
			huh.NewSelect[string]().
				Title("Time criticality").
				Options(
					huh.NewOption("Anytime", string(domain.TimeAnytime)),
					huh.NewOption("Quarter window", string(domain.TimeQuarterWindow)),
					huh.NewOption("Hard window within a month", string(domain.TimeMonthHardWindow)),
				).
				Value(&v.Criticality),
			huh.NewConfirm().
				Title("Hard deadline?").
				Value(&v.HardDeadline),
			huh.NewInput().
				Title("Deadline date (YYYY-MM-DD, blank for none)").
				Placeholder("2026-10-31").
				Value(&v.DeadlineDate).
				Validate(validateOptionalDate),
			huh.NewInput().
				Title("Effort (person-days)").
				Placeholder("10").
				Value(&v.EffortDays).
				Validate(validatePositiveInt),
			huh.NewSelect[string]().
				Title("Readiness").
				Options(
					huh.NewOption("Workload not evaluated", string(domain.ReadinessNotEvaluated)),
					huh.NewOption("Workload evaluated", string(domain.ReadinessWorkloadEvaluated)),
					huh.NewOption("Plan complete", string(domain.ReadinessPlanComplete)),
				).
				Value(&v.Readiness),
		),
	).WithTheme(sprintwiseHuhTheme()).WithShowHelp(false)
}
