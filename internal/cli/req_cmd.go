package cli

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/dmarkov/sprintwise/internal/cli/formatter"
	"github.com/dmarkov/sprintwise/internal/domain"
	"github.com/dmarkov/sprintwise/internal/service"
)

func newReqCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "req",
		Short: "Manage requirements",
	}

	cmd.AddCommand(
		newReqAddCmd(app),
		newReqListCmd(app),
		newReqEditCmd(app),
		newReqRemoveCmd(app),
	)

	return cmd
}

func inputFromValues(v reqFormValues) (service.RequirementInput, error) {
	effort, err := strconv.Atoi(v.EffortDays)
	if err != nil {
		return service.RequirementInput{}, fmt.Errorf("invalid effort %q: must be a whole number of days", v.EffortDays)
	}

	in := service.RequirementInput{
		Title:           v.Title,
		BusinessValue:   v.Value,
		TimeCriticality: v.Criticality,
		HardDeadline:    v.HardDeadline,
		EffortDays:      effort,
		Readiness:       v.Readiness,
	}
	if v.DeadlineDate != "" {
		d, err := time.Parse("2006-01-02", v.DeadlineDate)
		if err != nil {
			return service.RequirementInput{}, fmt.Errorf("invalid deadline date %q: %w", v.DeadlineDate, err)
		}
		in.DeadlineDate = &d
	}
	return in, nil
}

func addReqFlags(cmd *cobra.Command, v *reqFormValues) {
	cmd.Flags().StringVar(&v.Title, "title", "", "Requirement title")
	cmd.Flags().StringVar(&v.Value, "value", string(domain.ValueModerate), "Business value (local|moderate|core-lever|strategic-platform)")
	cmd.Flags().StringVar(&v.Criticality, "criticality", string(domain.TimeAnytime), "Time criticality (anytime|quarter-window|month-hard-window)")
	cmd.Flags().BoolVar(&v.HardDeadline, "hard-deadline", false, "Mark as having a hard deadline")
	cmd.Flags().StringVar(&v.DeadlineDate, "deadline", "", "Deadline date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&v.EffortDays, "effort", "", "Effort in person-days")
	cmd.Flags().StringVar(&v.Readiness, "readiness", string(domain.ReadinessNotEvaluated), "Readiness (not-evaluated|workload-evaluated|plan-complete)")
}

func newReqAddCmd(app *App) *cobra.Command {
	var values reqFormValues

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a requirement to the unscheduled backlog",
		RunE: func(cmd *cobra.Command, args []string) error {
			// No flags on a terminal: run the wizard instead.
			if values.Title == "" && app.interactive() {
				if err := requirementForm(&values).Run(); err != nil {
					return err
				}
			}

			in, err := inputFromValues(values)
			if err != nil {
				return err
			}

			r, err := app.Planning.AddRequirement(context.Background(), in)
			if err != nil {
				return err
			}

			fmt.Printf("Added %s [%s] score %d %s\n", r.Title, r.DisplayID(), r.DisplayScore, formatter.Stars(r.StarTier))
			return nil
		},
	}

	addReqFlags(cmd, &values)
	return cmd
}

func newReqListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all requirements with their scores",
		RunE: func(cmd *cobra.Command, args []string) error {
			items, err := app.Planning.ListRequirements(context.Background())
			if err != nil {
				return err
			}
			if len(items) == 0 {
				fmt.Println("No requirements found.")
				return nil
			}
			fmt.Println(formatter.FormatRequirementList(items))
			return nil
		},
	}
}

func newReqEditCmd(app *App) *cobra.Command {
	var values reqFormValues

	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Edit a requirement; the whole batch is rescored",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := resolveRequirementID(ctx, app, args[0])
			if err != nil {
				return err
			}

			existing, err := app.Planning.GetRequirement(ctx, id)
			if err != nil {
				return err
			}

			// Unset flags keep the stored value.
			if values.Title == "" {
				values.Title = existing.Title
			}
			if !cmd.Flags().Changed("value") {
				values.Value = string(existing.BusinessValue)
			}
			if !cmd.Flags().Changed("criticality") {
				values.Criticality = string(existing.TimeCriticality)
			}
			if !cmd.Flags().Changed("hard-deadline") {
				values.HardDeadline = existing.HardDeadline
			}
			if !cmd.Flags().Changed("deadline") && existing.DeadlineDate != nil {
				values.DeadlineDate = existing.DeadlineDate.Format("2006-01-02")
			}
			if values.EffortDays == "" {
				values.EffortDays = strconv.Itoa(existing.EffortDays)
			}
			if !cmd.Flags().Changed("readiness") {
				values.Readiness = string(existing.Readiness)
			}

			if app.interactive() && cmd.Flags().NFlag() == 0 {
				if err := requirementForm(&values).Run(); err != nil {
					return err
				}
			}

			in, err := inputFromValues(values)
			if err != nil {
				return err
			}

			updated, err := app.Planning.UpdateRequirement(ctx, id, in)
			if err != nil {
				return err
			}
			fmt.Printf("Updated %s [%s] score %d %s\n", updated.Title, updated.DisplayID(), updated.DisplayScore, formatter.Stars(updated.StarTier))
			return nil
		},
	}

	addReqFlags(cmd, &values)
	return cmd
}

func newReqRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "rm <id>",
		Short: "Delete a requirement",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := resolveRequirementID(ctx, app, args[0])
			if err != nil {
				return err
			}
			if err := app.Planning.DeleteRequirement(ctx, id); err != nil {
				return err
			}
			fmt.Printf("Deleted requirement %s\n", id)
			return nil
		},
	}
}
