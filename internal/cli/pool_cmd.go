package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dmarkov/sprintwise/internal/cli/formatter"
	"github.com/dmarkov/sprintwise/internal/domain"
	"github.com/dmarkov/sprintwise/internal/engine"
)

func newPoolCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pool",
		Short: "Manage sprint pools",
	}

	cmd.AddCommand(
		newPoolAddCmd(app),
		newPoolListCmd(app),
		newPoolEditCmd(app),
		newPoolRemoveCmd(app),
	)

	return cmd
}

func addPoolFlags(cmd *cobra.Command, cfg *engine.PoolConfig) {
	cmd.Flags().StringVar(&cfg.Name, "name", "", "Pool name")
	cmd.Flags().StringVar(&cfg.StartDate, "start", "", "Start date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&cfg.EndDate, "end", "", "End date (YYYY-MM-DD)")
	cmd.Flags().IntVar(&cfg.TotalCapacityDays, "days", 0, "Total capacity in person-days")
	cmd.Flags().IntVar(&cfg.BugReserve, "bug-reserve", 0, "Bug fix reserve (%)")
	cmd.Flags().IntVar(&cfg.RefactorReserve, "refactor-reserve", 0, "Refactoring reserve (%)")
	cmd.Flags().IntVar(&cfg.OtherReserve, "other-reserve", 0, "Other reserve (%)")
}

func newPoolAddCmd(app *App) *cobra.Command {
	var cfg engine.PoolConfig

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create a sprint pool",
		RunE: func(cmd *cobra.Command, args []string) error {
			// Unset capacity flags fall back to configured defaults.
			if !cmd.Flags().Changed("days") {
				cfg.TotalCapacityDays = app.PoolDefaults.TotalCapacityDays
			}
			if !cmd.Flags().Changed("bug-reserve") {
				cfg.BugReserve = app.PoolDefaults.BugReserve
			}
			if !cmd.Flags().Changed("refactor-reserve") {
				cfg.RefactorReserve = app.PoolDefaults.RefactorReserve
			}
			if !cmd.Flags().Changed("other-reserve") {
				cfg.OtherReserve = app.PoolDefaults.OtherReserve
			}

			p, err := app.Planning.CreatePool(context.Background(), cfg)
			if err != nil {
				return err
			}

			fmt.Printf("Created pool %s: %d total days, %d net after %d%% reserves\n",
				p.Name, p.TotalCapacityDays, p.NetCapacityDays(), p.ReservePct())
			return nil
		},
	}

	addPoolFlags(cmd, &cfg)
	_ = cmd.MarkFlagRequired("name")
	return cmd
}

func newPoolListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List sprint pools with their load",
		RunE: func(cmd *cobra.Command, args []string) error {
			board, err := app.Planning.Board(context.Background())
			if err != nil {
				return err
			}
			if len(board.Pools) == 0 {
				fmt.Println("No pools found.")
				return nil
			}
			cards := make([]formatter.PoolCard, 0, len(board.Pools))
			for _, pv := range board.Pools {
				cards = append(cards, formatter.PoolCard{
					Pool:         pv.Pool,
					Items:        pv.Items,
					UsedDays:     pv.UsedDays,
					NetCapacity:  pv.NetCapacity,
					OverCapacity: pv.OverCapacity,
				})
			}
			fmt.Println(formatter.FormatPoolList(cards))
			return nil
		},
	}
}

func newPoolEditCmd(app *App) *cobra.Command {
	var cfg engine.PoolConfig

	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Edit a pool; shrinking below current load flags it over capacity",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := resolvePoolID(ctx, app, args[0])
			if err != nil {
				return err
			}

			pools, err := app.Planning.ListPools(ctx)
			if err != nil {
				return err
			}
			var existing domain.SprintPool
			for _, p := range pools {
				if p.ID == id {
					existing = p
					break
				}
			}

			if !cmd.Flags().Changed("name") {
				cfg.Name = existing.Name
			}
			if !cmd.Flags().Changed("start") {
				cfg.StartDate = existing.StartDate
			}
			if !cmd.Flags().Changed("end") {
				cfg.EndDate = existing.EndDate
			}
			if !cmd.Flags().Changed("days") {
				cfg.TotalCapacityDays = existing.TotalCapacityDays
			}
			if !cmd.Flags().Changed("bug-reserve") {
				cfg.BugReserve = existing.BugReserve
			}
			if !cmd.Flags().Changed("refactor-reserve") {
				cfg.RefactorReserve = existing.RefactorReserve
			}
			if !cmd.Flags().Changed("other-reserve") {
				cfg.OtherReserve = existing.OtherReserve
			}

			p, err := app.Planning.UpdatePool(ctx, id, cfg)
			if err != nil {
				return err
			}

			fmt.Printf("Updated pool %s: %d net days\n", p.Name, p.NetCapacityDays())

			board, err := app.Planning.Board(ctx)
			if err != nil {
				return err
			}
			for _, pv := range board.Pools {
				if pv.Pool.ID == id && pv.OverCapacity {
					fmt.Printf("Warning: pool is over capacity (%dd assigned, %dd net)\n", pv.UsedDays, pv.NetCapacity)
				}
			}
			return nil
		},
	}

	addPoolFlags(cmd, &cfg)
	return cmd
}

func newPoolRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "rm <id>",
		Short: "Delete a pool; its requirements return to the backlog",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := resolvePoolID(ctx, app, args[0])
			if err != nil {
				return err
			}
			if err := app.Planning.DeletePool(ctx, id); err != nil {
				return err
			}
			fmt.Printf("Deleted pool %s; assigned requirements moved to the backlog\n", id)
			return nil
		},
	}
}
