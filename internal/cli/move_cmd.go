package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dmarkov/sprintwise/internal/domain"
	"github.com/dmarkov/sprintwise/internal/engine"
)

func newMoveCmd(app *App) *cobra.Command {
	var from string

	cmd := &cobra.Command{
		Use:   "move <requirement> <pool|unscheduled>",
		Short: "Move a requirement into a pool or back to the backlog",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			itemID, err := resolveRequirementID(ctx, app, args[0])
			if err != nil {
				return err
			}
			to, err := resolvePoolID(ctx, app, args[1])
			if err != nil {
				return err
			}

			if cmd.Flags().Changed("from") {
				source, err := resolvePoolID(ctx, app, from)
				if err != nil {
					return err
				}
				err = app.Planning.MoveFrom(ctx, itemID, source, to)
				if err != nil {
					return describeMoveError(err)
				}
			} else if err := app.Planning.Move(ctx, itemID, to); err != nil {
				return describeMoveError(err)
			}

			if to == domain.UnscheduledPoolID {
				fmt.Printf("Moved %s to the backlog\n", itemID)
			} else {
				fmt.Printf("Moved %s into pool %s\n", itemID, to)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&from, "from", "", "Expected current location; the move fails if it does not match")
	return cmd
}

// describeMoveError keeps the typed rejections readable on the CLI.
func describeMoveError(err error) error {
	var capErr *engine.CapacityExceededError
	if errors.As(err, &capErr) {
		return fmt.Errorf("pool %s cannot take this requirement: %d days over net capacity", capErr.PoolID, capErr.OverflowDays)
	}
	var notReady *engine.NotReadyError
	if errors.As(err, &notReady) {
		return fmt.Errorf("requirement %s is not schedulable: workload has not been evaluated", notReady.ItemID)
	}
	return err
}
