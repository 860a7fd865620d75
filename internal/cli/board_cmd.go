package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dmarkov/sprintwise/internal/cli/formatter"
)

func newBoardCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "board",
		Short: "Show pools and the prioritized backlog",
		RunE: func(cmd *cobra.Command, args []string) error {
			board, err := app.Planning.Board(context.Background())
			if err != nil {
				return err
			}

			data := formatter.BoardData{
				Ready:    board.Ready,
				NotReady: board.NotReady,
			}
			for _, pv := range board.Pools {
				data.Pools = append(data.Pools, formatter.PoolCard{
					Pool:         pv.Pool,
					Items:        pv.Items,
					UsedDays:     pv.UsedDays,
					NetCapacity:  pv.NetCapacity,
					OverCapacity: pv.OverCapacity,
				})
			}

			fmt.Println(formatter.FormatBoard(data))
			return nil
		},
	}
}
