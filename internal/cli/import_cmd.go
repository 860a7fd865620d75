package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dmarkov/sprintwise/internal/service"
)

func newImportCmd(app *App) *cobra.Command {
	var sample bool

	cmd := &cobra.Command{
		Use:   "import [file]",
		Short: "Replace the working set from a batch JSON file",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			var summary *service.ImportSummary
			var err error
			switch {
			case sample:
				summary, err = app.Imports.LoadSample(ctx)
			case len(args) == 1:
				summary, err = app.Imports.ImportFile(ctx, args[0])
			default:
				return fmt.Errorf("provide a file to import, or --sample for the demo dataset")
			}
			if err != nil {
				return err
			}

			fmt.Printf("Imported %d requirements and %d pools\n", summary.RequirementCount, summary.PoolCount)
			if summary.Report.DanglingPoolRefs > 0 {
				fmt.Printf("Repaired %d requirements referencing unknown pools (moved to backlog)\n", summary.Report.DanglingPoolRefs)
			}
			if summary.Report.UnreadyUnpooled > 0 {
				fmt.Printf("Moved %d unevaluated requirements out of pools (moved to backlog)\n", summary.Report.UnreadyUnpooled)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&sample, "sample", false, "Load the built-in demo dataset")
	return cmd
}

func newExportCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "export <file>",
		Short: "Write the working set as batch JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Imports.ExportFile(context.Background(), args[0]); err != nil {
				return err
			}
			fmt.Printf("Exported working set to %s\n", args[0])
			return nil
		},
	}
}
