package cli

import (
	"github.com/spf13/cobra"

	"github.com/dmarkov/sprintwise/internal/config"
	"github.com/dmarkov/sprintwise/internal/service"
)

// App holds references to the services and settings used by CLI commands.
type App struct {
	Planning service.PlanningService
	Imports  service.ImportService

	// PoolDefaults pre-fills the pool creation form.
	PoolDefaults config.PoolDefaults

	// IsInteractive reports whether stdin is a terminal; interactive
	// commands fall back to flag-only mode when it returns false.
	IsInteractive func() bool
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}

// NewRootCmd creates the top-level "sprintwise" command and registers
// all subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "sprintwise",
		Short: "WSJF requirement scoring and sprint capacity planning",
	}

	root.AddCommand(
		newReqCmd(app),
		newPoolCmd(app),
		newMoveCmd(app),
		newBoardCmd(app),
		newImportCmd(app),
		newExportCmd(app),
	)

	return root
}
