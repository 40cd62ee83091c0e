package cli

import (
	"github.com/alexanderramin/tempus/internal/service"
	"github.com/spf13/cobra"
)

// App holds references to all service interfaces used by CLI commands.
type App struct {
	Departments service.DepartmentService
	Elements    service.ElementService
	Tasks       service.TaskService
	Timeline    service.TimelineService
	Seeder      service.SeedService

	// IsInteractive reports whether stdin is attached to a terminal.
	IsInteractive func() bool
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}

// NewRootCmd creates the top-level "tempus" command and registers all
// subcommands against the provided App. Running without a subcommand opens
// the full-screen dashboard on a terminal.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "tempus",
		Short: "Department timeline board and completion analytics",
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.interactive() {
				return runTUI(app)
			}
			return cmd.Help()
		},
	}

	root.AddCommand(
		newDepartmentCmd(app),
		newElementCmd(app),
		newTaskCmd(app),
		newBoardCmd(app),
		newAnalyticsCmd(app),
		newSeedCmd(app),
		newTUICmd(app),
	)

	return root
}
