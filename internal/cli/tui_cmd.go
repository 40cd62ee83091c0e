package cli

import (
	"github.com/spf13/cobra"

	tea "github.com/charmbracelet/bubbletea"
)

func newTUICmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Open the interactive timeline board",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI(app)
		},
	}
}

// runTUI starts the full-screen bubbletea program.
func runTUI(app *App) error {
	p := tea.NewProgram(newAppModel(app), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
