package cli

import (
	"context"
	"fmt"

	"github.com/alexanderramin/tempus/internal/cli/formatter"
	"github.com/alexanderramin/tempus/internal/contract"
	"github.com/spf13/cobra"
)

func newAnalyticsCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "analytics",
		Short: "Show per-department completion percentages",
		RunE: func(cmd *cobra.Command, args []string) error {
			rows, err := app.Timeline.GetAnalytics(context.Background(), contract.NewTimelineRequest())
			if err != nil {
				return err
			}
			if len(rows) == 0 {
				fmt.Println("No departments found.")
				return nil
			}
			fmt.Print(formatter.FormatAnalytics(rows))
			return nil
		},
	}
}
