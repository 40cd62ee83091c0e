package cli

import (
	"context"
	"fmt"

	"github.com/alexanderramin/tempus/internal/cli/formatter"
	"github.com/alexanderramin/tempus/internal/domain"
	"github.com/spf13/cobra"
)

func newBoardCmd(app *App) *cobra.Command {
	var flags timelineFlags
	var width int

	cmd := &cobra.Command{
		Use:   "board",
		Short: "Render the timeline board once to stdout",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			if err := flags.validate(); err != nil {
				return err
			}

			req := flags.request()
			if req.DepartmentFilter != domain.FilterAll {
				deptID, err := resolveDepartmentID(ctx, app, req.DepartmentFilter)
				if err != nil {
					return err
				}
				req.DepartmentFilter = deptID
			}

			resp, err := app.Timeline.BuildTimeline(ctx, req)
			if err != nil {
				return err
			}

			fmt.Print(formatter.FormatTimeline(resp, width))
			return nil
		},
	}

	registerTimelineFlags(cmd.Flags(), &flags)
	cmd.Flags().IntVar(&width, "width", 100, "Render width in columns")

	return cmd
}
