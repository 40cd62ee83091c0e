package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

func newSeedCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Populate the database with sample departments, elements and tasks",
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := app.Seeder.Seed(context.Background())
			if err != nil {
				return err
			}
			fmt.Printf("Seeded %d departments, %d elements, %d tasks.\n",
				result.DepartmentCount, result.ElementCount, result.TaskCount)
			return nil
		},
	}
}
