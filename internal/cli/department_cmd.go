package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/alexanderramin/tempus/internal/cli/formatter"
	"github.com/alexanderramin/tempus/internal/domain"
	"github.com/spf13/cobra"
)

// resolveDepartmentID matches user input against department IDs (exact or
// prefix) and names (case-insensitive).
func resolveDepartmentID(ctx context.Context, app *App, input string) (string, error) {
	if input == "" {
		return "", fmt.Errorf("department ID is required")
	}

	departments, err := app.Departments.List(ctx)
	if err != nil {
		return "", err
	}

	for _, d := range departments {
		if d.ID == input || strings.EqualFold(d.Name, input) {
			return d.ID, nil
		}
	}

	var matches []string
	for _, d := range departments {
		if strings.HasPrefix(d.ID, input) {
			matches = append(matches, d.ID)
		}
	}

	switch len(matches) {
	case 0:
		return "", fmt.Errorf("department not found: %q", input)
	case 1:
		return matches[0], nil
	default:
		return "", fmt.Errorf("department ID prefix %q is ambiguous (%d matches)", input, len(matches))
	}
}

func newDepartmentCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "department",
		Short: "Manage departments",
	}

	cmd.AddCommand(
		newDepartmentAddCmd(app),
		newDepartmentListCmd(app),
		newDepartmentRemoveCmd(app),
	)

	return cmd
}

func newDepartmentAddCmd(app *App) *cobra.Command {
	var name string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create a new department",
		RunE: func(cmd *cobra.Command, args []string) error {
			d := &domain.Department{Name: name}
			if err := app.Departments.Create(context.Background(), d); err != nil {
				return err
			}
			fmt.Printf("Created department %s (%s)\n", d.Name, d.ID[:8])
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Department name")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

func newDepartmentListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List departments",
		RunE: func(cmd *cobra.Command, args []string) error {
			departments, err := app.Departments.List(context.Background())
			if err != nil {
				return err
			}
			if len(departments) == 0 {
				fmt.Println("No departments found.")
				return nil
			}
			fmt.Print(formatter.FormatDepartmentList(departments))
			return nil
		},
	}
}

func newDepartmentRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "remove <id>",
		Short: "Remove a department and everything under it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := resolveDepartmentID(ctx, app, args[0])
			if err != nil {
				return err
			}
			if err := app.Departments.Delete(ctx, id); err != nil {
				return err
			}
			fmt.Println("Department removed.")
			return nil
		},
	}
}
