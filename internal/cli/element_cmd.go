package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/tempus/internal/cli/formatter"
	"github.com/alexanderramin/tempus/internal/domain"
	"github.com/spf13/cobra"
)

func resolveElementID(ctx context.Context, app *App, input string) (string, error) {
	if input == "" {
		return "", fmt.Errorf("element ID is required")
	}

	elements, err := app.Elements.List(ctx)
	if err != nil {
		return "", err
	}

	for _, e := range elements {
		if e.ID == input || strings.EqualFold(e.Title, input) {
			return e.ID, nil
		}
	}

	var matches []string
	for _, e := range elements {
		if strings.HasPrefix(e.ID, input) {
			matches = append(matches, e.ID)
		}
	}

	switch len(matches) {
	case 0:
		return "", fmt.Errorf("element not found: %q", input)
	case 1:
		return matches[0], nil
	default:
		return "", fmt.Errorf("element ID prefix %q is ambiguous (%d matches)", input, len(matches))
	}
}

// parseOptionalDate parses a YYYY-MM-DD flag value; empty means unset.
func parseOptionalDate(flag, value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		return nil, fmt.Errorf("invalid %s date %q: %w", flag, value, err)
	}
	return &t, nil
}

func newElementCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "element",
		Short: "Manage elements (work packages under a department)",
	}

	cmd.AddCommand(
		newElementAddCmd(app),
		newElementListCmd(app),
		newElementRemoveCmd(app),
	)

	return cmd
}

func newElementAddCmd(app *App) *cobra.Command {
	var title, department, start, due, priority string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create a new element",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			deptID, err := resolveDepartmentID(ctx, app, department)
			if err != nil {
				return err
			}

			e := &domain.Element{
				Title:        title,
				DepartmentID: deptID,
				Priority:     domain.Priority(priority),
			}
			if e.StartDate, err = parseOptionalDate("start", start); err != nil {
				return err
			}
			if e.DueDate, err = parseOptionalDate("due", due); err != nil {
				return err
			}
			if priority != "" && !domain.ValidPriorities[priority] {
				return fmt.Errorf("invalid priority %q (expected low, medium or high)", priority)
			}

			if err := app.Elements.Create(ctx, e); err != nil {
				return err
			}
			fmt.Printf("Created element %s (%s)\n", e.Title, e.ID[:8])
			return nil
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "Element title")
	cmd.Flags().StringVar(&department, "department", "", "Department ID or name")
	cmd.Flags().StringVar(&start, "start", "", "Start date (YYYY-MM-DD, optional: derived from tasks when absent)")
	cmd.Flags().StringVar(&due, "due", "", "Due date (YYYY-MM-DD, optional)")
	cmd.Flags().StringVar(&priority, "priority", "", "Priority: low, medium, high")
	_ = cmd.MarkFlagRequired("title")
	_ = cmd.MarkFlagRequired("department")

	return cmd
}

func newElementListCmd(app *App) *cobra.Command {
	var department string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List elements",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			var elements []*domain.Element
			var err error
			if department != "" {
				deptID, rerr := resolveDepartmentID(ctx, app, department)
				if rerr != nil {
					return rerr
				}
				elements, err = app.Elements.ListByDepartment(ctx, deptID)
			} else {
				elements, err = app.Elements.List(ctx)
			}
			if err != nil {
				return err
			}

			if len(elements) == 0 {
				fmt.Println("No elements found.")
				return nil
			}
			fmt.Print(formatter.FormatElementList(elements))
			return nil
		},
	}

	cmd.Flags().StringVar(&department, "department", "", "Limit to one department")

	return cmd
}

func newElementRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "remove <id>",
		Short: "Remove an element (its tasks become unassigned)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := resolveElementID(ctx, app, args[0])
			if err != nil {
				return err
			}
			if err := app.Elements.Delete(ctx, id); err != nil {
				return err
			}
			fmt.Println("Element removed.")
			return nil
		},
	}
}
