package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/alexanderramin/tempus/internal/cli/formatter"
	"github.com/alexanderramin/tempus/internal/domain"
	"github.com/spf13/cobra"
)

func resolveTaskID(ctx context.Context, app *App, input string) (string, error) {
	if input == "" {
		return "", fmt.Errorf("task ID is required")
	}

	tasks, err := app.Tasks.List(ctx)
	if err != nil {
		return "", err
	}

	for _, t := range tasks {
		if t.ID == input || strings.EqualFold(t.Title, input) {
			return t.ID, nil
		}
	}

	var matches []string
	for _, t := range tasks {
		if strings.HasPrefix(t.ID, input) {
			matches = append(matches, t.ID)
		}
	}

	switch len(matches) {
	case 0:
		return "", fmt.Errorf("task not found: %q", input)
	case 1:
		return matches[0], nil
	default:
		return "", fmt.Errorf("task ID prefix %q is ambiguous (%d matches)", input, len(matches))
	}
}

func newTaskCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "task",
		Short: "Manage tasks",
	}

	cmd.AddCommand(
		newTaskAddCmd(app),
		newTaskListCmd(app),
		newTaskDoneCmd(app),
		newTaskRemoveCmd(app),
	)

	return cmd
}

func newTaskAddCmd(app *App) *cobra.Command {
	var title, element, department, start, due, status, assignee string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create a new task",
		Long: `Create a task under an element (--element) or directly under a
department (--department). Dated tasks appear on the timeline; a task with
only one of the two dates gets a one-day interval. On a terminal, omitted
dates are collected interactively.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			if element == "" && department == "" {
				return fmt.Errorf("either --element or --department is required")
			}

			t := &domain.Task{
				Title:    title,
				Status:   domain.NormalizeStatus(status),
				Assignee: assignee,
			}

			var err error
			if element != "" {
				if t.ElementID, err = resolveElementID(ctx, app, element); err != nil {
					return err
				}
			} else {
				if t.DepartmentID, err = resolveDepartmentID(ctx, app, department); err != nil {
					return err
				}
			}

			// Collect dates interactively when neither flag was given on a TTY.
			if start == "" && due == "" && app.interactive() {
				if err := runTaskDateForm(&start, &due); err != nil {
					return err
				}
			}

			if t.StartDate, err = parseOptionalDate("start", start); err != nil {
				return err
			}
			if t.DueDate, err = parseOptionalDate("due", due); err != nil {
				return err
			}

			if err := app.Tasks.Create(ctx, t); err != nil {
				return err
			}
			fmt.Printf("Created task %s (%s)\n", t.Title, t.ID[:8])
			if !t.HasInterval() && t.StartDate == nil && t.DueDate == nil {
				fmt.Println(formatter.Dim("Task has no dates and will not appear on the timeline."))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "Task title")
	cmd.Flags().StringVar(&element, "element", "", "Parent element ID or title")
	cmd.Flags().StringVar(&department, "department", "", "Department ID or name (for tasks without an element)")
	cmd.Flags().StringVar(&start, "start", "", "Start date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&due, "due", "", "Due date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&status, "status", "todo", "Status: todo, in_progress, done")
	cmd.Flags().StringVar(&assignee, "assignee", "", "Assignee name")
	_ = cmd.MarkFlagRequired("title")

	return cmd
}

func newTaskListCmd(app *App) *cobra.Command {
	var element string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List tasks",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			var tasks []*domain.Task
			var err error
			if element != "" {
				elemID, rerr := resolveElementID(ctx, app, element)
				if rerr != nil {
					return rerr
				}
				tasks, err = app.Tasks.ListByElement(ctx, elemID)
			} else {
				tasks, err = app.Tasks.List(ctx)
			}
			if err != nil {
				return err
			}

			if len(tasks) == 0 {
				fmt.Println("No tasks found.")
				return nil
			}
			fmt.Print(formatter.FormatTaskList(tasks))
			return nil
		},
	}

	cmd.Flags().StringVar(&element, "element", "", "Limit to one element")

	return cmd
}

func newTaskDoneCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "done <id>",
		Short: "Mark a task as done",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := resolveTaskID(ctx, app, args[0])
			if err != nil {
				return err
			}
			if err := app.Tasks.MarkDone(ctx, id); err != nil {
				return err
			}
			fmt.Println("Task marked done.")
			return nil
		},
	}
}

func newTaskRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "remove <id>",
		Short: "Remove a task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := resolveTaskID(ctx, app, args[0])
			if err != nil {
				return err
			}
			if err := app.Tasks.Delete(ctx, id); err != nil {
				return err
			}
			fmt.Println("Task removed.")
			return nil
		},
	}
}
