package main

import (
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/abatilo/taskdash/internal/app"
	"github.com/abatilo/taskdash/internal/filter"
	"github.com/abatilo/taskdash/internal/task"
)

// taskFlags holds the shared add/edit flag set.
type taskFlags struct {
	description string
	priority    string
	category    string
	dueDate     string
	estimated   float64
	actual      float64
	tags        []string
	status      string
}

func (f *taskFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.description, "description", "d", "", "Task description")
	cmd.Flags().StringVarP(&f.priority, "priority", "p", "", "Priority (high, medium, low)")
	cmd.Flags().StringVarP(&f.category, "category", "c", "", "Category")
	cmd.Flags().StringVar(&f.dueDate, "due", "", "Due date (YYYY-MM-DD)")
	cmd.Flags().Float64Var(&f.estimated, "estimated", 0, "Estimated hours")
	cmd.Flags().Float64Var(&f.actual, "actual", 0, "Actual hours")
	cmd.Flags().StringSliceVar(&f.tags, "tag", nil, "Tag (repeatable)")
	cmd.Flags().StringVarP(&f.status, "status", "s", "", "Status (pending, in_progress, completed)")
}

// apply copies set flags onto the draft.
func (f *taskFlags) apply(cmd *cobra.Command, t *task.Task) error {
	if cmd.Flags().Changed("description") {
		t.Description = f.description
	}
	if cmd.Flags().Changed("priority") {
		p := task.Priority(f.priority)
		if !task.IsValidPriority(p) {
			return InvalidPriorityError{Value: f.priority}
		}
		t.Priority = p
	}
	if cmd.Flags().Changed("category") {
		t.Category = f.category
	}
	if cmd.Flags().Changed("due") {
		parsed, err := time.ParseInLocation("2006-01-02", f.dueDate, time.Local)
		if err != nil {
			return InvalidDateError{Value: f.dueDate}
		}
		t.DueDate = &task.Timestamp{Time: parsed}
	}
	if cmd.Flags().Changed("estimated") {
		t.EstimatedHours = f.estimated
	}
	if cmd.Flags().Changed("actual") {
		t.ActualHours = f.actual
	}
	if cmd.Flags().Changed("tag") {
		t.Tags = f.tags
	}
	if cmd.Flags().Changed("status") {
		s := task.Status(f.status)
		if !task.IsValidStatus(s) {
			return InvalidStatusError{Value: f.status}
		}
		t.Status = s
	}
	return nil
}

// listCmd implements 'taskdash list'.
func listCmd() *cobra.Command {
	var search, status, priority, category string
	var categories bool
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List tasks",
		Run: func(cmd *cobra.Command, _ []string) {
			a, _, err := getApp()
			if err != nil {
				printError(err)
			}
			if err := a.Refresh(cmd.Context()); err != nil {
				printError(err)
			}

			if categories {
				printOutput(formatter.FormatMessage(strings.Join(filter.Categories(a.Store().Tasks()), "\n")))
				return
			}

			a.SetCriteria(filter.Criteria{
				Search:   search,
				Status:   task.Status(status),
				Priority: task.Priority(priority),
				Category: category,
			})
			printOutput(formatter.FormatTaskList(a.ListView()))
		},
	}
	cmd.Flags().StringVar(&search, "search", "", "Match title or description")
	cmd.Flags().StringVarP(&status, "status", "s", "", "Filter by status")
	cmd.Flags().StringVarP(&priority, "priority", "p", "", "Filter by priority")
	cmd.Flags().StringVarP(&category, "category", "c", "", "Filter by category")
	cmd.Flags().BoolVar(&categories, "categories", false, "List distinct categories instead of tasks")
	return cmd
}

// addCmd implements 'taskdash add'.
func addCmd() *cobra.Command {
	flags := &taskFlags{}
	cmd := &cobra.Command{
		Use:   "add <title>",
		Short: "Create a task",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			a, _, err := getApp()
			if err != nil {
				printError(err)
			}

			draft := task.Task{Title: args[0], Priority: task.PriorityMedium}
			if err := flags.apply(cmd, &draft); err != nil {
				printError(err)
			}

			created, err := a.CreateTask(cmd.Context(), draft)
			if err != nil {
				printError(err)
			}
			printOutput(formatter.FormatTask(created))
		},
	}
	flags.register(cmd)
	return cmd
}

// editCmd implements 'taskdash edit'.
func editCmd() *cobra.Command {
	flags := &taskFlags{}
	var title string
	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Update a task",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			a, _, err := getApp()
			if err != nil {
				printError(err)
			}
			id, err := parseID(args[0])
			if err != nil {
				printError(err)
			}
			if err := a.Refresh(cmd.Context()); err != nil {
				printError(err)
			}

			existing, ok := a.Store().Get(id)
			if !ok {
				printError(app.TaskNotFoundError{ID: id})
			}
			if cmd.Flags().Changed("title") {
				existing.Title = title
			}
			if err := flags.apply(cmd, &existing); err != nil {
				printError(err)
			}

			updated, err := a.UpdateTask(cmd.Context(), id, existing)
			if err != nil {
				printError(err)
			}
			printOutput(formatter.FormatTask(updated))
		},
	}
	cmd.Flags().StringVarP(&title, "title", "t", "", "Task title")
	flags.register(cmd)
	return cmd
}

// doneCmd implements 'taskdash done'.
func doneCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "done <id>",
		Short: "Toggle a task between completed and pending",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			a, _, err := getApp()
			if err != nil {
				printError(err)
			}
			id, err := parseID(args[0])
			if err != nil {
				printError(err)
			}
			if err := a.Refresh(cmd.Context()); err != nil {
				printError(err)
			}

			updated, err := a.ToggleStatus(cmd.Context(), id)
			if err != nil {
				printError(err)
			}
			printOutput(formatter.FormatTask(updated))
		},
	}
}

// rmCmd implements 'taskdash rm'.
func rmCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rm <id>",
		Short: "Delete a task",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			a, _, err := getApp()
			if err != nil {
				printError(err)
			}
			id, err := parseID(args[0])
			if err != nil {
				printError(err)
			}
			if err := a.Refresh(cmd.Context()); err != nil {
				printError(err)
			}

			if err := a.DeleteTask(cmd.Context(), id); err != nil {
				printError(err)
			}
			printOutput(formatter.FormatMessage("Deleted task " + args[0]))
		},
	}
}

func parseID(raw string) (int, error) {
	id, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, InvalidIDError{Value: raw}
	}
	return id, nil
}
