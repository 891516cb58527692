// Package render turns filtered tasks and statistics into display models.
// Everything here is a pure function; nothing touches the terminal, the
// network, or the store. The output package and the calendar/chart
// collaborators consume these values.
package render

import (
	"time"

	"github.com/abatilo/taskdash/internal/task"
)

// Action is an opaque identifier for something the user can do to a row.
// The render layer only names actions; the view controller executes them.
type Action string

const (
	ActionToggleStatus Action = "toggle_status"
	ActionEdit         Action = "edit"
	ActionDelete       Action = "delete"
)

// ListRow is one task prepared for list display.
type ListRow struct {
	ID             int           `json:"id"`
	Title          string        `json:"title"`
	Description    string        `json:"description,omitempty"`
	Status         task.Status   `json:"status"`
	Priority       task.Priority `json:"priority"`
	Category       string        `json:"category,omitempty"`
	DueDate        *time.Time    `json:"due_date,omitempty"`
	Overdue        bool          `json:"overdue"`
	EstimatedHours float64       `json:"estimated_hours"`
	Tags           []string      `json:"tags,omitempty"` // sorted for display
	Color          Color         `json:"color"`
	Actions        []Action      `json:"actions"`
}

// ListView is the list render target's full display model.
type ListView struct {
	Rows []ListRow `json:"rows"`
}

// TaskList builds the list view from already-filtered tasks, preserving
// their order.
func TaskList(tasks []task.Task, now time.Time) ListView {
	rows := make([]ListRow, 0, len(tasks))
	for i := range tasks {
		t := &tasks[i]
		row := ListRow{
			ID:             t.ID,
			Title:          t.Title,
			Description:    t.Description,
			Status:         t.Status,
			Priority:       t.Priority,
			Category:       t.Category,
			Overdue:        t.IsOverdue(now),
			EstimatedHours: t.EstimatedHours,
			Tags:           t.SortedTags(),
			Color:          StatusColor(t.Status),
			Actions:        []Action{ActionToggleStatus, ActionEdit, ActionDelete},
		}
		if t.DueDate != nil && !t.DueDate.IsZero() {
			due := t.DueDate.Time
			row.DueDate = &due
		}
		rows = append(rows, row)
	}
	return ListView{Rows: rows}
}
