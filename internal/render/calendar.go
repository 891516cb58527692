package render

import (
	"time"

	"github.com/abatilo/taskdash/internal/task"
)

// Event is one calendar entry, ready for whatever calendar widget consumes
// it. Only tasks with a due date become events.
type Event struct {
	ID    int       `json:"id"`
	Title string    `json:"title"`
	Start time.Time `json:"start"`
	Color Color     `json:"color"`
}

// Events maps the task list to calendar events, colored by status.
func Events(tasks []task.Task) []Event {
	events := make([]Event, 0, len(tasks))
	for i := range tasks {
		t := &tasks[i]
		if t.DueDate == nil || t.DueDate.IsZero() {
			continue
		}
		events = append(events, Event{
			ID:    t.ID,
			Title: t.Title,
			Start: t.DueDate.Time,
			Color: StatusColor(t.Status),
		})
	}
	return events
}
