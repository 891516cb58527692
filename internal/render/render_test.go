//nolint:testpackage // Tests require internal access for thorough testing
package render

import (
	"testing"
	"time"

	"github.com/abatilo/taskdash/internal/stats"
	"github.com/abatilo/taskdash/internal/task"
)

var fixedNow = time.Date(2024, 6, 15, 12, 0, 0, 0, time.Local)

func TestStatusColor(t *testing.T) {
	tests := []struct {
		status task.Status
		want   Color
	}{
		{task.StatusPending, ColorAmber},
		{task.StatusInProgress, ColorTeal},
		{task.StatusCompleted, ColorGreen},
		{task.Status("archived"), ColorGray},
		{task.Status(""), ColorGray},
	}

	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			if got := StatusColor(tt.status); got != tt.want {
				t.Errorf("StatusColor(%q) = %q, want %q", tt.status, got, tt.want)
			}
		})
	}
}

func TestTaskListRows(t *testing.T) {
	due := task.NewTimestamp(fixedNow.Add(-24 * time.Hour))
	tasks := []task.Task{
		{ID: 1, Title: "late", Status: task.StatusPending, DueDate: due, Tags: []string{"b", "a"}},
		{ID: 2, Title: "done", Status: task.StatusCompleted},
	}

	v := TaskList(tasks, fixedNow)
	if len(v.Rows) != 2 {
		t.Fatalf("rows = %d, want 2", len(v.Rows))
	}

	late := v.Rows[0]
	if !late.Overdue {
		t.Error("past-due pending task row should be overdue")
	}
	if late.Color != ColorAmber {
		t.Errorf("row color = %q, want the centralized pending color", late.Color)
	}
	if late.Tags[0] != "a" || late.Tags[1] != "b" {
		t.Errorf("tags = %v, want sorted", late.Tags)
	}
	if len(late.Actions) != 3 {
		t.Errorf("actions = %v, want toggle/edit/delete identifiers", late.Actions)
	}

	done := v.Rows[1]
	if done.Overdue {
		t.Error("task without due date can never be overdue")
	}
	if done.DueDate != nil {
		t.Error("row without due date should carry no DueDate")
	}
	if done.Color != ColorGreen {
		t.Errorf("completed row color = %q, want green", done.Color)
	}
}

func TestEventsSkipTasksWithoutDueDate(t *testing.T) {
	due := task.NewTimestamp(fixedNow.Add(48 * time.Hour))
	tasks := []task.Task{
		{ID: 1, Title: "scheduled", Status: task.StatusInProgress, DueDate: due},
		{ID: 2, Title: "someday"},
	}

	events := Events(tasks)
	if len(events) != 1 {
		t.Fatalf("events = %d, want 1", len(events))
	}
	e := events[0]
	if e.ID != 1 || e.Title != "scheduled" {
		t.Errorf("event = %+v, want task 1", e)
	}
	if !e.Start.Equal(due.Time) {
		t.Errorf("event start = %v, want the due date", e.Start)
	}
	if e.Color != ColorTeal {
		t.Errorf("event color = %q, want the centralized in-progress color", e.Color)
	}
}

func TestBuildReport(t *testing.T) {
	s := stats.Compute([]task.Task{
		{ID: 1, Category: "Work", Status: task.StatusCompleted, EstimatedHours: 1, ActualHours: 5},
		{ID: 2, Category: "Work", Status: task.StatusPending, DueDate: task.NewTimestamp(fixedNow.Add(-time.Hour))},
		{ID: 3, Category: "Home", Status: task.StatusInProgress},
	}, fixedNow)

	r := BuildReport(s)

	if len(r.Cards) != 6 {
		t.Fatalf("cards = %d, want 6", len(r.Cards))
	}
	if r.Cards[4].Label != "Overdue" || !r.Cards[4].Warning {
		t.Errorf("overdue card = %+v, want warning set", r.Cards[4])
	}
	if r.Cards[5].Value != "33.3%" {
		t.Errorf("completion rate card = %q, want 33.3%%", r.Cards[5].Value)
	}

	if len(r.Categories.Labels) != 2 || r.Categories.Labels[0] != "Home" || r.Categories.Labels[1] != "Work" {
		t.Errorf("category labels = %v, want sorted [Home Work]", r.Categories.Labels)
	}
	if len(r.Categories.Series) != 2 {
		t.Fatalf("series = %d, want total + completed", len(r.Categories.Series))
	}
	if r.Categories.Series[0].Values[1] != 2 || r.Categories.Series[1].Values[1] != 1 {
		t.Errorf("Work column = total %d / completed %d, want 2 / 1",
			r.Categories.Series[0].Values[1], r.Categories.Series[1].Values[1])
	}

	if len(r.Productivity.Labels) != 7 || len(r.Productivity.Values) != 7 {
		t.Errorf("productivity chart should cover 7 days, got %d labels", len(r.Productivity.Labels))
	}

	if len(r.TimeTracking) != 3 {
		t.Fatalf("time tracking rows = %d, want 3", len(r.TimeTracking))
	}
	if !r.TimeTracking[0].Highlight || r.TimeTracking[0].Difference != 4 {
		t.Errorf("row 0 = %+v, want highlighted +4h difference first", r.TimeTracking[0])
	}
	if r.TimeTracking[1].Highlight {
		t.Error("zero-difference row should not be highlighted")
	}
}
