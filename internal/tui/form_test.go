//nolint:testpackage // Tests require internal access for thorough testing
package tui

import (
	"testing"
	"time"

	"github.com/abatilo/taskdash/internal/task"
)

func TestFormRequiresTitle(t *testing.T) {
	f := newTaskForm(nil)
	if _, err := f.toTask(); err == nil {
		t.Error("empty form should be rejected")
	}
}

func TestFormDefaultsPriority(t *testing.T) {
	f := newTaskForm(nil)
	f.inputs[fieldTitle].SetValue("Ship release")

	draft, err := f.toTask()
	if err != nil {
		t.Fatalf("toTask failed: %v", err)
	}
	if draft.Priority != task.PriorityMedium {
		t.Errorf("priority = %q, want the medium default", draft.Priority)
	}
}

func TestFormParsesFields(t *testing.T) {
	f := newTaskForm(nil)
	f.inputs[fieldTitle].SetValue("Ship release")
	f.inputs[fieldPriority].SetValue("high")
	f.inputs[fieldCategory].SetValue("Work")
	f.inputs[fieldDueDate].SetValue("2026-03-15")
	f.inputs[fieldEstimated].SetValue("4.5")
	f.inputs[fieldTags].SetValue("release, urgent ,,")

	draft, err := f.toTask()
	if err != nil {
		t.Fatalf("toTask failed: %v", err)
	}
	if draft.Priority != task.PriorityHigh || draft.Category != "Work" {
		t.Errorf("draft = %+v", draft)
	}
	want := time.Date(2026, 3, 15, 0, 0, 0, 0, time.Local)
	if draft.DueDate == nil || !draft.DueDate.Equal(want) {
		t.Errorf("due date = %v, want %v", draft.DueDate, want)
	}
	if draft.EstimatedHours != 4.5 {
		t.Errorf("estimated = %v", draft.EstimatedHours)
	}
	if len(draft.Tags) != 2 || draft.Tags[0] != "release" || draft.Tags[1] != "urgent" {
		t.Errorf("tags = %v", draft.Tags)
	}
}

func TestFormRejectsBadInput(t *testing.T) {
	tests := []struct {
		name  string
		field int
		value string
	}{
		{"bad status", fieldStatus, "done"},
		{"bad priority", fieldPriority, "urgent"},
		{"bad due date", fieldDueDate, "March 15"},
		{"bad hours", fieldEstimated, "four"},
		{"negative hours", fieldActual, "-2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newTaskForm(nil)
			f.inputs[fieldTitle].SetValue("x")
			f.inputs[tt.field].SetValue(tt.value)
			if _, err := f.toTask(); err == nil {
				t.Error("expected a validation error")
			}
		})
	}
}

func TestFormPrefillsFromExisting(t *testing.T) {
	due := task.Timestamp{Time: time.Date(2026, 3, 15, 0, 0, 0, 0, time.Local)}
	existing := &task.Task{
		ID:             7,
		Title:          "Ship release",
		Status:         task.StatusInProgress,
		Priority:       task.PriorityHigh,
		Category:       "Work",
		DueDate:        &due,
		EstimatedHours: 4,
		Tags:           []string{"urgent", "release"},
	}

	f := newTaskForm(existing)
	if f.editingID != 7 {
		t.Errorf("editingID = %d", f.editingID)
	}
	if got := f.inputs[fieldTitle].Value(); got != "Ship release" {
		t.Errorf("title = %q", got)
	}
	if got := f.inputs[fieldStatus].Value(); got != "in_progress" {
		t.Errorf("status = %q, want the existing status pre-filled", got)
	}
	if got := f.inputs[fieldDueDate].Value(); got != "2026-03-15" {
		t.Errorf("due date = %q", got)
	}
	if got := f.inputs[fieldTags].Value(); got != "release, urgent" {
		t.Errorf("tags = %q, want sorted", got)
	}
}

func TestFormCarriesStatusThroughEdit(t *testing.T) {
	existing := &task.Task{ID: 7, Title: "Ship release", Status: task.StatusCompleted}

	f := newTaskForm(existing)
	draft, err := f.toTask()
	if err != nil {
		t.Fatalf("toTask failed: %v", err)
	}
	if draft.Status != task.StatusCompleted {
		t.Errorf("status = %q, want the pre-filled value submitted back", draft.Status)
	}

	// A cleared status stays unset so the update leaves the server's
	// value alone.
	f.inputs[fieldStatus].SetValue("")
	draft, err = f.toTask()
	if err != nil {
		t.Fatalf("toTask failed: %v", err)
	}
	if draft.Status != "" {
		t.Errorf("status = %q, want unset", draft.Status)
	}
}

func TestFormFocusWraps(t *testing.T) {
	f := newTaskForm(nil)
	for i := 0; i < fieldCount; i++ {
		f.next()
	}
	if f.focus != 0 {
		t.Errorf("focus = %d, want wrap to 0", f.focus)
	}
	f.prev()
	if f.focus != fieldCount-1 {
		t.Errorf("focus = %d, want wrap to last", f.focus)
	}
}
