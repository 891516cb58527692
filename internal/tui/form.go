package tui

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/abatilo/taskdash/internal/task"
)

// Form field order.
const (
	fieldTitle = iota
	fieldDescription
	fieldStatus
	fieldPriority
	fieldCategory
	fieldDueDate
	fieldEstimated
	fieldActual
	fieldTags
	fieldCount
)

// taskForm is the inline create/edit form.
type taskForm struct {
	editingID int // 0 means creating
	inputs    []textinput.Model
	focus     int
}

func newTaskForm(existing *task.Task) *taskForm {
	labels := []string{
		"title", "description", "status (pending/in_progress/completed)",
		"priority (high/medium/low)", "category",
		"due date (YYYY-MM-DD)", "estimated hours", "actual hours", "tags (comma separated)",
	}

	f := &taskForm{inputs: make([]textinput.Model, fieldCount)}
	for i, label := range labels {
		in := textinput.New()
		in.Placeholder = label
		in.CharLimit = 200
		in.Width = 50
		f.inputs[i] = in
	}
	f.inputs[fieldTitle].Focus()

	if existing != nil {
		f.editingID = existing.ID
		f.inputs[fieldTitle].SetValue(existing.Title)
		f.inputs[fieldDescription].SetValue(existing.Description)
		f.inputs[fieldStatus].SetValue(string(existing.Status))
		f.inputs[fieldPriority].SetValue(string(existing.Priority))
		f.inputs[fieldCategory].SetValue(existing.Category)
		if existing.DueDate != nil && !existing.DueDate.IsZero() {
			f.inputs[fieldDueDate].SetValue(existing.DueDate.Format("2006-01-02"))
		}
		if existing.EstimatedHours > 0 {
			f.inputs[fieldEstimated].SetValue(strconv.FormatFloat(existing.EstimatedHours, 'f', -1, 64))
		}
		if existing.ActualHours > 0 {
			f.inputs[fieldActual].SetValue(strconv.FormatFloat(existing.ActualHours, 'f', -1, 64))
		}
		f.inputs[fieldTags].SetValue(strings.Join(existing.SortedTags(), ", "))
	}
	return f
}

// next moves focus forward, wrapping around.
func (f *taskForm) next() {
	f.inputs[f.focus].Blur()
	f.focus = (f.focus + 1) % fieldCount
	f.inputs[f.focus].Focus()
}

// prev moves focus backward, wrapping around.
func (f *taskForm) prev() {
	f.inputs[f.focus].Blur()
	f.focus = (f.focus - 1 + fieldCount) % fieldCount
	f.inputs[f.focus].Focus()
}

// update forwards a message to the focused input.
func (f *taskForm) update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
	return cmd
}

// toTask validates the form and builds the draft to submit.
func (f *taskForm) toTask() (task.Task, error) {
	t := task.Task{
		Title:       strings.TrimSpace(f.inputs[fieldTitle].Value()),
		Description: strings.TrimSpace(f.inputs[fieldDescription].Value()),
		Category:    strings.TrimSpace(f.inputs[fieldCategory].Value()),
	}
	if t.Title == "" {
		return t, fmt.Errorf("title is required")
	}

	// An empty status is left unset so the draft omits the key and the
	// backend keeps (or defaults) the stored value.
	if s := strings.TrimSpace(f.inputs[fieldStatus].Value()); s != "" {
		if !task.IsValidStatus(task.Status(s)) {
			return t, fmt.Errorf("invalid status %q", s)
		}
		t.Status = task.Status(s)
	}

	if p := strings.TrimSpace(f.inputs[fieldPriority].Value()); p != "" {
		if !task.IsValidPriority(task.Priority(p)) {
			return t, fmt.Errorf("invalid priority %q", p)
		}
		t.Priority = task.Priority(p)
	} else {
		t.Priority = task.PriorityMedium
	}

	if d := strings.TrimSpace(f.inputs[fieldDueDate].Value()); d != "" {
		parsed, err := time.ParseInLocation("2006-01-02", d, time.Local)
		if err != nil {
			return t, fmt.Errorf("invalid due date %q, want YYYY-MM-DD", d)
		}
		t.DueDate = &task.Timestamp{Time: parsed}
	}

	var err error
	if t.EstimatedHours, err = parseHours(f.inputs[fieldEstimated].Value()); err != nil {
		return t, fmt.Errorf("invalid estimated hours: %w", err)
	}
	if t.ActualHours, err = parseHours(f.inputs[fieldActual].Value()); err != nil {
		return t, fmt.Errorf("invalid actual hours: %w", err)
	}

	if raw := strings.TrimSpace(f.inputs[fieldTags].Value()); raw != "" {
		for _, tag := range strings.Split(raw, ",") {
			if tag = strings.TrimSpace(tag); tag != "" {
				t.Tags = append(t.Tags, tag)
			}
		}
	}

	return t, nil
}

func parseHours(raw string) (float64, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, nil
	}
	h, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, err
	}
	if h < 0 {
		return 0, fmt.Errorf("must not be negative")
	}
	return h, nil
}
