package output

import (
	"encoding/json"

	"github.com/abatilo/taskdash/internal/api"
	"github.com/abatilo/taskdash/internal/render"
	"github.com/abatilo/taskdash/internal/task"
)

// JSONFormatter formats output as JSON. The render display models carry
// their own JSON tags, so they are marshaled directly.
type JSONFormatter struct{}

// NewJSONFormatter creates a new JSONFormatter.
func NewJSONFormatter() *JSONFormatter {
	return &JSONFormatter{}
}

// marshalJSON marshals a value to indented JSON with a trailing newline.
func marshalJSON(v any) string {
	data, _ := json.MarshalIndent(v, "", "  ")
	return string(data) + "\n"
}

// FormatUser formats the signed-in user as JSON.
func (f *JSONFormatter) FormatUser(u *api.User) string {
	return marshalJSON(u)
}

// FormatTask formats a single task as JSON.
func (f *JSONFormatter) FormatTask(t *task.Task) string {
	return marshalJSON(t)
}

// FormatTaskList formats the list view as JSON.
func (f *JSONFormatter) FormatTaskList(v render.ListView) string {
	return marshalJSON(v)
}

// FormatCalendar formats calendar events as JSON.
func (f *JSONFormatter) FormatCalendar(events []render.Event) string {
	if events == nil {
		events = []render.Event{}
	}
	return marshalJSON(events)
}

// FormatReport formats the reports view as JSON.
func (f *JSONFormatter) FormatReport(r render.Report) string {
	return marshalJSON(r)
}

// errorJSON is the JSON representation of an error.
type errorJSON struct {
	Error string `json:"error"`
}

// FormatError formats an error as JSON.
func (f *JSONFormatter) FormatError(err error) string {
	return marshalJSON(errorJSON{Error: err.Error()})
}

// messageJSON is the JSON representation of a message.
type messageJSON struct {
	Message string `json:"message"`
}

// FormatMessage formats a simple message as JSON.
func (f *JSONFormatter) FormatMessage(msg string) string {
	return marshalJSON(messageJSON{Message: msg})
}
