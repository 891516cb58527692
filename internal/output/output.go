package output

import (
	"github.com/abatilo/taskdash/internal/api"
	"github.com/abatilo/taskdash/internal/render"
	"github.com/abatilo/taskdash/internal/task"
)

// Formatter defines the interface for output formatting.
type Formatter interface {
	FormatUser(u *api.User) string
	FormatTask(t *task.Task) string
	FormatTaskList(v render.ListView) string
	FormatCalendar(events []render.Event) string
	FormatReport(r render.Report) string
	FormatError(err error) string
	FormatMessage(msg string) string
}
