package app

import "fmt"

// NotAuthenticatedError indicates a task operation was attempted before
// login.
type NotAuthenticatedError struct{}

func (e NotAuthenticatedError) Error() string {
	return "not logged in: run 'taskdash login' first"
}

// TaskNotFoundError indicates the ID doesn't match any cached task.
type TaskNotFoundError struct {
	ID int
}

func (e TaskNotFoundError) Error() string {
	return fmt.Sprintf("task not found: %d", e.ID)
}

// UnknownViewError indicates a view name outside tasks/calendar/reports.
type UnknownViewError struct {
	Name string
}

func (e UnknownViewError) Error() string {
	return fmt.Sprintf("unknown view: %s (valid: tasks, calendar, reports)", e.Name)
}

// UnknownActionError indicates an action identifier the controller cannot
// dispatch.
type UnknownActionError struct {
	Action string
}

func (e UnknownActionError) Error() string {
	return fmt.Sprintf("unknown action: %s", e.Action)
}
