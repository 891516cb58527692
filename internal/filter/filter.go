// Package filter derives the visible subset of the task list from four
// independently-optional criteria combined by logical AND.
package filter

import (
	"sort"
	"strings"

	"github.com/abatilo/taskdash/internal/task"
)

// Criteria narrows the visible task list. A zero-value field means the
// predicate is inactive. Criteria are never persisted across sessions.
type Criteria struct {
	Search   string
	Status   task.Status
	Priority task.Priority
	Category string
}

// IsZero reports whether no predicate is active.
func (c Criteria) IsZero() bool {
	return c.Search == "" && c.Status == "" && c.Priority == "" && c.Category == ""
}

// Matches reports whether a single task satisfies every active predicate.
// The search term matches case-insensitively against title or description;
// an absent description is treated as empty.
func (c Criteria) Matches(t *task.Task) bool {
	if c.Search != "" {
		term := strings.ToLower(c.Search)
		if !strings.Contains(strings.ToLower(t.Title), term) &&
			!strings.Contains(strings.ToLower(t.Description), term) {
			return false
		}
	}
	if c.Status != "" && t.Status != c.Status {
		return false
	}
	if c.Priority != "" && t.Priority != c.Priority {
		return false
	}
	if c.Category != "" && t.Category != c.Category {
		return false
	}
	return true
}

// Apply returns the tasks satisfying the criteria, preserving relative
// order. With no active predicates the input is returned unchanged.
func Apply(tasks []task.Task, c Criteria) []task.Task {
	if c.IsZero() {
		return tasks
	}
	out := make([]task.Task, 0, len(tasks))
	for i := range tasks {
		if c.Matches(&tasks[i]) {
			out = append(out, tasks[i])
		}
	}
	return out
}

// Categories returns the distinct category values present in the task
// list, sorted. Tasks without a category contribute nothing.
func Categories(tasks []task.Task) []string {
	seen := make(map[string]bool)
	var out []string
	for i := range tasks {
		c := tasks[i].Category
		if c == "" || seen[c] {
			continue
		}
		seen[c] = true
		out = append(out, c)
	}
	sort.Strings(out)
	return out
}
