package task

import (
	"sort"
	"time"
)

// Status represents the current state of a task.
type Status string

const (
	StatusPending    Status = "pending"
	StatusInProgress Status = "in_progress"
	StatusCompleted  Status = "completed"
)

// Priority represents the importance level of a task. It is a display and
// filter category only; no ordering is enforced.
type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

// Task is the client's cached copy of a backend task record. The backend
// assigns IDs and sets CompletedDate when a task transitions to completed;
// the client never computes either.
type Task struct {
	ID             int        `json:"id"`
	Title          string     `json:"title"`
	Description    string     `json:"description,omitempty"`
	// Status and Priority are omitted when unset: the backend merges
	// only the keys a request carries, and an empty string would be
	// applied verbatim, wiping the stored value.
	Status         Status     `json:"status,omitempty"`
	Priority       Priority   `json:"priority,omitempty"`
	Category       string     `json:"category,omitempty"`
	DueDate        *Timestamp `json:"due_date,omitempty"`
	CompletedDate  *Timestamp `json:"completed_date,omitempty"`
	EstimatedHours float64    `json:"estimated_hours"`
	ActualHours    float64    `json:"actual_hours"`
	Tags           []string   `json:"tags,omitempty"`
	CreatedAt      *Timestamp `json:"created_at,omitempty"`
	UpdatedAt      *Timestamp `json:"updated_at,omitempty"`
	UserID         int        `json:"user_id,omitempty"`
}

// IsValidStatus checks if a status string is valid.
func IsValidStatus(s Status) bool {
	switch s {
	case StatusPending, StatusInProgress, StatusCompleted:
		return true
	default:
		return false
	}
}

// IsValidPriority checks if a priority string is valid.
func IsValidPriority(p Priority) bool {
	switch p {
	case PriorityHigh, PriorityMedium, PriorityLow:
		return true
	default:
		return false
	}
}

// ToggledStatus returns the status the quick-toggle action moves a task to:
// completed tasks reopen as pending, everything else completes.
func ToggledStatus(s Status) Status {
	if s == StatusCompleted {
		return StatusPending
	}
	return StatusCompleted
}

// IsOverdue reports whether the task is past due at the given instant.
// A task with no due date is never overdue, nor is a completed one.
func (t *Task) IsOverdue(now time.Time) bool {
	if t.Status == StatusCompleted || t.DueDate == nil || t.DueDate.IsZero() {
		return false
	}
	return t.DueDate.Before(now)
}

// SortedTags returns the task's tags in a stable display order. Storage
// order is insertion order and carries no meaning.
func (t *Task) SortedTags() []string {
	if len(t.Tags) == 0 {
		return nil
	}
	tags := make([]string, len(t.Tags))
	copy(tags, t.Tags)
	sort.Strings(tags)
	return tags
}
