// Package store holds the authoritative in-memory task list for the current
// user, mirroring backend state. Mutations happen only after the API gateway
// confirms them; the store performs no validation of its own.
package store

import (
	"sync"

	"github.com/abatilo/taskdash/internal/task"
)

// Store is the client-side task cache plus the identity of the task
// currently being edited, if any. It holds at most one task per ID.
type Store struct {
	mu      sync.RWMutex
	tasks   []task.Task
	editing *task.Task
}

// New creates an empty Store.
func New() *Store {
	return &Store{}
}

// SetAll replaces the task list wholesale. Used after a full fetch.
func (s *Store) SetAll(tasks []task.Task) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tasks = make([]task.Task, len(tasks))
	copy(s.tasks, tasks)
}

// Upsert inserts the task if its ID is unseen, otherwise replaces the
// existing entry in place. Relative order of untouched entries is preserved.
func (s *Store) Upsert(t task.Task) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.tasks {
		if s.tasks[i].ID == t.ID {
			s.tasks[i] = t
			return
		}
	}
	s.tasks = append(s.tasks, t)
}

// Remove deletes the entry with the given ID. No-op if absent.
func (s *Store) Remove(id int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.tasks {
		if s.tasks[i].ID == id {
			s.tasks = append(s.tasks[:i], s.tasks[i+1:]...)
			return
		}
	}
}

// Get returns a copy of the task with the given ID.
func (s *Store) Get(id int) (task.Task, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for i := range s.tasks {
		if s.tasks[i].ID == id {
			return s.tasks[i], true
		}
	}
	return task.Task{}, false
}

// Tasks returns a copy of the current task list in storage order.
func (s *Store) Tasks() []task.Task {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]task.Task, len(s.tasks))
	copy(out, s.tasks)
	return out
}

// Len returns the number of cached tasks.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.tasks)
}

// BeginEdit marks a task as the current editing target. Passing nil clears
// the target, which is also how an edit is cancelled.
func (s *Store) BeginEdit(t *task.Task) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if t == nil {
		s.editing = nil
		return
	}
	cp := *t
	s.editing = &cp
}

// Editing returns the task currently being edited, or nil.
func (s *Store) Editing() *task.Task {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.editing == nil {
		return nil
	}
	cp := *s.editing
	return &cp
}

// Clear drops all cached state. Used on logout.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tasks = nil
	s.editing = nil
}
