// Package app is the view controller: it owns the application state struct
// (current user, task store, active view, filter criteria), runs the
// unauthenticated/authenticated state machine, and dispatches user actions
// to the API gateway and the task store. Nothing here renders; views pull
// display models through the render package.
package app

import (
	"context"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/abatilo/taskdash/internal/api"
	"github.com/abatilo/taskdash/internal/filter"
	"github.com/abatilo/taskdash/internal/render"
	"github.com/abatilo/taskdash/internal/session"
	"github.com/abatilo/taskdash/internal/stats"
	"github.com/abatilo/taskdash/internal/store"
	"github.com/abatilo/taskdash/internal/task"
)

// View names the three authenticated screens.
type View string

const (
	ViewTasks    View = "tasks"
	ViewCalendar View = "calendar"
	ViewReports  View = "reports"
)

// ValidView checks a view name.
func ValidView(v View) bool {
	switch v {
	case ViewTasks, ViewCalendar, ViewReports:
		return true
	default:
		return false
	}
}

// App is the controller. Safe for concurrent use: the dashboard calls
// mutation methods from Bubble Tea command goroutines while the update
// loop reads state.
type App struct {
	gateway    *api.Client
	store      *store.Store
	sessionDir string
	log        logrus.FieldLogger

	mu       sync.RWMutex
	user     *api.User
	view     View
	criteria filter.Criteria

	// now is swappable so tests can pin the clock.
	now func() time.Time
}

// New wires a controller. sessionDir is where the durable session slot
// lives (normally the config directory).
func New(gateway *api.Client, sessionDir string, log logrus.FieldLogger) *App {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &App{
		gateway:    gateway,
		store:      store.New(),
		sessionDir: sessionDir,
		log:        log,
		view:       ViewTasks,
		now:        time.Now,
	}
}

// Restore reads the session slot and, when present, moves straight to the
// authenticated state. Returns whether a session was restored. Tasks still
// need a Refresh afterwards.
func (a *App) Restore() bool {
	s, err := session.Load(a.sessionDir)
	if err != nil {
		return false
	}
	a.mu.Lock()
	a.user = &s.User
	a.view = ViewTasks
	a.mu.Unlock()
	a.log.WithField("user_id", s.User.ID).Debug("Session restored")
	return true
}

// Authenticated reports which top-level state the controller is in.
func (a *App) Authenticated() bool {
	return a.currentUser() != nil
}

// CurrentUser returns the logged-in user, or nil.
func (a *App) CurrentUser() *api.User {
	return a.currentUser()
}

func (a *App) currentUser() *api.User {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.user
}

// ActiveView returns the currently visible view.
func (a *App) ActiveView() View {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.view
}

// Store exposes the task store for views and tests.
func (a *App) Store() *store.Store {
	return a.store
}

// Login authenticates, persists the session, and fetches the task list.
// On failure the state machine stays unauthenticated.
func (a *App) Login(ctx context.Context, email, password string) error {
	u, err := a.gateway.Login(ctx, email, password)
	if err != nil {
		return err
	}
	return a.established(ctx, u)
}

// Register creates an account and then behaves exactly like a successful
// login.
func (a *App) Register(ctx context.Context, username, email, password string) error {
	u, err := a.gateway.Register(ctx, username, email, password)
	if err != nil {
		return err
	}
	return a.established(ctx, u)
}

// established is the shared login/register success transition.
func (a *App) established(ctx context.Context, u *api.User) error {
	a.mu.Lock()
	a.user = u
	a.view = ViewTasks
	a.mu.Unlock()
	if err := session.Save(a.sessionDir, *u); err != nil {
		a.log.WithError(err).Warn("Failed to persist session")
	}
	return a.Refresh(ctx)
}

// Logout clears the cached session and all in-memory state.
func (a *App) Logout() error {
	a.mu.Lock()
	a.user = nil
	a.view = ViewTasks
	a.criteria = filter.Criteria{}
	a.mu.Unlock()
	a.store.Clear()
	return session.Delete(a.sessionDir)
}

// Refresh fetches the full task list and replaces the store wholesale.
func (a *App) Refresh(ctx context.Context) error {
	u := a.currentUser()
	if u == nil {
		return NotAuthenticatedError{}
	}
	tasks, err := a.gateway.ListTasks(ctx, u.ID)
	if err != nil {
		return err
	}
	a.store.SetAll(tasks)
	return nil
}

// SwitchView changes the active view. Calendar and reports recompute from
// the current store contents; no fetch happens.
func (a *App) SwitchView(v View) error {
	if !ValidView(v) {
		return UnknownViewError{Name: string(v)}
	}
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.user == nil {
		return NotAuthenticatedError{}
	}
	a.view = v
	return nil
}

// SetCriteria replaces the filter criteria. Criteria are never persisted.
func (a *App) SetCriteria(c filter.Criteria) {
	a.mu.Lock()
	a.criteria = c
	a.mu.Unlock()
}

// Criteria returns the active filter criteria.
func (a *App) Criteria() filter.Criteria {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.criteria
}

// VisibleTasks applies the active criteria to the store's list.
func (a *App) VisibleTasks() []task.Task {
	return filter.Apply(a.store.Tasks(), a.Criteria())
}

// ListView renders the filtered list.
func (a *App) ListView() render.ListView {
	return render.TaskList(a.VisibleTasks(), a.now())
}

// CalendarEvents renders events from the full task list; filters apply to
// the list view only.
func (a *App) CalendarEvents() []render.Event {
	return render.Events(a.store.Tasks())
}

// Report computes statistics over the full task list and renders the
// reports view.
func (a *App) Report() render.Report {
	return render.BuildReport(stats.Compute(a.store.Tasks(), a.now()))
}

// CreateTask sends the draft to the backend and, on success, reconciles the
// server's record into the store. On failure the store is untouched.
func (a *App) CreateTask(ctx context.Context, draft task.Task) (*task.Task, error) {
	u := a.currentUser()
	if u == nil {
		return nil, NotAuthenticatedError{}
	}
	created, err := a.gateway.CreateTask(ctx, draft, u.ID)
	if err != nil {
		return nil, err
	}
	a.store.Upsert(*created)
	return created, nil
}

// UpdateTask sends changes for a task and reconciles the server's record on
// success. It also clears the editing target when it was this task.
func (a *App) UpdateTask(ctx context.Context, id int, changes task.Task) (*task.Task, error) {
	if a.currentUser() == nil {
		return nil, NotAuthenticatedError{}
	}
	updated, err := a.gateway.UpdateTask(ctx, id, changes)
	if err != nil {
		return nil, err
	}
	a.store.Upsert(*updated)
	if editing := a.store.Editing(); editing != nil && editing.ID == id {
		a.store.BeginEdit(nil)
	}
	return updated, nil
}

// ToggleStatus flips a task between completed and pending via the backend.
func (a *App) ToggleStatus(ctx context.Context, id int) (*task.Task, error) {
	t, ok := a.store.Get(id)
	if !ok {
		return nil, TaskNotFoundError{ID: id}
	}
	t.Status = task.ToggledStatus(t.Status)
	return a.UpdateTask(ctx, id, t)
}

// DeleteTask removes a task via the backend, then from the store. A failed
// delete leaves the store unchanged.
func (a *App) DeleteTask(ctx context.Context, id int) error {
	if a.currentUser() == nil {
		return NotAuthenticatedError{}
	}
	if err := a.gateway.DeleteTask(ctx, id); err != nil {
		return err
	}
	a.store.Remove(id)
	return nil
}

// BeginEdit marks a cached task as the editing target.
func (a *App) BeginEdit(id int) error {
	t, ok := a.store.Get(id)
	if !ok {
		return TaskNotFoundError{ID: id}
	}
	a.store.BeginEdit(&t)
	return nil
}

// CancelEdit clears the editing target.
func (a *App) CancelEdit() {
	a.store.BeginEdit(nil)
}

// Editing returns the task currently being edited, or nil.
func (a *App) Editing() *task.Task {
	return a.store.Editing()
}

// Perform dispatches a render-layer action identifier against a task.
func (a *App) Perform(ctx context.Context, action render.Action, id int) error {
	switch action {
	case render.ActionToggleStatus:
		_, err := a.ToggleStatus(ctx, id)
		return err
	case render.ActionEdit:
		return a.BeginEdit(id)
	case render.ActionDelete:
		return a.DeleteTask(ctx, id)
	default:
		return UnknownActionError{Action: string(action)}
	}
}
