// Package tui is the interactive dashboard. It is a thin Bubble Tea
// shell around the app controller: every key ends up calling a
// controller method, and all API work runs as commands so the update
// loop never blocks.
package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/abatilo/taskdash/internal/app"
	"github.com/abatilo/taskdash/internal/output"
	"github.com/abatilo/taskdash/internal/task"
)

// screen is the top-level mode: authenticating or using the dashboard.
type screen int

const (
	screenAuth screen = iota
	screenMain
)

// authMode selects which auth form is shown.
type authMode int

const (
	authLogin authMode = iota
	authRegister
)

// Model is the Bubble Tea model for the dashboard.
type Model struct {
	ctl       *app.App
	formatter *output.HumanFormatter

	screen   screen
	authMode authMode

	// Auth form
	authInputs []textinput.Model
	authFocus  int

	// Task form, nil unless open
	form *taskForm

	// List state
	cursor int

	// Search state
	searching   bool
	searchInput textinput.Model

	// UI state
	status  string
	width   int
	height  int
	loading bool
}

// New creates the dashboard model. If a session was restored the
// dashboard opens straight on the task list.
func New(ctl *app.App) *Model {
	search := textinput.New()
	search.Placeholder = "Search tasks..."
	search.CharLimit = 100
	search.Width = 40

	m := &Model{
		ctl:         ctl,
		formatter:   output.NewHumanFormatter(),
		screen:      screenAuth,
		searchInput: search,
	}
	m.resetAuthInputs()

	if ctl.Authenticated() {
		m.screen = screenMain
		m.loading = true
	}
	return m
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	if m.screen == screenMain {
		return m.refreshCmd()
	}
	return textinput.Blink
}

// Message types
type errMsg struct{ err error }
type loggedInMsg struct{}
type refreshedMsg struct{}
type taskSavedMsg struct{ task task.Task }
type taskDeletedMsg struct{ id int }
type loggedOutMsg struct{}

func (m *Model) loginCmd(email, password string) tea.Cmd {
	return func() tea.Msg {
		if err := m.ctl.Login(context.Background(), email, password); err != nil {
			return errMsg{err}
		}
		return loggedInMsg{}
	}
}

func (m *Model) registerCmd(username, email, password string) tea.Cmd {
	return func() tea.Msg {
		if err := m.ctl.Register(context.Background(), username, email, password); err != nil {
			return errMsg{err}
		}
		return loggedInMsg{}
	}
}

func (m *Model) refreshCmd() tea.Cmd {
	return func() tea.Msg {
		if err := m.ctl.Refresh(context.Background()); err != nil {
			return errMsg{err}
		}
		return refreshedMsg{}
	}
}

func (m *Model) saveCmd(draft task.Task, editingID int) tea.Cmd {
	return func() tea.Msg {
		var (
			saved *task.Task
			err   error
		)
		if editingID != 0 {
			saved, err = m.ctl.UpdateTask(context.Background(), editingID, draft)
		} else {
			saved, err = m.ctl.CreateTask(context.Background(), draft)
		}
		if err != nil {
			return errMsg{err}
		}
		return taskSavedMsg{task: *saved}
	}
}

func (m *Model) toggleCmd(id int) tea.Cmd {
	return func() tea.Msg {
		saved, err := m.ctl.ToggleStatus(context.Background(), id)
		if err != nil {
			return errMsg{err}
		}
		return taskSavedMsg{task: *saved}
	}
}

func (m *Model) deleteCmd(id int) tea.Cmd {
	return func() tea.Msg {
		if err := m.ctl.DeleteTask(context.Background(), id); err != nil {
			return errMsg{err}
		}
		return taskDeletedMsg{id: id}
	}
}

func (m *Model) logoutCmd() tea.Cmd {
	return func() tea.Msg {
		if err := m.ctl.Logout(); err != nil {
			return errMsg{err}
		}
		return loggedOutMsg{}
	}
}

// resetAuthInputs rebuilds the auth form fields for the current mode.
// Login asks for email and password; registration adds a username.
func (m *Model) resetAuthInputs() {
	email := textinput.New()
	email.Placeholder = "email"

	password := textinput.New()
	password.Placeholder = "password"
	password.EchoMode = textinput.EchoPassword

	if m.authMode == authRegister {
		username := textinput.New()
		username.Placeholder = "username"
		username.Focus()
		m.authInputs = []textinput.Model{username, email, password}
	} else {
		email.Focus()
		m.authInputs = []textinput.Model{email, password}
	}
	m.authFocus = 0
}
