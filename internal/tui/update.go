package tui

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/abatilo/taskdash/internal/app"
)

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case errMsg:
		m.loading = false
		m.status = "Error: " + msg.err.Error()
		return m, nil

	case loggedInMsg:
		// The controller already fetched the task list as part of login.
		m.screen = screenMain
		m.cursor = 0
		m.loading = false
		m.status = "Welcome, " + m.ctl.CurrentUser().Username
		return m, nil

	case refreshedMsg:
		m.loading = false
		m.clampCursor()
		return m, nil

	case taskSavedMsg:
		m.status = "Saved: " + msg.task.Title
		m.clampCursor()
		return m, nil

	case taskDeletedMsg:
		m.status = "Task deleted"
		m.clampCursor()
		return m, nil

	case loggedOutMsg:
		m.screen = screenAuth
		m.authMode = authLogin
		m.resetAuthInputs()
		m.status = ""
		return m, textinput.Blink

	case tea.KeyMsg:
		if m.screen == screenAuth {
			return m.updateAuth(msg)
		}
		if m.form != nil {
			return m.updateForm(msg)
		}
		if m.searching {
			return m.updateSearch(msg)
		}
		return m.updateMain(msg)
	}

	return m, nil
}

func (m *Model) updateAuth(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "esc":
		return m, tea.Quit

	case "ctrl+r":
		if m.authMode == authLogin {
			m.authMode = authRegister
		} else {
			m.authMode = authLogin
		}
		m.resetAuthInputs()
		return m, nil

	case "tab", "down":
		m.authFocusMove(1)
		return m, nil

	case "shift+tab", "up":
		m.authFocusMove(-1)
		return m, nil

	case "enter":
		if m.authFocus < len(m.authInputs)-1 {
			m.authFocusMove(1)
			return m, nil
		}
		m.status = ""
		m.loading = true
		if m.authMode == authRegister {
			return m, m.registerCmd(
				m.authInputs[0].Value(),
				m.authInputs[1].Value(),
				m.authInputs[2].Value(),
			)
		}
		return m, m.loginCmd(m.authInputs[0].Value(), m.authInputs[1].Value())
	}

	var cmd tea.Cmd
	m.authInputs[m.authFocus], cmd = m.authInputs[m.authFocus].Update(msg)
	return m, cmd
}

func (m *Model) authFocusMove(delta int) {
	m.authInputs[m.authFocus].Blur()
	n := len(m.authInputs)
	m.authFocus = (m.authFocus + delta + n) % n
	m.authInputs[m.authFocus].Focus()
}

func (m *Model) updateForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.ctl.CancelEdit()
		m.form = nil
		m.status = ""
		return m, nil

	case "tab", "down":
		m.form.next()
		return m, nil

	case "shift+tab", "up":
		m.form.prev()
		return m, nil

	case "enter":
		if m.form.focus < fieldCount-1 {
			m.form.next()
			return m, nil
		}
		draft, err := m.form.toTask()
		if err != nil {
			m.status = "Error: " + err.Error()
			return m, nil
		}
		editingID := m.form.editingID
		m.form = nil
		return m, m.saveCmd(draft, editingID)
	}

	return m, m.form.update(msg)
}

func (m *Model) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		m.searching = false
		m.searchInput.Blur()
		return m, nil

	case "esc":
		m.searching = false
		m.searchInput.Blur()
		m.searchInput.SetValue("")
		m.applySearch()
		return m, nil
	}

	var cmd tea.Cmd
	m.searchInput, cmd = m.searchInput.Update(msg)
	m.applySearch()
	return m, cmd
}

// applySearch updates the filter criteria as the query changes.
func (m *Model) applySearch() {
	c := m.ctl.Criteria()
	c.Search = m.searchInput.Value()
	m.ctl.SetCriteria(c)
	m.clampCursor()
}

func (m *Model) updateMain(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit

	case "1":
		return m, m.switchView(app.ViewTasks)
	case "2":
		return m, m.switchView(app.ViewCalendar)
	case "3":
		return m, m.switchView(app.ViewReports)

	case "j", "down":
		m.cursor++
		m.clampCursor()
		return m, nil

	case "k", "up":
		m.cursor--
		m.clampCursor()
		return m, nil

	case " ":
		if id, ok := m.selectedID(); ok {
			return m, m.toggleCmd(id)
		}
		return m, nil

	case "x":
		if id, ok := m.selectedID(); ok {
			return m, m.deleteCmd(id)
		}
		return m, nil

	case "e":
		if id, ok := m.selectedID(); ok {
			if err := m.ctl.BeginEdit(id); err != nil {
				m.status = "Error: " + err.Error()
				return m, nil
			}
			m.form = newTaskForm(m.ctl.Editing())
		}
		return m, nil

	case "n":
		m.ctl.CancelEdit()
		m.form = newTaskForm(nil)
		return m, nil

	case "/":
		if m.ctl.ActiveView() == app.ViewTasks {
			m.searching = true
			m.searchInput.Focus()
		}
		return m, nil

	case "r":
		m.loading = true
		return m, m.refreshCmd()

	case "L":
		return m, m.logoutCmd()
	}

	return m, nil
}

func (m *Model) switchView(v app.View) tea.Cmd {
	if err := m.ctl.SwitchView(v); err != nil {
		m.status = "Error: " + err.Error()
		return nil
	}
	m.cursor = 0
	m.status = ""
	return nil
}

// selectedID returns the task under the cursor, if any.
func (m *Model) selectedID() (int, bool) {
	rows := m.ctl.ListView().Rows
	if m.cursor < 0 || m.cursor >= len(rows) {
		return 0, false
	}
	return rows[m.cursor].ID, true
}

func (m *Model) clampCursor() {
	n := len(m.ctl.VisibleTasks())
	if m.cursor >= n {
		m.cursor = n - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}
