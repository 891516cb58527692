package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/abatilo/taskdash/internal/app"
	"github.com/abatilo/taskdash/internal/render"
)

var (
	tabStyle       = lipgloss.NewStyle().Padding(0, 2).Foreground(lipgloss.Color(string(render.ColorGray)))
	activeTabStyle = lipgloss.NewStyle().Padding(0, 2).Bold(true).Underline(true)
	cursorStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(string(render.ColorTeal)))
	statusStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color(string(render.ColorGray)))
	overdueStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color(string(render.ColorAmber)))
	headerStyle    = lipgloss.NewStyle().Bold(true)
)

// View implements tea.Model.
func (m *Model) View() string {
	if m.screen == screenAuth {
		return m.viewAuth()
	}

	var sb strings.Builder
	sb.WriteString(m.viewTabs())
	sb.WriteString("\n\n")

	switch {
	case m.form != nil:
		sb.WriteString(m.viewForm())
	case m.loading:
		sb.WriteString("Loading...\n")
	case m.ctl.ActiveView() == app.ViewCalendar:
		sb.WriteString(m.formatter.FormatCalendar(m.ctl.CalendarEvents()))
	case m.ctl.ActiveView() == app.ViewReports:
		sb.WriteString(m.formatter.FormatReport(m.ctl.Report()))
	default:
		sb.WriteString(m.viewTaskList())
	}

	sb.WriteString("\n")
	sb.WriteString(m.viewFooter())
	return sb.String()
}

func (m *Model) viewAuth() string {
	var sb strings.Builder

	title := "Log in"
	if m.authMode == authRegister {
		title = "Create an account"
	}
	sb.WriteString(headerStyle.Render(title))
	sb.WriteString("\n\n")

	for i := range m.authInputs {
		sb.WriteString("  " + m.authInputs[i].View() + "\n")
	}

	sb.WriteString("\n")
	if m.loading {
		sb.WriteString("Signing in...\n")
	}
	if m.status != "" {
		sb.WriteString(overdueStyle.Render(m.status) + "\n")
	}
	sb.WriteString(statusStyle.Render("enter submit • ctrl+r switch login/register • esc quit"))
	return sb.String()
}

func (m *Model) viewTabs() string {
	labels := []struct {
		view app.View
		name string
	}{
		{app.ViewTasks, "[1] Tasks"},
		{app.ViewCalendar, "[2] Calendar"},
		{app.ViewReports, "[3] Reports"},
	}

	parts := make([]string, 0, len(labels))
	for _, l := range labels {
		if m.ctl.ActiveView() == l.view {
			parts = append(parts, activeTabStyle.Render(l.name))
		} else {
			parts = append(parts, tabStyle.Render(l.name))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

func (m *Model) viewTaskList() string {
	var sb strings.Builder

	if m.searching || m.searchInput.Value() != "" {
		sb.WriteString("Search: " + m.searchInput.View() + "\n\n")
	}

	rows := m.ctl.ListView().Rows
	if len(rows) == 0 {
		sb.WriteString("No tasks found.\n")
		return sb.String()
	}

	for i, row := range rows {
		line := m.taskLine(&row)
		if i == m.cursor {
			line = cursorStyle.Render("> ") + line
		} else {
			line = "  " + line
		}
		sb.WriteString(line + "\n")
	}
	return sb.String()
}

func (m *Model) taskLine(row *render.ListRow) string {
	icon := lipgloss.NewStyle().
		Foreground(lipgloss.Color(string(row.Color))).
		Render(statusGlyph(row))

	line := fmt.Sprintf("%s %s", icon, row.Title)
	if row.Category != "" {
		line += statusStyle.Render(" (" + row.Category + ")")
	}
	if row.Overdue {
		line += overdueStyle.Render(" OVERDUE")
	} else if row.DueDate != nil {
		line += statusStyle.Render(" due " + row.DueDate.Format("2006-01-02"))
	}
	return line
}

func statusGlyph(row *render.ListRow) string {
	switch row.Status {
	case "completed":
		return "[X]"
	case "in_progress":
		return "[*]"
	default:
		return "[ ]"
	}
}

func (m *Model) viewForm() string {
	var sb strings.Builder

	title := "New task"
	if m.form.editingID != 0 {
		title = fmt.Sprintf("Edit task %d", m.form.editingID)
	}
	sb.WriteString(headerStyle.Render(title))
	sb.WriteString("\n\n")

	for i := range m.form.inputs {
		sb.WriteString("  " + m.form.inputs[i].View() + "\n")
	}

	sb.WriteString("\n")
	sb.WriteString(statusStyle.Render("enter next/submit • tab next field • esc cancel"))
	return sb.String()
}

func (m *Model) viewFooter() string {
	if m.status != "" {
		return m.status + "\n" + statusStyle.Render(m.helpLine())
	}
	return statusStyle.Render(m.helpLine())
}

func (m *Model) helpLine() string {
	if m.ctl.ActiveView() != app.ViewTasks {
		return "1/2/3 views • r refresh • L logout • q quit"
	}
	return "j/k move • space toggle • n new • e edit • x delete • / search • r refresh • L logout • q quit"
}
