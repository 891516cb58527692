package output

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/abatilo/taskdash/internal/api"
	"github.com/abatilo/taskdash/internal/render"
	"github.com/abatilo/taskdash/internal/task"
)

// barWidth is the widest a terminal chart bar gets.
const barWidth = 30

// HumanFormatter formats output for human-readable terminal display.
type HumanFormatter struct {
	titleStyle lipgloss.Style
	dimStyle   lipgloss.Style
	warnStyle  lipgloss.Style
}

// NewHumanFormatter creates a new HumanFormatter.
func NewHumanFormatter() *HumanFormatter {
	return &HumanFormatter{
		titleStyle: lipgloss.NewStyle().Bold(true),
		dimStyle:   lipgloss.NewStyle().Foreground(lipgloss.Color(string(render.ColorGray))),
		warnStyle:  lipgloss.NewStyle().Foreground(lipgloss.Color(string(render.ColorAmber))),
	}
}

// FormatUser formats the signed-in user for display.
func (f *HumanFormatter) FormatUser(u *api.User) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Logged in as %s\n", f.titleStyle.Render(u.Username)))
	if u.Email != "" {
		sb.WriteString(fmt.Sprintf("  Email: %s\n", u.Email))
	}
	return sb.String()
}

// FormatTask formats a single task for display.
func (f *HumanFormatter) FormatTask(t *task.Task) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("[%d] %s\n", t.ID, f.titleStyle.Render(t.Title)))
	sb.WriteString(fmt.Sprintf("  Status:   %s\n", f.statusLabel(t.Status)))
	sb.WriteString(fmt.Sprintf("  Priority: %s\n", t.Priority))
	if t.Category != "" {
		sb.WriteString(fmt.Sprintf("  Category: %s\n", t.Category))
	}
	if t.DueDate != nil && !t.DueDate.IsZero() {
		sb.WriteString(fmt.Sprintf("  Due:      %s\n", t.DueDate.Format("2006-01-02 15:04")))
	}
	if t.EstimatedHours > 0 || t.ActualHours > 0 {
		sb.WriteString(fmt.Sprintf("  Hours:    %.1f estimated / %.1f actual\n", t.EstimatedHours, t.ActualHours))
	}
	if tags := t.SortedTags(); len(tags) > 0 {
		sb.WriteString(fmt.Sprintf("  Tags:     %s\n", strings.Join(tags, ", ")))
	}
	if t.Description != "" {
		sb.WriteString("\n")
		sb.WriteString(t.Description)
		sb.WriteString("\n")
	}

	return sb.String()
}

// FormatTaskList formats the list view for display.
func (f *HumanFormatter) FormatTaskList(v render.ListView) string {
	if len(v.Rows) == 0 {
		return "No tasks found.\n"
	}

	var sb strings.Builder
	for i := range v.Rows {
		sb.WriteString(f.formatRow(&v.Rows[i]))
	}
	return sb.String()
}

// formatRow formats a single list row as a compact one-liner.
func (f *HumanFormatter) formatRow(row *render.ListRow) string {
	icon := lipgloss.NewStyle().
		Foreground(lipgloss.Color(string(row.Color))).
		Render(f.statusIcon(row.Status))

	line := fmt.Sprintf("%s %s [%d] %s", icon, f.priorityMark(row.Priority), row.ID, row.Title)
	if row.Category != "" {
		line += " " + f.dimStyle.Render("("+row.Category+")")
	}
	if row.Overdue {
		line += " " + f.warnStyle.Render("OVERDUE")
	} else if row.DueDate != nil {
		line += " " + f.dimStyle.Render("due "+row.DueDate.Format("2006-01-02"))
	}
	return line + "\n"
}

// FormatCalendar formats calendar events grouped by day.
func (f *HumanFormatter) FormatCalendar(events []render.Event) string {
	if len(events) == 0 {
		return "No scheduled tasks.\n"
	}

	byDay := make(map[string][]render.Event)
	for _, e := range events {
		day := e.Start.Format("2006-01-02")
		byDay[day] = append(byDay[day], e)
	}
	days := make([]string, 0, len(byDay))
	for day := range byDay {
		days = append(days, day)
	}
	sort.Strings(days)

	var sb strings.Builder
	for _, day := range days {
		sb.WriteString(f.titleStyle.Render(day))
		sb.WriteString("\n")
		for _, e := range byDay[day] {
			dot := lipgloss.NewStyle().
				Foreground(lipgloss.Color(string(e.Color))).
				Render("●")
			sb.WriteString(fmt.Sprintf("  %s %s [%d] %s\n", dot, e.Start.Format("15:04"), e.ID, e.Title))
		}
	}
	return sb.String()
}

// FormatReport formats the reports view: summary cards, category and
// trend charts, and the time-tracking table.
func (f *HumanFormatter) FormatReport(r render.Report) string {
	var sb strings.Builder

	for _, card := range r.Cards {
		value := card.Value
		if card.Warning {
			value = f.warnStyle.Render(value)
		}
		sb.WriteString(fmt.Sprintf("  %-16s %s\n", card.Label, value))
	}

	if len(r.Categories.Labels) > 0 {
		sb.WriteString("\n")
		sb.WriteString(f.titleStyle.Render("Tasks by Category"))
		sb.WriteString("\n")
		sb.WriteString(f.formatBars(r.Categories))
	}

	sb.WriteString("\n")
	sb.WriteString(f.titleStyle.Render(r.Productivity.Label))
	sb.WriteString("\n")
	sb.WriteString(f.formatTrend(r.Productivity))

	if len(r.TimeTracking) > 0 {
		sb.WriteString("\n")
		sb.WriteString(f.titleStyle.Render("Time Tracking"))
		sb.WriteString("\n")
		sb.WriteString(fmt.Sprintf("  %-30s %10s %10s %10s\n", "Task", "Estimated", "Actual", "Diff"))
		for _, row := range r.TimeTracking {
			line := fmt.Sprintf("  %-30s %10.1f %10.1f %+10.1f", truncate(row.Title, 30), row.EstimatedHours, row.ActualHours, row.Difference)
			if row.Highlight {
				line = f.warnStyle.Render(line)
			}
			sb.WriteString(line + "\n")
		}
	}

	return sb.String()
}

// formatBars renders the category breakdown as horizontal text bars.
func (f *HumanFormatter) formatBars(c render.BarChart) string {
	max := 1
	for _, s := range c.Series {
		for _, v := range s.Values {
			if v > max {
				max = v
			}
		}
	}

	var sb strings.Builder
	for i, label := range c.Labels {
		sb.WriteString(fmt.Sprintf("  %s\n", label))
		for _, s := range c.Series {
			if i >= len(s.Values) {
				continue
			}
			width := s.Values[i] * barWidth / max
			bar := lipgloss.NewStyle().
				Foreground(lipgloss.Color(string(s.Color))).
				Render(strings.Repeat("█", width))
			sb.WriteString(fmt.Sprintf("    %-10s %s %d\n", s.Label, bar, s.Values[i]))
		}
	}
	return sb.String()
}

// formatTrend renders the completion trend as one line per day.
func (f *HumanFormatter) formatTrend(l render.LineChart) string {
	max := 1
	for _, v := range l.Values {
		if v > max {
			max = v
		}
	}

	var sb strings.Builder
	for i, label := range l.Labels {
		if i >= len(l.Values) {
			break
		}
		width := l.Values[i] * barWidth / max
		bar := lipgloss.NewStyle().
			Foreground(lipgloss.Color(string(l.Color))).
			Render(strings.Repeat("█", width))
		sb.WriteString(fmt.Sprintf("  %s %s %d\n", label, bar, l.Values[i]))
	}
	return sb.String()
}

// FormatError formats an error for display.
func (f *HumanFormatter) FormatError(err error) string {
	return fmt.Sprintf("Error: %s\n", err.Error())
}

// FormatMessage formats a simple message.
func (f *HumanFormatter) FormatMessage(msg string) string {
	return msg + "\n"
}

func (f *HumanFormatter) statusLabel(s task.Status) string {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(string(render.StatusColor(s)))).
		Render(string(s))
}

func (f *HumanFormatter) statusIcon(s task.Status) string {
	switch s {
	case task.StatusPending:
		return "[ ]"
	case task.StatusInProgress:
		return "[*]"
	case task.StatusCompleted:
		return "[X]"
	default:
		return "[?]"
	}
}

func (f *HumanFormatter) priorityMark(p task.Priority) string {
	switch p {
	case task.PriorityHigh:
		return "P1"
	case task.PriorityMedium:
		return "P2"
	case task.PriorityLow:
		return "P3"
	default:
		return "P?"
	}
}

// truncate shortens by runes so multi-byte titles stay valid UTF-8.
func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}
