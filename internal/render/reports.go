package render

import (
	"fmt"
	"sort"

	"github.com/abatilo/taskdash/internal/stats"
)

// highlightThresholdHours flags time-tracking rows whose estimate missed by
// more than this many hours either way.
const highlightThresholdHours = 2

// SummaryCard is one number on the reports view.
type SummaryCard struct {
	Label   string `json:"label"`
	Value   string `json:"value"`
	Warning bool   `json:"warning,omitempty"`
}

// BarSeries is one labeled series of a bar chart.
type BarSeries struct {
	Label  string `json:"label"`
	Values []int  `json:"values"`
	Color  Color  `json:"color"`
}

// BarChart is the category breakdown, ready for a charting collaborator.
type BarChart struct {
	Labels []string    `json:"labels"`
	Series []BarSeries `json:"series"`
}

// LineChart is the productivity trend, ready for a charting collaborator.
type LineChart struct {
	Label  string   `json:"label"`
	Labels []string `json:"labels"`
	Values []int    `json:"values"`
	Color  Color    `json:"color"`
}

// TimeRow is one line of the time-tracking table.
type TimeRow struct {
	Title          string  `json:"title"`
	EstimatedHours float64 `json:"estimated_hours"`
	ActualHours    float64 `json:"actual_hours"`
	Difference     float64 `json:"difference"`
	Highlight      bool    `json:"highlight,omitempty"`
}

// Report is the reports view's full display model.
type Report struct {
	Cards        []SummaryCard `json:"cards"`
	Categories   BarChart      `json:"categories"`
	Productivity LineChart     `json:"productivity"`
	TimeTracking []TimeRow     `json:"time_tracking"`
}

// BuildReport prepares the reports view from computed statistics.
func BuildReport(s stats.Statistics) Report {
	r := Report{
		Cards: []SummaryCard{
			{Label: "Total Tasks", Value: fmt.Sprintf("%d", s.TotalTasks)},
			{Label: "Completed", Value: fmt.Sprintf("%d", s.CompletedTasks)},
			{Label: "In Progress", Value: fmt.Sprintf("%d", s.InProgressTasks)},
			{Label: "Pending", Value: fmt.Sprintf("%d", s.PendingTasks)},
			{Label: "Overdue", Value: fmt.Sprintf("%d", s.OverdueTasks), Warning: s.OverdueTasks > 0},
			{Label: "Completion Rate", Value: fmt.Sprintf("%.1f%%", s.CompletionRate)},
		},
	}

	// Stable label order for the category chart
	labels := make([]string, 0, len(s.Categories))
	for cat := range s.Categories {
		labels = append(labels, cat)
	}
	sort.Strings(labels)

	totals := make([]int, len(labels))
	completed := make([]int, len(labels))
	for i, cat := range labels {
		totals[i] = s.Categories[cat].Total
		completed[i] = s.Categories[cat].Completed
	}
	r.Categories = BarChart{
		Labels: labels,
		Series: []BarSeries{
			{Label: "Total Tasks", Values: totals, Color: ColorTeal},
			{Label: "Completed Tasks", Values: completed, Color: ColorGreen},
		},
	}

	trendLabels := make([]string, len(s.Trend))
	trendValues := make([]int, len(s.Trend))
	for i, p := range s.Trend {
		trendLabels[i] = p.Date
		trendValues[i] = p.Completed
	}
	r.Productivity = LineChart{
		Label:  "Completed Tasks",
		Labels: trendLabels,
		Values: trendValues,
		Color:  ColorGreen,
	}

	r.TimeTracking = make([]TimeRow, len(s.TimeTracking))
	for i, row := range s.TimeTracking {
		r.TimeTracking[i] = TimeRow{
			Title:          row.Title,
			EstimatedHours: row.EstimatedHours,
			ActualHours:    row.ActualHours,
			Difference:     row.Difference,
			Highlight:      row.Difference > highlightThresholdHours || row.Difference < -highlightThresholdHours,
		}
	}
	return r
}
