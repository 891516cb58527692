// Package stats derives the reports view's aggregate data from the full
// task list. Statistics are never stored; they are recomputed from scratch
// every time the list changes.
package stats

import (
	"math"
	"sort"
	"time"

	"github.com/abatilo/taskdash/internal/task"
)

// trendDays is the width of the productivity window, inclusive of today.
const trendDays = 7

// Uncategorized is the bucket for tasks without a category value.
const Uncategorized = "general"

// CategoryTally is the per-category task count.
type CategoryTally struct {
	Total     int `json:"total"`
	Completed int `json:"completed"`
}

// TrendPoint is one day of the productivity trend.
type TrendPoint struct {
	Date      string `json:"date"` // ISO date, local calendar
	Completed int    `json:"completed"`
}

// TimeTrackingRow compares estimated against actual hours for one task.
type TimeTrackingRow struct {
	Title          string  `json:"title"`
	EstimatedHours float64 `json:"estimated_hours"`
	ActualHours    float64 `json:"actual_hours"`
	Difference     float64 `json:"difference"`
}

// Statistics is the derived aggregate over the task list.
type Statistics struct {
	TotalTasks      int                      `json:"total_tasks"`
	CompletedTasks  int                      `json:"completed_tasks"`
	InProgressTasks int                      `json:"in_progress_tasks"`
	PendingTasks    int                      `json:"pending_tasks"`
	OverdueTasks    int                      `json:"overdue_tasks"`
	CompletionRate  float64                  `json:"completion_rate"` // percent, 0 when no tasks
	Categories      map[string]CategoryTally `json:"categories"`
	Trend           []TrendPoint             `json:"productivity_trend"` // oldest first
	TimeTracking    []TimeTrackingRow        `json:"time_tracking"`      // descending |difference|
}

// Compute derives Statistics from the full task list. The now parameter
// anchors the overdue check and the 7-day trend window.
func Compute(tasks []task.Task, now time.Time) Statistics {
	s := Statistics{
		TotalTasks: len(tasks),
		Categories: make(map[string]CategoryTally),
	}

	completedByDay := make(map[string]int)
	for i := range tasks {
		t := &tasks[i]
		switch t.Status {
		case task.StatusCompleted:
			s.CompletedTasks++
		case task.StatusInProgress:
			s.InProgressTasks++
		case task.StatusPending:
			s.PendingTasks++
		}
		if t.IsOverdue(now) {
			s.OverdueTasks++
		}

		cat := t.Category
		if cat == "" {
			cat = Uncategorized
		}
		tally := s.Categories[cat]
		tally.Total++
		if t.Status == task.StatusCompleted {
			tally.Completed++
		}
		s.Categories[cat] = tally

		if t.Status == task.StatusCompleted && t.CompletedDate != nil && !t.CompletedDate.IsZero() {
			completedByDay[t.CompletedDate.Day()]++
		}
	}

	if s.TotalTasks > 0 {
		s.CompletionRate = float64(s.CompletedTasks) / float64(s.TotalTasks) * 100
	}

	s.Trend = trend(completedByDay, now)
	s.TimeTracking = timeTracking(tasks)
	return s
}

// trend builds the last-7-calendar-days window, oldest to newest, counting
// tasks completed on each local calendar day.
func trend(completedByDay map[string]int, now time.Time) []TrendPoint {
	points := make([]TrendPoint, 0, trendDays)
	for i := trendDays - 1; i >= 0; i-- {
		day := now.AddDate(0, 0, -i).Local().Format("2006-01-02")
		points = append(points, TrendPoint{Date: day, Completed: completedByDay[day]})
	}
	return points
}

// timeTracking builds one row per task sorted by descending absolute
// difference; ties keep the original task order. Hours that didn't survive
// decoding (NaN) are normalized to zero before subtracting.
func timeTracking(tasks []task.Task) []TimeTrackingRow {
	rows := make([]TimeTrackingRow, 0, len(tasks))
	for i := range tasks {
		est := sanitizeHours(tasks[i].EstimatedHours)
		act := sanitizeHours(tasks[i].ActualHours)
		rows = append(rows, TimeTrackingRow{
			Title:          tasks[i].Title,
			EstimatedHours: est,
			ActualHours:    act,
			Difference:     act - est,
		})
	}
	sort.SliceStable(rows, func(i, j int) bool {
		return math.Abs(rows[i].Difference) > math.Abs(rows[j].Difference)
	})
	return rows
}

func sanitizeHours(h float64) float64 {
	if math.IsNaN(h) || math.IsInf(h, 0) {
		return 0
	}
	return h
}
