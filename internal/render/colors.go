package render

import "github.com/abatilo/taskdash/internal/task"

// Color is a hex display color shared by every render target.
type Color string

const (
	ColorAmber Color = "#FFC107" // pending
	ColorTeal  Color = "#17A2B8" // in progress
	ColorGreen Color = "#28A745" // completed
	ColorGray  Color = "#6C757D" // anything unrecognized
)

// StatusColor is the single source of the status-to-color mapping. List
// rows, calendar events, and chart series must all go through it.
func StatusColor(s task.Status) Color {
	switch s {
	case task.StatusPending:
		return ColorAmber
	case task.StatusInProgress:
		return ColorTeal
	case task.StatusCompleted:
		return ColorGreen
	default:
		return ColorGray
	}
}
