package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abatilo/taskdash/internal/gcal"
)

// calendarCmd implements 'taskdash calendar'.
func calendarCmd() *cobra.Command {
	var push bool
	cmd := &cobra.Command{
		Use:   "calendar",
		Short: "Show scheduled tasks, optionally pushing them to Google Calendar",
		Run: func(cmd *cobra.Command, _ []string) {
			a, cfg, err := getApp()
			if err != nil {
				printError(err)
			}
			if err := a.Refresh(cmd.Context()); err != nil {
				printError(err)
			}

			events := a.CalendarEvents()
			printOutput(formatter.FormatCalendar(events))

			if !push {
				return
			}
			pusher, err := gcal.New(cmd.Context(), cfg.Calendar, log)
			if err != nil {
				printError(err)
			}
			n, err := pusher.Push(cmd.Context(), events)
			if err != nil {
				printError(err)
			}

			// Tasks that lost their due date leave the calendar too.
			for _, t := range a.Store().Tasks() {
				if t.DueDate != nil && !t.DueDate.IsZero() {
					continue
				}
				if err := pusher.Remove(cmd.Context(), t.ID); err != nil {
					printError(err)
				}
			}
			printOutput(formatter.FormatMessage(fmt.Sprintf("Pushed %d events to Google Calendar", n)))
		},
	}
	cmd.Flags().BoolVar(&push, "push", false, "Push events to Google Calendar")
	return cmd
}

// reportsCmd implements 'taskdash reports'.
func reportsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "reports",
		Short: "Show task statistics and charts",
		Run: func(cmd *cobra.Command, _ []string) {
			a, _, err := getApp()
			if err != nil {
				printError(err)
			}
			if err := a.Refresh(cmd.Context()); err != nil {
				printError(err)
			}
			printOutput(formatter.FormatReport(a.Report()))
		},
	}
}
