package main

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/abatilo/taskdash/internal/tui"
)

// dashCmd implements 'taskdash dash', the interactive dashboard.
func dashCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dash",
		Short: "Open the interactive dashboard",
		Run: func(_ *cobra.Command, _ []string) {
			a, _, err := getApp()
			if err != nil {
				printError(err)
			}

			p := tea.NewProgram(tui.New(a), tea.WithAltScreen())
			if _, err := p.Run(); err != nil {
				printError(err)
			}
		},
	}
}
