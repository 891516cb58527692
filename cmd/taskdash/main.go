package main

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/abatilo/taskdash/internal/api"
	"github.com/abatilo/taskdash/internal/app"
	"github.com/abatilo/taskdash/internal/config"
	"github.com/abatilo/taskdash/internal/output"
)

//nolint:gochecknoglobals // CLI flags and formatter are package-level by design
var (
	jsonOutput bool
	apiURL     string
	formatter  output.Formatter
	log        = logrus.New()
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "taskdash",
		Short: "A terminal dashboard for your task manager",
		Long:  "taskdash - browse, edit and report on your tasks from the terminal.",
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			if jsonOutput {
				formatter = output.NewJSONFormatter()
			} else {
				formatter = output.NewHumanFormatter()
			}
		},
	}

	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output in JSON format")
	rootCmd.PersistentFlags().StringVar(&apiURL, "api-url", "", "Base URL of the task API (overrides config)")

	rootCmd.AddCommand(
		loginCmd(),
		registerCmd(),
		logoutCmd(),
		whoamiCmd(),
		listCmd(),
		addCmd(),
		editCmd(),
		doneCmd(),
		rmCmd(),
		calendarCmd(),
		reportsCmd(),
		dashCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// getApp wires config, logging and the API gateway into a controller
// with any saved session restored.
func getApp() (*app.App, *config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}
	if apiURL != "" {
		cfg.APIURL = apiURL
	}

	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = logrus.WarnLevel
	}
	log.SetLevel(level)
	log.SetOutput(os.Stderr)

	dir, err := config.Dir()
	if err != nil {
		return nil, nil, err
	}

	a := app.New(api.NewClient(cfg.APIURL, log), dir, log)
	a.Restore()
	return a, cfg, nil
}

func printOutput(s string) {
	os.Stdout.WriteString(s) //nolint:gosec // stdout write errors are unrecoverable
}

func printError(err error) {
	os.Stdout.WriteString(formatter.FormatError(err)) //nolint:gosec // stdout write errors are unrecoverable
	os.Exit(1)
}
