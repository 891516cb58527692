package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// loginCmd implements 'taskdash login'.
func loginCmd() *cobra.Command {
	var password string
	cmd := &cobra.Command{
		Use:   "login <email>",
		Short: "Log in and save the session",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			a, _, err := getApp()
			if err != nil {
				printError(err)
			}

			pw, err := resolvePassword(password)
			if err != nil {
				printError(err)
			}

			if err := a.Login(cmd.Context(), args[0], pw); err != nil {
				printError(err)
			}
			printOutput(formatter.FormatUser(a.CurrentUser()))
		},
	}
	cmd.Flags().StringVarP(&password, "password", "p", "", "Password (prompted when omitted)")
	return cmd
}

// registerCmd implements 'taskdash register'.
func registerCmd() *cobra.Command {
	var password string
	cmd := &cobra.Command{
		Use:   "register <username> <email>",
		Short: "Create an account and log in",
		Args:  cobra.ExactArgs(2),
		Run: func(cmd *cobra.Command, args []string) {
			a, _, err := getApp()
			if err != nil {
				printError(err)
			}

			pw, err := resolvePassword(password)
			if err != nil {
				printError(err)
			}

			if err := a.Register(cmd.Context(), args[0], args[1], pw); err != nil {
				printError(err)
			}
			printOutput(formatter.FormatUser(a.CurrentUser()))
		},
	}
	cmd.Flags().StringVarP(&password, "password", "p", "", "Password (prompted when omitted)")
	return cmd
}

// logoutCmd implements 'taskdash logout'.
func logoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Log out and delete the saved session",
		Run: func(_ *cobra.Command, _ []string) {
			a, _, err := getApp()
			if err != nil {
				printError(err)
			}
			if err := a.Logout(); err != nil {
				printError(err)
			}
			printOutput(formatter.FormatMessage("Logged out"))
		},
	}
}

// whoamiCmd implements 'taskdash whoami'.
func whoamiCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the signed-in user",
		Run: func(_ *cobra.Command, _ []string) {
			a, _, err := getApp()
			if err != nil {
				printError(err)
			}
			if !a.Authenticated() {
				printOutput(formatter.FormatMessage("Not logged in"))
				return
			}
			printOutput(formatter.FormatUser(a.CurrentUser()))
		},
	}
}

// resolvePassword uses the flag value when given, otherwise prompts
// without echoing.
func resolvePassword(flagValue string) (string, error) {
	if flagValue != "" {
		return flagValue, nil
	}

	fmt.Fprint(os.Stderr, "Password: ")
	raw, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return "", fmt.Errorf("reading password: %w", err)
	}
	return strings.TrimSpace(string(raw)), nil
}
