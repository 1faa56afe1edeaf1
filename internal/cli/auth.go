package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

// birthDateLayout is the accepted format for the --birth-date flag
const birthDateLayout = "2006-01-02"

func newSignupCmd() *cobra.Command {
	var user, pass, birthDate string

	cmd := &cobra.Command{
		Use:   "signup",
		Short: "Create an account and sign in",
		RunE: func(cmd *cobra.Command, args []string) error {
			parsed, err := time.Parse(birthDateLayout, birthDate)
			if err != nil {
				return fmt.Errorf("--birth-date must be YYYY-MM-DD")
			}

			if err := app.Sessions.SignUp(cmd.Context(), user, pass, parsed); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(currentSession())
			return nil
		},
	}

	cmd.Flags().StringVar(&user, "user", "", "Username (required)")
	cmd.Flags().StringVar(&pass, "pass", "", "Password (required)")
	cmd.Flags().StringVar(&birthDate, "birth-date", "", "Birth date, YYYY-MM-DD (required)")
	_ = cmd.MarkFlagRequired("user")
	_ = cmd.MarkFlagRequired("pass")
	_ = cmd.MarkFlagRequired("birth-date")

	return cmd
}

func newLoginCmd() *cobra.Command {
	var user, pass string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Sign in with an existing account",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Sessions.SignIn(cmd.Context(), user, pass); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(currentSession())
			return nil
		},
	}

	cmd.Flags().StringVar(&user, "user", "", "Username (required)")
	cmd.Flags().StringVar(&pass, "pass", "", "Password (required)")
	_ = cmd.MarkFlagRequired("user")
	_ = cmd.MarkFlagRequired("pass")

	return cmd
}

func newLogoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Sign out of the active session",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Sessions.SignOut(cmd.Context()); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.PrintMessage("Signed out")
			return nil
		},
	}
}

func newWhoamiCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the active session",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := NewOutput(cfg.Output)
			out.Print(currentSession())
			return nil
		},
	}
}

func currentSession() Session {
	user, ok := app.Sessions.Current()
	if !ok {
		return Session{}
	}
	return Session{
		Authenticated: true,
		Username:      user.Username,
		BirthDate:     user.BirthDate.Format(birthDateLayout),
	}
}
