package main

import (
	"fmt"
	"strings"

	"studywise-client/internal/render"
	"studywise-client/internal/session"

	"github.com/spf13/cobra"
)

func newWhoamiCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the session email, mode and backend",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := a.open(cmd)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			mode := c.Session.Mode(cmd.Context())
			fmt.Fprintf(out, "Email:   %s\n", c.Session.Email())
			fmt.Fprintf(out, "Mode:    %s\n", mode.Label())
			fmt.Fprintf(out, "Backend: %s\n", c.Client.BaseURL())
			return nil
		},
	}
}

func newLoginCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "login [email]",
		Short: "Change the email every request is made as",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := a.open(cmd)
			if err != nil {
				return err
			}
			if err := c.Session.SetEmail(cmd.Context(), args[0]); err != nil {
				return err
			}
			printSuccess(cmd.OutOrStdout(), "Signed in as %s", c.Session.Email())
			return nil
		},
	}
}

func newModeCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mode",
		Short: "Show or change the AI operating mode",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := a.open(cmd)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), c.Session.Mode(cmd.Context()).Label())
			return nil
		},
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "get",
			Short: "Show the mode the backend has stored for you",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				c, err := a.open(cmd)
				if err != nil {
					return err
				}
				res, err := c.Client.GetAIMode(cmd.Context())
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Backend: %s\nLocal:   %s\n", res.Mode, c.Session.Mode(cmd.Context()))
				return nil
			},
		},
		&cobra.Command{
			Use:       "set [free|ollama|cloud]",
			Short:     "Switch mode on the backend and remember it locally",
			Args:      cobra.ExactArgs(1),
			ValidArgs: []string{"free", "ollama", "cloud"},
			RunE: func(cmd *cobra.Command, args []string) error {
				c, err := a.open(cmd)
				if err != nil {
					return err
				}
				mode, err := session.ParseMode(args[0])
				if err != nil {
					return err
				}
				if _, err := c.Client.SwitchMode(cmd.Context(), mode); err != nil {
					return err
				}
				printSuccess(cmd.OutOrStdout(), "Mode set to %s", mode.Label())
				return nil
			},
		},
		&cobra.Command{
			Use:   "status",
			Short: "Show which AI engines the backend can reach",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				c, err := a.open(cmd)
				if err != nil {
					return err
				}
				out := cmd.OutOrStdout()

				ollama, err := c.Client.OllamaStatus(cmd.Context())
				if err != nil {
					return err
				}
				cloud, err := c.Client.CloudStatus(cmd.Context())
				if err != nil {
					return err
				}

				if ollama.Available {
					printSuccess(out, "Local AI (Ollama) available at %s, model %s", ollama.BaseURL, ollama.Model)
				} else {
					printWarning(out, "Local AI (Ollama) unavailable: %s", ollama.Error)
				}
				if cloud.Ready() {
					printSuccess(out, "Cloud AI configured (%s)", cloud.ModelDefault)
				} else {
					printWarning(out, "Cloud AI not configured: %s", cloud.Note)
				}
				return nil
			},
		},
	)
	return cmd
}

func newThemeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "theme [light|dark]",
		Short: "Show or store the display theme",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := a.open(cmd)
			if err != nil {
				return err
			}
			if len(args) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), c.Session.Theme(cmd.Context()))
				return nil
			}
			return c.Session.SetTheme(cmd.Context(), strings.ToLower(args[0]))
		},
	}
}

func newHealthCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "health",
		Short: "Check that the backend is up",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := a.open(cmd)
			if err != nil {
				return err
			}
			h, err := c.Client.HealthCheck(cmd.Context())
			if err != nil {
				return err
			}
			printSuccess(cmd.OutOrStdout(), "%s (%s, version %s)", h.Message, h.Status, h.Version)
			return nil
		},
	}
}

func newLogsCmd(a *app) *cobra.Command {
	var level string
	var limit int

	cmd := &cobra.Command{
		Use:   "logs",
		Short: "Show recent client log entries, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := a.open(cmd)
			if err != nil {
				return err
			}
			entries, err := c.Logger.GetLogs(strings.ToUpper(level), limit, 0)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if len(entries) == 0 {
				fmt.Fprintln(out, "No log entries.")
				return nil
			}
			for _, e := range entries {
				muted.Fprintf(out, "%s ", render.FormatDateTime(e.Timestamp))
				fmt.Fprintf(out, "%-5s [%s] %s", e.Level, e.Module, e.Message)
				if msg, ok := e.Details["error"]; ok {
					fmt.Fprintf(out, ": %v", msg)
				}
				if ep, ok := e.Details["endpoint"]; ok {
					fmt.Fprintf(out, " (%v)", ep)
				}
				fmt.Fprintln(out)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&level, "level", "", "Only show one level (DEBUG, INFO, WARN, ERROR)")
	cmd.Flags().IntVar(&limit, "limit", 20, "Maximum entries to show")
	return cmd
}
