package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"studywise-client/internal/bootstrap"
	"studywise-client/internal/config"
	"studywise-client/internal/session"
	"studywise-client/internal/tracer"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// app is shared by every command of one run. The container is built lazily
// so that `--help` never touches storage or prompts.
type app struct {
	cfg      *config.Config
	prompter session.Prompter
	host     string

	container *bootstrap.Container
}

func (a *app) open(cmd *cobra.Command) (*bootstrap.Container, error) {
	if a.container != nil {
		return a.container, nil
	}
	c, err := bootstrap.NewContainer(cmd.Context(), a.cfg, bootstrap.ClientOptions{
		Host:     a.host,
		Prompter: a.prompter,
	})
	if err != nil {
		return nil, err
	}
	a.container = c
	return c, nil
}

func (a *app) close() {
	if a.container != nil {
		_ = a.container.Logger.Sync()
	}
}

func main() {
	cfg := config.Load()
	shutdownTracer := tracer.InitTracer(cfg.Trace)

	a := &app{cfg: cfg, prompter: session.NewTerminalPrompter()}
	err := newRootCmd(a).ExecuteContext(context.Background())
	a.close()
	_ = shutdownTracer(context.Background())

	if err != nil {
		color.New(color.FgRed).Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func newRootCmd(a *app) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "studywise",
		Short:         "StudyWise study planner client",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.PersistentFlags().StringVar(&a.host, "host", "", "Host name used to choose the local or remote backend (default from STUDYWISE_HOST)")

	rootCmd.AddCommand(
		newWhoamiCmd(a),
		newLoginCmd(a),
		newModeCmd(a),
		newThemeCmd(a),
		newHealthCmd(a),
		newLogsCmd(a),
		newUploadsCmd(a),
		newTopicsCmd(a),
		newUploadCmd(a),
		newQuizCmd(a),
		newPlanCmd(a),
		newDashboardCmd(a),
		newTimetableCmd(a),
		newNotesCmd(a),
	)
	return rootCmd
}

var (
	heading = color.New(color.Bold)
	success = color.New(color.FgGreen)
	warning = color.New(color.FgYellow)
	muted   = color.New(color.Faint)
)

func printSuccess(w io.Writer, format string, args ...interface{}) {
	success.Fprintf(w, "✓ "+format+"\n", args...)
}

func printWarning(w io.Writer, format string, args ...interface{}) {
	warning.Fprintf(w, "! "+format+"\n", args...)
}

func printHeading(w io.Writer, text string) {
	heading.Fprintln(w, text)
}

func writeFile(path string, data []byte) error {
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
