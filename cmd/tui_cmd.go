package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"pomodoro/internal/platform"
	"pomodoro/internal/ui/terminal"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

func newTUICmd(opts *options) *cobra.Command {
	var debugLog string

	tuiCmd := &cobra.Command{
		Use:   "tui",
		Short: "Run the timer in the terminal",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI(cmd, opts, debugLog)
		},
	}
	tuiCmd.Flags().StringVar(&debugLog, "debug-log", filepath.Join(os.TempDir(), "pomodoro-tui.log"), "file receiving diagnostics while the terminal UI owns the screen")
	return tuiCmd
}

func runTUI(cmd *cobra.Command, opts *options, debugLog string) error {
	settings, err := opts.settings(cmd.Flags())
	if err != nil {
		return err
	}

	logFile, err := tea.LogToFile(debugLog, "pomodoro")
	if err != nil {
		return fmt.Errorf("open debug log: %w", err)
	}
	defer logFile.Close()

	rt, err := newRuntime(settings)
	if err != nil {
		if errors.Is(err, platform.ErrAlreadyRunning) {
			return fmt.Errorf("another Pomodoro timer is already running")
		}
		return err
	}

	events := rt.keeper.Subscribe(64)
	rt.start()
	defer rt.shutdown()

	model := terminal.New(events, rt.snapshot(), terminal.Controls{
		Press:    rt.post(rt.keeper.Press),
		Reset:    rt.post(rt.keeper.Reset),
		Activity: rt.monitor.OnKeyActivity,
	})
	if err := model.Run(); err != nil {
		return fmt.Errorf("terminal ui: %w", err)
	}
	return nil
}
