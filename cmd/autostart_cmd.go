package main

import (
	"fmt"

	"pomodoro/internal/platform"

	"github.com/spf13/cobra"
)

func newAutostartCmd() *cobra.Command {
	autostartCmd := &cobra.Command{
		Use:   "autostart",
		Short: "Launch the widget at login",
	}

	autostartCmd.AddCommand(
		&cobra.Command{
			Use:   "enable",
			Short: "Register the widget to start at login",
			RunE: func(cmd *cobra.Command, args []string) error {
				autostart, err := platform.NewAutostart(appName)
				if err != nil {
					return err
				}
				if err := autostart.Enable(); err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), "autostart enabled")
				return nil
			},
		},
		&cobra.Command{
			Use:   "disable",
			Short: "Stop starting the widget at login",
			RunE: func(cmd *cobra.Command, args []string) error {
				autostart, err := platform.NewAutostart(appName)
				if err != nil {
					return err
				}
				if err := autostart.Disable(); err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), "autostart disabled")
				return nil
			},
		},
		&cobra.Command{
			Use:   "status",
			Short: "Report whether the widget starts at login",
			RunE: func(cmd *cobra.Command, args []string) error {
				autostart, err := platform.NewAutostart(appName)
				if err != nil {
					return err
				}
				enabled, err := autostart.Enabled()
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "autostart enabled: %t\n", enabled)
				return nil
			},
		},
	)
	return autostartCmd
}
