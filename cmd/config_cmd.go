package main

import (
	"fmt"
	"os"

	"pomodoro/internal/storage"

	"github.com/spf13/cobra"
)

func newConfigCmd(opts *options) *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect or create the settings file",
	}

	var force bool
	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Write a settings file with the current values",
		RunE: func(cmd *cobra.Command, args []string) error {
			configPath, err := opts.resolveConfigPath()
			if err != nil {
				return err
			}
			if _, err := os.Stat(configPath); err == nil && !force {
				return fmt.Errorf("%s already exists (use --force to overwrite)", configPath)
			}
			settings, err := opts.settings(cmd.Flags())
			if err != nil {
				return err
			}
			if err := storage.SaveSettings(configPath, settings); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", configPath)
			return nil
		},
	}
	initCmd.Flags().BoolVar(&force, "force", false, "overwrite an existing file")

	showCmd := &cobra.Command{
		Use:   "show",
		Short: "Print the effective settings",
		RunE: func(cmd *cobra.Command, args []string) error {
			configPath, err := opts.resolveConfigPath()
			if err != nil {
				return err
			}
			settings, err := opts.settings(cmd.Flags())
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "config file:     %s\n", configPath)
			fmt.Fprintf(out, "pomodoro:        %s\n", settings.PomodoroDuration)
			fmt.Fprintf(out, "inactivity:      %s\n", settings.InactivityThreshold)
			fmt.Fprintf(out, "alarm sound:     %s\n", settings.AlarmSound)
			fmt.Fprintf(out, "session log:     %s\n", settings.LogFile)
			fmt.Fprintf(out, "idle detection:  %t\n", settings.IdleDetection)
			return nil
		},
	}

	configCmd.AddCommand(initCmd, showCmd)
	return configCmd
}
