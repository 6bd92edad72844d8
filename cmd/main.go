package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

const (
	appName = "Pomodoro"
	appID   = "com.pomodoro.app"
)

func newRootCmd() *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:   "pomodoro",
		Short: "Activity-aware Pomodoro timer",
		Long: `Pomodoro shows a floating countdown that starts when you use the mouse or
keyboard, pauses after a period of inactivity and logs every session to a
plain-text file.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWidget(cmd, opts)
		},
	}

	opts.bind(rootCmd.PersistentFlags())

	rootCmd.AddCommand(newTUICmd(opts))
	rootCmd.AddCommand(newConfigCmd(opts))
	rootCmd.AddCommand(newAutostartCmd())
	rootCmd.AddCommand(newLogCmd(opts))
	return rootCmd
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
