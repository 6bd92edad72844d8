package main

import (
	"fmt"

	"pomodoro/internal/storage"

	"github.com/spf13/cobra"
)

func newLogCmd(opts *options) *cobra.Command {
	var count int

	logCmd := &cobra.Command{
		Use:   "log",
		Short: "Print the most recent sessions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			settings, err := opts.settings(cmd.Flags())
			if err != nil {
				return err
			}
			blocks, err := storage.NewSessionLog(settings.LogFile).Tail(count)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if len(blocks) == 0 {
				fmt.Fprintf(out, "no sessions logged in %s\n", settings.LogFile)
				return nil
			}
			for _, block := range blocks {
				fmt.Fprintf(out, "%s\n\n", block)
			}
			return nil
		},
	}
	logCmd.Flags().IntVarP(&count, "count", "n", 5, "number of sessions to show (0 for all)")
	return logCmd
}
