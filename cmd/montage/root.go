package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

func newRootCommand() *cobra.Command {
	var verbose bool

	rootCmd := &cobra.Command{
		Use:           "montage",
		Short:         "Inspect and validate editorial timeline documents",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := slog.LevelWarn
			if verbose {
				level = slog.LevelDebug
			}
			slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	rootCmd.AddCommand(newInspectCommand())
	rootCmd.AddCommand(newClipsCommand())
	rootCmd.AddCommand(newDurationCommand())
	rootCmd.AddCommand(newValidateCommand())

	return rootCmd
}
