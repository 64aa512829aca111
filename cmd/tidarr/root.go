package main

import (
	"github.com/spf13/cobra"
)

func newRootCommand() *cobra.Command {
	var logLevelFlag string

	ctx := newCommandContext(&logLevelFlag)

	rootCmd := &cobra.Command{
		Use:           "tidarr",
		Short:         "Serve Tidal catalog data to Lidarr as its metadata provider",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	rootCmd.PersistentFlags().StringVar(&logLevelFlag, "log-level", "", "Override LOG_LEVEL (debug, info, warn, error)")

	rootCmd.AddCommand(newServeCommand(ctx))
	rootCmd.AddCommand(newSearchCommand(ctx))
	rootCmd.AddCommand(newRefreshArtistCommand(ctx))
	rootCmd.AddCommand(newIDCommand())
	rootCmd.AddCommand(newSessionCommand(ctx))
	rootCmd.AddCommand(newCacheCommand(ctx))

	return rootCmd
}
