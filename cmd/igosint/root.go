package main

import (
	"os"

	"github.com/spf13/cobra"

	"igosint/pkg/ui"
)

var (
	configFile string
	verbose    bool
)

var rootCmd = &cobra.Command{
	Use:   "igosint",
	Short: "Instagram profile OSINT tool",
	Long: `igosint collects the publicly visible data of an Instagram profile:
account metadata, recent post metadata, and optionally the media files
themselves. Results are written as JSON into a per-scan directory.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		ui.PrintLogo()
	},
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		ui.PrintError("%v", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "", "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
}
