package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Version is set at build time.
	Version = "dev"

	rootFlags struct {
		configPath string
		logLevel   string
	}
)

var rootCmd = &cobra.Command{
	Use:     "wisdom-flow",
	Short:   "Extract wisdom from a YouTube transcript with fabric patterns",
	Long:    `wisdom-flow fetches a video transcript, summarizes it chunk by chunk with the extract_wisdom pattern and drafts a project with create_coding_project. Results are written to ~/output.`,
	Version: Version,
	Args:    cobra.NoArgs,
	RunE:    runRun,

	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command.
func Execute() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&rootFlags.configPath, "config", "c", "", "Config file (default ~/.config/wisdom-flow/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&rootFlags.logLevel, "log-level", "", "Log level: debug, info, warn, error (overrides config)")
	addRunFlags(rootCmd)
}
