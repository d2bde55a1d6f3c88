// Package cli implements the darklock command line interface.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	cfgFile        string
	logLevel       string
	nonInteractive bool
)

var rootCmd = &cobra.Command{
	Use:   "darklock",
	Short: "Terminal demo of the AI dark mode unlock ritual",
	Long: `darklock plays a scripted "AI dark mode unlocker" ceremony in your
terminal: a timed step sequence with a progress bar, a step timeline, a fake
device preview, and narration. No backend, no real AI, no pixels harmed.

Running darklock without a subcommand launches the interactive demo.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runTUI()
	},
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default $XDG_CONFIG_HOME/darklock/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level (trace, debug, info, warn, error)")
	rootCmd.PersistentFlags().BoolVar(&nonInteractive, "non-interactive", false, "never prompt; fail when a TTY is required")
}
