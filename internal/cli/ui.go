// Package cli provides TUI launch commands.
package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/Design-Arena-Gens/darklock/internal/catalog"
	"github.com/Design-Arena-Gens/darklock/internal/logging"
	"github.com/Design-Arena-Gens/darklock/internal/session"
	"github.com/Design-Arena-Gens/darklock/internal/tui"
)

func init() {
	rootCmd.AddCommand(uiCmd)
}

var uiCmd = &cobra.Command{
	Use:   "ui",
	Short: "Launch the unlock demo TUI",
	Long:  "Launch the interactive unlock demo. This is also what plain `darklock` does.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runTUI()
	},
}

func runTUI() error {
	if IsNonInteractive() {
		return fmt.Errorf("the demo TUI requires an interactive terminal; try `darklock play`")
	}

	cat, err := loadCatalog()
	if err != nil {
		return err
	}

	// Keep log lines off the alt screen.
	logging.SetOutput(io.Discard)
	if cfg := GetConfig(); cfg != nil && cfg.Log.File != "" {
		file, err := os.OpenFile(cfg.Log.File, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		defer file.Close()
		logging.SetOutput(file)
	}

	controller := session.NewController(cat, catalog.DemoScript())

	theme := "default"
	if cfg := GetConfig(); cfg != nil && cfg.TUI.Theme != "" {
		theme = cfg.TUI.Theme
	}

	return tui.Run(controller, theme)
}
