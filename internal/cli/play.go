// Package cli provides headless playback of the unlock sequence.
package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/Design-Arena-Gens/darklock/internal/catalog"
	"github.com/Design-Arena-Gens/darklock/internal/session"
)

var playSpeed float64

func init() {
	playCmd.Flags().Float64Var(&playSpeed, "speed", 1, "playback speed multiplier (2 plays twice as fast)")
	rootCmd.AddCommand(playCmd)
}

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play the unlock sequence without the TUI",
	Long:  "Play the whole unlock sequence in real time, printing each step as it begins.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runPlay(cmd.OutOrStdout())
	},
}

func runPlay(out io.Writer) error {
	if playSpeed <= 0 {
		return fmt.Errorf("speed must be positive")
	}

	cat, err := loadCatalog()
	if err != nil {
		return err
	}
	if playSpeed != 1 {
		cat = cat.Scaled(playSpeed)
	}

	controller := session.NewController(cat, catalog.DemoScript())
	defer controller.Close()

	done := make(chan struct{})
	err = controller.SubscribeFunc("play", func(change session.Change) {
		cur := change.Current
		switch {
		case cur.Phase == session.PhaseComplete && change.Previous.Phase != session.PhaseComplete:
			fmt.Fprintln(out, "[100%] dark mode unlocked")
			close(done)
		case cur.StepIndex >= 0 && cur.StepIndex != change.Previous.StepIndex:
			step := cat.Steps[cur.StepIndex]
			fmt.Fprintf(out, "[%3d%%] %s: %s\n", cur.Progress, step.Title, step.Description)
		}
	})
	if err != nil {
		return err
	}
	defer func() { _ = controller.Unsubscribe("play") }()

	fmt.Fprintf(out, "playing %q, %d steps, %s total\n",
		cat.Name, cat.Len(), formatDuration(cat.TotalDuration()))

	controller.StartUnlock()
	<-done
	return nil
}
