// Package cli provides catalog inspection commands.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(stepsCmd)
}

var stepsCmd = &cobra.Command{
	Use:   "steps",
	Short: "List the unlock steps",
	Long:  "Print the step catalog the demo will play, in order.",
	RunE: func(cmd *cobra.Command, args []string) error {
		cat, err := loadCatalog()
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		rows := make([][]string, 0, cat.Len())
		for i, step := range cat.Steps {
			rows = append(rows, []string{
				fmt.Sprintf("%d", i+1),
				step.ID,
				step.Title,
				formatDuration(step.Duration()),
				step.Highlight,
			})
		}

		if err := writeTable(out, []string{"#", "ID", "TITLE", "DURATION", "HIGHLIGHT"}, rows); err != nil {
			return err
		}
		fmt.Fprintf(out, "\n%d steps, %s total (source: %s)\n",
			cat.Len(), formatDuration(cat.TotalDuration()), cat.Source)
		return nil
	},
}
