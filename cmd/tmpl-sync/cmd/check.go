package cmd

import (
	"github.com/bianoble/tmpl-sync/internal/engine"
	"github.com/spf13/cobra"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Verify that all target files are up to date",
	Long: `Like dry-run, but the exit code encodes the result: exit 0 when every
target already matches the rendered template, exit non-zero when any target
would change. Suitable as a CI gate.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		result, err := runSync(engine.Options{Check: true, Strict: strictRender})
		if err != nil {
			return err
		}
		printReports(result)

		if result.Changed {
			pending := 0
			for _, r := range result.Reports {
				if r.Status == engine.StatusWouldUpdate {
					pending++
				}
			}
			return &engine.ChangesPendingError{Count: pending}
		}

		info("All targets up to date.")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(checkCmd)
}
