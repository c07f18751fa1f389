package cmd

import (
	"github.com/bianoble/tmpl-sync/internal/engine"
	"github.com/spf13/cobra"
)

var dryRunCmd = &cobra.Command{
	Use:   "dry-run",
	Short: "Show what sync would do without writing files",
	Long: `Runs the full decision pipeline — render, compare, overwrite policy — and
reports the outcome per target, but never touches the filesystem. An
overwrite refusal is still surfaced as an error, exactly as sync would.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		result, err := runSync(engine.Options{DryRun: true, Strict: strictRender})
		if err != nil {
			return err
		}
		printReports(result)
		info("Dry run — no files written.")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(dryRunCmd)
}
