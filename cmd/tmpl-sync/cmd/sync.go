package cmd

import (
	"github.com/bianoble/tmpl-sync/internal/engine"
	"github.com/spf13/cobra"
)

var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Render the template and write all target files",
	Long: `Renders the template once per enabled target and writes the output to each
destination. Files whose content already matches are left untouched. When a
destination differs and overwriting is enabled, the existing file is backed
up first (unless backups are disabled).`,
	RunE: func(cmd *cobra.Command, args []string) error {
		result, err := runSync(engine.Options{Strict: strictRender})
		if err != nil {
			return err
		}
		printReports(result)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(syncCmd)
}
