package cmd

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

// Build-time variables set via -ldflags.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// Global flags.
var (
	configPath   string
	templatePath string
	strictRender bool
	verbose      bool
)

// logger carries verbose diagnostics on stderr. Report lines and errors use
// plain output; this is only for --verbose detail.
var logger = log.NewWithOptions(os.Stderr, log.Options{
	ReportTimestamp: false,
	Level:           log.WarnLevel,
})

var rootCmd = &cobra.Command{
	Use:   "tmpl-sync",
	Short: "Synchronize one canonical template to multiple agent files",
	Long: `tmpl-sync renders a single canonical text template once per configured
target and synchronizes the output to each target's destination path.
Writes are idempotent and backup-aware: unchanged files are left alone,
differing files are backed up before being replaced, and overwriting can
be disabled entirely.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if verbose {
			logger.SetLevel(log.DebugLevel)
		}
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("tmpl-sync %s\n", version)
		fmt.Printf("  commit:  %s\n", commit)
		fmt.Printf("  built:   %s\n", date)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to config file (default: user config dir, then ./tmpl-sync.json)")
	rootCmd.PersistentFlags().StringVar(&templatePath, "template", "", "path to template file (overrides template_path from the config)")
	rootCmd.PersistentFlags().BoolVar(&strictRender, "strict", false, "fail on undefined template variables")
	rootCmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "detailed output")

	rootCmd.AddCommand(versionCmd)
}

// Execute runs the root command.
func Execute() error {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return err
	}
	return nil
}
