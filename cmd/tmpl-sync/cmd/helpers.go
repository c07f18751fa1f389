package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/bianoble/tmpl-sync/internal/config"
	"github.com/bianoble/tmpl-sync/internal/engine"
	"github.com/bianoble/tmpl-sync/internal/pathutil"
	"github.com/bianoble/tmpl-sync/internal/render"
)

// DefaultTemplateName is the template filename assumed next to the config
// file when neither --template nor template_path is given.
const DefaultTemplateName = "AGENTS.tmpl.md"

// loadConfig reads and validates the config file, honoring the default
// search order when --config is not given.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	logger.Debug("loaded config", "path", cfg.Path, "targets", len(cfg.Targets))
	return cfg, nil
}

// resolveTemplate picks the template file (--template flag, then the
// config's template_path, then the well-known name next to the config) and
// reads it. Relative paths resolve against the config directory.
func resolveTemplate(cfg *config.Config) (string, string, error) {
	path := templatePath
	if path == "" {
		path = cfg.TemplatePath
	}
	if path == "" {
		path = DefaultTemplateName
	}
	abs := pathutil.Resolve(cfg.Dir, path)

	data, err := os.ReadFile(abs)
	if err != nil {
		return "", "", fmt.Errorf("reading template %s: %w", abs, err)
	}
	logger.Debug("loaded template", "path", abs, "bytes", len(data))
	return abs, string(data), nil
}

// newSyncer wires the engine with the real renderer. Includes resolve
// against the template's directory first, then the config's.
func newSyncer(cfg *config.Config, tmplPath, tmplText string) *engine.Syncer {
	return &engine.Syncer{
		Config: cfg,
		Renderer: &render.Engine{
			TemplateDir: filepath.Dir(tmplPath),
			ConfigDir:   cfg.Dir,
		},
		TemplatePath: tmplPath,
		TemplateText: tmplText,
	}
}

// runSync performs the shared load-render-sync sequence for all three
// commands.
func runSync(opts engine.Options) (*engine.Result, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}

	tmplPath, tmplText, err := resolveTemplate(cfg)
	if err != nil {
		return nil, err
	}

	return newSyncer(cfg, tmplPath, tmplText).Sync(opts)
}

// reportLine formats the per-target console report.
func reportLine(r engine.TargetReport) string {
	return fmt.Sprintf("[%s] %s: %s", r.Agent, r.Status, r.Path)
}

func printReports(result *engine.Result) {
	for _, r := range result.Reports {
		fmt.Println(reportLine(r))
	}
}

// info prints a supplementary line on stdout.
func info(format string, args ...any) {
	fmt.Printf(format+"\n", args...)
}
