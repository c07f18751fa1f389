// Package tmplsync provides the public Go library API for tmpl-sync.
//
// tmpl-sync synchronizes one canonical text template to multiple
// destination files, each rendered with per-target variables. This package
// exposes a Client for embedding the pipeline in other Go programs.
//
// # Basic Usage
//
//	client, err := tmplsync.New(tmplsync.Options{
//	    ConfigPath: "tmpl-sync.json",
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	// Write target files.
//	result, err := client.Sync(tmplsync.SyncOptions{})
//
//	// Gate CI on pending changes.
//	result, err = client.Check(tmplsync.SyncOptions{})
package tmplsync

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/bianoble/tmpl-sync/internal/config"
	"github.com/bianoble/tmpl-sync/internal/engine"
	"github.com/bianoble/tmpl-sync/internal/pathutil"
	"github.com/bianoble/tmpl-sync/internal/render"
)

// Options configures a tmpl-sync client.
type Options struct {
	// ConfigPath locates the config file. Empty means the default search
	// order: the user config dir, then ./tmpl-sync.json.
	ConfigPath string

	// TemplatePath overrides the config's template_path. Empty means the
	// config decides (falling back to AGENTS.tmpl.md next to the config).
	TemplatePath string
}

// SyncOptions configures one run.
type SyncOptions struct {
	// Strict makes undefined template variables fatal.
	Strict bool
}

// Client is the main entry point for the tmpl-sync library.
type Client struct {
	cfg          *config.Config
	templatePath string
	templateText string
}

// DefaultTemplateName is the template filename assumed next to the config
// file when no override is given.
const DefaultTemplateName = "AGENTS.tmpl.md"

// New loads the configuration and template and returns a ready Client.
func New(opts Options) (*Client, error) {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return nil, err
	}

	path := opts.TemplatePath
	if path == "" {
		path = cfg.TemplatePath
	}
	if path == "" {
		path = DefaultTemplateName
	}
	abs := pathutil.Resolve(cfg.Dir, path)

	data, err := os.ReadFile(abs)
	if err != nil {
		return nil, fmt.Errorf("reading template %s: %w", abs, err)
	}

	return &Client{
		cfg:          cfg,
		templatePath: abs,
		templateText: string(data),
	}, nil
}

// Config returns the loaded, normalized configuration.
func (c *Client) Config() *config.Config {
	return c.cfg
}

// Sync renders and writes every enabled target.
func (c *Client) Sync(opts SyncOptions) (*Result, error) {
	return c.syncer().Sync(engine.Options{Strict: opts.Strict})
}

// DryRun simulates Sync without touching the filesystem.
func (c *Client) DryRun(opts SyncOptions) (*Result, error) {
	return c.syncer().Sync(engine.Options{DryRun: true, Strict: opts.Strict})
}

// Check simulates Sync and returns a ChangesPendingError when any target
// would change, so callers can gate on the error alone.
func (c *Client) Check(opts SyncOptions) (*Result, error) {
	result, err := c.syncer().Sync(engine.Options{Check: true, Strict: opts.Strict})
	if err != nil {
		return nil, err
	}
	if result.Changed {
		pending := 0
		for _, r := range result.Reports {
			if r.Status == StatusWouldUpdate {
				pending++
			}
		}
		return result, &ChangesPendingError{Count: pending}
	}
	return result, nil
}

func (c *Client) syncer() *engine.Syncer {
	return &engine.Syncer{
		Config: c.cfg,
		Renderer: &render.Engine{
			TemplateDir: filepath.Dir(c.templatePath),
			ConfigDir:   c.cfg.Dir,
		},
		TemplatePath: c.templatePath,
		TemplateText: c.templateText,
	}
}
