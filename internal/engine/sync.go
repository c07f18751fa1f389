// Package engine implements the per-target synchronization pipeline: render
// the template for each enabled target, compare against the existing file,
// and write, skip, or refuse according to the configured policy.
package engine

import (
	"bytes"
	"fmt"
	"os"
	"time"

	"github.com/bianoble/tmpl-sync/internal/config"
	"github.com/bianoble/tmpl-sync/internal/pathutil"
	"github.com/bianoble/tmpl-sync/internal/render"
	"github.com/bianoble/tmpl-sync/internal/sandbox"
)

// Syncer runs the synchronization pipeline for one configuration.
type Syncer struct {
	Config   *config.Config
	Renderer render.Renderer

	// TemplatePath is the resolved template file; TemplateText its content.
	TemplatePath string
	TemplateText string
}

// Options configures a single run.
type Options struct {
	// DryRun and Check both simulate: decisions are made and reported but
	// nothing is written. Check additionally makes the caller treat pending
	// changes as a failing outcome.
	DryRun bool
	Check  bool

	// Strict makes undefined template variables fatal.
	Strict bool
}

// Sync processes targets strictly sequentially, in declaration order. Every
// error aborts the remaining targets; only the idempotent no-op case is not
// an error. The returned Result lists one report per enabled target.
func (s *Syncer) Sync(opts Options) (*Result, error) {
	enabled := 0
	for _, tgt := range s.Config.Targets {
		if tgt.Enabled {
			enabled++
		}
	}
	if enabled == 0 {
		return nil, &NoEnabledTargetsError{}
	}

	// One timestamp for the whole run, so every target renders the same
	// RUN_TIMESTAMP value.
	stamp := time.Now().UTC().Format("20060102150405")

	simulate := opts.DryRun || opts.Check
	result := &Result{}

	for _, tgt := range s.Config.Targets {
		if !tgt.Enabled {
			continue
		}

		dest := pathutil.Resolve(s.Config.Dir, tgt.RawPath)

		rendered, err := s.Renderer.Render(s.TemplateText, s.effectiveVars(tgt, dest, stamp), opts.Strict)
		if err != nil {
			return nil, err
		}

		existing, readErr := os.ReadFile(dest)
		if readErr != nil && !os.IsNotExist(readErr) {
			return nil, fmt.Errorf("reading %s: %w", dest, readErr)
		}
		exists := readErr == nil

		if exists && bytes.Equal(existing, []byte(rendered)) {
			result.Reports = append(result.Reports, TargetReport{Agent: tgt.Agent, Path: dest, Status: StatusOK})
			continue
		}

		// The refusal applies in simulate modes too: check and dry-run must
		// surface it rather than predict success.
		if exists && !s.Config.Options.Overwrite {
			return nil, &OverwriteRefusalError{Path: dest}
		}

		result.Changed = true

		if simulate {
			result.Reports = append(result.Reports, TargetReport{Agent: tgt.Agent, Path: dest, Status: StatusWouldUpdate})
			continue
		}

		if exists && s.Config.Options.Backup {
			if err := backupFile(dest, s.Config.Options.BackupSuffix); err != nil {
				return nil, err
			}
		}

		if err := sandbox.AtomicWrite(dest, []byte(rendered), 0644); err != nil {
			return nil, fmt.Errorf("writing %s: %w", dest, err)
		}

		result.Reports = append(result.Reports, TargetReport{Agent: tgt.Agent, Path: dest, Status: StatusUpdated})
	}

	return result, nil
}

// effectiveVars merges the built-in variables with the target's own.
// Target values win on key collision.
func (s *Syncer) effectiveVars(tgt config.Target, dest, stamp string) map[string]string {
	vars := map[string]string{
		"AGENT_NAME":    tgt.Agent,
		"TARGET_PATH":   dest,
		"TEMPLATE_PATH": s.TemplatePath,
		"RUN_TIMESTAMP": stamp,
	}
	for k, v := range tgt.Variables {
		vars[k] = v
	}
	return vars
}
