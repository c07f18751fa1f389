package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/bianoble/tmpl-sync/internal/pathutil"
	"github.com/bianoble/tmpl-sync/internal/schema"
)

const (
	// FileName is the well-known configuration filename, looked up in the
	// user config directory first, then the current directory.
	FileName = "tmpl-sync.json"

	configDirName = "tmpl-sync"
)

// Load reads, validates, and normalizes a configuration file. When
// explicitPath is empty the default search order applies: the user-level
// path, then the current directory. A partially valid config is never
// returned: any failure fails the whole load.
func Load(explicitPath string) (*Config, error) {
	path, err := resolvePath(explicitPath)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}

	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}

	node, err := schema.Bundled()
	if err != nil {
		return nil, err
	}
	if errs := schema.Validate(node, doc, "$"); len(errs) > 0 {
		return nil, &ValidationError{Path: path, Errors: errs}
	}

	cfg, err := build(doc.(map[string]any))
	if err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	cfg.Path = path
	cfg.Dir = filepath.Dir(path)
	return cfg, nil
}

// resolvePath picks the config file path. An explicit path is expanded and
// absolutized as given; otherwise the two default locations are tried in
// order and the error names both.
func resolvePath(explicitPath string) (string, error) {
	if explicitPath != "" {
		return pathutil.Absolute(explicitPath)
	}

	userPath := defaultUserPath()
	if userPath != "" {
		if _, err := os.Stat(userPath); err == nil {
			return userPath, nil
		}
	}

	projectPath, err := filepath.Abs(FileName)
	if err != nil {
		return "", fmt.Errorf("resolving %s: %w", FileName, err)
	}
	if _, err := os.Stat(projectPath); err == nil {
		return projectPath, nil
	}

	if userPath == "" {
		userPath = "<user config dir unavailable>"
	}
	return "", fmt.Errorf("no configuration file found: tried %s and %s", userPath, projectPath)
}

func defaultUserPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, configDirName, FileName)
}

// ValidationError holds all schema validation failures for one document.
type ValidationError struct {
	Path   string
	Errors []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("config %s failed schema validation:\n  - %s", e.Path, strings.Join(e.Errors, "\n  - "))
}

// build performs the structural checks the schema subset cannot express and
// produces the normalized Config. Unlike schema validation these checks stop
// at the first violation.
func build(doc map[string]any) (*Config, error) {
	cfg := &Config{Options: DefaultOptions()}

	if raw, present := doc["template_path"]; present {
		cfg.TemplatePath = raw.(string)
	}

	rawTargets, ok := doc["targets"].([]any)
	if !ok || len(rawTargets) == 0 {
		return nil, fmt.Errorf("'targets' must be a non-empty array")
	}

	for i, raw := range rawTargets {
		tgt, err := buildTarget(raw)
		if err != nil {
			return nil, fmt.Errorf("target[%d]: %w", i, err)
		}
		cfg.Targets = append(cfg.Targets, tgt)
	}

	if raw, present := doc["options"]; present {
		if err := applyOptions(&cfg.Options, raw); err != nil {
			return nil, err
		}
	}

	return cfg, nil
}

func buildTarget(raw any) (Target, error) {
	obj, ok := raw.(map[string]any)
	if !ok {
		return Target{}, fmt.Errorf("must be an object")
	}

	tgt := Target{Enabled: true}

	agent, ok := obj["agent"].(string)
	if !ok || agent == "" {
		return Target{}, fmt.Errorf("'agent' must be a non-empty string")
	}
	tgt.Agent = agent

	path, ok := obj["path"].(string)
	if !ok || path == "" {
		return Target{}, fmt.Errorf("'path' must be a non-empty string")
	}
	tgt.RawPath = path

	if raw, present := obj["enabled"]; present {
		enabled, ok := raw.(bool)
		if !ok {
			return Target{}, fmt.Errorf("'enabled' must be a boolean")
		}
		tgt.Enabled = enabled
	}

	if raw, present := obj["variables"]; present {
		vars, ok := raw.(map[string]any)
		if !ok {
			return Target{}, fmt.Errorf("'variables' must be an object")
		}
		tgt.Variables = make(map[string]string, len(vars))
		for name, value := range vars {
			s, err := coerceScalar(value)
			if err != nil {
				return Target{}, fmt.Errorf("variable '%s': %w", name, err)
			}
			tgt.Variables[name] = s
		}
	}

	return tgt, nil
}

func applyOptions(opts *Options, raw any) error {
	obj, ok := raw.(map[string]any)
	if !ok {
		return fmt.Errorf("'options' must be an object")
	}

	if raw, present := obj["overwrite"]; present {
		v, ok := raw.(bool)
		if !ok {
			return fmt.Errorf("'options.overwrite' must be a boolean")
		}
		opts.Overwrite = v
	}

	if raw, present := obj["backup"]; present {
		v, ok := raw.(bool)
		if !ok {
			return fmt.Errorf("'options.backup' must be a boolean")
		}
		opts.Backup = v
	}

	if raw, present := obj["backup_suffix"]; present {
		v, ok := raw.(string)
		if !ok || v == "" {
			return fmt.Errorf("'options.backup_suffix' must be a non-empty string")
		}
		opts.BackupSuffix = v
	}

	return nil
}

// coerceScalar converts a JSON scalar to its string representation.
// Numbers use the shortest decimal form, so 1.0 becomes "1".
func coerceScalar(value any) (string, error) {
	switch v := value.(type) {
	case nil:
		return "", nil
	case bool:
		return strconv.FormatBool(v), nil
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64), nil
	case string:
		return v, nil
	default:
		return "", fmt.Errorf("must be a string, number, boolean, or null, got %s", schema.KindOf(value))
	}
}
