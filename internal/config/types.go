package config

// Config is the normalized, validated result of loading a tmpl-sync.json
// file. It is immutable for the remainder of the run.
type Config struct {
	// Path is the absolute path of the loaded config file; Dir is its
	// directory, the base for relative target and template paths.
	Path string
	Dir  string

	// TemplatePath is the optional template override from the config file,
	// kept as written (expansion happens at resolution time).
	TemplatePath string

	// Targets in declaration order, which is also write and report order.
	Targets []Target

	Options Options
}

// Target describes one destination file plus the agent identity and
// variables used to render it.
type Target struct {
	// Agent is used for reporting and as the default AGENT_NAME variable.
	Agent string

	// RawPath is the destination before expansion.
	RawPath string

	Enabled bool

	// Variables holds per-target overrides, each JSON scalar coerced to its
	// string representation at load time.
	Variables map[string]string
}

// Options controls write behavior for every target.
type Options struct {
	Overwrite    bool
	Backup       bool
	BackupSuffix string
}

// DefaultOptions are applied when the config omits the options block or
// individual fields.
func DefaultOptions() Options {
	return Options{
		Overwrite:    true,
		Backup:       true,
		BackupSuffix: ".bak",
	}
}
