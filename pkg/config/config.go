// Package config defines configuration types for mdlinkcheck. These
// are pure data structures; loading and discovery live in
// internal/configloader.
package config

// Severity represents the severity level of a reported warning.
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
	SeverityInfo    Severity = "info"
)

// OutputFormat specifies how check results are rendered.
type OutputFormat string

const (
	FormatText    OutputFormat = "text"
	FormatSummary OutputFormat = "summary"
)

// IsValid returns true for a recognized output format.
func (f OutputFormat) IsValid() bool {
	switch f {
	case FormatText, FormatSummary:
		return true
	default:
		return false
	}
}

// Config is the root configuration for mdlinkcheck.
type Config struct {
	// ContentDirs are extra content-folder names searched one level
	// above a document's directory, in addition to the built-in
	// lesson-layout folders.
	ContentDirs []string `yaml:"content_dirs"`

	// DisableRules lists rules (by ID or column name) to skip.
	DisableRules []string `yaml:"disable_rules"`

	// Strict makes warnings affect the exit code, not just errors.
	Strict bool `yaml:"strict"`

	// Format selects the output rendering.
	Format OutputFormat `yaml:"format"`

	// LinkRot enables the advisory known-dead-host scan.
	LinkRot bool `yaml:"link_rot"`
}

// Default returns the configuration used when no file is found.
func Default() *Config {
	return &Config{
		Format:  FormatText,
		LinkRot: true,
	}
}
