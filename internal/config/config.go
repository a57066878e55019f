// Package config provides configuration loading and management.
package config

// Defaults applied when no flag, environment variable or config file sets a value.
const (
	DefaultInput          = "."
	DefaultOutput         = "./learn-output"
	DefaultMissingContent = "scaffold"
)

// LogConfig contains logging-related settings.
type LogConfig struct {
	// Timestamps controls whether timestamps are shown in log output.
	// Default: true. Override with --timestamps flag.
	Timestamps *bool `json:"timestamps,omitempty" yaml:"timestamps,omitempty"`
}

// Config represents the learnmod tool configuration.
// Loaded from ~/.learnmod/config.yaml, validated against an embedded CUE schema.
type Config struct {
	// Input is the default project directory.
	// Env: LEARNMOD_INPUT
	Input string `json:"input,omitempty" yaml:"input,omitempty"`

	// Output is the default output directory.
	// Env: LEARNMOD_OUTPUT
	Output string `json:"output,omitempty" yaml:"output,omitempty"`

	// MissingContent selects the missing-content policy: "scaffold" or "fail".
	// Env: LEARNMOD_MISSING_CONTENT
	MissingContent string `json:"missingContent,omitempty" yaml:"missingContent,omitempty"`

	// AssumeYes skips the output directory deletion prompt.
	// Env: LEARNMOD_YES
	AssumeYes bool `json:"assumeYes,omitempty" yaml:"assumeYes,omitempty"`

	// Log contains logging-related settings.
	Log LogConfig `json:"log,omitempty" yaml:"log,omitempty"`
}

// DefaultConfig returns a Config with all default values populated.
// Used by `learnmod config init` to generate the initial config file.
func DefaultConfig() *Config {
	timestamps := true
	return &Config{
		Input:          DefaultInput,
		Output:         DefaultOutput,
		MissingContent: DefaultMissingContent,
		Log:            LogConfig{Timestamps: &timestamps},
	}
}

// WithDefaults returns a copy of c with empty fields set to their defaults.
func (c *Config) WithDefaults() *Config {
	out := *c
	def := DefaultConfig()
	if out.Input == "" {
		out.Input = def.Input
	}
	if out.Output == "" {
		out.Output = def.Output
	}
	if out.MissingContent == "" {
		out.MissingContent = def.MissingContent
	}
	return &out
}
