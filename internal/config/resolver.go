package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/learnmod/cli/internal/output"
)

// ConfigSource indicates where a configuration value came from.
type ConfigSource string

const (
	// SourceFlag indicates value came from command-line flag.
	SourceFlag ConfigSource = "flag"
	// SourceEnv indicates value came from environment variable.
	SourceEnv ConfigSource = "env"
	// SourceConfig indicates value came from config file.
	SourceConfig ConfigSource = "config"
	// SourceDefault indicates value is the built-in default.
	SourceDefault ConfigSource = "default"
)

// ResolvedValue records one resolved setting.
type ResolvedValue struct {
	Key    string
	Value  any
	Source ConfigSource
	// Shadowed contains values that were overridden by higher precedence.
	Shadowed map[ConfigSource]any
}

// Flag is a command-line value and whether the user set it.
type Flag[T any] struct {
	Value T
	Set   bool
}

// ResolveOptions carries the raw flag values for resolution.
type ResolveOptions struct {
	Input          Flag[string]
	Output         Flag[string]
	MissingContent Flag[string]
	AssumeYes      Flag[bool]
	Timestamps     Flag[bool]
}

// Resolved is the effective configuration of one invocation.
type Resolved struct {
	Input          string
	Output         string
	MissingContent string
	AssumeYes      bool
	Timestamps     bool

	Values []ResolvedValue
}

// candidate is one source's value for a setting.
type candidate[T any] struct {
	source ConfigSource
	value  T
	ok     bool
}

// pick returns the first present candidate as the winner and records the
// remaining present ones as shadowed.
func pick[T any](key string, candidates ...candidate[T]) (T, ResolvedValue) {
	rv := ResolvedValue{Key: key, Shadowed: make(map[ConfigSource]any)}
	var winner T
	found := false
	for _, c := range candidates {
		if !c.ok {
			continue
		}
		if !found {
			winner = c.value
			rv.Value = c.value
			rv.Source = c.source
			found = true
			continue
		}
		rv.Shadowed[c.source] = c.value
	}
	return winner, rv
}

// Resolve applies flag > env > config > default to every setting.
// fileSet reports whether a key is present in the config file.
func Resolve(opts ResolveOptions, cfg *Config, fileSet func(key string) bool) (*Resolved, error) {
	if cfg == nil {
		cfg = &Config{}
	}
	if fileSet == nil {
		fileSet = func(string) bool { return false }
	}
	def := DefaultConfig()
	res := &Resolved{}
	var rv ResolvedValue

	res.Input, rv = pick("input",
		candidate[string]{SourceFlag, opts.Input.Value, opts.Input.Set},
		envString(EnvInput),
		candidate[string]{SourceConfig, cfg.Input, cfg.Input != ""},
		candidate[string]{SourceDefault, def.Input, true},
	)
	res.Values = append(res.Values, rv)

	res.Output, rv = pick("output",
		candidate[string]{SourceFlag, opts.Output.Value, opts.Output.Set},
		envString(EnvOutput),
		candidate[string]{SourceConfig, cfg.Output, cfg.Output != ""},
		candidate[string]{SourceDefault, def.Output, true},
	)
	res.Values = append(res.Values, rv)

	res.MissingContent, rv = pick("missingContent",
		candidate[string]{SourceFlag, opts.MissingContent.Value, opts.MissingContent.Set},
		envString(EnvMissingContent),
		candidate[string]{SourceConfig, cfg.MissingContent, cfg.MissingContent != ""},
		candidate[string]{SourceDefault, def.MissingContent, true},
	)
	res.Values = append(res.Values, rv)

	envYes, err := envBool(EnvAssumeYes)
	if err != nil {
		return nil, err
	}
	res.AssumeYes, rv = pick("assumeYes",
		candidate[bool]{SourceFlag, opts.AssumeYes.Value, opts.AssumeYes.Set},
		envYes,
		candidate[bool]{SourceConfig, cfg.AssumeYes, fileSet("assumeYes")},
		candidate[bool]{SourceDefault, false, true},
	)
	res.Values = append(res.Values, rv)

	envTimestamps, err := envBool(EnvLogTimestamps)
	if err != nil {
		return nil, err
	}
	cfgTimestamps := candidate[bool]{source: SourceConfig}
	if cfg.Log.Timestamps != nil {
		cfgTimestamps.value, cfgTimestamps.ok = *cfg.Log.Timestamps, true
	}
	res.Timestamps, rv = pick("log.timestamps",
		candidate[bool]{SourceFlag, opts.Timestamps.Value, opts.Timestamps.Set},
		envTimestamps,
		cfgTimestamps,
		candidate[bool]{SourceDefault, true, true},
	)
	res.Values = append(res.Values, rv)

	return res, nil
}

func envString(name string) candidate[string] {
	v := os.Getenv(name)
	return candidate[string]{SourceEnv, v, v != ""}
}

func envBool(name string) (candidate[bool], error) {
	raw := os.Getenv(name)
	if raw == "" {
		return candidate[bool]{source: SourceEnv}, nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return candidate[bool]{}, fmt.Errorf("parsing %s=%q: %w", name, raw, err)
	}
	return candidate[bool]{SourceEnv, v, true}, nil
}

// ResolveConfigPathResult contains the resolved config path and its source.
type ResolveConfigPathResult struct {
	// ConfigPath is the resolved config file path.
	ConfigPath string
	// Source indicates where the config path came from.
	Source ConfigSource
	// Shadowed contains values that were overridden by higher precedence.
	Shadowed map[ConfigSource]string
}

// ResolveConfigPath resolves the config file path using precedence:
// (1) --config flag, (2) LEARNMOD_CONFIG env, (3) ~/.learnmod/config.yaml
func ResolveConfigPath(flagValue string) (ResolveConfigPathResult, error) {
	result := ResolveConfigPathResult{
		Shadowed: make(map[ConfigSource]string),
	}

	envValue := os.Getenv(EnvConfig)

	paths, err := DefaultPaths()
	if err != nil {
		return result, err
	}
	defaultPath := paths.ConfigFile

	switch {
	case flagValue != "":
		result.ConfigPath = flagValue
		result.Source = SourceFlag
		if envValue != "" {
			result.Shadowed[SourceEnv] = envValue
		}
		result.Shadowed[SourceDefault] = defaultPath
	case envValue != "":
		result.ConfigPath = envValue
		result.Source = SourceEnv
		result.Shadowed[SourceDefault] = defaultPath
	default:
		result.ConfigPath = defaultPath
		result.Source = SourceDefault
	}

	return result, nil
}

// LogResolvedValues logs configuration resolution at DEBUG level.
func LogResolvedValues(values []ResolvedValue) {
	for _, v := range values {
		output.Debug("config value resolved",
			"key", v.Key,
			"value", v.Value,
			"source", v.Source,
		)
		for source, shadowed := range v.Shadowed {
			output.Debug("  shadowed by higher precedence",
				"key", v.Key,
				"shadowed_source", source,
				"shadowed_value", shadowed,
			)
		}
	}
}
