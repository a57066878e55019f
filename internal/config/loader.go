package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/spf13/afero"
	"github.com/spf13/viper"
)

// Environment variables read by the resolver.
const (
	envPrefix = "LEARNMOD"

	EnvConfig         = envPrefix + "_CONFIG"
	EnvInput          = envPrefix + "_INPUT"
	EnvOutput         = envPrefix + "_OUTPUT"
	EnvMissingContent = envPrefix + "_MISSING_CONTENT"
	EnvAssumeYes      = envPrefix + "_YES"
	EnvLogTimestamps  = envPrefix + "_LOG_TIMESTAMPS"
)

// Loader reads the config file. Environment variables are applied by the
// resolver so each value keeps its source.
type Loader struct {
	v *viper.Viper
}

// NewLoader creates a new configuration loader reading from fs.
func NewLoader(fs afero.Fs) *Loader {
	v := viper.New()
	v.SetFs(fs)
	return &Loader{v: v}
}

// Load loads configuration from the given file path. If configFile is empty
// the default path is used. A missing file yields an empty Config.
func (l *Loader) Load(configFile string) (*Config, error) {
	if configFile == "" {
		var err error
		configFile, err = GetConfigFile()
		if err != nil {
			return nil, fmt.Errorf("getting config file path: %w", err)
		}
	}

	expandedPath, err := ExpandPath(configFile)
	if err != nil {
		return nil, fmt.Errorf("expanding config path: %w", err)
	}

	l.v.SetConfigFile(expandedPath)
	l.v.SetConfigType("yaml")

	if err := l.v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	var cfg Config
	if err := l.v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	return &cfg, nil
}

// IsSet reports whether key was present in the loaded file.
func (l *Loader) IsSet(key string) bool {
	return l.v.InConfig(key)
}

// LoadWithDefaults loads configuration and applies defaults.
func (l *Loader) LoadWithDefaults(configFile string) (*Config, error) {
	cfg, err := l.Load(configFile)
	if err != nil {
		return nil, err
	}
	return cfg.WithDefaults(), nil
}

// ConfigFileExists checks if the config file exists on fs.
func ConfigFileExists(fs afero.Fs, configFile string) (bool, error) {
	if configFile == "" {
		var err error
		configFile, err = GetConfigFile()
		if err != nil {
			return false, err
		}
	}

	expandedPath, err := ExpandPath(configFile)
	if err != nil {
		return false, err
	}

	return afero.Exists(fs, expandedPath)
}
