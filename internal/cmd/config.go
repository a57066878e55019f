package cmd

import (
	"bytes"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/learnmod/cli/internal/cmdtypes"
	"github.com/learnmod/cli/internal/config"
	oerrors "github.com/learnmod/cli/internal/errors"
	"github.com/learnmod/cli/internal/output"
)

// configHeader is written above the generated config file.
const configHeader = `# learnmod configuration.
# Every value can be overridden by an environment variable (LEARNMOD_*) or a flag.
`

// NewConfigCmd creates the config command group.
func NewConfigCmd(gc *cmdtypes.GlobalConfig) *cobra.Command {
	c := &cobra.Command{
		Use:   "config",
		Short: "Configuration management",
		Long:  `Configuration management for the learnmod CLI.`,
	}

	c.AddCommand(NewConfigInitCmd(gc))
	c.AddCommand(NewConfigVetCmd(gc))

	return c
}

// NewConfigInitCmd creates the config init command.
func NewConfigInitCmd(gc *cmdtypes.GlobalConfig) *cobra.Command {
	var forceFlag bool

	c := &cobra.Command{
		Use:   "init",
		Short: "Initialize default configuration",
		Long: `Write the default configuration to ~/.learnmod/config.yaml
(or the path given by --config / LEARNMOD_CONFIG).

Examples:
  # Initialize configuration
  learnmod config init

  # Overwrite existing configuration
  learnmod config init --force`,
		Args:        cobra.NoArgs,
		Annotations: map[string]string{skipConfigAnnotation: "true"},
		RunE: func(c *cobra.Command, args []string) error {
			return runConfigInit(c, gc, forceFlag)
		},
	}

	c.Flags().BoolVarP(&forceFlag, "force", "f", false,
		"Overwrite existing configuration")

	return c
}

func runConfigInit(c *cobra.Command, gc *cmdtypes.GlobalConfig, force bool) error {
	path, err := configPath(gc)
	if err != nil {
		return cmdtypes.Exit(err)
	}

	exists, err := afero.Exists(gc.Fs, path)
	if err != nil {
		return cmdtypes.Exit(fmt.Errorf("checking %s: %w", path, err))
	}
	if exists && !force {
		return cmdtypes.Exit(oerrors.NewValidationError(
			"configuration already exists", path, "",
			"Use --force to overwrite existing configuration."))
	}

	var buf bytes.Buffer
	buf.WriteString(configHeader)
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(config.DefaultConfig()); err != nil {
		return cmdtypes.Exit(fmt.Errorf("encoding default config: %w", err))
	}
	if err := enc.Close(); err != nil {
		return cmdtypes.Exit(fmt.Errorf("encoding default config: %w", err))
	}

	if err := gc.Fs.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return cmdtypes.Exit(fmt.Errorf("creating %s: %w", filepath.Dir(path), err))
	}
	if err := afero.WriteFile(gc.Fs, path, buf.Bytes(), 0o600); err != nil {
		return cmdtypes.Exit(fmt.Errorf("writing %s: %w", path, err))
	}

	output.Debug("wrote config", "path", path, "force", force)
	fmt.Fprintln(c.OutOrStdout(), output.FormatCheckmark("Configuration initialized at "+output.StyleNoun.Render(path)))
	return nil
}

// NewConfigVetCmd creates the config vet command.
func NewConfigVetCmd(gc *cmdtypes.GlobalConfig) *cobra.Command {
	return &cobra.Command{
		Use:   "vet",
		Short: "Validate configuration",
		Long: `Validate the learnmod configuration file.

Checks performed:
  1. Config file exists at resolved path
  2. Config file is valid YAML
  3. Values match the config schema (e.g. missingContent is scaffold or fail)

The config path is resolved using precedence:
  --config flag > LEARNMOD_CONFIG env > ~/.learnmod/config.yaml`,
		Args:        cobra.NoArgs,
		Annotations: map[string]string{skipConfigAnnotation: "true"},
		RunE: func(c *cobra.Command, args []string) error {
			return runConfigVet(c, gc)
		},
	}
}

func runConfigVet(c *cobra.Command, gc *cmdtypes.GlobalConfig) error {
	path, err := configPath(gc)
	if err != nil {
		return cmdtypes.Exit(err)
	}

	exists, err := config.ConfigFileExists(gc.Fs, path)
	if err != nil {
		return cmdtypes.Exit(err)
	}
	if !exists {
		return cmdtypes.Exit(oerrors.NewNotFoundError(
			"configuration file not found", path,
			"Run 'learnmod config init' to create default configuration"))
	}

	cfg, err := config.NewLoader(gc.Fs).Load(path)
	if err != nil {
		return cmdtypes.Exit(oerrors.NewValidationError(err.Error(), path, "", configHint))
	}
	if err := validateConfig(cfg, path); err != nil {
		return cmdtypes.Exit(err)
	}

	fmt.Fprintln(c.OutOrStdout(), output.FormatCheckmark("Configuration is valid: "+path))
	return nil
}

// configPath returns the config path resolved by the root command, falling
// back to the default when the command runs standalone.
func configPath(gc *cmdtypes.GlobalConfig) (string, error) {
	path := gc.ConfigPath
	if path == "" {
		res, err := config.ResolveConfigPath("")
		if err != nil {
			return "", oerrors.Wrap(oerrors.ErrNotFound, "could not determine home directory")
		}
		path = res.ConfigPath
	}
	expanded, err := config.ExpandPath(strings.TrimSpace(path))
	if err != nil {
		return "", err
	}
	return expanded, nil
}
