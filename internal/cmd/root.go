// Package cmd provides CLI command implementations.
package cmd

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/learnmod/cli/internal/cmdtypes"
	"github.com/learnmod/cli/internal/config"
	oerrors "github.com/learnmod/cli/internal/errors"
	"github.com/learnmod/cli/internal/output"
)

// skipConfigAnnotation marks commands that must run even when the config
// file is broken (config init, config vet, version).
const skipConfigAnnotation = "learnmod/skip-config"

const configHint = "Fix the config file or run 'learnmod config init --force' to regenerate it."

// NewRootCmd creates the root command for the learnmod CLI.
func NewRootCmd() *cobra.Command {
	return NewRootCmdWithConfig(cmdtypes.NewGlobalConfig())
}

// NewRootCmdWithConfig creates the root command around an existing GlobalConfig.
func NewRootCmdWithConfig(gc *cmdtypes.GlobalConfig) *cobra.Command {
	var (
		configFlag     string
		verboseFlag    bool
		timestampsFlag bool
	)

	rootCmd := &cobra.Command{
		Use:   "learnmod",
		Short: "Course module compiler",
		Long: `learnmod compiles a course module declared in module.yml, together with its
Markdown narratives and YAML assessments under source/, into an index document
and one document per unit, ready for publishing.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(c *cobra.Command, args []string) error {
			gc.Verbose = verboseFlag
			gc.Timestamps = config.Flag[bool]{
				Value: timestampsFlag,
				Set:   c.Flags().Changed("timestamps"),
			}
			return initializeGlobals(c, gc, configFlag)
		},
	}

	rootCmd.PersistentFlags().StringVar(&configFlag, "config", "", "Path to config file (env: LEARNMOD_CONFIG)")
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().BoolVar(&timestampsFlag, "timestamps", true, "Show timestamps in log output (env: LEARNMOD_LOG_TIMESTAMPS)")

	rootCmd.AddCommand(NewBuildCmd(gc))
	rootCmd.AddCommand(NewInitCmd(gc))
	rootCmd.AddCommand(NewDiffCmd(gc))
	rootCmd.AddCommand(NewVetCmd(gc))
	rootCmd.AddCommand(NewPreviewCmd(gc))
	rootCmd.AddCommand(NewConfigCmd(gc))
	rootCmd.AddCommand(NewVersionCmd(gc))

	return rootCmd
}

// initializeGlobals loads the config file, sets up logging and records the
// results on gc.
func initializeGlobals(c *cobra.Command, gc *cmdtypes.GlobalConfig, configFlag string) error {
	pathResult, err := config.ResolveConfigPath(configFlag)
	if err != nil {
		return cmdtypes.Exit(err)
	}
	gc.ConfigPath = pathResult.ConfigPath

	loader := config.NewLoader(gc.Fs)
	cfg, loadErr := loader.Load(gc.ConfigPath)
	if loadErr != nil {
		loadErr = oerrors.NewValidationError(loadErr.Error(), gc.ConfigPath, "", configHint)
	} else {
		loadErr = validateConfig(cfg, gc.ConfigPath)
	}

	var resolved *config.Resolved
	if loadErr == nil {
		gc.Config = cfg
		gc.InConfigFile = loader.IsSet
		resolved, err = config.Resolve(config.ResolveOptions{Timestamps: gc.Timestamps}, cfg, loader.IsSet)
	} else {
		resolved, err = config.Resolve(config.ResolveOptions{Timestamps: gc.Timestamps}, nil, nil)
	}
	if err != nil {
		return cmdtypes.Exit(err)
	}

	output.SetupLogging(output.LogConfig{
		Verbose:    gc.Verbose,
		Timestamps: output.BoolPtr(resolved.Timestamps),
	})

	if loadErr != nil {
		if c.Annotations[skipConfigAnnotation] == "true" {
			output.Debug("config load error", "path", gc.ConfigPath, "error", loadErr)
			return nil
		}
		return cmdtypes.Exit(loadErr)
	}

	output.Debug("initializing CLI",
		"config", gc.ConfigPath,
		"source", pathResult.Source,
	)
	return nil
}

// validateConfig checks cfg against the embedded config schema.
func validateConfig(cfg *config.Config, path string) error {
	validator, err := config.NewValidator()
	if err != nil {
		return err
	}
	if err := validator.Validate(cfg); err != nil {
		return oerrors.NewValidationError(strings.TrimSpace(err.Error()), path, "", configHint)
	}
	return nil
}
