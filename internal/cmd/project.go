package cmd

import (
	"context"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/learnmod/cli/internal/cmdtypes"
	"github.com/learnmod/cli/internal/compiler"
	"github.com/learnmod/cli/internal/config"
	oerrors "github.com/learnmod/cli/internal/errors"
	"github.com/learnmod/cli/internal/module"
	"github.com/learnmod/cli/internal/output"
)

// projectFlags are the flags shared by build, diff and vet.
type projectFlags struct {
	input          string
	output         string
	missingContent string
}

func (f *projectFlags) addTo(c *cobra.Command) {
	c.Flags().StringVarP(&f.input, "input", "i", config.DefaultInput,
		"Project directory containing module.yml (env: LEARNMOD_INPUT)")
	c.Flags().StringVarP(&f.output, "output", "o", config.DefaultOutput,
		"Output directory (env: LEARNMOD_OUTPUT)")
	c.Flags().StringVar(&f.missingContent, "missing-content", config.DefaultMissingContent,
		"What to do when a unit's content file is missing: scaffold or fail (env: LEARNMOD_MISSING_CONTENT)")
}

// project is one resolved invocation: where to read, where to write, and how.
type project struct {
	resolved *config.Resolved
	layout   module.Layout
	policy   compiler.MissingContentPolicy
}

// resolveProject applies flag > env > config > default to the project flags.
// yes is nil for commands without --yes.
func resolveProject(c *cobra.Command, gc *cmdtypes.GlobalConfig, f *projectFlags, yes *bool) (*project, error) {
	opts := config.ResolveOptions{
		Input:          config.Flag[string]{Value: f.input, Set: c.Flags().Changed("input")},
		Output:         config.Flag[string]{Value: f.output, Set: c.Flags().Changed("output")},
		MissingContent: config.Flag[string]{Value: f.missingContent, Set: c.Flags().Changed("missing-content")},
		Timestamps:     gc.Timestamps,
	}
	if yes != nil {
		opts.AssumeYes = config.Flag[bool]{Value: *yes, Set: c.Flags().Changed("yes")}
	}

	resolved, err := config.Resolve(opts, gc.Config, gc.ConfigFileHas)
	if err != nil {
		return nil, oerrors.NewValidationError(err.Error(), "", "", "")
	}
	if gc.Verbose {
		config.LogResolvedValues(resolved.Values)
	}

	policy, err := compiler.ParsePolicy(resolved.MissingContent)
	if err != nil {
		return nil, err
	}

	input, err := config.ExpandPath(resolved.Input)
	if err != nil {
		return nil, err
	}
	out, err := config.ExpandPath(resolved.Output)
	if err != nil {
		return nil, err
	}

	p := &project{
		resolved: resolved,
		layout:   module.Layout{InputDir: filepath.Clean(input), OutputDir: filepath.Clean(out)},
		policy:   policy,
	}
	if err := p.checkDirs(); err != nil {
		return nil, err
	}
	return p, nil
}

// checkDirs rejects an output directory that would delete the project on reset.
func (p *project) checkDirs() error {
	in, err := filepath.Abs(p.layout.InputDir)
	if err != nil {
		return err
	}
	out, err := filepath.Abs(p.layout.OutputDir)
	if err != nil {
		return err
	}
	if in == out || strings.HasPrefix(in, out+string(filepath.Separator)) {
		return oerrors.NewValidationError(
			"output directory contains the project directory",
			p.layout.OutputDir, "output",
			"Choose an output directory outside the project, e.g. ./learn-output.")
	}
	return nil
}

// loadModule checks the project directory and loads module.yml from fs.
func loadModule(fs afero.Fs, layout module.Layout) (*module.Module, error) {
	exists, err := afero.DirExists(fs, layout.InputDir)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, oerrors.NewConfigurationNotFoundError(
			"project directory not found",
			layout.InputDir,
			"Pass --input with a directory containing module.yml, or run 'learnmod init <name>'.")
	}

	loader, err := module.NewLoader(fs)
	if err != nil {
		return nil, err
	}
	return loader.Load(layout.ModuleFile())
}

// compileInMemory compiles over a copy-on-write view of fs so scaffolds land
// in memory only. No assets are copied.
func compileInMemory(ctx context.Context, fs afero.Fs, p *project, mod *module.Module) (*compiler.Result, []output.RenderedDocument, error) {
	overlay := afero.NewCopyOnWriteFs(afero.NewReadOnlyFs(fs), afero.NewMemMapFs())
	buf := &output.BufferWriter{}

	comp := compiler.New(overlay, compiler.Options{
		Layout:         p.layout,
		MissingContent: p.policy,
	}, buf, nil)

	result, err := comp.Compile(ctx, mod)
	if err != nil {
		return nil, nil, err
	}
	return result, buf.Docs, nil
}

// commandContext returns the command's context, or Background when unset.
func commandContext(c *cobra.Command) context.Context {
	if ctx := c.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
