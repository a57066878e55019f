package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/learnmod/cli/internal/assets"
	"github.com/learnmod/cli/internal/cmdtypes"
	"github.com/learnmod/cli/internal/compiler"
	oerrors "github.com/learnmod/cli/internal/errors"
	"github.com/learnmod/cli/internal/outdir"
	"github.com/learnmod/cli/internal/output"
)

// NewBuildCmd creates the build command.
func NewBuildCmd(gc *cmdtypes.GlobalConfig) *cobra.Command {
	var pf projectFlags

	var (
		yesFlag    bool
		dryRunFlag bool
		formatFlag string
	)

	c := &cobra.Command{
		Use:   "build",
		Short: "Compile a module into publishable documents",
		Long: `Compile the module declared in <input>/module.yml into <output>.

The output directory is deleted and recreated on every build. When it already
exists you are asked to confirm, unless --yes is given. Units whose content
file is missing are scaffolded under source/ (or the build fails with
--missing-content fail).

Output layout:
  index.yml             Module index
  <unit>.yml            One document per unit
  includes/             Markdown narratives
  media/, resources/    Copied from the project

Examples:
  # Build the project in the current directory
  learnmod build

  # Build another project without prompting
  learnmod build -i ./courses/intro -o ./out/intro --yes

  # Print the documents instead of writing them
  learnmod build --dry-run --format json`,
		Args: cobra.NoArgs,
		RunE: func(c *cobra.Command, args []string) error {
			return runBuild(c, gc, &pf, yesFlag, dryRunFlag, formatFlag)
		},
	}

	pf.addTo(c)
	c.Flags().BoolVarP(&yesFlag, "yes", "y", false,
		"Delete an existing output directory without asking (env: LEARNMOD_YES)")
	c.Flags().BoolVar(&dryRunFlag, "dry-run", false,
		"Compile in memory and print the documents; nothing is written")
	c.Flags().StringVar(&formatFlag, "format", "yaml",
		"Dry-run output format: yaml or json")

	return c
}

func runBuild(c *cobra.Command, gc *cmdtypes.GlobalConfig, pf *projectFlags, yes, dryRun bool, formatFlag string) error {
	format, ok := output.ParseFormat(formatFlag)
	if !ok {
		return cmdtypes.Exit(oerrors.NewValidationError(
			fmt.Sprintf("unknown format %q", formatFlag), "", "format", "Use yaml or json."))
	}
	if c.Flags().Changed("format") && !dryRun {
		return cmdtypes.Exit(oerrors.NewValidationError(
			"--format only applies to --dry-run", "", "format", ""))
	}

	p, err := resolveProject(c, gc, pf, &yes)
	if err != nil {
		return cmdtypes.Exit(err)
	}

	mod, err := loadModule(gc.Fs, p.layout)
	if err != nil {
		return cmdtypes.Exit(err)
	}

	ctx := commandContext(c)
	modLog := output.ModuleLogger(mod.UIDRoot)

	if dryRun {
		modLog.Info("dry run - no files will be written")
		_, docs, err := compileInMemory(ctx, gc.Fs, p, mod)
		if err != nil {
			return cmdtypes.Exit(err)
		}
		if err := output.WriteRendered(c.OutOrStdout(), docs, format); err != nil {
			return cmdtypes.Exit(fmt.Errorf("writing documents: %w", err))
		}
		return nil
	}

	confirm := outdir.Prompt(gc.In, c.ErrOrStderr(), gc.IsInteractive())
	if p.resolved.AssumeYes {
		confirm = outdir.AlwaysConfirm
	}
	if err := outdir.Reset(gc.Fs, p.layout.OutputDir, confirm); err != nil {
		return cmdtypes.Exit(err)
	}

	comp := compiler.New(gc.Fs, compiler.Options{
		Layout:         p.layout,
		MissingContent: p.policy,
	}, output.NewDirWriter(gc.Fs, p.layout.OutputDir), assets.NewCopier(gc.Fs, gc.Fs, p.layout))

	var result *compiler.Result
	err = output.RunWithSpinner(ctx, func() error {
		var compileErr error
		result, compileErr = comp.Compile(ctx, mod)
		return compileErr
	}, output.WithTitle("Compiling "+mod.UIDRoot), output.WithEnabled(!gc.Verbose))
	if err != nil {
		return cmdtypes.Exit(err)
	}

	for _, path := range result.Scaffolded {
		modLog.Warn("scaffolded missing content", "path", path)
	}

	out := c.OutOrStdout()
	fmt.Fprintln(out, output.RenderFileTree(filepath.Base(p.layout.OutputDir), result.Files()))
	fmt.Fprintln(out, output.FormatCheckmark(fmt.Sprintf("Compiled %d units into %s",
		len(result.Units), output.StyleNoun.Render(p.layout.OutputDir))))

	return nil
}
