package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/learnmod/cli/internal/cmdtypes"
	"github.com/learnmod/cli/internal/diff"
	"github.com/learnmod/cli/internal/output"
)

// NewDiffCmd creates the diff command.
func NewDiffCmd(gc *cmdtypes.GlobalConfig) *cobra.Command {
	var pf projectFlags

	c := &cobra.Command{
		Use:   "diff",
		Short: "Compare a fresh compile against the existing output",
		Long: `Compile the module in memory and compare every document with the file of
the same name in the output directory.

Nothing is written: missing content is scaffolded in memory only, and the
output directory is left untouched. The command exits 0 whether or not
differences are found.

Examples:
  # Show what the next build would change
  learnmod diff

  # Compare against another output directory
  learnmod diff -o ./published`,
		Args: cobra.NoArgs,
		RunE: func(c *cobra.Command, args []string) error {
			return runDiff(c, gc, &pf)
		},
	}

	pf.addTo(c)

	return c
}

func runDiff(c *cobra.Command, gc *cmdtypes.GlobalConfig, pf *projectFlags) error {
	p, err := resolveProject(c, gc, pf, nil)
	if err != nil {
		return cmdtypes.Exit(err)
	}

	mod, err := loadModule(gc.Fs, p.layout)
	if err != nil {
		return cmdtypes.Exit(err)
	}

	_, docs, err := compileInMemory(commandContext(c), gc.Fs, p, mod)
	if err != nil {
		return cmdtypes.Exit(err)
	}

	useColor := output.IsTTY()
	result, err := diff.Documents(gc.Fs, p.layout.OutputDir, docs, diff.Options{UseColor: useColor})
	if err != nil {
		return cmdtypes.Exit(fmt.Errorf("comparing documents: %w", err))
	}

	styles := output.NoColorStyles()
	if useColor {
		styles = output.GetStyles()
	}
	fmt.Fprint(c.OutOrStdout(), output.RenderDiff(result.Added, result.Removed, result.Modified, styles))

	return nil
}
