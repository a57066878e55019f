package cmd

import (
	"fmt"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/learnmod/cli/internal/cmdtypes"
	"github.com/learnmod/cli/internal/compiler"
	oerrors "github.com/learnmod/cli/internal/errors"
	"github.com/learnmod/cli/internal/module"
	"github.com/learnmod/cli/internal/preview"
)

// NewPreviewCmd creates the preview command.
func NewPreviewCmd(gc *cmdtypes.GlobalConfig) *cobra.Command {
	var (
		pf        projectFlags
		widthFlag int
	)

	c := &cobra.Command{
		Use:   "preview <unit>",
		Short: "Render one unit in the terminal",
		Long: `Render one unit's content in the terminal.

The unit is named by its file (as declared in module.yml) or by its
identifier suffix. Narratives are shown as formatted Markdown; assessments
are shown as a checklist with the correct answers marked. Missing content is
previewed as the placeholder a build would scaffold; nothing is written.

Examples:
  # Preview by file name
  learnmod preview "Introduction.md"

  # Preview by identifier suffix
  learnmod preview knowledge-check -i ./courses/intro`,
		Args: cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			return runPreview(c, gc, &pf, args[0], widthFlag)
		},
	}

	pf.addTo(c)
	c.Flags().IntVarP(&widthFlag, "width", "w", preview.DefaultWidth, "Word-wrap width")

	return c
}

func runPreview(c *cobra.Command, gc *cmdtypes.GlobalConfig, pf *projectFlags, name string, width int) error {
	p, err := resolveProject(c, gc, pf, nil)
	if err != nil {
		return cmdtypes.Exit(err)
	}

	mod, err := loadModule(gc.Fs, p.layout)
	if err != nil {
		return cmdtypes.Exit(err)
	}

	unit := findUnit(mod, name)
	if unit == nil {
		return cmdtypes.Exit(oerrors.NewNotFoundError(
			fmt.Sprintf("no unit named %q", name),
			p.layout.ModuleFile(),
			"Run 'learnmod vet' to list the declared units."))
	}

	overlay := afero.NewCopyOnWriteFs(afero.NewReadOnlyFs(gc.Fs), afero.NewMemMapFs())
	content, err := compiler.NewContentResolver(overlay, p.layout, p.policy).Resolve(unit)
	if err != nil {
		return cmdtypes.Exit(err)
	}

	rendered, err := preview.Render(preview.Markdown(unit, content), width)
	if err != nil {
		return cmdtypes.Exit(err)
	}
	fmt.Fprint(c.OutOrStdout(), rendered)
	return nil
}

// findUnit matches name against declared unit files, then identifier suffixes.
func findUnit(mod *module.Module, name string) *module.Unit {
	for i := range mod.Units {
		if mod.Units[i].File == name {
			return &mod.Units[i]
		}
	}
	for i := range mod.Units {
		if compiler.NormalizeName(mod.Units[i].File) == name {
			return &mod.Units[i]
		}
	}
	return nil
}
