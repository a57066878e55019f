package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/learnmod/cli/internal/cmdtypes"
	"github.com/learnmod/cli/internal/compiler"
	oerrors "github.com/learnmod/cli/internal/errors"
	"github.com/learnmod/cli/internal/module"
	"github.com/learnmod/cli/internal/output"
)

// NewVetCmd creates the vet command.
func NewVetCmd(gc *cmdtypes.GlobalConfig) *cobra.Command {
	var inputFlag string

	c := &cobra.Command{
		Use:   "vet",
		Short: "Check module.yml without compiling",
		Long: `Check the module declaration without reading content or writing files.

Checks performed:
  1. module.yml exists and is valid YAML
  2. Required attributes are declared (uid_root, title, description, per-unit title and description)
  3. Every unit file has a supported extension (.md, .yml, .yaml)
  4. No two units derive the same identifier

Examples:
  # Vet the project in the current directory
  learnmod vet

  # Vet another project
  learnmod vet -i ./courses/intro`,
		Args: cobra.NoArgs,
		RunE: func(c *cobra.Command, args []string) error {
			return runVet(c, gc, inputFlag)
		},
	}

	c.Flags().StringVarP(&inputFlag, "input", "i", ".",
		"Project directory containing module.yml (env: LEARNMOD_INPUT)")

	return c
}

func runVet(c *cobra.Command, gc *cmdtypes.GlobalConfig, input string) error {
	pf := projectFlags{input: input}
	p, err := resolveProject(c, gc, &pf, nil)
	if err != nil {
		return cmdtypes.Exit(err)
	}

	mod, err := loadModule(gc.Fs, p.layout)
	if err != nil {
		return cmdtypes.Exit(err)
	}

	rows := make([]output.UnitRow, 0, len(mod.Units))
	for _, u := range mod.Units {
		row := output.UnitRow{
			UID:      compiler.DeriveUnitID(mod.UIDRoot, u.File),
			File:     u.File,
			Kind:     "?",
			Duration: "auto",
		}
		if kind, err := compiler.Classify(u.File); err == nil {
			row.Kind = string(kind)
		}
		if u.DurationInMinutes != nil {
			row.Duration = strconv.Itoa(*u.DurationInMinutes)
		}
		rows = append(rows, row)
	}

	problems := compiler.Vet(mod)
	for _, pr := range problems {
		if rows[pr.Index].Problem == "" {
			rows[pr.Index].Problem = pr.Message
		}
	}

	out := c.OutOrStdout()
	fmt.Fprintln(out, output.RenderUnitTable(rows))

	if len(problems) > 0 {
		for _, pr := range problems {
			output.Error(pr.Message, "unit", pr.Unit, "uid", pr.UID)
		}
		return &cmdtypes.ExitError{
			Code:    cmdtypes.ExitValidationError,
			Err:     oerrors.Wrap(oerrors.ErrValidation, fmt.Sprintf("%d problem(s) found in %s", len(problems), module.ModuleFileName)),
			Printed: true,
		}
	}

	fmt.Fprintln(out, output.FormatCheckmark(fmt.Sprintf("%s: %d units, no problems", mod.UIDRoot, len(mod.Units))))
	return nil
}
