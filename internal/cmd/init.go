package cmd

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/learnmod/cli/internal/cmdtypes"
	oerrors "github.com/learnmod/cli/internal/errors"
	"github.com/learnmod/cli/internal/module"
	"github.com/learnmod/cli/internal/output"
	"github.com/learnmod/cli/internal/templates"
)

// NewInitCmd creates the init command.
func NewInitCmd(gc *cmdtypes.GlobalConfig) *cobra.Command {
	var (
		templateFlag string
		uidRootFlag  string
		dirFlag      string
	)

	c := &cobra.Command{
		Use:   "init <name>",
		Short: "Create a new module project",
		Long: `Create a new module project from a built-in template.

The project declares its units in module.yml but ships no content files, so
the first 'learnmod build' scaffolds them under source/.

Templates:
  standard   One narrative unit and one knowledge check, full metadata (default)
  minimal    A single narrative unit

Examples:
  # Create ./intro-to-go
  learnmod init intro-to-go

  # Pick the identifier namespace explicitly
  learnmod init intro-to-go --uid-root learn.golang.intro`,
		Args: cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			return runInit(c, gc, args[0], templateFlag, uidRootFlag, dirFlag)
		},
	}

	c.Flags().StringVarP(&templateFlag, "template", "t", templates.DefaultTemplateName,
		"Project template: standard or minimal")
	c.Flags().StringVar(&uidRootFlag, "uid-root", "",
		"Identifier namespace (default: learn.<name>)")
	c.Flags().StringVarP(&dirFlag, "dir", "d", "",
		"Target directory (default: ./<name>)")

	return c
}

func runInit(c *cobra.Command, gc *cmdtypes.GlobalConfig, name, templateName, uidRoot, dir string) error {
	if _, err := templates.Get(templateName); err != nil {
		names := make([]string, 0, len(templates.List()))
		for _, t := range templates.List() {
			names = append(names, t.Name)
		}
		return cmdtypes.Exit(&oerrors.DetailError{
			Type:    "validation failed",
			Message: fmt.Sprintf("unknown template: %s", templateName),
			Hint:    fmt.Sprintf("Valid templates: %s", strings.Join(names, ", ")),
			Cause:   oerrors.ErrValidation,
		})
	}

	targetDir := dir
	if targetDir == "" {
		targetDir = name
	}

	exists, err := afero.Exists(gc.Fs, targetDir)
	if err != nil {
		return cmdtypes.Exit(fmt.Errorf("checking %s: %w", targetDir, err))
	}
	if exists {
		return cmdtypes.Exit(oerrors.NewValidationError(
			fmt.Sprintf("directory already exists: %s", targetDir),
			targetDir, "",
			"Choose a different directory or remove the existing one."))
	}

	gen := templates.NewGenerator(gc.Fs, templates.GenerateOptions{
		TargetDir:    targetDir,
		TemplateName: templateName,
		UIDRoot:      uidRoot,
	})
	result, err := gen.Generate()
	if err != nil {
		return cmdtypes.Exit(oerrors.NewValidationError(err.Error(), targetDir, "", ""))
	}

	output.Debug("project generated",
		"dir", result.TargetDir,
		"template", result.TemplateName,
		"uid_root", result.UIDRoot,
	)

	files := make(map[string]string, len(result.Files))
	for _, f := range result.Files {
		files[f] = initFileDescription(f)
	}

	out := c.OutOrStdout()
	fmt.Fprintf(out, "Created module %s in %s\n\n", output.StyleNoun.Render(result.UIDRoot), result.TargetDir)
	fmt.Fprintln(out, output.RenderFileTree(filepath.Base(result.TargetDir), files))
	fmt.Fprintln(out, output.FormatCheckmark("Next: run 'learnmod build -i "+result.TargetDir+"' to scaffold the units"))

	return nil
}

// initFileDescription returns the tree description for a generated file.
func initFileDescription(file string) string {
	switch filepath.ToSlash(file) {
	case module.ModuleFileName:
		return "Module declaration"
	case module.SourceDir + "/.gitkeep":
		return "Unit content"
	case module.MediaDir + "/.gitkeep":
		return "Images"
	case module.ResourcesDir + "/.gitkeep":
		return "Downloadable resources"
	}
	return ""
}
