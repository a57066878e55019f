package templates

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/spf13/afero"

	"github.com/learnmod/cli/internal/output"
)

// ProjectDirs are created empty (with a .gitkeep) in every new project.
var ProjectDirs = []string{"source", "media", "resources"}

// Generator handles project generation from templates.
type Generator struct {
	fs   afero.Fs
	opts GenerateOptions
}

// NewGenerator creates a new generator writing to fs.
func NewGenerator(fs afero.Fs, opts GenerateOptions) *Generator {
	return &Generator{fs: fs, opts: opts}
}

// Generate creates a new project from a template.
func (g *Generator) Generate() (*GenerateResult, error) {
	name := g.opts.TemplateName
	if name == "" {
		name = DefaultTemplateName
	}
	tmpl, err := Get(name)
	if err != nil {
		return nil, err
	}

	dirname := filepath.Base(g.opts.TargetDir)
	if err := ValidateProjectName(dirname); err != nil {
		return nil, err
	}

	uidRoot := g.opts.UIDRoot
	if uidRoot == "" {
		uidRoot = DeriveUIDRoot(dirname)
	}
	if err := ValidateUIDRoot(uidRoot); err != nil {
		return nil, err
	}

	if err := g.checkTargetDir(); err != nil {
		return nil, err
	}

	date := g.opts.Date
	if date == "" {
		date = time.Now().Format("01/02/2006")
	}

	data := ProjectData{
		Name:    dirname,
		UIDRoot: uidRoot,
		Title:   DeriveTitle(dirname),
		Date:    date,
	}

	output.Debug("generating project",
		"template", tmpl.Name,
		"name", dirname,
		"uid_root", uidRoot,
		"target", g.opts.TargetDir)

	files, err := NewRenderer(data).RenderTemplate(tmpl.Name)
	if err != nil {
		return nil, fmt.Errorf("rendering template: %w", err)
	}

	createdFiles := make([]string, 0, len(files)+len(ProjectDirs))
	for _, f := range files {
		targetPath := filepath.Join(g.opts.TargetDir, f.TargetPath)
		if err := g.fs.MkdirAll(filepath.Dir(targetPath), 0o755); err != nil {
			return nil, fmt.Errorf("creating directory for %s: %w", targetPath, err)
		}
		if err := afero.WriteFile(g.fs, targetPath, f.Content, 0o644); err != nil {
			return nil, fmt.Errorf("writing %s: %w", targetPath, err)
		}
		output.Debug("created file", "path", f.TargetPath)
		createdFiles = append(createdFiles, f.TargetPath)
	}

	for _, dir := range ProjectDirs {
		keep := filepath.Join(dir, ".gitkeep")
		target := filepath.Join(g.opts.TargetDir, keep)
		if err := g.fs.MkdirAll(filepath.Dir(target), 0o755); err != nil {
			return nil, fmt.Errorf("creating directory %s: %w", dir, err)
		}
		if err := afero.WriteFile(g.fs, target, nil, 0o644); err != nil {
			return nil, fmt.Errorf("writing %s: %w", target, err)
		}
		createdFiles = append(createdFiles, keep)
	}

	return &GenerateResult{
		Files:        createdFiles,
		TemplateName: tmpl.Name,
		TargetDir:    g.opts.TargetDir,
		UIDRoot:      uidRoot,
	}, nil
}

// checkTargetDir refuses to generate into an existing path.
func (g *Generator) checkTargetDir() error {
	exists, err := afero.Exists(g.fs, g.opts.TargetDir)
	if err != nil {
		return fmt.Errorf("checking target directory: %w", err)
	}
	if exists {
		return fmt.Errorf("%s already exists; choose a new project name", g.opts.TargetDir)
	}
	return nil
}
