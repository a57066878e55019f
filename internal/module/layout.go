package module

import "path/filepath"

// Project layout names, relative to the input or output directory.
const (
	ModuleFileName = "module.yml"
	IndexFileName  = "index.yml"
	SourceDir      = "source"
	MediaDir       = "media"
	ResourcesDir   = "resources"
	IncludesDir    = "includes"
)

// Layout resolves the well-known paths of one compilation run.
type Layout struct {
	InputDir  string
	OutputDir string
}

// ModuleFile returns <input>/module.yml.
func (l Layout) ModuleFile() string {
	return filepath.Join(l.InputDir, ModuleFileName)
}

// SourcePath returns <input>/source/<file>.
func (l Layout) SourcePath(file string) string {
	return filepath.Join(l.InputDir, SourceDir, file)
}

// SourceRoot returns <input>/source.
func (l Layout) SourceRoot() string {
	return filepath.Join(l.InputDir, SourceDir)
}
