// Package templates provides the embedded content scaffolds and project templates.
package templates

import (
	"embed"
	"fmt"
)

// TemplateFS holds the project templates used by learnmod init.
//
//go:embed standard/*.tmpl minimal/*.tmpl
var TemplateFS embed.FS

//go:embed scaffold/*.tmpl
var scaffoldFS embed.FS

// Scaffold names a placeholder content template.
type Scaffold string

const (
	// NarrativeScaffold is written for a missing .md unit.
	NarrativeScaffold Scaffold = "unit.md"

	// AssessmentScaffold is written for a missing .yml/.yaml unit.
	AssessmentScaffold Scaffold = "quiz.yml"
)

// RenderScaffold renders a placeholder content file.
func RenderScaffold(kind Scaffold, data ScaffoldData) ([]byte, error) {
	path := "scaffold/" + string(kind) + ".tmpl"
	content, err := scaffoldFS.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("unknown scaffold %q: %w", kind, err)
	}

	rendered, err := NewRenderer(data).RenderFile(content)
	if err != nil {
		return nil, fmt.Errorf("rendering scaffold %s: %w", kind, err)
	}
	return rendered, nil
}
