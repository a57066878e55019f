package compiler

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"

	oerrors "github.com/learnmod/cli/internal/errors"
	"github.com/learnmod/cli/internal/module"
	"github.com/learnmod/cli/internal/templates"
)

// Kind classifies a unit's backing content.
type Kind string

const (
	// KindNarrative is a Markdown unit published through an include directive.
	KindNarrative Kind = "narrative"

	// KindAssessment is a YAML quiz inlined into the unit document.
	KindAssessment Kind = "assessment"
)

// Classify returns the content kind implied by a unit filename's extension.
func Classify(file string) (Kind, error) {
	ext := strings.ToLower(filepath.Ext(file))
	switch ext {
	case ".md":
		return KindNarrative, nil
	case ".yml", ".yaml":
		return KindAssessment, nil
	default:
		return "", oerrors.NewContentResolutionError(file, ext)
	}
}

// MissingContentPolicy decides what happens when a unit's file does not exist.
type MissingContentPolicy string

const (
	// PolicyScaffold writes a placeholder file and continues.
	PolicyScaffold MissingContentPolicy = "scaffold"

	// PolicyFail aborts the run.
	PolicyFail MissingContentPolicy = "fail"
)

// ParsePolicy parses a policy name. Empty selects PolicyScaffold.
func ParsePolicy(s string) (MissingContentPolicy, error) {
	switch MissingContentPolicy(s) {
	case "", PolicyScaffold:
		return PolicyScaffold, nil
	case PolicyFail:
		return PolicyFail, nil
	default:
		return "", oerrors.NewValidationError(
			fmt.Sprintf("unknown missing-content policy %q", s),
			"", "missingContent",
			"Valid policies: scaffold, fail.")
	}
}

// ResolvedContent is a unit's content after resolution.
type ResolvedContent struct {
	Kind Kind

	// Path is the source file path.
	Path string

	// Text is the full file text, authored or scaffolded.
	Text string

	// Quiz is set for assessment content only.
	Quiz *module.Assessment

	// Scaffolded is true when the file was created during this run.
	Scaffolded bool
}

// ContentResolver locates, loads, and when needed scaffolds unit content.
type ContentResolver struct {
	fs     afero.Fs
	layout module.Layout
	policy MissingContentPolicy
}

// NewContentResolver creates a ContentResolver reading and writing through fs.
func NewContentResolver(fs afero.Fs, layout module.Layout, policy MissingContentPolicy) *ContentResolver {
	return &ContentResolver{fs: fs, layout: layout, policy: policy}
}

// Resolve returns the content backing unit.
func (r *ContentResolver) Resolve(unit *module.Unit) (*ResolvedContent, error) {
	kind, err := Classify(unit.File)
	if err != nil {
		return nil, err
	}

	path := r.layout.SourcePath(unit.File)
	exists, err := afero.Exists(r.fs, path)
	if err != nil {
		return nil, fmt.Errorf("checking %s: %w", path, err)
	}

	if !exists {
		if r.policy == PolicyFail {
			return nil, oerrors.NewMissingContentError(unit.File, path)
		}
		return r.scaffold(unit, kind, path)
	}

	data, err := afero.ReadFile(r.fs, path)
	if err != nil {
		return nil, fmt.Errorf("reading unit %q: %w", unit.File, err)
	}

	rc := &ResolvedContent{Kind: kind, Path: path, Text: string(data)}
	if kind == KindAssessment {
		quiz, err := module.ParseAssessment(data)
		if err != nil {
			return nil, oerrors.NewValidationError(
				fmt.Sprintf("assessment for unit %q is not valid YAML: %v", unit.File, err),
				path, "", "Assessment files hold a 'questions' list.")
		}
		rc.Quiz = quiz
	}
	return rc, nil
}

// scaffold writes a placeholder for a missing unit file.
func (r *ContentResolver) scaffold(unit *module.Unit, kind Kind, path string) (*ResolvedContent, error) {
	title, err := RequireOwn(unit, module.KeyTitle)
	if err != nil {
		return nil, err
	}
	description, err := RequireOwn(unit, module.KeyDescription)
	if err != nil {
		return nil, err
	}

	data := templates.ScaffoldData{Title: title, Description: description}
	scaffold := templates.NarrativeScaffold
	var quiz *module.Assessment
	if kind == KindAssessment {
		quiz = ExampleAssessment()
		body, err := encodeAssessment(quiz)
		if err != nil {
			return nil, err
		}
		data.Body = body
		scaffold = templates.AssessmentScaffold
	}

	text, err := templates.RenderScaffold(scaffold, data)
	if err != nil {
		return nil, err
	}

	if err := r.fs.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, oerrors.NewScaffoldWriteError(unit.File, path, err)
	}
	if err := afero.WriteFile(r.fs, path, text, 0o644); err != nil {
		return nil, oerrors.NewScaffoldWriteError(unit.File, path, err)
	}

	return &ResolvedContent{
		Kind:       kind,
		Path:       path,
		Text:       string(text),
		Quiz:       quiz,
		Scaffolded: true,
	}, nil
}
