// Package compiler turns a loaded module declaration and its source directory
// into the index document and one document per unit.
package compiler

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/spf13/afero"

	oerrors "github.com/learnmod/cli/internal/errors"
	"github.com/learnmod/cli/internal/module"
	"github.com/learnmod/cli/internal/output"
)

// Options configures one compilation run. It is passed by value.
type Options struct {
	Layout         module.Layout
	MissingContent MissingContentPolicy
}

// AssetCopier publishes static assets once every document is written.
// skip lists source .md files that must not be copied to includes/.
type AssetCopier interface {
	Copy(ctx context.Context, skip []string) error
}

// State is the lifecycle state of a Compiler.
type State string

const (
	StateLoaded   State = "loaded"
	StateCompiled State = "compiled"
	StateFailed   State = "failed"
)

// UnitResult summarizes one compiled unit.
type UnitResult struct {
	File              string
	UID               string
	Kind              Kind
	OutputFile        string
	DurationInMinutes int
	Scaffolded        bool
}

// Result summarizes a successful run.
type Result struct {
	Index *IndexDocument
	Units []UnitResult

	// Scaffolded lists the source paths written during the run.
	Scaffolded []string
}

// Files maps output file names to a short description, for tree rendering.
func (r *Result) Files() map[string]string {
	files := make(map[string]string, len(r.Units)+1)
	files[module.IndexFileName] = "Module index"
	for _, u := range r.Units {
		desc := "Narrative unit"
		if u.Kind == KindAssessment {
			desc = "Assessment unit"
		}
		files[u.OutputFile] = desc
	}
	return files
}

// Compiler is the compilation driver. A Compiler runs once.
type Compiler struct {
	fs     afero.Fs
	opts   Options
	sink   output.DocumentWriter
	assets AssetCopier
	state  State
}

// New creates a Compiler. assets may be nil when no assets are published
// (dry runs and diffs).
func New(fs afero.Fs, opts Options, sink output.DocumentWriter, assets AssetCopier) *Compiler {
	if opts.MissingContent == "" {
		opts.MissingContent = PolicyScaffold
	}
	return &Compiler{fs: fs, opts: opts, sink: sink, assets: assets, state: StateLoaded}
}

// State returns the compiler's lifecycle state.
func (c *Compiler) State() State {
	return c.state
}

// Compile processes every unit in declaration order, then the index, then the
// assets. The first error stops the run.
func (c *Compiler) Compile(ctx context.Context, mod *module.Module) (*Result, error) {
	if c.state != StateLoaded {
		return nil, fmt.Errorf("compiler already %s", c.state)
	}

	result, err := c.compile(ctx, mod)
	if err != nil {
		c.state = StateFailed
		return nil, err
	}
	c.state = StateCompiled
	return result, nil
}

func (c *Compiler) compile(ctx context.Context, mod *module.Module) (*Result, error) {
	if mod.UIDRoot == "" {
		return nil, oerrors.NewMissingAttributeError("uid_root", "", c.opts.Layout.ModuleFile())
	}

	logger := output.ModuleLogger(mod.UIDRoot)
	resolver := NewContentResolver(c.fs, c.opts.Layout, c.opts.MissingContent)
	result := &Result{Units: make([]UnitResult, 0, len(mod.Units))}
	var skipIncludes []string

	for i := range mod.Units {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		unit := &mod.Units[i]
		content, err := resolver.Resolve(unit)
		if err != nil {
			return nil, err
		}

		doc, err := AssembleUnit(mod, unit, content)
		if err != nil {
			return nil, err
		}

		name := OutputFileName(doc.UID)
		if err := c.sink.WriteDocument(output.Document{Name: name, Marker: UnitMarker, Body: doc}); err != nil {
			return nil, fmt.Errorf("writing unit %q: %w", unit.File, err)
		}

		if content.Scaffolded {
			result.Scaffolded = append(result.Scaffolded, content.Path)
			if content.Kind == KindNarrative {
				skipIncludes = append(skipIncludes, filepath.Base(content.Path))
			}
		}

		result.Units = append(result.Units, UnitResult{
			File:              unit.File,
			UID:               doc.UID,
			Kind:              content.Kind,
			OutputFile:        name,
			DurationInMinutes: doc.DurationInMinutes,
			Scaffolded:        content.Scaffolded,
		})

		logger.Debug("compiled unit",
			"unit", unit.File,
			"uid", doc.UID,
			"kind", content.Kind,
			"durationInMinutes", doc.DurationInMinutes,
			"scaffolded", content.Scaffolded,
		)
	}

	index, err := AssembleIndex(mod)
	if err != nil {
		return nil, err
	}
	if err := c.sink.WriteDocument(output.Document{Name: module.IndexFileName, Marker: IndexMarker, Body: index}); err != nil {
		return nil, fmt.Errorf("writing index: %w", err)
	}
	result.Index = index

	if c.assets != nil {
		if err := c.assets.Copy(ctx, skipIncludes); err != nil {
			return nil, fmt.Errorf("copying assets: %w", err)
		}
	}

	logger.Debug("compiled module", "units", len(result.Units), "scaffolded", len(result.Scaffolded))
	return result, nil
}
