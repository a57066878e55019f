// Package diff compares freshly compiled documents with an existing output tree.
package diff

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"github.com/gonvenience/ytbx"
	"github.com/homeport/dyff/pkg/dyff"
	"github.com/spf13/afero"

	"github.com/learnmod/cli/internal/output"
)

// Result represents a diff between compiled and published documents.
type Result struct {
	// Added documents (compiled, not in the output directory).
	Added []string

	// Removed documents (in the output directory, no longer compiled).
	Removed []string

	// Modified documents (different between output directory and compilation).
	Modified []output.ModifiedItem
}

// NewResult creates a new empty Result.
func NewResult() *Result {
	return &Result{
		Added:    make([]string, 0),
		Removed:  make([]string, 0),
		Modified: make([]output.ModifiedItem, 0),
	}
}

// IsEmpty returns true if there are no changes.
func (r *Result) IsEmpty() bool {
	return len(r.Added) == 0 && len(r.Removed) == 0 && len(r.Modified) == 0
}

// Summary returns a summary string of changes.
func (r *Result) Summary() string {
	return output.DiffSummary(len(r.Added), len(r.Removed), len(r.Modified))
}

// Options configures the comparison.
type Options struct {
	// UseColor enables colorized diff output.
	UseColor bool
}

// Documents compares compiled documents against the *.yml files at the top
// of dir on fsys. A missing dir means every document is added.
func Documents(fsys afero.Fs, dir string, docs []output.RenderedDocument, opts Options) (*Result, error) {
	result := NewResult()

	existing, err := listDocuments(fsys, dir)
	if err != nil {
		return nil, err
	}

	compiled := make(map[string]bool, len(docs))
	for _, doc := range docs {
		compiled[doc.Name] = true

		if !existing[doc.Name] {
			result.Added = append(result.Added, doc.Name)
			continue
		}

		published, err := afero.ReadFile(fsys, filepath.Join(dir, doc.Name))
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", doc.Name, err)
		}

		d, err := diffYAMLWithColor(published, doc.Data, opts.UseColor)
		if err != nil {
			return nil, fmt.Errorf("comparing %s: %w", doc.Name, err)
		}
		if d != "" {
			result.Modified = append(result.Modified, output.ModifiedItem{Name: doc.Name, Diff: d})
		}
	}

	for name := range existing {
		if !compiled[name] {
			result.Removed = append(result.Removed, name)
		}
	}

	sort.Strings(result.Added)
	sort.Strings(result.Removed)
	sort.Slice(result.Modified, func(i, j int) bool {
		return result.Modified[i].Name < result.Modified[j].Name
	})

	output.Debug("compared documents",
		"dir", dir,
		"added", len(result.Added),
		"removed", len(result.Removed),
		"modified", len(result.Modified),
	)
	return result, nil
}

func listDocuments(fsys afero.Fs, dir string) (map[string]bool, error) {
	entries, err := afero.ReadDir(fsys, dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return map[string]bool{}, nil
		}
		return nil, fmt.Errorf("reading output directory: %w", err)
	}

	names := make(map[string]bool, len(entries))
	for _, e := range entries {
		if !e.IsDir() && strings.HasSuffix(e.Name(), ".yml") {
			names[e.Name()] = true
		}
	}
	return names, nil
}

// diffYAMLWithColor computes a YAML-aware diff using dyff. Comments, including
// the format marker line, do not count as changes.
func diffYAMLWithColor(published, compiled []byte, useColor bool) (string, error) {
	if len(published) == 0 && len(compiled) == 0 {
		return "", nil
	}

	from, err := parseYAMLInput("published", published)
	if err != nil {
		return "", fmt.Errorf("parsing published YAML: %w", err)
	}

	to, err := parseYAMLInput("compiled", compiled)
	if err != nil {
		return "", fmt.Errorf("parsing compiled YAML: %w", err)
	}

	report, err := dyff.CompareInputFiles(from, to)
	if err != nil {
		return "", fmt.Errorf("comparing YAML: %w", err)
	}

	if len(report.Diffs) == 0 {
		return "", nil
	}

	return renderDyffReport(report, useColor)
}

// parseYAMLInput parses YAML bytes into a dyff input file.
func parseYAMLInput(name string, data []byte) (ytbx.InputFile, error) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return ytbx.InputFile{Location: name}, nil
	}

	docs, err := ytbx.LoadYAMLDocuments(data)
	if err != nil {
		return ytbx.InputFile{}, err
	}

	return ytbx.InputFile{
		Location:  name,
		Documents: docs,
	}, nil
}

// renderDyffReport renders a dyff report to a string.
func renderDyffReport(report dyff.Report, useColor bool) (string, error) {
	var buf bytes.Buffer

	reportWriter := &dyff.HumanReport{
		Report:            report,
		DoNotInspectCerts: true,
		NoTableStyle:      !useColor,
		OmitHeader:        true,
	}

	if err := reportWriter.WriteReport(io.Writer(&buf)); err != nil {
		return "", fmt.Errorf("writing report: %w", err)
	}

	lines := strings.Split(buf.String(), "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " \t")
	}

	return strings.TrimSpace(strings.Join(lines, "\n")), nil
}
