// Package testutil provides test helpers for CLI tests.
package testutil

import (
	"os"
	"path/filepath"
	"sort"
	"testing"

	"github.com/spf13/afero"
)

// DemoModule is a module.yml with one narrative and one assessment unit.
const DemoModule = `module:
  uid_root: learn.demo
  title: Demo Module
  description: A demo module.
  summary: Learn the demo.
  date: 01/15/2026
  author: jdoe
  units:
    - unit: Introduction.md
      title: Introduction
      description: What this module covers.
    - unit: Knowledge check.yml
      title: Knowledge check
      description: Check your knowledge.
`

// DemoIntro is narrative content for DemoModule's first unit.
const DemoIntro = "# Introduction\n\nThis module walks through the demo project step by step.\n"

// DemoQuiz is assessment content for DemoModule's second unit.
const DemoQuiz = `questions:
  - content: Which answer is right?
    choices:
      - content: This one.
        isCorrect: true
        explanation: Correct.
      - content: That one.
        isCorrect: false
        explanation: Not quite.
`

// WriteFile creates a file with the given content below dir on fs.
func WriteFile(t *testing.T, fs afero.Fs, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := fs.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("failed to create parent dirs for %s: %v", path, err)
	}
	if err := afero.WriteFile(fs, path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write file %s: %v", path, err)
	}
	return path
}

// WriteProject writes moduleYAML as dir/module.yml and each entry of sources
// below dir/source.
func WriteProject(t *testing.T, fs afero.Fs, dir, moduleYAML string, sources map[string]string) {
	t.Helper()
	WriteFile(t, fs, dir, "module.yml", moduleYAML)
	if err := fs.MkdirAll(filepath.Join(dir, "source"), 0o755); err != nil {
		t.Fatalf("failed to create source dir: %v", err)
	}
	for name, content := range sources {
		WriteFile(t, fs, filepath.Join(dir, "source"), name, content)
	}
}

// WriteDemoProject writes DemoModule with both content files present.
func WriteDemoProject(t *testing.T, fs afero.Fs, dir string) {
	t.Helper()
	WriteProject(t, fs, dir, DemoModule, map[string]string{
		"Introduction.md":     DemoIntro,
		"Knowledge check.yml": DemoQuiz,
	})
}

// ReadFile returns the content of path on fs.
func ReadFile(t *testing.T, fs afero.Fs, path string) string {
	t.Helper()
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		t.Fatalf("failed to read %s: %v", path, err)
	}
	return string(data)
}

// ListFiles returns every regular file below dir, relative and slash-separated, sorted.
func ListFiles(t *testing.T, fs afero.Fs, dir string) []string {
	t.Helper()
	var files []string
	err := afero.Walk(fs, dir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			return nil
		}
		rel, err := filepath.Rel(dir, path)
		if err != nil {
			return err
		}
		files = append(files, filepath.ToSlash(rel))
		return nil
	})
	if err != nil {
		t.Fatalf("failed to walk %s: %v", dir, err)
	}
	sort.Strings(files)
	return files
}
