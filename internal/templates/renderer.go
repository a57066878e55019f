package templates

import (
	"bytes"
	"fmt"
	"io/fs"
	"strings"
	"text/template"
)

// Renderer handles template rendering with data substitution.
type Renderer struct {
	data any
}

// NewRenderer creates a new renderer with the given template data.
func NewRenderer(data any) *Renderer {
	return &Renderer{data: data}
}

// funcs keeps free-text values inside the single-line comments that head
// scaffolded content files.
var funcs = template.FuncMap{
	"oneline":     oneline,
	"htmlcomment": htmlComment,
}

// oneline collapses every run of whitespace, newlines included, to one space.
func oneline(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// htmlComment is oneline with "--" broken up so the value cannot close or
// nest an HTML comment.
func htmlComment(s string) string {
	s = oneline(s)
	for strings.Contains(s, "--") {
		s = strings.ReplaceAll(s, "--", "- -")
	}
	return s
}

// RenderFile renders a single template file and returns the content.
func (r *Renderer) RenderFile(content []byte) ([]byte, error) {
	tmpl, err := template.New("file").Funcs(funcs).Option("missingkey=error").Parse(string(content))
	if err != nil {
		return nil, fmt.Errorf("parsing template: %w", err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, r.data); err != nil {
		return nil, fmt.Errorf("executing template: %w", err)
	}

	return buf.Bytes(), nil
}

// TemplateFile represents a file to be generated from a template.
type TemplateFile struct {
	// SourcePath is the path within the embedded filesystem.
	SourcePath string

	// TargetPath is the output path (with .tmpl suffix removed).
	TargetPath string

	// Content is the rendered content.
	Content []byte
}

// RenderTemplate renders all files from a project template and returns them.
func (r *Renderer) RenderTemplate(templateName string) ([]TemplateFile, error) {
	var files []TemplateFile

	err := fs.WalkDir(TemplateFS, templateName, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(path, ".tmpl") {
			return nil
		}

		content, err := fs.ReadFile(TemplateFS, path)
		if err != nil {
			return fmt.Errorf("reading %s: %w", path, err)
		}

		rendered, err := r.RenderFile(content)
		if err != nil {
			return fmt.Errorf("rendering %s: %w", path, err)
		}

		relPath := strings.TrimPrefix(path, templateName+"/")
		files = append(files, TemplateFile{
			SourcePath: path,
			TargetPath: strings.TrimSuffix(relPath, ".tmpl"),
			Content:    rendered,
		})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking template %s: %w", templateName, err)
	}

	return files, nil
}

// ListTemplateFiles returns the files of a template without rendering.
func ListTemplateFiles(templateName string) ([]string, error) {
	var files []string

	err := fs.WalkDir(TemplateFS, templateName, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(path, ".tmpl") {
			return nil
		}
		relPath := strings.TrimPrefix(path, templateName+"/")
		files = append(files, strings.TrimSuffix(relPath, ".tmpl"))
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("listing template %s: %w", templateName, err)
	}

	return files, nil
}
