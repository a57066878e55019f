package output

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"path/filepath"

	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
	k8syaml "sigs.k8s.io/yaml"
)

// Format selects how documents are printed by dry runs.
type Format string

const (
	// FormatYAML prints documents as YAML with their format marker.
	FormatYAML Format = "yaml"

	// FormatJSON prints documents as indented JSON.
	FormatJSON Format = "json"
)

// ParseFormat parses a format string. The bool is false for unknown formats.
func ParseFormat(s string) (Format, bool) {
	switch s {
	case "yaml", "yml", "":
		return FormatYAML, true
	case "json":
		return FormatJSON, true
	default:
		return "", false
	}
}

// Document is one output file: a format marker line followed by a YAML body.
type Document struct {
	// Name is the file name relative to the output directory (e.g. "index.yml").
	Name string

	// Marker is written as "### <Marker>" on the first line (e.g. "YamlMime:Module").
	Marker string

	// Body is serialized with yaml.v3; struct field order is preserved.
	Body any
}

// DocumentWriter receives documents in the order they are produced.
type DocumentWriter interface {
	WriteDocument(doc Document) error
}

// EncodeDocument writes the marker line and the block-style YAML body to w.
func EncodeDocument(w io.Writer, doc Document) error {
	if doc.Marker != "" {
		if _, err := fmt.Fprintf(w, "### %s\n", doc.Marker); err != nil {
			return err
		}
	}

	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)
	if err := encoder.Encode(doc.Body); err != nil {
		return fmt.Errorf("encoding %s: %w", doc.Name, err)
	}
	return encoder.Close()
}

// MarshalDocument returns the encoded bytes of doc.
func MarshalDocument(doc Document) ([]byte, error) {
	var buf bytes.Buffer
	if err := EncodeDocument(&buf, doc); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// DirWriter writes each document to <Dir>/<Name> on Fs.
type DirWriter struct {
	Fs  afero.Fs
	Dir string
}

// NewDirWriter creates a DirWriter.
func NewDirWriter(fs afero.Fs, dir string) *DirWriter {
	return &DirWriter{Fs: fs, Dir: dir}
}

// WriteDocument implements DocumentWriter.
func (w *DirWriter) WriteDocument(doc Document) error {
	data, err := MarshalDocument(doc)
	if err != nil {
		return err
	}

	if err := w.Fs.MkdirAll(w.Dir, 0o755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	path := filepath.Join(w.Dir, doc.Name)
	if err := afero.WriteFile(w.Fs, path, data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}

	Debug("wrote document", "file", path, "marker", doc.Marker)
	return nil
}

// RenderedDocument is an encoded document kept in memory.
type RenderedDocument struct {
	Name string
	Data []byte
}

// BufferWriter keeps encoded documents in memory, for dry runs and diffs.
type BufferWriter struct {
	Docs []RenderedDocument
}

// WriteDocument implements DocumentWriter.
func (w *BufferWriter) WriteDocument(doc Document) error {
	data, err := MarshalDocument(doc)
	if err != nil {
		return err
	}
	w.Docs = append(w.Docs, RenderedDocument{Name: doc.Name, Data: data})
	return nil
}

// WriteRendered prints in-memory documents to out in the given format, in
// production order. YAML output keeps the marker lines and separates documents
// with "---". JSON output is one array of {"name", "document"} objects.
func WriteRendered(out io.Writer, docs []RenderedDocument, format Format) error {
	if format == FormatJSON {
		return writeRenderedJSON(out, docs)
	}

	for i, d := range docs {
		if i > 0 {
			if _, err := io.WriteString(out, "---\n"); err != nil {
				return err
			}
		}
		if _, err := out.Write(d.Data); err != nil {
			return err
		}
	}
	return nil
}

type jsonDocument struct {
	Name     string          `json:"name"`
	Document json.RawMessage `json:"document"`
}

func writeRenderedJSON(out io.Writer, docs []RenderedDocument) error {
	items := make([]jsonDocument, 0, len(docs))
	for _, d := range docs {
		js, err := k8syaml.YAMLToJSON(d.Data)
		if err != nil {
			return fmt.Errorf("converting %s to JSON: %w", d.Name, err)
		}
		items = append(items, jsonDocument{Name: d.Name, Document: js})
	}

	encoder := json.NewEncoder(out)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(items); err != nil {
		return fmt.Errorf("encoding JSON: %w", err)
	}
	return nil
}
