package compiler

import (
	"slices"
	"strings"

	"github.com/learnmod/cli/internal/module"
	"github.com/learnmod/cli/internal/output"
)

func ptr[T any](v T) *T {
	return &v
}

func words(n int) string {
	return strings.TrimSpace(strings.Repeat("word ", n))
}

func demoModule(units ...module.Unit) *module.Module {
	return &module.Module{
		UIDRoot:     "learn.demo",
		Title:       ptr("Demo module"),
		Description: ptr("A demo"),
		Date:        ptr("01/02/2026"),
		Author:      ptr("alias"),
		Topic:       ptr("interactive-tutorial"),
		Prod:        ptr("learning"),
		Custom:      ptr("team=docs"),
		Units:       units,
	}
}

func narrativeUnit(file, title string) module.Unit {
	return module.Unit{File: file, Title: ptr(title), Description: ptr(title + " description")}
}

// docNames returns the names of the documents in sink, sorted.
func docNames(sink *output.BufferWriter) []string {
	names := make([]string, 0, len(sink.Docs))
	for _, d := range sink.Docs {
		names = append(names, d.Name)
	}
	slices.Sort(names)
	return names
}

func docsByName(sink *output.BufferWriter) map[string][]byte {
	m := make(map[string][]byte, len(sink.Docs))
	for _, d := range sink.Docs {
		m[d.Name] = d.Data
	}
	return m
}
