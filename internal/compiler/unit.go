package compiler

import (
	"github.com/learnmod/cli/internal/module"
)

// UnitMarker is the format marker line of unit documents.
const UnitMarker = "YamlMime:ModuleUnit"

// UnitDocument is the published form of one unit. Field order is the
// serialized key order.
type UnitDocument struct {
	UID               string             `yaml:"uid"`
	Title             string             `yaml:"title"`
	Metadata          UnitMetadata       `yaml:"metadata"`
	DurationInMinutes int                `yaml:"durationInMinutes"`
	Quiz              *module.Assessment `yaml:"quiz,omitempty"`
	Content           string             `yaml:"content,omitempty"`
}

// UnitMetadata is the metadata block of a unit document.
type UnitMetadata struct {
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
	Date        string `yaml:"ms.date,omitempty"`
	Author      string `yaml:"author,omitempty"`
	MSAuthor    string `yaml:"ms.author,omitempty"`
	Topic       string `yaml:"ms.topic,omitempty"`
	Prod        string `yaml:"ms.prod,omitempty"`
	Custom      string `yaml:"ms.custom,omitempty"`
}

// IncludeDirective is the content reference of a narrative unit.
func IncludeDirective(file string) string {
	return "[!include[](" + module.IncludesDir + "/" + file + ")]"
}

// AssembleUnit builds the document for unit from its resolved content.
// A declared durationInMinutes wins over the estimate.
func AssembleUnit(mod *module.Module, unit *module.Unit, content *ResolvedContent) (*UnitDocument, error) {
	title, err := RequireOwn(unit, module.KeyTitle)
	if err != nil {
		return nil, err
	}
	description, err := RequireOwn(unit, module.KeyDescription)
	if err != nil {
		return nil, err
	}

	attr := func(key module.Key) string {
		v, _ := Resolve(mod, unit, key)
		return v
	}
	author := attr(module.KeyAuthor)

	doc := &UnitDocument{
		UID:   DeriveUnitID(mod.UIDRoot, unit.File),
		Title: title,
		Metadata: UnitMetadata{
			Title:       title,
			Description: description,
			Date:        attr(module.KeyDate),
			Author:      author,
			MSAuthor:    author,
			Topic:       attr(module.KeyTopic),
			Prod:        attr(module.KeyProd),
			Custom:      attr(module.KeyCustom),
		},
	}

	if unit.DurationInMinutes != nil {
		doc.DurationInMinutes = *unit.DurationInMinutes
	} else {
		doc.DurationInMinutes = Estimate(content.Text)
	}

	if content.Kind == KindAssessment {
		doc.Quiz = content.Quiz
	} else {
		doc.Content = IncludeDirective(unit.File)
	}

	return doc, nil
}
