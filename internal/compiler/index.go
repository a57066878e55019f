package compiler

import (
	"github.com/learnmod/cli/internal/module"
)

// IndexMarker is the format marker line of the index document.
const IndexMarker = "YamlMime:Module"

// IndexDocument is the published form of the module. Field order is the
// serialized key order.
type IndexDocument struct {
	UID           string        `yaml:"uid"`
	Metadata      IndexMetadata `yaml:"metadata"`
	Title         string        `yaml:"title"`
	Summary       string        `yaml:"summary,omitempty"`
	Abstract      string        `yaml:"abstract,omitempty"`
	Prerequisites []string      `yaml:"prerequisites,omitempty"`
	Levels        []string      `yaml:"levels,omitempty"`
	Badge         Badge         `yaml:"badge"`
	Roles         []string      `yaml:"roles,omitempty"`
	Products      []string      `yaml:"products,omitempty"`
	Subjects      []string      `yaml:"subjects,omitempty"`
	Units         []string      `yaml:"units"`
}

// IndexMetadata is the metadata block of the index document.
type IndexMetadata struct {
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
	Author      string `yaml:"author,omitempty"`
	Date        string `yaml:"ms.date,omitempty"`
	MSAuthor    string `yaml:"ms.author,omitempty"`
	Topic       string `yaml:"ms.topic,omitempty"`
	Prod        string `yaml:"ms.prod,omitempty"`
	Custom      string `yaml:"ms.custom,omitempty"`
}

// Badge references the module's completion badge.
type Badge struct {
	UID string `yaml:"uid"`
}

// AssembleIndex builds the index document. Units are listed in declaration order.
func AssembleIndex(mod *module.Module) (*IndexDocument, error) {
	title, err := Require(mod, nil, module.KeyTitle)
	if err != nil {
		return nil, err
	}
	description, err := Require(mod, nil, module.KeyDescription)
	if err != nil {
		return nil, err
	}

	attr := func(key module.Key) string {
		v, _ := mod.Attr(key)
		return v
	}
	author := attr(module.KeyAuthor)

	units := make([]string, 0, len(mod.Units))
	for i := range mod.Units {
		units = append(units, DeriveUnitID(mod.UIDRoot, mod.Units[i].File))
	}

	return &IndexDocument{
		UID: mod.UIDRoot,
		Metadata: IndexMetadata{
			Title:       title,
			Description: description,
			Author:      author,
			Date:        attr(module.KeyDate),
			MSAuthor:    author,
			Topic:       attr(module.KeyTopic),
			Prod:        attr(module.KeyProd),
			Custom:      attr(module.KeyCustom),
		},
		Title:         title,
		Summary:       attr(module.KeySummary),
		Abstract:      attr(module.KeyAbstract),
		Prerequisites: mod.Prerequisites,
		Levels:        mod.Levels,
		Badge:         Badge{UID: BadgeID(mod.UIDRoot)},
		Roles:         mod.Roles,
		Products:      mod.Products,
		Subjects:      mod.Subjects,
		Units:         units,
	}, nil
}
