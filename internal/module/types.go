// Package module defines the course-module declaration and loads it from module.yml.
package module

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Definition is the root of module.yml.
type Definition struct {
	Module Module `yaml:"module"`
}

// Module is the root declaration of a learning module.
// Pointer fields distinguish "not declared" from "declared empty".
type Module struct {
	UIDRoot     string  `yaml:"uid_root"`
	Title       *string `yaml:"title"`
	Description *string `yaml:"description"`
	Summary     *string `yaml:"summary"`
	Abstract    *string `yaml:"abstract"`
	Date        *string `yaml:"date"`
	Author      *string `yaml:"author"`
	Topic       *string `yaml:"topic"`
	Prod        *string `yaml:"prod"`
	Custom      *string `yaml:"custom"`

	Prerequisites StringList `yaml:"prerequisites"`
	Levels        StringList `yaml:"levels"`
	Roles         StringList `yaml:"roles"`
	Products      StringList `yaml:"products"`
	Subjects      StringList `yaml:"subjects"`

	Units []Unit `yaml:"units"`
}

// Unit is one learning step declared inside a module.
type Unit struct {
	// File is the backing filename under source/, e.g. "Intro Unit.md".
	File        string  `yaml:"unit"`
	Title       *string `yaml:"title"`
	Description *string `yaml:"description"`
	Date        *string `yaml:"date"`
	Author      *string `yaml:"author"`
	Topic       *string `yaml:"topic"`
	Prod        *string `yaml:"prod"`
	Custom      *string `yaml:"custom"`

	// DurationInMinutes skips estimation when set.
	DurationInMinutes *int `yaml:"durationInMinutes"`
}

// Key names an attribute that can be looked up on a module or a unit.
type Key string

// Attribute keys.
const (
	KeyTitle       Key = "title"
	KeyDescription Key = "description"
	KeySummary     Key = "summary"
	KeyAbstract    Key = "abstract"
	KeyDate        Key = "date"
	KeyAuthor      Key = "author"
	KeyTopic       Key = "topic"
	KeyProd        Key = "prod"
	KeyCustom      Key = "custom"
)

// InheritableKeys are the keys a unit may override; all others are module-only.
var InheritableKeys = []Key{KeyDate, KeyAuthor, KeyTopic, KeyProd, KeyCustom}

// Attr returns the module's value for key and whether it is declared.
func (m *Module) Attr(key Key) (string, bool) {
	var p *string
	switch key {
	case KeyTitle:
		p = m.Title
	case KeyDescription:
		p = m.Description
	case KeySummary:
		p = m.Summary
	case KeyAbstract:
		p = m.Abstract
	case KeyDate:
		p = m.Date
	case KeyAuthor:
		p = m.Author
	case KeyTopic:
		p = m.Topic
	case KeyProd:
		p = m.Prod
	case KeyCustom:
		p = m.Custom
	}
	if p == nil {
		return "", false
	}
	return *p, true
}

// Attr returns the unit's own value for key and whether it is declared.
// Module-only keys are never declared on a unit.
func (u *Unit) Attr(key Key) (string, bool) {
	var p *string
	switch key {
	case KeyTitle:
		p = u.Title
	case KeyDescription:
		p = u.Description
	case KeyDate:
		p = u.Date
	case KeyAuthor:
		p = u.Author
	case KeyTopic:
		p = u.Topic
	case KeyProd:
		p = u.Prod
	case KeyCustom:
		p = u.Custom
	}
	if p == nil {
		return "", false
	}
	return *p, true
}

// StringList is a list of strings that also accepts a single scalar in YAML.
type StringList []string

// UnmarshalYAML implements yaml.Unmarshaler.
func (l *StringList) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		if node.Tag == "!!null" {
			*l = nil
			return nil
		}
		*l = StringList{node.Value}
		return nil
	case yaml.SequenceNode:
		var items []string
		if err := node.Decode(&items); err != nil {
			return err
		}
		*l = items
		return nil
	default:
		return fmt.Errorf("line %d: expected a string or a list of strings", node.Line)
	}
}

// Assessment is a quiz: an ordered sequence of multiple-choice questions.
type Assessment struct {
	Title     string     `yaml:"title,omitempty"`
	Questions []Question `yaml:"questions"`
}

// Question is one assessment question.
type Question struct {
	Content string   `yaml:"content"`
	Choices []Choice `yaml:"choices"`
}

// Choice is one answer option of a question.
type Choice struct {
	Content     string `yaml:"content"`
	IsCorrect   bool   `yaml:"isCorrect"`
	Explanation string `yaml:"explanation"`
}

// HasCorrectChoice reports whether at least one choice is marked correct.
func (q Question) HasCorrectChoice() bool {
	for _, c := range q.Choices {
		if c.IsCorrect {
			return true
		}
	}
	return false
}

// ParseAssessment decodes assessment YAML. Both a bare document and one
// nested under a top-level "quiz" key are accepted.
func ParseAssessment(data []byte) (*Assessment, error) {
	var wrapped struct {
		Quiz *Assessment `yaml:"quiz"`
	}
	if err := yaml.Unmarshal(data, &wrapped); err == nil && wrapped.Quiz != nil {
		return wrapped.Quiz, nil
	}

	var a Assessment
	if err := yaml.Unmarshal(data, &a); err != nil {
		return nil, err
	}
	return &a, nil
}
