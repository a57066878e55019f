package templates

import "fmt"

// DefaultTemplateName is the template used when --template is not specified.
const DefaultTemplateName = "standard"

// templates is the internal registry of available templates.
var templates = map[string]Template{
	"standard": {
		Name:        "standard",
		Description: "Full metadata with a narrative unit and a knowledge check",
		UseCase:     "Modules intended for publishing",
		Default:     true,
	},
	"minimal": {
		Name:        "minimal",
		Description: "Required keys only with a single narrative unit",
		UseCase:     "Drafts and experiments",
		Default:     false,
	},
}

// Get returns a template by name.
func Get(name string) (Template, error) {
	t, ok := templates[name]
	if !ok {
		return Template{}, fmt.Errorf("unknown template %q; valid templates: standard, minimal", name)
	}
	return t, nil
}

// List returns all available templates.
func List() []Template {
	return []Template{
		templates["standard"],
		templates["minimal"],
	}
}

// GetDefault returns the default template.
func GetDefault() Template {
	return templates[DefaultTemplateName]
}
