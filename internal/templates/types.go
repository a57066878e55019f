package templates

// Template represents a project template with its metadata.
type Template struct {
	// Name is the template identifier (standard, minimal).
	Name string

	// Description explains the template's purpose and use case.
	Description string

	// Default indicates if this is the default template when --template is omitted.
	Default bool

	// UseCase describes when to use this template.
	UseCase string
}

// ProjectData holds the data passed to project template rendering.
type ProjectData struct {
	// Name is the project directory name.
	Name string

	// UIDRoot is the identifier namespace written to module.yml.
	UIDRoot string

	// Title is the human-readable module title derived from Name.
	Title string

	// Date is the initial ms.date value (MM/DD/YYYY).
	Date string
}

// ScaffoldData holds the values embedded in a placeholder content file.
type ScaffoldData struct {
	Title       string
	Description string

	// Body is pre-rendered content appended after the header (assessment scaffolds).
	Body string
}

// GenerateOptions configures project generation behavior.
type GenerateOptions struct {
	// TargetDir is the directory to create the project in.
	TargetDir string

	// TemplateName is the template to use.
	TemplateName string

	// UIDRoot overrides the derived identifier namespace.
	UIDRoot string

	// Date overrides the initial date (defaults to today).
	Date string
}

// GenerateResult contains the result of project generation.
type GenerateResult struct {
	// Files is the list of created files, relative to TargetDir.
	Files []string

	// TemplateName is the template that was used.
	TemplateName string

	// TargetDir is the directory where the project was created.
	TargetDir string

	// UIDRoot is the namespace written to module.yml.
	UIDRoot string
}
