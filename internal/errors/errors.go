// Package errors provides sentinel errors and structured error details for the learnmod CLI.
package errors

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Sentinel errors for known conditions.
var (
	// ErrConfigurationNotFound indicates the module definition file or the input directory is absent.
	ErrConfigurationNotFound = errors.New("configuration not found")

	// ErrMissingAttribute indicates a required key is absent at both unit and module scope.
	ErrMissingAttribute = errors.New("missing attribute")

	// ErrContentResolution indicates a unit names a file with an unsupported extension.
	ErrContentResolution = errors.New("content resolution error")

	// ErrMissingContent indicates a unit's content file does not exist and scaffolding is disabled.
	ErrMissingContent = errors.New("missing content")

	// ErrScaffoldWrite indicates a placeholder content file could not be created.
	ErrScaffoldWrite = errors.New("scaffold write error")

	// ErrValidation indicates invalid command input or a failed presence check.
	ErrValidation = errors.New("validation error")

	// ErrNotFound indicates a file or directory was not found.
	ErrNotFound = errors.New("not found")

	// ErrAborted indicates the user declined a destructive operation.
	ErrAborted = errors.New("aborted")
)

// DetailError captures structured error information.
type DetailError struct {
	// Type is the error category (required).
	Type string

	// Message is the specific description (required).
	Message string

	// Location is the file path (optional).
	Location string

	// Field is the attribute name for presence errors (optional).
	Field string

	// Context contains additional key-value context (optional).
	Context map[string]string

	// Hint provides actionable guidance (optional).
	Hint string

	// Cause is the underlying error (optional).
	Cause error
}

// Error implements the error interface.
func (e *DetailError) Error() string {
	var b strings.Builder

	b.WriteString("Error: ")
	b.WriteString(e.Type)
	b.WriteString("\n")

	if e.Location != "" {
		b.WriteString("  Location: ")
		b.WriteString(e.Location)
		b.WriteString("\n")
	}
	if e.Field != "" {
		b.WriteString("  Field: ")
		b.WriteString(e.Field)
		b.WriteString("\n")
	}

	// Sorted so the rendered block is stable across runs.
	keys := make([]string, 0, len(e.Context))
	for k := range e.Context {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		b.WriteString("  ")
		b.WriteString(k)
		b.WriteString(": ")
		b.WriteString(e.Context[k])
		b.WriteString("\n")
	}

	b.WriteString("\n  ")
	b.WriteString(e.Message)
	b.WriteString("\n")

	if e.Hint != "" {
		b.WriteString("\nHint: ")
		b.WriteString(e.Hint)
		b.WriteString("\n")
	}

	return b.String()
}

// Unwrap returns the underlying error.
func (e *DetailError) Unwrap() error {
	return e.Cause
}

// NewConfigurationNotFoundError reports a missing input directory or module definition.
func NewConfigurationNotFoundError(message, location, hint string) error {
	return &DetailError{
		Type:     "configuration not found",
		Message:  message,
		Location: location,
		Hint:     hint,
		Cause:    ErrConfigurationNotFound,
	}
}

// NewMissingAttributeError reports a required attribute absent at every scope.
// unit is empty for module-level attributes.
func NewMissingAttributeError(field, unit, location string) error {
	msg := fmt.Sprintf("required attribute %q is not declared", field)
	var ctx map[string]string
	if unit != "" {
		msg = fmt.Sprintf("required attribute %q is not declared for unit %q", field, unit)
		ctx = map[string]string{"Unit": unit}
	}
	return &DetailError{
		Type:     "missing attribute",
		Message:  msg,
		Location: location,
		Field:    field,
		Context:  ctx,
		Hint:     fmt.Sprintf("Add %q to the unit or module declaration in module.yml.", field),
		Cause:    ErrMissingAttribute,
	}
}

// NewContentResolutionError reports a unit whose file extension is not supported.
func NewContentResolutionError(unit, ext string) error {
	return &DetailError{
		Type:    "content resolution failed",
		Message: fmt.Sprintf("unit %q has unsupported extension %q", unit, ext),
		Context: map[string]string{"Unit": unit},
		Hint:    "Unit files must end in .md (narrative) or .yml/.yaml (assessment).",
		Cause:   ErrContentResolution,
	}
}

// NewMissingContentError reports a unit whose content file does not exist
// while scaffolding is disabled.
func NewMissingContentError(unit, location string) error {
	return &DetailError{
		Type:     "missing content",
		Message:  fmt.Sprintf("unit file .md or .yml not found for: %s", unit),
		Location: location,
		Context:  map[string]string{"Unit": unit},
		Hint:     "Create the file or run with --missing-content scaffold.",
		Cause:    ErrMissingContent,
	}
}

// NewScaffoldWriteError reports a placeholder file that could not be written.
func NewScaffoldWriteError(unit, location string, cause error) error {
	return &DetailError{
		Type:     "scaffold write failed",
		Message:  fmt.Sprintf("cannot create placeholder for unit %q: %v", unit, cause),
		Location: location,
		Context:  map[string]string{"Unit": unit},
		Cause:    errors.Join(ErrScaffoldWrite, cause),
	}
}

// NewValidationError creates a validation error with details.
func NewValidationError(message, location, field, hint string) error {
	return &DetailError{
		Type:     "validation failed",
		Message:  message,
		Location: location,
		Field:    field,
		Hint:     hint,
		Cause:    ErrValidation,
	}
}

// NewNotFoundError creates a not found error with details.
func NewNotFoundError(message, location, hint string) error {
	return &DetailError{
		Type:     "not found",
		Message:  message,
		Location: location,
		Hint:     hint,
		Cause:    ErrNotFound,
	}
}

// Wrap wraps an error with a sentinel error type.
func Wrap(sentinel error, message string) error {
	return fmt.Errorf("%s: %w", message, sentinel)
}
