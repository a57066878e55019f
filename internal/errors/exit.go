package errors

import "errors"

// Exit codes returned by the learnmod binary.
const (
	// ExitSuccess indicates the command completed successfully.
	ExitSuccess = 0

	// ExitGeneralError indicates an unspecified error occurred.
	ExitGeneralError = 1

	// ExitValidationError indicates a missing attribute, unsupported content or bad input.
	ExitValidationError = 2

	// ExitNotFound indicates the configuration or a content file was not found.
	ExitNotFound = 5

	// ExitAborted indicates the user declined the output directory reset.
	ExitAborted = 6
)

// ExitError wraps an error with an exit code.
type ExitError struct {
	// Code is the process exit code.
	Code int

	// Err is the underlying error.
	Err error

	// Printed is true when the command layer has already shown the error.
	Printed bool
}

// Error implements the error interface.
func (e *ExitError) Error() string {
	if e.Err == nil {
		return ExitCodeName(e.Code)
	}
	return e.Err.Error()
}

// Unwrap returns the wrapped error.
func (e *ExitError) Unwrap() error {
	return e.Err
}

// ExitCodeName returns the name of the exit code.
func ExitCodeName(code int) string {
	switch code {
	case ExitSuccess:
		return "Success"
	case ExitGeneralError:
		return "General Error"
	case ExitValidationError:
		return "Validation Error"
	case ExitNotFound:
		return "Not Found"
	case ExitAborted:
		return "Aborted"
	default:
		return "Unknown"
	}
}

// ExitCodeFromError determines the appropriate exit code for an error.
func ExitCodeFromError(err error) int {
	if err == nil {
		return ExitSuccess
	}

	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}

	switch {
	case errors.Is(err, ErrMissingAttribute),
		errors.Is(err, ErrContentResolution),
		errors.Is(err, ErrValidation):
		return ExitValidationError
	case errors.Is(err, ErrConfigurationNotFound),
		errors.Is(err, ErrMissingContent),
		errors.Is(err, ErrNotFound):
		return ExitNotFound
	case errors.Is(err, ErrAborted):
		return ExitAborted
	default:
		return ExitGeneralError
	}
}
