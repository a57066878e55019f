// Package cmdtypes provides shared types for the cmd package.
// It is separate from internal/cmd so packages that only need the resolved
// CLI state do not import every command.
package cmdtypes

import (
	"io"
	"os"

	"github.com/spf13/afero"

	"github.com/learnmod/cli/internal/config"
	oerrors "github.com/learnmod/cli/internal/errors"
	"github.com/learnmod/cli/internal/output"
)

// GlobalConfig holds CLI-wide configuration resolved during PersistentPreRunE.
// It is populated once at startup and passed explicitly into every sub-command
// constructor.
type GlobalConfig struct {
	// Fs is the filesystem every command reads and writes through.
	Fs afero.Fs

	// Config is the loaded config file. Nil until PersistentPreRunE runs.
	Config *config.Config

	// ConfigPath is the resolved --config path.
	ConfigPath string

	// InConfigFile reports whether a key was present in the config file.
	InConfigFile func(key string) bool

	Verbose    bool
	Timestamps config.Flag[bool]

	// In is where confirmation answers are read from.
	In io.Reader

	// Interactive reports whether In is a terminal.
	Interactive func() bool
}

// NewGlobalConfig returns a GlobalConfig bound to the real filesystem and stdin.
func NewGlobalConfig() *GlobalConfig {
	return &GlobalConfig{
		Fs:          afero.NewOsFs(),
		In:          os.Stdin,
		Interactive: output.IsStdinTTY,
	}
}

// ConfigFileHas is InConfigFile with a nil guard.
func (g *GlobalConfig) ConfigFileHas(key string) bool {
	if g.InConfigFile == nil {
		return false
	}
	return g.InConfigFile(key)
}

// IsInteractive is Interactive with a nil guard.
func (g *GlobalConfig) IsInteractive() bool {
	if g.Interactive == nil {
		return false
	}
	return g.Interactive()
}

// Exit codes, aliased from internal/errors.
const (
	ExitSuccess         = oerrors.ExitSuccess
	ExitGeneralError    = oerrors.ExitGeneralError
	ExitValidationError = oerrors.ExitValidationError
	ExitNotFound        = oerrors.ExitNotFound
	ExitAborted         = oerrors.ExitAborted
)

// ExitError is a type alias to internal/errors.ExitError.
type ExitError = oerrors.ExitError

// Exit wraps err with the exit code its sentinel maps to. A nil err stays nil.
func Exit(err error) error {
	if err == nil {
		return nil
	}
	if _, ok := err.(*ExitError); ok {
		return err
	}
	return &ExitError{Code: oerrors.ExitCodeFromError(err), Err: err}
}
