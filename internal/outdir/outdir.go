// Package outdir resets the output directory before a compilation run.
package outdir

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/spf13/afero"

	oerrors "github.com/learnmod/cli/internal/errors"
	"github.com/learnmod/cli/internal/output"
)

// ConfirmFunc decides whether an existing directory may be deleted.
type ConfirmFunc func(dir string) (bool, error)

// AlwaysConfirm approves every deletion (--yes).
func AlwaysConfirm(string) (bool, error) {
	return true, nil
}

// AlwaysDeny declines every deletion.
func AlwaysDeny(string) (bool, error) {
	return false, nil
}

// Prompt asks on out and reads the answer from in. When interactive is false
// it refuses instead of blocking on a read.
func Prompt(in io.Reader, out io.Writer, interactive bool) ConfirmFunc {
	return func(dir string) (bool, error) {
		if !interactive {
			return false, oerrors.NewValidationError(
				"output directory exists and stdin is not a terminal",
				dir, "",
				"Pass --yes to allow deleting the output directory in non-interactive runs.")
		}
		question := fmt.Sprintf("Delete the output directory %s and everything in it?", dir)
		return output.AskYesNo(in, out, question), nil
	}
}

// Reset deletes dir (after confirmation, when it exists) and recreates it empty.
func Reset(fs afero.Fs, dir string, confirm ConfirmFunc) error {
	clean := filepath.Clean(dir)
	if clean == "." || clean == string(filepath.Separator) || clean == "" {
		return oerrors.NewValidationError(
			fmt.Sprintf("refusing to reset %q", dir),
			dir, "output", "Choose a dedicated output directory.")
	}

	exists, err := afero.Exists(fs, clean)
	if err != nil {
		return fmt.Errorf("checking output directory: %w", err)
	}

	if exists {
		ok, err := confirm(clean)
		if err != nil {
			return err
		}
		if !ok {
			output.Info("deletion declined, nothing written")
			return &oerrors.ExitError{
				Code: oerrors.ExitAborted,
				Err:  oerrors.Wrap(oerrors.ErrAborted, "output directory reset declined"),
			}
		}
		if err := fs.RemoveAll(clean); err != nil {
			return fmt.Errorf("deleting output directory: %w", err)
		}
		output.Debug("deleted output directory", "dir", clean)
	}

	if err := fs.MkdirAll(clean, 0o755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}
	return nil
}
