// Package main is the entry point for the learnmod CLI.
package main

import (
	"context"
	"errors"
	"io"
	"os"

	"github.com/charmbracelet/fang"

	"github.com/learnmod/cli/internal/cmd"
	oerrors "github.com/learnmod/cli/internal/errors"
	"github.com/learnmod/cli/internal/version"
)

func main() {
	rootCmd := cmd.NewRootCmd()

	if err := fang.Execute(
		context.Background(),
		rootCmd,
		fang.WithVersion(version.GetInfo().Version),
		fang.WithNotifySignal(os.Interrupt),
		fang.WithErrorHandler(printError),
	); err != nil {
		os.Exit(oerrors.ExitCodeFromError(err))
	}
}

// printError shows err unless the command layer already printed it.
func printError(w io.Writer, styles fang.Styles, err error) {
	var exitErr *oerrors.ExitError
	if errors.As(err, &exitErr) && exitErr.Printed {
		return
	}
	fang.DefaultErrorHandler(w, styles, err)
}
