package cmd

import (
	"bytes"
	"strings"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"

	"github.com/learnmod/cli/internal/cmdtypes"
	"github.com/learnmod/cli/internal/config"
	oerrors "github.com/learnmod/cli/internal/errors"
)

const (
	projectDir = "/work/demo"
	outputDir  = "/work/out"
)

// cliRun is one command invocation against an in-memory filesystem.
type cliRun struct {
	fs     afero.Fs
	stdin  string
	tty    bool
	stdout bytes.Buffer
	stderr bytes.Buffer
}

func newRun(t *testing.T) *cliRun {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	for _, name := range []string{
		config.EnvConfig, config.EnvInput, config.EnvOutput,
		config.EnvMissingContent, config.EnvAssumeYes, config.EnvLogTimestamps,
	} {
		t.Setenv(name, "")
	}
	return &cliRun{fs: afero.NewMemMapFs()}
}

func (r *cliRun) exec(args ...string) error {
	r.stdout.Reset()
	r.stderr.Reset()

	gc := cmdtypes.NewGlobalConfig()
	gc.Fs = r.fs
	gc.In = strings.NewReader(r.stdin)
	gc.Interactive = func() bool { return r.tty }

	root := NewRootCmdWithConfig(gc)
	root.SetArgs(args)
	root.SetOut(&r.stdout)
	root.SetErr(&r.stderr)
	return root.Execute()
}

// requireExitCode asserts err is an ExitError carrying code.
func requireExitCode(t *testing.T, err error, code int) {
	t.Helper()
	require.Error(t, err)
	var exitErr *oerrors.ExitError
	require.ErrorAs(t, err, &exitErr)
	require.Equal(t, code, exitErr.Code, "error: %v", err)
}
