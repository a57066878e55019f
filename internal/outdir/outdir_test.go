package outdir

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	oerrors "github.com/learnmod/cli/internal/errors"
)

func seedOutput(t *testing.T) afero.Fs {
	t.Helper()
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/out/stale.yml", []byte("old"), 0o644))
	return fs
}

func TestReset_Confirmed(t *testing.T) {
	fs := seedOutput(t)

	require.NoError(t, Reset(fs, "/out", AlwaysConfirm))

	exists, err := afero.Exists(fs, "/out/stale.yml")
	require.NoError(t, err)
	assert.False(t, exists)

	isDir, err := afero.IsDir(fs, "/out")
	require.NoError(t, err)
	assert.True(t, isDir)
}

func TestReset_Declined(t *testing.T) {
	fs := seedOutput(t)

	err := Reset(fs, "/out", AlwaysDeny)
	require.Error(t, err)
	assert.True(t, errors.Is(err, oerrors.ErrAborted))
	assert.Equal(t, oerrors.ExitAborted, oerrors.ExitCodeFromError(err))

	data, err := afero.ReadFile(fs, "/out/stale.yml")
	require.NoError(t, err)
	assert.Equal(t, "old", string(data))
}

func TestReset_NewDirectoryDoesNotAsk(t *testing.T) {
	fs := afero.NewMemMapFs()
	asked := false

	err := Reset(fs, "/fresh/out", func(string) (bool, error) {
		asked = true
		return false, nil
	})
	require.NoError(t, err)
	assert.False(t, asked)

	isDir, err := afero.IsDir(fs, "/fresh/out")
	require.NoError(t, err)
	assert.True(t, isDir)
}

func TestReset_RefusesDangerousTargets(t *testing.T) {
	for _, dir := range []string{"", ".", "/"} {
		t.Run(dir, func(t *testing.T) {
			err := Reset(afero.NewMemMapFs(), dir, AlwaysConfirm)
			require.Error(t, err)
			assert.True(t, errors.Is(err, oerrors.ErrValidation))
		})
	}
}

func TestPrompt(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{"yes", "y\n", true},
		{"long yes", "YES\n", true},
		{"no", "n\n", false},
		{"empty", "\n", false},
		{"eof", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			ok, err := Prompt(strings.NewReader(tt.input), &out, true)("/out")
			require.NoError(t, err)
			assert.Equal(t, tt.want, ok)
			assert.Contains(t, out.String(), "/out")
			assert.Contains(t, out.String(), "[y/N]")
		})
	}
}

func TestPrompt_NonInteractiveRefuses(t *testing.T) {
	var out bytes.Buffer
	ok, err := Prompt(strings.NewReader("y\n"), &out, false)("/out")
	require.Error(t, err)
	assert.False(t, ok)
	assert.Empty(t, out.String())

	fs := seedOutput(t)
	err = Reset(fs, "/out", Prompt(strings.NewReader("y\n"), &out, false))
	assert.True(t, errors.Is(err, oerrors.ErrValidation))
}
