package cmd

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/learnmod/cli/internal/cmdtypes"
	"github.com/learnmod/cli/internal/config"
	oerrors "github.com/learnmod/cli/internal/errors"
	"github.com/learnmod/cli/internal/testutil"
)

func TestNewConfigInitCmd(t *testing.T) {
	c := NewConfigInitCmd(cmdtypes.NewGlobalConfig())

	assert.Equal(t, "init", c.Use)
	assert.NotEmpty(t, c.Short)
	assert.NotNil(t, c.Flags().Lookup("force"))
}

func TestConfigInit(t *testing.T) {
	r := newRun(t)
	path := "/cfg/config.yaml"

	require.NoError(t, r.exec("--config", path, "config", "init"))

	content := testutil.ReadFile(t, r.fs, path)
	assert.Contains(t, content, "# learnmod configuration.")
	assert.Contains(t, content, "missingContent: scaffold")
	assert.Contains(t, content, "output: ./learn-output")

	info, err := r.fs.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, "-rw-------", info.Mode().Perm().String())

	// The generated file loads and validates.
	cfg, err := config.NewLoader(r.fs).Load(path)
	require.NoError(t, err)
	assert.Equal(t, config.DefaultMissingContent, cfg.MissingContent)
	require.NoError(t, r.exec("--config", path, "config", "vet"))
	assert.Contains(t, r.stdout.String(), "Configuration is valid")
}

func TestConfigInit_RefusesOverwrite(t *testing.T) {
	r := newRun(t)
	path := "/cfg/config.yaml"
	testutil.WriteFile(t, r.fs, filepath.Dir(path), filepath.Base(path), "input: ./mine\n")

	err := r.exec("--config", path, "config", "init")
	requireExitCode(t, err, oerrors.ExitValidationError)
	assert.Contains(t, err.Error(), "already exists")
	assert.Equal(t, "input: ./mine\n", testutil.ReadFile(t, r.fs, path))

	require.NoError(t, r.exec("--config", path, "config", "init", "--force"))
	assert.Contains(t, testutil.ReadFile(t, r.fs, path), "missingContent: scaffold")
}

func TestConfigInit_OverBrokenConfig(t *testing.T) {
	r := newRun(t)
	path := "/cfg/config.yaml"
	testutil.WriteFile(t, r.fs, "/cfg", "config.yaml", "missingContent: sometimes\n")

	require.NoError(t, r.exec("--config", path, "config", "init", "--force"))
}

func TestConfigVet(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		wantCode int
	}{
		{name: "valid", content: "missingContent: fail\nassumeYes: true\n", wantCode: oerrors.ExitSuccess},
		{name: "bad policy", content: "missingContent: sometimes\n", wantCode: oerrors.ExitValidationError},
		{name: "bad yaml", content: "input: [unclosed\n", wantCode: oerrors.ExitValidationError},
		{name: "missing file", wantCode: oerrors.ExitNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newRun(t)
			if tt.content != "" {
				testutil.WriteFile(t, r.fs, "/cfg", "config.yaml", tt.content)
			}

			err := r.exec("--config", "/cfg/config.yaml", "config", "vet")
			if tt.wantCode == oerrors.ExitSuccess {
				require.NoError(t, err)
				return
			}
			requireExitCode(t, err, tt.wantCode)
		})
	}
}
