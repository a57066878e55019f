package cmd

import (
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/learnmod/cli/internal/cmdtypes"
	oerrors "github.com/learnmod/cli/internal/errors"
	"github.com/learnmod/cli/internal/testutil"
)

func TestNewBuildCmd(t *testing.T) {
	c := NewBuildCmd(cmdtypes.NewGlobalConfig())

	assert.Equal(t, "build", c.Use)
	assert.NotEmpty(t, c.Short)
	assert.NotEmpty(t, c.Long)

	for _, name := range []string{"input", "output", "missing-content", "yes", "dry-run", "format"} {
		assert.NotNil(t, c.Flags().Lookup(name), name)
	}
	assert.Equal(t, "i", c.Flags().Lookup("input").Shorthand)
	assert.Equal(t, "o", c.Flags().Lookup("output").Shorthand)
	assert.Equal(t, "y", c.Flags().Lookup("yes").Shorthand)
}

func TestBuild_WritesDocumentsAndAssets(t *testing.T) {
	r := newRun(t)
	testutil.WriteDemoProject(t, r.fs, projectDir)
	testutil.WriteFile(t, r.fs, projectDir, "media/diagram.png", "png")

	err := r.exec("build", "-i", projectDir, "-o", outputDir)
	require.NoError(t, err)

	assert.Equal(t, []string{
		"includes/Introduction.md",
		"index.yml",
		"introduction.yml",
		"knowledge-check.yml",
		"media/diagram.png",
	}, testutil.ListFiles(t, r.fs, outputDir))

	index := testutil.ReadFile(t, r.fs, filepath.Join(outputDir, "index.yml"))
	assert.Contains(t, index, "### YamlMime:Module")
	assert.Contains(t, index, "uid: learn.demo")

	unit := testutil.ReadFile(t, r.fs, filepath.Join(outputDir, "knowledge-check.yml"))
	assert.Contains(t, unit, "### YamlMime:ModuleUnit")
	assert.Contains(t, unit, "uid: learn.demo.knowledge-check")

	assert.Contains(t, r.stdout.String(), "index.yml")
	assert.Contains(t, r.stdout.String(), "Compiled 2 units")
}

func TestBuild_ScaffoldsMissingContent(t *testing.T) {
	r := newRun(t)
	testutil.WriteProject(t, r.fs, projectDir, testutil.DemoModule, nil)

	require.NoError(t, r.exec("build", "-i", projectDir, "-o", outputDir))

	for _, name := range []string{"Introduction.md", "Knowledge check.yml"} {
		ok, err := afero.Exists(r.fs, filepath.Join(projectDir, "source", name))
		require.NoError(t, err)
		assert.True(t, ok, name)
	}

	// A placeholder written during this run is not published yet.
	ok, err := afero.Exists(r.fs, filepath.Join(outputDir, "includes", "Introduction.md"))
	require.NoError(t, err)
	assert.False(t, ok)

	// The next run publishes it.
	require.NoError(t, r.exec("build", "-i", projectDir, "-o", outputDir, "--yes"))
	ok, err = afero.Exists(r.fs, filepath.Join(outputDir, "includes", "Introduction.md"))
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestBuild_UppercaseMarkdownExtensionIsIncluded(t *testing.T) {
	r := newRun(t)
	testutil.WriteProject(t, r.fs, projectDir, `module:
  uid_root: learn.demo
  title: Demo Module
  description: A demo module.
  units:
    - unit: Intro.MD
      title: Intro
      description: Uppercase extension.
`, map[string]string{"Intro.MD": testutil.DemoIntro})

	require.NoError(t, r.exec("build", "-i", projectDir, "-o", outputDir))

	unit := testutil.ReadFile(t, r.fs, filepath.Join(outputDir, "intro.yml"))
	assert.Contains(t, unit, "[!include[](includes/Intro.MD)]")
	assert.Equal(t, testutil.DemoIntro, testutil.ReadFile(t, r.fs, filepath.Join(outputDir, "includes", "Intro.MD")))
}

func TestBuild_RerunAfterScaffoldingMultiLineTitles(t *testing.T) {
	r := newRun(t)
	testutil.WriteProject(t, r.fs, projectDir, `module:
  uid_root: learn.demo
  title: Demo Module
  description: A demo module.
  units:
    - unit: Intro.md
      title: |
        Intro
        --> continued
      description: Narrative.
    - unit: Check.yml
      title: |
        Knowledge
        check
      description: >-
        Spans
        two lines.
`, nil)

	require.NoError(t, r.exec("build", "-i", projectDir, "-o", outputDir))
	require.NoError(t, r.exec("build", "-i", projectDir, "-o", outputDir, "--yes"))

	unit := testutil.ReadFile(t, r.fs, filepath.Join(outputDir, "check.yml"))
	assert.Contains(t, unit, "quiz:")
	assert.Contains(t, unit, "isCorrect: true")
}

func TestBuild_Errors(t *testing.T) {
	tests := []struct {
		name     string
		setup    func(t *testing.T, r *cliRun)
		args     []string
		wantCode int
		wantErr  error
	}{
		{
			name:     "missing project directory",
			setup:    func(t *testing.T, r *cliRun) {},
			args:     []string{"build", "-i", "/nowhere", "-o", outputDir},
			wantCode: oerrors.ExitNotFound,
			wantErr:  oerrors.ErrConfigurationNotFound,
		},
		{
			name: "missing module.yml",
			setup: func(t *testing.T, r *cliRun) {
				require.NoError(t, r.fs.MkdirAll(projectDir, 0o755))
			},
			args:     []string{"build", "-i", projectDir, "-o", outputDir},
			wantCode: oerrors.ExitNotFound,
			wantErr:  oerrors.ErrConfigurationNotFound,
		},
		{
			name: "missing content with fail policy",
			setup: func(t *testing.T, r *cliRun) {
				testutil.WriteProject(t, r.fs, projectDir, testutil.DemoModule, nil)
			},
			args:     []string{"build", "-i", projectDir, "-o", outputDir, "--missing-content", "fail"},
			wantCode: oerrors.ExitNotFound,
			wantErr:  oerrors.ErrMissingContent,
		},
		{
			name:     "unknown missing-content policy",
			setup:    func(t *testing.T, r *cliRun) { testutil.WriteDemoProject(t, r.fs, projectDir) },
			args:     []string{"build", "-i", projectDir, "-o", outputDir, "--missing-content", "skip"},
			wantCode: oerrors.ExitValidationError,
			wantErr:  oerrors.ErrValidation,
		},
		{
			name:     "output equals input",
			setup:    func(t *testing.T, r *cliRun) { testutil.WriteDemoProject(t, r.fs, projectDir) },
			args:     []string{"build", "-i", projectDir, "-o", projectDir},
			wantCode: oerrors.ExitValidationError,
			wantErr:  oerrors.ErrValidation,
		},
		{
			name:     "output contains input",
			setup:    func(t *testing.T, r *cliRun) { testutil.WriteDemoProject(t, r.fs, projectDir) },
			args:     []string{"build", "-i", projectDir, "-o", "/work"},
			wantCode: oerrors.ExitValidationError,
			wantErr:  oerrors.ErrValidation,
		},
		{
			name:     "format without dry-run",
			setup:    func(t *testing.T, r *cliRun) { testutil.WriteDemoProject(t, r.fs, projectDir) },
			args:     []string{"build", "-i", projectDir, "-o", outputDir, "--format", "json"},
			wantCode: oerrors.ExitValidationError,
			wantErr:  oerrors.ErrValidation,
		},
		{
			name: "missing unit title",
			setup: func(t *testing.T, r *cliRun) {
				testutil.WriteProject(t, r.fs, projectDir, `module:
  uid_root: learn.demo
  title: Demo
  description: Demo module
  units:
    - unit: Intro.md
      description: d
`, map[string]string{"Intro.md": "hello"})
			},
			args:     []string{"build", "-i", projectDir, "-o", outputDir},
			wantCode: oerrors.ExitValidationError,
			wantErr:  oerrors.ErrMissingAttribute,
		},
		{
			name: "unsupported unit extension",
			setup: func(t *testing.T, r *cliRun) {
				testutil.WriteProject(t, r.fs, projectDir, `module:
  uid_root: learn.demo
  title: Demo
  description: Demo module
  units:
    - unit: Slides.pptx
      title: Slides
      description: d
`, nil)
			},
			args:     []string{"build", "-i", projectDir, "-o", outputDir},
			wantCode: oerrors.ExitValidationError,
			wantErr:  oerrors.ErrContentResolution,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newRun(t)
			tt.setup(t, r)

			err := r.exec(tt.args...)
			requireExitCode(t, err, tt.wantCode)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestBuild_ExistingOutput(t *testing.T) {
	tests := []struct {
		name      string
		args      []string
		stdin     string
		tty       bool
		wantCode  int
		wantStale bool
	}{
		{name: "yes flag", args: []string{"--yes"}, wantCode: oerrors.ExitSuccess},
		{name: "confirmed at prompt", stdin: "y\n", tty: true, wantCode: oerrors.ExitSuccess},
		{name: "declined at prompt", stdin: "n\n", tty: true, wantCode: oerrors.ExitAborted, wantStale: true},
		{name: "empty answer", stdin: "\n", tty: true, wantCode: oerrors.ExitAborted, wantStale: true},
		{name: "non-interactive without yes", wantCode: oerrors.ExitValidationError, wantStale: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newRun(t)
			testutil.WriteDemoProject(t, r.fs, projectDir)
			testutil.WriteFile(t, r.fs, outputDir, "stale.yml", "old: true\n")
			r.stdin = tt.stdin
			r.tty = tt.tty

			args := append([]string{"build", "-i", projectDir, "-o", outputDir}, tt.args...)
			err := r.exec(args...)

			if tt.wantCode == oerrors.ExitSuccess {
				require.NoError(t, err)
			} else {
				requireExitCode(t, err, tt.wantCode)
			}

			ok, err := afero.Exists(r.fs, filepath.Join(outputDir, "stale.yml"))
			require.NoError(t, err)
			assert.Equal(t, tt.wantStale, ok)
			if tt.tty {
				assert.Contains(t, r.stderr.String(), "[y/N]")
			}
		})
	}
}

func TestBuild_DryRun(t *testing.T) {
	t.Run("yaml", func(t *testing.T) {
		r := newRun(t)
		testutil.WriteProject(t, r.fs, projectDir, testutil.DemoModule, map[string]string{
			"Knowledge check.yml": testutil.DemoQuiz,
		})

		require.NoError(t, r.exec("build", "-i", projectDir, "-o", outputDir, "--dry-run"))

		out := r.stdout.String()
		assert.Contains(t, out, "### YamlMime:ModuleUnit")
		assert.Contains(t, out, "### YamlMime:Module\n")
		assert.Contains(t, out, "---\n")

		// Nothing touches disk: no output directory and no scaffold.
		ok, err := afero.DirExists(r.fs, outputDir)
		require.NoError(t, err)
		assert.False(t, ok)
		ok, err = afero.Exists(r.fs, filepath.Join(projectDir, "source", "Introduction.md"))
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("json", func(t *testing.T) {
		r := newRun(t)
		testutil.WriteDemoProject(t, r.fs, projectDir)

		require.NoError(t, r.exec("build", "-i", projectDir, "--dry-run", "--format", "json"))

		var docs []struct {
			Name     string         `json:"name"`
			Document map[string]any `json:"document"`
		}
		require.NoError(t, json.Unmarshal(r.stdout.Bytes(), &docs))
		require.Len(t, docs, 3)
		assert.Equal(t, "introduction.yml", docs[0].Name)
		assert.Equal(t, "knowledge-check.yml", docs[1].Name)
		assert.Equal(t, "index.yml", docs[2].Name)
		assert.Equal(t, "learn.demo", docs[2].Document["uid"])
	})
}

func TestBuild_ConfigPrecedence(t *testing.T) {
	t.Run("env output", func(t *testing.T) {
		r := newRun(t)
		testutil.WriteDemoProject(t, r.fs, projectDir)
		t.Setenv("LEARNMOD_OUTPUT", "/env/out")

		require.NoError(t, r.exec("build", "-i", projectDir))
		ok, err := afero.Exists(r.fs, "/env/out/index.yml")
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("config file policy", func(t *testing.T) {
		r := newRun(t)
		testutil.WriteProject(t, r.fs, projectDir, testutil.DemoModule, nil)
		testutil.WriteFile(t, r.fs, "/cfg", "config.yaml", "missingContent: fail\noutput: /cfg/out\n")

		err := r.exec("--config", "/cfg/config.yaml", "build", "-i", projectDir)
		requireExitCode(t, err, oerrors.ExitNotFound)
		assert.ErrorIs(t, err, oerrors.ErrMissingContent)
	})

	t.Run("flag beats config file", func(t *testing.T) {
		r := newRun(t)
		testutil.WriteProject(t, r.fs, projectDir, testutil.DemoModule, nil)
		testutil.WriteFile(t, r.fs, "/cfg", "config.yaml", "missingContent: fail\noutput: /cfg/out\n")

		require.NoError(t, r.exec("--config", "/cfg/config.yaml", "build", "-i", projectDir, "--missing-content", "scaffold"))
		ok, err := afero.Exists(r.fs, "/cfg/out/index.yml")
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("invalid config file", func(t *testing.T) {
		r := newRun(t)
		testutil.WriteDemoProject(t, r.fs, projectDir)
		testutil.WriteFile(t, r.fs, "/cfg", "config.yaml", "missingContent: sometimes\n")

		err := r.exec("--config", "/cfg/config.yaml", "build", "-i", projectDir, "-o", outputDir)
		requireExitCode(t, err, oerrors.ExitValidationError)
	})
}
