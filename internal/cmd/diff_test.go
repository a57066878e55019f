package cmd

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/learnmod/cli/internal/testutil"
)

func TestDiff_NoOutputYet(t *testing.T) {
	r := newRun(t)
	testutil.WriteDemoProject(t, r.fs, projectDir)

	require.NoError(t, r.exec("diff", "-i", projectDir, "-o", outputDir))

	out := r.stdout.String()
	assert.Contains(t, out, "Added:")
	assert.Contains(t, out, "index.yml")
	assert.Contains(t, out, "3 added")
}

func TestDiff_AfterBuild(t *testing.T) {
	r := newRun(t)
	testutil.WriteDemoProject(t, r.fs, projectDir)
	require.NoError(t, r.exec("build", "-i", projectDir, "-o", outputDir))

	require.NoError(t, r.exec("diff", "-i", projectDir, "-o", outputDir))
	assert.Contains(t, r.stdout.String(), "No changes")

	// Change the summary and publish a stray document.
	testutil.WriteFile(t, r.fs, projectDir, "module.yml",
		strings.Replace(testutil.DemoModule, "summary: Learn the demo.", "summary: Learn it all.", 1))
	testutil.WriteFile(t, r.fs, outputDir, "old-unit.yml", "uid: learn.demo.old-unit\n")

	require.NoError(t, r.exec("diff", "-i", projectDir, "-o", outputDir))
	out := r.stdout.String()
	assert.Contains(t, out, "Modified:")
	assert.Contains(t, out, "index.yml")
	assert.Contains(t, out, "Removed:")
	assert.Contains(t, out, "old-unit.yml")
	assert.Contains(t, out, "1 removed, 1 modified")
}

func TestDiff_DoesNotScaffold(t *testing.T) {
	r := newRun(t)
	testutil.WriteProject(t, r.fs, projectDir, testutil.DemoModule, nil)

	require.NoError(t, r.exec("diff", "-i", projectDir, "-o", outputDir))

	ok, err := afero.Exists(r.fs, filepath.Join(projectDir, "source", "Introduction.md"))
	require.NoError(t, err)
	assert.False(t, ok)
}
