// Package assets publishes static media, resources and narrative includes
// from a project into its output directory.
package assets

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"

	"github.com/spf13/afero"
	"golang.org/x/sync/errgroup"

	"github.com/learnmod/cli/internal/compiler"
	"github.com/learnmod/cli/internal/module"
	"github.com/learnmod/cli/internal/output"
)

// maxConcurrentTrees bounds the number of trees copied at once.
const maxConcurrentTrees = 3

// Copier copies media/, resources/ and source/*.md into the output directory.
type Copier struct {
	src    afero.Fs
	dst    afero.Fs
	layout module.Layout
}

// NewCopier creates a Copier reading from src and writing to dst.
func NewCopier(src, dst afero.Fs, layout module.Layout) *Copier {
	return &Copier{src: src, dst: dst, layout: layout}
}

// Copy copies the asset trees concurrently. Markdown files named in skip are
// not copied to includes/. Missing media/ or resources/ directories are skipped.
// Every tree runs to completion; failures are reported in tree order.
func (c *Copier) Copy(ctx context.Context, skip []string) error {
	var g errgroup.Group
	g.SetLimit(maxConcurrentTrees)

	errs := make([]error, 3)
	for i, dir := range []string{module.MediaDir, module.ResourcesDir} {
		g.Go(func() error {
			errs[i] = c.copyTree(ctx, dir)
			return nil
		})
	}
	g.Go(func() error {
		errs[2] = c.copyIncludes(ctx, skip)
		return nil
	})

	_ = g.Wait()
	return errors.Join(errs...)
}

// copyTree copies <input>/<dir> to <output>/<dir> verbatim.
func (c *Copier) copyTree(ctx context.Context, dir string) error {
	srcRoot := filepath.Join(c.layout.InputDir, dir)
	dstRoot := filepath.Join(c.layout.OutputDir, dir)

	isDir, err := afero.IsDir(c.src, srcRoot)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("checking %s: %w", srcRoot, err)
	}
	if !isDir {
		output.Warn("asset directory not found, skipping", "dir", srcRoot)
		return nil
	}

	count := 0
	err = afero.Walk(c.src, srcRoot, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if err := ctx.Err(); err != nil {
			return err
		}

		rel, err := filepath.Rel(srcRoot, path)
		if err != nil {
			return err
		}
		target := filepath.Join(dstRoot, rel)

		if info.IsDir() {
			return c.dst.MkdirAll(target, 0o755)
		}
		count++
		return c.copyFile(path, target, info.Mode().Perm())
	})
	if err != nil {
		return fmt.Errorf("copying %s: %w", dir, err)
	}

	output.Debug("copied asset tree", "dir", dir, "files", count)
	return nil
}

// copyIncludes copies every narrative in source/ to <output>/includes/. The
// extension is matched with compiler.Classify, so Intro.MD is included.
func (c *Copier) copyIncludes(ctx context.Context, skip []string) error {
	srcRoot := c.layout.SourceRoot()
	dstRoot := filepath.Join(c.layout.OutputDir, module.IncludesDir)

	if err := c.dst.MkdirAll(dstRoot, 0o755); err != nil {
		return fmt.Errorf("creating includes directory: %w", err)
	}

	entries, err := afero.ReadDir(c.src, srcRoot)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			output.Warn("source directory not found, no includes copied", "dir", srcRoot)
			return nil
		}
		return fmt.Errorf("reading %s: %w", srcRoot, err)
	}

	count := 0
	for _, entry := range entries {
		if err := ctx.Err(); err != nil {
			return err
		}
		name := entry.Name()
		if entry.IsDir() || !isNarrative(name) || slices.Contains(skip, name) {
			continue
		}
		if err := c.copyFile(filepath.Join(srcRoot, name), filepath.Join(dstRoot, name), entry.Mode().Perm()); err != nil {
			return fmt.Errorf("copying include %s: %w", name, err)
		}
		count++
	}

	output.Debug("copied includes", "files", count, "skipped", len(skip))
	return nil
}

func (c *Copier) copyFile(src, dst string, perm os.FileMode) error {
	data, err := afero.ReadFile(c.src, src)
	if err != nil {
		return err
	}
	if err := c.dst.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return err
	}
	if perm == 0 {
		perm = 0o644
	}
	return afero.WriteFile(c.dst, dst, data, perm)
}

func isNarrative(name string) bool {
	kind, err := compiler.Classify(name)
	return err == nil && kind == compiler.KindNarrative
}
