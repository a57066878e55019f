package compiler

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	oerrors "github.com/learnmod/cli/internal/errors"
	"github.com/learnmod/cli/internal/module"
)

func TestResolve(t *testing.T) {
	tests := []struct {
		name   string
		module *string
		unit   *string
		want   string
		wantOK bool
	}{
		{"unit overrides module", ptr("module-author"), ptr("unit-author"), "unit-author", true},
		{"falls back to module", ptr("module-author"), nil, "module-author", true},
		{"unit only", nil, ptr("unit-author"), "unit-author", true},
		{"declared empty on unit wins", ptr("module-author"), ptr(""), "", true},
		{"absent at both levels", nil, nil, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mod := &module.Module{UIDRoot: "learn.demo", Author: tt.module}
			unit := &module.Unit{File: "a.md", Author: tt.unit}

			got, ok := Resolve(mod, unit, module.KeyAuthor)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantOK, ok)
		})
	}
}

func TestResolve_EveryInheritableKey(t *testing.T) {
	mod := demoModule()
	unit := &module.Unit{File: "a.md"}

	for _, key := range module.InheritableKeys {
		modValue, _ := mod.Attr(key)
		got, ok := Resolve(mod, unit, key)
		require.True(t, ok, key)
		assert.Equal(t, modValue, got, key)
	}
}

func TestResolve_ModuleOnlyKeysIgnoreUnit(t *testing.T) {
	mod := &module.Module{Summary: ptr("module summary")}
	unit := &module.Unit{File: "a.md"}

	got, ok := Resolve(mod, unit, module.KeySummary)
	require.True(t, ok)
	assert.Equal(t, "module summary", got)
}

func TestRequire_Missing(t *testing.T) {
	mod := &module.Module{UIDRoot: "learn.demo"}
	unit := &module.Unit{File: "Intro.md"}

	_, err := Require(mod, unit, module.KeyDate)
	require.Error(t, err)
	assert.True(t, errors.Is(err, oerrors.ErrMissingAttribute))
	assert.Contains(t, err.Error(), `"date"`)
	assert.Contains(t, err.Error(), "Intro.md")
}

func TestRequireOwn_NoModuleFallback(t *testing.T) {
	unit := &module.Unit{File: "Intro.md"}

	_, err := RequireOwn(unit, module.KeyTitle)
	require.Error(t, err)
	assert.True(t, errors.Is(err, oerrors.ErrMissingAttribute))

	unit.Title = ptr("Intro")
	got, err := RequireOwn(unit, module.KeyTitle)
	require.NoError(t, err)
	assert.Equal(t, "Intro", got)
}
