package compiler

import (
	oerrors "github.com/learnmod/cli/internal/errors"
	"github.com/learnmod/cli/internal/module"
)

// Resolve returns the unit's own value for key when declared, otherwise the
// module's. The bool is false when neither level declares it.
func Resolve(mod *module.Module, unit *module.Unit, key module.Key) (string, bool) {
	if unit != nil {
		if v, ok := unit.Attr(key); ok {
			return v, true
		}
	}
	return mod.Attr(key)
}

// Require is Resolve for keys the caller cannot do without.
func Require(mod *module.Module, unit *module.Unit, key module.Key) (string, error) {
	v, ok := Resolve(mod, unit, key)
	if !ok {
		return "", missing(unit, key)
	}
	return v, nil
}

// RequireOwn reads a key that must be declared on the unit itself (title, description).
func RequireOwn(unit *module.Unit, key module.Key) (string, error) {
	v, ok := unit.Attr(key)
	if !ok {
		return "", missing(unit, key)
	}
	return v, nil
}

func missing(unit *module.Unit, key module.Key) error {
	name := ""
	if unit != nil {
		name = unit.File
	}
	return oerrors.NewMissingAttributeError(string(key), name, module.ModuleFileName)
}
