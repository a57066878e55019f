package module

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"strconv"
	"strings"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	cueerrors "cuelang.org/go/cue/errors"
	cueyaml "cuelang.org/go/encoding/yaml"
	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"

	oerrors "github.com/learnmod/cli/internal/errors"
	"github.com/learnmod/cli/internal/output"
)

//go:embed schema/module.cue
var moduleSchemaCUE []byte

// Loader reads module.yml files and applies the presence schema.
type Loader struct {
	fs     afero.Fs
	ctx    *cue.Context
	schema cue.Value
}

// NewLoader creates a Loader reading from fs.
func NewLoader(fs afero.Fs) (*Loader, error) {
	ctx := cuecontext.New()

	schema := ctx.CompileBytes(moduleSchemaCUE, cue.Filename("module.cue"))
	if schema.Err() != nil {
		return nil, fmt.Errorf("compiling module schema: %w", schema.Err())
	}

	return &Loader{fs: fs, ctx: ctx, schema: schema}, nil
}

// Load reads and decodes the module definition at path.
func (l *Loader) Load(path string) (*Module, error) {
	data, err := afero.ReadFile(l.fs, path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, oerrors.NewConfigurationNotFoundError(
				"module definition file not found",
				path,
				"Run 'learnmod init <name>' to create a project, or pass --input.",
			)
		}
		return nil, fmt.Errorf("reading module definition: %w", err)
	}

	var def Definition
	if err := yaml.Unmarshal(data, &def); err != nil {
		return nil, oerrors.NewValidationError(
			fmt.Sprintf("module definition is not valid YAML: %v", err),
			path, "", "")
	}

	if err := l.checkPresence(path, data, &def.Module); err != nil {
		return nil, err
	}

	output.Debug("loaded module definition",
		"path", path,
		"uid_root", def.Module.UIDRoot,
		"units", len(def.Module.Units),
	)

	return &def.Module, nil
}

// checkPresence unifies the document with the embedded schema and reports the
// first incomplete (absent) required field as a missing attribute.
func (l *Loader) checkPresence(path string, data []byte, mod *Module) error {
	file, err := cueyaml.Extract(path, data)
	if err != nil {
		return oerrors.NewValidationError(
			fmt.Sprintf("module definition cannot be read: %v", err),
			path, "", "")
	}

	value := l.ctx.BuildFile(file)
	if value.Err() != nil {
		return fmt.Errorf("building module value: %w", value.Err())
	}

	unified := l.schema.Unify(value)
	verr := unified.Validate(cue.Concrete(true))
	if verr == nil {
		return nil
	}

	errs := cueerrors.Errors(verr)
	if len(errs) == 0 {
		return fmt.Errorf("checking module definition: %w", verr)
	}

	first := errs[0]
	field, unit := describePath(first.Path(), mod)
	msg, args := first.Msg()
	if field == "" || !strings.Contains(fmt.Sprintf(msg, args...), "incomplete") {
		return oerrors.NewValidationError(
			cueerrors.Details(verr, nil),
			path, strings.Join(first.Path(), "."),
			"Check the value types in module.yml.")
	}

	return oerrors.NewMissingAttributeError(field, unit, path)
}

// describePath maps a CUE error path such as [module units 1 title] to the
// attribute name and the declaring unit's filename.
func describePath(path []string, mod *Module) (field, unit string) {
	if len(path) == 0 {
		return "", ""
	}
	field = path[len(path)-1]

	for i := 0; i+1 < len(path); i++ {
		if path[i] != "units" {
			continue
		}
		idx, err := strconv.Atoi(path[i+1])
		if err != nil || idx < 0 || idx >= len(mod.Units) {
			continue
		}
		unit = mod.Units[idx].File
		if unit == "" {
			unit = "#" + path[i+1]
		}
	}

	return field, unit
}
