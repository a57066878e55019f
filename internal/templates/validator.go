package templates

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// uidRootRegex matches dotted identifier namespaces such as "learn.my-module".
var uidRootRegex = regexp.MustCompile(`^[a-z0-9][a-z0-9-]*(\.[a-z0-9][a-z0-9-]*)*$`)

// ValidateProjectName checks that a directory name can seed a project.
func ValidateProjectName(name string) error {
	if name == "" || name == "." || name == "/" {
		return fmt.Errorf("project name cannot be empty")
	}

	for _, r := range name {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '-' && r != '_' {
			return fmt.Errorf("invalid project name %q: contains invalid character %q", name, r)
		}
	}

	if !unicode.IsLetter([]rune(name)[0]) {
		return fmt.Errorf("invalid project name %q: must start with a letter", name)
	}

	return nil
}

// ValidateUIDRoot checks an identifier namespace.
func ValidateUIDRoot(uid string) error {
	if !uidRootRegex.MatchString(uid) {
		return fmt.Errorf("invalid uid_root %q: use lower-case dot-separated segments of letters, digits and hyphens", uid)
	}
	return nil
}

// DeriveUIDRoot derives an identifier namespace from a directory name.
// Format: learn.<dirname> lower-cased with underscores converted to hyphens.
func DeriveUIDRoot(dirname string) string {
	lower := cases.Lower(language.Und).String(dirname)
	return "learn." + strings.ReplaceAll(lower, "_", "-")
}

// DeriveTitle turns a directory name into a module title ("my-first_module" -> "My First Module").
func DeriveTitle(dirname string) string {
	words := strings.FieldsFunc(dirname, func(r rune) bool {
		return r == '-' || r == '_'
	})
	return cases.Title(language.English).String(strings.Join(words, " "))
}
