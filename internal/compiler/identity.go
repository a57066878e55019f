package compiler

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// badgeSuffix is appended to uid_root to form the badge identifier.
const badgeSuffix = ".badge"

// DeriveUnitID builds a unit identifier from the module namespace and the
// unit's filename: text from the first "." is dropped, the rest lower-cased
// with spaces replaced by hyphens.
//
//	DeriveUnitID("learn.demo", "Intro Unit.md") == "learn.demo.intro-unit"
func DeriveUnitID(uidRoot, file string) string {
	return uidRoot + "." + NormalizeName(file)
}

// NormalizeName is the identifier-local form of a unit filename.
func NormalizeName(file string) string {
	name, _, _ := strings.Cut(file, ".")
	name = cases.Lower(language.Und).String(name)
	return strings.ReplaceAll(name, " ", "-")
}

// BadgeID returns the badge identifier of a module.
func BadgeID(uidRoot string) string {
	return uidRoot + badgeSuffix
}

// LocalPart returns the identifier suffix after the last ".".
func LocalPart(uid string) string {
	if i := strings.LastIndex(uid, "."); i >= 0 {
		return uid[i+1:]
	}
	return uid
}

// OutputFileName is the name of a unit's document in the output directory.
func OutputFileName(uid string) string {
	return LocalPart(uid) + ".yml"
}
