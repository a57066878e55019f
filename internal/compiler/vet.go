package compiler

import (
	"fmt"

	"github.com/learnmod/cli/internal/module"
)

// Problem is an authoring issue found by Vet.
type Problem struct {
	// Index is the unit's position in the declaration.
	Index   int
	Unit    string
	UID     string
	Message string
}

// Vet checks a module for identifier collisions and unsupported unit
// extensions without touching any file. Problems are in declaration order.
func Vet(mod *module.Module) []Problem {
	var problems []Problem
	firstByUID := make(map[string]string, len(mod.Units))
	seenFile := make(map[string]bool, len(mod.Units))

	for i, u := range mod.Units {
		uid := DeriveUnitID(mod.UIDRoot, u.File)

		if _, err := Classify(u.File); err != nil {
			problems = append(problems, Problem{
				Index:   i,
				Unit:    u.File,
				UID:     uid,
				Message: "unsupported extension (want .md, .yml or .yaml)",
			})
		}

		if seenFile[u.File] {
			problems = append(problems, Problem{
				Index:   i,
				Unit:    u.File,
				UID:     uid,
				Message: "unit file declared more than once",
			})
		} else if first, ok := firstByUID[uid]; ok {
			problems = append(problems, Problem{
				Index:   i,
				Unit:    u.File,
				UID:     uid,
				Message: fmt.Sprintf("identifier collides with unit %q", first),
			})
		}

		seenFile[u.File] = true
		if _, ok := firstByUID[uid]; !ok {
			firstByUID[uid] = u.File
		}
	}

	return problems
}
