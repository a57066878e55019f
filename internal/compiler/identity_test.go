package compiler

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDeriveUnitID(t *testing.T) {
	tests := []struct {
		name    string
		uidRoot string
		file    string
		want    string
	}{
		{"spaces become hyphens", "learn.demo", "Intro Unit.md", "learn.demo.intro-unit"},
		{"assessment", "learn.demo", "Knowledge check.yml", "learn.demo.knowledge-check"},
		{"already normalized", "learn.demo", "my-unit.yml", "learn.demo.my-unit"},
		{"cut at first dot", "learn.demo", "v1.2 notes.md", "learn.demo.v1"},
		{"no extension", "learn.demo", "Summary", "learn.demo.summary"},
		{"unicode lower-casing", "learn.demo", "ÜBERSICHT Teil.md", "learn.demo.übersicht-teil"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DeriveUnitID(tt.uidRoot, tt.file))
		})
	}
}

func TestDeriveUnitID_Deterministic(t *testing.T) {
	a := DeriveUnitID("learn.demo", "Intro Unit.md")
	b := DeriveUnitID("learn.demo", "Intro Unit.md")
	assert.Equal(t, a, b)
}

func TestDeriveUnitID_CollisionIsNotDeduplicated(t *testing.T) {
	assert.Equal(t,
		DeriveUnitID("learn.demo", "My Unit.md"),
		DeriveUnitID("learn.demo", "my-unit.yml"))
}

func TestDeriveUnitID_TitleIndependent(t *testing.T) {
	mod := demoModule(narrativeUnit("Intro.md", "First title"))
	before := DeriveUnitID(mod.UIDRoot, mod.Units[0].File)

	mod.Units[0].Title = ptr("Second title")
	after := DeriveUnitID(mod.UIDRoot, mod.Units[0].File)

	assert.Equal(t, before, after)
}

func TestBadgeID(t *testing.T) {
	assert.Equal(t, "learn.demo.badge", BadgeID("learn.demo"))
}

func TestLocalPartAndOutputFileName(t *testing.T) {
	tests := []struct {
		uid       string
		wantLocal string
	}{
		{"learn.demo.intro-unit", "intro-unit"},
		{"intro", "intro"},
	}

	for _, tt := range tests {
		t.Run(tt.uid, func(t *testing.T) {
			assert.Equal(t, tt.wantLocal, LocalPart(tt.uid))
			assert.Equal(t, tt.wantLocal+".yml", OutputFileName(tt.uid))
		})
	}
}
