package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadEmptyPathUsesDefaults(t *testing.T) {
	sc, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if sc.Name != "frontier-default" {
		t.Fatalf("name = %q", sc.Name)
	}
	if err := sc.Validate(); err != nil {
		t.Fatalf("default scenario must validate: %v", err)
	}
}

func TestLoadScenarioFile(t *testing.T) {
	doc := `
name: tiny
grid:
  width: 5
  height: 5
  terrain: grass
start:
  food: 30
  upkeep_per_turn: 1
units:
  - name: woody
    class: chopper
    q: 0
    r: 0
resources:
  - type: tree
    q: 1
    r: 0
hostiles:
  - name: wolf
    q: 3
    r: 3
    hp: 25
    damage: 4
`
	path := filepath.Join(t.TempDir(), "tiny.yaml")
	if err := os.WriteFile(path, []byte(doc), 0644); err != nil {
		t.Fatal(err)
	}

	sc, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if sc.Name != "tiny" || sc.Grid.Width != 5 {
		t.Fatalf("scenario = %+v", sc)
	}
	if len(sc.Units) != 1 || sc.Units[0].Class != "chopper" {
		t.Fatalf("units = %+v", sc.Units)
	}
	// Omitted range defaults to 1.
	if sc.Enemies[0].Range != 1 {
		t.Fatalf("hostile range = %d, want 1", sc.Enemies[0].Range)
	}
}

func TestValidateRejections(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Scenario)
	}{
		{"oversized grid", func(s *Scenario) { s.Grid.Width = 25 }},
		{"unknown terrain", func(s *Scenario) { s.Grid.Terrain = "lava" }},
		{"unknown class", func(s *Scenario) { s.Units[0].Class = "wizard" }},
		{"unknown resource type", func(s *Scenario) { s.Nodes[0].Type = "oil" }},
		{"unit out of bounds", func(s *Scenario) { s.Units[0].Q = 99 }},
		{"coordinate collision", func(s *Scenario) {
			s.Nodes[0].Q = s.Units[0].Q
			s.Nodes[0].R = s.Units[0].R
		}},
		{"zero hp hostile", func(s *Scenario) { s.Enemies[0].HP = 0 }},
		{"bad scatter density", func(s *Scenario) {
			s.Scatter.Enabled = true
			s.Scatter.ResourceDensity = 1.5
		}},
	}
	for _, tc := range cases {
		sc := defaults()
		tc.mutate(&sc)
		if err := sc.Validate(); err == nil {
			t.Fatalf("%s: expected a validation error", tc.name)
		}
	}
}

func TestLoadBadYAMLFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.yaml")
	if err := os.WriteFile(path, []byte("grid: [not a map"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("expected a parse error")
	}
}
