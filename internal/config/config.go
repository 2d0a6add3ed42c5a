// Package config loads scenario files: the grid shape, starting economy,
// and the initial placement of units, resources, and hostiles.
package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/talgya/hex-frontier/internal/resources"
	"github.com/talgya/hex-frontier/internal/units"
	"github.com/talgya/hex-frontier/internal/world"
)

// Scenario describes one playable level setup.
type Scenario struct {
	Name    string      `yaml:"name"`
	Grid    GridSpec    `yaml:"grid"`
	Start   StartSpec   `yaml:"start"`
	Units   []UnitSpec  `yaml:"units"`
	Nodes   []NodeSpec  `yaml:"resources"`
	Enemies []EnemySpec `yaml:"hostiles"`
	Scatter ScatterSpec `yaml:"scatter,omitempty"`
}

// GridSpec sets the board dimensions and base terrain.
type GridSpec struct {
	Width   int    `yaml:"width"`
	Height  int    `yaml:"height"`
	Terrain string `yaml:"terrain"`
}

// StartSpec sets the starting stockpile and upkeep.
type StartSpec struct {
	Food          int `yaml:"food"`
	Wood          int `yaml:"wood"`
	Gold          int `yaml:"gold"`
	UpkeepPerTurn int `yaml:"upkeep_per_turn"`
}

// UnitSpec places one player unit.
type UnitSpec struct {
	Name  string `yaml:"name"`
	Class string `yaml:"class"`
	Q     int    `yaml:"q"`
	R     int    `yaml:"r"`
}

// NodeSpec places one resource node. HP zero means the type default.
type NodeSpec struct {
	Type string `yaml:"type"`
	Q    int    `yaml:"q"`
	R    int    `yaml:"r"`
	HP   int    `yaml:"hp,omitempty"`
}

// EnemySpec places one hostile.
type EnemySpec struct {
	Name   string `yaml:"name"`
	Q      int    `yaml:"q"`
	R      int    `yaml:"r"`
	HP     int    `yaml:"hp"`
	Damage int    `yaml:"damage"`
	Range  int    `yaml:"range"`
}

// ScatterSpec enables noise-driven placement of extra nodes and hostiles
// on top of the explicit lists. Densities are per-tile probabilities.
type ScatterSpec struct {
	Enabled         bool    `yaml:"enabled"`
	Seed            int64   `yaml:"seed"`
	ResourceDensity float64 `yaml:"resource_density"`
	HostileDensity  float64 `yaml:"hostile_density"`
}

// Load reads a scenario file. An empty path returns the built-in default
// scenario.
func Load(path string) (Scenario, error) {
	sc := defaults()
	if strings.TrimSpace(path) == "" {
		return sc, nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return sc, err
	}
	if err := yaml.Unmarshal(b, &sc); err != nil {
		return sc, fmt.Errorf("scenario: %w", err)
	}
	sc.Normalize()
	if err := sc.Validate(); err != nil {
		return sc, fmt.Errorf("scenario: %w", err)
	}
	return sc, nil
}

// defaults is a small playable board for quick starts and tests.
func defaults() Scenario {
	return Scenario{
		Name: "frontier-default",
		Grid: GridSpec{Width: 8, Height: 8, Terrain: "grass"},
		Start: StartSpec{
			Food:          40,
			Wood:          0,
			Gold:          0,
			UpkeepPerTurn: 2,
		},
		Units: []UnitSpec{
			{Name: "scout", Class: "hunter", Q: 0, R: 0},
			{Name: "logger", Class: "chopper", Q: 1, R: 0},
			{Name: "digger", Class: "miner", Q: 0, R: 1},
		},
		Nodes: []NodeSpec{
			{Type: "tree", Q: 3, R: 1},
			{Type: "tree", Q: 4, R: 2},
			{Type: "rock", Q: 2, R: 4},
			{Type: "sheep", Q: 5, R: 3},
			{Type: "gold_deposit", Q: 6, R: 5},
		},
		Enemies: []EnemySpec{
			{Name: "boar", Q: 6, R: 1, HP: 30, Damage: 3, Range: 1},
		},
	}
}

// Normalize fills in the gaps a hand-written file may leave.
func (s *Scenario) Normalize() {
	if s == nil {
		return
	}
	if strings.TrimSpace(s.Name) == "" {
		s.Name = "unnamed"
	}
	if strings.TrimSpace(s.Grid.Terrain) == "" {
		s.Grid.Terrain = "grass"
	}
	if s.Start.UpkeepPerTurn < 1 {
		s.Start.UpkeepPerTurn = 1
	}
	for i := range s.Enemies {
		if s.Enemies[i].Range < 1 {
			s.Enemies[i].Range = 1
		}
		if strings.TrimSpace(s.Enemies[i].Name) == "" {
			s.Enemies[i].Name = fmt.Sprintf("hostile-%d", i+1)
		}
	}
}

// Validate checks the scenario against the board rules: dimensions within
// the grid cap, known terrain/class/type names, in-bounds coordinates, and
// one entity per tile.
func (s Scenario) Validate() error {
	if s.Grid.Width < 1 || s.Grid.Width > world.MaxGridSize {
		return fmt.Errorf("grid width %d out of range [1, %d]", s.Grid.Width, world.MaxGridSize)
	}
	if s.Grid.Height < 1 || s.Grid.Height > world.MaxGridSize {
		return fmt.Errorf("grid height %d out of range [1, %d]", s.Grid.Height, world.MaxGridSize)
	}
	if _, ok := world.TerrainByName(s.Grid.Terrain); !ok {
		return fmt.Errorf("unknown terrain %q", s.Grid.Terrain)
	}

	inBounds := func(q, r int) bool {
		return q >= 0 && q < s.Grid.Width && r >= 0 && r < s.Grid.Height
	}
	taken := map[world.HexCoord]string{}
	claim := func(q, r int, what string) error {
		coord := world.HexCoord{Q: q, R: r}
		if prev, dup := taken[coord]; dup {
			return fmt.Errorf("%s at (%d,%d) collides with %s", what, q, r, prev)
		}
		taken[coord] = what
		return nil
	}

	for i, u := range s.Units {
		if strings.TrimSpace(u.Name) == "" {
			return fmt.Errorf("units[%d] missing name", i)
		}
		if _, ok := units.ClassByName(u.Class); !ok {
			return fmt.Errorf("units[%d] unknown class %q", i, u.Class)
		}
		if !inBounds(u.Q, u.R) {
			return fmt.Errorf("units[%d] (%d,%d) out of bounds", i, u.Q, u.R)
		}
		if err := claim(u.Q, u.R, "unit "+u.Name); err != nil {
			return err
		}
	}
	for i, n := range s.Nodes {
		if _, ok := resources.TypeByName(n.Type); !ok {
			return fmt.Errorf("resources[%d] unknown type %q", i, n.Type)
		}
		if !inBounds(n.Q, n.R) {
			return fmt.Errorf("resources[%d] (%d,%d) out of bounds", i, n.Q, n.R)
		}
		if n.HP < 0 {
			return fmt.Errorf("resources[%d] hp must be >= 0", i)
		}
		if err := claim(n.Q, n.R, "resource "+n.Type); err != nil {
			return err
		}
	}
	for i, e := range s.Enemies {
		if !inBounds(e.Q, e.R) {
			return fmt.Errorf("hostiles[%d] (%d,%d) out of bounds", i, e.Q, e.R)
		}
		if e.HP < 1 {
			return fmt.Errorf("hostiles[%d] hp must be >= 1", i)
		}
		if e.Damage < 0 {
			return fmt.Errorf("hostiles[%d] damage must be >= 0", i)
		}
		if err := claim(e.Q, e.R, "hostile "+e.Name); err != nil {
			return err
		}
	}

	if s.Scatter.Enabled {
		if s.Scatter.ResourceDensity < 0 || s.Scatter.ResourceDensity > 1 {
			return fmt.Errorf("scatter resource_density must be in [0, 1]")
		}
		if s.Scatter.HostileDensity < 0 || s.Scatter.HostileDensity > 1 {
			return fmt.Errorf("scatter hostile_density must be in [0, 1]")
		}
	}
	return nil
}
