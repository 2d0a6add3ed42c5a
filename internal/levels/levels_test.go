package levels

import (
	"testing"

	"github.com/talgya/hex-frontier/internal/config"
	"github.com/talgya/hex-frontier/internal/economy"
	"github.com/talgya/hex-frontier/internal/engine"
	"github.com/talgya/hex-frontier/internal/world"
)

func smallScenario() config.Scenario {
	return config.Scenario{
		Name:  "small",
		Grid:  config.GridSpec{Width: 6, Height: 6, Terrain: "grass"},
		Start: config.StartSpec{Food: 30, UpkeepPerTurn: 1},
		Units: []config.UnitSpec{
			{Name: "woody", Class: "chopper", Q: 0, R: 0},
		},
		Nodes: []config.NodeSpec{
			{Type: "tree", Q: 1, R: 0},
			{Type: "rock", Q: 3, R: 3, HP: 12},
		},
		Enemies: []config.EnemySpec{
			{Name: "boar", Q: 5, R: 5, HP: 20, Damage: 2, Range: 1},
		},
	}
}

func TestBuildPlacesEverything(t *testing.T) {
	g, err := Build(smallScenario())
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if g.Grid.Width() != 6 || g.Grid.Height() != 6 {
		t.Fatalf("grid = %s", g.Grid)
	}
	if g.Units.Count() != 1 || g.Resources.Count() != 2 || g.Hostiles.Count() != 1 {
		t.Fatalf("rosters: units=%d resources=%d hostiles=%d",
			g.Units.Count(), g.Resources.Count(), g.Hostiles.Count())
	}
	if g.Ledger.Food() != 30 {
		t.Fatalf("food = %d", g.Ledger.Food())
	}

	rock, ok := g.Resources.Get(world.HexCoord{Q: 3, R: 3})
	if !ok || rock.HP != 12 {
		t.Fatalf("rock HP override lost: %+v", rock)
	}
	if !g.Grid.IsOccupied(world.HexCoord{Q: 0, R: 0}) {
		t.Fatal("unit tile should be occupied")
	}
	if g.Turns.Phase() != engine.PhasePlanning {
		t.Fatalf("fresh game phase = %s", g.Turns.Phase())
	}
}

func TestBuildRejectsCollidingPlacement(t *testing.T) {
	sc := smallScenario()
	sc.Enemies = append(sc.Enemies, config.EnemySpec{Name: "twin", Q: 5, R: 5, HP: 10, Damage: 1, Range: 1})
	if _, err := Build(sc); err == nil {
		t.Fatal("expected a placement error for the doubled tile")
	}
}

func TestScatterIsDeterministic(t *testing.T) {
	sc := smallScenario()
	sc.Scatter = config.ScatterSpec{
		Enabled:         true,
		Seed:            7,
		ResourceDensity: 0.3,
		HostileDensity:  0.1,
	}

	a, err := Build(sc)
	if err != nil {
		t.Fatalf("Build a: %v", err)
	}
	b, err := Build(sc)
	if err != nil {
		t.Fatalf("Build b: %v", err)
	}

	if a.Resources.Count() != b.Resources.Count() {
		t.Fatalf("resource counts differ: %d vs %d", a.Resources.Count(), b.Resources.Count())
	}
	if a.Hostiles.Count() != b.Hostiles.Count() {
		t.Fatalf("hostile counts differ: %d vs %d", a.Hostiles.Count(), b.Hostiles.Count())
	}
	for _, n := range a.Resources.All() {
		m, ok := b.Resources.Get(n.Coord)
		if !ok || m.Type != n.Type {
			t.Fatalf("node at (%d,%d) differs between identical builds", n.Coord.Q, n.Coord.R)
		}
	}
	// Explicit placements survive the scatter pass untouched.
	if _, ok := a.Resources.Get(world.HexCoord{Q: 1, R: 0}); !ok {
		t.Fatal("explicit tree lost to scatter")
	}
}

func TestScatterDisabledAddsNothing(t *testing.T) {
	g, err := Build(smallScenario())
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if g.Resources.Count() != 2 || g.Hostiles.Count() != 1 {
		t.Fatal("scatter-disabled build should only hold explicit placements")
	}
}

func TestNextLevelCarriesStockpile(t *testing.T) {
	sc := smallScenario()
	g, err := Build(sc)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	g.Ledger.Add(economy.Amount{Wood: 55, Gold: 9})

	next, err := NextLevel(g, sc)
	if err != nil {
		t.Fatalf("NextLevel: %v", err)
	}
	if next.Ledger.Level() != 2 {
		t.Fatalf("level = %d, want 2", next.Ledger.Level())
	}
	if next.Ledger.Wood() != 55 || next.Ledger.Gold() != 9 {
		t.Fatal("stockpile must carry over across levels")
	}
	if next.Resources.Count() != 2 || next.Hostiles.Count() != 1 {
		t.Fatal("next level should rebuild the scenario placements")
	}
	if next.Turns.Phase() != engine.PhasePlanning {
		t.Fatalf("next level phase = %s", next.Turns.Phase())
	}
}

func TestRestartAfterDefeatAppliesPenalty(t *testing.T) {
	sc := smallScenario()
	g, err := Build(sc)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	g.Ledger.Add(economy.Amount{Food: 70, Wood: 40, Gold: 20}) // food now 100

	next, err := RestartAfterDefeat(g, sc)
	if err != nil {
		t.Fatalf("RestartAfterDefeat: %v", err)
	}
	if next.Ledger.Food() != 25 || next.Ledger.Wood() != 10 || next.Ledger.Gold() != 5 {
		t.Fatalf("penalized stockpile = %+v, want 25/10/5", next.Ledger.Stockpile())
	}
}

func TestRestartAfterDefeatGuaranteesOneUpkeep(t *testing.T) {
	sc := smallScenario()
	sc.Start.UpkeepPerTurn = 3
	g, err := Build(sc)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	g.Ledger.SetFood(0) // starved out

	next, err := RestartAfterDefeat(g, sc)
	if err != nil {
		t.Fatalf("RestartAfterDefeat: %v", err)
	}
	if next.Ledger.Food() != 3 {
		t.Fatalf("food = %d, want the one-turn floor of 3", next.Ledger.Food())
	}
}
