package autoplay

import (
	"testing"

	"github.com/talgya/hex-frontier/internal/economy"
	"github.com/talgya/hex-frontier/internal/engine"
	"github.com/talgya/hex-frontier/internal/resources"
	"github.com/talgya/hex-frontier/internal/units"
	"github.com/talgya/hex-frontier/internal/world"
)

func newGame(t *testing.T, food int) *engine.Game {
	t.Helper()
	grid := world.NewGrid()
	grid.Initialize(8, 8, world.TerrainGrass)
	return engine.NewGame(grid, economy.NewLedger(economy.Amount{Food: food}, 1))
}

func TestPlannerAssignsAdjacentResource(t *testing.T) {
	g := newGame(t, 50)
	chopper := units.NewUnit("woody", units.ClassChopper, world.HexCoord{Q: 0, R: 0})
	g.PlaceUnit(chopper)
	g.PlaceResource(world.HexCoord{Q: 1, R: 0}, resources.TypeTree, 0)

	p := New(g)
	p.Step()
	// One tree, one capable unit: the planner should clear the level in a
	// single turn.
	if g.Turns.Phase() != engine.PhaseVictory {
		t.Fatalf("phase = %s, want victory", g.Turns.Phase())
	}
	if g.Ledger.Wood() != 100 {
		t.Fatalf("wood = %d, want 100", g.Ledger.Wood())
	}
}

func TestPlannerWalksTowardDistantTarget(t *testing.T) {
	g := newGame(t, 200)
	chopper := units.NewUnit("woody", units.ClassChopper, world.HexCoord{Q: 0, R: 0})
	g.PlaceUnit(chopper)
	g.PlaceResource(world.HexCoord{Q: 6, R: 0}, resources.TypeTree, 0)

	p := New(g)
	start := world.Distance(chopper.Coord, world.HexCoord{Q: 6, R: 0})
	p.Step()
	now := world.Distance(chopper.Coord, world.HexCoord{Q: 6, R: 0})
	if now >= start {
		t.Fatalf("distance did not shrink: %d -> %d", start, now)
	}

	// Enough cycles to arrive and fell the tree.
	p.Run(10)
	if g.Turns.Phase() != engine.PhaseVictory {
		t.Fatalf("phase = %s, want victory after walking in", g.Turns.Phase())
	}
}

func TestPlannerFightersPreferHostiles(t *testing.T) {
	g := newGame(t, 200)
	hunter := units.NewUnit("artemis", units.ClassHunter, world.HexCoord{Q: 0, R: 0})
	g.PlaceUnit(hunter)
	g.PlaceResource(world.HexCoord{Q: 1, R: 0}, resources.TypeSheep, 0)
	boar := units.NewHostile("boar", world.HexCoord{Q: 0, R: 1}, 20, 1, 1)
	g.PlaceHostile(boar)

	p := New(g)
	p.Step()
	if boar.Alive() {
		t.Fatalf("fighter should have engaged the hostile first, boar HP %d", boar.HP)
	}
}

func TestPlannerSkipsUnharvestableNodes(t *testing.T) {
	g := newGame(t, 200)
	// A hunter cannot chop; the lone tree gives it nothing to do.
	hunter := units.NewUnit("artemis", units.ClassHunter, world.HexCoord{Q: 0, R: 0})
	g.PlaceUnit(hunter)
	g.PlaceResource(world.HexCoord{Q: 1, R: 0}, resources.TypeTree, 0)

	p := New(g)
	p.Step()
	if g.Ledger.Wood() != 0 {
		t.Fatal("hunter must not harvest a tree")
	}
	node, ok := g.Resources.Get(world.HexCoord{Q: 1, R: 0})
	if !ok || node.ActionsRemaining != resources.ActionBudget {
		t.Fatal("tree should be untouched")
	}
}

func TestRunStopsAtTerminalPhase(t *testing.T) {
	g := newGame(t, 50)
	chopper := units.NewUnit("woody", units.ClassChopper, world.HexCoord{Q: 0, R: 0})
	g.PlaceUnit(chopper)
	g.PlaceResource(world.HexCoord{Q: 1, R: 0}, resources.TypeTree, 0)

	p := New(g)
	played := p.Run(25)
	if played != 1 {
		t.Fatalf("played = %d, want 1", played)
	}
	if p.Step() {
		t.Fatal("stepping a finished game should report false")
	}
}

func TestRunRespectsTurnCap(t *testing.T) {
	g := newGame(t, 1000)
	// No units: nothing ever depletes, but there is a rock so victory never
	// triggers. The cap is the only exit.
	g.PlaceResource(world.HexCoord{Q: 3, R: 3}, resources.TypeRock, 0)

	p := New(g)
	played := p.Run(4)
	if played != 4 {
		t.Fatalf("played = %d, want the cap of 4", played)
	}
	if g.Turns.Phase() != engine.PhasePlanning {
		t.Fatalf("phase = %s, want planning at the cap", g.Turns.Phase())
	}
}
