// Package levels builds playable games from scenario definitions and
// drives the level lifecycle across victories and defeats.
package levels

import (
	"fmt"
	"log/slog"
	"math"

	opensimplex "github.com/ojrac/opensimplex-go"

	"github.com/talgya/hex-frontier/internal/config"
	"github.com/talgya/hex-frontier/internal/economy"
	"github.com/talgya/hex-frontier/internal/engine"
	"github.com/talgya/hex-frontier/internal/resources"
	"github.com/talgya/hex-frontier/internal/units"
	"github.com/talgya/hex-frontier/internal/world"
)

// Build assembles a game from a validated scenario: uniform grid, starting
// ledger, explicit placements, then optional noise scatter on the free
// tiles.
func Build(sc config.Scenario) (*engine.Game, error) {
	ledger := economy.NewLedger(economy.Amount{
		Food: sc.Start.Food,
		Wood: sc.Start.Wood,
		Gold: sc.Start.Gold,
	}, sc.Start.UpkeepPerTurn)

	g, err := buildOnLedger(sc, ledger)
	if err != nil {
		return nil, err
	}

	slog.Info("level built",
		"scenario", sc.Name,
		"grid", fmt.Sprintf("%dx%d", g.Grid.Width(), g.Grid.Height()),
		"units", len(sc.Units),
		"resources", g.Resources.Count(),
		"hostiles", g.Hostiles.Count(),
	)
	return g, nil
}

// scatter populates free tiles with extra nodes and hostiles from two
// independent noise layers. Deterministic for a given seed and grid;
// terrain is never touched.
func scatter(g *engine.Game, spec config.ScatterSpec) {
	resNoise := opensimplex.NewNormalized(spec.Seed)
	hostNoise := opensimplex.NewNormalized(spec.Seed + 1)

	placedNodes, placedHostiles := 0, 0
	for _, tile := range g.Grid.Tiles() {
		if !tile.Occupant.IsNone() {
			continue
		}
		coord := tile.Coord
		x, y := noisePoint(coord)

		if v := resNoise.Eval2(x*0.35, y*0.35); v > 1.0-spec.ResourceDensity {
			t := scatterType(v, spec.ResourceDensity)
			if _, err := g.PlaceResource(coord, t, 0); err == nil {
				placedNodes++
			}
			continue
		}
		if v := hostNoise.Eval2(x*0.35, y*0.35); v > 1.0-spec.HostileDensity {
			h := units.NewHostile(
				fmt.Sprintf("roamer-%d-%d", coord.Q, coord.R),
				coord, 25, 3, 1,
			)
			if g.PlaceHostile(h) {
				placedHostiles++
			}
		}
	}
	slog.Info("scatter applied",
		"seed", spec.Seed,
		"nodes", placedNodes,
		"hostiles", placedHostiles,
	)
}

// noisePoint maps axial coordinates to continuous space so nearby hexes
// sample nearby noise: x = q + r/2, y = r * sqrt(3)/2.
func noisePoint(coord world.HexCoord) (float64, float64) {
	x := float64(coord.Q) + float64(coord.R)*0.5
	y := float64(coord.R) * math.Sqrt(3.0) / 2.0
	return x, y
}

// scatterType slices the band above the placement threshold into the four
// node types so one layer drives both the where and the what.
func scatterType(v, density float64) resources.Type {
	if density <= 0 {
		return resources.TypeTree
	}
	band := (v - (1.0 - density)) / density
	switch {
	case band < 0.4:
		return resources.TypeTree
	case band < 0.7:
		return resources.TypeRock
	case band < 0.9:
		return resources.TypeSheep
	default:
		return resources.TypeGoldDeposit
	}
}

// NextLevel advances a won game to a fresh board: level counter bumped,
// scatter reseeded, explicit placements rebuilt from the scenario. The
// stockpile carries over untouched.
func NextLevel(g *engine.Game, sc config.Scenario) (*engine.Game, error) {
	g.Ledger.AdvanceLevel()
	sc.Scatter.Seed += int64(g.Ledger.Level())

	next, err := buildOnLedger(sc, g.Ledger)
	if err != nil {
		return nil, err
	}
	next.Turns.StartGame()
	slog.Info("level advanced", "level", g.Ledger.Level())
	return next, nil
}

// RestartAfterDefeat rebuilds the level after a GAME_OVER, keeping a
// fraction of the stockpile as the loss penalty.
func RestartAfterDefeat(g *engine.Game, sc config.Scenario) (*engine.Game, error) {
	g.Ledger.ApplyLossPenalty(economy.DefaultLossRetention)
	if g.Ledger.Food() < sc.Start.UpkeepPerTurn {
		// A restart must be survivable for at least one turn.
		g.Ledger.SetFood(sc.Start.UpkeepPerTurn)
	}
	next, err := buildOnLedger(sc, g.Ledger)
	if err != nil {
		return nil, err
	}
	next.Turns.StartGame()
	slog.Info("level restarted after defeat", "level", g.Ledger.Level())
	return next, nil
}

// buildOnLedger is Build with a carried-over ledger instead of a fresh one.
func buildOnLedger(sc config.Scenario, ledger *economy.Ledger) (*engine.Game, error) {
	grid := world.NewGrid()
	terrain, ok := world.TerrainByName(sc.Grid.Terrain)
	if !ok {
		return nil, fmt.Errorf("levels: unknown terrain %q", sc.Grid.Terrain)
	}
	grid.Initialize(sc.Grid.Width, sc.Grid.Height, terrain)

	g := engine.NewGame(grid, ledger)
	for _, us := range sc.Units {
		class, ok := units.ClassByName(us.Class)
		if !ok {
			return nil, fmt.Errorf("levels: unknown class %q", us.Class)
		}
		u := units.NewUnit(us.Name, class, world.HexCoord{Q: us.Q, R: us.R})
		if !g.PlaceUnit(u) {
			return nil, fmt.Errorf("levels: cannot place unit %s at (%d,%d)", us.Name, us.Q, us.R)
		}
	}
	for _, ns := range sc.Nodes {
		t, ok := resources.TypeByName(ns.Type)
		if !ok {
			return nil, fmt.Errorf("levels: unknown resource type %q", ns.Type)
		}
		if _, err := g.PlaceResource(world.HexCoord{Q: ns.Q, R: ns.R}, t, ns.HP); err != nil {
			return nil, fmt.Errorf("levels: resource %s at (%d,%d): %w", ns.Type, ns.Q, ns.R, err)
		}
	}
	for _, es := range sc.Enemies {
		h := units.NewHostile(es.Name, world.HexCoord{Q: es.Q, R: es.R}, es.HP, es.Damage, es.Range)
		if !g.PlaceHostile(h) {
			return nil, fmt.Errorf("levels: cannot place hostile %s at (%d,%d)", es.Name, es.Q, es.R)
		}
	}
	if sc.Scatter.Enabled {
		scatter(g, sc.Scatter)
	}
	return g, nil
}
