package engine

import (
	"fmt"
	"log/slog"

	"github.com/talgya/hex-frontier/internal/economy"
	"github.com/talgya/hex-frontier/internal/resources"
	"github.com/talgya/hex-frontier/internal/units"
	"github.com/talgya/hex-frontier/internal/world"
)

// Game ties the grid, rosters, ledger, engines, and turn machine together
// and exposes the mutating operations that keep tile occupancy and entity
// positions consistent. Collaborators (planners, UIs, recorders) talk to
// the core through this aggregate.
type Game struct {
	Grid      *world.Grid
	Units     *units.Manager
	Hostiles  *units.HostileManager
	Resources *resources.Manager
	Ledger    *economy.Ledger
	Bus       *Bus
	Turns     *Orchestrator
}

// NewGame assembles a game around an initialized grid and a ledger.
func NewGame(grid *world.Grid, ledger *economy.Ledger) *Game {
	g := &Game{
		Grid:      grid,
		Units:     units.NewManager(),
		Hostiles:  units.NewHostileManager(),
		Resources: resources.NewManager(),
		Ledger:    ledger,
		Bus:       NewBus(),
	}

	harvester := &Harvester{Ledger: ledger, Resources: g.Resources}
	combat := &Combat{Grid: grid, Bus: g.Bus}
	g.Turns = NewOrchestrator(g.Units, g.Hostiles, g.Resources, ledger, harvester, combat, g.Bus)

	// Mirror resource placement/depletion into tile occupancy and the bus.
	g.Resources.Subscribe(func(c resources.Change) {
		desc := fmt.Sprintf("%s at (%d,%d)",
			resources.TypeName(c.Node.Type), c.Node.Coord.Q, c.Node.Coord.R)
		switch c.Kind {
		case resources.NodePlaced:
			g.Grid.SetOccupant(c.Node.Coord, world.Occupant{
				Kind: world.OccupantOpaque,
				ID:   "resource:" + resources.TypeName(c.Node.Type),
			})
			g.Bus.Emit(EventResourcePlaced, desc)
		case resources.NodeDepleted:
			g.Grid.SetOccupant(c.Node.Coord, world.NoOccupant)
			g.Bus.Emit(EventResourceDepleted, desc)
		}
	})

	// Turn report, in the spirit of a daily summary.
	g.Bus.Subscribe(func(e Event) {
		if e.Kind != EventTurnEnded {
			return
		}
		slog.Info("turn report",
			"turn", e.Turn,
			"food", ledger.Food(),
			"wood", ledger.Wood(),
			"gold", ledger.Gold(),
			"upkeep", ledger.UpkeepPerTurn(),
			"units_alive", g.Units.AliveCount(),
			"hostiles_alive", g.Hostiles.AliveCount(),
			"resources", g.Resources.Count(),
		)
	})

	return g
}

// PlaceUnit adds a unit to the roster and claims its tile. Fails when the
// target tile is missing or occupied.
func (g *Game) PlaceUnit(u *units.Unit) bool {
	if u == nil {
		return false
	}
	if !g.Grid.IsValid(u.Coord) || g.Grid.IsOccupied(u.Coord) {
		slog.Warn("unit placement rejected", "unit", u.Name, "q", u.Coord.Q, "r", u.Coord.R)
		return false
	}
	if !g.Units.Add(u) {
		return false
	}
	g.Grid.SetOccupant(u.Coord, world.Occupant{Kind: world.OccupantUnit, ID: u.ID})
	return true
}

// PlaceHostile adds a hostile to the roster and claims its tile.
func (g *Game) PlaceHostile(h *units.Hostile) bool {
	if h == nil {
		return false
	}
	if !g.Grid.IsValid(h.Coord) || g.Grid.IsOccupied(h.Coord) {
		slog.Warn("hostile placement rejected", "hostile", h.Name, "q", h.Coord.Q, "r", h.Coord.R)
		return false
	}
	if !g.Hostiles.Add(h) {
		return false
	}
	g.Grid.SetOccupant(h.Coord, world.Occupant{Kind: world.OccupantHostile, ID: h.ID})
	return true
}

// PlaceResource creates a resource node and claims its tile. A positive
// hpOverride replaces the type default.
func (g *Game) PlaceResource(coord world.HexCoord, t resources.Type, hpOverride int) (*resources.Node, error) {
	if !g.Grid.IsValid(coord) || g.Grid.IsOccupied(coord) {
		slog.Warn("resource placement rejected: tile unavailable",
			"type", resources.TypeName(t), "q", coord.Q, "r", coord.R)
		return nil, resources.ErrOccupied
	}
	return g.Resources.PlaceWithHP(coord, t, hpOverride)
}

// MoveUnit relocates a unit during PLANNING, updating the source and
// destination tiles together with the unit position.
func (g *Game) MoveUnit(unitID string, dest world.HexCoord) bool {
	if g.Turns.Phase() != PhasePlanning {
		slog.Warn("move rejected: wrong phase", "phase", g.Turns.Phase().String())
		return false
	}
	u, ok := g.Units.Get(unitID)
	if !ok || !u.Alive() {
		slog.Warn("move rejected: unknown or dead unit", "unit_id", unitID)
		return false
	}
	if !g.Grid.IsValid(dest) || g.Grid.IsOccupied(dest) {
		slog.Warn("move rejected: tile unavailable", "unit", u.Name, "q", dest.Q, "r", dest.R)
		return false
	}
	g.Grid.SetOccupant(u.Coord, world.NoOccupant)
	u.Coord = dest
	g.Grid.SetOccupant(dest, world.Occupant{Kind: world.OccupantUnit, ID: u.ID})
	return true
}

// AssignResourceTarget sets a unit's harvest intent during PLANNING.
// Re-assignment overwrites the previous intent.
func (g *Game) AssignResourceTarget(unitID string, coord world.HexCoord) bool {
	if g.Turns.Phase() != PhasePlanning {
		slog.Warn("assignment rejected: wrong phase", "phase", g.Turns.Phase().String())
		return false
	}
	u, ok := g.Units.Get(unitID)
	if !ok {
		return false
	}
	node, ok := g.Resources.Get(coord)
	if !ok {
		slog.Warn("assignment rejected: no resource", "q", coord.Q, "r", coord.R)
		return false
	}
	u.AssignResource(node)
	return true
}

// AssignHostileTarget sets a unit's combat intent during PLANNING.
func (g *Game) AssignHostileTarget(unitID, hostileID string) bool {
	if g.Turns.Phase() != PhasePlanning {
		slog.Warn("assignment rejected: wrong phase", "phase", g.Turns.Phase().String())
		return false
	}
	u, ok := g.Units.Get(unitID)
	if !ok {
		return false
	}
	h, ok := g.Hostiles.Get(hostileID)
	if !ok {
		slog.Warn("assignment rejected: unknown hostile", "hostile_id", hostileID)
		return false
	}
	u.AssignHostile(h)
	return true
}
