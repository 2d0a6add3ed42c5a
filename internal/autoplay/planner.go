// Package autoplay implements an autonomous planner that plays whole games
// unattended. Each cycle it observes the board, decides a target for every
// live unit, walks units toward out-of-reach targets, and requests turn
// execution.
package autoplay

import (
	"log/slog"

	"github.com/talgya/hex-frontier/internal/engine"
	"github.com/talgya/hex-frontier/internal/resources"
	"github.com/talgya/hex-frontier/internal/units"
	"github.com/talgya/hex-frontier/internal/world"
)

// MoveBudget caps how many tiles a unit walks per planning cycle.
const MoveBudget = 3

// Planner drives one game. It only uses the same planning-phase operations
// a human player would.
type Planner struct {
	Game *engine.Game
}

// New creates a planner for the given game.
func New(g *engine.Game) *Planner {
	return &Planner{Game: g}
}

// Step plans and executes one full turn. Reports false when the game sits
// in a terminal phase and no further turns can run.
func (p *Planner) Step() bool {
	if p.terminal() {
		return false
	}

	for _, u := range p.Game.Units.All() {
		if !u.Alive() {
			continue
		}
		p.decide(u)
	}

	if err := p.Game.Turns.RequestExecuteTurn(); err != nil {
		slog.Warn("autoplay execute failed", "error", err)
		return false
	}
	return !p.terminal()
}

// Run steps until a terminal phase or the turn cap. Returns the number of
// executed turns.
func (p *Planner) Run(maxTurns int) int {
	played := 0
	for played < maxTurns && !p.terminal() {
		cont := p.Step()
		played++
		if !cont {
			break
		}
	}
	return played
}

func (p *Planner) terminal() bool {
	phase := p.Game.Turns.Phase()
	return phase == engine.PhaseVictory || phase == engine.PhaseGameOver
}

// decide picks the unit's intent for this turn: fighters hunt the nearest
// living hostile, everyone else harvests the nearest node they have the
// ability for. Out-of-reach targets trigger movement instead.
func (p *Planner) decide(u *units.Unit) {
	if u.CanFight() {
		if h := p.Game.Hostiles.NearestAlive(u.Coord); h != nil {
			if world.Distance(u.Coord, h.Coord) <= 1 {
				p.Game.AssignHostileTarget(u.ID, h.ID)
				return
			}
			p.approach(u, h.Coord)
			if world.Distance(u.Coord, h.Coord) <= 1 {
				p.Game.AssignHostileTarget(u.ID, h.ID)
			}
			return
		}
	}

	node := p.nearestHarvestable(u)
	if node == nil {
		return
	}
	if world.Distance(u.Coord, node.Coord) <= 1 {
		p.Game.AssignResourceTarget(u.ID, node.Coord)
		return
	}
	p.approach(u, node.Coord)
	if world.Distance(u.Coord, node.Coord) <= 1 {
		p.Game.AssignResourceTarget(u.ID, node.Coord)
	}
}

// nearestHarvestable scans the live nodes for the closest one this unit's
// abilities cover. First-encountered wins ties, matching the managers.
func (p *Planner) nearestHarvestable(u *units.Unit) *resources.Node {
	var best *resources.Node
	bestDist := 0
	for _, n := range p.Game.Resources.All() {
		if !u.CanHarvest(n.Type) {
			continue
		}
		d := world.Distance(u.Coord, n.Coord)
		if best == nil || d < bestDist {
			best = n
			bestDist = d
		}
	}
	return best
}

// approach walks the unit up to MoveBudget tiles toward target, one
// neighbor at a time, always picking the free neighbor that shrinks the
// distance most. Stops early when adjacent or boxed in.
func (p *Planner) approach(u *units.Unit, target world.HexCoord) {
	for step := 0; step < MoveBudget; step++ {
		if world.Distance(u.Coord, target) <= 1 {
			return
		}
		next, ok := p.bestStep(u.Coord, target)
		if !ok {
			slog.Debug("autoplay unit boxed in", "unit", u.Name, "q", u.Coord.Q, "r", u.Coord.R)
			return
		}
		if !p.Game.MoveUnit(u.ID, next) {
			return
		}
	}
}

func (p *Planner) bestStep(from, target world.HexCoord) (world.HexCoord, bool) {
	cur := world.Distance(from, target)
	var best world.HexCoord
	bestDist := cur
	found := false
	for _, n := range from.Neighbors() {
		if !p.Game.Grid.IsValid(n) || p.Game.Grid.IsOccupied(n) {
			continue
		}
		d := world.Distance(n, target)
		if d < bestDist {
			best = n
			bestDist = d
			found = true
		}
	}
	return best, found
}
