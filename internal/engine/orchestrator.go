package engine

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/talgya/hex-frontier/internal/economy"
	"github.com/talgya/hex-frontier/internal/resources"
	"github.com/talgya/hex-frontier/internal/units"
)

// Phase is a state of the turn machine.
type Phase uint8

const (
	PhasePlanning Phase = iota
	PhaseExecuting
	PhaseResolution
	PhaseVictory
	PhaseGameOver
)

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case PhasePlanning:
		return "planning"
	case PhaseExecuting:
		return "executing"
	case PhaseResolution:
		return "resolution"
	case PhaseVictory:
		return "victory"
	case PhaseGameOver:
		return "game_over"
	}
	return "unknown"
}

// RoundsPerTurn is the fixed number of sub-action rounds per execution.
const RoundsPerTurn = 7

// Phase-discipline rejections. Reported to the caller, never fatal.
var (
	ErrNotPlanning       = errors.New("engine: turn execution requires the planning phase")
	ErrExecutionInFlight = errors.New("engine: a turn execution is already in flight")
)

// GameOverOutOfFood is the defeat reason when upkeep starves the stockpile.
const GameOverOutOfFood = "out of food"

// PacingHook is called after each executed round. Presentation layers use
// it for animation pacing; core correctness never depends on it.
type PacingHook func(round int)

// planKind is a unit's resolved intent for one turn.
type planKind uint8

const (
	planIdle planKind = iota
	planHarvest
	planCombat
)

// unitPlan freezes one unit's target for the 7-round loop.
type unitPlan struct {
	unit     *units.Unit
	kind     planKind
	resource *resources.Node
	hostile  *units.Hostile
}

// Orchestrator drives the phase state machine:
// PLANNING -> EXECUTING -> RESOLUTION -> {PLANNING | VICTORY | GAME_OVER}.
// The terminal phases require an explicit StartGame to leave. Access to
// shared state is serialized by the phases themselves; the 7-round loop is
// a deterministic round-major, unit-order-minor iteration.
type Orchestrator struct {
	Units     *units.Manager
	Hostiles  *units.HostileManager
	Resources *resources.Manager
	Ledger    *economy.Ledger
	Harvester *Harvester
	Combat    *Combat
	Bus       *Bus

	// Pacing, when set, runs between rounds.
	Pacing PacingHook

	phase     Phase
	executing bool
}

// NewOrchestrator wires the turn machine to its collaborators.
func NewOrchestrator(
	um *units.Manager,
	hm *units.HostileManager,
	rm *resources.Manager,
	ledger *economy.Ledger,
	harvester *Harvester,
	combat *Combat,
	bus *Bus,
) *Orchestrator {
	return &Orchestrator{
		Units:     um,
		Hostiles:  hm,
		Resources: rm,
		Ledger:    ledger,
		Harvester: harvester,
		Combat:    combat,
		Bus:       bus,
		phase:     PhasePlanning,
	}
}

// Phase returns the current phase.
func (o *Orchestrator) Phase() Phase {
	return o.phase
}

// Turn returns the 1-based number of the turn currently being played.
func (o *Orchestrator) Turn() int {
	return o.Ledger.TurnCount() + 1
}

// StartGame (re)enters PLANNING. It is the explicit reset out of the
// terminal phases and the initial kick-off; collaborators reset the
// ledger and rebuild the level around it.
func (o *Orchestrator) StartGame() {
	o.setPhase(PhasePlanning)
	o.Bus.SetTurn(o.Turn())
	o.Bus.SetRound(0)
	o.Bus.Emit(EventTurnStarted, fmt.Sprintf("turn %d", o.Turn()))
	slog.Info("game started", "turn", o.Turn(), "upkeep", o.Ledger.UpkeepPerTurn())
}

// RequestExecuteTurn runs the full EXECUTING and RESOLUTION phases for the
// current turn. Requests outside PLANNING, or while an execution is in
// flight, are rejected with a reported error and change nothing.
func (o *Orchestrator) RequestExecuteTurn() error {
	if o.executing {
		slog.Warn("execute rejected: already executing")
		return ErrExecutionInFlight
	}
	if o.phase != PhasePlanning {
		slog.Warn("execute rejected: wrong phase", "phase", o.phase.String())
		return ErrNotPlanning
	}
	o.executing = true
	defer func() { o.executing = false }()

	o.Bus.SetTurn(o.Turn())
	o.setPhase(PhaseExecuting)

	plans := o.resolvePlans()
	o.runRounds(plans)

	// Assignments are cleared unconditionally, whatever happened above.
	for _, u := range o.Units.All() {
		u.ClearAssignment()
	}
	o.Bus.SetRound(0)
	o.Bus.Emit(EventExecutionCompleted, fmt.Sprintf("turn %d executed", o.Turn()))

	o.setPhase(PhaseResolution)
	o.resolve()
	return nil
}

// CheckVictory reports whether the level is cleared: no resources left and
// no hostiles alive.
func (o *Orchestrator) CheckVictory() bool {
	return o.Resources.Count() == 0 && o.Hostiles.AliveCount() == 0
}

// resolvePlans freezes each unit's intent before the rounds run.
func (o *Orchestrator) resolvePlans() []unitPlan {
	unitList := o.Units.All()
	plans := make([]unitPlan, 0, len(unitList))
	for _, u := range unitList {
		plan := unitPlan{unit: u, kind: planIdle}
		switch {
		case u.AssignedHostile != nil && u.AssignedHostile.Alive():
			plan.kind = planCombat
			plan.hostile = u.AssignedHostile
		case u.AssignedResource != nil && u.AssignedResource.Exists:
			plan.kind = planHarvest
			plan.resource = u.AssignedResource
		}
		plans = append(plans, plan)
	}
	return plans
}

// runRounds executes the 7 sub-action rounds, round-major then
// unit-order-minor. Targets that die or deplete mid-sequence idle the
// unit for its remaining rounds.
func (o *Orchestrator) runRounds(plans []unitPlan) {
	for round := 1; round <= RoundsPerTurn; round++ {
		o.Bus.SetRound(round)
		for _, plan := range plans {
			if !plan.unit.Alive() {
				continue
			}
			switch plan.kind {
			case planCombat:
				if plan.hostile.Alive() {
					o.Combat.ExecuteOneAction(plan.unit, plan.hostile)
				}
			case planHarvest:
				if plan.resource.Exists {
					o.Harvester.ExecuteOneAction(plan.unit, plan.resource)
				}
			}
		}
		o.Bus.Emit(EventRoundExecuted, fmt.Sprintf("round %d/%d", round, RoundsPerTurn))
		if o.Pacing != nil {
			o.Pacing(round)
		}
	}
}

// resolve applies upkeep and decides where the machine goes next.
func (o *Orchestrator) resolve() {
	if !o.Ledger.PayUpkeep() {
		// Partial upkeep is not a thing: an unaffordable bill starves the
		// stockpile to zero through the clamped setter.
		slog.Warn("upkeep unaffordable",
			"upkeep", o.Ledger.UpkeepPerTurn(),
			"food", o.Ledger.Food(),
		)
		o.Ledger.SetFood(0)
	}

	if o.Ledger.Food() == 0 {
		o.setPhase(PhaseGameOver)
		o.Bus.Emit(EventGameOver, GameOverOutOfFood)
		slog.Info("game over", "reason", GameOverOutOfFood, "turn", o.Turn())
		return
	}

	if o.CheckVictory() {
		o.setPhase(PhaseVictory)
		o.Bus.Emit(EventVictory, fmt.Sprintf("level %d cleared", o.Ledger.Level()))
		slog.Info("victory", "level", o.Ledger.Level(), "turn", o.Turn())
		return
	}

	o.Bus.Emit(EventTurnEnded, fmt.Sprintf("turn %d ended", o.Turn()))
	o.Ledger.AdvanceTurn()
	o.setPhase(PhasePlanning)
	o.Bus.SetTurn(o.Turn())
	o.Bus.Emit(EventTurnStarted, fmt.Sprintf("turn %d", o.Turn()))
}

func (o *Orchestrator) setPhase(p Phase) {
	if o.phase == p && p != PhasePlanning {
		return
	}
	o.phase = p
	o.Bus.Emit(EventPhaseChanged, p.String())
}
