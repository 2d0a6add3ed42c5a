package engine

import (
	"fmt"
	"log/slog"

	"github.com/talgya/hex-frontier/internal/economy"
	"github.com/talgya/hex-frontier/internal/resources"
	"github.com/talgya/hex-frontier/internal/units"
	"github.com/talgya/hex-frontier/internal/world"
)

// Harvester executes single harvest sub-actions against resource nodes.
// Depletion is driven purely by the node's action budget; HP only clamps
// how much material one action extracts.
type Harvester struct {
	Ledger    *economy.Ledger
	Resources *resources.Manager
}

// ExecuteOneAction performs one harvest sub-action by unit against node
// and returns the total yield banked this action. Precondition failures
// (nil references, non-adjacency, missing ability) are logged, mutate
// nothing, and yield zero.
func (h *Harvester) ExecuteOneAction(unit *units.Unit, node *resources.Node) int {
	if unit == nil || node == nil {
		slog.Warn("harvest rejected: nil unit or node")
		return 0
	}
	if world.Distance(unit.Coord, node.Coord) > 1 {
		slog.Warn("harvest rejected: not adjacent",
			"unit", unit.Name,
			"distance", world.Distance(unit.Coord, node.Coord),
		)
		return 0
	}
	if !unit.CanHarvest(node.Type) {
		slog.Warn("harvest rejected: missing ability",
			"unit", unit.Name,
			"class", units.ClassName(unit.Class),
			"resource", resources.TypeName(node.Type),
		)
		return 0
	}

	// HP clamps the work done this action; it never decides depletion.
	actualWork := unit.WorkPerAction
	if actualWork > node.HP {
		actualWork = node.HP
	}
	node.HP -= actualWork

	yield := economy.Amount{
		Food: node.YieldFood * actualWork,
		Wood: node.YieldWood * actualWork,
		Gold: node.YieldGold * actualWork,
	}
	h.Ledger.Add(yield)

	node.ActionsRemaining--
	if node.ActionsRemaining <= 0 {
		node.Exists = false
		// Removal emits the depletion change through the manager.
		h.Resources.Remove(node.Coord)
		slog.Info("resource depleted",
			"resource", resources.TypeName(node.Type),
			"coord", fmt.Sprintf("(%d,%d)", node.Coord.Q, node.Coord.R),
			"unit", unit.Name,
		)
	}

	slog.Debug("harvest action",
		"unit", unit.Name,
		"resource", resources.TypeName(node.Type),
		"work", actualWork,
		"yield", yield.Total(),
		"actions_remaining", node.ActionsRemaining,
	)
	return yield.Total()
}
