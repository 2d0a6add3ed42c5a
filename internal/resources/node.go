// Package resources provides the harvestable resource nodes and their
// coordinate-keyed manager.
package resources

import "github.com/talgya/hex-frontier/internal/world"

// Type enumerates the harvestable resource node kinds.
type Type uint8

const (
	TypeTree Type = iota
	TypeRock
	TypeSheep
	TypeGoldDeposit
)

// TypeName returns a human-readable resource type name.
func TypeName(t Type) string {
	switch t {
	case TypeTree:
		return "tree"
	case TypeRock:
		return "rock"
	case TypeSheep:
		return "sheep"
	case TypeGoldDeposit:
		return "gold_deposit"
	}
	return "unknown"
}

// TypeByName resolves a resource type name. Unknown names report false.
func TypeByName(name string) (Type, bool) {
	for t := TypeTree; t <= TypeGoldDeposit; t++ {
		if TypeName(t) == name {
			return t, true
		}
	}
	return TypeTree, false
}

// ActionBudget is the fixed number of harvest sub-actions a node absorbs
// before depleting. The budget, not HP, decides when a node is gone.
const ActionBudget = 7

// Node is a harvestable resource on the grid. HP exists for a future
// combat-on-resources mode and only clamps per-action work; it never
// gates depletion.
type Node struct {
	Type             Type           `json:"type"`
	Coord            world.HexCoord `json:"coord"`
	HP               int            `json:"hp"`
	MaxHP            int            `json:"max_hp"`
	YieldFood        int            `json:"yield_food"`
	YieldWood        int            `json:"yield_wood"`
	YieldGold        int            `json:"yield_gold"`
	ActionsRemaining int            `json:"actions_remaining"`
	Exists           bool           `json:"exists"`
}

// defaults returns the per-type max HP and yield-per-work-point values.
func defaults(t Type) (maxHP, food, wood, gold int) {
	switch t {
	case TypeTree:
		return 20, 0, 5, 0
	case TypeRock:
		return 30, 0, 0, 3
	case TypeSheep:
		return 10, 8, 0, 0
	case TypeGoldDeposit:
		return 40, 0, 0, 7
	}
	return 1, 0, 0, 0
}

// NewNode builds a node of the given type at coord with type defaults.
// A positive hpOverride replaces the default max HP.
func NewNode(t Type, coord world.HexCoord, hpOverride int) *Node {
	maxHP, food, wood, gold := defaults(t)
	if hpOverride > 0 {
		maxHP = hpOverride
	}
	return &Node{
		Type:             t,
		Coord:            coord,
		HP:               maxHP,
		MaxHP:            maxHP,
		YieldFood:        food,
		YieldWood:        wood,
		YieldGold:        gold,
		ActionsRemaining: ActionBudget,
		Exists:           true,
	}
}
