// Package units provides the player-unit and hostile data models and
// their rosters.
package units

import (
	"github.com/google/uuid"

	"github.com/talgya/hex-frontier/internal/resources"
	"github.com/talgya/hex-frontier/internal/world"
)

// Class determines a unit's abilities and base stats.
type Class uint8

const (
	ClassHunter Class = iota
	ClassChopper
	ClassMiner
	ClassAllrounder
)

// ClassName returns a human-readable class name.
func ClassName(c Class) string {
	switch c {
	case ClassHunter:
		return "hunter"
	case ClassChopper:
		return "chopper"
	case ClassMiner:
		return "miner"
	case ClassAllrounder:
		return "allrounder"
	}
	return "unknown"
}

// ClassByName resolves a class name. Unknown names report false.
func ClassByName(name string) (Class, bool) {
	for c := ClassHunter; c <= ClassAllrounder; c++ {
		if ClassName(c) == name {
			return c, true
		}
	}
	return ClassHunter, false
}

// Abilities are the always-present harvest capability flags. Defaults
// follow the class; scenarios may override them per unit.
type Abilities struct {
	CanHunt bool `json:"can_hunt"`
	CanChop bool `json:"can_chop"`
	CanMine bool `json:"can_mine"`
}

// classStats holds per-class base values.
type classStats struct {
	maxHP         int
	workPerAction int
	attackDamage  int
	abilities     Abilities
}

var statsByClass = map[Class]classStats{
	ClassHunter:     {maxHP: 25, workPerAction: 3, attackDamage: 8, abilities: Abilities{CanHunt: true}},
	ClassChopper:    {maxHP: 30, workPerAction: 5, attackDamage: 6, abilities: Abilities{CanChop: true}},
	ClassMiner:      {maxHP: 25, workPerAction: 4, attackDamage: 3, abilities: Abilities{CanMine: true}},
	ClassAllrounder: {maxHP: 20, workPerAction: 2, attackDamage: 4, abilities: Abilities{CanHunt: true, CanChop: true, CanMine: true}},
}

// Unit is a player-controlled worker or fighter. AssignedResource and
// AssignedHostile are the mutually exclusive per-turn intents, set during
// planning and cleared unconditionally after every execution phase.
type Unit struct {
	ID               string         `json:"id"`
	Name             string         `json:"name"`
	Coord            world.HexCoord `json:"coord"`
	Class            Class          `json:"class"`
	HP               int            `json:"hp"`
	MaxHP            int            `json:"max_hp"`
	Abilities        Abilities      `json:"abilities"`
	WorkPerAction    int            `json:"work_per_action"`
	AttackDamage     int            `json:"attack_damage"`
	InteractionRange int            `json:"interaction_range"`

	AssignedResource *resources.Node `json:"-"`
	AssignedHostile  *Hostile        `json:"-"`
}

// NewUnit builds a unit of the given class at coord with class defaults.
func NewUnit(name string, class Class, coord world.HexCoord) *Unit {
	st := statsByClass[class]
	return &Unit{
		ID:               uuid.NewString(),
		Name:             name,
		Coord:            coord,
		Class:            class,
		HP:               st.maxHP,
		MaxHP:            st.maxHP,
		Abilities:        st.abilities,
		WorkPerAction:    st.workPerAction,
		AttackDamage:     st.attackDamage,
		InteractionRange: 1,
	}
}

// Alive reports whether the unit can still act.
func (u *Unit) Alive() bool {
	return u != nil && u.HP > 0
}

// CanFight reports whether the unit's class is combat-eligible.
func (u *Unit) CanFight() bool {
	return u.Class == ClassHunter || u.Class == ClassChopper
}

// CanHarvest reports whether the unit's ability flags satisfy the node
// type's requirement.
func (u *Unit) CanHarvest(t resources.Type) bool {
	switch t {
	case resources.TypeTree:
		return u.Abilities.CanChop
	case resources.TypeRock, resources.TypeGoldDeposit:
		return u.Abilities.CanMine
	case resources.TypeSheep:
		return u.Abilities.CanHunt
	}
	return false
}

// AssignResource sets the harvest intent, displacing any combat intent.
// Re-assignment overwrites the previous target.
func (u *Unit) AssignResource(n *resources.Node) {
	u.AssignedResource = n
	u.AssignedHostile = nil
}

// AssignHostile sets the combat intent, displacing any harvest intent.
func (u *Unit) AssignHostile(h *Hostile) {
	u.AssignedHostile = h
	u.AssignedResource = nil
}

// ClearAssignment drops both intents.
func (u *Unit) ClearAssignment() {
	u.AssignedResource = nil
	u.AssignedHostile = nil
}
