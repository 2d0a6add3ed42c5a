package units

import (
	"github.com/google/uuid"

	"github.com/talgya/hex-frontier/internal/world"
)

// Hostile is an enemy unit. It counterattacks adjacent attackers during
// combat resolution but takes no turns of its own.
type Hostile struct {
	ID           string         `json:"id"`
	Name         string         `json:"name"`
	Coord        world.HexCoord `json:"coord"`
	HP           int            `json:"hp"`
	MaxHP        int            `json:"max_hp"`
	AttackDamage int            `json:"attack_damage"`
	Range        int            `json:"range"`
	Dead         bool           `json:"dead"`
}

// NewHostile builds a hostile at coord. Range below 1 is raised to 1.
func NewHostile(name string, coord world.HexCoord, hp, attackDamage, attackRange int) *Hostile {
	if attackRange < 1 {
		attackRange = 1
	}
	return &Hostile{
		ID:           uuid.NewString(),
		Name:         name,
		Coord:        coord,
		HP:           hp,
		MaxHP:        hp,
		AttackDamage: attackDamage,
		Range:        attackRange,
	}
}

// Alive reports whether the hostile still fights: positive HP and not
// flagged dead.
func (h *Hostile) Alive() bool {
	return h != nil && h.HP > 0 && !h.Dead
}
