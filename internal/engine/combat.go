package engine

import (
	"fmt"
	"log/slog"

	"github.com/talgya/hex-frontier/internal/units"
	"github.com/talgya/hex-frontier/internal/world"
)

// Combat executes single attack sub-actions. The defender counterattacks
// when it survives the strike and the attacker stands within its range.
type Combat struct {
	Grid *world.Grid
	Bus  *Bus
}

// ExecuteOneAction performs one attack by attacker against defender and
// returns the damage the attacker dealt. Counterattack damage is reported
// via events, not the return value. Precondition failures (nil references,
// ineligible class, non-adjacency, dead defender) are logged, mutate
// nothing, and deal zero.
func (c *Combat) ExecuteOneAction(attacker *units.Unit, defender *units.Hostile) int {
	if attacker == nil || defender == nil {
		slog.Warn("attack rejected: nil attacker or defender")
		return 0
	}
	if !attacker.CanFight() {
		slog.Warn("attack rejected: class cannot fight",
			"unit", attacker.Name,
			"class", units.ClassName(attacker.Class),
		)
		return 0
	}
	if world.Distance(attacker.Coord, defender.Coord) > 1 {
		slog.Warn("attack rejected: not adjacent",
			"unit", attacker.Name,
			"distance", world.Distance(attacker.Coord, defender.Coord),
		)
		return 0
	}
	if !defender.Alive() {
		slog.Warn("attack rejected: defender not alive", "defender", defender.Name)
		return 0
	}

	damage := attacker.AttackDamage
	defender.HP -= damage
	if defender.HP <= 0 {
		defender.HP = 0
		defender.Dead = true
		if c.Grid != nil {
			c.Grid.SetOccupant(defender.Coord, world.NoOccupant)
		}
		if c.Bus != nil {
			c.Bus.Emit(EventHostileDefeated,
				fmt.Sprintf("%s defeated %s", attacker.Name, defender.Name))
		}
		slog.Info("hostile defeated", "attacker", attacker.Name, "hostile", defender.Name)
		// No counterattack from the dead.
		return damage
	}

	if world.Distance(defender.Coord, attacker.Coord) <= defender.Range {
		attacker.HP -= defender.AttackDamage
		if attacker.HP <= 0 {
			attacker.HP = 0
			if c.Grid != nil {
				c.Grid.SetOccupant(attacker.Coord, world.NoOccupant)
			}
			if c.Bus != nil {
				c.Bus.Emit(EventUnitDefeated,
					fmt.Sprintf("%s fell to %s", attacker.Name, defender.Name))
			}
			slog.Info("unit defeated", "unit", attacker.Name, "hostile", defender.Name)
		}
	}

	return damage
}
