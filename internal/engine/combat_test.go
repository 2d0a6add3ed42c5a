package engine

import (
	"testing"

	"github.com/talgya/hex-frontier/internal/units"
	"github.com/talgya/hex-frontier/internal/world"
)

func TestKillPreventsCounterattack(t *testing.T) {
	c := &Combat{Bus: NewBus()}
	attacker := units.NewUnit("a", units.ClassHunter, world.HexCoord{Q: 0, R: 0})
	attacker.AttackDamage = 100
	defender := units.NewHostile("d", world.HexCoord{Q: 1, R: 0}, 50, 30, 1)

	dealt := c.ExecuteOneAction(attacker, defender)
	if dealt != 100 {
		t.Fatalf("damage dealt = %d, want 100", dealt)
	}
	if !defender.Dead || defender.HP != 0 {
		t.Fatalf("defender should be dead at 0 HP, got %+v", defender)
	}
	if attacker.HP != attacker.MaxHP {
		t.Fatalf("dead defenders do not counterattack: attacker HP %d", attacker.HP)
	}
}

func TestSurvivingDefenderCounterattacks(t *testing.T) {
	bus := NewBus()
	c := &Combat{Bus: bus}
	attacker := units.NewUnit("a", units.ClassChopper, world.HexCoord{Q: 0, R: 0})
	defender := units.NewHostile("d", world.HexCoord{Q: 0, R: 1}, 50, 7, 1)

	dealt := c.ExecuteOneAction(attacker, defender)
	if dealt != attacker.AttackDamage {
		t.Fatalf("damage dealt = %d, want %d", dealt, attacker.AttackDamage)
	}
	if defender.HP != 50-attacker.AttackDamage {
		t.Fatalf("defender HP = %d", defender.HP)
	}
	if attacker.HP != attacker.MaxHP-7 {
		t.Fatalf("attacker should take counterattack damage: HP %d", attacker.HP)
	}
}

func TestCounterattackRespectsDefenderRange(t *testing.T) {
	c := &Combat{Bus: NewBus()}
	attacker := units.NewUnit("a", units.ClassHunter, world.HexCoord{Q: 0, R: 0})
	// Struct literal on purpose: a zero-range defender cannot reach back.
	defender := &units.Hostile{ID: "h", Name: "turret", Coord: world.HexCoord{Q: 1, R: 0}, HP: 50, MaxHP: 50, AttackDamage: 9, Range: 0}

	c.ExecuteOneAction(attacker, defender)
	if attacker.HP != attacker.MaxHP {
		t.Fatalf("out-of-range defender must not counterattack: attacker HP %d", attacker.HP)
	}
}

func TestCounterattackCanDefeatAttacker(t *testing.T) {
	bus := NewBus()
	var defeated []Event
	bus.Subscribe(func(e Event) {
		if e.Kind == EventUnitDefeated {
			defeated = append(defeated, e)
		}
	})
	c := &Combat{Bus: bus}
	attacker := units.NewUnit("a", units.ClassHunter, world.HexCoord{Q: 0, R: 0})
	attacker.HP = 3
	defender := units.NewHostile("d", world.HexCoord{Q: 1, R: 0}, 50, 10, 1)

	c.ExecuteOneAction(attacker, defender)
	if attacker.HP != 0 {
		t.Fatalf("attacker HP = %d, want 0 (clamped)", attacker.HP)
	}
	if len(defeated) != 1 {
		t.Fatalf("expected one unit-defeated event, got %d", len(defeated))
	}
}

func TestAttackRejections(t *testing.T) {
	c := &Combat{Bus: NewBus()}

	miner := units.NewUnit("m", units.ClassMiner, world.HexCoord{Q: 0, R: 0})
	adjacent := units.NewHostile("d", world.HexCoord{Q: 1, R: 0}, 20, 5, 1)
	if c.ExecuteOneAction(miner, adjacent) != 0 {
		t.Fatal("non-fighting class should deal 0")
	}
	if adjacent.HP != 20 {
		t.Fatal("rejected attack must not mutate the defender")
	}

	hunter := units.NewUnit("h", units.ClassHunter, world.HexCoord{Q: 0, R: 0})
	far := units.NewHostile("f", world.HexCoord{Q: 2, R: 0}, 20, 5, 1)
	if c.ExecuteOneAction(hunter, far) != 0 {
		t.Fatal("attack at distance 2 should deal 0")
	}

	dead := units.NewHostile("x", world.HexCoord{Q: 1, R: 0}, 20, 5, 1)
	dead.Dead = true
	if c.ExecuteOneAction(hunter, dead) != 0 {
		t.Fatal("attack on dead defender should deal 0")
	}

	if c.ExecuteOneAction(nil, adjacent) != 0 || c.ExecuteOneAction(hunter, nil) != 0 {
		t.Fatal("nil references should deal 0")
	}
}

func TestHostileDeathClearsTile(t *testing.T) {
	grid := world.NewGrid()
	grid.Initialize(3, 3, world.TerrainGrass)
	c := &Combat{Grid: grid, Bus: NewBus()}

	attacker := units.NewUnit("a", units.ClassHunter, world.HexCoord{Q: 0, R: 0})
	attacker.AttackDamage = 99
	defender := units.NewHostile("d", world.HexCoord{Q: 1, R: 0}, 10, 2, 1)
	grid.SetOccupant(defender.Coord, world.Occupant{Kind: world.OccupantHostile, ID: defender.ID})

	c.ExecuteOneAction(attacker, defender)
	if grid.IsOccupied(defender.Coord) {
		t.Fatal("defeated hostile should release its tile")
	}
}
