package units

import (
	"testing"

	"github.com/talgya/hex-frontier/internal/resources"
	"github.com/talgya/hex-frontier/internal/world"
)

func TestClassDefaults(t *testing.T) {
	u := NewUnit("Aldric", ClassChopper, world.HexCoord{Q: 1, R: 1})
	if u.ID == "" {
		t.Fatal("expected generated ID")
	}
	if u.HP != 30 || u.MaxHP != 30 || u.WorkPerAction != 5 || u.AttackDamage != 6 {
		t.Fatalf("unexpected chopper stats: %+v", u)
	}
	if !u.Abilities.CanChop || u.Abilities.CanHunt || u.Abilities.CanMine {
		t.Fatalf("unexpected chopper abilities: %+v", u.Abilities)
	}
	if u.InteractionRange != 1 {
		t.Fatalf("interaction range %d, want 1", u.InteractionRange)
	}

	all := NewUnit("Wren", ClassAllrounder, world.HexCoord{})
	if !all.Abilities.CanHunt || !all.Abilities.CanChop || !all.Abilities.CanMine {
		t.Fatalf("allrounder should have every ability: %+v", all.Abilities)
	}
}

func TestFightingEligibility(t *testing.T) {
	cases := []struct {
		class Class
		want  bool
	}{
		{ClassHunter, true},
		{ClassChopper, true},
		{ClassMiner, false},
		{ClassAllrounder, false},
	}
	for _, tc := range cases {
		u := NewUnit("x", tc.class, world.HexCoord{})
		if u.CanFight() != tc.want {
			t.Fatalf("%s CanFight = %v, want %v", ClassName(tc.class), u.CanFight(), tc.want)
		}
	}
}

func TestCanHarvestMapping(t *testing.T) {
	miner := NewUnit("m", ClassMiner, world.HexCoord{})
	if !miner.CanHarvest(resources.TypeRock) || !miner.CanHarvest(resources.TypeGoldDeposit) {
		t.Fatal("miner should mine rock and gold deposits")
	}
	if miner.CanHarvest(resources.TypeTree) || miner.CanHarvest(resources.TypeSheep) {
		t.Fatal("miner should not chop or hunt")
	}
}

func TestAssignmentsAreMutuallyExclusive(t *testing.T) {
	u := NewUnit("u", ClassHunter, world.HexCoord{})
	node := resources.NewNode(resources.TypeSheep, world.HexCoord{Q: 1, R: 0}, 0)
	hostile := NewHostile("wolf", world.HexCoord{Q: 0, R: 1}, 15, 4, 1)

	u.AssignResource(node)
	if u.AssignedResource != node || u.AssignedHostile != nil {
		t.Fatal("resource assignment broken")
	}
	u.AssignHostile(hostile)
	if u.AssignedHostile != hostile || u.AssignedResource != nil {
		t.Fatal("hostile assignment should displace the resource intent")
	}
	u.ClearAssignment()
	if u.AssignedHostile != nil || u.AssignedResource != nil {
		t.Fatal("clear should drop both intents")
	}
}

func TestManagerRosterAndSelection(t *testing.T) {
	m := NewManager()
	a := NewUnit("a", ClassHunter, world.HexCoord{Q: 0, R: 0})
	b := NewUnit("b", ClassMiner, world.HexCoord{Q: 1, R: 0})

	if !m.Add(a) || !m.Add(b) {
		t.Fatal("add failed")
	}
	if m.Add(a) {
		t.Fatal("duplicate add should fail")
	}
	if got := m.All(); len(got) != 2 || got[0] != a || got[1] != b {
		t.Fatalf("roster order broken: %v", got)
	}
	if u, ok := m.At(world.HexCoord{Q: 1, R: 0}); !ok || u != b {
		t.Fatal("At lookup failed")
	}

	if !m.Select(a.ID) || m.Selected() != a {
		t.Fatal("selection failed")
	}
	if m.Remove(a.ID) != a {
		t.Fatal("remove failed")
	}
	if m.Selected() != nil {
		t.Fatal("removing the selected unit should clear selection")
	}
	if m.Count() != 1 {
		t.Fatalf("count %d, want 1", m.Count())
	}
}

func TestHostileAliveSemantics(t *testing.T) {
	h := NewHostile("boar", world.HexCoord{}, 10, 3, 1)
	if !h.Alive() {
		t.Fatal("fresh hostile should be alive")
	}
	h.HP = 0
	if h.Alive() {
		t.Fatal("zero HP hostile should be dead")
	}
	h.HP = 5
	h.Dead = true
	if h.Alive() {
		t.Fatal("dead-flagged hostile should not count as alive")
	}

	var nilHostile *Hostile
	if nilHostile.Alive() {
		t.Fatal("nil hostile should not be alive")
	}
}

func TestHostileManagerAliveCountAndNearest(t *testing.T) {
	m := NewHostileManager()
	near := NewHostile("near", world.HexCoord{Q: 1, R: 0}, 10, 2, 1)
	far := NewHostile("far", world.HexCoord{Q: 5, R: 5}, 10, 2, 1)
	m.Add(near)
	m.Add(far)

	if m.AliveCount() != 2 {
		t.Fatalf("alive count %d, want 2", m.AliveCount())
	}
	if m.NearestAlive(world.HexCoord{}) != near {
		t.Fatal("nearest alive lookup failed")
	}

	near.Dead = true
	if m.AliveCount() != 1 {
		t.Fatalf("alive count %d, want 1", m.AliveCount())
	}
	if m.NearestAlive(world.HexCoord{}) != far {
		t.Fatal("dead hostile should be skipped")
	}
	if m.Count() != 2 {
		t.Fatal("dead hostiles remain in the roster")
	}
}
