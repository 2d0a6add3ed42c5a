package engine

import (
	"github.com/talgya/hex-frontier/internal/units"
	"github.com/talgya/hex-frontier/internal/world"
)

// Status is a read-only snapshot of the game for collaborators: loggers,
// recorders, or a future observation surface.
type Status struct {
	Phase         string         `json:"phase"`
	Turn          int            `json:"turn"`
	Level         int            `json:"level"`
	Food          int            `json:"food"`
	Wood          int            `json:"wood"`
	Gold          int            `json:"gold"`
	Upkeep        int            `json:"upkeep"`
	Units         []UnitStatus   `json:"units"`
	HostilesAlive int            `json:"hostiles_alive"`
	HostilesTotal int            `json:"hostiles_total"`
	Resources     int            `json:"resources"`
	GridWidth     int            `json:"grid_width"`
	GridHeight    int            `json:"grid_height"`
}

// UnitStatus is one unit's slice of the snapshot.
type UnitStatus struct {
	ID    string         `json:"id"`
	Name  string         `json:"name"`
	Class string         `json:"class"`
	HP    int            `json:"hp"`
	MaxHP int            `json:"max_hp"`
	Coord world.HexCoord `json:"coord"`
}

// Status builds a snapshot of the current game state.
func (g *Game) Status() Status {
	st := Status{
		Phase:         g.Turns.Phase().String(),
		Turn:          g.Turns.Turn(),
		Level:         g.Ledger.Level(),
		Food:          g.Ledger.Food(),
		Wood:          g.Ledger.Wood(),
		Gold:          g.Ledger.Gold(),
		Upkeep:        g.Ledger.UpkeepPerTurn(),
		HostilesAlive: g.Hostiles.AliveCount(),
		HostilesTotal: g.Hostiles.Count(),
		Resources:     g.Resources.Count(),
		GridWidth:     g.Grid.Width(),
		GridHeight:    g.Grid.Height(),
	}
	for _, u := range g.Units.All() {
		st.Units = append(st.Units, UnitStatus{
			ID:    u.ID,
			Name:  u.Name,
			Class: units.ClassName(u.Class),
			HP:    u.HP,
			MaxHP: u.MaxHP,
			Coord: u.Coord,
		})
	}
	return st
}
