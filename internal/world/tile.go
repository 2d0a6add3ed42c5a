package world

// Terrain types for hex tiles.
type Terrain uint8

const (
	TerrainEmpty Terrain = iota
	TerrainGrass
	TerrainFlower
	TerrainHill
	TerrainMountain
	TerrainWater
	TerrainForest
	TerrainSand
	TerrainIce
	TerrainStone
)

// TerrainName returns a human-readable terrain name.
func TerrainName(t Terrain) string {
	switch t {
	case TerrainEmpty:
		return "empty"
	case TerrainGrass:
		return "grass"
	case TerrainFlower:
		return "flower"
	case TerrainHill:
		return "hill"
	case TerrainMountain:
		return "mountain"
	case TerrainWater:
		return "water"
	case TerrainForest:
		return "forest"
	case TerrainSand:
		return "sand"
	case TerrainIce:
		return "ice"
	case TerrainStone:
		return "stone"
	}
	return "unknown"
}

// TerrainByName resolves a terrain name to its value. Unknown names
// report false.
func TerrainByName(name string) (Terrain, bool) {
	for t := TerrainEmpty; t <= TerrainStone; t++ {
		if TerrainName(t) == name {
			return t, true
		}
	}
	return TerrainEmpty, false
}

// OccupantKind tags what sort of entity occupies a tile.
type OccupantKind uint8

const (
	OccupantNone OccupantKind = iota
	OccupantUnit
	OccupantHostile
	OccupantOpaque // anything else a collaborator parks on a tile
)

// Occupant is a non-owning reference to the entity standing on a tile.
// The ID resolves against whichever manager owns entities of that kind;
// the tile never owns the referenced entity.
type Occupant struct {
	Kind OccupantKind `json:"kind"`
	ID   string       `json:"id,omitempty"`
}

// NoOccupant clears a tile's occupant.
var NoOccupant = Occupant{}

// IsNone reports whether the occupant reference is empty.
func (o Occupant) IsNone() bool {
	return o.Kind == OccupantNone
}

// Tile is a single cell of the grid. The occupant field is the single
// source of truth for "is this coordinate occupied"; whoever moves or
// removes an entity must update the tile and the entity position together.
type Tile struct {
	Coord    HexCoord `json:"coord"`
	Terrain  Terrain  `json:"terrain"`
	Occupant Occupant `json:"occupant"`
}
