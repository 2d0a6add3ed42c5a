package world

import (
	"fmt"
	"log/slog"
)

// MaxGridSize caps each grid dimension.
const MaxGridSize = 20

// TileChange describes a tile mutation, delivered to grid observers.
type TileChange struct {
	Coord    HexCoord
	Terrain  Terrain
	Occupant Occupant
}

// Grid owns the bounded rectangular tile set for one level. Coordinates
// are valid iff 0 <= q < width and 0 <= r < height. The grid is created
// once per level and replaced wholesale on level transition.
type Grid struct {
	tiles     map[HexCoord]*Tile
	width     int
	height    int
	observers []func(TileChange)
}

// NewGrid creates an empty, uninitialized grid. Initialize must be called
// before any tile access; using an uninitialized grid is a programming
// error and panics.
func NewGrid() *Grid {
	return &Grid{}
}

// Initialize replaces the entire tile set with one tile per coordinate in
// the width x height rectangle, all with the default terrain and no
// occupant. Dimensions are clamped to [1, MaxGridSize].
func (g *Grid) Initialize(width, height int, defaultTerrain Terrain) {
	width = clampDim(width)
	height = clampDim(height)

	tiles := make(map[HexCoord]*Tile, width*height)
	for q := 0; q < width; q++ {
		for r := 0; r < height; r++ {
			coord := HexCoord{Q: q, R: r}
			tiles[coord] = &Tile{Coord: coord, Terrain: defaultTerrain}
		}
	}

	g.tiles = tiles
	g.width = width
	g.height = height
	slog.Debug("grid initialized",
		"width", width,
		"height", height,
		"terrain", TerrainName(defaultTerrain),
	)
}

// Width returns the grid width in tiles.
func (g *Grid) Width() int { return g.width }

// Height returns the grid height in tiles.
func (g *Grid) Height() int { return g.height }

// IsValid reports whether the coordinate falls inside the grid bounds.
func (g *Grid) IsValid(coord HexCoord) bool {
	return coord.Q >= 0 && coord.Q < g.width && coord.R >= 0 && coord.R < g.height
}

// Get returns the tile at the given coordinate. Out-of-range coordinates
// report false; a tile is never fabricated.
func (g *Grid) Get(coord HexCoord) (*Tile, bool) {
	g.mustBeInitialized()
	tile, ok := g.tiles[coord]
	return tile, ok
}

// SetTerrain updates the terrain of the tile at coord and notifies
// observers. Reports false for invalid coordinates.
func (g *Grid) SetTerrain(coord HexCoord, terrain Terrain) bool {
	g.mustBeInitialized()
	tile, ok := g.tiles[coord]
	if !ok {
		slog.Warn("set terrain rejected: invalid coordinate", "q", coord.Q, "r", coord.R)
		return false
	}
	tile.Terrain = terrain
	g.notify(tile)
	return true
}

// SetOccupant overwrites the occupant of the tile at coord (including
// clearing it with NoOccupant) and notifies observers. Reports false for
// invalid coordinates.
func (g *Grid) SetOccupant(coord HexCoord, occ Occupant) bool {
	g.mustBeInitialized()
	tile, ok := g.tiles[coord]
	if !ok {
		slog.Warn("set occupant rejected: invalid coordinate", "q", coord.Q, "r", coord.R)
		return false
	}
	tile.Occupant = occ
	g.notify(tile)
	return true
}

// IsOccupied reports whether a valid coordinate holds an occupant.
// Invalid coordinates report false.
func (g *Grid) IsOccupied(coord HexCoord) bool {
	tile, ok := g.Get(coord)
	return ok && !tile.Occupant.IsNone()
}

// Subscribe registers an observer for tile changes. Observers are invoked
// synchronously; the grid never depends on their behavior.
func (g *Grid) Subscribe(fn func(TileChange)) {
	g.observers = append(g.observers, fn)
}

// Tiles returns every tile in row-major (q, then r) order.
func (g *Grid) Tiles() []*Tile {
	g.mustBeInitialized()
	result := make([]*Tile, 0, len(g.tiles))
	for q := 0; q < g.width; q++ {
		for r := 0; r < g.height; r++ {
			result = append(result, g.tiles[HexCoord{Q: q, R: r}])
		}
	}
	return result
}

// OccupiedTiles returns every tile with a non-empty occupant.
func (g *Grid) OccupiedTiles() []*Tile {
	var result []*Tile
	for _, tile := range g.Tiles() {
		if !tile.Occupant.IsNone() {
			result = append(result, tile)
		}
	}
	return result
}

// TilesByTerrain returns every tile with the given terrain.
func (g *Grid) TilesByTerrain(terrain Terrain) []*Tile {
	var result []*Tile
	for _, tile := range g.Tiles() {
		if tile.Terrain == terrain {
			result = append(result, tile)
		}
	}
	return result
}

// TileCount returns the total number of tiles.
func (g *Grid) TileCount() int {
	return len(g.tiles)
}

// String returns a summary of the grid.
func (g *Grid) String() string {
	return fmt.Sprintf("Grid(%dx%d, tiles=%d)", g.width, g.height, len(g.tiles))
}

func (g *Grid) notify(tile *Tile) {
	change := TileChange{Coord: tile.Coord, Terrain: tile.Terrain, Occupant: tile.Occupant}
	for _, fn := range g.observers {
		fn(change)
	}
}

func (g *Grid) mustBeInitialized() {
	if g.tiles == nil {
		panic("world: grid used before Initialize")
	}
}

func clampDim(v int) int {
	if v < 1 {
		return 1
	}
	if v > MaxGridSize {
		return MaxGridSize
	}
	return v
}
