// Package world provides the hex grid, terrain, and spatial data structures.
// Uses axial coordinates (q, r) for the hex grid; the third cube coordinate
// s is derived as s = -q - r.
package world

import "math"

// HexCoord represents a position on the hex grid using axial coordinates.
type HexCoord struct {
	Q int `json:"q"`
	R int `json:"r"`
}

// S returns the implicit third cube coordinate.
func (h HexCoord) S() int {
	return -h.Q - h.R
}

// Add returns the component-wise sum of two coordinates.
func (h HexCoord) Add(other HexCoord) HexCoord {
	return HexCoord{Q: h.Q + other.Q, R: h.R + other.R}
}

// Scale multiplies both components by k.
func (h HexCoord) Scale(k int) HexCoord {
	return HexCoord{Q: h.Q * k, R: h.R * k}
}

// NeighborDirections defines the six neighbor offsets in axial coordinates.
// The order is fixed and gameplay-visible: east, northeast, northwest,
// west, southwest, southeast on a flat-top layout.
var NeighborDirections = [6]HexCoord{
	{Q: 1, R: 0},
	{Q: 1, R: -1},
	{Q: 0, R: -1},
	{Q: -1, R: 0},
	{Q: -1, R: 1},
	{Q: 0, R: 1},
}

// Neighbor returns the adjacent coordinate in the given direction (0..5).
// Directions outside that range wrap around.
func (h HexCoord) Neighbor(dir int) HexCoord {
	dir %= 6
	if dir < 0 {
		dir += 6
	}
	return h.Add(NeighborDirections[dir])
}

// Neighbors returns the six adjacent hex coordinates in direction order.
func (h HexCoord) Neighbors() [6]HexCoord {
	var result [6]HexCoord
	for i, dir := range NeighborDirections {
		result[i] = h.Add(dir)
	}
	return result
}

// Distance returns the hex distance between two coordinates:
// half the sum of the absolute cube-coordinate differences.
func Distance(a, b HexCoord) int {
	dq := abs(a.Q - b.Q)
	ds := abs(a.S() - b.S())
	dr := abs(a.R - b.R)
	return (dq + ds + dr) / 2
}

// Range returns every coordinate within the given radius of center,
// including center itself, as a hexagonal flood.
func Range(center HexCoord, radius int) []HexCoord {
	if radius < 0 {
		return nil
	}
	result := make([]HexCoord, 0, 1+3*radius*(radius+1))
	for dq := -radius; dq <= radius; dq++ {
		lo := maxInt(-radius, -dq-radius)
		hi := minInt(radius, -dq+radius)
		for dr := lo; dr <= hi; dr++ {
			result = append(result, HexCoord{Q: center.Q + dq, R: center.R + dr})
		}
	}
	return result
}

// Ring returns the coordinates at exactly the given radius from center,
// walking the six edges of the hexagon. Radius 0 yields just the center.
func Ring(center HexCoord, radius int) []HexCoord {
	if radius < 0 {
		return nil
	}
	if radius == 0 {
		return []HexCoord{center}
	}
	result := make([]HexCoord, 0, 6*radius)
	// Start at center + (-radius, radius): the southwest direction scaled.
	cur := center.Add(NeighborDirections[4].Scale(radius))
	for dir := 0; dir < 6; dir++ {
		for step := 0; step < radius; step++ {
			result = append(result, cur)
			cur = cur.Neighbor(dir)
		}
	}
	return result
}

// Line returns the coordinates on the straight line from a to b inclusive,
// computed by linear interpolation in cube space with one sample per unit
// of distance, each rounded to the nearest hex.
func Line(a, b HexCoord) []HexCoord {
	dist := Distance(a, b)
	result := make([]HexCoord, 0, dist+1)
	if dist == 0 {
		return append(result, a)
	}
	ax, ay, az := float64(a.Q), float64(a.S()), float64(a.R)
	bx, by, bz := float64(b.Q), float64(b.S()), float64(b.R)
	for i := 0; i <= dist; i++ {
		t := float64(i) / float64(dist)
		result = append(result, roundCube(
			ax+(bx-ax)*t,
			ay+(by-ay)*t,
			az+(bz-az)*t,
		))
	}
	return result
}

// roundCube rounds fractional cube coordinates to the nearest hex.
// The component with the largest rounding error is recomputed so that
// x+y+z = 0 still holds.
func roundCube(x, y, z float64) HexCoord {
	rx := math.Round(x)
	ry := math.Round(y)
	rz := math.Round(z)

	dx := math.Abs(rx - x)
	dy := math.Abs(ry - y)
	dz := math.Abs(rz - z)

	switch {
	case dx > dy && dx > dz:
		rx = -ry - rz
	case dy > dz:
		ry = -rx - rz
	default:
		rz = -rx - ry
	}
	return HexCoord{Q: int(rx), R: int(rz)}
}

// ToPixel projects a hex coordinate to pixel space using a flat-top layout
// with the given hex size. Exposed for presentation layers; gameplay logic
// does not depend on it.
func ToPixel(h HexCoord, size float64) (x, y float64) {
	x = size * 1.5 * float64(h.Q)
	y = size * (math.Sqrt(3)/2*float64(h.Q) + math.Sqrt(3)*float64(h.R))
	return x, y
}

// FromPixel inverts ToPixel, rounding to the nearest hex.
func FromPixel(x, y float64, size float64) HexCoord {
	q := (2.0 / 3.0) * x / size
	r := (-1.0/3.0*x + math.Sqrt(3)/3.0*y) / size
	return roundCube(q, -q-r, r)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
