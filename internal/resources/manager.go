package resources

import (
	"errors"
	"log/slog"

	"github.com/talgya/hex-frontier/internal/world"
)

// ErrOccupied reports a placement onto a coordinate that already holds a node.
var ErrOccupied = errors.New("resources: coordinate already holds a node")

// ChangeKind tags manager notifications.
type ChangeKind uint8

const (
	NodePlaced ChangeKind = iota
	NodeDepleted
)

// Change is delivered to manager observers when a node is placed or removed.
type Change struct {
	Kind ChangeKind
	Node *Node
}

// Manager exclusively owns the set of live resource nodes, keyed by
// coordinate. Enumeration order is placement order, which keeps downstream
// iteration deterministic.
type Manager struct {
	nodes     map[world.HexCoord]*Node
	order     []*Node
	observers []func(Change)
}

// NewManager creates an empty resource manager.
func NewManager() *Manager {
	return &Manager{nodes: make(map[world.HexCoord]*Node)}
}

// Subscribe registers an observer for placement and depletion changes.
func (m *Manager) Subscribe(fn func(Change)) {
	m.observers = append(m.observers, fn)
}

// Place creates a node of the given type at coord using type defaults.
func (m *Manager) Place(coord world.HexCoord, t Type) (*Node, error) {
	return m.PlaceWithHP(coord, t, 0)
}

// PlaceWithHP creates a node with an explicit max HP override (0 keeps the
// type default). Fails when a node already exists at coord.
func (m *Manager) PlaceWithHP(coord world.HexCoord, t Type, hpOverride int) (*Node, error) {
	if _, exists := m.nodes[coord]; exists {
		slog.Warn("resource placement rejected: occupied",
			"type", TypeName(t), "q", coord.Q, "r", coord.R)
		return nil, ErrOccupied
	}
	node := NewNode(t, coord, hpOverride)
	m.nodes[coord] = node
	m.order = append(m.order, node)
	m.emit(Change{Kind: NodePlaced, Node: node})
	return node, nil
}

// Get returns the node at coord.
func (m *Manager) Get(coord world.HexCoord) (*Node, bool) {
	node, ok := m.nodes[coord]
	return node, ok
}

// ExistsAt reports whether a node is present at coord.
func (m *Manager) ExistsAt(coord world.HexCoord) bool {
	_, ok := m.nodes[coord]
	return ok
}

// Remove deletes the node at coord, emits a depletion change, and returns
// the removed node. Returns nil when no node is present.
func (m *Manager) Remove(coord world.HexCoord) *Node {
	node, ok := m.nodes[coord]
	if !ok {
		return nil
	}
	delete(m.nodes, coord)
	for i, n := range m.order {
		if n == node {
			m.order = append(m.order[:i], m.order[i+1:]...)
			break
		}
	}
	node.Exists = false
	m.emit(Change{Kind: NodeDepleted, Node: node})
	return node
}

// Clear removes every node without emitting depletion changes. Used on
// level transitions.
func (m *Manager) Clear() {
	m.nodes = make(map[world.HexCoord]*Node)
	m.order = nil
}

// All returns every live node in placement order.
func (m *Manager) All() []*Node {
	result := make([]*Node, len(m.order))
	copy(result, m.order)
	return result
}

// ByType returns every live node of the given type in placement order.
func (m *Manager) ByType(t Type) []*Node {
	var result []*Node
	for _, n := range m.order {
		if n.Type == t {
			result = append(result, n)
		}
	}
	return result
}

// Count returns the number of live nodes.
func (m *Manager) Count() int {
	return len(m.nodes)
}

// NearestOfType returns the live node of the given type closest to from,
// first-encountered winning ties. Returns nil when none exist.
func (m *Manager) NearestOfType(from world.HexCoord, t Type) *Node {
	var best *Node
	bestDist := 0
	for _, n := range m.order {
		if n.Type != t {
			continue
		}
		d := world.Distance(from, n.Coord)
		if best == nil || d < bestDist {
			best = n
			bestDist = d
		}
	}
	return best
}

// Nearest returns the live node closest to from regardless of type.
func (m *Manager) Nearest(from world.HexCoord) *Node {
	var best *Node
	bestDist := 0
	for _, n := range m.order {
		d := world.Distance(from, n.Coord)
		if best == nil || d < bestDist {
			best = n
			bestDist = d
		}
	}
	return best
}

// InRange returns every live node within radius of center.
func (m *Manager) InRange(center world.HexCoord, radius int) []*Node {
	var result []*Node
	for _, n := range m.order {
		if world.Distance(center, n.Coord) <= radius {
			result = append(result, n)
		}
	}
	return result
}

func (m *Manager) emit(c Change) {
	for _, fn := range m.observers {
		fn(c)
	}
}
