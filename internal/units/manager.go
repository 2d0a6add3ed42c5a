package units

import (
	"github.com/talgya/hex-frontier/internal/world"
)

// Manager exclusively owns the player unit roster. All() preserves
// insertion order, which is the stable unit order the turn loop iterates.
type Manager struct {
	units    []*Unit
	byID     map[string]*Unit
	selected *Unit
}

// NewManager creates an empty unit roster.
func NewManager() *Manager {
	return &Manager{byID: make(map[string]*Unit)}
}

// Add inserts a unit. Units with duplicate IDs are rejected.
func (m *Manager) Add(u *Unit) bool {
	if u == nil || u.ID == "" {
		return false
	}
	if _, exists := m.byID[u.ID]; exists {
		return false
	}
	m.units = append(m.units, u)
	m.byID[u.ID] = u
	return true
}

// Remove deletes the unit with the given ID and returns it, or nil.
func (m *Manager) Remove(id string) *Unit {
	u, ok := m.byID[id]
	if !ok {
		return nil
	}
	delete(m.byID, id)
	for i, cur := range m.units {
		if cur == u {
			m.units = append(m.units[:i], m.units[i+1:]...)
			break
		}
	}
	if m.selected == u {
		m.selected = nil
	}
	return u
}

// Get returns the unit with the given ID.
func (m *Manager) Get(id string) (*Unit, bool) {
	u, ok := m.byID[id]
	return u, ok
}

// At returns the unit standing on coord.
func (m *Manager) At(coord world.HexCoord) (*Unit, bool) {
	for _, u := range m.units {
		if u.Coord == coord {
			return u, true
		}
	}
	return nil, false
}

// All returns the roster in insertion order.
func (m *Manager) All() []*Unit {
	result := make([]*Unit, len(m.units))
	copy(result, m.units)
	return result
}

// Count returns the roster size.
func (m *Manager) Count() int {
	return len(m.units)
}

// AliveCount returns the number of units with positive HP.
func (m *Manager) AliveCount() int {
	count := 0
	for _, u := range m.units {
		if u.Alive() {
			count++
		}
	}
	return count
}

// Select marks the unit with the given ID as selected.
func (m *Manager) Select(id string) bool {
	u, ok := m.byID[id]
	if !ok {
		return false
	}
	m.selected = u
	return true
}

// Selected returns the currently selected unit, or nil.
func (m *Manager) Selected() *Unit {
	return m.selected
}

// ClearSelection drops the selection.
func (m *Manager) ClearSelection() {
	m.selected = nil
}

// Clear empties the roster. Used on level transitions.
func (m *Manager) Clear() {
	m.units = nil
	m.byID = make(map[string]*Unit)
	m.selected = nil
}

// HostileManager exclusively owns the hostile roster.
type HostileManager struct {
	hostiles []*Hostile
	byID     map[string]*Hostile
}

// NewHostileManager creates an empty hostile roster.
func NewHostileManager() *HostileManager {
	return &HostileManager{byID: make(map[string]*Hostile)}
}

// Add inserts a hostile. Duplicate IDs are rejected.
func (m *HostileManager) Add(h *Hostile) bool {
	if h == nil || h.ID == "" {
		return false
	}
	if _, exists := m.byID[h.ID]; exists {
		return false
	}
	m.hostiles = append(m.hostiles, h)
	m.byID[h.ID] = h
	return true
}

// Remove deletes the hostile with the given ID and returns it, or nil.
func (m *HostileManager) Remove(id string) *Hostile {
	h, ok := m.byID[id]
	if !ok {
		return nil
	}
	delete(m.byID, id)
	for i, cur := range m.hostiles {
		if cur == h {
			m.hostiles = append(m.hostiles[:i], m.hostiles[i+1:]...)
			break
		}
	}
	return h
}

// Get returns the hostile with the given ID.
func (m *HostileManager) Get(id string) (*Hostile, bool) {
	h, ok := m.byID[id]
	return h, ok
}

// At returns the hostile standing on coord.
func (m *HostileManager) At(coord world.HexCoord) (*Hostile, bool) {
	for _, h := range m.hostiles {
		if h.Coord == coord {
			return h, true
		}
	}
	return nil, false
}

// All returns the roster in insertion order, dead hostiles included.
func (m *HostileManager) All() []*Hostile {
	result := make([]*Hostile, len(m.hostiles))
	copy(result, m.hostiles)
	return result
}

// Count returns the roster size, dead hostiles included.
func (m *HostileManager) Count() int {
	return len(m.hostiles)
}

// AliveCount returns the number of hostiles still fighting.
func (m *HostileManager) AliveCount() int {
	count := 0
	for _, h := range m.hostiles {
		if h.Alive() {
			count++
		}
	}
	return count
}

// NearestAlive returns the living hostile closest to from, or nil.
// First-encountered wins ties.
func (m *HostileManager) NearestAlive(from world.HexCoord) *Hostile {
	var best *Hostile
	bestDist := 0
	for _, h := range m.hostiles {
		if !h.Alive() {
			continue
		}
		d := world.Distance(from, h.Coord)
		if best == nil || d < bestDist {
			best = h
			bestDist = d
		}
	}
	return best
}

// Clear empties the roster. Used on level transitions.
func (m *HostileManager) Clear() {
	m.hostiles = nil
	m.byID = make(map[string]*Hostile)
}
