// Package engine provides the harvest and combat sub-action engines and
// the turn orchestration state machine.
package engine

// EventKind labels an observable core event.
type EventKind string

const (
	EventPhaseChanged       EventKind = "phase_changed"
	EventTurnStarted        EventKind = "turn_started"
	EventTurnEnded          EventKind = "turn_ended"
	EventRoundExecuted      EventKind = "round_executed"
	EventExecutionCompleted EventKind = "execution_completed"
	EventVictory            EventKind = "victory"
	EventGameOver           EventKind = "game_over"
	EventResourcePlaced     EventKind = "resource_placed"
	EventResourceDepleted   EventKind = "resource_depleted"
	EventHostileDefeated    EventKind = "hostile_defeated"
	EventUnitDefeated       EventKind = "unit_defeated"
)

// Event is a notable occurrence, stamped with the turn and round it
// happened in (round 0 = outside the execution loop).
type Event struct {
	Turn        int       `json:"turn"`
	Round       int       `json:"round"`
	Kind        EventKind `json:"kind"`
	Description string    `json:"description"`
}

// maxRetainedEvents bounds the bus's in-memory history.
const maxRetainedEvents = 1000

// Bus collects events and fans them out to registered observers. Observers
// run synchronously but the core never depends on their behavior; a
// presentation layer may also poll or drain the retained history instead.
type Bus struct {
	turn      int
	round     int
	events    []Event
	observers []func(Event)
}

// NewBus creates an empty event bus.
func NewBus() *Bus {
	return &Bus{}
}

// Subscribe registers an observer for every subsequent event.
func (b *Bus) Subscribe(fn func(Event)) {
	b.observers = append(b.observers, fn)
}

// SetTurn updates the turn stamp applied to subsequent events.
func (b *Bus) SetTurn(turn int) { b.turn = turn }

// SetRound updates the round stamp applied to subsequent events.
// Round 0 means "between rounds".
func (b *Bus) SetRound(round int) { b.round = round }

// Emit records an event stamped with the current turn and round and
// notifies observers.
func (b *Bus) Emit(kind EventKind, description string) {
	e := Event{Turn: b.turn, Round: b.round, Kind: kind, Description: description}
	b.events = append(b.events, e)
	if len(b.events) > maxRetainedEvents {
		b.events = b.events[len(b.events)-maxRetainedEvents:]
	}
	for _, fn := range b.observers {
		fn(e)
	}
}

// Events returns the retained event history, oldest first.
func (b *Bus) Events() []Event {
	result := make([]Event, len(b.events))
	copy(result, b.events)
	return result
}

// Drain returns the retained history and clears it. Used by collaborators
// that flush events to storage between turns.
func (b *Bus) Drain() []Event {
	result := b.events
	b.events = nil
	return result
}
