// Package economy provides the game's resource ledger and upkeep schedule.
package economy

import "log/slog"

// UpkeepEscalationInterval is how many advanced turns raise upkeep by one.
const UpkeepEscalationInterval = 5

// DefaultLossRetention is the fraction of each stockpile kept after a
// defeat restart.
const DefaultLossRetention = 0.25

// Amount bundles a food/wood/gold delta or stockpile.
type Amount struct {
	Food int `json:"food"`
	Wood int `json:"wood"`
	Gold int `json:"gold"`
}

// Total sums the three components.
func (a Amount) Total() int {
	return a.Food + a.Wood + a.Gold
}

// Ledger is the explicit game-wide resource state: stockpiles, level and
// turn tracking, and the upkeep schedule. It is passed by reference into
// the orchestrator and engines; there are no package globals. All
// stockpile mutations clamp at zero.
type Ledger struct {
	food          int
	wood          int
	gold          int
	level         int
	upkeepPerTurn int
	turnCount     int

	initialUpkeep int
}

// NewLedger creates a ledger with the given starting stockpile and upkeep.
// Upkeep below 1 is raised to 1.
func NewLedger(start Amount, upkeepPerTurn int) *Ledger {
	if upkeepPerTurn < 1 {
		upkeepPerTurn = 1
	}
	l := &Ledger{level: 1, upkeepPerTurn: upkeepPerTurn, initialUpkeep: upkeepPerTurn}
	l.Add(start)
	return l
}

// Food returns the food stockpile.
func (l *Ledger) Food() int { return l.food }

// Wood returns the wood stockpile.
func (l *Ledger) Wood() int { return l.wood }

// Gold returns the gold stockpile.
func (l *Ledger) Gold() int { return l.gold }

// Level returns the current level, starting at 1.
func (l *Ledger) Level() int { return l.level }

// UpkeepPerTurn returns the current per-turn food upkeep.
func (l *Ledger) UpkeepPerTurn() int { return l.upkeepPerTurn }

// TurnCount returns the number of completed turns.
func (l *Ledger) TurnCount() int { return l.turnCount }

// Stockpile returns the current stockpile as an Amount.
func (l *Ledger) Stockpile() Amount {
	return Amount{Food: l.food, Wood: l.wood, Gold: l.gold}
}

// Add applies a delta to each stockpile, clamping each result at zero.
func (l *Ledger) Add(delta Amount) {
	l.food = clampZero(l.food + delta.Food)
	l.wood = clampZero(l.wood + delta.Wood)
	l.gold = clampZero(l.gold + delta.Gold)
}

// SetFood overwrites the food stockpile, clamped at zero.
func (l *Ledger) SetFood(v int) { l.food = clampZero(v) }

// SetWood overwrites the wood stockpile, clamped at zero.
func (l *Ledger) SetWood(v int) { l.wood = clampZero(v) }

// SetGold overwrites the gold stockpile, clamped at zero.
func (l *Ledger) SetGold(v int) { l.gold = clampZero(v) }

// CanAffordFood reports whether the food stockpile covers amount.
func (l *Ledger) CanAffordFood(amount int) bool { return amount >= 0 && l.food >= amount }

// CanAffordWood reports whether the wood stockpile covers amount.
func (l *Ledger) CanAffordWood(amount int) bool { return amount >= 0 && l.wood >= amount }

// CanAffordGold reports whether the gold stockpile covers amount.
func (l *Ledger) CanAffordGold(amount int) bool { return amount >= 0 && l.gold >= amount }

// SpendFood deducts amount from food. All-or-nothing: reports false and
// leaves the ledger unchanged when unaffordable.
func (l *Ledger) SpendFood(amount int) bool {
	if !l.CanAffordFood(amount) {
		return false
	}
	l.food -= amount
	return true
}

// SpendWood deducts amount from wood, all-or-nothing.
func (l *Ledger) SpendWood(amount int) bool {
	if !l.CanAffordWood(amount) {
		return false
	}
	l.wood -= amount
	return true
}

// SpendGold deducts amount from gold, all-or-nothing.
func (l *Ledger) SpendGold(amount int) bool {
	if !l.CanAffordGold(amount) {
		return false
	}
	l.gold -= amount
	return true
}

// PayUpkeep spends the current per-turn upkeep from food. Reports false
// and leaves the ledger unchanged when unaffordable; the caller decides
// what an unpaid upkeep means.
func (l *Ledger) PayUpkeep() bool {
	return l.SpendFood(l.upkeepPerTurn)
}

// AdvanceTurn increments the turn counter and escalates upkeep by one
// every UpkeepEscalationInterval turns.
func (l *Ledger) AdvanceTurn() {
	l.turnCount++
	if l.turnCount%UpkeepEscalationInterval == 0 {
		l.upkeepPerTurn++
		slog.Info("upkeep escalated", "turn", l.turnCount, "upkeep", l.upkeepPerTurn)
	}
}

// AdvanceLevel bumps the level counter on a level transition.
func (l *Ledger) AdvanceLevel() {
	l.level++
}

// ApplyLossPenalty multiplies each stockpile by retention, truncating
// toward zero. Retention outside (0,1] falls back to the default.
func (l *Ledger) ApplyLossPenalty(retention float64) {
	if retention <= 0 || retention > 1 {
		retention = DefaultLossRetention
	}
	l.food = int(float64(l.food) * retention)
	l.wood = int(float64(l.wood) * retention)
	l.gold = int(float64(l.gold) * retention)
	slog.Info("loss penalty applied",
		"retention", retention,
		"food", l.food, "wood", l.wood, "gold", l.gold,
	)
}

// Reset zeroes the stockpiles and restores level, turn count, and upkeep
// to their initial values.
func (l *Ledger) Reset() {
	l.food = 0
	l.wood = 0
	l.gold = 0
	l.level = 1
	l.turnCount = 0
	l.upkeepPerTurn = l.initialUpkeep
}

func clampZero(v int) int {
	if v < 0 {
		return 0
	}
	return v
}
