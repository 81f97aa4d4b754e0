// Package birds provides the worker (bird) data model and stat handling.
package birds

import "github.com/google/uuid"

// Bird is a cafe worker with bounded wellbeing stats and work stats.
// Wellbeing stats live on a 0–100 scale and are always clamped after
// mutation, never asserted.
type Bird struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Species string `json:"species"`
	Level   int    `json:"level"`

	// Wellbeing (0–100)
	Mood   float64 `json:"mood"`   // 0 = depressed, 100 = ecstatic
	Health float64 `json:"health"` // 0 = critical, 100 = perfect
	Hunger float64 `json:"hunger"` // 0 = starving, 100 = fully fed
	Energy float64 `json:"energy"` // 0 = exhausted, 100 = fully rested
	Stress float64 `json:"stress"` // 0 = calm, 100 = panic

	// Work stats
	Productivity float64 `json:"productivity"` // Service duration is 100/Productivity seconds
	Friendliness float64 `json:"friendliness"`
	Reliability  float64 `json:"reliability"`

	// Flags
	Sick           bool `json:"sick"`
	SeverelySick   bool `json:"severely_sick"` // Excluded from the roster entirely
	RestNextDay    bool `json:"rest_next_day"`
	WorkedLastDay  bool `json:"worked_last_day"`
}

// Clamp bounds v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// AdjustMood adds delta to Mood, clamped to [0,100].
func (b *Bird) AdjustMood(delta float64) { b.Mood = Clamp(b.Mood+delta, 0, 100) }

// AdjustHealth adds delta to Health, clamped to [0,100].
func (b *Bird) AdjustHealth(delta float64) { b.Health = Clamp(b.Health+delta, 0, 100) }

// AdjustHunger adds delta to Hunger, clamped to [0,100].
func (b *Bird) AdjustHunger(delta float64) { b.Hunger = Clamp(b.Hunger+delta, 0, 100) }

// AdjustEnergy adds delta to Energy, clamped to [0,100].
func (b *Bird) AdjustEnergy(delta float64) { b.Energy = Clamp(b.Energy+delta, 0, 100) }

// AdjustStress adds delta to Stress, clamped to [0,100].
func (b *Bird) AdjustStress(delta float64) { b.Stress = Clamp(b.Stress+delta, 0, 100) }

// NewStarterBird creates the bird every new game begins with.
func NewStarterBird() *Bird {
	return &Bird{
		ID:           uuid.NewString(),
		Name:         "Peep",
		Species:      "Sparrow_Standard",
		Level:        1,
		Mood:         80,
		Health:       100,
		Hunger:       100,
		Energy:       100,
		Stress:       0,
		Productivity: 20,
		Friendliness: 15,
		Reliability:  10,
	}
}
