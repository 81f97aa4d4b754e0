// Package engine implements the day simulation: a seeded customer stream,
// greedy assignment of customers to birds under a patience window, atomic
// inventory consumption, and end-of-day settlement. One call runs a whole
// day to completion with no I/O and no intermediate observable state.
package engine

import (
	"github.com/shopspring/decimal"

	"github.com/talgya/birdcafe/internal/birds"
	"github.com/talgya/birdcafe/internal/config"
	"github.com/talgya/birdcafe/internal/economy"
)

// DayInput is everything one run consumes. Birds and Inventory are
// borrowed from the caller and mutated in place; the engine assumes
// exclusive access for the duration of the call. Independent games can
// run concurrently, each with its own input.
type DayInput struct {
	Seed       int64
	DayNumber  int
	DayName    string
	WeekNumber int

	WorkingIDs []string // Bird IDs scheduled to work today
	Birds      []*birds.Bird
	Inventory  *economy.Inventory

	Popularity      float64
	StartingBalance decimal.Decimal
	Config          *config.Config
}

// RunDay simulates one full day and returns its result. The same seed and
// the same starting snapshot always produce an identical result; all
// randomness flows through one generator in a fixed draw order (customer
// count jitter, then per-customer arrival and product, then per-bird
// sickness rolls).
//
// RunDay itself has no failure modes: a customer leaving unserved is an
// outcome, not an error. Phase preconditions are enforced by the caller
// before any state is touched.
func RunDay(in DayInput) *DayResult {
	rng := newRNG(in.Seed)
	cfg := in.Config

	res := &DayResult{
		DayNumber:  in.DayNumber,
		DayName:    in.DayName,
		WeekNumber: in.WeekNumber,
	}
	res.Economy.StartingMoney = in.StartingBalance
	res.Popularity.AtStart = in.Popularity

	working := make(map[string]bool, len(in.WorkingIDs))
	for _, id := range in.WorkingIDs {
		working[id] = true
	}

	var eligible []*birds.Bird
	for _, b := range in.Birds {
		if working[b.ID] && !b.SeverelySick {
			eligible = append(eligible, b)
		}
	}

	for _, b := range in.Birds {
		res.BirdSummaries = append(res.BirdSummaries, &BirdSummary{
			BirdID:        b.ID,
			BirdName:      b.Name,
			WorkedToday:   working[b.ID] && !b.SeverelySick,
			MoodAtStart:   b.Mood,
			HealthAtStart: b.Health,
			EnergyAtStart: b.Energy,
		})
	}

	customers := generateCustomers(rng, in.Popularity, cfg)
	res.Customers.Arrived = len(customers)

	sched := newScheduler(cfg, in.Inventory, eligible)
	sched.run(res, customers)

	for _, summary := range res.BirdSummaries {
		summary.CustomersServed = sched.servedBy[summary.BirdID]
	}

	settleDay(res, in, rng)
	return res
}
