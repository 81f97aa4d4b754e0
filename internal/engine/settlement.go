package engine

import (
	"math/rand/v2"
	"sort"

	"github.com/talgya/birdcafe/internal/birds"
	"github.com/talgya/birdcafe/internal/config"
	"github.com/talgya/birdcafe/internal/economy"
)

// settleDay runs the end-of-day pass: perishable write-off, financial
// aggregation, the popularity update, and per-bird decay/recovery and
// sickness rolls. Sickness draws come last in the run's RNG order, one
// per bird in roster order.
func settleDay(res *DayResult, in DayInput, rng *rand.Rand) {
	cfg := in.Config

	writeOffPerishables(res, in.Inventory, cfg)
	aggregateFinancials(res, cfg)

	delta := 0.0
	for _, t := range res.Transactions {
		delta += t.PopularityDelta
	}
	res.Popularity.AtEnd = birds.Clamp(res.Popularity.AtStart+delta, 0, 100)

	for i, b := range in.Birds {
		settleBird(res.BirdSummaries[i], b, cfg, rng)
	}

	// Failure and multi-stage service events are appended out of
	// chronological order during the pass; present them sorted.
	sort.SliceStable(res.Timeline, func(i, j int) bool {
		return res.Timeline[i].Time < res.Timeline[j].Time
	})
}

func writeOffPerishables(res *DayResult, inv *economy.Inventory, cfg *config.Config) {
	res.Customers.Wasted = inv.ZeroPerishables(cfg)
	res.Timeline = append(res.Timeline, TimelineEvent{
		Time:       cfg.DayDurationSeconds + 1,
		Type:       EventItemPerished,
		CustomerID: -1,
		Reason:     "EndOfDay",
	})
}

func aggregateFinancials(res *DayResult, cfg *config.Config) {
	for _, t := range res.Transactions {
		res.Economy.TotalRevenue = res.Economy.TotalRevenue.Add(t.Revenue)
	}
	res.Economy.EndingMoney = res.Economy.StartingMoney.Add(res.Economy.TotalRevenue)

	for p := config.Product(0); p < config.NumProducts; p++ {
		res.Economy.InventoryCost = res.Economy.InventoryCost.Add(economy.RestockCost(cfg, p, res.Customers.Sold[p]))
		res.Economy.WasteCost = res.Economy.WasteCost.Add(economy.RestockCost(cfg, p, res.Customers.Wasted[p]))
	}
	res.Economy.NetProfit = res.Economy.TotalRevenue.Sub(res.Economy.InventoryCost.Add(res.Economy.WasteCost))
}

func settleBird(summary *BirdSummary, b *birds.Bird, cfg *config.Config, rng *rand.Rand) {
	// Living costs apply whether or not the bird worked.
	b.AdjustHunger(-cfg.DailyHungerDecay)
	b.AdjustMood(-cfg.DailyMoodDecay)

	if !summary.WorkedToday {
		b.AdjustEnergy(cfg.RestEnergyRecovery)
		b.AdjustStress(-cfg.RestStressRelief)
	}

	if rng.Float64() < sicknessChance(cfg, b) {
		b.Sick = true
		summary.BecameSick = true
		b.AdjustHealth(-cfg.SicknessHealthPenalty)
	}

	b.WorkedLastDay = summary.WorkedToday
	summary.MoodAtEnd = b.Mood
	summary.HealthAtEnd = b.Health
	summary.EnergyAtEnd = b.Energy
}

// sicknessChance compounds the baseline with the low-hunger and low-energy
// multipliers; both apply when both thresholds are crossed.
func sicknessChance(cfg *config.Config, b *birds.Bird) float64 {
	chance := cfg.BaselineSicknessChance
	if b.Hunger < 20 {
		chance *= cfg.LowHungerSicknessMultiplier
	}
	if b.Energy < 10 {
		chance *= cfg.LowEnergySicknessMultiplier
	}
	return chance
}
