package game

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/talgya/birdcafe/internal/config"
)

// WeeklySummary aggregates one week's stored day results.
type WeeklySummary struct {
	WeekNumber     int `json:"week_number"`
	StartDayNumber int `json:"start_day_number"`
	EndDayNumber   int `json:"end_day_number"`

	TotalIncome            decimal.Decimal `json:"total_income"`
	TotalInventoryExpenses decimal.Decimal `json:"total_inventory_expenses"`
	TotalWasteExpenses     decimal.Decimal `json:"total_waste_expenses"`
	NetProfit              decimal.Decimal `json:"net_profit"`

	AvgBirdHealth float64 `json:"avg_bird_health"`
	AvgBirdMood   float64 `json:"avg_bird_mood"`

	TotalPopularityChange float64 `json:"total_popularity_change"`
	AvgCustomersPerDay    float64 `json:"avg_customers_per_day"`

	Narrative string `json:"narrative"`
}

// WeeklyReport aggregates the stored day results for the given week. Day
// results are keyed by week at simulation time, which makes them the
// simplest reliable source of truth for the report.
func (c *Controller) WeeklyReport(weekNumber int) *WeeklySummary {
	s := c.state

	summary := &WeeklySummary{WeekNumber: weekNumber}
	arrived := 0
	days := 0
	for _, d := range s.History {
		if d.WeekNumber != weekNumber {
			continue
		}
		days++
		if summary.StartDayNumber == 0 || d.DayNumber < summary.StartDayNumber {
			summary.StartDayNumber = d.DayNumber
		}
		if d.DayNumber > summary.EndDayNumber {
			summary.EndDayNumber = d.DayNumber
		}
		summary.TotalIncome = summary.TotalIncome.Add(d.Economy.TotalRevenue)
		summary.TotalInventoryExpenses = summary.TotalInventoryExpenses.Add(d.Economy.InventoryCost)
		summary.TotalWasteExpenses = summary.TotalWasteExpenses.Add(d.Economy.WasteCost)
		summary.NetProfit = summary.NetProfit.Add(d.Economy.NetProfit)
		summary.TotalPopularityChange += d.Popularity.Delta()
		arrived += d.Customers.Arrived
	}
	if days > 0 {
		summary.AvgCustomersPerDay = float64(arrived) / float64(days)
	}

	if len(s.Birds) > 0 {
		var health, mood float64
		for _, b := range s.Birds {
			health += b.Health
			mood += b.Mood
		}
		summary.AvgBirdHealth = health / float64(len(s.Birds))
		summary.AvgBirdMood = mood / float64(len(s.Birds))
	}

	summary.Narrative = narrative(summary)
	return summary
}

func narrative(w *WeeklySummary) string {
	switch {
	case w.NetProfit.IsNegative():
		return "We lost money this week. We need to cut costs."
	case w.AvgBirdHealth < 40:
		return "Profits are okay, but the birds are exhausted."
	case w.NetProfit.GreaterThan(decimal.NewFromInt(500)):
		return "An outstanding week! The birds are happy and rich."
	}
	return "The cafe ran smoothly."
}

// AdvanceFromReporting returns to the day loop after the weekly report.
func (c *Controller) AdvanceFromReporting() error {
	if c.phase != PhaseReporting {
		return fmt.Errorf("advance from reporting in phase %s: %w", c.phase, ErrInvalidPhase)
	}
	c.phase = PhaseDayLoop
	return nil
}

// GameOver reports whether the run has reached a losing state: bankruptcy
// with nothing to sell, or total popularity collapse.
func (c *Controller) GameOver() bool {
	s := c.state

	minCost := s.Config.Product(config.ProductCoffee).Price.Add(s.Config.BirdFoodCost)
	if s.Economy.Balance.LessThan(minCost) && s.Inventory.Quantity(config.ProductCoffee) == 0 {
		return true
	}
	return s.Popularity <= 0
}
