package game

import (
	"fmt"
	"math/rand/v2"
	"slices"
	"time"

	"github.com/shopspring/decimal"

	"github.com/talgya/birdcafe/internal/config"
	"github.com/talgya/birdcafe/internal/economy"
)

// SetInventoryOrder updates tomorrow's planned purchase quantity for one
// product. Evening phase only.
func (c *Controller) SetInventoryOrder(p config.Product, qty int) error {
	if c.phase != PhaseEvening {
		return fmt.Errorf("set inventory order in phase %s: %w", c.phase, ErrInvalidPhase)
	}
	if qty < 0 {
		qty = 0
	}
	c.state.Plan.Purchases[p] = qty
	return nil
}

// PlanCost previews the total cost of the current purchase plan. It uses
// the same product table as settlement, so the preview always matches
// what FinalizeDay will charge.
func (c *Controller) PlanCost() (decimal.Decimal, error) {
	if c.phase != PhaseEvening {
		return decimal.Zero, fmt.Errorf("plan cost in phase %s: %w", c.phase, ErrInvalidPhase)
	}
	return economy.PlanCost(&c.state.Config, c.state.Plan.Purchases), nil
}

// SetRoster toggles a bird's place in tomorrow's working set.
func (c *Controller) SetRoster(birdID string, working bool) error {
	if c.phase != PhaseEvening {
		return fmt.Errorf("set roster in phase %s: %w", c.phase, ErrInvalidPhase)
	}
	if c.state.Bird(birdID) == nil {
		return fmt.Errorf("set roster for %q: %w", birdID, ErrBirdNotFound)
	}

	plan := &c.state.Plan
	if working {
		if !slices.Contains(plan.WorkingIDs, birdID) {
			plan.WorkingIDs = append(plan.WorkingIDs, birdID)
		}
		plan.RestingIDs = remove(plan.RestingIDs, birdID)
	} else {
		if !slices.Contains(plan.RestingIDs, birdID) {
			plan.RestingIDs = append(plan.RestingIDs, birdID)
		}
		plan.WorkingIDs = remove(plan.WorkingIDs, birdID)
	}
	return nil
}

func remove(ids []string, id string) []string {
	if i := slices.Index(ids, id); i >= 0 {
		return slices.Delete(ids, i, i+1)
	}
	return ids
}

// FinalizeDay commits the plan: validates and pays for the restock,
// advances the calendar, prepares the next day's plan with a fresh seed,
// and moves to the next phase (reporting on Sundays, otherwise the day
// loop). Fails without mutation when funds are short.
func (c *Controller) FinalizeDay() error {
	if c.phase != PhaseEvening {
		return fmt.Errorf("finalize day in phase %s: %w", c.phase, ErrInvalidPhase)
	}

	s := c.state
	cost := economy.PlanCost(&s.Config, s.Plan.Purchases)
	if !s.Economy.CanAfford(cost) {
		return fmt.Errorf("restock costs %s with %s on hand: %w", cost, s.Economy.Balance, ErrInsufficientFunds)
	}

	if cost.IsPositive() {
		s.Economy.Record(s.DayNumber, cost.Neg(), "Inventory Restock", economy.CategoryInventoryRestock)
	}
	for p := config.Product(0); p < config.NumProducts; p++ {
		s.Inventory.Add(p, s.Plan.Purchases[p])
	}

	c.advanceCalendar()

	// Carry yesterday's roster forward so players aren't forced to
	// rebuild it every evening.
	s.Plan = DailyPlan{
		TargetDayNumber: s.DayNumber,
		Seed:            rand.Int64(),
		WorkingIDs:      slices.Clone(s.Plan.WorkingIDs),
	}

	if s.DayName == time.Sunday && s.DayNumber > 1 {
		c.phase = PhaseReporting
	} else {
		c.phase = PhaseDayLoop
	}
	return nil
}

func (c *Controller) advanceCalendar() {
	s := c.state
	s.DayNumber++
	s.DayName = (s.DayName + 1) % 7
	if s.DayName == time.Sunday {
		s.WeekNumber++
	}
}
