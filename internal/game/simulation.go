package game

import (
	"fmt"
	"log/slog"

	"github.com/talgya/birdcafe/internal/economy"
	"github.com/talgya/birdcafe/internal/engine"
)

// RunDaySimulation executes today's simulation. It is only legal in the
// day-loop phase; a refused call mutates nothing. On success the flock
// and inventory have been updated in place, revenue is booked to the
// ledger, popularity is written back, and the result is appended to
// history.
func (c *Controller) RunDaySimulation() (*engine.DayResult, error) {
	if c.phase != PhaseDayLoop {
		return nil, fmt.Errorf("run day simulation in phase %s: %w", c.phase, ErrInvalidPhase)
	}

	s := c.state
	res := engine.RunDay(engine.DayInput{
		Seed:            s.Plan.Seed,
		DayNumber:       s.DayNumber,
		DayName:         s.DayName.String(),
		WeekNumber:      s.WeekNumber,
		WorkingIDs:      s.Plan.WorkingIDs,
		Birds:           s.Birds,
		Inventory:       &s.Inventory,
		Popularity:      s.Popularity,
		StartingBalance: s.Economy.Balance,
		Config:          &s.Config,
	})

	s.Popularity = res.Popularity.AtEnd
	if res.Economy.TotalRevenue.IsPositive() {
		s.Economy.Record(s.DayNumber, res.Economy.TotalRevenue, "Daily sales", economy.CategorySales)
	}
	s.History = append(s.History, res)

	slog.Info("day simulated",
		"day", res.DayNumber,
		"arrived", res.Customers.Arrived,
		"served", res.Customers.Served,
		"lost_wait", res.Customers.LeftUnhappy,
		"lost_stock", res.Customers.LeftNoStock,
		"revenue", res.Economy.TotalRevenue,
		"popularity", res.Popularity.AtEnd,
	)
	return res, nil
}

// AdvanceFromSimulation moves the session into the evening phase once the
// day's result has been reviewed.
func (c *Controller) AdvanceFromSimulation() error {
	if c.phase != PhaseDayLoop {
		return fmt.Errorf("advance from simulation in phase %s: %w", c.phase, ErrInvalidPhase)
	}
	c.phase = PhaseEvening
	return nil
}
