package game

import (
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/talgya/birdcafe/internal/config"
	"github.com/talgya/birdcafe/internal/economy"
)

func newTestGame(t *testing.T) (*Controller, *Save) {
	t.Helper()
	c := NewController()
	s := c.NewGame("TestPlayer", "TestCafe")
	return c, s
}

func TestNewGameDefaults(t *testing.T) {
	c, s := newTestGame(t)

	if c.Phase() != PhaseDayLoop {
		t.Errorf("phase = %s, want DayLoop", c.Phase())
	}
	if s.DayNumber != 1 || s.DayName != time.Monday || s.WeekNumber != 1 {
		t.Errorf("calendar = day %d %s week %d, want day 1 Monday week 1", s.DayNumber, s.DayName, s.WeekNumber)
	}
	if len(s.Birds) != 1 || s.Birds[0].Name != "Peep" {
		t.Fatalf("flock = %v, want just Peep", s.Birds)
	}
	if got := s.Inventory.Quantity(config.ProductCoffee); got != s.Config.DefaultDay1Coffee {
		t.Errorf("day-1 coffee = %d, want %d", got, s.Config.DefaultDay1Coffee)
	}
	if !s.Economy.Balance.Equal(s.Config.StartingFunds) {
		t.Errorf("balance = %s, want %s", s.Economy.Balance, s.Config.StartingFunds)
	}
	if len(s.Plan.WorkingIDs) != 1 || s.Plan.WorkingIDs[0] != s.Birds[0].ID {
		t.Errorf("plan roster = %v, want the starter bird", s.Plan.WorkingIDs)
	}
}

func TestLoadGameNil(t *testing.T) {
	c := NewController()
	if err := c.LoadGame(nil); !errors.Is(err, ErrNoSave) {
		t.Errorf("err = %v, want ErrNoSave", err)
	}
}

func TestRunDaySimulationProducesResult(t *testing.T) {
	c, s := newTestGame(t)
	s.Plan.Seed = 42

	res, err := c.RunDaySimulation()
	if err != nil {
		t.Fatalf("RunDaySimulation: %v", err)
	}
	if len(res.Timeline) == 0 {
		t.Error("timeline is empty")
	}
	if res.Customers.Arrived == 0 {
		t.Error("no customers arrived")
	}
	if s.Economy.Balance.LessThan(res.Economy.StartingMoney) {
		t.Errorf("balance shrank during the day: %s < %s", s.Economy.Balance, res.Economy.StartingMoney)
	}
	if len(s.History) != 1 {
		t.Errorf("history length = %d, want 1", len(s.History))
	}
	if s.Popularity != res.Popularity.AtEnd {
		t.Errorf("popularity %v not written back from result %v", s.Popularity, res.Popularity.AtEnd)
	}
}

func TestRunDaySimulationAttributesCustomersToBird(t *testing.T) {
	c, s := newTestGame(t)
	s.Plan.Seed = 42

	res, err := c.RunDaySimulation()
	if err != nil {
		t.Fatalf("RunDaySimulation: %v", err)
	}
	if res.Customers.Served == 0 {
		t.Fatal("expected at least one served customer with full coffee stock")
	}

	var peep int
	for _, summary := range res.BirdSummaries {
		if summary.BirdName == "Peep" {
			if !summary.WorkedToday {
				t.Error("Peep should be marked as working")
			}
			peep = summary.CustomersServed
		}
	}
	if peep != res.Customers.Served {
		t.Errorf("sole worker served %d of %d customers", peep, res.Customers.Served)
	}
}

func TestPhaseGuards(t *testing.T) {
	c, _ := newTestGame(t)

	// Evening operations are rejected in the day loop.
	if err := c.SetInventoryOrder(config.ProductCoffee, 5); !errors.Is(err, ErrInvalidPhase) {
		t.Errorf("SetInventoryOrder err = %v, want ErrInvalidPhase", err)
	}
	if err := c.FinalizeDay(); !errors.Is(err, ErrInvalidPhase) {
		t.Errorf("FinalizeDay err = %v, want ErrInvalidPhase", err)
	}
	if _, err := c.PerformCare("x", CareFeed); !errors.Is(err, ErrInvalidPhase) {
		t.Errorf("PerformCare err = %v, want ErrInvalidPhase", err)
	}

	if _, err := c.RunDaySimulation(); err != nil {
		t.Fatalf("RunDaySimulation: %v", err)
	}
	if err := c.AdvanceFromSimulation(); err != nil {
		t.Fatalf("AdvanceFromSimulation: %v", err)
	}

	// Simulation is rejected in the evening, and leaves no trace.
	before := len(c.State().History)
	if _, err := c.RunDaySimulation(); !errors.Is(err, ErrInvalidPhase) {
		t.Errorf("RunDaySimulation err = %v, want ErrInvalidPhase", err)
	}
	if len(c.State().History) != before {
		t.Error("refused run mutated history")
	}
	if err := c.AdvanceFromSimulation(); !errors.Is(err, ErrInvalidPhase) {
		t.Errorf("second AdvanceFromSimulation err = %v, want ErrInvalidPhase", err)
	}
}

func toEvening(t *testing.T, c *Controller) {
	t.Helper()
	if _, err := c.RunDaySimulation(); err != nil {
		t.Fatalf("RunDaySimulation: %v", err)
	}
	if err := c.AdvanceFromSimulation(); err != nil {
		t.Fatalf("AdvanceFromSimulation: %v", err)
	}
}

func TestFinalizeDayPaysAndAdvances(t *testing.T) {
	c, s := newTestGame(t)
	toEvening(t, c)

	balance := s.Economy.Balance
	if err := c.SetInventoryOrder(config.ProductCoffee, 5); err != nil {
		t.Fatalf("SetInventoryOrder: %v", err)
	}
	stockBefore := s.Inventory.Quantity(config.ProductCoffee)

	if err := c.FinalizeDay(); err != nil {
		t.Fatalf("FinalizeDay: %v", err)
	}

	// 5 coffee at $1 unit cost.
	wantBalance := balance.Sub(decimal.NewFromInt(5))
	if !s.Economy.Balance.Equal(wantBalance) {
		t.Errorf("balance = %s, want %s", s.Economy.Balance, wantBalance)
	}
	last := s.Economy.Ledger[len(s.Economy.Ledger)-1]
	if !last.Amount.Equal(decimal.NewFromInt(-5)) || last.Reason != "Inventory Restock" {
		t.Errorf("last ledger entry = %s %q", last.Amount, last.Reason)
	}
	if got := s.Inventory.Quantity(config.ProductCoffee); got != stockBefore+5 {
		t.Errorf("coffee stock = %d, want %d", got, stockBefore+5)
	}
	if s.DayNumber != 2 || s.DayName != time.Tuesday {
		t.Errorf("calendar = day %d %s, want day 2 Tuesday", s.DayNumber, s.DayName)
	}
	if c.Phase() != PhaseDayLoop {
		t.Errorf("phase = %s, want DayLoop", c.Phase())
	}
	if s.Plan.Purchases != ([config.NumProducts]int{}) {
		t.Errorf("next plan purchases = %v, want reset", s.Plan.Purchases)
	}
	if len(s.Plan.WorkingIDs) != 1 {
		t.Errorf("roster not carried forward: %v", s.Plan.WorkingIDs)
	}
}

func TestFinalizeDayInsufficientFunds(t *testing.T) {
	c, s := newTestGame(t)
	toEvening(t, c)

	s.Economy.Balance = decimal.NewFromInt(1)
	if err := c.SetInventoryOrder(config.ProductMerch, 100); err != nil {
		t.Fatalf("SetInventoryOrder: %v", err)
	}

	day := s.DayNumber
	err := c.FinalizeDay()
	if !errors.Is(err, ErrInsufficientFunds) {
		t.Fatalf("err = %v, want ErrInsufficientFunds", err)
	}
	if s.DayNumber != day {
		t.Error("failed finalize advanced the calendar")
	}
	if !s.Economy.Balance.Equal(decimal.NewFromInt(1)) {
		t.Error("failed finalize touched the balance")
	}
	if c.Phase() != PhaseEvening {
		t.Errorf("phase = %s, want Evening", c.Phase())
	}
}

func TestSundayEntersReporting(t *testing.T) {
	c, s := newTestGame(t)

	// Play Monday through Saturday; finalizing Saturday lands on Sunday
	// and the phase machine detours through the weekly report.
	for day := 0; day < 6; day++ {
		toEvening(t, c)
		if err := c.FinalizeDay(); err != nil {
			t.Fatalf("FinalizeDay on day %d: %v", day+1, err)
		}
	}

	if s.DayName != time.Sunday {
		t.Fatalf("weekday = %s, want Sunday", s.DayName)
	}
	if s.WeekNumber != 2 {
		t.Errorf("week = %d, want 2", s.WeekNumber)
	}
	if c.Phase() != PhaseReporting {
		t.Fatalf("phase = %s, want Reporting", c.Phase())
	}

	report := c.WeeklyReport(1)
	if report.StartDayNumber != 1 || report.EndDayNumber != 6 {
		t.Errorf("report covers days %d-%d, want 1-6", report.StartDayNumber, report.EndDayNumber)
	}
	if report.Narrative == "" {
		t.Error("report has no narrative")
	}
	if report.AvgCustomersPerDay <= 0 {
		t.Error("report has no customer traffic")
	}

	if err := c.AdvanceFromReporting(); err != nil {
		t.Fatalf("AdvanceFromReporting: %v", err)
	}
	if c.Phase() != PhaseDayLoop {
		t.Errorf("phase = %s, want DayLoop", c.Phase())
	}
}

func TestSetRoster(t *testing.T) {
	c, s := newTestGame(t)
	toEvening(t, c)

	id := s.Birds[0].ID
	if err := c.SetRoster(id, false); err != nil {
		t.Fatalf("SetRoster: %v", err)
	}
	if len(s.Plan.WorkingIDs) != 0 || len(s.Plan.RestingIDs) != 1 {
		t.Errorf("roster = working %v resting %v", s.Plan.WorkingIDs, s.Plan.RestingIDs)
	}

	// Toggling twice must not duplicate entries.
	if err := c.SetRoster(id, true); err != nil {
		t.Fatalf("SetRoster: %v", err)
	}
	if err := c.SetRoster(id, true); err != nil {
		t.Fatalf("SetRoster: %v", err)
	}
	if len(s.Plan.WorkingIDs) != 1 || len(s.Plan.RestingIDs) != 0 {
		t.Errorf("roster = working %v resting %v", s.Plan.WorkingIDs, s.Plan.RestingIDs)
	}

	if err := c.SetRoster("missing", true); !errors.Is(err, ErrBirdNotFound) {
		t.Errorf("err = %v, want ErrBirdNotFound", err)
	}
}

func TestPerformCare(t *testing.T) {
	c, s := newTestGame(t)
	toEvening(t, c)

	b := s.Birds[0]
	b.Hunger = 40
	b.Mood = 50
	balance := s.Economy.Balance

	got, err := c.PerformCare(b.ID, CareFeed)
	if err != nil {
		t.Fatalf("PerformCare: %v", err)
	}
	if got.Hunger != 70 || got.Mood != 55 {
		t.Errorf("after feed hunger/mood = %v/%v, want 70/55", got.Hunger, got.Mood)
	}
	if !s.Economy.Balance.Equal(balance.Sub(s.Config.BirdFoodCost)) {
		t.Errorf("balance = %s, want feed cost deducted", s.Economy.Balance)
	}

	if _, err := c.PerformCare(b.ID, "Sing"); !errors.Is(err, ErrUnknownAction) {
		t.Errorf("err = %v, want ErrUnknownAction", err)
	}
	if _, err := c.PerformCare("missing", CareFeed); !errors.Is(err, ErrBirdNotFound) {
		t.Errorf("err = %v, want ErrBirdNotFound", err)
	}

	s.Economy.Balance = decimal.Zero
	if _, err := c.PerformCare(b.ID, CareVet); !errors.Is(err, ErrInsufficientFunds) {
		t.Errorf("err = %v, want ErrInsufficientFunds", err)
	}
}

func TestToggleRest(t *testing.T) {
	c, s := newTestGame(t)
	toEvening(t, c)

	b, err := c.ToggleRest(s.Birds[0].ID)
	if err != nil {
		t.Fatalf("ToggleRest: %v", err)
	}
	if !b.RestNextDay {
		t.Error("rest flag not set")
	}
	if _, err := c.ToggleRest(b.ID); err != nil {
		t.Fatalf("ToggleRest: %v", err)
	}
	if b.RestNextDay {
		t.Error("rest flag not cleared")
	}
}

func TestGameOver(t *testing.T) {
	c, s := newTestGame(t)

	if c.GameOver() {
		t.Error("fresh game should not be over")
	}

	s.Popularity = 0
	if !c.GameOver() {
		t.Error("zero popularity should end the game")
	}

	// Broke with no coffee to sell is bankruptcy.
	s.Popularity = 50
	s.Economy.Balance = decimal.Zero
	s.Inventory = economy.Inventory{}
	if !c.GameOver() {
		t.Error("bankruptcy should end the game")
	}

	// Broke but still holding stock is survivable.
	s.Inventory.Add(config.ProductCoffee, 1)
	if c.GameOver() {
		t.Error("stock on hand should keep the game alive")
	}
}
