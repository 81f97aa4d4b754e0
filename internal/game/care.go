package game

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/talgya/birdcafe/internal/birds"
	"github.com/talgya/birdcafe/internal/config"
	"github.com/talgya/birdcafe/internal/economy"
)

// Care action IDs. Kept as constants so call sites can't drift from the
// catalog.
const (
	CareFeed = "Feed"
	CareVet  = "Vet"
)

// CareAction is a fixed-effect stat delta applied to one bird for money.
type CareAction struct {
	ActionID    string
	DisplayName string
	Cost        decimal.Decimal

	HungerChange float64
	MoodChange   float64
	HealthChange float64
	EnergyChange float64
	StressChange float64
}

func careAction(id string, cfg *config.Config) *CareAction {
	switch id {
	case CareFeed:
		return &CareAction{ActionID: CareFeed, DisplayName: "Feed", Cost: cfg.BirdFoodCost, HungerChange: 30, MoodChange: 5}
	case CareVet:
		return &CareAction{ActionID: CareVet, DisplayName: "Vet Visit", Cost: cfg.VetCost, HealthChange: 50, StressChange: -20}
	}
	return nil
}

// PerformCare applies a care action to a bird. Evening phase only; the
// cost is validated before anything mutates.
func (c *Controller) PerformCare(birdID, actionID string) (*birds.Bird, error) {
	if c.phase != PhaseEvening {
		return nil, fmt.Errorf("care in phase %s: %w", c.phase, ErrInvalidPhase)
	}

	s := c.state
	b := s.Bird(birdID)
	if b == nil {
		return nil, fmt.Errorf("care for %q: %w", birdID, ErrBirdNotFound)
	}

	action := careAction(actionID, &s.Config)
	if action == nil {
		return nil, fmt.Errorf("care action %q: %w", actionID, ErrUnknownAction)
	}
	if !s.Economy.CanAfford(action.Cost) {
		return nil, fmt.Errorf("%s costs %s: %w", action.DisplayName, action.Cost, ErrInsufficientFunds)
	}

	category := economy.CategoryFoodAndSupplies
	if actionID == CareVet {
		category = economy.CategoryVetCare
	}
	s.Economy.RecordForBird(s.DayNumber, action.Cost.Neg(), action.DisplayName, category, b.ID)

	b.AdjustHunger(action.HungerChange)
	b.AdjustMood(action.MoodChange)
	b.AdjustHealth(action.HealthChange)
	b.AdjustEnergy(action.EnergyChange)
	b.AdjustStress(action.StressChange)

	return b, nil
}

// ToggleRest flips a bird's rest-tomorrow flag.
func (c *Controller) ToggleRest(birdID string) (*birds.Bird, error) {
	if c.phase != PhaseEvening {
		return nil, fmt.Errorf("toggle rest in phase %s: %w", c.phase, ErrInvalidPhase)
	}
	b := c.state.Bird(birdID)
	if b == nil {
		return nil, fmt.Errorf("toggle rest for %q: %w", birdID, ErrBirdNotFound)
	}
	b.RestNextDay = !b.RestNextDay
	return b, nil
}
