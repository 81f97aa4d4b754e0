package game

import (
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/google/uuid"

	"github.com/talgya/birdcafe/internal/birds"
	"github.com/talgya/birdcafe/internal/config"
)

// NewGame initializes a fresh session: default balance values, the
// starter bird, day-1 coffee stock, and a seeded day-1 plan. The session
// lands in the day-loop phase ready to simulate.
func (c *Controller) NewGame(playerName, cafeName string) *Save {
	cfg := config.Default()
	starter := birds.NewStarterBird()

	s := &Save{
		SaveID:        uuid.NewString(),
		SchemaVersion: 1,
		LastSaved:     time.Now(),

		DayNumber:  1,
		DayName:    time.Monday,
		WeekNumber: 1,

		PlayerName: playerName,
		CafeName:   cafeName,
		Config:     cfg,

		Popularity: 10,
		Birds:      []*birds.Bird{starter},
	}
	s.Economy.Balance = cfg.StartingFunds
	s.Inventory.Add(config.ProductCoffee, cfg.DefaultDay1Coffee)

	// Seed chosen up front so reloading mid-day replays the same day.
	s.Plan = DailyPlan{
		TargetDayNumber: 1,
		Seed:            rand.Int64(),
		WorkingIDs:      []string{starter.ID},
	}

	c.state = s
	c.phase = PhaseDayLoop
	return s
}

// LoadGame resumes a saved session. Play always resumes at the start of
// the day loop.
func (c *Controller) LoadGame(s *Save) error {
	if s == nil {
		return fmt.Errorf("load game: %w", ErrNoSave)
	}
	c.state = s
	c.phase = PhaseDayLoop
	return nil
}
