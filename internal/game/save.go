package game

import (
	"time"

	"github.com/talgya/birdcafe/internal/birds"
	"github.com/talgya/birdcafe/internal/config"
	"github.com/talgya/birdcafe/internal/economy"
	"github.com/talgya/birdcafe/internal/engine"
)

// Save is the complete persistent game state: one cafe, its flock, its
// money, and the full history of simulated days. The controller borrows
// it; the persistence layer serializes it whole.
type Save struct {
	SaveID        string    `json:"save_id"`
	SchemaVersion int       `json:"schema_version"`
	LastSaved     time.Time `json:"last_saved"`

	// Calendar
	DayNumber  int          `json:"day_number"`
	DayName    time.Weekday `json:"day_name"`
	WeekNumber int          `json:"week_number"`

	// Meta
	PlayerName string        `json:"player_name"`
	CafeName   string        `json:"cafe_name"`
	Config     config.Config `json:"config"`

	// World
	Popularity float64            `json:"popularity"`
	Inventory  economy.Inventory  `json:"inventory"`
	Economy    economy.State      `json:"economy"`
	Birds      []*birds.Bird      `json:"birds"`

	// History
	History         []*engine.DayResult `json:"history"`
	WeeklySummaries []*WeeklySummary    `json:"weekly_summaries"`

	// Tomorrow's plan
	Plan DailyPlan `json:"plan"`
}

// Bird returns the flock member with the given ID, or nil.
func (s *Save) Bird(id string) *birds.Bird {
	for _, b := range s.Birds {
		if b.ID == id {
			return b
		}
	}
	return nil
}

// DailyPlan carries the seed, roster, and purchase quantities for the
// next simulated day. The engine reads only the seed and the working set;
// purchases are consumed by FinalizeDay before the day runs.
type DailyPlan struct {
	TargetDayNumber int   `json:"target_day_number"`
	Seed            int64 `json:"seed"`

	Purchases [config.NumProducts]int `json:"purchases"`

	WorkingIDs []string `json:"working_ids"`
	RestingIDs []string `json:"resting_ids"`

	Notes string `json:"notes,omitempty"`
}
