package engine

import (
	"github.com/shopspring/decimal"

	"github.com/talgya/birdcafe/internal/config"
)

// Outcome is the final disposition of one customer visit.
type Outcome uint8

const (
	OutcomePending     Outcome = iota // Not yet processed
	OutcomeServed
	OutcomeLeftUnhappy // Gave up waiting
	OutcomeLeftNoStock // Desired product was sold out
)

// EventType enumerates timeline event kinds.
type EventType uint8

const (
	EventCustomerArrived EventType = iota
	EventServiceStarted
	EventServiceCompleted
	EventServiceFailed
	EventItemPerished
)

// TimelineEvent is one immutable entry in the day's chronological log.
// Events are appended out of order during the run and stably sorted by
// time before the result is returned.
type TimelineEvent struct {
	Time            float64         `json:"time"`
	Type            EventType       `json:"type"`
	CustomerID      int             `json:"customer_id"` // -1 when no customer is involved
	BirdID          string          `json:"bird_id,omitempty"`
	Product         *config.Product `json:"product,omitempty"`
	MoneyDelta      decimal.Decimal `json:"money_delta"`
	PopularityDelta float64         `json:"popularity_delta"`
	Reason          string          `json:"reason,omitempty"`
}

// CustomerRecord is the per-customer transaction record: created by the
// stream generator, filled in by the scheduler, read-only afterwards.
type CustomerRecord struct {
	CustomerID  int            `json:"customer_id"`
	ArrivalTime float64        `json:"arrival_time"`
	Desired     config.Product `json:"desired_product"`

	ServiceStart  *float64 `json:"service_start,omitempty"`
	ServiceEnd    *float64 `json:"service_end,omitempty"`
	ServingBirdID string   `json:"serving_bird_id,omitempty"`

	Outcome         Outcome         `json:"outcome"`
	Revenue         decimal.Decimal `json:"revenue"`
	PopularityDelta float64         `json:"popularity_delta"`
}

// EconomySummary aggregates the day's money flows.
type EconomySummary struct {
	StartingMoney decimal.Decimal `json:"starting_money"`
	EndingMoney   decimal.Decimal `json:"ending_money"`
	TotalRevenue  decimal.Decimal `json:"total_revenue"`
	InventoryCost decimal.Decimal `json:"inventory_cost"` // COGS for units actually sold
	WasteCost     decimal.Decimal `json:"waste_cost"`     // Perished perishables
	NetProfit     decimal.Decimal `json:"net_profit"`     // Revenue - (COGS + waste)
}

// CustomerSummary aggregates customer outcomes and per-product volumes.
type CustomerSummary struct {
	Arrived     int `json:"arrived"`
	Served      int `json:"served"`
	LeftUnhappy int `json:"left_unhappy"`
	LeftNoStock int `json:"left_no_stock"`

	Sold   [config.NumProducts]int `json:"sold"`
	Wasted [config.NumProducts]int `json:"wasted"`
}

// PopularitySummary records the reputation swing across the day.
type PopularitySummary struct {
	AtStart float64 `json:"at_start"`
	AtEnd   float64 `json:"at_end"`
}

// Delta is the net popularity change.
func (p PopularitySummary) Delta() float64 { return p.AtEnd - p.AtStart }

// BirdSummary is the per-bird view of the day: start/end stat snapshots,
// workload, and whether the bird fell sick overnight.
type BirdSummary struct {
	BirdID   string `json:"bird_id"`
	BirdName string `json:"bird_name"`

	WorkedToday     bool `json:"worked_today"`
	CustomersServed int  `json:"customers_served"`

	MoodAtStart   float64 `json:"mood_at_start"`
	MoodAtEnd     float64 `json:"mood_at_end"`
	HealthAtStart float64 `json:"health_at_start"`
	HealthAtEnd   float64 `json:"health_at_end"`
	EnergyAtStart float64 `json:"energy_at_start"`
	EnergyAtEnd   float64 `json:"energy_at_end"`

	BecameSick bool `json:"became_sick"`
}

// DayResult is the immutable aggregate output of one simulated day.
// It is the only entity the engine owns; everything else is borrowed
// from the caller and mutated in place.
type DayResult struct {
	DayNumber  int    `json:"day_number"`
	DayName    string `json:"day_name"`
	WeekNumber int    `json:"week_number"`

	Economy    EconomySummary    `json:"economy"`
	Customers  CustomerSummary   `json:"customers"`
	Popularity PopularitySummary `json:"popularity"`

	BirdSummaries []*BirdSummary    `json:"bird_summaries"`
	Transactions  []*CustomerRecord `json:"transactions"`
	Timeline      []TimelineEvent   `json:"timeline"`
}
