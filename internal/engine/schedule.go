package engine

import (
	"github.com/talgya/birdcafe/internal/birds"
	"github.com/talgya/birdcafe/internal/config"
	"github.com/talgya/birdcafe/internal/economy"
)

// stockCheckSeconds is the time a bird loses discovering a stock-out.
const stockCheckSeconds = 1.0

// scheduler performs the greedy single-pass assignment of customers to
// birds. Customers are processed strictly in arrival order; once an
// assignment is made it is never reconsidered. This trades throughput
// optimality for simplicity and determinism.
type scheduler struct {
	cfg      *config.Config
	inv      *economy.Inventory
	roster   []*birds.Bird      // Eligible birds in stable roster order
	avail    map[string]float64 // Bird ID -> next-available time
	servedBy map[string]int     // Bird ID -> customers served
}

func newScheduler(cfg *config.Config, inv *economy.Inventory, eligible []*birds.Bird) *scheduler {
	avail := make(map[string]float64, len(eligible))
	for _, b := range eligible {
		avail[b.ID] = 0
	}
	return &scheduler{
		cfg:      cfg,
		inv:      inv,
		roster:   eligible,
		avail:    avail,
		servedBy: make(map[string]int, len(eligible)),
	}
}

// run processes every customer, recording outcomes on res. The inventory
// ledger and bird energy are mutated in place.
func (s *scheduler) run(res *DayResult, customers []*CustomerRecord) {
	for _, cust := range customers {
		s.serve(res, cust)
		res.Transactions = append(res.Transactions, cust)
	}
}

func (s *scheduler) serve(res *DayResult, cust *CustomerRecord) {
	product := cust.Desired
	res.Timeline = append(res.Timeline, TimelineEvent{
		Time:       cust.ArrivalTime,
		Type:       EventCustomerArrived,
		CustomerID: cust.CustomerID,
		Product:    &product,
	})

	candidate := s.pickBird(cust.ArrivalTime)
	if candidate == nil {
		s.leftUnhappy(res, cust)
		return
	}
	if !s.inv.TryConsume(cust.Desired) {
		s.leftNoStock(res, cust, candidate)
		return
	}
	s.serveWith(res, cust, candidate)
}

// pickBird selects the eligible bird with the smallest next-available time
// among those reachable within the patience window and with enough energy
// to work. Roster order breaks ties. Note the deadline compares the bird's
// availability, not the eventual service start, so a picked bird may still
// start late. That quirk is longstanding observable behavior and is kept.
func (s *scheduler) pickBird(arrival float64) *birds.Bird {
	deadline := arrival + s.cfg.PatienceWindowSeconds

	var best *birds.Bird
	for _, b := range s.roster {
		if s.avail[b.ID] > deadline || b.Energy <= s.cfg.MinServiceEnergy {
			continue
		}
		if best == nil || s.avail[b.ID] < s.avail[best.ID] {
			best = b
		}
	}
	return best
}

func (s *scheduler) leftUnhappy(res *DayResult, cust *CustomerRecord) {
	cust.Outcome = OutcomeLeftUnhappy
	cust.PopularityDelta = -1
	res.Customers.LeftUnhappy++
	res.Timeline = append(res.Timeline, TimelineEvent{
		Time:            cust.ArrivalTime + s.cfg.PatienceWindowSeconds,
		Type:            EventServiceFailed,
		CustomerID:      cust.CustomerID,
		PopularityDelta: -1,
		Reason:          "WaitTooLong",
	})
}

func (s *scheduler) leftNoStock(res *DayResult, cust *CustomerRecord, b *birds.Bird) {
	cust.Outcome = OutcomeLeftNoStock
	cust.PopularityDelta = -2
	res.Customers.LeftNoStock++

	// The bird's time was consumed discovering the stock-out.
	failTime := max(cust.ArrivalTime, s.avail[b.ID]) + stockCheckSeconds
	s.avail[b.ID] = failTime

	res.Timeline = append(res.Timeline, TimelineEvent{
		Time:            failTime,
		Type:            EventServiceFailed,
		CustomerID:      cust.CustomerID,
		BirdID:          b.ID,
		PopularityDelta: -2,
		Reason:          "NoStock",
	})
}

func (s *scheduler) serveWith(res *DayResult, cust *CustomerRecord, b *birds.Bird) {
	price := s.cfg.Product(cust.Desired).Price
	duration := 100 / b.Productivity
	start := max(cust.ArrivalTime, s.avail[b.ID])
	end := start + duration

	cust.Outcome = OutcomeServed
	cust.ServingBirdID = b.ID
	cust.ServiceStart = &start
	cust.ServiceEnd = &end
	cust.Revenue = price
	cust.PopularityDelta = 1

	s.avail[b.ID] = end
	s.servedBy[b.ID]++
	b.AdjustEnergy(-s.cfg.EnergyCostPerService)

	res.Customers.Served++
	res.Customers.Sold[cust.Desired]++

	res.Timeline = append(res.Timeline, TimelineEvent{
		Time:       start,
		Type:       EventServiceStarted,
		CustomerID: cust.CustomerID,
		BirdID:     b.ID,
	})
	res.Timeline = append(res.Timeline, TimelineEvent{
		Time:            end,
		Type:            EventServiceCompleted,
		CustomerID:      cust.CustomerID,
		BirdID:          b.ID,
		MoneyDelta:      price,
		PopularityDelta: 1,
	})
}
