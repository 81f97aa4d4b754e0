package engine

import (
	"math"
	"math/rand/v2"
	"sort"

	"github.com/talgya/birdcafe/internal/config"
)

// generateCustomers produces the day's arrival-ordered customer intents.
//
// Count is max(1, base + floor(popularity*factor) + jitter in [-2,+2]).
// Each customer then draws an arrival time uniform over [0, dayDuration)
// followed by a product roll: <= 0.7 coffee, > 0.9 merch, baked goods in
// between. The draw order is part of the determinism contract.
func generateCustomers(rng *rand.Rand, popularity float64, cfg *config.Config) []*CustomerRecord {
	count := cfg.BaseCustomersPerDay + int(math.Floor(popularity*cfg.PopularityToCustomerFactor))
	count += rng.IntN(5) - 2
	if count < 1 {
		count = 1
	}

	customers := make([]*CustomerRecord, 0, count)
	for i := 0; i < count; i++ {
		arrival := rng.Float64() * cfg.DayDurationSeconds

		roll := rng.Float64()
		desired := config.ProductCoffee
		if roll > 0.9 {
			desired = config.ProductMerch
		} else if roll > 0.7 {
			desired = config.ProductBakedGoods
		}

		customers = append(customers, &CustomerRecord{
			CustomerID:  i,
			ArrivalTime: arrival,
			Desired:     desired,
		})
	}

	// Stable sort keeps generation order for identical arrival times.
	sort.SliceStable(customers, func(i, j int) bool {
		return customers[i].ArrivalTime < customers[j].ArrivalTime
	})
	return customers
}
