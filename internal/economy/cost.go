package economy

import (
	"github.com/shopspring/decimal"

	"github.com/talgya/birdcafe/internal/config"
)

// RestockCost returns the cost of buying qty units of p at its configured
// unit cost. Planning previews and settlement both go through here so the
// numbers a player sees before committing match what the engine charges.
func RestockCost(cfg *config.Config, p config.Product, qty int) decimal.Decimal {
	if qty <= 0 {
		return decimal.Zero
	}
	return cfg.Product(p).UnitCost.Mul(decimal.NewFromInt(int64(qty)))
}

// PlanCost totals a mixed restock order across all products.
func PlanCost(cfg *config.Config, quantities [config.NumProducts]int) decimal.Decimal {
	total := decimal.Zero
	for p := config.Product(0); p < config.NumProducts; p++ {
		total = total.Add(RestockCost(cfg, p, quantities[p]))
	}
	return total
}
