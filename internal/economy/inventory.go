// Package economy provides the inventory ledger, money, and the
// financial transaction log.
package economy

import "github.com/talgya/birdcafe/internal/config"

// Inventory tracks on-hand stock per product category.
// Quantities never go negative: the only way to remove stock during a day
// is TryConsume, which checks before it decrements.
type Inventory struct {
	OnHand [config.NumProducts]int `json:"on_hand"`
}

// TryConsume atomically checks for stock of p and removes one unit.
// Returns false without mutating anything when the product is out of stock.
func (inv *Inventory) TryConsume(p config.Product) bool {
	if inv.OnHand[p] <= 0 {
		return false
	}
	inv.OnHand[p]--
	return true
}

// Add restocks qty units of p. Negative quantities are ignored.
func (inv *Inventory) Add(p config.Product, qty int) {
	if qty > 0 {
		inv.OnHand[p] += qty
	}
}

// Quantity returns the current stock of p.
func (inv *Inventory) Quantity(p config.Product) int {
	return inv.OnHand[p]
}

// ZeroPerishables discards unsold perishable stock and reports how many
// units of each product were wasted. Non-perishables carry over untouched.
func (inv *Inventory) ZeroPerishables(cfg *config.Config) [config.NumProducts]int {
	var wasted [config.NumProducts]int
	for p := config.Product(0); p < config.NumProducts; p++ {
		if !cfg.Product(p).Perishable {
			continue
		}
		wasted[p] = inv.OnHand[p]
		inv.OnHand[p] = 0
	}
	return wasted
}
