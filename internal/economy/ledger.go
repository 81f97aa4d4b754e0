package economy

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/talgya/birdcafe/internal/config"
)

// Category classifies ledger entries for reporting.
type Category uint8

const (
	CategoryFoodAndSupplies Category = iota
	CategoryVetCare
	CategoryInventoryRestock
	CategorySales
	CategoryMiscellaneous
)

// LedgerEntry is a single financial transaction. Positive amounts are
// income, negative amounts are expenses.
type LedgerEntry struct {
	ID        string          `json:"id"`
	DayNumber int             `json:"day_number"`
	Amount    decimal.Decimal `json:"amount"`
	Reason    string          `json:"reason"`
	Category  Category        `json:"category"`
	Product   *config.Product `json:"product,omitempty"`
	BirdID    string          `json:"bird_id,omitempty"`
}

// State tracks the player's balance and transaction history.
type State struct {
	Balance decimal.Decimal `json:"balance"`
	Ledger  []LedgerEntry   `json:"ledger"`
}

// Record appends a transaction and applies it to the balance.
func (s *State) Record(day int, amount decimal.Decimal, reason string, cat Category) {
	s.Balance = s.Balance.Add(amount)
	s.Ledger = append(s.Ledger, LedgerEntry{
		ID:        uuid.NewString(),
		DayNumber: day,
		Amount:    amount,
		Reason:    reason,
		Category:  cat,
	})
}

// RecordForBird appends a bird-related transaction (care actions, vet bills).
func (s *State) RecordForBird(day int, amount decimal.Decimal, reason string, cat Category, birdID string) {
	s.Balance = s.Balance.Add(amount)
	s.Ledger = append(s.Ledger, LedgerEntry{
		ID:        uuid.NewString(),
		DayNumber: day,
		Amount:    amount,
		Reason:    reason,
		Category:  cat,
		BirdID:    birdID,
	})
}

// CanAfford reports whether the balance covers cost.
func (s *State) CanAfford(cost decimal.Decimal) bool {
	return s.Balance.GreaterThanOrEqual(cost)
}
