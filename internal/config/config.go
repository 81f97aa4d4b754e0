// Package config holds the game's tunable constants and the product table.
package config

import "github.com/shopspring/decimal"

// Product enumerates the three product categories the cafe sells.
type Product uint8

const (
	ProductCoffee     Product = iota // Perishable, cheap, most popular
	ProductBakedGoods                // Perishable
	ProductMerch                     // Non-perishable, carries over between days
)

// NumProducts is the total number of product categories.
const NumProducts = 3

// Name returns the display name for a product.
func (p Product) Name() string {
	switch p {
	case ProductCoffee:
		return "Coffee"
	case ProductBakedGoods:
		return "Baked Goods"
	case ProductMerch:
		return "Themed Merch"
	}
	return "Unknown"
}

// ProductInfo is the single source of truth for one product's economics.
// Both the scheduler and settlement read from here, as do planning cost
// previews, so engine math and UI-facing previews can never disagree.
type ProductInfo struct {
	Price      decimal.Decimal `json:"price"`       // Sale price per unit
	UnitCost   decimal.Decimal `json:"unit_cost"`   // Restock cost per unit
	Perishable bool            `json:"perishable"`  // Unsold stock discarded at day end
}

// Config is an immutable bag of balancing constants consumed by every
// other package. Treat values as read-only after creation.
type Config struct {
	// Customer stream
	BaseCustomersPerDay        int     `json:"base_customers_per_day"`
	PopularityToCustomerFactor float64 `json:"popularity_to_customer_factor"`
	DayDurationSeconds         float64 `json:"day_duration_seconds"`
	PatienceWindowSeconds      float64 `json:"patience_window_seconds"`

	// Service
	MinServiceEnergy     float64 `json:"min_service_energy"`
	EnergyCostPerService float64 `json:"energy_cost_per_service"`

	// End-of-day decay and recovery
	DailyHungerDecay   float64 `json:"daily_hunger_decay"`
	DailyMoodDecay     float64 `json:"daily_mood_decay"`
	RestEnergyRecovery float64 `json:"rest_energy_recovery"`
	RestStressRelief   float64 `json:"rest_stress_relief"`

	// Sickness model
	BaselineSicknessChance      float64 `json:"baseline_sickness_chance"`
	LowHungerSicknessMultiplier float64 `json:"low_hunger_sickness_multiplier"`
	LowEnergySicknessMultiplier float64 `json:"low_energy_sickness_multiplier"`
	SicknessHealthPenalty       float64 `json:"sickness_health_penalty"`

	// Starting conditions
	DefaultDay1Coffee int             `json:"default_day1_coffee"`
	StartingFunds     decimal.Decimal `json:"starting_funds"`

	// Care action costs
	BirdFoodCost decimal.Decimal `json:"bird_food_cost"`
	VetCost      decimal.Decimal `json:"vet_cost"`

	// Product economics, indexed by Product.
	Products [NumProducts]ProductInfo `json:"products"`
}

// Default returns the standard balance values.
func Default() Config {
	return Config{
		BaseCustomersPerDay:        10,
		PopularityToCustomerFactor: 0.5,
		DayDurationSeconds:         120,
		PatienceWindowSeconds:      5,

		MinServiceEnergy:     5,
		EnergyCostPerService: 2,

		DailyHungerDecay:   30,
		DailyMoodDecay:     10,
		RestEnergyRecovery: 50,
		RestStressRelief:   30,

		BaselineSicknessChance:      0.05,
		LowHungerSicknessMultiplier: 2.0,
		LowEnergySicknessMultiplier: 1.5,
		SicknessHealthPenalty:       20,

		DefaultDay1Coffee: 20,
		StartingFunds:     decimal.NewFromInt(100),

		BirdFoodCost: decimal.NewFromInt(5),
		VetCost:      decimal.NewFromInt(50),

		Products: [NumProducts]ProductInfo{
			ProductCoffee:     {Price: decimal.NewFromFloat(3.00), UnitCost: decimal.NewFromFloat(1.00), Perishable: true},
			ProductBakedGoods: {Price: decimal.NewFromFloat(4.50), UnitCost: decimal.NewFromFloat(2.00), Perishable: true},
			ProductMerch:      {Price: decimal.NewFromFloat(15.00), UnitCost: decimal.NewFromFloat(8.00), Perishable: false},
		},
	}
}

// Product returns the economics entry for p.
func (c *Config) Product(p Product) ProductInfo {
	return c.Products[p]
}
