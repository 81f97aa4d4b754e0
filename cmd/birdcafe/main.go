// Command birdcafe plays the cafe autonomously for a number of simulated
// days, persisting after each day and printing daily and weekly reports.
package main

import (
	"flag"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/dustin/go-humanize"
	"github.com/mattn/go-isatty"

	"github.com/talgya/birdcafe/internal/config"
	"github.com/talgya/birdcafe/internal/game"
	"github.com/talgya/birdcafe/internal/persistence"
)

func main() {
	var (
		days    = flag.Int("days", 7, "number of days to simulate")
		dbPath  = flag.String("db", "data/birdcafe.db", "path to the save database")
		seed    = flag.Int64("seed", 0, "fixed seed for day 1 (0 = random)")
		player  = flag.String("player", "Operator", "player name")
		cafe    = flag.String("cafe", "Bird Cafe", "cafe name")
		verbose = flag.Bool("v", false, "debug logging")
	)
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	opts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler
	if isatty.IsTerminal(os.Stdout.Fd()) {
		handler = slog.NewTextHandler(os.Stdout, opts)
	} else {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	}
	slog.SetDefault(slog.New(handler))

	if err := os.MkdirAll(filepath.Dir(*dbPath), 0o755); err != nil {
		slog.Error("failed to create data directory", "error", err)
		os.Exit(1)
	}
	db, err := persistence.Open(*dbPath)
	if err != nil {
		slog.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer db.Close()
	slog.Info("database opened", "path", *dbPath)

	ctrl := game.NewController()
	state := ctrl.NewGame(*player, *cafe)
	if *seed != 0 {
		state.Plan.Seed = *seed
	}
	slog.Info("new game started", "save_id", state.SaveID, "cafe", state.CafeName, "seed", state.Plan.Seed)

	for i := 0; i < *days; i++ {
		res, err := ctrl.RunDaySimulation()
		if err != nil {
			slog.Error("simulation refused", "error", err)
			os.Exit(1)
		}
		printDay(state, res.DayNumber)

		if err := db.AppendDayResult(state.SaveID, res); err != nil {
			slog.Error("failed to store day result", "error", err)
			os.Exit(1)
		}

		if err := ctrl.AdvanceFromSimulation(); err != nil {
			slog.Error("phase advance failed", "error", err)
			os.Exit(1)
		}
		runEvening(ctrl)

		if err := ctrl.FinalizeDay(); err != nil {
			slog.Error("finalize failed", "error", err)
			os.Exit(1)
		}

		if ctrl.Phase() == game.PhaseReporting {
			report := ctrl.WeeklyReport(state.WeekNumber - 1)
			slog.Info("weekly report",
				"week", report.WeekNumber,
				"income", money(report.TotalIncome.InexactFloat64()),
				"net_profit", money(report.NetProfit.InexactFloat64()),
				"avg_flock_health", humanize.FtoaWithDigits(report.AvgBirdHealth, 1),
				"avg_customers_per_day", humanize.FtoaWithDigits(report.AvgCustomersPerDay, 1),
				"narrative", report.Narrative,
			)
			state.WeeklySummaries = append(state.WeeklySummaries, report)
			if err := ctrl.AdvanceFromReporting(); err != nil {
				slog.Error("phase advance failed", "error", err)
				os.Exit(1)
			}
		}

		if err := db.SaveSlot(state); err != nil {
			slog.Error("failed to save", "error", err)
			os.Exit(1)
		}

		if ctrl.GameOver() {
			slog.Info("game over", "day", state.DayNumber, "balance", state.Economy.Balance, "popularity", state.Popularity)
			break
		}
	}

	slots, err := db.ListSlots(5, 0)
	if err != nil {
		slog.Error("failed to list saves", "error", err)
		os.Exit(1)
	}
	for _, slot := range slots {
		slog.Info("save slot", "cafe", slot.CafeName, "day", slot.DayNumber, "balance", slot.Balance, "saved_at", slot.SavedAt)
	}
}

func printDay(state *game.Save, dayNumber int) {
	res := state.History[len(state.History)-1]
	slog.Info("daily report",
		"day", dayNumber,
		"weekday", res.DayName,
		"arrived", res.Customers.Arrived,
		"served", res.Customers.Served,
		"lost_wait", res.Customers.LeftUnhappy,
		"lost_stock", res.Customers.LeftNoStock,
		"revenue", money(res.Economy.TotalRevenue.InexactFloat64()),
		"net_profit", money(res.Economy.NetProfit.InexactFloat64()),
		"balance", money(state.Economy.Balance.InexactFloat64()),
		"popularity", state.Popularity,
	)
}

// runEvening applies simple keeper heuristics: feed hungry birds, call the
// vet for the sick, rest exhausted birds, and restock for tomorrow.
func runEvening(ctrl *game.Controller) {
	state := ctrl.State()

	for _, b := range state.Birds {
		if b.Hunger < 50 {
			if _, err := ctrl.PerformCare(b.ID, game.CareFeed); err != nil {
				slog.Debug("skipping feed", "bird", b.Name, "error", err)
			}
		}
		if b.Sick || b.Health < 40 {
			if _, err := ctrl.PerformCare(b.ID, game.CareVet); err != nil {
				slog.Debug("skipping vet", "bird", b.Name, "error", err)
			}
		}
		working := !b.SeverelySick && b.Energy >= 20
		if err := ctrl.SetRoster(b.ID, working); err != nil {
			slog.Debug("roster update failed", "bird", b.Name, "error", err)
		}
	}

	// Restock sized to yesterday's demand, trimmed until affordable.
	order := [config.NumProducts]int{
		config.ProductCoffee:     15,
		config.ProductBakedGoods: 5,
		config.ProductMerch:      max(0, 3-state.Inventory.Quantity(config.ProductMerch)),
	}
	for p := config.Product(0); p < config.NumProducts; p++ {
		if err := ctrl.SetInventoryOrder(p, order[p]); err != nil {
			slog.Debug("order update failed", "product", p.Name(), "error", err)
		}
	}
	for {
		cost, err := ctrl.PlanCost()
		if err != nil || state.Economy.CanAfford(cost) {
			break
		}
		trimmed := false
		for p := config.Product(0); p < config.NumProducts; p++ {
			if state.Plan.Purchases[p] > 0 {
				_ = ctrl.SetInventoryOrder(p, state.Plan.Purchases[p]-1)
				trimmed = true
			}
		}
		if !trimmed {
			break
		}
	}

	cost, _ := ctrl.PlanCost()
	slog.Debug("evening plan committed",
		"restock_cost", money(cost.InexactFloat64()),
		"working_birds", len(state.Plan.WorkingIDs),
	)
}

func money(v float64) string {
	return "$" + humanize.CommafWithDigits(v, 2)
}
