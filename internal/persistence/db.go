// Package persistence provides SQLite-backed save slots and day-result
// history.
package persistence

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"

	"github.com/talgya/birdcafe/internal/engine"
	"github.com/talgya/birdcafe/internal/game"
)

// ErrSlotNotFound is returned when loading a save ID with no row.
var ErrSlotNotFound = errors.New("save slot not found")

// DB wraps a SQLite connection for game state storage.
type DB struct {
	conn *sqlx.DB
}

// Open opens or creates a SQLite database at the given path.
func Open(path string) (*DB, error) {
	conn, err := sqlx.Open("sqlite", path+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}

	db := &DB{conn: conn}
	if err := db.migrate(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return db, nil
}

// Close closes the database connection.
func (db *DB) Close() error {
	return db.conn.Close()
}

func (db *DB) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS saves (
		save_id TEXT PRIMARY KEY,
		player_name TEXT NOT NULL,
		cafe_name TEXT NOT NULL,
		day_number INTEGER NOT NULL,
		week_number INTEGER NOT NULL,
		balance TEXT NOT NULL,
		popularity REAL NOT NULL,
		saved_at TEXT NOT NULL,
		state_json TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS day_results (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		save_id TEXT NOT NULL,
		day_number INTEGER NOT NULL,
		week_number INTEGER NOT NULL,
		net_profit TEXT NOT NULL,
		customers_served INTEGER NOT NULL,
		result_json TEXT NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_day_results_save ON day_results(save_id, day_number);
	CREATE INDEX IF NOT EXISTS idx_saves_saved_at ON saves(saved_at);
	`
	_, err := db.conn.Exec(schema)
	return err
}

// SaveSlot writes the full game state into its slot, replacing any
// previous snapshot for the same save ID.
func (db *DB) SaveSlot(s *game.Save) error {
	s.LastSaved = time.Now().UTC()
	stateJSON, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("marshal save %s: %w", s.SaveID, err)
	}

	_, err = db.conn.Exec(`INSERT OR REPLACE INTO saves
		(save_id, player_name, cafe_name, day_number, week_number, balance, popularity, saved_at, state_json)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		s.SaveID, s.PlayerName, s.CafeName, s.DayNumber, s.WeekNumber,
		s.Economy.Balance.String(), s.Popularity,
		s.LastSaved.Format(time.RFC3339Nano), string(stateJSON),
	)
	if err != nil {
		return fmt.Errorf("write save %s: %w", s.SaveID, err)
	}
	return nil
}

// LoadSlot reads one save back by ID.
func (db *DB) LoadSlot(saveID string) (*game.Save, error) {
	var stateJSON string
	err := db.conn.Get(&stateJSON, `SELECT state_json FROM saves WHERE save_id = ?`, saveID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("load save %s: %w", saveID, ErrSlotNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("load save %s: %w", saveID, err)
	}

	var s game.Save
	if err := json.Unmarshal([]byte(stateJSON), &s); err != nil {
		return nil, fmt.Errorf("unmarshal save %s: %w", saveID, err)
	}
	return &s, nil
}

// SlotInfo is the listing row for one save slot.
type SlotInfo struct {
	SaveID     string  `db:"save_id" json:"save_id"`
	PlayerName string  `db:"player_name" json:"player_name"`
	CafeName   string  `db:"cafe_name" json:"cafe_name"`
	DayNumber  int     `db:"day_number" json:"day_number"`
	WeekNumber int     `db:"week_number" json:"week_number"`
	Balance    string  `db:"balance" json:"balance"`
	Popularity float64 `db:"popularity" json:"popularity"`
	SavedAt    string  `db:"saved_at" json:"saved_at"`
}

// ListSlots returns save slots newest-first, paginated.
func (db *DB) ListSlots(limit, offset int) ([]SlotInfo, error) {
	if limit <= 0 {
		limit = 20
	}
	var slots []SlotInfo
	err := db.conn.Select(&slots, `SELECT save_id, player_name, cafe_name, day_number,
		week_number, balance, popularity, saved_at
		FROM saves ORDER BY saved_at DESC LIMIT ? OFFSET ?`, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list saves: %w", err)
	}
	return slots, nil
}

// DeleteSlot removes a save and its day-result history.
func (db *DB) DeleteSlot(saveID string) error {
	tx, err := db.conn.Beginx()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM day_results WHERE save_id = ?`, saveID); err != nil {
		return fmt.Errorf("delete results for %s: %w", saveID, err)
	}
	if _, err := tx.Exec(`DELETE FROM saves WHERE save_id = ?`, saveID); err != nil {
		return fmt.Errorf("delete save %s: %w", saveID, err)
	}
	return tx.Commit()
}

// AppendDayResult stores one day's result for history queries that don't
// need the full save document.
func (db *DB) AppendDayResult(saveID string, r *engine.DayResult) error {
	resultJSON, err := json.Marshal(r)
	if err != nil {
		return fmt.Errorf("marshal day %d: %w", r.DayNumber, err)
	}

	_, err = db.conn.Exec(`INSERT INTO day_results
		(save_id, day_number, week_number, net_profit, customers_served, result_json)
		VALUES (?, ?, ?, ?, ?, ?)`,
		saveID, r.DayNumber, r.WeekNumber,
		r.Economy.NetProfit.String(), r.Customers.Served, string(resultJSON),
	)
	if err != nil {
		return fmt.Errorf("write day %d: %w", r.DayNumber, err)
	}
	return nil
}

// DayResults loads the stored results for one save, oldest first.
func (db *DB) DayResults(saveID string) ([]*engine.DayResult, error) {
	var rows []string
	err := db.conn.Select(&rows, `SELECT result_json FROM day_results
		WHERE save_id = ? ORDER BY day_number ASC`, saveID)
	if err != nil {
		return nil, fmt.Errorf("load results for %s: %w", saveID, err)
	}

	results := make([]*engine.DayResult, 0, len(rows))
	for _, raw := range rows {
		var r engine.DayResult
		if err := json.Unmarshal([]byte(raw), &r); err != nil {
			return nil, fmt.Errorf("unmarshal result for %s: %w", saveID, err)
		}
		results = append(results, &r)
	}
	return results, nil
}
