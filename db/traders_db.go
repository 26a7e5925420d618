package db

import (
	"database/sql"
	"encoding/json"
	"time"

	"github.com/cryptoquest/insight-api/models"
	"github.com/cryptoquest/insight-api/utils"
)

func (db *DB) CreateTrader(trader *models.Trader) error {
	utils.LogDB("Creating trader %s (%s)", trader.ID, trader.Email)
	start := time.Now()

	coinsJSON, _ := json.Marshal(trader.PreferredCoins)

	_, err := db.Exec(`
		INSERT INTO traders (id, first_name, email, experience, preferred_coins,
			total_trades, success_trades, failed_trades, profit, loss, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, trader.ID, trader.FirstName, trader.Email, trader.Experience, string(coinsJSON),
		trader.Stats.TotalTrades, trader.Stats.SuccessfulTrades, trader.Stats.FailedTrades,
		trader.Profit, trader.Loss, trader.CreatedAt)

	if err != nil {
		utils.LogError("CreateTrader failed: %v (%v)", err, time.Since(start))
		return err
	}

	utils.LogDB("Trader %s created in %v", trader.ID, time.Since(start))
	return nil
}

func (db *DB) GetTraderByID(id string) (*models.Trader, error) {
	utils.LogDB("Executing query: GetTraderByID(%s)", id)
	start := time.Now()

	var t models.Trader
	var coinsJSON sql.NullString

	err := db.QueryRow(`
		SELECT id, first_name, email, experience, preferred_coins,
			total_trades, success_trades, failed_trades, profit, loss, created_at
		FROM traders WHERE id = ?
	`, id).Scan(&t.ID, &t.FirstName, &t.Email, &t.Experience, &coinsJSON,
		&t.Stats.TotalTrades, &t.Stats.SuccessfulTrades, &t.Stats.FailedTrades,
		&t.Profit, &t.Loss, &t.CreatedAt)

	if err != nil {
		duration := time.Since(start)
		if err == sql.ErrNoRows {
			utils.LogDB("Trader %s not found (%v)", id, duration)
		} else {
			utils.LogError("GetTraderByID(%s) failed: %v (%v)", id, err, duration)
		}
		return nil, err
	}

	if coinsJSON.Valid && coinsJSON.String != "" {
		json.Unmarshal([]byte(coinsJSON.String), &t.PreferredCoins)
	}

	utils.LogDB("GetTraderByID(%s) completed in %v", id, time.Since(start))
	return &t, nil
}
