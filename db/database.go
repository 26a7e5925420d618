package db

import (
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"

	"github.com/cryptoquest/insight-api/utils"
)

type DB struct {
	*sql.DB
}

func InitDB(dbPath string) (*DB, error) {
	utils.LogStartup("Initializing database at: %s", dbPath)

	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		utils.LogError("Failed to open database: %v", err)
		return nil, err
	}

	if err := db.Ping(); err != nil {
		utils.LogError("Failed to ping database: %v", err)
		return nil, err
	}

	utils.LogStartup("Database connection established")

	if err := createTables(db); err != nil {
		utils.LogError("Failed to create tables: %v", err)
		return nil, err
	}

	utils.LogStartup("Database tables initialized successfully")
	return &DB{db}, nil
}

func createTables(db *sql.DB) error {
	queries := []string{
		// Question catalog. Options are a JSON-encoded string array.
		`CREATE TABLE IF NOT EXISTS questions (
			id TEXT PRIMARY KEY,
			topic TEXT NOT NULL DEFAULT '',
			question TEXT NOT NULL,
			options TEXT NOT NULL,
			correct_option TEXT NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)`,

		// Trader profiles with reconciled trade statistics.
		`CREATE TABLE IF NOT EXISTS traders (
			id TEXT PRIMARY KEY,
			first_name TEXT NOT NULL,
			email TEXT NOT NULL,
			experience TEXT NOT NULL,
			preferred_coins TEXT,
			total_trades INTEGER NOT NULL DEFAULT 0,
			success_trades INTEGER NOT NULL DEFAULT 0,
			failed_trades INTEGER NOT NULL DEFAULT 0,
			profit REAL NOT NULL DEFAULT 0,
			loss REAL NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)`,

		// Active quiz sessions; questions (with correct options) as JSON.
		`CREATE TABLE IF NOT EXISTS quiz_sessions (
			id TEXT PRIMARY KEY,
			trader_id TEXT NOT NULL,
			topic TEXT NOT NULL DEFAULT '',
			questions TEXT NOT NULL,
			created_at DATETIME NOT NULL,
			expires_at DATETIME NOT NULL,
			FOREIGN KEY (trader_id) REFERENCES traders(id)
		)`,

		// Scored quiz outcomes.
		`CREATE TABLE IF NOT EXISTS quiz_results (
			id TEXT PRIMARY KEY,
			quiz_id TEXT NOT NULL,
			trader_id TEXT NOT NULL,
			score INTEGER NOT NULL,
			max_score INTEGER NOT NULL,
			answers TEXT NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			FOREIGN KEY (quiz_id) REFERENCES quiz_sessions(id),
			FOREIGN KEY (trader_id) REFERENCES traders(id)
		)`,

		// Metrics snapshots plus their async narrative.
		`CREATE TABLE IF NOT EXISTS reports (
			id TEXT PRIMARY KEY,
			trader_id TEXT NOT NULL,
			quiz_result_id TEXT NOT NULL,
			metrics TEXT NOT NULL,
			narrative TEXT,
			narrative_status TEXT NOT NULL DEFAULT 'pending',
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			FOREIGN KEY (trader_id) REFERENCES traders(id),
			FOREIGN KEY (quiz_result_id) REFERENCES quiz_results(id)
		)`,
	}

	for i, query := range queries {
		utils.LogDB("Creating table %d/%d", i+1, len(queries))
		if _, err := db.Exec(query); err != nil {
			return fmt.Errorf("failed to create table: %w", err)
		}
	}

	indexes := []string{
		"CREATE INDEX IF NOT EXISTS idx_questions_topic ON questions(topic)",
		"CREATE INDEX IF NOT EXISTS idx_quiz_sessions_trader ON quiz_sessions(trader_id)",
		"CREATE INDEX IF NOT EXISTS idx_quiz_sessions_expires ON quiz_sessions(expires_at)",
		"CREATE INDEX IF NOT EXISTS idx_quiz_results_trader ON quiz_results(trader_id)",
		"CREATE INDEX IF NOT EXISTS idx_reports_trader ON reports(trader_id)",
	}

	for _, index := range indexes {
		if _, err := db.Exec(index); err != nil {
			utils.LogDB("Failed to create index (non-fatal): %v", err)
		}
	}

	return nil
}
