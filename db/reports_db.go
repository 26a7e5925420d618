package db

import (
	"database/sql"
	"encoding/json"
	"time"

	"github.com/cryptoquest/insight-api/models"
	"github.com/cryptoquest/insight-api/utils"
)

func (db *DB) CreateReport(report *models.Report) error {
	utils.LogDB("Creating report %s for trader %s", report.ID, report.TraderID)
	start := time.Now()

	metricsJSON, err := json.Marshal(report.Metrics)
	if err != nil {
		return err
	}

	_, err = db.Exec(`
		INSERT INTO reports (id, trader_id, quiz_result_id, metrics, narrative_status, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, report.ID, report.TraderID, report.QuizResultID, string(metricsJSON),
		report.NarrativeStatus, report.CreatedAt, report.UpdatedAt)

	if err != nil {
		utils.LogError("CreateReport failed: %v (%v)", err, time.Since(start))
		return err
	}

	utils.LogDB("Report %s created in %v", report.ID, time.Since(start))
	return nil
}

func (db *DB) GetReport(id string) (*models.Report, error) {
	utils.LogDB("Executing query: GetReport(%s)", id)
	start := time.Now()

	var r models.Report
	var metricsJSON string
	var narrativeJSON sql.NullString

	err := db.QueryRow(`
		SELECT id, trader_id, quiz_result_id, metrics, narrative, narrative_status, created_at, updated_at
		FROM reports WHERE id = ?
	`, id).Scan(&r.ID, &r.TraderID, &r.QuizResultID, &metricsJSON, &narrativeJSON,
		&r.NarrativeStatus, &r.CreatedAt, &r.UpdatedAt)

	if err != nil {
		duration := time.Since(start)
		if err == sql.ErrNoRows {
			utils.LogDB("Report %s not found (%v)", id, duration)
		} else {
			utils.LogError("GetReport(%s) failed: %v (%v)", id, err, duration)
		}
		return nil, err
	}

	if err := json.Unmarshal([]byte(metricsJSON), &r.Metrics); err != nil {
		utils.LogError("Report %s has malformed metrics: %v", id, err)
		return nil, err
	}

	if narrativeJSON.Valid && narrativeJSON.String != "" {
		var n models.Narrative
		if err := json.Unmarshal([]byte(narrativeJSON.String), &n); err != nil {
			utils.LogError("Report %s has malformed narrative (ignored): %v", id, err)
		} else {
			r.Narrative = &n
		}
	}

	utils.LogDB("GetReport(%s) completed in %v", id, time.Since(start))
	return &r, nil
}

// SetNarrative records the outcome of the async narrative job. A nil
// narrative with a failed status marks the job as exhausted.
func (db *DB) SetNarrative(reportID string, narrative *models.Narrative, status string) error {
	utils.LogDB("Updating narrative for report %s (status: %s)", reportID, status)

	var narrativeJSON interface{}
	if narrative != nil {
		data, err := json.Marshal(narrative)
		if err != nil {
			return err
		}
		narrativeJSON = string(data)
	}

	result, err := db.Exec(`
		UPDATE reports
		SET narrative = ?, narrative_status = ?, updated_at = CURRENT_TIMESTAMP
		WHERE id = ?
	`, narrativeJSON, status, reportID)

	if err != nil {
		utils.LogError("SetNarrative(%s) failed: %v", reportID, err)
		return err
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		utils.LogDB("SetNarrative(%s): no rows affected", reportID)
	}
	return nil
}

// GetLatestReportForTrader backs the dashboard's "my results" view.
func (db *DB) GetLatestReportForTrader(traderID string) (*models.Report, error) {
	var id string
	err := db.QueryRow(`
		SELECT id FROM reports WHERE trader_id = ?
		ORDER BY created_at DESC LIMIT 1
	`, traderID).Scan(&id)
	if err != nil {
		return nil, err
	}
	return db.GetReport(id)
}
