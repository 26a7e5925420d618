package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/cryptoquest/insight-api/db"
	"github.com/cryptoquest/insight-api/utils"
)

type ReportHandlers struct {
	db *db.DB
}

func NewReportHandlers(database *db.DB) *ReportHandlers {
	return &ReportHandlers{db: database}
}

func (rh *ReportHandlers) HandleReportByID(w http.ResponseWriter, r *http.Request, id string) {
	utils.LogHTTP("%s /reports/%s", r.Method, id)
	if r.Method != http.MethodGet {
		utils.LogHTTP("Method %s not allowed for /reports/%s", r.Method, id)
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	report, err := rh.db.GetReport(id)
	if err != nil {
		utils.LogHTTP("Report %s not found: %v", id, err)
		http.Error(w, "Report not found", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(report)
}

// HandleLatestForTrader serves the dashboard's "my results" view: the most
// recent report for a trader, selected by the trader query parameter.
func (rh *ReportHandlers) HandleLatestForTrader(w http.ResponseWriter, r *http.Request) {
	utils.LogHTTP("%s /reports/ (latest)", r.Method)
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	traderID := r.URL.Query().Get("trader")
	if traderID == "" {
		http.Error(w, "Missing trader parameter", http.StatusBadRequest)
		return
	}

	report, err := rh.db.GetLatestReportForTrader(traderID)
	if err != nil {
		utils.LogHTTP("No report for trader %s: %v", traderID, err)
		http.Error(w, "Report not found", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(report)
}
