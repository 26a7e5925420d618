package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/cryptoquest/insight-api/db"
	"github.com/cryptoquest/insight-api/models"
	"github.com/cryptoquest/insight-api/utils"
)

type QuestionHandlers struct {
	db *db.DB
}

func NewQuestionHandlers(database *db.DB) *QuestionHandlers {
	return &QuestionHandlers{db: database}
}

func (qh *QuestionHandlers) HandleQuestions(w http.ResponseWriter, r *http.Request) {
	utils.LogHTTP("%s /questions", r.Method)
	if r.Method != http.MethodGet {
		utils.LogHTTP("Method %s not allowed for /questions", r.Method)
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	catalog, err := qh.db.GetAllQuestions()
	if err != nil {
		utils.LogError("Failed to fetch questions: %v", err)
		http.Error(w, "Failed to fetch questions", http.StatusInternalServerError)
		return
	}

	utils.LogHTTP("Returning %d catalog questions", len(catalog))
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"questions": catalog,
	})
}

func (qh *QuestionHandlers) ImportQuestions(w http.ResponseWriter, r *http.Request) {
	utils.LogHTTP("%s /questions/import", r.Method)
	if r.Method != http.MethodPost {
		utils.LogHTTP("Method %s not allowed for /questions/import", r.Method)
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req models.ImportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.LogHTTP("Invalid JSON in import request: %v", err)
		http.Error(w, "Invalid JSON", http.StatusBadRequest)
		return
	}

	if len(req.Questions) == 0 {
		http.Error(w, "No questions to import", http.StatusBadRequest)
		return
	}

	result, err := qh.db.ImportQuestions(req)
	if err != nil {
		utils.LogError("Import failed: %v", err)
		http.Error(w, "Import failed", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(result)
}
