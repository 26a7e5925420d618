package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/cryptoquest/insight-api/db"
	"github.com/cryptoquest/insight-api/metrics"
	"github.com/cryptoquest/insight-api/models"
	"github.com/cryptoquest/insight-api/quiz"
	"github.com/cryptoquest/insight-api/sessions"
	"github.com/cryptoquest/insight-api/utils"
)

type QuizHandlers struct {
	db     *db.DB
	store  *sessions.Store
	queuer NarrativeQueuer
}

func NewQuizHandlers(database *db.DB, store *sessions.Store, queuer NarrativeQueuer) *QuizHandlers {
	return &QuizHandlers{
		db:     database,
		store:  store,
		queuer: queuer,
	}
}

func (qh *QuizHandlers) HandleQuizByID(w http.ResponseWriter, r *http.Request, id string) {
	utils.LogHTTP("%s /quiz/%s", r.Method, id)
	if r.Method != http.MethodGet {
		utils.LogHTTP("Method %s not allowed for /quiz/%s", r.Method, id)
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	session, ok := qh.loadSession(id)
	if !ok {
		http.Error(w, "Quiz session not found", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(session.Public())
}

// answersResponse reports the score and the id of the report generated from
// it. Metrics are included so the dashboard can render without a second
// round trip; the narrative arrives asynchronously on the report.
type answersResponse struct {
	QuizScore int                   `json:"quiz_score"`
	MaxScore  int                   `json:"quiz_max_score"`
	ReportID  string                `json:"report_id"`
	Metrics   models.DerivedMetrics `json:"metrics"`
}

func (qh *QuizHandlers) HandleAnswers(w http.ResponseWriter, r *http.Request, id string) {
	utils.LogHTTP("%s /quiz/%s/answers", r.Method, id)
	if r.Method != http.MethodPost {
		utils.LogHTTP("Method %s not allowed for /quiz/%s/answers", r.Method, id)
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req models.AnswersRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.LogHTTP("Invalid JSON in answers request: %v", err)
		http.Error(w, "Invalid JSON", http.StatusBadRequest)
		return
	}

	session, ok := qh.takeSession(id)
	if !ok {
		http.Error(w, "Quiz session not found", http.StatusNotFound)
		return
	}

	score := quiz.Score(session, req.Answers)
	maxScore := len(session.Questions)
	utils.LogQuiz("Session %s scored %d/%d", session.ID, score, maxScore)

	now := time.Now().UTC()
	result := &models.QuizResult{
		ID:        uuid.NewString(),
		QuizID:    session.ID,
		TraderID:  session.TraderID,
		Score:     score,
		MaxScore:  maxScore,
		Answers:   req.Answers,
		CreatedAt: now,
	}
	if err := qh.db.SaveQuizResult(result); err != nil {
		utils.LogError("Failed to save quiz result: %v", err)
		http.Error(w, "Failed to save quiz result", http.StatusInternalServerError)
		return
	}

	trader, err := qh.db.GetTraderByID(session.TraderID)
	if err != nil {
		utils.LogError("Failed to load trader %s: %v", session.TraderID, err)
		http.Error(w, "Failed to build report", http.StatusInternalServerError)
		return
	}

	// The dashboard payload is always recomputed from scratch here; a
	// retaken quiz produces a brand-new report.
	derived := metrics.Compute(trader.Stats, trader.Profit, trader.Loss, score, maxScore)

	report := &models.Report{
		ID:              uuid.NewString(),
		TraderID:        trader.ID,
		QuizResultID:    result.ID,
		Metrics:         derived,
		NarrativeStatus: models.NarrativePending,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if err := qh.db.CreateReport(report); err != nil {
		utils.LogError("Failed to create report: %v", err)
		http.Error(w, "Failed to build report", http.StatusInternalServerError)
		return
	}

	if qh.queuer != nil {
		if err := qh.queuer.QueueNarrative(report.ID, score, maxScore); err != nil {
			// The report is still served without its narrative.
			utils.LogError("Failed to queue narrative for report %s: %v", report.ID, err)
		}
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(answersResponse{
		QuizScore: score,
		MaxScore:  maxScore,
		ReportID:  report.ID,
		Metrics:   derived,
	})
}

// takeSession claims a session for scoring. The database row is the arbiter:
// whichever submission deletes it proceeds, so a quiz can never be scored
// twice no matter how the submissions interleave.
func (qh *QuizHandlers) takeSession(id string) (*models.QuizSession, bool) {
	session, ok := qh.store.Take(id)
	if !ok {
		loaded, err := qh.db.GetQuizSession(id)
		if err != nil {
			return nil, false
		}
		if time.Now().After(loaded.ExpiresAt) {
			utils.LogQuiz("Session %s has expired", id)
			return nil, false
		}
		session = loaded
	}

	deleted, err := qh.db.DeleteQuizSession(session.ID)
	if err != nil || deleted == 0 {
		return nil, false
	}
	return session, true
}

// loadSession checks the in-memory store first and falls back to the
// database so a restart does not strand in-flight quizzes.
func (qh *QuizHandlers) loadSession(id string) (*models.QuizSession, bool) {
	if session, ok := qh.store.Get(id); ok {
		return session, true
	}

	session, err := qh.db.GetQuizSession(id)
	if err != nil {
		return nil, false
	}
	if time.Now().After(session.ExpiresAt) {
		utils.LogQuiz("Session %s has expired", id)
		return nil, false
	}

	qh.store.Put(session)
	return session, true
}
