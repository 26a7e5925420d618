package handlers

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cast"

	"github.com/cryptoquest/insight-api/db"
	"github.com/cryptoquest/insight-api/models"
	"github.com/cryptoquest/insight-api/quiz"
	"github.com/cryptoquest/insight-api/sessions"
	"github.com/cryptoquest/insight-api/trades"
	"github.com/cryptoquest/insight-api/utils"
)

type AssessmentHandlers struct {
	db            *db.DB
	store         *sessions.Store
	generator     *quiz.Generator
	questionCount int
}

func NewAssessmentHandlers(database *db.DB, store *sessions.Store, generator *quiz.Generator, questionCount int) *AssessmentHandlers {
	return &AssessmentHandlers{
		db:            database,
		store:         store,
		generator:     generator,
		questionCount: questionCount,
	}
}

// assessmentResponse mirrors the payload the funnel's client expects when
// the onboarding form is accepted: the new trader id plus the quiz to take.
type assessmentResponse struct {
	UserID    string                  `json:"user_id"`
	QuizID    string                  `json:"quiz_id"`
	Questions []models.PublicQuestion `json:"questions"`
	Stats     models.TradeStatistics  `json:"stats"`
}

func (ah *AssessmentHandlers) HandleAssessment(w http.ResponseWriter, r *http.Request) {
	utils.LogHTTP("%s /assessment", r.Method)
	if r.Method != http.MethodPost {
		utils.LogHTTP("Method %s not allowed for /assessment", r.Method)
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req models.AssessmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.LogHTTP("Invalid JSON in assessment request: %v", err)
		http.Error(w, "Invalid JSON", http.StatusBadRequest)
		return
	}

	if strings.TrimSpace(req.FirstName) == "" || strings.TrimSpace(req.Email) == "" ||
		strings.TrimSpace(req.Experience) == "" || len(req.PreferredCoins) == 0 {
		http.Error(w, "Missing required fields", http.StatusBadRequest)
		return
	}

	if req.Topic != "" && !models.ValidTopic(req.Topic) {
		http.Error(w, "Unknown topic", http.StatusBadRequest)
		return
	}

	// Reconcile the self-reported counts. An inconsistent pair blocks
	// submission; the derived failed count is never taken from the client.
	res := trades.ReconcileValues(req.TotalTrades, req.SuccessTrades)
	if !res.Valid {
		utils.LogHTTP("Rejecting assessment with inconsistent trade counts")
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"error":  "Trade statistics are inconsistent",
			"failed": res.Failed,
			"valid":  false,
		})
		return
	}

	trader := &models.Trader{
		ID:             uuid.NewString(),
		FirstName:      strings.TrimSpace(req.FirstName),
		Email:          strings.TrimSpace(req.Email),
		Experience:     strings.TrimSpace(req.Experience),
		PreferredCoins: req.PreferredCoins,
		Stats: models.TradeStatistics{
			TotalTrades:      cast.ToInt(req.TotalTrades),
			SuccessfulTrades: cast.ToInt(req.SuccessTrades),
			FailedTrades:     res.Failed,
		},
		Profit:    cast.ToFloat64(req.Profit),
		Loss:      cast.ToFloat64(req.Loss),
		CreatedAt: time.Now().UTC(),
	}

	if err := ah.db.CreateTrader(trader); err != nil {
		utils.LogError("Failed to create trader: %v", err)
		http.Error(w, "Failed to save assessment", http.StatusInternalServerError)
		return
	}

	session := ah.generator.Generate(trader.ID, req.Topic, ah.questionCount)
	ah.store.Put(session)
	if err := ah.db.SaveQuizSession(session); err != nil {
		utils.LogError("Failed to persist quiz session: %v", err)
		http.Error(w, "Failed to start quiz", http.StatusInternalServerError)
		return
	}

	utils.LogHTTP("Assessment accepted for trader %s, quiz %s (%d questions)",
		trader.ID, session.ID, len(session.Questions))

	pub := session.Public()
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(assessmentResponse{
		UserID:    trader.ID,
		QuizID:    session.ID,
		Questions: pub.Questions,
		Stats:     trader.Stats,
	})
}
