package handlers

import (
	"net/http"
	"strings"

	"github.com/cryptoquest/insight-api/db"
	"github.com/cryptoquest/insight-api/quiz"
	"github.com/cryptoquest/insight-api/sessions"
	"github.com/cryptoquest/insight-api/utils"
)

// NarrativeQueuer enqueues narrative generation for a finished report. The
// job manager satisfies it in production; tests inject a fake.
type NarrativeQueuer interface {
	QueueNarrative(reportID string, score, maxScore int) error
}

// API wraps the per-flow handlers.
type API struct {
	assessmentHandlers *AssessmentHandlers
	quizHandlers       *QuizHandlers
	questionHandlers   *QuestionHandlers
	reportHandlers     *ReportHandlers
}

func NewAPI(database *db.DB, store *sessions.Store, generator *quiz.Generator, questionCount int, queuer NarrativeQueuer) *API {
	return &API{
		assessmentHandlers: NewAssessmentHandlers(database, store, generator, questionCount),
		quizHandlers:       NewQuizHandlers(database, store, queuer),
		questionHandlers:   NewQuestionHandlers(database),
		reportHandlers:     NewReportHandlers(database),
	}
}

func NewRouter(database *db.DB, store *sessions.Store, generator *quiz.Generator, questionCount int, queuer NarrativeQueuer) http.Handler {
	api := NewAPI(database, store, generator, questionCount, queuer)

	mux := http.NewServeMux()

	// Health check
	mux.HandleFunc("/health", healthCheck)

	// Onboarding: profile submission starts a quiz
	mux.HandleFunc("/assessment", api.assessmentHandlers.HandleAssessment)

	// Quiz session routes
	mux.HandleFunc("/quiz/", func(w http.ResponseWriter, r *http.Request) {
		path := strings.TrimPrefix(r.URL.Path, "/quiz/")
		if id, found := strings.CutSuffix(path, "/answers"); found {
			api.quizHandlers.HandleAnswers(w, r, id)
			return
		}
		api.quizHandlers.HandleQuizByID(w, r, path)
	})

	// Catalog routes
	mux.HandleFunc("/questions", api.questionHandlers.HandleQuestions)
	mux.HandleFunc("/questions/import", api.questionHandlers.ImportQuestions)

	// Report routes. /reports/?trader=<id> looks up the latest report.
	mux.HandleFunc("/reports/", func(w http.ResponseWriter, r *http.Request) {
		id := strings.TrimPrefix(r.URL.Path, "/reports/")
		if id == "" {
			api.reportHandlers.HandleLatestForTrader(w, r)
			return
		}
		api.reportHandlers.HandleReportByID(w, r, id)
	})

	return corsMiddleware(loggingMiddleware(mux))
}

func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func healthCheck(w http.ResponseWriter, r *http.Request) {
	utils.LogHTTP("Health check requested")
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "ok"}`))
}
