package db

import (
	"database/sql"
	"encoding/json"
	"time"

	"github.com/cryptoquest/insight-api/models"
	"github.com/cryptoquest/insight-api/utils"
)

func (db *DB) SaveQuizSession(session *models.QuizSession) error {
	utils.LogDB("Saving quiz session %s for trader %s", session.ID, session.TraderID)
	start := time.Now()

	questionsJSON, err := json.Marshal(session.Questions)
	if err != nil {
		return err
	}

	_, err = db.Exec(`
		INSERT INTO quiz_sessions (id, trader_id, topic, questions, created_at, expires_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`, session.ID, session.TraderID, session.Topic, string(questionsJSON), session.CreatedAt, session.ExpiresAt)

	if err != nil {
		utils.LogError("SaveQuizSession failed: %v (%v)", err, time.Since(start))
		return err
	}

	utils.LogDB("Quiz session %s saved (%d questions) in %v", session.ID, len(session.Questions), time.Since(start))
	return nil
}

func (db *DB) GetQuizSession(id string) (*models.QuizSession, error) {
	utils.LogDB("Executing query: GetQuizSession(%s)", id)
	start := time.Now()

	var s models.QuizSession
	var questionsJSON string

	err := db.QueryRow(`
		SELECT id, trader_id, topic, questions, created_at, expires_at
		FROM quiz_sessions WHERE id = ?
	`, id).Scan(&s.ID, &s.TraderID, &s.Topic, &questionsJSON, &s.CreatedAt, &s.ExpiresAt)

	if err != nil {
		duration := time.Since(start)
		if err == sql.ErrNoRows {
			utils.LogDB("Quiz session %s not found (%v)", id, duration)
		} else {
			utils.LogError("GetQuizSession(%s) failed: %v (%v)", id, err, duration)
		}
		return nil, err
	}

	if err := json.Unmarshal([]byte(questionsJSON), &s.Questions); err != nil {
		utils.LogError("Quiz session %s has malformed questions: %v", id, err)
		return nil, err
	}

	utils.LogDB("GetQuizSession(%s) completed in %v", id, time.Since(start))
	return &s, nil
}

// DeleteExpiredSessions purges abandoned sessions. Driven by the cleanup
// cron, not by request handling.
func (db *DB) DeleteExpiredSessions(now time.Time) (int64, error) {
	result, err := db.Exec("DELETE FROM quiz_sessions WHERE expires_at < ?", now)
	if err != nil {
		utils.LogError("DeleteExpiredSessions failed: %v", err)
		return 0, err
	}
	deleted, _ := result.RowsAffected()
	if deleted > 0 {
		utils.LogDB("Purged %d expired quiz sessions", deleted)
	}
	return deleted, nil
}

// DeleteQuizSession removes a single session and reports how many rows went.
// The row count is the arbiter for concurrent submissions: only the caller
// that actually deleted the row may score the quiz.
func (db *DB) DeleteQuizSession(id string) (int64, error) {
	result, err := db.Exec("DELETE FROM quiz_sessions WHERE id = ?", id)
	if err != nil {
		utils.LogError("DeleteQuizSession(%s) failed: %v", id, err)
		return 0, err
	}
	deleted, _ := result.RowsAffected()
	return deleted, nil
}

func (db *DB) SaveQuizResult(result *models.QuizResult) error {
	utils.LogDB("Saving quiz result %s (quiz %s, score %d/%d)", result.ID, result.QuizID, result.Score, result.MaxScore)
	start := time.Now()

	answersJSON, err := json.Marshal(result.Answers)
	if err != nil {
		return err
	}

	_, err = db.Exec(`
		INSERT INTO quiz_results (id, quiz_id, trader_id, score, max_score, answers, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, result.ID, result.QuizID, result.TraderID, result.Score, result.MaxScore, string(answersJSON), result.CreatedAt)

	if err != nil {
		utils.LogError("SaveQuizResult failed: %v (%v)", err, time.Since(start))
		return err
	}

	utils.LogDB("Quiz result %s saved in %v", result.ID, time.Since(start))
	return nil
}

func (db *DB) GetQuizResult(id string) (*models.QuizResult, error) {
	var r models.QuizResult
	var answersJSON string

	err := db.QueryRow(`
		SELECT id, quiz_id, trader_id, score, max_score, answers, created_at
		FROM quiz_results WHERE id = ?
	`, id).Scan(&r.ID, &r.QuizID, &r.TraderID, &r.Score, &r.MaxScore, &answersJSON, &r.CreatedAt)

	if err != nil {
		if err != sql.ErrNoRows {
			utils.LogError("GetQuizResult(%s) failed: %v", id, err)
		}
		return nil, err
	}

	if err := json.Unmarshal([]byte(answersJSON), &r.Answers); err != nil {
		utils.LogError("Quiz result %s has malformed answers: %v", id, err)
		return nil, err
	}

	return &r, nil
}
