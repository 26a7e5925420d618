package models

import (
	"fmt"
	"time"
)

// Question topics. Empty topic means the question belongs to the general
// catalog only.
const (
	TopicRiskManagement    = "risk_management"
	TopicTradingStrategy   = "trading_strategy"
	TopicPsychology        = "psychology"
	TopicTechnicalAnalysis = "technical_analysis"
)

// Topics lists every valid topic value.
var Topics = []string{TopicRiskManagement, TopicTradingStrategy, TopicPsychology, TopicTechnicalAnalysis}

// ValidTopic reports whether topic names a known subject category.
func ValidTopic(topic string) bool {
	for _, t := range Topics {
		if topic == t {
			return true
		}
	}
	return false
}

// QuestionTemplate is an immutable catalog entry. Options keep their authored
// order here; shuffling happens per quiz session on the instance copy.
type QuestionTemplate struct {
	ID            string    `json:"id"`
	Topic         string    `json:"topic,omitempty"`
	Question      string    `json:"question"`
	Options       []string  `json:"options"`
	CorrectOption string    `json:"correct_option"`
	CreatedAt     time.Time `json:"created_at,omitempty"`
	UpdatedAt     time.Time `json:"updated_at,omitempty"`
}

// Validate rejects malformed catalog entries at the loading boundary so the
// generator only ever sees well-formed templates.
func (q *QuestionTemplate) Validate() error {
	if q.ID == "" {
		return fmt.Errorf("question has no id")
	}
	if q.Question == "" {
		return fmt.Errorf("question %s: empty question text", q.ID)
	}
	if len(q.Options) < 2 {
		return fmt.Errorf("question %s: must have at least 2 options", q.ID)
	}
	if q.Topic != "" && !ValidTopic(q.Topic) {
		return fmt.Errorf("question %s: unknown topic '%s'", q.ID, q.Topic)
	}
	for _, opt := range q.Options {
		if opt == q.CorrectOption {
			return nil
		}
	}
	return fmt.Errorf("question %s: correct option '%s' not found in options", q.ID, q.CorrectOption)
}

// QuestionImport is one row of a bulk catalog import request.
type QuestionImport struct {
	Topic         string   `json:"topic,omitempty"`
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	CorrectOption string   `json:"correct_option"`
}

type ImportRequest struct {
	Questions []QuestionImport `json:"questions"`
}

type ImportResult struct {
	TotalQuestions    int      `json:"total_questions"`
	ImportedQuestions int      `json:"imported_questions"`
	SkippedQuestions  int      `json:"skipped_questions"`
	Errors            []string `json:"errors"`
	TimeTaken         string   `json:"time_taken"`
}
