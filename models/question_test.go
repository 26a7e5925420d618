package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestQuestionTemplate_Validate(t *testing.T) {
	valid := QuestionTemplate{
		ID:            "q-1",
		Topic:         TopicRiskManagement,
		Question:      "What does a stop-loss do?",
		Options:       []string{"Caps downside", "Doubles position"},
		CorrectOption: "Caps downside",
	}
	assert.NoError(t, valid.Validate())

	tests := []struct {
		name   string
		mutate func(q *QuestionTemplate)
	}{
		{"missing id", func(q *QuestionTemplate) { q.ID = "" }},
		{"empty question text", func(q *QuestionTemplate) { q.Question = "" }},
		{"single option", func(q *QuestionTemplate) { q.Options = []string{"Caps downside"} }},
		{"unknown topic", func(q *QuestionTemplate) { q.Topic = "numerology" }},
		{"correct option absent", func(q *QuestionTemplate) { q.CorrectOption = "Something else" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := valid
			q.Options = append([]string(nil), valid.Options...)
			tt.mutate(&q)
			assert.Error(t, q.Validate())
		})
	}
}

func TestValidTopic(t *testing.T) {
	for _, topic := range Topics {
		assert.True(t, ValidTopic(topic), topic)
	}
	assert.False(t, ValidTopic(""))
	assert.False(t, ValidTopic("day_trading"))
}
