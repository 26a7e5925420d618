package models

import "time"

// QuestionInstance is a per-session copy of a catalog template. Options are a
// shuffled permutation of the template's options; CorrectOption is the same
// string at its new position.
type QuestionInstance struct {
	ID            string   `json:"id"`
	Topic         string   `json:"topic,omitempty"`
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	CorrectOption string   `json:"correct_option"`
}

// QuizSession is created once when a quiz starts and is immutable afterwards.
// No two instances in one session share a source template id.
type QuizSession struct {
	ID        string             `json:"quiz_id"`
	TraderID  string             `json:"user_id"`
	Topic     string             `json:"topic,omitempty"`
	Questions []QuestionInstance `json:"questions"`
	CreatedAt time.Time          `json:"created_at"`
	ExpiresAt time.Time          `json:"expires_at"`
}

// Public strips the correct options so a session can be handed to a client.
func (s *QuizSession) Public() *QuizSessionPublic {
	pub := &QuizSessionPublic{
		ID:       s.ID,
		TraderID: s.TraderID,
		Topic:    s.Topic,
	}
	for _, q := range s.Questions {
		pub.Questions = append(pub.Questions, PublicQuestion{
			ID:       q.ID,
			Question: q.Question,
			Options:  q.Options,
		})
	}
	return pub
}

// QuizSessionPublic is the client-facing view of a session.
type QuizSessionPublic struct {
	ID        string           `json:"quiz_id"`
	TraderID  string           `json:"user_id"`
	Topic     string           `json:"topic,omitempty"`
	Questions []PublicQuestion `json:"questions"`
}

type PublicQuestion struct {
	ID       string   `json:"id"`
	Question string   `json:"question"`
	Options  []string `json:"options"`
}

// AnswerSet maps question index (0..N-1) to the selected option string. It
// stays partial until the quiz is complete; missing indexes score as wrong.
type AnswerSet map[int]string

// AnswersRequest is the submission body for a completed quiz.
type AnswersRequest struct {
	Answers AnswerSet `json:"answers"`
}

// QuizResult is the persisted outcome of a scored session.
type QuizResult struct {
	ID        string    `json:"id"`
	QuizID    string    `json:"quiz_id"`
	TraderID  string    `json:"user_id"`
	Score     int       `json:"quiz_score"`
	MaxScore  int       `json:"quiz_max_score"`
	Answers   AnswerSet `json:"answers"`
	CreatedAt time.Time `json:"created_at"`
}
