// Package quiz samples fixed-size, duplicate-free quizzes from the question
// catalog and scores submitted answers. Randomness comes from an injected
// source so sessions are reproducible under test.
package quiz

import (
	"math/rand"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/cryptoquest/insight-api/models"
	"github.com/cryptoquest/insight-api/utils"
)

// DefaultQuestionCount is the session size the funnel uses unless configured
// otherwise.
const DefaultQuestionCount = 10

// SessionTTL bounds how long an unanswered session stays scoreable.
const SessionTTL = 2 * time.Hour

// Generator produces quiz sessions from a validated catalog.
type Generator struct {
	mu      sync.Mutex
	rng     *rand.Rand
	catalog []models.QuestionTemplate
}

// NewGenerator keeps only catalog entries that pass validation; rejects are
// logged and dropped so one malformed row cannot poison every quiz.
func NewGenerator(catalog []models.QuestionTemplate, rng *rand.Rand) *Generator {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	g := &Generator{rng: rng}
	for _, tmpl := range catalog {
		if err := tmpl.Validate(); err != nil {
			utils.LogQuiz("Dropping malformed catalog entry: %v", err)
			continue
		}
		g.catalog = append(g.catalog, tmpl)
	}
	return g
}

// CatalogSize reports how many templates survived validation.
func (g *Generator) CatalogSize() int {
	return len(g.catalog)
}

// Generate builds a session of count unique questions. An empty topic samples
// the full catalog; a known topic draws from the hand-authored bank for that
// topic, synthesizing extra variants once the bank runs out. If the catalog
// is empty in unscoped mode the session falls back to a single built-in
// question rather than failing the flow.
func (g *Generator) Generate(traderID, topic string, count int) *models.QuizSession {
	if count <= 0 {
		count = DefaultQuestionCount
	}

	g.mu.Lock()
	var questions []models.QuestionInstance
	if topic != "" && models.ValidTopic(topic) {
		questions = g.generateScoped(topic, count)
	} else {
		questions = g.generateUnscoped(count)
	}
	g.mu.Unlock()

	now := time.Now().UTC()
	return &models.QuizSession{
		ID:        uuid.NewString(),
		TraderID:  traderID,
		Topic:     topic,
		Questions: questions,
		CreatedAt: now,
		ExpiresAt: now.Add(SessionTTL),
	}
}

// generateUnscoped shuffles the whole catalog and takes the first count
// entries, so every draw is unbiased and duplicate-free by construction.
func (g *Generator) generateUnscoped(count int) []models.QuestionInstance {
	if len(g.catalog) == 0 {
		utils.LogQuiz("Catalog is empty, falling back to single-question quiz")
		return []models.QuestionInstance{g.instantiate(fallbackQuestion())}
	}

	pool := make([]models.QuestionTemplate, len(g.catalog))
	copy(pool, g.catalog)
	g.shuffleTemplates(pool)

	if count > len(pool) {
		utils.LogQuiz("Requested %d questions but catalog holds %d, using all", count, len(pool))
		count = len(pool)
	}

	instances := make([]models.QuestionInstance, 0, count)
	for _, tmpl := range pool[:count] {
		instances = append(instances, g.instantiate(tmpl))
	}
	return instances
}

// generateScoped combines the fixed topic bank with synthesized variants,
// shuffles, slices to count and drops accidental id collisions keeping the
// first occurrence.
func (g *Generator) generateScoped(topic string, count int) []models.QuestionInstance {
	pool := topicBank(topic)
	pool = append(pool, g.synthesize(topic, count-len(pool))...)
	g.shuffleTemplates(pool)

	if count > len(pool) {
		count = len(pool)
	}

	seen := make(map[string]bool, count)
	instances := make([]models.QuestionInstance, 0, count)
	for _, tmpl := range pool[:count] {
		if seen[tmpl.ID] {
			continue
		}
		seen[tmpl.ID] = true
		instances = append(instances, g.instantiate(tmpl))
	}
	return instances
}

// instantiate copies a template into a session question with independently
// shuffled options. The correct option string is preserved through the
// shuffle.
func (g *Generator) instantiate(tmpl models.QuestionTemplate) models.QuestionInstance {
	return models.QuestionInstance{
		ID:            tmpl.ID,
		Topic:         tmpl.Topic,
		Question:      tmpl.Question,
		Options:       g.shuffleOptions(tmpl.Options),
		CorrectOption: tmpl.CorrectOption,
	}
}

// shuffleOptions returns a shuffled copy of the option list.
func (g *Generator) shuffleOptions(options []string) []string {
	shuffled := make([]string, len(options))
	copy(shuffled, options)

	// Fisher-Yates shuffle
	for i := len(shuffled) - 1; i > 0; i-- {
		j := g.rng.Intn(i + 1)
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	}

	return shuffled
}

func (g *Generator) shuffleTemplates(pool []models.QuestionTemplate) {
	for i := len(pool) - 1; i > 0; i-- {
		j := g.rng.Intn(i + 1)
		pool[i], pool[j] = pool[j], pool[i]
	}
}

// Score counts positions where the submitted answer matches the session's
// correct option exactly. Unanswered positions count as incorrect, so a
// partial answer set never fails the call.
func Score(session *models.QuizSession, answers models.AnswerSet) int {
	score := 0
	for i, q := range session.Questions {
		if answer, ok := answers[i]; ok && answer == q.CorrectOption {
			score++
		}
	}
	return score
}
