package quiz

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cryptoquest/insight-api/models"
)

func testCatalog(n int) []models.QuestionTemplate {
	catalog := make([]models.QuestionTemplate, 0, n)
	for i := 0; i < n; i++ {
		catalog = append(catalog, models.QuestionTemplate{
			ID:            fmt.Sprintf("q-%d", i+1),
			Question:      fmt.Sprintf("Question number %d?", i+1),
			Options:       []string{"right", "wrong a", "wrong b", "wrong c"},
			CorrectOption: "right",
		})
	}
	return catalog
}

func seededGenerator(catalog []models.QuestionTemplate, seed int64) *Generator {
	return NewGenerator(catalog, rand.New(rand.NewSource(seed)))
}

func TestGenerate_UnscopedCountAndUniqueness(t *testing.T) {
	g := seededGenerator(testCatalog(40), 1)

	session := g.Generate("trader-1", "", 10)
	require.Len(t, session.Questions, 10)
	require.NotEmpty(t, session.ID)

	seen := make(map[string]bool)
	for _, q := range session.Questions {
		assert.False(t, seen[q.ID], "duplicate question id %s", q.ID)
		seen[q.ID] = true
		assert.Contains(t, q.Options, q.CorrectOption)
	}
}

func TestGenerate_TopicScopedUpTo50(t *testing.T) {
	for _, topic := range models.Topics {
		for _, count := range []int{1, 6, 10, 50} {
			g := seededGenerator(nil, 7)
			session := g.Generate("trader-1", topic, count)

			require.Len(t, session.Questions, count, "topic %s count %d", topic, count)
			seen := make(map[string]bool)
			for _, q := range session.Questions {
				assert.False(t, seen[q.ID], "topic %s: duplicate id %s", topic, q.ID)
				seen[q.ID] = true
				assert.Contains(t, q.Options, q.CorrectOption)
				assert.Equal(t, topic, q.Topic)
			}
		}
	}
}

func TestGenerate_OptionsArePermutations(t *testing.T) {
	catalog := testCatalog(5)
	g := seededGenerator(catalog, 3)

	session := g.Generate("trader-1", "", 5)
	for _, q := range session.Questions {
		assert.ElementsMatch(t, []string{"right", "wrong a", "wrong b", "wrong c"}, q.Options)
	}
}

func TestGenerate_EmptyCatalogFallsBack(t *testing.T) {
	g := seededGenerator(nil, 5)

	session := g.Generate("trader-1", "", 10)
	require.Len(t, session.Questions, 1)
	assert.Equal(t, "fallback-1", session.Questions[0].ID)
	assert.Contains(t, session.Questions[0].Options, session.Questions[0].CorrectOption)
}

func TestGenerate_MalformedEntriesDropped(t *testing.T) {
	catalog := testCatalog(3)
	catalog = append(catalog,
		models.QuestionTemplate{ID: "bad-1", Question: "Correct missing?", Options: []string{"a", "b"}, CorrectOption: "z"},
		models.QuestionTemplate{ID: "bad-2", Question: "Too few options?", Options: []string{"only"}, CorrectOption: "only"},
	)

	g := seededGenerator(catalog, 11)
	assert.Equal(t, 3, g.CatalogSize())

	session := g.Generate("trader-1", "", 10)
	for _, q := range session.Questions {
		assert.NotContains(t, q.ID, "bad")
	}
}

func TestGenerate_DeterministicWithSeed(t *testing.T) {
	catalog := testCatalog(30)
	a := seededGenerator(catalog, 99).Generate("trader-1", "", 10)
	b := seededGenerator(catalog, 99).Generate("trader-1", "", 10)

	require.Len(t, b.Questions, len(a.Questions))
	for i := range a.Questions {
		assert.Equal(t, a.Questions[i].ID, b.Questions[i].ID)
		assert.Equal(t, a.Questions[i].Options, b.Questions[i].Options)
	}
}

// Over many sessions each option should land in the first display slot with
// roughly equal frequency. A wide tolerance keeps the test stable while still
// catching a systematically biased shuffle.
func TestShuffle_NoPositionBias(t *testing.T) {
	catalog := testCatalog(1)
	g := seededGenerator(catalog, 42)

	const trials = 8000
	firstSlot := make(map[string]int)
	for i := 0; i < trials; i++ {
		session := g.Generate("trader-1", "", 1)
		firstSlot[session.Questions[0].Options[0]]++
	}

	expected := trials / 4
	for option, got := range firstSlot {
		assert.InDelta(t, expected, got, float64(expected)/4, "option %q is over/under represented", option)
	}
	assert.Len(t, firstSlot, 4)
}

func TestScore_EmptyAnswersIsZero(t *testing.T) {
	g := seededGenerator(testCatalog(20), 8)
	session := g.Generate("trader-1", "", 10)

	assert.Zero(t, Score(session, models.AnswerSet{}))
}

func TestScore_AllCorrectIsFullMarks(t *testing.T) {
	g := seededGenerator(testCatalog(20), 8)
	session := g.Generate("trader-1", "", 10)

	answers := models.AnswerSet{}
	for i, q := range session.Questions {
		answers[i] = q.CorrectOption
	}
	assert.Equal(t, len(session.Questions), Score(session, answers))
}

func TestScore_PartialAnswers(t *testing.T) {
	g := seededGenerator(testCatalog(20), 8)
	session := g.Generate("trader-1", "", 10)

	answers := models.AnswerSet{
		0: session.Questions[0].CorrectOption,
		3: session.Questions[3].CorrectOption,
		5: "definitely not an option",
	}
	assert.Equal(t, 2, Score(session, answers))
}

func TestScore_OutOfRangeIndexesIgnored(t *testing.T) {
	g := seededGenerator(testCatalog(20), 8)
	session := g.Generate("trader-1", "", 5)

	answers := models.AnswerSet{42: session.Questions[0].CorrectOption}
	assert.Zero(t, Score(session, answers))
}
