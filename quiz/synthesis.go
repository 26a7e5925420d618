package quiz

import (
	"fmt"
	"strings"

	"github.com/cryptoquest/insight-api/models"
)

// Parametrized stems per topic. Placeholder tokens are filled with random
// values at synthesis time so variants stay distinct in wording.
var synthesisStems = map[string][]string{
	models.TopicRiskManagement: {
		"Choose the safest risk per trade for a {acct} account",
		"Select a stop-loss distance for a {vol}% volatility asset",
	},
	models.TopicTradingStrategy: {
		"Pick an entry rule for a {trend} trend",
		"Select a position size for risk {risk}%",
	},
	models.TopicPsychology: {
		"Identify the best response to a {event}",
		"Pick a routine to reduce {bias}",
	},
	models.TopicTechnicalAnalysis: {
		"Select a confirmation tool for a {pattern} breakout",
		"Choose a timeframe for {style} trading",
	},
}

// Topic-specific option pools for synthesized questions. The first entry is
// the designated correct option.
var synthesisOptions = map[string][]string{
	models.TopicRiskManagement:    {"1%", "0.5%", "2%", "3%"},
	models.TopicTradingStrategy:   {"Pullback", "MA crossover", "Breakout", "VWAP retest"},
	models.TopicPsychology:        {"Plan review", "Journal", "Break", "Risk check"},
	models.TopicTechnicalAnalysis: {"Volume", "RSI", "MACD", "Fibs"},
}

var synthesisFills = map[string][]string{
	"{trend}":   {"bullish", "bearish"},
	"{event}":   {"losing streak", "win streak", "large loss"},
	"{bias}":    {"overconfidence", "loss aversion", "recency"},
	"{pattern}": {"triangle", "flag", "cup-and-handle"},
	"{style}":   {"swing", "scalp", "position"},
}

// synthesize mints up to n extra questions for a topic by instantiating
// stems with random fill values. Ids get their own "-v-" namespace so they
// can never collide with the hand-authored bank. Callers hold g.mu.
func (g *Generator) synthesize(topic string, n int) []models.QuestionTemplate {
	if n <= 0 {
		return nil
	}

	stems := synthesisStems[topic]
	options := synthesisOptions[topic]

	variants := make([]models.QuestionTemplate, 0, n)
	for len(variants) < n {
		stem := stems[g.rng.Intn(len(stems))]
		question := g.fillStem(stem)

		variants = append(variants, models.QuestionTemplate{
			ID:            fmt.Sprintf("%s-v-%d", topic, len(variants)+1),
			Topic:         topic,
			Question:      question,
			Options:       options,
			CorrectOption: options[0],
		})
	}
	return variants
}

func (g *Generator) fillStem(stem string) string {
	out := stem
	out = strings.Replace(out, "{acct}", fmt.Sprintf("%dk", 1+g.rng.Intn(9)), 1)
	out = strings.Replace(out, "{vol}", fmt.Sprintf("%d", 10+g.rng.Intn(30)), 1)
	out = strings.Replace(out, "{risk}", fmt.Sprintf("%.1f", 0.5+float64(g.rng.Intn(3))), 1)
	for token, values := range synthesisFills {
		if strings.Contains(out, token) {
			out = strings.Replace(out, token, values[g.rng.Intn(len(values))], 1)
		}
	}
	return out
}
