package quiz

import (
	"fmt"

	"github.com/cryptoquest/insight-api/models"
)

// topicBank returns the fixed hand-authored questions for a topic. Ids live
// in the "<topic>-<n>" namespace; synthesized variants use "<topic>-v-<n>"
// so the two can never collide.
func topicBank(topic string) []models.QuestionTemplate {
	var entries []struct {
		question string
		options  []string
	}

	switch topic {
	case models.TopicRiskManagement:
		entries = []struct {
			question string
			options  []string
		}{
			{"What is a reasonable stop-loss percentage for volatile assets?", []string{"2%", "1%", "5%", "10%"}},
			{"Which risk control best prevents large drawdowns?", []string{"Fixed stop-loss", "Martingale", "No stop", "Double down"}},
			{"Position sizing should primarily be based on", []string{"Risk per trade", "Account balance only", "Hunch", "Broker leverage"}},
			{"A trailing stop is used to", []string{"Protect gains", "Enter earlier", "Increase leverage", "Remove risk limits"}},
			{"Diversification helps reduce", []string{"Unsystematic risk", "Systematic risk", "Fees", "Latency"}},
			{"Risk-to-reward 1:3 implies", []string{"Risk 1 to aim 3", "Risk 3 to aim 1", "Equal risk/reward", "No risk"}},
		}
	case models.TopicTradingStrategy:
		entries = []struct {
			question string
			options  []string
		}{
			{"Which approach follows momentum?", []string{"Trend following", "Mean reversion", "Arbitrage", "Grid"}},
			{"DCA stands for", []string{"Dollar-cost averaging", "Daily chart analysis", "Derivative cost allocation", "Dual candle average"}},
			{"Breakouts from consolidation often use", []string{"Volatility squeeze", "Random entries", "No stops", "News only"}},
			{"Moving average crossover is typically a", []string{"Trend strategy", "Counter-trend", "Scalping only", "Arb"}},
			{"Range trading suits", []string{"Sideways markets", "Parabolic moves", "High volatility spikes", "Illiquid assets"}},
			{"Take-profit is used to", []string{"Exit at target", "Increase stake", "Set stop", "Open hedge"}},
		}
	case models.TopicPsychology:
		entries = []struct {
			question string
			options  []string
		}{
			{"Which bias leads to holding losers too long?", []string{"Loss aversion", "Confirmation", "Anchoring", "Recency"}},
			{"A trading plan helps reduce", []string{"Emotional decisions", "Fees", "Latency", "Spreads"}},
			{"Journaling trades improves", []string{"Self-awareness", "Leverage", "Execution speed", "Spread"}},
			{"Overtrading is often caused by", []string{"Impatience", "Diversification", "Risk limits", "Position sizing"}},
			{"After a loss, best practice is", []string{"Stick to plan", "Double down", "Remove stop", "Chase"}},
			{"Confidence should be based on", []string{"Data & process", "Luck", "Hype", "Social media"}},
		}
	case models.TopicTechnicalAnalysis:
		entries = []struct {
			question string
			options  []string
		}{
			{"RSI typically identifies", []string{"Overbought/oversold", "Trend strength", "Volatility", "Liquidity"}},
			{"MACD compares", []string{"EMAs and signal", "RSIs", "SMAs only", "Volume"}},
			{"ATR measures", []string{"Average True Range", "Trade return", "Alpha", "Beta"}},
			{"A doji often signals", []string{"Indecision", "Strong bullish", "Strong bearish", "Gap fill"}},
			{"Bollinger Bands primarily reflect", []string{"Volatility", "Trend", "Liquidity", "Fees"}},
			{"Ichimoku provides", []string{"Cloud & averages", "Only RSI", "Only volume", "Only candles"}},
		}
	}

	// The first authored option is the correct one; display order gets
	// shuffled per session.
	bank := make([]models.QuestionTemplate, 0, len(entries))
	for i, e := range entries {
		bank = append(bank, models.QuestionTemplate{
			ID:            fmt.Sprintf("%s-%d", topic, i+1),
			Topic:         topic,
			Question:      e.question,
			Options:       e.options,
			CorrectOption: e.options[0],
		})
	}
	return bank
}

// fallbackQuestion is served when the catalog collaborator gives us nothing
// usable. One question is enough to keep the funnel alive.
func fallbackQuestion() models.QuestionTemplate {
	return models.QuestionTemplate{
		ID:            "fallback-1",
		Question:      "What is a stop-loss used for?",
		Options:       []string{"Limiting downside", "Increasing leverage", "Boosting profits", "Averaging entries"},
		CorrectOption: "Limiting downside",
	}
}
