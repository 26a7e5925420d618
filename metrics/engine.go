// Package metrics turns raw trade, profit/loss and quiz figures into the
// derived performance indicators shown on the dashboard. Everything here is
// a pure function of its inputs; reports are recomputed from scratch, never
// patched.
package metrics

import "github.com/cryptoquest/insight-api/models"

// ProfitLossRatioInfinite stands in for an infinite profit/loss ratio when
// loss is zero but profit is not. A designated constant keeps the value
// JSON-serializable; display layers render it as an infinity symbol.
const ProfitLossRatioInfinite = 999

// Compute derives the nine performance indicators and the composite score.
// A zero total-trade count is floored to 1 as the divisor. This is a defined
// edge-case policy: an empty history yields all-zero ratios instead of a
// division fault. Ratio outputs are not clamped; trade efficiency going
// negative is a meaningful signal.
func Compute(stats models.TradeStatistics, profit, loss float64, quizScore, quizMaxScore int) models.DerivedMetrics {
	divisor := float64(stats.TotalTrades)
	if divisor < 1 {
		divisor = 1
	}

	m := models.DerivedMetrics{
		WinRate:           float64(stats.SuccessfulTrades) / divisor * 100,
		FailureRate:       float64(stats.FailedTrades) / divisor * 100,
		NetPerformance:    profit - loss,
		TradeEfficiency:   float64(stats.SuccessfulTrades-stats.FailedTrades) / divisor * 100,
		AvgProfitPerTrade: profit / divisor,
	}

	if profit+loss > 0 {
		m.ProfitRatio = profit / (profit + loss) * 100
		m.LossRatio = loss / (profit + loss) * 100
	}

	switch {
	case loss > 0:
		m.ProfitLossRatio = profit / loss
	case profit > 0:
		m.ProfitLossRatio = ProfitLossRatioInfinite
	default:
		m.ProfitLossRatio = 0
	}

	if quizMaxScore > 0 {
		m.QuizScoreNormalized = float64(quizScore) / float64(quizMaxScore) * 100
	}

	// Composite is the unweighted mean of exactly these three.
	m.CompositePerformanceScore = (m.WinRate + m.TradeEfficiency + m.QuizScoreNormalized) / 3

	return m
}
