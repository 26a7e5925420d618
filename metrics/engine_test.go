package metrics

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/cryptoquest/insight-api/models"
)

func TestCompute_ReferenceFigures(t *testing.T) {
	stats := models.TradeStatistics{TotalTrades: 10, SuccessfulTrades: 6, FailedTrades: 4}
	m := Compute(stats, 100, 50, 7, 10)

	assert.InDelta(t, 60, m.WinRate, 1e-9)
	assert.InDelta(t, 40, m.FailureRate, 1e-9)
	assert.InDelta(t, 66.6666666, m.ProfitRatio, 1e-6)
	assert.InDelta(t, 33.3333333, m.LossRatio, 1e-6)
	assert.InDelta(t, 50, m.NetPerformance, 1e-9)
	assert.InDelta(t, 20, m.TradeEfficiency, 1e-9)
	assert.InDelta(t, 10, m.AvgProfitPerTrade, 1e-9)
	assert.InDelta(t, 2, m.ProfitLossRatio, 1e-9)
	assert.InDelta(t, 70, m.QuizScoreNormalized, 1e-9)
	assert.InDelta(t, 50, m.CompositePerformanceScore, 1e-9)
}

func TestCompute_ZeroTradesFlooredDivisor(t *testing.T) {
	m := Compute(models.TradeStatistics{}, 0, 0, 0, 10)

	assert.Zero(t, m.WinRate)
	assert.Zero(t, m.FailureRate)
	assert.Zero(t, m.ProfitRatio)
	assert.Zero(t, m.LossRatio)
	assert.Zero(t, m.NetPerformance)
	assert.Zero(t, m.TradeEfficiency)
	assert.Zero(t, m.AvgProfitPerTrade)
	assert.Zero(t, m.ProfitLossRatio)
	assert.Zero(t, m.QuizScoreNormalized)
	assert.Zero(t, m.CompositePerformanceScore)
}

func TestCompute_InfiniteRatioSentinel(t *testing.T) {
	stats := models.TradeStatistics{TotalTrades: 2, SuccessfulTrades: 2}

	withProfit := Compute(stats, 5, 0, 0, 10)
	assert.Equal(t, float64(ProfitLossRatioInfinite), withProfit.ProfitLossRatio)

	flat := Compute(stats, 0, 0, 0, 10)
	assert.Zero(t, flat.ProfitLossRatio)
}

func TestCompute_NegativeEfficiencyNotClamped(t *testing.T) {
	stats := models.TradeStatistics{TotalTrades: 10, SuccessfulTrades: 2, FailedTrades: 8}
	m := Compute(stats, 10, 40, 3, 10)

	assert.InDelta(t, -60, m.TradeEfficiency, 1e-9)
	assert.InDelta(t, -30, m.NetPerformance, 1e-9)
	// Composite can also go negative; it is not floored.
	assert.InDelta(t, (20-60+30)/3.0, m.CompositePerformanceScore, 1e-9)
}

func TestCompute_Deterministic(t *testing.T) {
	stats := models.TradeStatistics{TotalTrades: 7, SuccessfulTrades: 5, FailedTrades: 2}
	assert.Equal(t, Compute(stats, 12.5, 3.25, 8, 10), Compute(stats, 12.5, 3.25, 8, 10))
}
