package models

import "time"

// DerivedMetrics is the dashboard payload computed by the metrics engine.
// Ratio fields are percentages and intentionally unclamped; trade efficiency
// in particular can be negative.
type DerivedMetrics struct {
	WinRate                   float64 `json:"win_rate"`
	FailureRate               float64 `json:"failure_rate"`
	ProfitRatio               float64 `json:"profit_ratio"`
	LossRatio                 float64 `json:"loss_ratio"`
	NetPerformance            float64 `json:"net_performance"`
	TradeEfficiency           float64 `json:"trade_efficiency"`
	AvgProfitPerTrade         float64 `json:"avg_profit_per_trade"`
	ProfitLossRatio           float64 `json:"profit_loss_ratio"`
	QuizScoreNormalized       float64 `json:"quiz_score_normalized"`
	CompositePerformanceScore float64 `json:"composite_performance_score"`
}

// Narrative is the free-text evaluation produced by the external automation
// workflow. The API never composes this text itself.
type Narrative struct {
	Evaluation      string   `json:"evaluation"`
	Recommendations []string `json:"recommendations"`
	Resources       []string `json:"resources"`
	Exercise        string   `json:"exercise"`
}

// Report ties one trader's metrics snapshot to its (eventually delivered)
// narrative.
type Report struct {
	ID              string         `json:"report_id"`
	TraderID        string         `json:"user_id"`
	QuizResultID    string         `json:"quiz_result_id"`
	Metrics         DerivedMetrics `json:"metrics"`
	Narrative       *Narrative     `json:"narrative,omitempty"`
	NarrativeStatus string         `json:"narrative_status"`
	CreatedAt       time.Time      `json:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at"`
}

// Narrative delivery states.
const (
	NarrativePending = "pending"
	NarrativeReady   = "ready"
	NarrativeFailed  = "failed"
)
