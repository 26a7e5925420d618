package models

import "time"

// TradeStatistics holds the self-reported trade counts. FailedTrades is
// derived by the reconciler and never settable by the client.
type TradeStatistics struct {
	TotalTrades      int `json:"no_of_trade"`
	SuccessfulTrades int `json:"success_trades"`
	FailedTrades     int `json:"failed_trades"`
}

// Trader is a funnel participant's profile plus their reported figures.
type Trader struct {
	ID             string          `json:"id"`
	FirstName      string          `json:"first_name"`
	Email          string          `json:"email"`
	Experience     string          `json:"exp"`
	PreferredCoins []string        `json:"preferred_coins"`
	Stats          TradeStatistics `json:"stats"`
	Profit         float64         `json:"profit"`
	Loss           float64         `json:"loss"`
	CreatedAt      time.Time       `json:"created_at"`
}

// AssessmentRequest is the submission body of the onboarding form. Numeric
// fields arrive as free-form JSON values (string or number) and go through
// the reconciler's coercion.
type AssessmentRequest struct {
	FirstName      string      `json:"first_name"`
	Email          string      `json:"email"`
	Experience     string      `json:"exp"`
	PreferredCoins []string    `json:"preferred_coins"`
	TotalTrades    interface{} `json:"no_of_trade"`
	SuccessTrades  interface{} `json:"success_trades"`
	Profit         interface{} `json:"profit"`
	Loss           interface{} `json:"loss"`
	Topic          string      `json:"topic,omitempty"`
}
