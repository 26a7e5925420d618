package trades

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/cryptoquest/insight-api/models"
)

func TestReconcile_BasicSubtraction(t *testing.T) {
	res := Reconcile(10, 6)
	assert.Equal(t, 4, res.Failed)
	assert.True(t, res.Valid)
}

func TestReconcile_Zeros(t *testing.T) {
	res := Reconcile(0, 0)
	assert.Equal(t, 0, res.Failed)
	assert.True(t, res.Valid)
}

func TestReconcile_SuccessExceedsTotal(t *testing.T) {
	res := Reconcile(5, 7)
	assert.Equal(t, 0, res.Failed)
	assert.False(t, res.Valid)
}

func TestReconcile_Negatives(t *testing.T) {
	assert.Equal(t, Result{Failed: 0, Valid: false}, Reconcile(-1, 1))
	assert.Equal(t, Result{Failed: 0, Valid: false}, Reconcile(5, -2))
}

func TestReconcile_NonFinite(t *testing.T) {
	assert.Equal(t, Result{Failed: 0, Valid: false}, Reconcile(math.NaN(), 5))
	assert.Equal(t, Result{Failed: 0, Valid: false}, Reconcile(5, math.Inf(1)))
	assert.Equal(t, Result{Failed: 0, Valid: false}, Reconcile(math.Inf(-1), math.NaN()))
}

func TestReconcile_Idempotent(t *testing.T) {
	first := Reconcile(42, 17)
	second := Reconcile(42, 17)
	assert.Equal(t, first, second)
}

func TestReconcileValues_Coercion(t *testing.T) {
	cases := []struct {
		name       string
		total      interface{}
		successful interface{}
		want       Result
	}{
		{"string digits", "10", "6", Result{Failed: 4, Valid: true}},
		{"json float", 10.0, 6.0, Result{Failed: 4, Valid: true}},
		{"garbage total", "banana", 1, Result{Failed: 0, Valid: false}},
		{"nil inputs", nil, nil, Result{Failed: 0, Valid: true}},
		{"negative string", "-3", "1", Result{Failed: 0, Valid: false}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ReconcileValues(tc.total, tc.successful))
		})
	}
}

func TestApply_WritesDerivedCount(t *testing.T) {
	stats := models.TradeStatistics{TotalTrades: 20, SuccessfulTrades: 13, FailedTrades: 99}
	ok := Apply(&stats)
	assert.True(t, ok)
	assert.Equal(t, 7, stats.FailedTrades)
}

func TestApply_InvalidPairClampsToZero(t *testing.T) {
	stats := models.TradeStatistics{TotalTrades: 3, SuccessfulTrades: 9, FailedTrades: 99}
	ok := Apply(&stats)
	assert.False(t, ok)
	assert.Equal(t, 0, stats.FailedTrades)
}
