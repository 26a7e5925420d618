// Package trades holds the trade-statistics reconciliation rule: the single
// implementation shared by live form feedback and final submission checks.
package trades

import (
	"math"

	"github.com/spf13/cast"

	"github.com/cryptoquest/insight-api/models"
)

// Result is the outcome of reconciling a (total, successful) pair. Failed is
// always a usable value; Valid tells the caller whether the pair may be
// accepted.
type Result struct {
	Failed int  `json:"failed"`
	Valid  bool `json:"valid"`
}

// Reconcile derives the failed-trade count from total and successful counts.
// Non-finite input, negative counts, or successful > total make the pair
// invalid and clamp the derived count to zero. It never panics and never
// returns an error; invalidity is data, not a fault.
func Reconcile(total, successful float64) Result {
	if !isFinite(total) || !isFinite(successful) {
		return Result{Failed: 0, Valid: false}
	}
	if total < 0 || successful < 0 || successful > total {
		return Result{Failed: 0, Valid: false}
	}
	failed := total - successful
	if failed < 0 {
		failed = 0
	}
	return Result{Failed: int(failed), Valid: true}
}

// ReconcileValues accepts form-shaped input (strings, JSON numbers, nil) and
// coerces before reconciling. Anything that does not coerce to a finite
// number follows the non-finite path.
func ReconcileValues(total, successful interface{}) Result {
	return Reconcile(toFloat(total), toFloat(successful))
}

// Apply reconciles and writes the derived count back onto the statistics,
// returning whether the triple is consistent. Callers hand the triple to the
// metrics engine only after a true result.
func Apply(stats *models.TradeStatistics) bool {
	res := Reconcile(float64(stats.TotalTrades), float64(stats.SuccessfulTrades))
	stats.FailedTrades = res.Failed
	return res.Valid
}

func toFloat(v interface{}) float64 {
	f, err := cast.ToFloat64E(v)
	if err != nil {
		return math.NaN()
	}
	return f
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
