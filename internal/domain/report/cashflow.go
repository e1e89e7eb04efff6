package report

import (
	"math"
	"time"

	"github.com/parishbooks/parishbooks-backend/internal/domain/ledger"
	"github.com/parishbooks/parishbooks-backend/internal/domain/period"
)

// cashFlowDateLayout is the human-readable day label on series points.
const cashFlowDateLayout = "02/01"

// BuildCashFlowSeries buckets transactions per calendar day over the
// period's window and accumulates a running balance across the series.
// Every day in the window gets a point, even with zero transactions.
//
// A transaction whose date is missing or unparsable is excluded from the
// series entirely. The clamp to >= 0 is a display decision: the series
// visualizes a cumulative trend, not an authoritative ledger balance.
func BuildCashFlowSeries(transactions []ledger.Transaction, p period.Period, now time.Time) []CashFlowPoint {
	buckets := period.DayBuckets(p, now)
	points := make([]CashFlowPoint, 0, len(buckets))

	var accumulator float64
	for _, day := range buckets {
		var positive, negative float64
		for _, tx := range transactions {
			occurred, ok := tx.OccurredOn()
			if !ok || !period.SameDay(occurred, day) {
				continue
			}
			switch {
			case tx.IsIncome():
				positive += tx.Magnitude()
			case tx.IsExpense():
				negative += tx.Magnitude()
			}
		}

		accumulator += positive - negative
		points = append(points, CashFlowPoint{
			Date:     day.Format(cashFlowDateLayout),
			Positive: positive,
			Negative: negative,
			Flow:     math.Max(0, accumulator),
		})
	}

	return points
}
