package report

import (
	"time"

	"github.com/parishbooks/parishbooks-backend/internal/domain/ledger"
)

// billsLookaheadDays is how far ahead the bills outlook reaches.
const billsLookaheadDays = 7

// BillsDue partitions transactions dated inside [now, now+7d) into payables
// (expense) and receivables (income). The interval is half-open: a
// transaction dated exactly now is due, one dated exactly now+7d is not.
// Transactions with missing or unparsable dates are never counted as due.
func BillsDue(transactions []ledger.Transaction, now time.Time) BillsSummary {
	horizon := now.AddDate(0, 0, billsLookaheadDays)

	var summary BillsSummary
	for _, tx := range transactions {
		occurred, ok := tx.OccurredOn()
		if !ok || occurred.Before(now) || !occurred.Before(horizon) {
			continue
		}
		switch {
		case tx.IsExpense():
			summary.BillsToPay.Count++
			summary.BillsToPay.Amount += tx.Magnitude()
		case tx.IsIncome():
			summary.BillsToReceive.Count++
			summary.BillsToReceive.Amount += tx.Magnitude()
		}
	}
	return summary
}
