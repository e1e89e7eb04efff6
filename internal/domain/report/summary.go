package report

import "github.com/parishbooks/parishbooks-backend/internal/domain/ledger"

// Summarize reduces the full account list and the already-windowed
// transaction list into the headline Summary. TotalBalance is a
// present-moment snapshot over every account, never windowed; the income
// and expense totals only make sense because the caller windowed the
// transactions first.
func Summarize(accounts []ledger.Account, transactions []ledger.Transaction) Summary {
	var totalBalance float64
	for _, acc := range accounts {
		totalBalance += acc.Balance.Float64()
	}

	var income, expenses float64
	for _, tx := range transactions {
		switch {
		case tx.IsIncome():
			income += tx.Magnitude()
		case tx.IsExpense():
			expenses += tx.Magnitude()
		}
	}

	return Summary{
		TotalBalance:    totalBalance,
		MonthlyIncome:   income,
		MonthlyExpenses: expenses,
		MonthlyResult:   income - expenses,
		AccountsCount:   len(accounts),
	}
}
