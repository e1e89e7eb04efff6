// Package report turns a raw snapshot of accounts and transactions into the
// aggregated views the dashboard renders: the period summary, the daily
// cash-flow series, the top spending categories, the near-term bills
// outlook, and per-credit-card utilization. Every calculator is a pure
// function over its inputs; "now" is always an explicit parameter.
package report

import "github.com/parishbooks/parishbooks-backend/internal/domain/ledger"

// Summary is the single-period headline view.
// MonthlyResult is always exactly MonthlyIncome - MonthlyExpenses.
type Summary struct {
	TotalBalance    float64 `json:"totalBalance"`
	MonthlyIncome   float64 `json:"monthlyIncome"`
	MonthlyExpenses float64 `json:"monthlyExpenses"`
	MonthlyResult   float64 `json:"monthlyResult"`
	AccountsCount   int     `json:"accountsCount"`
}

// CashFlowPoint is one day of the cash-flow series. Positive and Negative
// are same-day magnitudes; Flow is the running cumulative balance up to and
// including the day, clamped to >= 0 for display.
type CashFlowPoint struct {
	Date     string  `json:"date"`
	Positive float64 `json:"positive"`
	Negative float64 `json:"negative"`
	Flow     float64 `json:"flow"`
}

// TopExpense is one ranked spending category. Percentage is the share of
// the grand total across all categories, so a truncated top-5 list does not
// sum to 100%.
type TopExpense struct {
	Position   int     `json:"position"`
	Name       string  `json:"name"`
	Amount     float64 `json:"amount"`
	Percentage string  `json:"percentage"`
}

// BillsTotal is one side of the near-term bills outlook.
type BillsTotal struct {
	Count  int     `json:"count"`
	Amount float64 `json:"amount"`
}

// BillsSummary partitions the next seven days into payables and receivables.
type BillsSummary struct {
	BillsToPay     BillsTotal `json:"billsToPay"`
	BillsToReceive BillsTotal `json:"billsToReceive"`
}

// CreditCardSummary is the utilization view of one credit-card account.
type CreditCardSummary struct {
	Name      string  `json:"name"`
	Limit     float64 `json:"limit"`
	Used      float64 `json:"used"`
	Available float64 `json:"available"`
}

// DashboardData is the full composed result of one aggregation call. It is
// freshly allocated per request and never persisted.
type DashboardData struct {
	Summary      Summary             `json:"summary"`
	CashFlow     []CashFlowPoint     `json:"cashFlow"`
	TopExpenses  []TopExpense        `json:"topExpenses"`
	BillsSummary BillsSummary        `json:"billsSummary"`
	CreditCards  []CreditCardSummary `json:"creditCards"`
	Accounts     []ledger.Account    `json:"accounts"`
}
