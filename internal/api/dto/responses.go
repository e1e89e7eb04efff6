package dto

import "github.com/parishbooks/parishbooks-backend/internal/domain/report"

// HealthResponse is returned by the health check endpoint.
type HealthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
}

// DashboardResponse is the wire shape of one aggregation result.
type DashboardResponse struct {
	Period       string                    `json:"period"`
	Summary      SummaryResponse           `json:"summary"`
	CashFlow     []CashFlowPointResponse   `json:"cashFlow"`
	TopExpenses  []TopExpenseResponse      `json:"topExpenses"`
	BillsSummary BillsSummaryResponse      `json:"billsSummary"`
	CreditCards  []CreditCardResponse      `json:"creditCards"`
	Accounts     []AccountSnapshotResponse `json:"accounts"`
}

// SummaryResponse is the headline section.
type SummaryResponse struct {
	TotalBalance    float64 `json:"totalBalance"`
	MonthlyIncome   float64 `json:"monthlyIncome"`
	MonthlyExpenses float64 `json:"monthlyExpenses"`
	MonthlyResult   float64 `json:"monthlyResult"`
	AccountsCount   int     `json:"accountsCount"`
}

// CashFlowPointResponse is one day of the cash-flow chart.
type CashFlowPointResponse struct {
	Date     string  `json:"date"`
	Positive float64 `json:"positive"`
	Negative float64 `json:"negative"`
	Flow     float64 `json:"flow"`
}

// TopExpenseResponse is one ranked category row.
type TopExpenseResponse struct {
	Position   int     `json:"position"`
	Name       string  `json:"name"`
	Amount     float64 `json:"amount"`
	Percentage string  `json:"percentage"`
}

// BillsTotalResponse is one side of the bills outlook.
type BillsTotalResponse struct {
	Count  int     `json:"count"`
	Amount float64 `json:"amount"`
}

// BillsSummaryResponse is the bills outlook section.
type BillsSummaryResponse struct {
	BillsToPay     BillsTotalResponse `json:"billsToPay"`
	BillsToReceive BillsTotalResponse `json:"billsToReceive"`
}

// CreditCardResponse is one card utilization row.
type CreditCardResponse struct {
	Name      string  `json:"name"`
	Limit     float64 `json:"limit"`
	Used      float64 `json:"used"`
	Available float64 `json:"available"`
}

// AccountSnapshotResponse is the raw account list echoed to the caller.
type AccountSnapshotResponse struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Category string  `json:"category"`
	Balance  float64 `json:"balance"`
	Active   bool    `json:"active"`
}

// FromDashboardData maps the engine result to the wire shape.
func FromDashboardData(period string, data *report.DashboardData) DashboardResponse {
	resp := DashboardResponse{
		Period: period,
		Summary: SummaryResponse{
			TotalBalance:    data.Summary.TotalBalance,
			MonthlyIncome:   data.Summary.MonthlyIncome,
			MonthlyExpenses: data.Summary.MonthlyExpenses,
			MonthlyResult:   data.Summary.MonthlyResult,
			AccountsCount:   data.Summary.AccountsCount,
		},
		CashFlow:    make([]CashFlowPointResponse, 0, len(data.CashFlow)),
		TopExpenses: make([]TopExpenseResponse, 0, len(data.TopExpenses)),
		BillsSummary: BillsSummaryResponse{
			BillsToPay:     BillsTotalResponse(data.BillsSummary.BillsToPay),
			BillsToReceive: BillsTotalResponse(data.BillsSummary.BillsToReceive),
		},
		CreditCards: make([]CreditCardResponse, 0, len(data.CreditCards)),
		Accounts:    make([]AccountSnapshotResponse, 0, len(data.Accounts)),
	}

	for _, point := range data.CashFlow {
		resp.CashFlow = append(resp.CashFlow, CashFlowPointResponse(point))
	}
	for _, top := range data.TopExpenses {
		resp.TopExpenses = append(resp.TopExpenses, TopExpenseResponse(top))
	}
	for _, card := range data.CreditCards {
		resp.CreditCards = append(resp.CreditCards, CreditCardResponse(card))
	}
	for _, acc := range data.Accounts {
		resp.Accounts = append(resp.Accounts, AccountSnapshotResponse{
			ID:       acc.ID,
			Name:     acc.Name,
			Category: string(acc.Category),
			Balance:  acc.Balance.Float64(),
			Active:   acc.Active,
		})
	}
	return resp
}
