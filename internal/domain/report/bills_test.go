package report

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/parishbooks/parishbooks-backend/internal/domain/ledger"
	"github.com/parishbooks/parishbooks-backend/internal/domain/money"
)

func TestBillsDue_Partitioning(t *testing.T) {
	now := time.Date(2026, time.March, 15, 0, 0, 0, 0, time.UTC)
	transactions := []ledger.Transaction{
		{Type: "expense", Amount: money.Amount(120), Date: "2026-03-16"},
		{Type: "EXPENSE", Amount: money.Amount(80), Date: "2026-03-20"},
		{Type: "income", Amount: money.Amount(900), Date: "2026-03-18"},
		{Type: "transfer", Amount: money.Amount(50), Date: "2026-03-17"},
	}

	summary := BillsDue(transactions, now)

	assert.Equal(t, 2, summary.BillsToPay.Count)
	assert.InDelta(t, 200, summary.BillsToPay.Amount, 0.001)
	assert.Equal(t, 1, summary.BillsToReceive.Count)
	assert.InDelta(t, 900, summary.BillsToReceive.Amount, 0.001)
}

func TestBillsDue_HalfOpenWindow(t *testing.T) {
	now := time.Date(2026, time.March, 15, 0, 0, 0, 0, time.UTC)
	transactions := []ledger.Transaction{
		{Type: "expense", Amount: money.Amount(10), Date: "2026-03-15"}, // exactly now: in
		{Type: "expense", Amount: money.Amount(20), Date: "2026-03-21"}, // last day inside
		{Type: "expense", Amount: money.Amount(40), Date: "2026-03-22"}, // exactly now+7d: out
		{Type: "expense", Amount: money.Amount(80), Date: "2026-03-14"}, // past: out
	}

	summary := BillsDue(transactions, now)

	assert.Equal(t, 2, summary.BillsToPay.Count)
	assert.InDelta(t, 30, summary.BillsToPay.Amount, 0.001)
}

func TestBillsDue_InvalidDatesNeverDue(t *testing.T) {
	now := time.Date(2026, time.March, 15, 0, 0, 0, 0, time.UTC)
	transactions := []ledger.Transaction{
		{Type: "expense", Amount: money.Amount(10), Date: "not-a-date"},
		{Type: "income", Amount: money.Amount(20), Date: ""},
	}

	summary := BillsDue(transactions, now)

	assert.Zero(t, summary.BillsToPay.Count)
	assert.Zero(t, summary.BillsToReceive.Count)
	assert.Zero(t, summary.BillsToPay.Amount)
	assert.Zero(t, summary.BillsToReceive.Amount)
}
