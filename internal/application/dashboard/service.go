// Package dashboard orchestrates one aggregation request: fetch the account
// and transaction snapshots from their sources concurrently, run the report
// calculators, apply the per-section fallback, and return the composed
// result. The service holds no mutable state, so concurrent calls for
// different requests are safe.
package dashboard

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/parishbooks/parishbooks-backend/internal/domain/ledger"
	"github.com/parishbooks/parishbooks-backend/internal/domain/period"
	"github.com/parishbooks/parishbooks-backend/internal/domain/report"
)

// AccountSource is the upstream account read contract. It must return every
// account regardless of window.
type AccountSource interface {
	ListAccounts(ctx context.Context) ([]ledger.Account, error)
}

// TransactionSource is the upstream transaction read contract for a window.
// The engine re-validates each date defensively and never assumes the
// source filtered perfectly.
type TransactionSource interface {
	ListTransactionsBetween(ctx context.Context, start, end time.Time) ([]ledger.Transaction, error)
}

// Service assembles DashboardData from the two sources.
type Service struct {
	accounts        AccountSource
	transactions    TransactionSource
	synth           *report.Synthesizer
	logger          *slog.Logger
	now             func() time.Time
	topExpenseLimit int
}

// NewService creates a dashboard service. A nil synthesizer gets a default
// random source; a nil logger falls back to slog.Default.
func NewService(accounts AccountSource, transactions TransactionSource, synth *report.Synthesizer, logger *slog.Logger) *Service {
	if synth == nil {
		synth = report.NewSynthesizer(nil)
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		accounts:        accounts,
		transactions:    transactions,
		synth:           synth,
		logger:          logger,
		now:             time.Now,
		topExpenseLimit: report.TopExpenseLimit,
	}
}

// SetClock overrides the time source. Tests use this to pin "now".
func (s *Service) SetClock(now func() time.Time) {
	s.now = now
}

// SetTopExpenseLimit overrides the ranked-category cap. Values <= 0 keep
// the engine default.
func (s *Service) SetTopExpenseLimit(limit int) {
	if limit > 0 {
		s.topExpenseLimit = limit
	}
}

type accountsResult struct {
	accounts []ledger.Account
	err      error
}

type transactionsResult struct {
	transactions []ledger.Transaction
	err          error
}

// GetDashboardData runs one aggregation for the given period. The two
// fetches run concurrently and both must succeed; any fetch error aborts
// the call with no partial result. Everything after the fetches is pure
// computation over the two snapshots.
func (s *Service) GetDashboardData(ctx context.Context, p period.Period) (*report.DashboardData, error) {
	now := s.now()
	win := period.WindowFor(p, now)

	accCh := make(chan accountsResult, 1)
	txCh := make(chan transactionsResult, 1)

	go func() {
		accounts, err := s.accounts.ListAccounts(ctx)
		accCh <- accountsResult{accounts: accounts, err: err}
	}()
	go func() {
		transactions, err := s.transactions.ListTransactionsBetween(ctx, win.Start, win.End)
		txCh <- transactionsResult{transactions: transactions, err: err}
	}()

	accRes, txRes := <-accCh, <-txCh
	if accRes.err != nil {
		return nil, fmt.Errorf("list accounts: %w", accRes.err)
	}
	if txRes.err != nil {
		return nil, fmt.Errorf("list transactions: %w", txRes.err)
	}

	s.logger.Debug("dashboard snapshot fetched",
		"period", string(p),
		"accounts", len(accRes.accounts),
		"transactions", len(txRes.transactions),
	)

	data := &report.DashboardData{
		Summary:      s.synth.FillSummary(report.Summarize(accRes.accounts, txRes.transactions)),
		CashFlow:     s.synth.FillCashFlow(report.BuildCashFlowSeries(txRes.transactions, p, now), p, now),
		TopExpenses:  report.RankTopExpenses(txRes.transactions, s.topExpenseLimit),
		BillsSummary: report.BillsDue(txRes.transactions, now),
		CreditCards:  report.CreditCards(accRes.accounts),
		Accounts:     accRes.accounts,
	}
	return data, nil
}
