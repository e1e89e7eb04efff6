package storage

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/parishbooks/parishbooks-backend/internal/domain/ledger"
)

// MockRepository is an in-memory implementation of Repository for testing.
// It mirrors the SQLite implementation's windowing behavior, including the
// rule that unparsable dates pass through the window filter.
type MockRepository struct {
	mu           sync.Mutex
	accounts     []ledger.Account
	transactions []ledger.Transaction

	// Hooks for test assertions
	ListAccountsCalled     bool
	ListTransactionsCalled bool
	LastWindowStart        time.Time
	LastWindowEnd          time.Time

	// Error injection for testing error paths
	ListAccountsErr     error
	ListTransactionsErr error
	SaveAccountErr      error
	SaveTransactionErr  error
}

// Compile-time check that MockRepository implements Repository
var _ Repository = (*MockRepository)(nil)

// NewMockRepository creates a new mock repository for testing
func NewMockRepository() *MockRepository {
	return &MockRepository{}
}

// ListAccounts returns the seeded accounts.
func (m *MockRepository) ListAccounts(_ context.Context) ([]ledger.Account, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ListAccountsCalled = true
	if m.ListAccountsErr != nil {
		return nil, m.ListAccountsErr
	}
	return append([]ledger.Account{}, m.accounts...), nil
}

// ListTransactionsBetween filters seeded transactions by window, keeping
// unparsable dates.
func (m *MockRepository) ListTransactionsBetween(_ context.Context, start, end time.Time) ([]ledger.Transaction, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ListTransactionsCalled = true
	m.LastWindowStart, m.LastWindowEnd = start, end
	if m.ListTransactionsErr != nil {
		return nil, m.ListTransactionsErr
	}

	var out []ledger.Transaction
	for _, tx := range m.transactions {
		if occurred, ok := tx.OccurredOn(); ok {
			if occurred.Before(start) || occurred.After(end) {
				continue
			}
		}
		out = append(out, tx)
	}
	return out, nil
}

// SaveAccount stores an account, minting an ID when empty.
func (m *MockRepository) SaveAccount(_ context.Context, account *ledger.Account) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.SaveAccountErr != nil {
		return m.SaveAccountErr
	}
	if account.ID == "" {
		account.ID = uuid.NewString()
	}
	for i, existing := range m.accounts {
		if existing.ID == account.ID {
			m.accounts[i] = *account
			return nil
		}
	}
	m.accounts = append(m.accounts, *account)
	return nil
}

// SaveTransaction stores a transaction, minting an ID when empty.
func (m *MockRepository) SaveTransaction(_ context.Context, transaction *ledger.Transaction) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.SaveTransactionErr != nil {
		return m.SaveTransactionErr
	}
	if transaction.ID == "" {
		transaction.ID = uuid.NewString()
	}
	for i, existing := range m.transactions {
		if existing.ID == transaction.ID {
			m.transactions[i] = *transaction
			return nil
		}
	}
	m.transactions = append(m.transactions, *transaction)
	return nil
}

// Close is a no-op for the mock.
func (m *MockRepository) Close() error {
	return nil
}
