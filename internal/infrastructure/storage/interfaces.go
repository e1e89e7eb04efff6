package storage

import (
	"context"
	"time"

	"github.com/parishbooks/parishbooks-backend/internal/domain/ledger"
)

// Repository defines the complete storage interface.
// This interface allows swapping implementations (SQLite, PostgreSQL, etc.)
// and makes testing with mocks straightforward.
type Repository interface {
	AccountReader
	TransactionReader
	AccountWriter
	TransactionWriter
	Close() error
}

// AccountReader serves the dashboard's account source contract.
type AccountReader interface {
	// ListAccounts returns every account, active and inactive. The
	// reporting engine never filters by window here.
	ListAccounts(ctx context.Context) ([]ledger.Account, error)
}

// TransactionReader serves the dashboard's transaction source contract.
type TransactionReader interface {
	// ListTransactionsBetween returns transactions whose date falls in
	// [start, end], plus transactions whose stored date does not parse at
	// all. Unparsable dates are returned raw so the engine's own
	// validation decides what to exclude: a broken date must still reach
	// the aggregates that do not bucket by day.
	ListTransactionsBetween(ctx context.Context, start, end time.Time) ([]ledger.Transaction, error)
}

// AccountWriter persists account snapshots. Used by the seeding path and
// tests; the CRUD API that normally feeds these tables lives elsewhere.
type AccountWriter interface {
	// SaveAccount inserts or replaces an account. A missing ID gets a
	// generated UUID, returned via the account's ID field.
	SaveAccount(ctx context.Context, account *ledger.Account) error
}

// TransactionWriter persists transactions.
type TransactionWriter interface {
	// SaveTransaction inserts or replaces a transaction, minting a UUID
	// when the ID is empty.
	SaveTransaction(ctx context.Context, transaction *ledger.Transaction) error
}
