// Package storage provides SQLite-backed persistence for the account and
// transaction snapshots the reporting engine reads. Balance and amount
// columns are TEXT on purpose: upstream importers write numbers and numeric
// strings interchangeably, and the coercion boundary in the money package
// owns turning either into arithmetic-safe values.
package storage

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"

	"github.com/parishbooks/parishbooks-backend/internal/domain/ledger"
)

// Storage provides SQLite database access. It implements Repository.
type Storage struct {
	db *sql.DB
}

// Compile-time check that Storage implements Repository
var _ Repository = (*Storage)(nil)

// NewStorage creates a new storage instance with SQLite database
func NewStorage(dbPath string) (*Storage, error) {
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, err
	}

	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to enable foreign keys: %w", err)
	}

	s := &Storage{db: db}

	if err := s.runMigrations(); err != nil {
		_ = db.Close()
		return nil, err
	}

	return s, nil
}

// Close closes the database connection
func (s *Storage) Close() error {
	return s.db.Close()
}

// ListAccounts returns every stored account.
func (s *Storage) ListAccounts(ctx context.Context) ([]ledger.Account, error) {
	rows, err := s.db.QueryContext(ctx, `
	SELECT id, name, category, balance, active
	FROM accounts
	ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}
	defer rows.Close()

	var accounts []ledger.Account
	for rows.Next() {
		var acc ledger.Account
		var category string
		if err := rows.Scan(&acc.ID, &acc.Name, &category, &acc.Balance, &acc.Active); err != nil {
			return nil, fmt.Errorf("failed to scan account: %w", err)
		}
		acc.Category = ledger.ParseAccountCategory(category)
		accounts = append(accounts, acc)
	}
	return accounts, rows.Err()
}

// ListTransactionsBetween returns transactions dated within [start, end]
// plus those whose stored date does not parse. The window filter runs in Go
// rather than SQL: dates are TEXT and may be garbage, and a SQL BETWEEN
// would silently drop the unparsable rows the engine still wants for
// non-date-keyed aggregates.
func (s *Storage) ListTransactionsBetween(ctx context.Context, start, end time.Time) ([]ledger.Transaction, error) {
	rows, err := s.db.QueryContext(ctx, `
	SELECT id, type, amount, date, category_name
	FROM transactions
	ORDER BY date`)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	defer rows.Close()

	var transactions []ledger.Transaction
	for rows.Next() {
		var tx ledger.Transaction
		var txType string
		if err := rows.Scan(&tx.ID, &txType, &tx.Amount, &tx.Date, &tx.CategoryName); err != nil {
			return nil, fmt.Errorf("failed to scan transaction: %w", err)
		}
		tx.Type = ledger.ParseTransactionType(txType)

		if occurred, ok := tx.OccurredOn(); ok {
			if occurred.Before(start) || occurred.After(end) {
				continue
			}
		}
		transactions = append(transactions, tx)
	}
	return transactions, rows.Err()
}

// SaveAccount inserts or replaces an account snapshot.
func (s *Storage) SaveAccount(ctx context.Context, account *ledger.Account) error {
	if account.ID == "" {
		account.ID = uuid.NewString()
	}

	_, err := s.db.ExecContext(ctx, `
	INSERT OR REPLACE INTO accounts (id, name, category, balance, active)
	VALUES (?, ?, ?, ?, ?)`,
		account.ID,
		account.Name,
		string(account.Category),
		fmt.Sprintf("%v", account.Balance.Float64()),
		account.Active,
	)
	if err != nil {
		return fmt.Errorf("failed to save account: %w", err)
	}
	return nil
}

// SaveTransaction inserts or replaces a transaction.
func (s *Storage) SaveTransaction(ctx context.Context, transaction *ledger.Transaction) error {
	if transaction.ID == "" {
		transaction.ID = uuid.NewString()
	}

	_, err := s.db.ExecContext(ctx, `
	INSERT OR REPLACE INTO transactions (id, type, amount, date, category_name)
	VALUES (?, ?, ?, ?, ?)`,
		transaction.ID,
		string(transaction.Type),
		fmt.Sprintf("%v", transaction.Amount.Float64()),
		transaction.Date,
		transaction.CategoryName,
	)
	if err != nil {
		return fmt.Errorf("failed to save transaction: %w", err)
	}
	return nil
}
