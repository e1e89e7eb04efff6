// Package ledger defines the read-only account and transaction snapshot the
// reporting engine consumes. The records are owned and mutated elsewhere;
// this package only normalizes them at the boundary: amounts are coerced
// through the money package, transaction types are canonicalized to
// lower-case, and dates are kept raw so each calculator can decide what to
// do with an unparsable one.
package ledger

import (
	"math"
	"strings"
	"time"

	"github.com/parishbooks/parishbooks-backend/internal/domain/money"
)

// TransactionType is the canonical lower-case direction of a transaction.
type TransactionType string

const (
	TypeIncome   TransactionType = "income"
	TypeExpense  TransactionType = "expense"
	TypeTransfer TransactionType = "transfer"
)

// ParseTransactionType canonicalizes a stored type value. Sources spell the
// enum both upper- and lower-case, so comparison is case-insensitive.
// Unknown values are kept lower-cased as-is and simply match no calculator
// filter.
func ParseTransactionType(s string) TransactionType {
	return TransactionType(strings.ToLower(strings.TrimSpace(s)))
}

// AccountCategory tags what kind of account a balance belongs to.
type AccountCategory string

const (
	CategoryChecking   AccountCategory = "checking"
	CategorySavings    AccountCategory = "savings"
	CategoryCreditCard AccountCategory = "credit-card"
	CategoryInvestment AccountCategory = "investment"
	CategoryCash       AccountCategory = "cash"
	CategoryLoan       AccountCategory = "loan"
	CategoryOther      AccountCategory = "other"
)

// ParseAccountCategory canonicalizes a stored category tag.
func ParseAccountCategory(s string) AccountCategory {
	norm := strings.ToLower(strings.TrimSpace(s))
	norm = strings.ReplaceAll(norm, "_", "-")
	return AccountCategory(norm)
}

// IsCreditCard reports whether the category identifies a credit-card account.
func (c AccountCategory) IsCreditCard() bool {
	return c == CategoryCreditCard
}

// Account is a point-in-time snapshot of an account.
type Account struct {
	ID       string          `json:"id"`
	Name     string          `json:"name"`
	Category AccountCategory `json:"category"`
	Balance  money.Amount    `json:"balance"`
	Active   bool            `json:"active"`
}

// Transaction is a single ledger movement. Amount is a magnitude; direction
// comes from Type, never from the stored sign. Date is kept as the raw
// stored string because it may be missing or unparsable, and only
// date-bucketed views exclude such records.
type Transaction struct {
	ID           string          `json:"id"`
	Type         TransactionType `json:"type"`
	Amount       money.Amount    `json:"amount"`
	Date         string          `json:"date"`
	CategoryName string          `json:"categoryName,omitempty"`
}

// Magnitude returns the absolute coerced amount.
func (t Transaction) Magnitude() float64 {
	return math.Abs(t.Amount.Float64())
}

// IsIncome reports whether the transaction adds funds.
func (t Transaction) IsIncome() bool {
	return ParseTransactionType(string(t.Type)) == TypeIncome
}

// IsExpense reports whether the transaction removes funds.
func (t Transaction) IsExpense() bool {
	return ParseTransactionType(string(t.Type)) == TypeExpense
}

// dateLayouts are the formats the bookkeeping sources actually write.
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// OccurredOn parses the transaction date. The second return is false when
// the date is missing or unparsable; callers in date-keyed views must then
// exclude the transaction rather than guess.
func (t Transaction) OccurredOn() (time.Time, bool) {
	return ParseDate(t.Date)
}

// ParseDate parses a stored date string against the known layouts.
func ParseDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if ts, err := time.Parse(layout, s); err == nil {
			return ts, true
		}
	}
	return time.Time{}, false
}
