// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransactionKind represents the kind of transaction (expense or income).
type TransactionKind string

const (
	TransactionKindExpense TransactionKind = "expense"
	TransactionKindIncome  TransactionKind = "income"
)

// Valid reports whether the kind is one of the known values.
func (k TransactionKind) Valid() bool {
	return k == TransactionKindExpense || k == TransactionKindIncome
}

// Transaction represents a single ledger entry in the PocketLedger system.
// Amount is always non-negative; the kind determines direction.
type Transaction struct {
	ID         uuid.UUID
	UserID     uuid.UUID
	Kind       TransactionKind
	Category   string
	Amount     decimal.Decimal
	OccurredOn time.Time // Calendar date the transaction happened; time portion ignored
	Note       string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// NewTransaction creates a new Transaction entity.
func NewTransaction(
	userID uuid.UUID,
	kind TransactionKind,
	category string,
	amount decimal.Decimal,
	occurredOn time.Time,
	note string,
) *Transaction {
	now := time.Now().UTC()

	return &Transaction{
		ID:         uuid.New(),
		UserID:     userID,
		Kind:       kind,
		Category:   category,
		Amount:     amount,
		OccurredOn: occurredOn,
		Note:       note,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

// TransactionListResult represents the result of listing transactions.
type TransactionListResult struct {
	Transactions []*Transaction
	Total        int64
	Page         int
	Limit        int
	TotalPages   int
}
