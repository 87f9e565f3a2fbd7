package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransactionType represents the type of transaction (expense or income).
type TransactionType string

const (
	TransactionTypeExpense TransactionType = "expense"
	TransactionTypeIncome  TransactionType = "income"
)

// Transaction represents a financial transaction in the Planify system.
// Amount is an unsigned magnitude; the sign is implied by Type and is never
// stored negative.
type Transaction struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Title     string
	Amount    decimal.Decimal
	Type      TransactionType
	Category  string
	Date      string // YYYY-MM-DD
	CreatedAt time.Time
}

// NewTransaction creates a new Transaction entity for the given owner.
func NewTransaction(
	userID uuid.UUID,
	title string,
	amount decimal.Decimal,
	transactionType TransactionType,
	category string,
	date string,
) *Transaction {
	return &Transaction{
		ID:        uuid.New(),
		UserID:    userID,
		Title:     title,
		Amount:    amount.Abs(),
		Type:      transactionType,
		Category:  category,
		Date:      date,
		CreatedAt: time.Now().UTC(),
	}
}

// Clone returns a copy of the transaction.
func (t *Transaction) Clone() *Transaction {
	c := *t
	return &c
}

// SignedAmount returns the amount with the sign implied by the type.
func (t *Transaction) SignedAmount() decimal.Decimal {
	if t.Type == TransactionTypeExpense {
		return t.Amount.Neg()
	}
	return t.Amount
}

// IsValidTransactionType reports whether t is a known transaction type.
func IsValidTransactionType(t TransactionType) bool {
	return t == TransactionTypeExpense || t == TransactionTypeIncome
}
