package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Debt represents an outstanding debt being paid down. There is no
// enforcement that PaidAmount stays below TotalAmount.
type Debt struct {
	ID           uuid.UUID
	UserID       uuid.UUID
	Title        string
	TotalAmount  decimal.Decimal
	PaidAmount   decimal.Decimal
	InterestRate decimal.Decimal
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// NewDebt creates a new Debt entity for the given owner.
func NewDebt(userID uuid.UUID, title string, total, paid, interestRate decimal.Decimal) *Debt {
	now := time.Now().UTC()

	return &Debt{
		ID:           uuid.New(),
		UserID:       userID,
		Title:        title,
		TotalAmount:  total,
		PaidAmount:   paid,
		InterestRate: interestRate,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

// Remaining returns the unpaid balance (total minus paid).
func (d *Debt) Remaining() decimal.Decimal {
	return d.TotalAmount.Sub(d.PaidAmount)
}

// Clone returns a copy of the debt.
func (d *Debt) Clone() *Debt {
	c := *d
	return &c
}
