package adapter

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/planify/backend/internal/domain/entity"
)

// DebtPatch is a partial update for a debt. Nil fields are left untouched.
type DebtPatch struct {
	Title        *string
	TotalAmount  *decimal.Decimal
	PaidAmount   *decimal.Decimal
	InterestRate *decimal.Decimal
}

// DebtRepository defines the remote-store interface for debts.
type DebtRepository interface {
	// FindByUserID retrieves all debts for a user.
	FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.Debt, error)

	// Create inserts a debt and returns the stored row.
	Create(ctx context.Context, debt *entity.Debt) (*entity.Debt, error)

	// Update applies a partial update to the debt with the given id.
	Update(ctx context.Context, userID, id uuid.UUID, patch DebtPatch) error

	// Delete removes the debt with the given id.
	Delete(ctx context.Context, userID, id uuid.UUID) error
}
