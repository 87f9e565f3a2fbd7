package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/planify/backend/internal/domain/entity"
)

// TransactionRepository defines the remote-store interface for transactions.
type TransactionRepository interface {
	// FindByUserID retrieves all transactions for a user, most recent date first.
	FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.Transaction, error)

	// Create inserts a transaction and returns the stored row.
	Create(ctx context.Context, transaction *entity.Transaction) (*entity.Transaction, error)

	// Delete removes the transaction with the given id.
	Delete(ctx context.Context, userID, id uuid.UUID) error
}
