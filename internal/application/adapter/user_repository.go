package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/planify/backend/internal/domain/entity"
)

// UserRepository defines the persistence interface for auth accounts.
type UserRepository interface {
	// Create inserts a new account.
	Create(ctx context.Context, user *entity.User) error

	// FindByID retrieves an account by id.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindByEmail retrieves an account by email address.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// Update updates an existing account.
	Update(ctx context.Context, user *entity.User) error

	// ExistsByEmail checks if an account with the given email exists.
	ExistsByEmail(ctx context.Context, email string) (bool, error)

	// Delete removes an account by id.
	Delete(ctx context.Context, id uuid.UUID) error
}
