package storage

import (
	"context"

	"github.com/chris/in-memory-ledger/pkg/models"
	"github.com/google/uuid"
)

// AccountStore defines the interface for creating and looking up accounts.
type AccountStore interface {
	// CreateAccount creates a new account with an empty ledger.
	CreateAccount(ctx context.Context) (*models.Account, error)

	// FindAccount retrieves an account by its ID.
	// It returns ErrUnknownAccount if no such account exists.
	FindAccount(ctx context.Context, id uuid.UUID) (*models.Account, error)
}
