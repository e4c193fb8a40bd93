package storage

import (
	"context"

	"github.com/chris/in-memory-ledger/pkg/models"
)

// LedgerReader defines the interface for reading an account's ledger.
type LedgerReader interface {
	// CurrentBalance folds the account's transactions into its balance in minor units.
	CurrentBalance(ctx context.Context, account *models.Account) (int64, error)

	// AllTransactions retrieves the account's transactions in the order they were recorded.
	AllTransactions(ctx context.Context, account *models.Account) (*models.Transactions, error)
}
