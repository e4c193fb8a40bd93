package storage

import (
	"context"

	"github.com/chris/in-memory-ledger/pkg/models"
)

// TransactionManager defines the interface for recording transactions against an account.
type TransactionManager interface {
	// MakeDeposit records a deposit and returns the created transaction.
	MakeDeposit(ctx context.Context, account *models.Account, amountInMinorUnits int64) (*models.Transaction, error)

	// MakeWithdrawal records a withdrawal if the account holds enough funds
	// and returns the created transaction.
	MakeWithdrawal(ctx context.Context, account *models.Account, amountInMinorUnits int64) (*models.Transaction, error)
}

// TransactionStore combines the ledger reader and the transaction manager.
type TransactionStore interface {
	LedgerReader
	TransactionManager
}
