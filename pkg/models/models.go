package models

import (
	"time"

	"github.com/google/uuid"
)

// TransactionType defines the direction of a transaction.
type TransactionType string

const (
	DEPOSIT    TransactionType = "DEPOSIT"
	WITHDRAWAL TransactionType = "WITHDRAWAL"
)

// Account represents the internal domain model for an account.
// An account is only an identity; its balance is derived from its transactions.
type Account struct {
	ID uuid.UUID `json:"id"`
}

// Transaction represents a single immutable entry in an account's ledger.
// BalanceAfterInMinorUnits is the account balance right after this entry was recorded.
type Transaction struct {
	ID                       uuid.UUID       `json:"id"`
	AccountID                uuid.UUID       `json:"account_id"`
	Type                     TransactionType `json:"type"`
	AmountInMinorUnits       int64           `json:"amount_in_minor_units"`
	BalanceAfterInMinorUnits int64           `json:"balance_after_in_minor_units"`
	Date                     time.Time       `json:"date"`
}

// Signed returns the amount as it contributes to the balance.
func (t Transaction) Signed() int64 {
	if t.Type == WITHDRAWAL {
		return -t.AmountInMinorUnits
	}
	return t.AmountInMinorUnits
}

// Transactions is an account's ledger in the order it was recorded.
type Transactions struct {
	AccountID    uuid.UUID     `json:"account_id"`
	Transactions []Transaction `json:"transactions"`
}
