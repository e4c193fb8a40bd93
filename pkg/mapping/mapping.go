package mapping

import (
	"errors"
	"math"

	"github.com/chris/in-memory-ledger/pkg/api"
	"github.com/chris/in-memory-ledger/pkg/models"
	"github.com/shopspring/decimal"
)

// DateLayout renders transaction dates as a UTC date-time without zone designator.
const DateLayout = "2006-01-02T15:04:05"

// ErrFractionalAmount is returned when a requested amount is not a whole number of minor units.
var ErrFractionalAmount = errors.New("amount must be a whole number of minor units")

// ErrAmountOutOfRange is returned when a requested amount does not fit in 64 bits.
var ErrAmountOutOfRange = errors.New("amount out of range")

// maxExponent bounds the decimal exponent accepted before any arithmetic on the amount.
// Beyond it, comparisons and integer checks scale with the exponent itself.
const maxExponent = 18

var (
	maxMinorUnits = decimal.NewFromInt(math.MaxInt64)
	minMinorUnits = decimal.NewFromInt(math.MinInt64)
)

// ToApiAccount converts a domain Account and its balance to an API Account model.
func ToApiAccount(account *models.Account, balance int64) *api.Account {
	return &api.Account{
		Id:                         account.ID,
		CurrentBalanceInMinorUnits: balance,
	}
}

// ToApiTransaction converts a domain Transaction model to an API Transaction model.
func ToApiTransaction(tx *models.Transaction) *api.Transaction {
	return &api.Transaction{
		Id:                 tx.ID,
		AccountId:          tx.AccountID,
		Type:               api.TransactionType(tx.Type),
		AmountInMinorUnits: tx.AmountInMinorUnits,
		Date:               tx.Date.UTC().Format(DateLayout),
	}
}

// ToApiTransactions converts a domain Transactions model to an API Transactions model.
// An account without transactions maps to an empty list, never null.
func ToApiTransactions(txs *models.Transactions) *api.Transactions {
	apiTxs := make([]api.Transaction, len(txs.Transactions))
	for i := range txs.Transactions {
		apiTxs[i] = *ToApiTransaction(&txs.Transactions[i])
	}
	return &api.Transactions{
		AccountId:    txs.AccountID,
		Transactions: apiTxs,
	}
}

// ToMinorUnits converts a requested amount to an integer number of minor units.
// Whole numbers written with a fractional part, such as 0.00 or 1042.0, are accepted.
// Amounts written with more than 18 fraction digits or an exponent above 18 are out of range.
func ToMinorUnits(amount decimal.Decimal) (int64, error) {
	if exp := amount.Exponent(); exp < -maxExponent || exp > maxExponent {
		return 0, ErrAmountOutOfRange
	}
	if !amount.IsInteger() {
		return 0, ErrFractionalAmount
	}
	if amount.GreaterThan(maxMinorUnits) || amount.LessThan(minMinorUnits) {
		return 0, ErrAmountOutOfRange
	}
	return amount.IntPart(), nil
}
