package storage

import "errors"

// ErrUnknownAccount is returned when no account exists for the given ID.
var ErrUnknownAccount = errors.New("unknown account")

// ErrZeroAmount is returned when a deposit or withdrawal is requested with an amount of zero.
var ErrZeroAmount = errors.New("amount must not be zero")

// ErrNegativeAmount is returned when a deposit or withdrawal is requested with a negative amount.
var ErrNegativeAmount = errors.New("amount must not be negative")

// ErrInsufficientFunds is returned when a withdrawal exceeds the account's current balance.
var ErrInsufficientFunds = errors.New("insufficient funds")

// ErrBalanceOverflow is returned when a deposit would push the balance past the int64 range.
var ErrBalanceOverflow = errors.New("balance would overflow")
