package transactions

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/chris/in-memory-ledger/pkg/api"
	"github.com/chris/in-memory-ledger/pkg/events"
	"github.com/chris/in-memory-ledger/pkg/handlers/accounts"
	"github.com/chris/in-memory-ledger/pkg/handlers/respond"
	"github.com/chris/in-memory-ledger/pkg/mapping"
	"github.com/chris/in-memory-ledger/pkg/models"
	"github.com/chris/in-memory-ledger/pkg/storage"
)

// MessageInvalidBody is returned with 400 when the request body cannot be read as an amount.
const MessageInvalidBody = "Invalid request body."

// maxBodyBytes caps the size of an amount request body.
const maxBodyBytes = 4 << 10

// TransactionsHandler holds the dependencies for transaction-related handlers.
type TransactionsHandler struct {
	Store     storage.Storage
	Publisher events.Publisher
}

// NewTransactionsHandler creates a new TransactionsHandler.
func NewTransactionsHandler(store storage.Storage, publisher events.Publisher) *TransactionsHandler {
	return &TransactionsHandler{Store: store, Publisher: publisher}
}

// outcome maps a store error to the response the client receives.
type outcome struct {
	err     error
	message string
}

// operation is one way of recording a transaction, with its own error messages.
type operation struct {
	name     string
	record   func(ctx context.Context, account *models.Account, amountInMinorUnits int64) (*models.Transaction, error)
	outcomes []outcome
}

// Deposit handles the logic for depositing into an account.
func (h *TransactionsHandler) Deposit(w http.ResponseWriter, r *http.Request, id api.AccountId) {
	h.handle(w, r, id, operation{
		name:   "deposit",
		record: h.Store.MakeDeposit,
		outcomes: []outcome{
			{storage.ErrZeroAmount, "Attempted to deposit with an amount of zero."},
			{storage.ErrNegativeAmount, "Attempted to deposit with a negative amount."},
			{storage.ErrBalanceOverflow, "Attempted to deposit but the balance would overflow."},
		},
	})
}

// Withdraw handles the logic for withdrawing from an account.
func (h *TransactionsHandler) Withdraw(w http.ResponseWriter, r *http.Request, id api.AccountId) {
	h.handle(w, r, id, operation{
		name:   "withdrawal",
		record: h.Store.MakeWithdrawal,
		outcomes: []outcome{
			{storage.ErrZeroAmount, "Attempted to withdraw with an amount of zero."},
			{storage.ErrNegativeAmount, "Attempted to withdraw with a negative amount."},
			{storage.ErrInsufficientFunds, "Attempted to withdraw but had insufficient funds."},
		},
	})
}

func (h *TransactionsHandler) handle(w http.ResponseWriter, r *http.Request, id api.AccountId, op operation) {
	var req api.AmountRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&req); err != nil {
		respond.Error(w, r, http.StatusBadRequest, MessageInvalidBody)
		return
	}
	amount, err := mapping.ToMinorUnits(req.AmountInMinorUnits)
	if err != nil {
		respond.Error(w, r, http.StatusBadRequest, MessageInvalidBody)
		return
	}

	account, err := h.Store.FindAccount(r.Context(), id)
	if err != nil {
		if errors.Is(err, storage.ErrUnknownAccount) {
			respond.Error(w, r, http.StatusNotFound, accounts.MessageUnknownAccount)
			return
		}
		respond.InternalError(w, r, "failed to find account", err)
		return
	}

	tx, err := op.record(r.Context(), account, amount)
	if err != nil {
		if errors.Is(err, storage.ErrUnknownAccount) {
			respond.Error(w, r, http.StatusNotFound, accounts.MessageUnknownAccount)
			return
		}
		for _, o := range op.outcomes {
			if errors.Is(err, o.err) {
				respond.Error(w, r, http.StatusBadRequest, o.message)
				return
			}
		}
		respond.InternalError(w, r, "failed to record "+op.name, err)
		return
	}

	h.publish(r.Context(), tx)

	respond.JSON(w, r, http.StatusCreated, mapping.ToApiTransaction(tx))
}

// publish notifies subscribers of the recorded transaction and the balance it produced.
// Failures are logged and never fail the request; the transaction is already recorded.
func (h *TransactionsHandler) publish(ctx context.Context, tx *models.Transaction) {
	if h.Publisher == nil {
		return
	}

	if err := h.Publisher.Publish(ctx, events.NewBalanceUpdate(tx, tx.BalanceAfterInMinorUnits)); err != nil {
		slog.ErrorContext(ctx, "failed to publish balance update", "transactionId", tx.ID, "error", err)
	}
}
