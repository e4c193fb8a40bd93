package accounts

import (
	"errors"
	"net/http"

	"github.com/chris/in-memory-ledger/pkg/api"
	"github.com/chris/in-memory-ledger/pkg/handlers/respond"
	"github.com/chris/in-memory-ledger/pkg/mapping"
	"github.com/chris/in-memory-ledger/pkg/storage"
)

// MessageUnknownAccount is returned with 404 for any account ID the store does not know.
const MessageUnknownAccount = "Unknown account."

// AccountsHandler holds the dependencies for account-related handlers.
type AccountsHandler struct {
	Store storage.AccountLedger
}

// NewAccountsHandler creates a new AccountsHandler.
func NewAccountsHandler(store storage.AccountLedger) *AccountsHandler {
	return &AccountsHandler{Store: store}
}

// CreateAccount handles the logic for creating a new account.
func (h *AccountsHandler) CreateAccount(w http.ResponseWriter, r *http.Request) {
	account, err := h.Store.CreateAccount(r.Context())
	if err != nil {
		respond.InternalError(w, r, "failed to create account", err)
		return
	}

	balance, err := h.Store.CurrentBalance(r.Context(), account)
	if err != nil {
		respond.InternalError(w, r, "failed to read balance of new account", err)
		return
	}

	respond.JSON(w, r, http.StatusCreated, mapping.ToApiAccount(account, balance))
}

// GetAccount handles the logic for retrieving an account and its current balance.
func (h *AccountsHandler) GetAccount(w http.ResponseWriter, r *http.Request, id api.AccountId) {
	account, err := h.Store.FindAccount(r.Context(), id)
	if err != nil {
		h.lookupFailed(w, r, err)
		return
	}

	balance, err := h.Store.CurrentBalance(r.Context(), account)
	if err != nil {
		h.lookupFailed(w, r, err)
		return
	}

	respond.JSON(w, r, http.StatusOK, mapping.ToApiAccount(account, balance))
}

// GetAccountTransactions handles the logic for listing an account's transactions.
func (h *AccountsHandler) GetAccountTransactions(w http.ResponseWriter, r *http.Request, id api.AccountId) {
	account, err := h.Store.FindAccount(r.Context(), id)
	if err != nil {
		h.lookupFailed(w, r, err)
		return
	}

	txs, err := h.Store.AllTransactions(r.Context(), account)
	if err != nil {
		h.lookupFailed(w, r, err)
		return
	}

	respond.JSON(w, r, http.StatusOK, mapping.ToApiTransactions(txs))
}

func (h *AccountsHandler) lookupFailed(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, storage.ErrUnknownAccount) {
		respond.Error(w, r, http.StatusNotFound, MessageUnknownAccount)
		return
	}
	respond.InternalError(w, r, "failed to read account", err)
}
