package handlers

import (
	"errors"
	"net/http"

	"github.com/chris/in-memory-ledger/pkg/api"
	"github.com/chris/in-memory-ledger/pkg/events"
	"github.com/chris/in-memory-ledger/pkg/handlers/accounts"
	"github.com/chris/in-memory-ledger/pkg/handlers/respond"
	"github.com/chris/in-memory-ledger/pkg/handlers/transactions"
	"github.com/chris/in-memory-ledger/pkg/storage"
)

// ApiHandler implements the generated server interface.
// It composes the resource handlers, each holding only the dependencies it needs.
type ApiHandler struct {
	*accounts.AccountsHandler
	*transactions.TransactionsHandler
}

// NewApiHandler creates a new ApiHandler with storage and publisher dependencies.
func NewApiHandler(store storage.Storage, publisher events.Publisher) *ApiHandler {
	return &ApiHandler{
		AccountsHandler:     accounts.NewAccountsHandler(store),
		TransactionsHandler: transactions.NewTransactionsHandler(store, publisher),
	}
}

// Make sure we conform to the interface
var _ api.ServerInterface = (*ApiHandler)(nil)

// HealthCheck reports that the process is serving requests.
func (h *ApiHandler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	respond.JSON(w, r, http.StatusOK, api.Health{Status: "ok"})
}

// ErrorHandler renders request parameter binding failures, such as a malformed account ID.
func ErrorHandler(w http.ResponseWriter, r *http.Request, err error) {
	var invalid *api.InvalidParamFormatError
	if errors.As(err, &invalid) {
		respond.Error(w, r, http.StatusBadRequest, "Invalid "+invalid.ParamName+".")
		return
	}
	respond.Error(w, r, http.StatusBadRequest, err.Error())
}
