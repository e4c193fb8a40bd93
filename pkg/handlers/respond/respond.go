// Package respond writes JSON responses for the HTTP handlers.
package respond

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/chris/in-memory-ledger/pkg/api"
)

// MessageInternalError is the body message for failures the client cannot act on.
const MessageInternalError = "Internal server error."

// JSON writes v as the JSON body with the given status code.
func JSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.ErrorContext(r.Context(), "failed to write response", "error", err)
	}
}

// Error writes an api.Error body with the given status code.
func Error(w http.ResponseWriter, r *http.Request, status int, message string) {
	JSON(w, r, status, api.Error{Message: message})
}

// InternalError logs err and writes a generic 500 response.
func InternalError(w http.ResponseWriter, r *http.Request, msg string, err error) {
	slog.ErrorContext(r.Context(), msg, "error", err, "path", r.URL.Path)
	Error(w, r, http.StatusInternalServerError, MessageInternalError)
}
