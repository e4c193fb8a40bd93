// Package server assembles the HTTP handler chain for the ledger service.
package server

import (
	"log/slog"
	"net/http"

	"github.com/chris/in-memory-ledger/pkg/api"
	"github.com/chris/in-memory-ledger/pkg/handlers"
	ledgermw "github.com/chris/in-memory-ledger/pkg/middleware"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Options configures the router. Nil fields are skipped.
type Options struct {
	Logger    *slog.Logger
	Telemetry *ledgermw.Telemetry
	// Websockets is mounted at /ws when set.
	Websockets http.Handler
}

// NewRouter mounts the generated API routes for h behind the shared middleware.
func NewRouter(h api.ServerInterface, opts Options) chi.Router {
	router := chi.NewRouter()

	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	if opts.Logger != nil {
		router.Use(ledgermw.NewStructuredLogger(opts.Logger))
	}
	if opts.Telemetry != nil {
		router.Use(opts.Telemetry.Middleware)
	}
	router.Use(middleware.Recoverer)

	if opts.Websockets != nil {
		router.Method(http.MethodGet, "/ws", opts.Websockets)
	}

	api.HandlerWithOptions(h, api.ChiServerOptions{
		BaseRouter:       router,
		ErrorHandlerFunc: handlers.ErrorHandler,
	})

	return router
}
