package websockets

import (
	"log/slog"
	"net/http"

	"github.com/chris/in-memory-ledger/pkg/websockets"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

// Handler upgrades HTTP requests to WebSocket connections that receive balance updates.
type Handler struct {
	connManager websockets.ConnectionManager
	upgrader    websocket.Upgrader
}

// NewHandler creates a new Handler.
func NewHandler(connManager websockets.ConnectionManager) *Handler {
	return &Handler{
		connManager: connManager,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool {
				// The feed is read-only and carries no credentials.
				return true
			},
		},
	}
}

// ServeHTTP handles WebSocket requests.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		slog.ErrorContext(r.Context(), "failed to upgrade connection", "error", err)
		return
	}
	defer conn.Close()

	connectionID := uuid.New().String()
	slog.InfoContext(r.Context(), "client connected", "connectionId", connectionID)

	ctx := r.Context()
	if err := h.connManager.AddConnection(ctx, connectionID, conn); err != nil {
		slog.ErrorContext(ctx, "failed to save connection ID", "error", err)
		return
	}

	defer func() {
		slog.InfoContext(ctx, "client disconnected", "connectionId", connectionID)
		if err := h.connManager.RemoveConnection(ctx, connectionID); err != nil {
			slog.ErrorContext(ctx, "failed to delete connection ID", "error", err)
		}
	}()

	// Clients do not send anything meaningful; reading is how a disconnect is detected.
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				slog.WarnContext(ctx, "unexpected close error", "connectionId", connectionID, "error", err)
			}
			break
		}
	}
}
