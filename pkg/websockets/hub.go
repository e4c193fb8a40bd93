package websockets

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/chris/in-memory-ledger/pkg/events"
	"github.com/gorilla/websocket"
)

const writeWait = 5 * time.Second

// ErrConnectionExists is returned when a connection ID is registered twice.
var ErrConnectionExists = errors.New("connection already registered")

// Hub keeps the live WebSocket connections of this process and broadcasts events to them.
type Hub struct {
	mu    sync.RWMutex
	conns map[string]*hubConn
}

// hubConn serializes writes; a websocket connection supports only one concurrent writer.
type hubConn struct {
	mu   sync.Mutex
	conn Conn
}

// NewHub creates an empty Hub.
func NewHub() *Hub {
	return &Hub{conns: make(map[string]*hubConn)}
}

// Make sure we conform to the interfaces
var (
	_ ConnectionManager = (*Hub)(nil)
	_ events.Publisher  = (*Hub)(nil)
)

// AddConnection registers a connection under the given ID.
func (h *Hub) AddConnection(ctx context.Context, connectionID string, conn Conn) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if _, ok := h.conns[connectionID]; ok {
		return fmt.Errorf("%w: %s", ErrConnectionExists, connectionID)
	}
	h.conns[connectionID] = &hubConn{conn: conn}
	return nil
}

// RemoveConnection forgets a connection. Removing an unknown ID is not an error.
func (h *Hub) RemoveConnection(ctx context.Context, connectionID string) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	delete(h.conns, connectionID)
	return nil
}

// Len returns the number of registered connections.
func (h *Hub) Len() int {
	h.mu.RLock()
	defer h.mu.RUnlock()

	return len(h.conns)
}

// Publish sends a message to all connected clients.
// Connections that fail to accept the write are closed and removed.
func (h *Hub) Publish(ctx context.Context, message events.Message) error {
	payload, err := json.Marshal(message)
	if err != nil {
		return fmt.Errorf("failed to marshal message: %w", err)
	}

	h.mu.RLock()
	targets := make(map[string]*hubConn, len(h.conns))
	for id, c := range h.conns {
		targets[id] = c
	}
	h.mu.RUnlock()

	for connectionID, c := range targets {
		if err := c.write(payload); err != nil {
			slog.InfoContext(ctx, "stale connection found, deleting", "connectionId", connectionID, "error", err)
			_ = c.conn.Close()
			if err := h.RemoveConnection(ctx, connectionID); err != nil {
				slog.ErrorContext(ctx, "failed to delete stale connection", "error", err)
			}
		}
	}

	return nil
}

// Close closes every registered connection.
func (h *Hub) Close() error {
	h.mu.Lock()
	defer h.mu.Unlock()

	var errs []error
	for id, c := range h.conns {
		if err := c.conn.Close(); err != nil {
			errs = append(errs, err)
		}
		delete(h.conns, id)
	}
	return errors.Join(errs...)
}

func (c *hubConn) write(payload []byte) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
		return err
	}
	return c.conn.WriteMessage(websocket.TextMessage, payload)
}
