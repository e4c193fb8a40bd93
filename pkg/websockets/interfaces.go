package websockets

import (
	"context"
	"time"
)

// Conn is the subset of *websocket.Conn the hub writes to.
type Conn interface {
	WriteMessage(messageType int, data []byte) error
	SetWriteDeadline(t time.Time) error
	Close() error
}

// ConnectionManager defines the interface for tracking live WebSocket connections.
type ConnectionManager interface {
	AddConnection(ctx context.Context, connectionID string, conn Conn) error
	RemoveConnection(ctx context.Context, connectionID string) error
}
