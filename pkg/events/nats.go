package events

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/nats-io/nats.go"
)

// NATSConn is the subset of *nats.Conn used by NATSPublisher.
type NATSConn interface {
	Publish(subj string, data []byte) error
	Drain() error
}

// NATSPublisher implements the Publisher interface using NATS core publish.
type NATSPublisher struct {
	Conn    NATSConn
	Subject string
}

// NewNATSPublisher connects to the NATS server at url.
func NewNATSPublisher(url, subject string) (*NATSPublisher, error) {
	nc, err := nats.Connect(url, nats.Name("in-memory-ledger"))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to NATS at %s: %w", url, err)
	}
	return &NATSPublisher{Conn: nc, Subject: subject}, nil
}

// Make sure we conform to the interface
var _ Publisher = (*NATSPublisher)(nil)

// Publish sends the message on the subject as JSON.
func (p *NATSPublisher) Publish(ctx context.Context, message Message) error {
	data, err := json.Marshal(message)
	if err != nil {
		return fmt.Errorf("failed to marshal message for NATS: %w", err)
	}

	if err := p.Conn.Publish(p.Subject, data); err != nil {
		return fmt.Errorf("failed to publish message to NATS: %w", err)
	}

	return nil
}

// Close drains pending messages and closes the connection.
func (p *NATSPublisher) Close() error {
	return p.Conn.Drain()
}
