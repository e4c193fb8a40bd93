package events

import (
	"context"
	"errors"
	"io"

	"github.com/chris/in-memory-ledger/pkg/models"
)

// MessageType defines the type of an event message.
type MessageType string

const (
	// MessageTypeBalanceUpdate is for messages that report a recorded transaction and the resulting balance.
	MessageTypeBalanceUpdate MessageType = "balanceUpdate"
)

// Message represents a generic event message.
type Message struct {
	Type    MessageType `json:"type"`
	Payload interface{} `json:"payload"`
}

// BalanceUpdatePayload is the payload for a balanceUpdate message.
type BalanceUpdatePayload struct {
	AccountID     string `json:"account_id"`
	TransactionID string `json:"transaction_id"`
	Type          string `json:"type"`
	Change        int64  `json:"change"`
	NewBalance    int64  `json:"new_balance"`
}

// NewBalanceUpdate builds the balanceUpdate message for a recorded transaction.
func NewBalanceUpdate(tx *models.Transaction, newBalance int64) Message {
	return Message{
		Type: MessageTypeBalanceUpdate,
		Payload: BalanceUpdatePayload{
			AccountID:     tx.AccountID.String(),
			TransactionID: tx.ID.String(),
			Type:          string(tx.Type),
			Change:        tx.Signed(),
			NewBalance:    newBalance,
		},
	}
}

// Key returns the partitioning key of a message: the account it concerns, if any.
func (m Message) Key() string {
	if p, ok := m.Payload.(BalanceUpdatePayload); ok {
		return p.AccountID
	}
	return ""
}

// Publisher defines the interface for publishing event messages.
type Publisher interface {
	Publish(ctx context.Context, message Message) error
}

// NoOpPublisher is a publisher that does nothing.
type NoOpPublisher struct{}

// Publish does nothing.
func (p *NoOpPublisher) Publish(ctx context.Context, message Message) error {
	return nil
}

// MultiPublisher fans a message out to every publisher it holds.
type MultiPublisher []Publisher

// Publish sends the message to every publisher, even if some of them fail.
func (m MultiPublisher) Publish(ctx context.Context, message Message) error {
	var errs []error
	for _, p := range m {
		if err := p.Publish(ctx, message); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Close closes every publisher that holds resources.
func (m MultiPublisher) Close() error {
	var errs []error
	for _, p := range m {
		if c, ok := p.(io.Closer); ok {
			if err := c.Close(); err != nil {
				errs = append(errs, err)
			}
		}
	}
	return errors.Join(errs...)
}

// Make sure we conform to the interface
var (
	_ Publisher = (*NoOpPublisher)(nil)
	_ Publisher = MultiPublisher(nil)
)
