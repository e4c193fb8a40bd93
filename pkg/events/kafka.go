package events

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/segmentio/kafka-go"
)

// MessageWriter is the subset of *kafka.Writer used by KafkaPublisher.
type MessageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// KafkaPublisher implements the Publisher interface using Kafka.
// Messages are keyed by account ID so each account's updates stay ordered within a partition.
type KafkaPublisher struct {
	Writer MessageWriter
}

// NewKafkaPublisher creates a KafkaPublisher writing to topic on the given brokers.
func NewKafkaPublisher(brokers []string, topic string) *KafkaPublisher {
	return &KafkaPublisher{
		Writer: &kafka.Writer{
			Addr:                   kafka.TCP(brokers...),
			Topic:                  topic,
			Balancer:               &kafka.Hash{},
			AllowAutoTopicCreation: true,
		},
	}
}

// Make sure we conform to the interface
var _ Publisher = (*KafkaPublisher)(nil)

// Publish writes the message to the topic as JSON.
func (p *KafkaPublisher) Publish(ctx context.Context, message Message) error {
	data, err := json.Marshal(message)
	if err != nil {
		return fmt.Errorf("failed to marshal message for Kafka: %w", err)
	}

	err = p.Writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(message.Key()),
		Value: data,
		Headers: []kafka.Header{
			{Key: "type", Value: []byte(message.Type)},
		},
	})
	if err != nil {
		return fmt.Errorf("failed to write message to Kafka: %w", err)
	}

	return nil
}

// Close flushes pending messages and closes the writer.
func (p *KafkaPublisher) Close() error {
	return p.Writer.Close()
}
