// Package kafka publishes order lifecycle events to a Kafka topic. Publishing
// is best effort: handlers log failures and move on, so a broker outage never
// blocks an order operation.
package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"pos/internal/core/ports"

	kafkago "github.com/segmentio/kafka-go"
)

const writeTimeout = 5 * time.Second

// Publisher writes order events to a single topic, keyed by order code so
// all events of one order land on the same partition in order.
type Publisher struct {
	writer *kafkago.Writer
}

// NewPublisher creates a Kafka publisher for the given brokers and topic.
func NewPublisher(brokers []string, topic string) *Publisher {
	return &Publisher{
		writer: &kafkago.Writer{
			Addr:         kafkago.TCP(brokers...),
			Topic:        topic,
			Balancer:     &kafkago.Hash{},
			RequiredAcks: kafkago.RequireOne,
			WriteTimeout: writeTimeout,
		},
	}
}

// Publish sends one event as a JSON message.
func (p *Publisher) Publish(ctx context.Context, event ports.OrderEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal %s event: %w", event.Kind, err)
	}

	msg := kafkago.Message{
		Key:   []byte(event.OrderCode),
		Value: data,
		Headers: []kafkago.Header{
			{Key: "event_kind", Value: []byte(event.Kind)},
		},
	}

	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("write %s event for order %s: %w", event.Kind, event.OrderCode, err)
	}
	return nil
}

// Close flushes pending messages and releases the writer's connections.
func (p *Publisher) Close() error {
	return p.writer.Close()
}

// NoopPublisher discards events. Used when no brokers are configured.
type NoopPublisher struct{}

// Publish does nothing.
func (NoopPublisher) Publish(context.Context, ports.OrderEvent) error {
	return nil
}
