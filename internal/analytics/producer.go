package analytics

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/segmentio/kafka-go"
)

const EventGameFinished = "game.finished"

type Event struct {
	Name      string         `json:"event"`
	Payload   map[string]any `json:"payload"`
	Timestamp time.Time      `json:"timestamp"`
}

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// Producer publishes game events to Kafka. A nil *Producer is valid and drops everything.
type Producer struct {
	writer messageWriter
	now    func() time.Time
}

// NewProducer returns nil when no brokers or topic are configured.
func NewProducer(brokers []string, topic string) *Producer {
	if len(brokers) == 0 || topic == "" {
		return nil
	}

	return newProducer(&kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Topic:                  topic,
		Balancer:               &kafka.Hash{},
		AllowAutoTopicCreation: true,
	})
}

func newProducer(writer messageWriter) *Producer {
	return &Producer{
		writer: writer,
		now:    time.Now,
	}
}

// Publish writes one event keyed by key, so events of one game stay ordered.
func (that *Producer) Publish(ctx context.Context, name, key string, payload map[string]any) error {
	if that == nil || that.writer == nil {
		return nil
	}

	body, err := json.Marshal(Event{
		Name:      name,
		Payload:   payload,
		Timestamp: that.now().UTC(),
	})
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	if err = that.writer.WriteMessages(ctx, kafka.Message{Key: []byte(key), Value: body}); err != nil {
		return fmt.Errorf("kafka publish failed: %w", err)
	}

	return nil
}

func (that *Producer) Close() error {
	if that == nil || that.writer == nil {
		return nil
	}

	if err := that.writer.Close(); err != nil {
		return fmt.Errorf("failed to close kafka writer: %w", err)
	}

	return nil
}
