package events

import (
	"context"
	"encoding/json"
	"time"

	"bundlestay/internal/pkg/errs"
	"bundlestay/internal/usecase/commands"

	"github.com/segmentio/kafka-go"
)

// Producer writes booking and bundle lifecycle events to Kafka. Publishing
// is fire-and-forget from the caller's point of view; delivery failures are
// the caller's to log, not to fail a request over.
type Producer struct {
	writer *kafka.Writer
}

func NewProducer(brokers []string) *Producer {
	writer := &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Balancer:     &kafka.LeastBytes{},
		BatchTimeout: 50 * time.Millisecond,
		RequiredAcks: kafka.RequireOne,
	}
	return &Producer{writer: writer}
}

func (p *Producer) Publish(ctx context.Context, topic, key string, payload any) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return errs.Wrap(err, "failed to marshal event payload")
	}

	message := kafka.Message{
		Topic: topic,
		Key:   []byte(key),
		Value: data,
		Time:  time.Now(),
	}
	if err := p.writer.WriteMessages(ctx, message); err != nil {
		return errs.Wrap(err, "failed to write event")
	}
	return nil
}

func (p *Producer) Close() error {
	return p.writer.Close()
}

var _ commands.EventPublisher = (*Producer)(nil)
