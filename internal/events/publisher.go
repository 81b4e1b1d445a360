package events

import (
	"context"
	"log"
	"time"

	kafka "github.com/segmentio/kafka-go"
)

// Publisher writes post lifecycle events to Kafka. Writes are async with no
// required acks: event delivery is best-effort and must never slow down or
// fail a request. Losses still land in the logs via the error logger.
type Publisher struct {
	w *kafka.Writer
}

func NewPublisher(broker, topic string) *Publisher {
	return &Publisher{
		w: &kafka.Writer{
			Addr:         kafka.TCP(broker),
			Topic:        topic,
			Balancer:     &kafka.LeastBytes{},
			BatchTimeout: 50 * time.Millisecond,
			RequiredAcks: kafka.RequireNone,
			Async:        true,
			ErrorLogger:  kafka.LoggerFunc(log.Printf),
		},
	}
}

func (p *Publisher) Publish(ctx context.Context, key string, value []byte) error {
	return p.w.WriteMessages(ctx, kafka.Message{
		Key:   []byte(key),
		Value: value,
		Time:  time.Now(),
	})
}

func (p *Publisher) Close() error { return p.w.Close() }
