package events

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill-kafka/v2/pkg/kafka"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

const (
	EventTypeKey         = "event_type"
	EventPaymentRecorded = "payment.recorded"
)

// PaymentRecordedEvent is emitted once a payment has been committed.
type PaymentRecordedEvent struct {
	PaymentID     string    `json:"payment_id"`
	TransactionID string    `json:"transaction_id"`
	Email         string    `json:"email"`
	ClassID       string    `json:"class_id"`
	ClassName     string    `json:"class_name"`
	Price         float64   `json:"price"`
	OccurredAt    time.Time `json:"occurred_at"`
}

// EventPublisher publishes domain events. Implementations must be safe for
// concurrent use.
type EventPublisher interface {
	PublishPaymentRecorded(ctx context.Context, event PaymentRecordedEvent) error
	Close() error
}

// WatermillEventPublisher publishes JSON payloads through any watermill
// publisher.
type WatermillEventPublisher struct {
	publisher message.Publisher
	topic     string
	logger    *slog.Logger
}

func NewWatermillEventPublisher(publisher message.Publisher, topic string, logger *slog.Logger) *WatermillEventPublisher {
	return &WatermillEventPublisher{
		publisher: publisher,
		topic:     topic,
		logger:    logger,
	}
}

// NewKafkaEventPublisher connects to the given brokers.
func NewKafkaEventPublisher(brokers []string, topic string, logger *slog.Logger) (*WatermillEventPublisher, error) {
	publisher, err := kafka.NewPublisher(
		kafka.PublisherConfig{
			Brokers:   brokers,
			Marshaler: kafka.DefaultMarshaler{},
		},
		watermill.NewSlogLogger(logger),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create kafka publisher: %w", err)
	}
	return NewWatermillEventPublisher(publisher, topic, logger), nil
}

// NewInProcessEventPublisher publishes onto an in-memory gochannel pub/sub.
// The returned GoChannel can be used to subscribe to the same topic.
func NewInProcessEventPublisher(topic string, logger *slog.Logger) (*WatermillEventPublisher, *gochannel.GoChannel) {
	pubSub := gochannel.NewGoChannel(gochannel.Config{}, watermill.NewSlogLogger(logger))
	return NewWatermillEventPublisher(pubSub, topic, logger), pubSub
}

func (p *WatermillEventPublisher) PublishPaymentRecorded(ctx context.Context, event PaymentRecordedEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	msg := message.NewMessage(watermill.NewUUID(), payload)
	msg.Metadata.Set(EventTypeKey, EventPaymentRecorded)
	msg.SetContext(ctx)

	if err := p.publisher.Publish(p.topic, msg); err != nil {
		return fmt.Errorf("failed to publish %s: %w", EventPaymentRecorded, err)
	}

	p.logger.Debug("Event published",
		"event_type", EventPaymentRecorded,
		"topic", p.topic,
		"message_id", msg.UUID)
	return nil
}

func (p *WatermillEventPublisher) Close() error {
	return p.publisher.Close()
}
