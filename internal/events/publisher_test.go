package events

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInProcessEventPublisher_PaymentRecorded(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	publisher, pubSub := NewInProcessEventPublisher("payments.recorded", logger)
	defer publisher.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	messages, err := pubSub.Subscribe(ctx, "payments.recorded")
	require.NoError(t, err)

	event := PaymentRecordedEvent{
		PaymentID:     "p-1",
		TransactionID: "pi_123",
		Email:         "bob@x.io",
		ClassID:       "c-1",
		ClassName:     "Soccer",
		Price:         49.99,
		OccurredAt:    time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
	}
	require.NoError(t, publisher.PublishPaymentRecorded(ctx, event))

	select {
	case msg := <-messages:
		msg.Ack()
		assert.Equal(t, EventPaymentRecorded, msg.Metadata.Get(EventTypeKey))

		var got PaymentRecordedEvent
		require.NoError(t, json.Unmarshal(msg.Payload, &got))
		assert.Equal(t, event, got)
	case <-ctx.Done():
		t.Fatal("event was not delivered")
	}
}

func TestMockEventPublisher(t *testing.T) {
	mock := NewMockEventPublisher(nil)
	require.NoError(t, mock.PublishPaymentRecorded(context.Background(), PaymentRecordedEvent{PaymentID: "p-1"}))
	assert.Len(t, mock.GetPublishedEvents(), 1)

	mock.ClearEvents()
	assert.Empty(t, mock.GetPublishedEvents())
}
