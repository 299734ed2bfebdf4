package events

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"storefront_checkout/internal/domain/entities"

	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/require"
)

type fakeWriter struct {
	msgs   []kafka.Message
	err    error
	closed bool
}

func (f *fakeWriter) WriteMessages(_ context.Context, msgs ...kafka.Message) error {
	if f.err != nil {
		return f.err
	}
	f.msgs = append(f.msgs, msgs...)
	return nil
}

func (f *fakeWriter) Close() error {
	f.closed = true
	return nil
}

func TestKafkaTransactionPublisher(t *testing.T) {
	tx := entities.Transaction{
		ID:        "tx-1",
		SessionID: "s1",
		ProductID: "PROD-001",
		Amount:    101000,
		Currency:  "COP",
		Status:    entities.TransactionStatusApproved,
		Gateway:   "simulated",
		CardBrand: entities.CardBrandVisa,
		CardLast4: "1111",
		CreatedAt: time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC),
	}

	t.Run("publishes keyed event", func(t *testing.T) {
		w := &fakeWriter{}
		p := &KafkaTransactionPublisher{writer: w}

		require.NoError(t, p.PublishTransactionCompleted(context.Background(), tx))
		require.Len(t, w.msgs, 1)
		require.Equal(t, "tx-1", string(w.msgs[0].Key))
		require.Equal(t, EventTransactionCompleted, string(w.msgs[0].Headers[0].Value))

		var evt TransactionCompletedEvent
		require.NoError(t, json.Unmarshal(w.msgs[0].Value, &evt))
		require.Equal(t, EventTransactionCompleted, evt.EventType)
		require.Equal(t, int64(101000), evt.Amount)
		require.Equal(t, entities.TransactionStatusApproved, evt.Status)
		require.Equal(t, "1111", evt.CardLast4)
		require.NotContains(t, string(w.msgs[0].Value), "card_number")
	})

	t.Run("writer error is returned", func(t *testing.T) {
		w := &fakeWriter{err: errors.New("broker down")}
		p := &KafkaTransactionPublisher{writer: w}
		require.EqualError(t, p.PublishTransactionCompleted(context.Background(), tx), "broker down")
	})

	t.Run("close", func(t *testing.T) {
		w := &fakeWriter{}
		p := &KafkaTransactionPublisher{writer: w}
		require.NoError(t, p.Close())
		require.True(t, w.closed)
	})
}
