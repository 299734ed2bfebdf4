package events

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"storefront_checkout/internal/domain/entities"
	"storefront_checkout/internal/usecase/interfaces"

	"github.com/segmentio/kafka-go"
)

const (
	EventTransactionCompleted = "transaction.completed"

	publishTimeout = 5 * time.Second
)

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// TransactionCompletedEvent is the message value. Card data is limited to
// brand and last four.
type TransactionCompletedEvent struct {
	EventType     string                     `json:"event_type"`
	TransactionID string                     `json:"transaction_id"`
	SessionID     string                     `json:"session_id"`
	ProductID     string                     `json:"product_id"`
	Amount        int64                      `json:"amount"`
	Currency      string                     `json:"currency"`
	Status        entities.TransactionStatus `json:"status"`
	Gateway       string                     `json:"gateway"`
	CardBrand     entities.CardBrand         `json:"card_brand,omitempty"`
	CardLast4     string                     `json:"card_last4,omitempty"`
	OccurredAt    time.Time                  `json:"occurred_at"`
}

// KafkaTransactionPublisher writes transaction.completed events keyed by
// transaction id.
type KafkaTransactionPublisher struct {
	writer messageWriter
}

var _ interfaces.ITransactionEventPublisher = (*KafkaTransactionPublisher)(nil)

func NewKafkaTransactionPublisher(brokers []string, topic string, batchTimeout time.Duration) *KafkaTransactionPublisher {
	log.Printf("[events][kafka] publisher ready brokers=%v topic=%s", brokers, topic)
	return &KafkaTransactionPublisher{
		writer: &kafka.Writer{
			Addr:                   kafka.TCP(brokers...),
			Topic:                  topic,
			Balancer:               &kafka.LeastBytes{},
			BatchTimeout:           batchTimeout,
			AllowAutoTopicCreation: true,
		},
	}
}

func (p *KafkaTransactionPublisher) PublishTransactionCompleted(ctx context.Context, t entities.Transaction) error {
	value, err := json.Marshal(TransactionCompletedEvent{
		EventType:     EventTransactionCompleted,
		TransactionID: t.ID,
		SessionID:     t.SessionID,
		ProductID:     t.ProductID,
		Amount:        t.Amount,
		Currency:      t.Currency,
		Status:        t.Status,
		Gateway:       t.Gateway,
		CardBrand:     t.CardBrand,
		CardLast4:     t.CardLast4,
		OccurredAt:    t.CreatedAt,
	})
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, publishTimeout)
	defer cancel()
	err = p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(t.ID),
		Value: value,
		Headers: []kafka.Header{
			{Key: "event_type", Value: []byte(EventTransactionCompleted)},
		},
	})
	if err != nil {
		return err
	}
	log.Printf("[events][kafka] published event=%s transaction_id=%s", EventTransactionCompleted, t.ID)
	return nil
}

func (p *KafkaTransactionPublisher) Close() error {
	return p.writer.Close()
}
