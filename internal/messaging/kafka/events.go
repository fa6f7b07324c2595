package kafka

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/IBM/sarama"

	"github.com/vladislavdragonenkov/kitchen/internal/domain"
)

// Topics для Kafka
const (
	TopicOrderStatus     = "kitchen.order.status"
	TopicDeadLetterQueue = "kitchen.dlq" // Dead Letter Queue для failed messages
)

// Заголовки сообщений kitchen.order.status и kitchen.dlq.
const (
	HeaderOriginalTopic = "x-original-topic"
	HeaderErrorMessage  = "x-error-message"
	HeaderFailedAt      = "x-failed-at"
	HeaderEventType     = "x-event-type"
)

// StatusEnvelope — формат сообщения о смене статуса в топике.
type StatusEnvelope struct {
	EventID     string    `json:"event_id"`
	EventType   string    `json:"event_type"`
	OrderID     uint64    `json:"order_id"`
	Customer    string    `json:"customer,omitempty"`
	Status      string    `json:"status"`
	Timestamp   string    `json:"timestamp"`
	OccurredAt  time.Time `json:"occurred_at"`
	PublishedAt time.Time `json:"published_at"`
}

// NewStatusEnvelope строит сообщение из события статуса.
func NewStatusEnvelope(event domain.StatusEvent) StatusEnvelope {
	return StatusEnvelope{
		EventID:     event.ID,
		EventType:   domain.EventTypeStatusChanged,
		OrderID:     event.OrderID,
		Customer:    event.Customer,
		Status:      string(event.Status),
		Timestamp:   event.Timestamp(),
		OccurredAt:  event.Occurred,
		PublishedAt: time.Now().UTC(),
	}
}

// ParseStatusEvent разбирает событие статуса из сообщения Kafka.
func ParseStatusEvent(message *sarama.ConsumerMessage) (domain.StatusEvent, error) {
	var envelope StatusEnvelope
	if err := json.Unmarshal(message.Value, &envelope); err != nil {
		return domain.StatusEvent{}, fmt.Errorf("failed to unmarshal status event: %w", err)
	}
	if envelope.EventType != "" && envelope.EventType != domain.EventTypeStatusChanged {
		return domain.StatusEvent{}, fmt.Errorf("unexpected event type %q", envelope.EventType)
	}
	if envelope.OrderID == 0 || envelope.Status == "" {
		return domain.StatusEvent{}, fmt.Errorf("status event without order_id or status")
	}

	return domain.StatusEvent{
		ID:       envelope.EventID,
		OrderID:  envelope.OrderID,
		Customer: envelope.Customer,
		Status:   domain.OrderStatus(envelope.Status),
		Occurred: envelope.OccurredAt,
	}, nil
}
