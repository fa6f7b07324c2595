package domain

import (
	"encoding/json"
	"fmt"
	"strconv"
	"time"
)

const (
	// AggregateTypeOrder — тип агрегата для outbox-сообщений о заказах.
	AggregateTypeOrder = "order"
	// EventTypeStatusChanged — тип события смены статуса.
	EventTypeStatusChanged = "order.status_changed"
)

// StatusEvent описывает запись нового статуса заказа.
type StatusEvent struct {
	// ID уникален для события и используется для идемпотентной записи в журнал.
	ID       string      `json:"event_id"`
	OrderID  uint64      `json:"order_id"`
	Customer string      `json:"customer,omitempty"`
	Status   OrderStatus `json:"status"`
	Occurred time.Time   `json:"occurred_at"`
}

// Timestamp форматирует момент события в TimestampLayout.
func (e StatusEvent) Timestamp() string {
	return e.Occurred.Format(TimestampLayout)
}

// ToOutboxMessage упаковывает событие в outbox-сообщение.
func (e StatusEvent) ToOutboxMessage() (OutboxMessage, error) {
	payload, err := json.Marshal(e)
	if err != nil {
		return OutboxMessage{}, fmt.Errorf("marshal status event: %w", err)
	}

	return OutboxMessage{
		ID:            e.ID,
		AggregateType: AggregateTypeOrder,
		AggregateID:   strconv.FormatUint(e.OrderID, 10),
		EventType:     EventTypeStatusChanged,
		Payload:       payload,
		CreatedAt:     e.Occurred,
	}, nil
}

// StatusEventFromOutbox распаковывает событие статуса из outbox-сообщения.
func StatusEventFromOutbox(msg OutboxMessage) (StatusEvent, error) {
	if msg.EventType != EventTypeStatusChanged {
		return StatusEvent{}, fmt.Errorf("unexpected event type %q", msg.EventType)
	}

	var event StatusEvent
	if err := json.Unmarshal(msg.Payload, &event); err != nil {
		return StatusEvent{}, fmt.Errorf("unmarshal status event: %w", err)
	}
	if event.ID == "" {
		event.ID = msg.ID
	}
	return event, nil
}
