package kafka

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/IBM/sarama"
	"github.com/stretchr/testify/require"

	"github.com/vladislavdragonenkov/kitchen/internal/domain"
)

func TestNewStatusEnvelope(t *testing.T) {
	occurred := time.Date(2026, 2, 3, 4, 5, 6, 0, time.UTC)
	envelope := NewStatusEnvelope(domain.StatusEvent{
		ID:       "evt-1",
		OrderID:  1,
		Customer: "Ana",
		Status:   domain.OrderStatusInProgress,
		Occurred: occurred,
	})

	require.Equal(t, "evt-1", envelope.EventID)
	require.Equal(t, domain.EventTypeStatusChanged, envelope.EventType)
	require.Equal(t, "IN_PROGRESS", envelope.Status)
	require.Equal(t, "2026-02-03 04:05:06", envelope.Timestamp)
	require.Equal(t, occurred, envelope.OccurredAt)
	require.False(t, envelope.PublishedAt.IsZero())
}

func TestParseStatusEvent(t *testing.T) {
	raw, err := json.Marshal(NewStatusEnvelope(domain.StatusEvent{ID: "evt-1", OrderID: 4, Status: domain.OrderStatusReady}))
	require.NoError(t, err)

	event, err := ParseStatusEvent(&sarama.ConsumerMessage{Value: raw})
	require.NoError(t, err)
	require.Equal(t, uint64(4), event.OrderID)
	require.Equal(t, domain.OrderStatusReady, event.Status)
}

func TestParseStatusEventErrors(t *testing.T) {
	cases := map[string]string{
		"broken json":  "{",
		"foreign type": `{"event_type":"order.created","order_id":1,"status":"PENDING"}`,
		"no order id":  `{"event_type":"order.status_changed","status":"PENDING"}`,
		"no status":    `{"event_type":"order.status_changed","order_id":1}`,
	}

	for name, value := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := ParseStatusEvent(&sarama.ConsumerMessage{Value: []byte(value)})
			require.Error(t, err)
		})
	}
}
