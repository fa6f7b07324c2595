package main

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/IBM/sarama"
	"github.com/stretchr/testify/require"

	"github.com/vladislavdragonenkov/kitchen/internal/domain"
	"github.com/vladislavdragonenkov/kitchen/internal/messaging/kafka"
)

func TestParseConfig(t *testing.T) {
	t.Setenv("KITCHEN_KAFKA_BROKERS", "")
	t.Setenv("KITCHEN_KAFKA_TOPIC", "")

	cfg, err := parseConfig(nil)
	require.NoError(t, err)
	require.Equal(t, []string{"localhost:9092"}, cfg.brokers)
	require.Equal(t, kafka.TopicOrderStatus, cfg.topic)
	require.Equal(t, "kitchen-status-tail", cfg.group)
	require.False(t, cfg.fromBeginning)

	cfg, err = parseConfig([]string{"-brokers= k1:9092, ,k2:9092", "-topic=custom", "-order=7", "-from-beginning"})
	require.NoError(t, err)
	require.Equal(t, []string{"k1:9092", "k2:9092"}, cfg.brokers)
	require.Equal(t, "custom", cfg.topic)
	require.Equal(t, uint64(7), cfg.orderID)
	require.True(t, cfg.fromBeginning)

	t.Setenv("KITCHEN_KAFKA_BROKERS", "env:9092")
	cfg, err = parseConfig(nil)
	require.NoError(t, err)
	require.Equal(t, []string{"env:9092"}, cfg.brokers)

	for _, args := range [][]string{
		{"-brokers= , "},
		{"-topic= "},
		{"-group="},
		{"-order=abc"},
	} {
		_, err := parseConfig(args)
		require.Error(t, err, "args %v", args)
	}
}

func TestPrinterPrintsDecodedEnvelopes(t *testing.T) {
	var out bytes.Buffer
	printer := newPrinter(&out, 0)
	handler := func(ctx context.Context, msg *sarama.ConsumerMessage) error {
		event, err := kafka.ParseStatusEvent(msg)
		if err != nil {
			return err
		}
		return printer(ctx, event)
	}

	occurred := time.Date(2026, 2, 3, 4, 5, 6, 0, time.Local)
	events := []domain.StatusEvent{
		{ID: "e-1", OrderID: 1, Customer: "Ana", Status: domain.OrderStatusPending, Occurred: occurred},
		{ID: "e-2", OrderID: 1, Customer: "Ana", Status: domain.OrderStatusReady, Occurred: occurred},
	}
	for _, event := range events {
		msg := encode(t, event)
		require.NoError(t, handler(context.Background(), msg))
	}

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Equal(t, []string{
		"[Order #1] Status: PENDING (2026-02-03 04:05:06) customer=Ana",
		"[Order #1] Status: READY (2026-02-03 04:05:06) customer=Ana",
	}, lines)

	require.Error(t, handler(context.Background(), &sarama.ConsumerMessage{Value: []byte("not json")}))
}

func TestPrinterFiltersByOrder(t *testing.T) {
	var out bytes.Buffer
	printer := newPrinter(&out, 2)

	require.NoError(t, printer(context.Background(), domain.StatusEvent{OrderID: 1, Status: "PENDING"}))
	require.NoError(t, printer(context.Background(), domain.StatusEvent{OrderID: 2, Status: "PENDING"}))

	require.Equal(t, 1, strings.Count(out.String(), "\n"))
	require.Contains(t, out.String(), "[Order #2] Status: PENDING")
	require.NotContains(t, out.String(), "customer=")
}

func encode(t *testing.T, event domain.StatusEvent) *sarama.ConsumerMessage {
	t.Helper()

	raw, err := json.Marshal(kafka.NewStatusEnvelope(event))
	require.NoError(t, err)
	return &sarama.ConsumerMessage{Topic: kafka.TopicOrderStatus, Value: raw}
}
