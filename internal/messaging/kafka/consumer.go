package kafka

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"sync"
	"time"

	"github.com/IBM/sarama"
	log "github.com/sirupsen/logrus"

	"github.com/vladislavdragonenkov/kitchen/internal/domain"
)

// ErrMalformedStatusEvent — сообщение в топике статусов не разбирается как событие статуса.
// Такие сообщения не повторяются и сразу уходят в DLQ.
var ErrMalformedStatusEvent = errors.New("malformed status event")

// StatusFunc обрабатывает одно событие статуса из топика.
type StatusFunc func(ctx context.Context, event domain.StatusEvent) error

// ConsumerOptions задаёт параметры consumer.
type ConsumerOptions struct {
	DLQProducer   *Producer
	MaxAttempts   int
	RetryDelay    time.Duration
	FromBeginning bool
	Logger        *log.Entry
}

// DeadLetter — тело сообщения в kitchen.dlq.
type DeadLetter struct {
	OriginalTopic     string `json:"original_topic"`
	OriginalPartition int32  `json:"original_partition"`
	OriginalOffset    int64  `json:"original_offset"`
	OrderID           uint64 `json:"order_id,omitempty"`
	Value             string `json:"value"`
	Error             string `json:"error"`
	Attempts          int    `json:"attempts"`
	FailedAt          string `json:"failed_at"`
}

// StatusConsumer читает события статусов заказов в consumer group.
type StatusConsumer struct {
	group       sarama.ConsumerGroup
	topic       string
	handle      StatusFunc
	logger      *log.Entry
	wg          sync.WaitGroup
	dlq         *Producer
	maxAttempts int
	retryDelay  time.Duration
}

// NewStatusConsumer подключается к Kafka и готовит чтение topic.
func NewStatusConsumer(brokers []string, groupID, topic string, handle StatusFunc, opts ConsumerOptions) (*StatusConsumer, error) {
	config := sarama.NewConfig()
	config.Consumer.Group.Rebalance.GroupStrategies = []sarama.BalanceStrategy{sarama.NewBalanceStrategyRoundRobin()}
	config.Consumer.Offsets.Initial = sarama.OffsetNewest
	if opts.FromBeginning {
		config.Consumer.Offsets.Initial = sarama.OffsetOldest
	}
	config.Consumer.Return.Errors = true

	group, err := sarama.NewConsumerGroup(brokers, groupID, config)
	if err != nil {
		return nil, fmt.Errorf("failed to create kafka consumer: %w", err)
	}
	return newStatusConsumer(group, topic, handle, opts), nil
}

func newStatusConsumer(group sarama.ConsumerGroup, topic string, handle StatusFunc, opts ConsumerOptions) *StatusConsumer {
	if topic == "" {
		topic = TopicOrderStatus
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.WithField("component", "kafka-status-consumer")
	}
	if opts.MaxAttempts <= 0 {
		opts.MaxAttempts = 1
	}
	return &StatusConsumer{
		group:       group,
		topic:       topic,
		handle:      handle,
		logger:      logger,
		dlq:         opts.DLQProducer,
		maxAttempts: opts.MaxAttempts,
		retryDelay:  opts.RetryDelay,
	}
}

// Start запускает чтение в фоне до отмены ctx.
func (c *StatusConsumer) Start(ctx context.Context) error {
	c.wg.Add(1)
	go func() {
		defer c.wg.Done()
		for {
			// Consume завершается при каждом rebalance.
			if err := c.group.Consume(ctx, []string{c.topic}, c); err != nil {
				c.logger.WithError(err).Error("error from consumer")
			}
			if ctx.Err() != nil {
				return
			}
		}
	}()

	c.wg.Add(1)
	go func() {
		defer c.wg.Done()
		for err := range c.group.Errors() {
			c.logger.WithError(err).Error("consumer error")
		}
	}()

	c.logger.WithField("topic", c.topic).Info("kafka status consumer started")
	return nil
}

// Stop закрывает consumer group и ждёт фоновые горутины.
func (c *StatusConsumer) Stop() error {
	if err := c.group.Close(); err != nil {
		return fmt.Errorf("failed to close kafka consumer: %w", err)
	}
	c.wg.Wait()
	c.logger.Info("kafka status consumer stopped")
	return nil
}

func (c *StatusConsumer) Setup(sarama.ConsumerGroupSession) error { return nil }

func (c *StatusConsumer) Cleanup(sarama.ConsumerGroupSession) error { return nil }

// ConsumeClaim обрабатывает сообщения одной партиции по порядку.
// Offset сдвигается, только если событие обработано или отправлено в DLQ.
func (c *StatusConsumer) ConsumeClaim(session sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for {
		select {
		case message := <-claim.Messages():
			if message == nil {
				return nil
			}
			if err := c.process(session.Context(), message); err != nil {
				c.logger.WithError(err).WithFields(log.Fields{
					"partition": message.Partition,
					"offset":    message.Offset,
				}).Error("событие статуса не обработано")
				continue
			}
			session.MarkMessage(message, "")

		case <-session.Context().Done():
			return nil
		}
	}
}

func (c *StatusConsumer) process(ctx context.Context, message *sarama.ConsumerMessage) error {
	event, err := ParseStatusEvent(message)
	if err != nil {
		return c.deadLetter(message, fmt.Errorf("%w: %v", ErrMalformedStatusEvent, err), 0)
	}

	attempt := 1
	for {
		err = c.handle(ctx, event)
		if err == nil {
			return nil
		}
		if attempt >= c.maxAttempts {
			break
		}

		c.logger.WithFields(log.Fields{
			"order_id": event.OrderID,
			"status":   event.Status,
			"attempt":  attempt,
		}).WithError(err).Warn("обработка события статуса не удалась, повторяем")
		attempt++

		if c.retryDelay > 0 {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(c.retryDelay):
			}
		}
	}
	return c.deadLetter(message, err, attempt)
}

// deadLetter отправляет сообщение в kitchen.dlq; без DLQ возвращает исходную ошибку.
func (c *StatusConsumer) deadLetter(message *sarama.ConsumerMessage, cause error, attempts int) error {
	if c.dlq == nil {
		return cause
	}

	orderID, _ := strconv.ParseUint(string(message.Key), 10, 64)
	failedAt := time.Now().UTC().Format(time.RFC3339)
	letter := DeadLetter{
		OriginalTopic:     message.Topic,
		OriginalPartition: message.Partition,
		OriginalOffset:    message.Offset,
		OrderID:           orderID,
		Value:             string(message.Value),
		Error:             cause.Error(),
		Attempts:          attempts,
		FailedAt:          failedAt,
	}
	headers := []sarama.RecordHeader{
		{Key: []byte(HeaderOriginalTopic), Value: []byte(message.Topic)},
		{Key: []byte(HeaderErrorMessage), Value: []byte(cause.Error())},
		{Key: []byte(HeaderFailedAt), Value: []byte(failedAt)},
	}
	if err := c.dlq.publish(TopicDeadLetterQueue, string(message.Key), letter, headers); err != nil {
		return fmt.Errorf("failed to send to DLQ: %w", err)
	}

	c.logger.WithFields(log.Fields{
		"order_id": orderID,
		"attempts": attempts,
	}).WithError(cause).Warn("событие статуса отправлено в DLQ")
	return nil
}
