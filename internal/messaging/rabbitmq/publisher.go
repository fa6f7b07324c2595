package rabbitmq

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	log "github.com/sirupsen/logrus"

	"github.com/vladislavdragonenkov/kitchen/internal/domain"
)

const (
	// DefaultExchange — topic exchange для событий статуса заказов.
	DefaultExchange = "kitchen.status"
	// RoutingKeyPrefix — префикс ключа маршрутизации; полный ключ order.status.<STATUS>.
	RoutingKeyPrefix = "order.status."

	defaultPublishTimeout = 5 * time.Second
	unknownStatusKey      = "unknown"
)

// Channel — подмножество *amqp.Channel, которое нужно паблишеру.
type Channel interface {
	ExchangeDeclare(name, kind string, durable, autoDelete, internal, noWait bool, args amqp.Table) error
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
	IsClosed() bool
	Close() error
}

// Publisher отправляет события статуса в topic exchange RabbitMQ.
type Publisher struct {
	conn     *amqp.Connection
	ch       Channel
	exchange string
	timeout  time.Duration
	logger   *log.Entry

	mu     sync.RWMutex
	closed bool
}

// Dial подключается к брокеру и объявляет exchange.
func Dial(url, exchange string, logger *log.Entry) (*Publisher, error) {
	conn, err := amqp.DialConfig(url, amqp.Config{
		Heartbeat: 10 * time.Second,
		Locale:    "en_US",
		Dial:      amqp.DefaultDial(10 * time.Second),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to rabbitmq: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("failed to open rabbitmq channel: %w", err)
	}

	publisher, err := NewPublisherWithChannel(ch, exchange, logger)
	if err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, err
	}
	publisher.conn = conn
	return publisher, nil
}

// NewPublisherWithChannel создаёт паблишер поверх готового канала.
func NewPublisherWithChannel(ch Channel, exchange string, logger *log.Entry) (*Publisher, error) {
	if ch == nil {
		return nil, errors.New("rabbitmq channel is nil")
	}
	if exchange == "" {
		exchange = DefaultExchange
	}
	if logger == nil {
		logger = log.WithField("component", "rabbitmq-publisher")
	}

	if err := ch.ExchangeDeclare(exchange, "topic", true, false, false, false, nil); err != nil {
		return nil, fmt.Errorf("failed to declare exchange %s: %w", exchange, err)
	}

	return &Publisher{
		ch:       ch,
		exchange: exchange,
		timeout:  defaultPublishTimeout,
		logger:   logger.WithField("exchange", exchange),
	}, nil
}

// RoutingKey возвращает ключ маршрутизации для статуса.
func RoutingKey(status domain.OrderStatus) string {
	key := strings.TrimSpace(string(status))
	if key == "" {
		key = unknownStatusKey
	}
	return RoutingKeyPrefix + key
}

// Publish реализует domain.OutboxPublisher.
func (p *Publisher) Publish(msg domain.OutboxMessage) error {
	if p == nil {
		return errors.New("rabbitmq publisher is not initialized")
	}

	p.mu.RLock()
	defer p.mu.RUnlock()
	if p.closed {
		return domain.ErrPublisherClosed
	}
	if p.ch.IsClosed() {
		return fmt.Errorf("%w: rabbitmq channel is closed", domain.ErrPublisherClosed)
	}

	routingKey := RoutingKey("")
	if event, err := domain.StatusEventFromOutbox(msg); err == nil {
		routingKey = RoutingKey(event.Status)
	}

	ctx, cancel := context.WithTimeout(context.Background(), p.timeout)
	defer cancel()

	err := p.ch.PublishWithContext(ctx, p.exchange, routingKey, false, false, amqp.Publishing{
		DeliveryMode: amqp.Persistent,
		ContentType:  "application/json",
		MessageId:    msg.ID,
		Type:         msg.EventType,
		Timestamp:    msg.CreatedAt,
		Headers:      amqp.Table{"order_id": msg.AggregateID},
		Body:         msg.Payload,
	})
	if err != nil {
		return fmt.Errorf("failed to publish to rabbitmq: %w", err)
	}

	p.logger.WithFields(log.Fields{
		"event_id":    msg.ID,
		"order_id":    msg.AggregateID,
		"routing_key": routingKey,
	}).Debug("Событие опубликовано в RabbitMQ")
	return nil
}

// Ready сообщает, можно ли сейчас публиковать.
func (p *Publisher) Ready() error {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if p.closed || p.ch.IsClosed() {
		return domain.ErrPublisherClosed
	}
	if p.conn != nil && p.conn.IsClosed() {
		return errors.New("rabbitmq connection is closed")
	}
	return nil
}

// Close закрывает канал и соединение; повторный вызов ничего не делает.
func (p *Publisher) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return nil
	}
	p.closed = true

	var errs []error
	if err := p.ch.Close(); err != nil && !errors.Is(err, amqp.ErrClosed) {
		errs = append(errs, err)
	}
	if p.conn != nil {
		if err := p.conn.Close(); err != nil && !errors.Is(err, amqp.ErrClosed) {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

var _ domain.OutboxPublisher = (*Publisher)(nil)
