package outbox

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/vladislavdragonenkov/kitchen/internal/domain"
	"github.com/vladislavdragonenkov/kitchen/internal/metrics"
)

const (
	defaultPollInterval   = 200 * time.Millisecond
	defaultBatchSize      = 100
	defaultMaxAttempts    = 3
	defaultRetryBaseDelay = 50 * time.Millisecond
	maxRetryDelay         = 5 * time.Second

	// EventTypeStatusDeadLettered — тип сообщения в DLQ для недоставленного события статуса.
	EventTypeStatusDeadLettered = "order.status_dead_lettered"
)

type workerOptions struct {
	logger         *log.Entry
	metrics        *metrics.KitchenMetrics
	dlq            domain.OutboxPublisher
	pollInterval   time.Duration
	batchSize      int
	maxAttempts    int
	retryBaseDelay time.Duration
}

// Option настраивает Worker.
type Option func(*workerOptions)

// WithLogger задаёт logger для воркера.
func WithLogger(logger *log.Entry) Option {
	return func(opts *workerOptions) { opts.logger = logger }
}

// WithMetrics подключает метрики backlog и результатов публикации.
func WithMetrics(m *metrics.KitchenMetrics) Option {
	return func(opts *workerOptions) { opts.metrics = m }
}

// WithDLQPublisher задаёт publisher для событий, не доставленных за все попытки.
func WithDLQPublisher(publisher domain.OutboxPublisher) Option {
	return func(opts *workerOptions) { opts.dlq = publisher }
}

// WithPollInterval задаёт частоту опроса outbox.
func WithPollInterval(interval time.Duration) Option {
	return func(opts *workerOptions) { opts.pollInterval = interval }
}

// WithBatchSize задаёт размер батча из outbox.
func WithBatchSize(batchSize int) Option {
	return func(opts *workerOptions) { opts.batchSize = batchSize }
}

// WithMaxAttempts задаёт число попыток публикации до перевода события в failed.
func WithMaxAttempts(maxAttempts int) Option {
	return func(opts *workerOptions) { opts.maxAttempts = maxAttempts }
}

// WithRetryBaseDelay задаёт первую паузу exponential backoff.
func WithRetryBaseDelay(delay time.Duration) Option {
	return func(opts *workerOptions) { opts.retryBaseDelay = delay }
}

// Worker публикует события статуса из outbox в журнал и брокер в порядке постановки.
//
// Открытый предохранитель брокера (ErrCircuitOpen) не считается попыткой:
// батч прерывается, события остаются pending и уходят после восстановления брокера.
// Так события одного заказа не обгоняют друг друга.
type Worker struct {
	wake      chan struct{}
	repo      domain.OutboxRepository
	publisher domain.OutboxPublisher
	opts      workerOptions
	now       func() time.Time
}

// NewWorker создаёт outbox worker.
func NewWorker(repo domain.OutboxRepository, publisher domain.OutboxPublisher, options ...Option) *Worker {
	opts := workerOptions{
		pollInterval:   defaultPollInterval,
		batchSize:      defaultBatchSize,
		maxAttempts:    defaultMaxAttempts,
		retryBaseDelay: defaultRetryBaseDelay,
	}
	for _, option := range options {
		option(&opts)
	}

	if opts.logger == nil {
		opts.logger = log.WithField("component", "outbox-worker")
	}
	if opts.pollInterval <= 0 {
		opts.pollInterval = defaultPollInterval
	}
	if opts.batchSize <= 0 {
		opts.batchSize = defaultBatchSize
	}
	if opts.maxAttempts <= 0 {
		opts.maxAttempts = defaultMaxAttempts
	}
	if opts.retryBaseDelay < 0 {
		opts.retryBaseDelay = 0
	}

	return &Worker{
		wake:      make(chan struct{}, 1),
		repo:      repo,
		publisher: publisher,
		opts:      opts,
		now:       time.Now,
	}
}

// Run публикует backlog по тикам и по Trigger до отмены ctx.
func (w *Worker) Run(ctx context.Context) {
	ticker := time.NewTicker(w.opts.pollInterval)
	defer ticker.Stop()

	w.ProcessOnce(ctx)
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		case <-w.wake:
		}
		w.ProcessOnce(ctx)
	}
}

// Trigger будит воркер раньше очередного тика. Не блокируется.
func (w *Worker) Trigger() {
	select {
	case w.wake <- struct{}{}:
	default:
	}
}

// Drain публикует backlog при остановке сервиса. Завершается, когда outbox пуст,
// когда цикл не продвинулся (например, предохранитель открыт) или по ctx.
func (w *Worker) Drain(ctx context.Context) {
	for ctx.Err() == nil {
		stats, err := w.repo.Stats()
		if err != nil || stats.PendingCount == 0 {
			return
		}
		if w.ProcessOnce(ctx) == 0 {
			w.opts.logger.WithField("pending", stats.PendingCount).Warn("outbox не опустошён при остановке")
			return
		}
	}
}

// ProcessOnce выполняет один цикл и возвращает число событий, покинувших backlog
// (отправленных или переведённых в failed).
func (w *Worker) ProcessOnce(ctx context.Context) int {
	if ctx.Err() != nil {
		return 0
	}
	defer w.refreshBacklog()

	events, err := w.repo.PullPending(w.opts.batchSize)
	if err != nil {
		w.opts.logger.WithError(err).Warn("failed to pull pending outbox messages")
		return 0
	}

	done := 0
	for _, event := range events {
		if ctx.Err() != nil {
			return done
		}

		err := w.publishWithRetry(ctx, event)
		switch {
		case err == nil:
			if markErr := w.repo.MarkSent(event.ID); markErr != nil {
				w.opts.logger.WithError(markErr).WithField("event_id", event.ID).Warn("failed to mark outbox as sent")
			}
			done++
		case errors.Is(err, ErrCircuitOpen):
			w.opts.metrics.RecordOutboxPublish(metrics.OutboxResultPaused)
			w.opts.logger.WithField("order_id", event.AggregateID).Debug("брокер недоступен, публикация отложена")
			return done
		case ctx.Err() != nil:
			return done
		default:
			w.fail(event, err)
			done++
		}
	}
	return done
}

func (w *Worker) publishWithRetry(ctx context.Context, event domain.OutboxMessage) error {
	var lastErr error
	for attempt := 1; attempt <= w.opts.maxAttempts; attempt++ {
		err := w.publisher.Publish(event)
		if err == nil {
			w.opts.metrics.RecordOutboxPublish(metrics.OutboxResultSent)
			return nil
		}
		if errors.Is(err, ErrCircuitOpen) {
			return err
		}
		lastErr = err
		w.opts.metrics.RecordOutboxPublish(metrics.OutboxResultRetry)

		if attempt == w.opts.maxAttempts {
			break
		}
		if delay := w.retryBackoff(attempt); delay > 0 {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(delay):
			}
		}
	}
	return fmt.Errorf("publish failed after %d attempts: %w", w.opts.maxAttempts, lastErr)
}

// retryBackoff удваивает паузу с каждой попыткой, не превышая maxRetryDelay.
func (w *Worker) retryBackoff(attempt int) time.Duration {
	delay := w.opts.retryBaseDelay
	for i := 1; i < attempt && delay > 0 && delay < maxRetryDelay; i++ {
		delay *= 2
	}
	return min(delay, maxRetryDelay)
}

func (w *Worker) fail(event domain.OutboxMessage, publishErr error) {
	logger := w.opts.logger.WithFields(log.Fields{
		"event_id": event.ID,
		"order_id": event.AggregateID,
	})
	logger.WithError(publishErr).Error("событие статуса не опубликовано после всех попыток")
	w.opts.metrics.RecordOutboxPublish(metrics.OutboxResultFailed)

	if err := w.deadLetter(event, publishErr); err != nil {
		logger.WithError(err).Warn("failed to publish to DLQ")
		w.opts.metrics.RecordOutboxPublish(metrics.OutboxResultDLQFailed)
	}
	if err := w.repo.MarkFailed(event.ID); err != nil {
		logger.WithError(err).Warn("failed to mark outbox as failed")
	}
}

// deadLetter — тело DLQ-сообщения о недоставленном событии статуса.
type deadLetter struct {
	EventID  string          `json:"event_id"`
	OrderID  string          `json:"order_id"`
	Status   string          `json:"status,omitempty"`
	Event    json.RawMessage `json:"event"`
	Error    string          `json:"publish_error"`
	Attempts int             `json:"attempts"`
	FailedAt time.Time       `json:"failed_at"`
}

func (w *Worker) deadLetter(event domain.OutboxMessage, publishErr error) error {
	if w.opts.dlq == nil {
		return nil
	}

	letter := deadLetter{
		EventID:  event.ID,
		OrderID:  event.AggregateID,
		Event:    json.RawMessage(event.Payload),
		Error:    publishErr.Error(),
		Attempts: w.opts.maxAttempts,
		FailedAt: w.now().UTC(),
	}
	if statusEvent, err := domain.StatusEventFromOutbox(event); err == nil {
		letter.Status = string(statusEvent.Status)
	}
	payload, err := json.Marshal(letter)
	if err != nil {
		return fmt.Errorf("marshal dlq payload: %w", err)
	}

	err = w.opts.dlq.Publish(domain.OutboxMessage{
		ID:            event.ID,
		AggregateType: event.AggregateType,
		AggregateID:   event.AggregateID,
		EventType:     EventTypeStatusDeadLettered,
		Payload:       payload,
		CreatedAt:     letter.FailedAt,
	})
	if err != nil {
		return fmt.Errorf("publish to dlq: %w", err)
	}
	return nil
}

func (w *Worker) refreshBacklog() {
	stats, err := w.repo.Stats()
	if err != nil {
		w.opts.logger.WithError(err).Warn("failed to collect outbox backlog stats")
		return
	}

	var age time.Duration
	if stats.PendingCount > 0 && !stats.OldestPendingAt.IsZero() {
		age = w.now().Sub(stats.OldestPendingAt)
	}
	w.opts.metrics.SetOutboxBacklog(stats.PendingCount, age)
}
