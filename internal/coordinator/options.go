package coordinator

import (
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"github.com/vladislavdragonenkov/kitchen/internal/domain"
	"github.com/vladislavdragonenkov/kitchen/internal/metrics"
)

// DefaultPollInterval — период перечитывания статуса наблюдателем без пробуждения.
const DefaultPollInterval = time.Second

type options struct {
	logger       *log.Entry
	metrics      *metrics.KitchenMetrics
	sink         domain.EventSink
	now          func() time.Time
	newEventID   func() string
	pollInterval time.Duration
}

// Option настраивает Coordinator.
type Option func(*options)

// WithLogger задаёт logger координатора.
func WithLogger(logger *log.Entry) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithMetrics подключает prometheus-метрики.
func WithMetrics(m *metrics.KitchenMetrics) Option {
	return func(o *options) {
		o.metrics = m
	}
}

// WithEventSink задаёт приёмник событий статуса (outbox).
func WithEventSink(sink domain.EventSink) Option {
	return func(o *options) {
		o.sink = sink
	}
}

// WithClock подменяет источник времени (используется в тестах).
func WithClock(now func() time.Time) Option {
	return func(o *options) {
		o.now = now
	}
}

// WithEventIDs подменяет генератор идентификаторов событий.
func WithEventIDs(newID func() string) Option {
	return func(o *options) {
		o.newEventID = newID
	}
}

// WithPollInterval задаёт период опроса в WatchStatus.
func WithPollInterval(interval time.Duration) Option {
	return func(o *options) {
		o.pollInterval = interval
	}
}

func buildOptions(opts []Option) options {
	o := options{
		now:          time.Now,
		newEventID:   uuid.NewString,
		pollInterval: DefaultPollInterval,
	}
	for _, opt := range opts {
		opt(&o)
	}

	if o.logger == nil {
		o.logger = log.WithField("component", "coordinator")
	}
	if o.now == nil {
		o.now = time.Now
	}
	if o.newEventID == nil {
		o.newEventID = uuid.NewString
	}
	if o.pollInterval <= 0 {
		o.pollInterval = DefaultPollInterval
	}
	return o
}
