package metrics

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Результаты ClaimNext для метки result.
const (
	ClaimResultClaimed     = "claimed"
	ClaimResultRedelivered = "redelivered"
	ClaimResultNone        = "none"
)

// Результаты публикации из outbox для метки result.
const (
	OutboxResultSent      = "sent"
	OutboxResultRetry     = "retry_error"
	OutboxResultPaused    = "circuit_open"
	OutboxResultFailed    = "failed"
	OutboxResultDLQFailed = "dlq_failed"
)

// KitchenMetrics содержит метрики координатора заказов.
// Методы безопасно вызывать на nil-получателе.
type KitchenMetrics struct {
	// Счётчики операций
	ordersSubmitted prometheus.Counter
	ordersRejected  prometheus.Counter
	claims          *prometheus.CounterVec
	statusUpdates   *prometheus.CounterVec

	// Состояние очереди и слота
	queueDepth   prometheus.Gauge
	slotOccupied prometheus.Gauge

	// Наблюдатели
	activeWatchers       prometheus.Gauge
	watchEvents          prometheus.Counter
	notificationsSkipped prometheus.Counter

	// Outbox событий статуса
	outboxPublish       *prometheus.CounterVec
	outboxPending       prometheus.Gauge
	outboxOldestPending prometheus.Gauge

	operationDuration *prometheus.HistogramVec
}

// NewKitchenMetrics регистрирует метрики в DefaultRegisterer.
func NewKitchenMetrics() *KitchenMetrics {
	return NewKitchenMetricsWithRegisterer(prometheus.DefaultRegisterer)
}

// NewKitchenMetricsWithRegisterer регистрирует метрики в переданном registerer;
// повторная регистрация возвращает уже существующие коллекторы.
func NewKitchenMetricsWithRegisterer(registerer prometheus.Registerer) *KitchenMetrics {
	if registerer == nil {
		registerer = prometheus.DefaultRegisterer
	}

	return &KitchenMetrics{
		ordersSubmitted: registerCounter(registerer, prometheus.CounterOpts{
			Name: "kitchen_orders_submitted_total",
			Help: "Total number of orders accepted by the coordinator",
		}),
		ordersRejected: registerCounter(registerer, prometheus.CounterOpts{
			Name: "kitchen_orders_rejected_total",
			Help: "Total number of submissions rejected as invalid",
		}),
		claims: registerCounterVec(registerer, prometheus.CounterOpts{
			Name: "kitchen_claims_total",
			Help: "ClaimNext calls grouped by result",
		}, []string{"result"}),
		statusUpdates: registerCounterVec(registerer, prometheus.CounterOpts{
			Name: "kitchen_status_updates_total",
			Help: "Status updates grouped by the new status",
		}, []string{"status"}),
		queueDepth: registerGauge(registerer, prometheus.GaugeOpts{
			Name: "kitchen_queue_depth",
			Help: "Current number of order ids in the preparation queue",
		}),
		slotOccupied: registerGauge(registerer, prometheus.GaugeOpts{
			Name: "kitchen_slot_occupied",
			Help: "1 while an order occupies the preparation slot",
		}),
		activeWatchers: registerGauge(registerer, prometheus.GaugeOpts{
			Name: "kitchen_active_watchers",
			Help: "Number of open status watch streams",
		}),
		watchEvents: registerCounter(registerer, prometheus.CounterOpts{
			Name: "kitchen_watch_events_sent_total",
			Help: "Total number of status events delivered to watchers",
		}),
		notificationsSkipped: registerCounter(registerer, prometheus.CounterOpts{
			Name: "kitchen_notifications_skipped_total",
			Help: "Wake-ups skipped because the watcher already had one pending",
		}),
		outboxPublish: registerCounterVec(registerer, prometheus.CounterOpts{
			Name: "kitchen_outbox_publish_attempts_total",
			Help: "Outbox publish attempts grouped by result",
		}, []string{"result"}),
		outboxPending: registerGauge(registerer, prometheus.GaugeOpts{
			Name: "kitchen_outbox_pending_records",
			Help: "Current number of status events waiting in the outbox",
		}),
		outboxOldestPending: registerGauge(registerer, prometheus.GaugeOpts{
			Name: "kitchen_outbox_oldest_pending_age_seconds",
			Help: "Age in seconds of the oldest pending outbox record",
		}),
		operationDuration: registerHistogramVec(registerer, prometheus.HistogramOpts{
			Name:    "kitchen_operation_duration_seconds",
			Help:    "Duration of coordinator operations in seconds",
			Buckets: []float64{0.00001, 0.00005, 0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05},
		}, []string{"operation"}),
	}
}

func registerCounter(registerer prometheus.Registerer, opts prometheus.CounterOpts) prometheus.Counter {
	collector := prometheus.NewCounter(opts)
	if err := registerer.Register(collector); err != nil {
		if alreadyRegistered, ok := err.(prometheus.AlreadyRegisteredError); ok {
			existing, ok := alreadyRegistered.ExistingCollector.(prometheus.Counter)
			if !ok {
				panic(fmt.Sprintf("collector %q already registered with unexpected type", opts.Name))
			}
			return existing
		}
		panic(fmt.Sprintf("register counter %q: %v", opts.Name, err))
	}
	return collector
}

func registerCounterVec(registerer prometheus.Registerer, opts prometheus.CounterOpts, labels []string) *prometheus.CounterVec {
	collector := prometheus.NewCounterVec(opts, labels)
	if err := registerer.Register(collector); err != nil {
		if alreadyRegistered, ok := err.(prometheus.AlreadyRegisteredError); ok {
			existing, ok := alreadyRegistered.ExistingCollector.(*prometheus.CounterVec)
			if !ok {
				panic(fmt.Sprintf("collector %q already registered with unexpected type", opts.Name))
			}
			return existing
		}
		panic(fmt.Sprintf("register counter vec %q: %v", opts.Name, err))
	}
	return collector
}

func registerGauge(registerer prometheus.Registerer, opts prometheus.GaugeOpts) prometheus.Gauge {
	collector := prometheus.NewGauge(opts)
	if err := registerer.Register(collector); err != nil {
		if alreadyRegistered, ok := err.(prometheus.AlreadyRegisteredError); ok {
			existing, ok := alreadyRegistered.ExistingCollector.(prometheus.Gauge)
			if !ok {
				panic(fmt.Sprintf("collector %q already registered with unexpected type", opts.Name))
			}
			return existing
		}
		panic(fmt.Sprintf("register gauge %q: %v", opts.Name, err))
	}
	return collector
}

func registerHistogramVec(registerer prometheus.Registerer, opts prometheus.HistogramOpts, labels []string) *prometheus.HistogramVec {
	collector := prometheus.NewHistogramVec(opts, labels)
	if err := registerer.Register(collector); err != nil {
		if alreadyRegistered, ok := err.(prometheus.AlreadyRegisteredError); ok {
			existing, ok := alreadyRegistered.ExistingCollector.(*prometheus.HistogramVec)
			if !ok {
				panic(fmt.Sprintf("collector %q already registered with unexpected type", opts.Name))
			}
			return existing
		}
		panic(fmt.Sprintf("register histogram vec %q: %v", opts.Name, err))
	}
	return collector
}

// RecordOrderSubmitted увеличивает счётчик принятых заказов.
func (m *KitchenMetrics) RecordOrderSubmitted() {
	if m == nil {
		return
	}
	m.ordersSubmitted.Inc()
}

// RecordOrderRejected увеличивает счётчик отклонённых заказов.
func (m *KitchenMetrics) RecordOrderRejected() {
	if m == nil {
		return
	}
	m.ordersRejected.Inc()
}

// RecordClaim учитывает результат ClaimNext.
func (m *KitchenMetrics) RecordClaim(result string) {
	if m == nil {
		return
	}
	m.claims.WithLabelValues(result).Inc()
}

// RecordStatusUpdate учитывает смену статуса.
func (m *KitchenMetrics) RecordStatusUpdate(status string) {
	if m == nil {
		return
	}
	m.statusUpdates.WithLabelValues(status).Inc()
}

// SetQueueState публикует глубину очереди и занятость слота.
func (m *KitchenMetrics) SetQueueState(depth int, slotOccupied bool) {
	if m == nil {
		return
	}
	m.queueDepth.Set(float64(depth))
	if slotOccupied {
		m.slotOccupied.Set(1)
	} else {
		m.slotOccupied.Set(0)
	}
}

// RecordWatcherStarted увеличивает число активных наблюдателей.
func (m *KitchenMetrics) RecordWatcherStarted() {
	if m == nil {
		return
	}
	m.activeWatchers.Inc()
}

// RecordWatcherFinished уменьшает число активных наблюдателей.
func (m *KitchenMetrics) RecordWatcherFinished() {
	if m == nil {
		return
	}
	m.activeWatchers.Dec()
}

// RecordWatchEvent увеличивает счётчик доставленных наблюдателям событий.
func (m *KitchenMetrics) RecordWatchEvent() {
	if m == nil {
		return
	}
	m.watchEvents.Inc()
}

// RecordNotificationSkipped учитывает пропущенное пробуждение наблюдателя.
func (m *KitchenMetrics) RecordNotificationSkipped() {
	if m == nil {
		return
	}
	m.notificationsSkipped.Inc()
}

// RecordOutboxPublish учитывает попытку публикации события статуса.
func (m *KitchenMetrics) RecordOutboxPublish(result string) {
	if m == nil {
		return
	}
	m.outboxPublish.WithLabelValues(result).Inc()
}

// SetOutboxBacklog публикует размер backlog и возраст самого старого события.
func (m *KitchenMetrics) SetOutboxBacklog(pending int, oldestAge time.Duration) {
	if m == nil {
		return
	}
	if oldestAge < 0 {
		oldestAge = 0
	}
	m.outboxPending.Set(float64(pending))
	m.outboxOldestPending.Set(oldestAge.Seconds())
}

// RecordOperationDuration записывает время выполнения операции координатора.
func (m *KitchenMetrics) RecordOperationDuration(operation string, duration time.Duration) {
	if m == nil {
		return
	}
	m.operationDuration.WithLabelValues(operation).Observe(duration.Seconds())
}
