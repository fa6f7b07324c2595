// Package coordinator владеет всем разделяемым состоянием кухни: хранилищем заказов,
// очередью подготовки, слотом подготовки и реестром наблюдателей.
//
// Все четыре структуры защищены одним мьютексом; каждая операция выполняется
// целиком внутри одной критической секции.
package coordinator

import (
	"errors"
	"fmt"
	"slices"
	"sync"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/vladislavdragonenkov/kitchen/internal/domain"
	"github.com/vladislavdragonenkov/kitchen/internal/metrics"
)

// Stats — снимок состояния координатора.
type Stats struct {
	Orders   int
	Queue    []uint64
	Slot     uint64
	Watchers int
	NextID   uint64
	Closed   bool
}

// Coordinator — единственный владелец состояния заказов.
type Coordinator struct {
	mu       sync.Mutex
	orders   map[uint64]*domain.Order
	nextID   uint64
	queue    []uint64
	slot     uint64
	watchers map[uint64]map[*subscription]struct{}
	closed   bool
	done     chan struct{}

	logger       *log.Entry
	metrics      *metrics.KitchenMetrics
	sink         domain.EventSink
	now          func() time.Time
	newEventID   func() string
	pollInterval time.Duration
}

// New создаёт пустой координатор; идентификаторы начинаются с 1.
func New(opts ...Option) *Coordinator {
	o := buildOptions(opts)

	return &Coordinator{
		orders:       make(map[uint64]*domain.Order),
		nextID:       1,
		watchers:     make(map[uint64]map[*subscription]struct{}),
		done:         make(chan struct{}),
		logger:       o.logger,
		metrics:      o.metrics,
		sink:         o.sink,
		now:          o.now,
		newEventID:   o.newEventID,
		pollInterval: o.pollInterval,
	}
}

// Submit регистрирует заказ в статусе PENDING и ставит его в очередь.
// Отклонённый заказ не расходует идентификатор.
func (c *Coordinator) Submit(customer string, items []string) (domain.Order, error) {
	start := time.Now()
	defer func() { c.metrics.RecordOperationDuration("submit", time.Since(start)) }()

	order := domain.Order{
		Customer: customer,
		Items:    slices.Clone(items),
	}
	if errs := order.ValidateInvariants(); len(errs) > 0 {
		c.metrics.RecordOrderRejected()
		return domain.Order{}, fmt.Errorf("submit order: %w", errors.Join(errs...))
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	order.ID = c.nextID
	c.nextID++
	order.CreatedAt = c.now()

	stored := &order
	c.orders[order.ID] = stored
	c.queue = append(c.queue, order.ID)
	c.watchers[order.ID] = make(map[*subscription]struct{})
	c.setStatusLocked(stored, domain.OrderStatusPending)

	c.metrics.RecordOrderSubmitted()
	c.publishQueueStateLocked()
	c.logger.WithFields(log.Fields{
		"order_id": order.ID,
		"customer": customer,
		"items":    len(items),
	}).Info("заказ принят")

	return stored.Clone(), nil
}

// ClaimNext отдаёт кухне заказ для подготовки.
//
// Если слот занят, повторно возвращается заказ из слота, очередь не двигается.
// Если слот пуст, а голова очереди в статусе PENDING, она переходит в IN_PROGRESS
// и занимает слот. Во всех остальных случаях возвращается domain.NoneAvailable().
func (c *Coordinator) ClaimNext() domain.Order {
	start := time.Now()
	defer func() { c.metrics.RecordOperationDuration("claim", time.Since(start)) }()

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.slot != 0 {
		c.metrics.RecordClaim(metrics.ClaimResultRedelivered)
		return c.orders[c.slot].Clone()
	}

	c.dropReadyHeadsLocked()
	if len(c.queue) == 0 {
		c.metrics.RecordClaim(metrics.ClaimResultNone)
		return domain.NoneAvailable()
	}

	head := c.orders[c.queue[0]]
	if head.Status != domain.OrderStatusPending {
		c.metrics.RecordClaim(metrics.ClaimResultNone)
		return domain.NoneAvailable()
	}

	c.setStatusLocked(head, domain.OrderStatusInProgress)
	c.slot = head.ID

	c.metrics.RecordClaim(metrics.ClaimResultClaimed)
	c.publishQueueStateLocked()
	c.logger.WithField("order_id", head.ID).Info("заказ взят в работу")

	return head.Clone()
}

// UpdateStatus записывает новый статус заказа.
//
// Любая непустая строка принимается как статус. Только READY снимает заказ
// с головы очереди и освобождает слот, если он его занимает.
//
// IN_PROGRESS принимается только для заказа в слоте или для головы очереди
// при пустом слоте (тогда заказ занимает слот, как при ClaimNext). Для любого
// другого заказа возвращается ErrSlotOccupied и статус не меняется: иначе
// в работе оказались бы два заказа.
//
// Повтор текущего статуса не пишет историю и не рассылает событие:
// журнал и подписчики видят только настоящие переходы. Побочные эффекты READY
// при этом применяются, так что повторный READY безопасен.
func (c *Coordinator) UpdateStatus(id uint64, status domain.OrderStatus) (domain.Order, error) {
	start := time.Now()
	defer func() { c.metrics.RecordOperationDuration("update_status", time.Since(start)) }()

	if status == "" {
		return domain.Order{}, fmt.Errorf("update order #%d: %w", id, domain.ErrStatusRequired)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	order, ok := c.orders[id]
	if !ok {
		return domain.Order{}, fmt.Errorf("update order #%d: %w", id, domain.ErrOrderNotFound)
	}

	if status == domain.OrderStatusInProgress && c.slot != id {
		if c.slot != 0 || len(c.queue) == 0 || c.queue[0] != id {
			return domain.Order{}, fmt.Errorf("update order #%d: %w", id, domain.ErrSlotOccupied)
		}
		c.slot = id
	}

	if order.Status != status {
		c.setStatusLocked(order, status)
	}

	if status == domain.OrderStatusReady {
		if len(c.queue) > 0 && c.queue[0] == id {
			c.queue = c.queue[1:]
			c.dropReadyHeadsLocked()
		}
		if c.slot == id {
			c.slot = 0
		}
	}

	c.metrics.RecordStatusUpdate(string(status))
	c.publishQueueStateLocked()
	c.logger.WithFields(log.Fields{
		"order_id": id,
		"status":   status,
	}).Info("статус заказа обновлён")

	return order.Clone(), nil
}

// Get возвращает копию заказа вместе с историей статусов.
func (c *Coordinator) Get(id uint64) (domain.Order, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	order, ok := c.orders[id]
	if !ok {
		return domain.Order{}, fmt.Errorf("get order #%d: %w", id, domain.ErrOrderNotFound)
	}
	return order.Clone(), nil
}

// Stats возвращает снимок очереди, слота и реестра.
func (c *Coordinator) Stats() Stats {
	c.mu.Lock()
	defer c.mu.Unlock()

	watchers := 0
	for _, subs := range c.watchers {
		watchers += len(subs)
	}

	return Stats{
		Orders:   len(c.orders),
		Queue:    slices.Clone(c.queue),
		Slot:     c.slot,
		Watchers: watchers,
		NextID:   c.nextID,
		Closed:   c.closed,
	}
}

// Close завершает все открытые подписки и запрещает новые. Повторный вызов безопасен.
func (c *Coordinator) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return
	}
	c.closed = true
	close(c.done)
	c.logger.Info("coordinator closed")
}

// setStatusLocked записывает статус в историю, отдаёт событие в sink и будит наблюдателей.
func (c *Coordinator) setStatusLocked(order *domain.Order, status domain.OrderStatus) {
	now := c.now()
	order.Status = status
	order.UpdatedAt = now
	order.History = append(order.History, domain.StatusChange{Status: status, Occurred: now})

	if c.sink != nil {
		c.sink.Emit(domain.StatusEvent{
			ID:       c.newEventID(),
			OrderID:  order.ID,
			Customer: order.Customer,
			Status:   status,
			Occurred: now,
		})
	}
	c.notifyLocked(order.ID)
}

// dropReadyHeadsLocked снимает с головы очереди заказы, уже помеченные READY.
// Такие заказы остаются в очереди, если READY пришёл, пока они не были в голове.
func (c *Coordinator) dropReadyHeadsLocked() {
	for len(c.queue) > 0 && c.orders[c.queue[0]].Status == domain.OrderStatusReady {
		c.queue = c.queue[1:]
	}
}

func (c *Coordinator) publishQueueStateLocked() {
	c.metrics.SetQueueState(len(c.queue), c.slot != 0)
}
