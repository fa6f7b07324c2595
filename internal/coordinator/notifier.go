package coordinator

import (
	"context"
	"fmt"
	"iter"
	"time"

	"github.com/vladislavdragonenkov/kitchen/internal/domain"
)

// subscription — дескриптор наблюдателя в реестре.
// wake имеет ёмкость 1: пробуждение не блокирует переход статуса.
type subscription struct {
	wake chan struct{}
}

// notifyLocked будит всех наблюдателей заказа неблокирующей отправкой.
// Наблюдатель с уже поставленным пробуждением пропускается и остаётся в реестре.
func (c *Coordinator) notifyLocked(id uint64) {
	for sub := range c.watchers[id] {
		select {
		case sub.wake <- struct{}{}:
		default:
			c.metrics.RecordNotificationSkipped()
		}
	}
}

// Watch возвращает ленивую последовательность статусов заказа.
//
// Первым элементом идёт текущий статус, затем каждый следующий записанный статус,
// отличающийся от последнего отданного. Последовательность бесконечна и завершается
// при отмене ctx, остановке координатора или когда потребитель прекращает итерацию.
// Каждый проход по последовательности регистрирует собственную подписку.
func (c *Coordinator) Watch(ctx context.Context, id uint64) (iter.Seq[domain.StatusEvent], error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return nil, fmt.Errorf("watch order #%d: %w", id, domain.ErrCoordinatorClosed)
	}
	if _, ok := c.orders[id]; !ok {
		return nil, fmt.Errorf("watch order #%d: %w", id, domain.ErrOrderNotFound)
	}

	return func(yield func(domain.StatusEvent) bool) {
		c.stream(ctx, id, yield)
	}, nil
}

func (c *Coordinator) stream(ctx context.Context, id uint64, yield func(domain.StatusEvent) bool) {
	sub := &subscription{wake: make(chan struct{}, 1)}
	cursor, ok := c.subscribe(id, sub)
	if !ok {
		return
	}
	defer c.unsubscribe(id, sub)

	c.metrics.RecordWatcherStarted()
	defer c.metrics.RecordWatcherFinished()

	ticker := time.NewTicker(c.pollInterval)
	defer ticker.Stop()

	var last domain.OrderStatus
	for {
		var changes []domain.StatusChange
		changes, cursor = c.changesSince(id, cursor)
		for _, change := range changes {
			if change.Status == last {
				continue
			}
			last = change.Status
			event := domain.StatusEvent{OrderID: id, Status: change.Status, Occurred: change.Occurred}
			if !yield(event) {
				return
			}
			c.metrics.RecordWatchEvent()
		}

		select {
		case <-ctx.Done():
			return
		case <-c.done:
			return
		case <-sub.wake:
		case <-ticker.C:
		}
	}
}

// subscribe регистрирует наблюдателя и возвращает позицию текущего статуса в истории.
func (c *Coordinator) subscribe(id uint64, sub *subscription) (int, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	order, ok := c.orders[id]
	if !ok || c.closed {
		return 0, false
	}

	subs := c.watchers[id]
	if subs == nil {
		subs = make(map[*subscription]struct{})
		c.watchers[id] = subs
	}
	subs[sub] = struct{}{}

	return len(order.History) - 1, true
}

func (c *Coordinator) unsubscribe(id uint64, sub *subscription) {
	c.mu.Lock()
	defer c.mu.Unlock()

	delete(c.watchers[id], sub)
}

// changesSince копирует записи истории начиная с cursor и возвращает новый cursor.
func (c *Coordinator) changesSince(id uint64, cursor int) ([]domain.StatusChange, int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	history := c.orders[id].History
	if cursor >= len(history) {
		return nil, cursor
	}
	changes := make([]domain.StatusChange, len(history)-cursor)
	copy(changes, history[cursor:])
	return changes, len(history)
}
