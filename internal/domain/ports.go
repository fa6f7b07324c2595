package domain

import "time"

// EventSink принимает события статуса от координатора.
// Emit вызывается под блокировкой координатора и не должен блокироваться на I/O.
type EventSink interface {
	Emit(event StatusEvent)
}

// OutboxPublisher публикует события из outbox наружу; должен быть идемпотентным.
type OutboxPublisher interface {
	Publish(event OutboxMessage) error
}

// OutboxRepository хранит события до их публикации.
type OutboxRepository interface {
	Enqueue(msg OutboxMessage) (OutboxMessage, error)
	PullPending(limit int) ([]OutboxMessage, error)
	Stats() (OutboxStats, error)
	MarkSent(id string) error
	MarkFailed(id string) error
}

// JournalRepository — append-only журнал статусов заказов.
type JournalRepository interface {
	// Append сохраняет событие; повторная запись с тем же ID игнорируется.
	Append(event StatusEvent) error
	// List возвращает события заказа в порядке записи.
	List(orderID uint64) ([]StatusEvent, error)
}

// OutboxMessage хранит данные для публикуемого события.
type OutboxMessage struct {
	ID            string
	AggregateType string
	AggregateID   string
	EventType     string
	Payload       []byte
	CreatedAt     time.Time
}

// OutboxStats описывает текущее состояние backlog outbox.
type OutboxStats struct {
	PendingCount    int
	OldestPendingAt time.Time
}
