package memory

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/vladislavdragonenkov/kitchen/internal/domain"
)

const (
	outboxStatusPending = "pending"
	outboxStatusFailed  = "failed"
)

// outboxRecord хранит сообщение и служебные поля для in-memory реализации.
type outboxRecord struct {
	msg        domain.OutboxMessage
	status     string
	attemptCnt int
	createdAt  time.Time
	updatedAt  time.Time
}

// OutboxRepository — in-memory outbox, сохраняющий порядок постановки.
// Отправленные записи удаляются, failed остаются для диагностики.
type OutboxRepository struct {
	mu      sync.Mutex
	records map[string]*outboxRecord
	order   []string
	now     func() time.Time
}

// NewOutboxRepository создаёт in-memory реализацию outbox.
func NewOutboxRepository() *OutboxRepository {
	return &OutboxRepository{
		records: make(map[string]*outboxRecord),
		now:     func() time.Time { return time.Now().UTC() },
	}
}

// Enqueue сохраняет событие со статусом `pending` и возвращает его с идентификатором.
func (r *OutboxRepository) Enqueue(msg domain.OutboxMessage) (domain.OutboxMessage, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if msg.ID == "" {
		msg.ID = uuid.NewString()
	}
	if _, exists := r.records[msg.ID]; exists {
		return msg, nil
	}

	now := r.now()
	if msg.CreatedAt.IsZero() {
		msg.CreatedAt = now
	}
	r.records[msg.ID] = &outboxRecord{
		msg:       msg,
		status:    outboxStatusPending,
		createdAt: now,
		updatedAt: now,
	}
	r.order = append(r.order, msg.ID)
	return msg, nil
}

// PullPending возвращает до limit сообщений со статусом `pending` в порядке постановки.
func (r *OutboxRepository) PullPending(limit int) ([]domain.OutboxMessage, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if limit <= 0 {
		limit = 100
	}

	r.compactLocked()
	result := make([]domain.OutboxMessage, 0, min(limit, len(r.order)))
	for _, id := range r.order {
		rec := r.records[id]
		if rec.status != outboxStatusPending {
			continue
		}
		result = append(result, rec.msg)
		if len(result) >= limit {
			break
		}
	}
	return result, nil
}

// Stats возвращает размер backlog и время самого старого pending-сообщения.
func (r *OutboxRepository) Stats() (domain.OutboxStats, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var stats domain.OutboxStats
	for _, id := range r.order {
		rec, ok := r.records[id]
		if !ok || rec.status != outboxStatusPending {
			continue
		}
		if stats.PendingCount == 0 {
			stats.OldestPendingAt = rec.createdAt
		}
		stats.PendingCount++
	}
	return stats, nil
}

// MarkSent удаляет событие после успешной публикации.
func (r *OutboxRepository) MarkSent(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.records[id]; !ok {
		return domain.ErrOutboxPublish
	}
	delete(r.records, id)
	return nil
}

// MarkFailed фиксирует окончательную ошибку публикации.
func (r *OutboxRepository) MarkFailed(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	record, ok := r.records[id]
	if !ok {
		return domain.ErrOutboxPublish
	}
	record.status = outboxStatusFailed
	record.attemptCnt++
	record.updatedAt = r.now()
	return nil
}

// Failed возвращает сообщения, публикация которых не удалась.
func (r *OutboxRepository) Failed() []domain.OutboxMessage {
	r.mu.Lock()
	defer r.mu.Unlock()

	var result []domain.OutboxMessage
	for _, id := range r.order {
		if rec, ok := r.records[id]; ok && rec.status == outboxStatusFailed {
			result = append(result, rec.msg)
		}
	}
	return result
}

// compactLocked выбрасывает из порядка идентификаторы удалённых записей.
func (r *OutboxRepository) compactLocked() {
	kept := r.order[:0]
	for _, id := range r.order {
		if _, ok := r.records[id]; ok {
			kept = append(kept, id)
		}
	}
	clear(r.order[len(kept):])
	r.order = kept
}

var _ domain.OutboxRepository = (*OutboxRepository)(nil)
