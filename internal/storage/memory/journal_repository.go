package memory

import (
	"sync"

	"github.com/vladislavdragonenkov/kitchen/internal/domain"
)

// JournalRepository хранит журнал статусов в памяти (для разработки и тестов).
type JournalRepository struct {
	mu     sync.RWMutex
	events map[uint64][]domain.StatusEvent
	seen   map[string]struct{}
}

// NewJournalRepository создаёт in-memory реализацию JournalRepository.
func NewJournalRepository() *JournalRepository {
	return &JournalRepository{
		events: make(map[uint64][]domain.StatusEvent),
		seen:   make(map[string]struct{}),
	}
}

// Append добавляет событие; повтор с тем же ID игнорируется.
func (r *JournalRepository) Append(event domain.StatusEvent) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if event.ID != "" {
		if _, dup := r.seen[event.ID]; dup {
			return nil
		}
		r.seen[event.ID] = struct{}{}
	}
	r.events[event.OrderID] = append(r.events[event.OrderID], event)
	return nil
}

// List возвращает события заказа в порядке записи.
func (r *JournalRepository) List(orderID uint64) ([]domain.StatusEvent, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	events := r.events[orderID]
	result := make([]domain.StatusEvent, len(events))
	copy(result, events)
	return result, nil
}

var _ domain.JournalRepository = (*JournalRepository)(nil)
