package outbox

import (
	"errors"
	"fmt"

	"github.com/vladislavdragonenkov/kitchen/internal/domain"
)

// FanOut публикует сообщение во все publisher'ы и объединяет ошибки.
// При повторе сообщение уходит всем получателям снова, поэтому они должны быть идемпотентными.
type FanOut []domain.OutboxPublisher

// Publish реализует domain.OutboxPublisher.
func (f FanOut) Publish(event domain.OutboxMessage) error {
	var errs []error
	for _, publisher := range f {
		if publisher == nil {
			continue
		}
		if err := publisher.Publish(event); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// JournalPublisher записывает события статуса в журнал.
type JournalPublisher struct {
	repo domain.JournalRepository
}

// NewJournalPublisher создаёт publisher поверх журнала статусов.
func NewJournalPublisher(repo domain.JournalRepository) *JournalPublisher {
	return &JournalPublisher{repo: repo}
}

// Publish реализует domain.OutboxPublisher.
func (p *JournalPublisher) Publish(event domain.OutboxMessage) error {
	statusEvent, err := domain.StatusEventFromOutbox(event)
	if err != nil {
		return fmt.Errorf("journal: %w", err)
	}
	if err := p.repo.Append(statusEvent); err != nil {
		return fmt.Errorf("journal append order #%d: %w", statusEvent.OrderID, err)
	}
	return nil
}

var (
	_ domain.OutboxPublisher = FanOut(nil)
	_ domain.OutboxPublisher = (*JournalPublisher)(nil)
)
