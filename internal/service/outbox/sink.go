package outbox

import (
	log "github.com/sirupsen/logrus"

	"github.com/vladislavdragonenkov/kitchen/internal/domain"
)

// Sink кладёт события статуса координатора в outbox.
// Emit вызывается под блокировкой координатора, поэтому только ставит событие
// в репозиторий и будит воркер; публикация идёт в Worker.
type Sink struct {
	repo   domain.OutboxRepository
	worker *Worker
	logger *log.Entry
}

// NewSink создаёт Sink; worker может быть nil.
func NewSink(repo domain.OutboxRepository, worker *Worker, logger *log.Entry) *Sink {
	if logger == nil {
		logger = log.WithField("component", "outbox-sink")
	}
	return &Sink{repo: repo, worker: worker, logger: logger}
}

// Emit реализует domain.EventSink.
func (s *Sink) Emit(event domain.StatusEvent) {
	msg, err := event.ToOutboxMessage()
	if err != nil {
		s.logger.WithError(err).WithField("order_id", event.OrderID).Error("failed to encode status event")
		return
	}

	if _, err := s.repo.Enqueue(msg); err != nil {
		s.logger.WithError(err).WithFields(log.Fields{
			"order_id": event.OrderID,
			"status":   event.Status,
		}).Warn("событие статуса не попало в outbox")
		return
	}

	if s.worker != nil {
		s.worker.Trigger()
	}
}

var _ domain.EventSink = (*Sink)(nil)
