package outbox

import (
	"errors"
	"sync"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/vladislavdragonenkov/kitchen/internal/domain"
)

// ErrCircuitOpen — брокер недавно отказывал подряд, публикация не выполнялась.
var ErrCircuitOpen = errors.New("circuit breaker is open")

// CircuitState — состояние предохранителя.
type CircuitState int

const (
	CircuitClosed CircuitState = iota
	CircuitOpen
	CircuitHalfOpen
)

func (s CircuitState) String() string {
	switch s {
	case CircuitClosed:
		return "closed"
	case CircuitOpen:
		return "open"
	case CircuitHalfOpen:
		return "half-open"
	default:
		return "unknown"
	}
}

const (
	defaultBreakerMaxFailures  = 5
	defaultBreakerResetTimeout = 10 * time.Second
)

// BreakerPublisher защищает внешний publisher предохранителем: после maxFailures
// ошибок подряд вызовы сразу возвращают ErrCircuitOpen, пока не пройдёт resetTimeout.
// Затем пропускается одна пробная публикация (half-open).
type BreakerPublisher struct {
	next         domain.OutboxPublisher
	maxFailures  int
	resetTimeout time.Duration
	now          func() time.Time
	logger       *log.Entry

	mu          sync.Mutex
	state       CircuitState
	failures    int
	lastFailure time.Time
}

// NewBreakerPublisher оборачивает next. Неположительные параметры заменяются значениями по умолчанию.
func NewBreakerPublisher(next domain.OutboxPublisher, maxFailures int, resetTimeout time.Duration, logger *log.Entry) *BreakerPublisher {
	if maxFailures <= 0 {
		maxFailures = defaultBreakerMaxFailures
	}
	if resetTimeout <= 0 {
		resetTimeout = defaultBreakerResetTimeout
	}
	if logger == nil {
		logger = log.New().WithField("component", "circuit-breaker")
	}
	return &BreakerPublisher{
		next:         next,
		maxFailures:  maxFailures,
		resetTimeout: resetTimeout,
		now:          time.Now,
		logger:       logger,
	}
}

// State возвращает текущее состояние предохранителя.
func (b *BreakerPublisher) State() CircuitState {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.state
}

// Publish реализует domain.OutboxPublisher.
func (b *BreakerPublisher) Publish(event domain.OutboxMessage) error {
	if err := b.allow(); err != nil {
		return err
	}

	err := b.next.Publish(event)
	b.record(err)
	return err
}

func (b *BreakerPublisher) allow() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	switch b.state {
	case CircuitOpen:
		if b.now().Sub(b.lastFailure) <= b.resetTimeout {
			return ErrCircuitOpen
		}
		b.state = CircuitHalfOpen
		b.logger.Info("circuit breaker half-open")
		return nil
	case CircuitHalfOpen:
		// Пробная публикация уже идёт.
		return ErrCircuitOpen
	default:
		return nil
	}
}

func (b *BreakerPublisher) record(err error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if err != nil {
		b.failures++
		b.lastFailure = b.now()
		if b.state == CircuitHalfOpen || b.failures >= b.maxFailures {
			if b.state != CircuitOpen {
				b.logger.WithFields(log.Fields{
					"failures": b.failures,
				}).WithError(err).Warn("circuit breaker opened")
			}
			b.state = CircuitOpen
		}
		return
	}

	if b.state == CircuitHalfOpen {
		b.logger.Info("circuit breaker closed")
	}
	b.state = CircuitClosed
	b.failures = 0
}

var _ domain.OutboxPublisher = (*BreakerPublisher)(nil)
