package health

import (
	"errors"
	"fmt"
	"time"
)

// ErrDegraded помечает ошибку проверки как деградацию, а не отказ.
var ErrDegraded = errors.New("degraded")

// SimpleChecker проверяет компонент функцией.
// Ошибка, обёрнутая в ErrDegraded, даёт статус degraded, любая другая — unhealthy.
type SimpleChecker struct {
	name    string
	checkFn func() error
}

// NewSimpleChecker создаёт простую проверку
func NewSimpleChecker(name string, checkFn func() error) *SimpleChecker {
	return &SimpleChecker{
		name:    name,
		checkFn: checkFn,
	}
}

// Check выполняет проверку
func (c *SimpleChecker) Check() Check {
	start := time.Now()
	err := c.checkFn()
	check := Check{
		Name:       c.name,
		Status:     StatusHealthy,
		DurationMs: time.Since(start).Milliseconds(),
	}

	switch {
	case err == nil:
	case errors.Is(err, ErrDegraded):
		check.Status = StatusDegraded
		check.Message = err.Error()
	default:
		check.Status = StatusUnhealthy
		check.Message = err.Error()
	}
	return check
}

// QueueSnapshot — срез состояния очереди кухни для проверки.
type QueueSnapshot struct {
	Depth  int
	Closed bool
}

// NewQueueChecker проверяет координатор: остановленный — unhealthy,
// очередь длиннее maxDepth — degraded. maxDepth<=0 отключает порог.
func NewQueueChecker(snapshot func() QueueSnapshot, maxDepth int) *SimpleChecker {
	return NewSimpleChecker("coordinator", func() error {
		s := snapshot()
		if s.Closed {
			return errors.New("coordinator is closed")
		}
		if maxDepth > 0 && s.Depth > maxDepth {
			return fmt.Errorf("%w: queue depth %d exceeds %d", ErrDegraded, s.Depth, maxDepth)
		}
		return nil
	})
}

// NewBacklogChecker следит за возрастом самого старого неотправленного события.
func NewBacklogChecker(name string, oldest func() (time.Time, error), maxAge time.Duration, now func() time.Time) *SimpleChecker {
	if now == nil {
		now = time.Now
	}
	return NewSimpleChecker(name, func() error {
		ts, err := oldest()
		if err != nil {
			return err
		}
		if ts.IsZero() || maxAge <= 0 {
			return nil
		}
		if age := now().Sub(ts); age > maxAge {
			return fmt.Errorf("%w: oldest pending event is %s old", ErrDegraded, age.Truncate(time.Second))
		}
		return nil
	})
}
