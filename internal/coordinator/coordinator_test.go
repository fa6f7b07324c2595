package coordinator_test

import (
	"fmt"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"

	"github.com/vladislavdragonenkov/kitchen/internal/coordinator"
	"github.com/vladislavdragonenkov/kitchen/internal/domain"
	"github.com/vladislavdragonenkov/kitchen/internal/metrics"
)

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2026, 3, 1, 12, 0, 0, 0, time.Local)}
}

func (f *fakeClock) Now() time.Time {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.now = f.now.Add(time.Second)
	return f.now
}

type recordingSink struct {
	mu     sync.Mutex
	events []domain.StatusEvent
}

func (s *recordingSink) Emit(event domain.StatusEvent) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, event)
}

func (s *recordingSink) snapshot() []domain.StatusEvent {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]domain.StatusEvent(nil), s.events...)
}

func newCoordinator(t *testing.T, opts ...coordinator.Option) *coordinator.Coordinator {
	t.Helper()
	base := []coordinator.Option{
		coordinator.WithClock(newFakeClock().Now),
		coordinator.WithPollInterval(10 * time.Millisecond),
	}
	c := coordinator.New(append(base, opts...)...)
	t.Cleanup(c.Close)
	return c
}

func submit(t *testing.T, c *coordinator.Coordinator, customer string, items ...string) domain.Order {
	t.Helper()
	order, err := c.Submit(customer, items)
	require.NoError(t, err)
	return order
}

func TestSubmitCreatesPendingOrder(t *testing.T) {
	c := newCoordinator(t)

	order := submit(t, c, "Ana", "Pizza", "Soda")

	require.Equal(t, uint64(1), order.ID)
	require.Equal(t, "Ana", order.Customer)
	require.Equal(t, []string{"Pizza", "Soda"}, order.Items)
	require.Equal(t, domain.OrderStatusPending, order.Status)
	require.Len(t, order.History, 1)
	require.Equal(t, domain.OrderStatusPending, order.History[0].Status)

	stats := c.Stats()
	require.Equal(t, []uint64{1}, stats.Queue)
	require.Zero(t, stats.Slot)
}

func TestSubmitCopiesItems(t *testing.T) {
	c := newCoordinator(t)
	items := []string{"Pizza"}

	order, err := c.Submit("Ana", items)
	require.NoError(t, err)
	items[0] = "Burger"

	stored, err := c.Get(order.ID)
	require.NoError(t, err)
	require.Equal(t, []string{"Pizza"}, stored.Items)
}

func TestConcurrentSubmissionsGetExactlyOneToN(t *testing.T) {
	c := newCoordinator(t)
	const n = 200

	ids := make([]uint64, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			order, err := c.Submit(fmt.Sprintf("customer-%d", i), []string{"Soup"})
			if err != nil {
				t.Errorf("submit failed: %v", err)
				return
			}
			ids[i] = order.ID
		}(i)
	}
	wg.Wait()

	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	for i, id := range ids {
		require.Equal(t, uint64(i+1), id)
	}
	require.Len(t, c.Stats().Queue, n)
}

func TestSubmitWithoutItemsDoesNotConsumeID(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := metrics.NewKitchenMetricsWithRegisterer(reg)
	c := newCoordinator(t, coordinator.WithMetrics(m))

	submit(t, c, "Ana", "Pizza")

	_, err := c.Submit("Bruno", nil)
	require.ErrorIs(t, err, domain.ErrItemsRequired)
	require.True(t, domain.IsInvalidArgument(err))

	_, err = c.Submit("Bruno", []string{})
	require.ErrorIs(t, err, domain.ErrItemsRequired)

	next := submit(t, c, "Carla", "Soda")
	require.Equal(t, uint64(2), next.ID)
	require.Equal(t, 2, c.Stats().Orders)

	require.Equal(t, 2.0, counterValue(t, reg, "kitchen_orders_rejected_total"))
	require.Equal(t, 2.0, counterValue(t, reg, "kitchen_orders_submitted_total"))
}

func counterValue(t *testing.T, reg *prometheus.Registry, name string) float64 {
	t.Helper()
	families, err := reg.Gather()
	require.NoError(t, err)
	for _, family := range families {
		if family.GetName() != name {
			continue
		}
		var total float64
		for _, metric := range family.GetMetric() {
			total += metric.GetCounter().GetValue()
		}
		return total
	}
	t.Fatalf("metric %s not found", name)
	return 0
}

func TestClaimNextOnEmptyQueueReturnsSentinel(t *testing.T) {
	c := newCoordinator(t)

	order := c.ClaimNext()

	require.True(t, order.IsNoneAvailable())
	require.Equal(t, uint64(0), order.ID)
	require.Equal(t, domain.OrderStatusNoneAvailable, order.Status)
}

func TestClaimNextMovesHeadToSlot(t *testing.T) {
	c := newCoordinator(t)
	submit(t, c, "Ana", "Pizza")
	submit(t, c, "Bruno", "Soup")

	claimed := c.ClaimNext()

	require.Equal(t, uint64(1), claimed.ID)
	require.Equal(t, domain.OrderStatusInProgress, claimed.Status)
	stats := c.Stats()
	require.Equal(t, uint64(1), stats.Slot)
	require.Equal(t, []uint64{1, 2}, stats.Queue)
}

func TestClaimNextRedeliversWhileSlotOccupied(t *testing.T) {
	c := newCoordinator(t)
	submit(t, c, "Ana", "Pizza")
	submit(t, c, "Bruno", "Soup")

	first := c.ClaimNext()
	for i := 0; i < 5; i++ {
		again := c.ClaimNext()
		require.Equal(t, first.ID, again.ID)
		require.Equal(t, domain.OrderStatusInProgress, again.Status)
	}

	second, err := c.Get(2)
	require.NoError(t, err)
	require.Equal(t, domain.OrderStatusPending, second.Status)
	require.Equal(t, []uint64{1, 2}, c.Stats().Queue)

	// повторная выдача не пишет новый статус в историю
	stored, err := c.Get(1)
	require.NoError(t, err)
	require.Len(t, stored.History, 2)
}

func TestConcurrentClaimsKeepSingleOrderInProgress(t *testing.T) {
	c := newCoordinator(t)
	for i := 0; i < 5; i++ {
		submit(t, c, fmt.Sprintf("customer-%d", i), "Pizza")
	}

	const workers = 50
	results := make([]uint64, workers)
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = c.ClaimNext().ID
		}(i)
	}
	wg.Wait()

	for _, id := range results {
		require.Equal(t, uint64(1), id)
	}

	inProgress := 0
	for id := uint64(1); id <= 5; id++ {
		order, err := c.Get(id)
		require.NoError(t, err)
		if order.Status == domain.OrderStatusInProgress {
			inProgress++
			require.Equal(t, c.Stats().Slot, id)
		}
	}
	require.Equal(t, 1, inProgress)
}

func TestConcurrentClaimAndReadyCyclesDrainQueue(t *testing.T) {
	c := newCoordinator(t)
	const n = 30
	for i := 0; i < n; i++ {
		submit(t, c, "Ana", "Pizza")
	}

	var wg sync.WaitGroup
	for w := 0; w < 4; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for {
				order := c.ClaimNext()
				if order.IsNoneAvailable() {
					return
				}
				if _, err := c.UpdateStatus(order.ID, domain.OrderStatusReady); err != nil {
					t.Errorf("update failed: %v", err)
					return
				}
			}
		}()
	}
	wg.Wait()

	stats := c.Stats()
	require.Empty(t, stats.Queue)
	require.Zero(t, stats.Slot)
	for id := uint64(1); id <= n; id++ {
		order, err := c.Get(id)
		require.NoError(t, err)
		require.Equal(t, domain.OrderStatusReady, order.Status)
	}
}

func TestUpdateStatusReadyAdvancesQueueAndClearsSlot(t *testing.T) {
	c := newCoordinator(t)
	submit(t, c, "Ana", "Pizza")
	submit(t, c, "Bruno", "Soup")
	c.ClaimNext()

	updated, err := c.UpdateStatus(1, domain.OrderStatusReady)
	require.NoError(t, err)
	require.Equal(t, domain.OrderStatusReady, updated.Status)

	stats := c.Stats()
	require.Equal(t, []uint64{2}, stats.Queue)
	require.Zero(t, stats.Slot)

	next := c.ClaimNext()
	require.Equal(t, uint64(2), next.ID)
	require.Equal(t, domain.OrderStatusInProgress, next.Status)
}

func TestUpdateStatusReadyOutsideHeadKeepsQueue(t *testing.T) {
	c := newCoordinator(t)
	submit(t, c, "Ana", "Pizza")
	submit(t, c, "Bruno", "Soup")
	submit(t, c, "Carla", "Salad")

	updated, err := c.UpdateStatus(2, domain.OrderStatusReady)
	require.NoError(t, err)
	require.Equal(t, domain.OrderStatusReady, updated.Status)
	require.Equal(t, []uint64{1, 2, 3}, c.Stats().Queue)

	// после готовности головы уже готовый #2 не блокирует очередь
	require.Equal(t, uint64(1), c.ClaimNext().ID)
	_, err = c.UpdateStatus(1, domain.OrderStatusReady)
	require.NoError(t, err)
	require.Equal(t, []uint64{3}, c.Stats().Queue)
	require.Equal(t, uint64(3), c.ClaimNext().ID)
}

func TestUpdateStatusArbitraryStatusHasNoQueueSideEffects(t *testing.T) {
	c := newCoordinator(t)
	submit(t, c, "Ana", "Pizza")

	updated, err := c.UpdateStatus(1, "COOKING")
	require.NoError(t, err)
	require.Equal(t, domain.OrderStatus("COOKING"), updated.Status)
	require.Equal(t, []uint64{1}, c.Stats().Queue)

	// голова не в PENDING: взять нечего, пока она не станет READY
	require.True(t, c.ClaimNext().IsNoneAvailable())

	_, err = c.UpdateStatus(1, domain.OrderStatusReady)
	require.NoError(t, err)
	require.Empty(t, c.Stats().Queue)
}

func TestUpdateStatusArbitraryStatusKeepsSlot(t *testing.T) {
	c := newCoordinator(t)
	submit(t, c, "Ana", "Pizza")
	c.ClaimNext()

	_, err := c.UpdateStatus(1, "PLATING")
	require.NoError(t, err)

	again := c.ClaimNext()
	require.Equal(t, uint64(1), again.ID)
	require.Equal(t, domain.OrderStatus("PLATING"), again.Status)
	require.Equal(t, uint64(1), c.Stats().Slot)
}

func TestUpdateStatusInProgressOutsideSlotRejected(t *testing.T) {
	c := newCoordinator(t)
	submit(t, c, "Ana", "Pizza")
	submit(t, c, "Bruno", "Soup")
	c.ClaimNext()

	_, err := c.UpdateStatus(2, domain.OrderStatusInProgress)
	require.ErrorIs(t, err, domain.ErrSlotOccupied)
	require.True(t, domain.IsInvalidArgument(err))

	second, err := c.Get(2)
	require.NoError(t, err)
	require.Equal(t, domain.OrderStatusPending, second.Status)
}

func TestUpdateStatusInProgressBehindHeadRejectedWithEmptySlot(t *testing.T) {
	sink := &recordingSink{}
	c := newCoordinator(t, coordinator.WithEventSink(sink))
	submit(t, c, "Ana", "Pizza")
	submit(t, c, "Bruno", "Soup")

	_, err := c.UpdateStatus(2, domain.OrderStatusInProgress)
	require.ErrorIs(t, err, domain.ErrSlotOccupied)

	stats := c.Stats()
	require.Zero(t, stats.Slot)
	require.Equal(t, []uint64{1, 2}, stats.Queue)
	require.Len(t, sink.snapshot(), 2)
	require.Equal(t, uint64(1), c.ClaimNext().ID)
}

func TestUpdateStatusInProgressRepeatedForSlotOrder(t *testing.T) {
	c := newCoordinator(t)
	submit(t, c, "Ana", "Pizza")
	c.ClaimNext()

	order, err := c.UpdateStatus(1, domain.OrderStatusInProgress)
	require.NoError(t, err)
	require.Equal(t, domain.OrderStatusInProgress, order.Status)
	require.Equal(t, uint64(1), c.Stats().Slot)
}

func TestUpdateStatusRepeatedStatusRecordsNoTransition(t *testing.T) {
	sink := &recordingSink{}
	c := newCoordinator(t, coordinator.WithEventSink(sink))
	submit(t, c, "Ana", "Pizza")
	c.ClaimNext()
	_, err := c.UpdateStatus(1, "PLATING")
	require.NoError(t, err)

	before, err := c.Get(1)
	require.NoError(t, err)
	eventsBefore := len(sink.snapshot())

	order, err := c.UpdateStatus(1, "PLATING")
	require.NoError(t, err)
	require.Equal(t, domain.OrderStatus("PLATING"), order.Status)
	require.Len(t, order.History, len(before.History))
	require.Len(t, sink.snapshot(), eventsBefore)
	require.Equal(t, uint64(1), c.Stats().Slot)
}

func TestUpdateStatusInProgressOnHeadTakesEmptySlot(t *testing.T) {
	c := newCoordinator(t)
	submit(t, c, "Ana", "Pizza")

	_, err := c.UpdateStatus(1, domain.OrderStatusInProgress)
	require.NoError(t, err)
	require.Equal(t, uint64(1), c.Stats().Slot)
	require.Equal(t, uint64(1), c.ClaimNext().ID)
}

func TestUpdateStatusUnknownIDLeavesStoreUnchanged(t *testing.T) {
	sink := &recordingSink{}
	c := newCoordinator(t, coordinator.WithEventSink(sink))
	submit(t, c, "Ana", "Pizza")
	before := c.Stats()

	_, err := c.UpdateStatus(99, domain.OrderStatusReady)
	require.ErrorIs(t, err, domain.ErrOrderNotFound)

	require.Equal(t, before, c.Stats())
	require.Len(t, sink.snapshot(), 1)
}

func TestUpdateStatusEmptyStatusRejected(t *testing.T) {
	c := newCoordinator(t)
	submit(t, c, "Ana", "Pizza")

	_, err := c.UpdateStatus(1, "")
	require.ErrorIs(t, err, domain.ErrStatusRequired)

	order, err := c.Get(1)
	require.NoError(t, err)
	require.Equal(t, domain.OrderStatusPending, order.Status)
}

func TestGetUnknownOrder(t *testing.T) {
	c := newCoordinator(t)

	_, err := c.Get(1)
	require.ErrorIs(t, err, domain.ErrOrderNotFound)
}

func TestEventsEmittedInTransitionOrder(t *testing.T) {
	sink := &recordingSink{}
	ids := 0
	c := newCoordinator(t,
		coordinator.WithEventSink(sink),
		coordinator.WithEventIDs(func() string {
			ids++
			return fmt.Sprintf("evt-%d", ids)
		}),
	)

	submit(t, c, "Ana", "Pizza")
	c.ClaimNext()
	c.ClaimNext()
	_, err := c.UpdateStatus(1, domain.OrderStatusReady)
	require.NoError(t, err)
	_, err = c.UpdateStatus(1, domain.OrderStatusReady)
	require.NoError(t, err)

	events := sink.snapshot()
	require.Len(t, events, 3)
	want := []domain.OrderStatus{domain.OrderStatusPending, domain.OrderStatusInProgress, domain.OrderStatusReady}
	for i, event := range events {
		require.Equal(t, fmt.Sprintf("evt-%d", i+1), event.ID)
		require.Equal(t, uint64(1), event.OrderID)
		require.Equal(t, "Ana", event.Customer)
		require.Equal(t, want[i], event.Status)
		if i > 0 {
			require.True(t, event.Occurred.After(events[i-1].Occurred))
		}
	}
}

func TestEndToEndKitchenScenario(t *testing.T) {
	c := newCoordinator(t)

	order := submit(t, c, "Ana", "Pizza", "Soda")
	require.Equal(t, uint64(1), order.ID)

	claimed := c.ClaimNext()
	require.Equal(t, uint64(1), claimed.ID)
	require.Equal(t, domain.OrderStatusInProgress, claimed.Status)

	var wg sync.WaitGroup
	var concurrent domain.Order
	wg.Add(1)
	go func() {
		defer wg.Done()
		concurrent = c.ClaimNext()
	}()
	wg.Wait()
	require.Equal(t, uint64(1), concurrent.ID)

	ready, err := c.UpdateStatus(1, domain.OrderStatusReady)
	require.NoError(t, err)
	require.Equal(t, uint64(1), ready.ID)

	require.True(t, c.ClaimNext().IsNoneAvailable())
}
