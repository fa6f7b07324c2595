package memory

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/vladislavdragonenkov/kitchen/internal/domain"
)

func TestJournalRepository_AppendAndList(t *testing.T) {
	repo := NewJournalRepository()
	now := time.Now()

	require.NoError(t, repo.Append(domain.StatusEvent{ID: "a", OrderID: 1, Status: domain.OrderStatusPending, Occurred: now}))
	require.NoError(t, repo.Append(domain.StatusEvent{ID: "b", OrderID: 2, Status: domain.OrderStatusPending, Occurred: now}))
	require.NoError(t, repo.Append(domain.StatusEvent{ID: "c", OrderID: 1, Status: domain.OrderStatusInProgress, Occurred: now}))

	events, err := repo.List(1)
	require.NoError(t, err)
	require.Len(t, events, 2)
	require.Equal(t, domain.OrderStatusPending, events[0].Status)
	require.Equal(t, domain.OrderStatusInProgress, events[1].Status)

	events[0].Status = "MUTATED"
	again, err := repo.List(1)
	require.NoError(t, err)
	require.Equal(t, domain.OrderStatusPending, again[0].Status)
}

func TestJournalRepository_AppendIsIdempotentByID(t *testing.T) {
	repo := NewJournalRepository()
	event := domain.StatusEvent{ID: "evt-1", OrderID: 1, Status: domain.OrderStatusReady}

	require.NoError(t, repo.Append(event))
	require.NoError(t, repo.Append(event))

	events, err := repo.List(1)
	require.NoError(t, err)
	require.Len(t, events, 1)
}

func TestJournalRepository_ListUnknownOrder(t *testing.T) {
	repo := NewJournalRepository()

	events, err := repo.List(99)
	require.NoError(t, err)
	require.Empty(t, events)
}
