package domain_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/vladislavdragonenkov/kitchen/internal/domain"
)

func makeOrder() domain.Order {
	now := time.Date(2026, 3, 14, 12, 30, 5, 0, time.UTC)
	return domain.Order{
		ID:       1,
		Customer: "Ana",
		Items:    []string{"Pizza", "Soda"},
		Status:   domain.OrderStatusPending,
		History: []domain.StatusChange{
			{Status: domain.OrderStatusPending, Occurred: now},
		},
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func TestOrderValidateInvariants_Ok(t *testing.T) {
	order := makeOrder()
	require.Empty(t, order.ValidateInvariants())
}

func TestOrderValidateInvariants_NoItems(t *testing.T) {
	order := makeOrder()
	order.Items = nil

	errs := order.ValidateInvariants()
	require.Len(t, errs, 1)
	require.ErrorIs(t, errs[0], domain.ErrItemsRequired)
}

func TestOrderCloneDoesNotShareSlices(t *testing.T) {
	order := makeOrder()
	clone := order.Clone()

	clone.Items[0] = "Burger"
	clone.History = append(clone.History, domain.StatusChange{Status: domain.OrderStatusReady})
	clone.History[0].Status = "CHANGED"

	require.Equal(t, "Pizza", order.Items[0])
	require.Len(t, order.History, 1)
	require.Equal(t, domain.OrderStatusPending, order.History[0].Status)
}

func TestNoneAvailableSentinel(t *testing.T) {
	sentinel := domain.NoneAvailable()
	require.True(t, sentinel.IsNoneAvailable())
	require.Equal(t, uint64(0), sentinel.ID)
	require.Equal(t, domain.OrderStatusNoneAvailable, sentinel.Status)

	require.False(t, makeOrder().IsNoneAvailable())
}

func TestStatusChangeTimestampLayout(t *testing.T) {
	change := domain.StatusChange{
		Status:   domain.OrderStatusReady,
		Occurred: time.Date(2026, 1, 2, 3, 4, 5, 999, time.UTC),
	}
	require.Equal(t, "2026-01-02 03:04:05", change.Timestamp())
}
