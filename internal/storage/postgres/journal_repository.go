package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"math"
	"time"

	"github.com/vladislavdragonenkov/kitchen/internal/domain"
)

// JournalRepository пишет события статусов в таблицу status_journal.
type JournalRepository struct {
	db *sql.DB
}

// NewJournalRepository создаёт PostgreSQL-реализацию domain.JournalRepository.
func NewJournalRepository(store *Store) *JournalRepository {
	return &JournalRepository{db: store.DB()}
}

// Append добавляет событие; дубликат event_id молча игнорируется.
func (r *JournalRepository) Append(event domain.StatusEvent) error {
	if event.ID == "" {
		return fmt.Errorf("append status event: empty event id")
	}
	if event.OrderID == 0 || event.OrderID > math.MaxInt64 {
		return fmt.Errorf("append status event: order id %d out of range", event.OrderID)
	}
	if event.Occurred.IsZero() {
		event.Occurred = time.Now().UTC()
	}

	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()

	if _, err := r.db.ExecContext(ctx, `
		INSERT INTO status_journal (event_id, order_id, customer, status, occurred_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (event_id) DO NOTHING
	`, event.ID, int64(event.OrderID), event.Customer, string(event.Status), event.Occurred); err != nil {
		return fmt.Errorf("append status event: %w", err)
	}
	return nil
}

// List возвращает события заказа в порядке записи.
func (r *JournalRepository) List(orderID uint64) ([]domain.StatusEvent, error) {
	if orderID > math.MaxInt64 {
		return nil, nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()

	rows, err := r.db.QueryContext(ctx, `
		SELECT event_id, order_id, customer, status, occurred_at
		FROM status_journal
		WHERE order_id = $1
		ORDER BY seq ASC
	`, int64(orderID))
	if err != nil {
		return nil, fmt.Errorf("list status events: %w", err)
	}
	defer rows.Close()

	events := make([]domain.StatusEvent, 0)
	for rows.Next() {
		var (
			event  domain.StatusEvent
			id     int64
			status string
		)
		if err := rows.Scan(&event.ID, &id, &event.Customer, &status, &event.Occurred); err != nil {
			return nil, fmt.Errorf("scan status event: %w", err)
		}
		event.OrderID = uint64(id)
		event.Status = domain.OrderStatus(status)
		events = append(events, event)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate status events: %w", err)
	}
	return events, nil
}

var _ domain.JournalRepository = (*JournalRepository)(nil)
