package domain

import (
	"slices"
	"time"
)

// OrderStatus описывает состояние заказа на кухне.
//
// Статус хранится как произвольная строка: UpdateStatus принимает любые значения,
// но побочные эффекты (очередь и слот) есть только у OrderStatusReady.
type OrderStatus string

const (
	// OrderStatusPending — заказ принят кассой и ждёт кухню.
	OrderStatusPending OrderStatus = "PENDING"
	// OrderStatusInProgress — заказ взят кухней и занимает слот подготовки.
	OrderStatusInProgress OrderStatus = "IN_PROGRESS"
	// OrderStatusReady — заказ готов, очередь и слот освобождены.
	OrderStatusReady OrderStatus = "READY"
	// OrderStatusNoneAvailable — статус-сентинел ответа ClaimNext, не состояние реального заказа.
	OrderStatusNoneAvailable OrderStatus = "NONE_AVAILABLE"
)

// TimestampLayout — формат отметок времени в событиях статуса.
const TimestampLayout = "2006-01-02 15:04:05"

// String возвращает строковое значение статуса.
func (s OrderStatus) String() string {
	return string(s)
}

// StatusChange фиксирует один записанный статус заказа.
type StatusChange struct {
	Status   OrderStatus
	Occurred time.Time
}

// Timestamp форматирует момент изменения в TimestampLayout.
func (c StatusChange) Timestamp() string {
	return c.Occurred.Format(TimestampLayout)
}

// Order — запись заказа в хранилище координатора.
type Order struct {
	ID        uint64
	Customer  string
	Items     []string
	Status    OrderStatus
	History   []StatusChange
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NoneAvailable возвращает сентинел «нет заказа» (ID 0).
func NoneAvailable() Order {
	return Order{Status: OrderStatusNoneAvailable}
}

// IsNoneAvailable сообщает, является ли значение сентинелом.
func (o Order) IsNoneAvailable() bool {
	return o.ID == 0
}

// Clone возвращает глубокую копию заказа, чтобы вызывающий код не делил срезы с хранилищем.
func (o Order) Clone() Order {
	o.Items = slices.Clone(o.Items)
	o.History = slices.Clone(o.History)
	return o
}

// ValidateInvariants проверяет входные данные нового заказа и возвращает список замечаний.
func (o *Order) ValidateInvariants() []error {
	var errs []error

	if len(o.Items) == 0 {
		errs = append(errs, ErrItemsRequired)
	}

	return errs
}
