package domain

import "errors"

var (
	// ErrItemsRequired — заказ без позиций не принимается.
	ErrItemsRequired = errors.New("order must contain at least one item")
	// ErrStatusRequired — пустой статус в UpdateStatus.
	ErrStatusRequired = errors.New("status is required")
	// ErrSlotOccupied — IN_PROGRESS допустим только для заказа, занимающего слот подготовки.
	ErrSlotOccupied = errors.New("preparation slot is held by another order")
	// ErrOrderNotFound возвращается, если заказ с таким идентификатором не зарегистрирован.
	ErrOrderNotFound = errors.New("order not found")
	// ErrWatcherUnavailable — временный сбой доставки события наблюдателю.
	ErrWatcherUnavailable = errors.New("watcher unavailable")
	// ErrCoordinatorClosed — координатор остановлен, новые подписки не принимаются.
	ErrCoordinatorClosed = errors.New("coordinator is closed")
	// ErrPublisherClosed — publisher событий уже закрыт.
	ErrPublisherClosed = errors.New("event publisher is closed")
	// ErrOutboxPublish — ошибка при публикации сообщения из outbox.
	ErrOutboxPublish = errors.New("outbox publish failed")
)

// IsInvalidArgument сообщает, относится ли ошибка к некорректным входным данным.
func IsInvalidArgument(err error) bool {
	return errors.Is(err, ErrItemsRequired) ||
		errors.Is(err, ErrStatusRequired) ||
		errors.Is(err, ErrSlotOccupied)
}

// IsUnavailable сообщает, является ли ошибка временной недоступностью.
func IsUnavailable(err error) bool {
	return errors.Is(err, ErrWatcherUnavailable) ||
		errors.Is(err, ErrCoordinatorClosed) ||
		errors.Is(err, ErrPublisherClosed)
}
