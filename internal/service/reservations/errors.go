package reservations

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено.
	// Это ожидаемый исход, а не сбой: отменённое бронирование
	// неотличимо от никогда не существовавшего.
	ErrBookingNotFound = errors.New("reservations: booking not found")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("reservations: internal error")
)
