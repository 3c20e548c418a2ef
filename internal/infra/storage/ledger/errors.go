package ledger

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("ledger.repository: booking not found")

	// ErrDuplicateID возвращается при попытке вставить бронирование с уже занятым ID.
	// Генератор ID выдаёт свежие UUID, так что на практике ошибка недостижима.
	ErrDuplicateID = errors.New("ledger.repository: duplicate booking id")
)
