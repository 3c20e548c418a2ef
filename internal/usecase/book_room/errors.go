package book_room

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("book_room: invalid input data")

	// ErrInvalidDateRange возвращается, когда дата выезда не позже даты заезда
	ErrInvalidDateRange = errors.New("book_room: check-out must be strictly after check-in")

	// ErrNoAvailability возвращается, когда ни один номер категории
	// не свободен на запрошенные даты (или категории не существует)
	ErrNoAvailability = errors.New("book_room: no rooms available for the requested category and dates")

	// ErrInternal возвращается при внутренних ошибках use case
	ErrInternal = errors.New("book_room: internal error")
)
