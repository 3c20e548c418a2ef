package catalog

import "errors"

var (
	// ErrRoomNotFound возвращается, когда номер не найден в каталоге
	ErrRoomNotFound = errors.New("catalog.repository: room not found")

	// ErrDuplicateRoom возвращается при попытке добавить номер с уже занятым номером комнаты
	ErrDuplicateRoom = errors.New("catalog.repository: duplicate room number")

	// ErrInvalidRoom возвращается при некорректных данных номера
	ErrInvalidRoom = errors.New("catalog.repository: invalid room")
)
