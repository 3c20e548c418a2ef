package book_room

import (
	"context"
	"time"

	"github.com/m04kA/SMC-HotelService/internal/domain"
)

// RoomCatalog интерфейс каталога номеров
type RoomCatalog interface {
	FindByCategory(ctx context.Context, category string) []domain.Room
}

// BookingLedger интерфейс реестра бронирований
type BookingLedger interface {
	Insert(ctx context.Context, booking *domain.Booking) error
	AllForRoom(ctx context.Context, roomNumber int) []*domain.Booking
}

// IDGenerator интерфейс генерации идентификаторов бронирований
// (для тестов подставляется детерминированная реализация)
type IDGenerator interface {
	NewID() string
}

// LockManager интерфейс сериализации составных операций.
// Последовательность "проверить пересечения - вставить" должна
// выполняться атомарно относительно других book/cancel вызовов.
type LockManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// RoomSelector стратегия выбора номера среди кандидатов.
// Позволяет заменить простой перебор на балансировку, если понадобится.
type RoomSelector interface {
	Select(candidates []domain.Room, isFree func(room domain.Room) bool) (domain.Room, bool)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Metrics интерфейс метрик бронирований
type Metrics interface {
	IncBookingCreated()
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// FirstFreeSelector выбирает первый свободный номер в порядке каталога.
// Намеренно простая политика: никакой оптимизации по цене или загрузке.
type FirstFreeSelector struct{}

// Select возвращает первый номер, для которого isFree вернул true
func (s *FirstFreeSelector) Select(candidates []domain.Room, isFree func(room domain.Room) bool) (domain.Room, bool) {
	for _, room := range candidates {
		if isFree(room) {
			return room, true
		}
	}
	return domain.Room{}, false
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
