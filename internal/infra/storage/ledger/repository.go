package ledger

import (
	"context"
	"sync"

	"github.com/m04kA/SMC-HotelService/internal/domain"
)

// Repository реестр активных бронирований в памяти.
// Хранит порядок вставки - он используется при экспорте. Бронирования
// после создания неизменяемы, поэтому наружу отдаются указатели без
// копирования. RWMutex защищает только консистентность самого реестра;
// составная последовательность "проверить доступность - вставить"
// сериализуется на уровне выше, через lock manager.
type Repository struct {
	mu       sync.RWMutex
	bookings []*domain.Booking
	byID     map[string]*domain.Booking
}

// NewRepository создает пустой реестр бронирований
func NewRepository() *Repository {
	return &Repository{
		bookings: make([]*domain.Booking, 0),
		byID:     make(map[string]*domain.Booking),
	}
}

// Insert добавляет бронирование в реестр.
// Единственная причина отказа - дубликат ID.
func (r *Repository) Insert(ctx context.Context, booking *domain.Booking) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[booking.ID]; ok {
		return ErrDuplicateID
	}

	r.bookings = append(r.bookings, booking)
	r.byID[booking.ID] = booking
	return nil
}

// RemoveByID удаляет бронирование, если оно есть.
// Возвращает, произошло ли удаление. Повторное удаление - не ошибка,
// просто false: отменённое бронирование неотличимо от несуществующего.
func (r *Repository) RemoveByID(ctx context.Context, id string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[id]; !ok {
		return false
	}

	delete(r.byID, id)
	for i := range r.bookings {
		if r.bookings[i].ID == id {
			r.bookings = append(r.bookings[:i], r.bookings[i+1:]...)
			break
		}
	}
	return true
}

// GetByID получает бронирование по ID
func (r *Repository) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	booking, ok := r.byID[id]
	if !ok {
		return nil, ErrBookingNotFound
	}
	return booking, nil
}

// AllForRoom возвращает все активные бронирования указанного номера.
// Используется при проверке пересечений дат.
func (r *Repository) AllForRoom(ctx context.Context, roomNumber int) []*domain.Booking {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*domain.Booking, 0)
	for _, b := range r.bookings {
		if b.RoomNumber == roomNumber {
			result = append(result, b)
		}
	}
	return result
}

// All возвращает все активные бронирования в порядке вставки
func (r *Repository) All(ctx context.Context) []*domain.Booking {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*domain.Booking, len(r.bookings))
	copy(result, r.bookings)
	return result
}

// Count количество активных бронирований.
// Используется gauge-метрикой активных бронирований.
func (r *Repository) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.bookings)
}
