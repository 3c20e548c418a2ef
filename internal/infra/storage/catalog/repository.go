package catalog

import (
	"context"
	"fmt"
	"strings"

	"github.com/m04kA/SMC-HotelService/internal/domain"
)

// Repository каталог номеров отеля в памяти.
// Инвентарь фиксируется при создании репозитория и далее не изменяется,
// поэтому чтение не требует синхронизации. Порядок номеров - порядок
// добавления: он же является порядком предпочтения при аллокации.
type Repository struct {
	rooms    []domain.Room
	byNumber map[int]domain.Room
}

// NewRepository создает каталог из стартового инвентаря.
// Валидирует номера: положительный номер комнаты, непустая категория,
// положительная цена за ночь, уникальность номеров.
func NewRepository(rooms []domain.Room) (*Repository, error) {
	r := &Repository{
		rooms:    make([]domain.Room, 0, len(rooms)),
		byNumber: make(map[int]domain.Room, len(rooms)),
	}

	for _, room := range rooms {
		if room.Number <= 0 {
			return nil, fmt.Errorf("%w: room number must be positive, got %d", ErrInvalidRoom, room.Number)
		}
		if strings.TrimSpace(room.Category) == "" {
			return nil, fmt.Errorf("%w: room %d has empty category", ErrInvalidRoom, room.Number)
		}
		if room.NightlyRate <= 0 {
			return nil, fmt.Errorf("%w: room %d has non-positive nightly rate", ErrInvalidRoom, room.Number)
		}
		if _, ok := r.byNumber[room.Number]; ok {
			return nil, fmt.Errorf("%w: room %d", ErrDuplicateRoom, room.Number)
		}

		r.rooms = append(r.rooms, room)
		r.byNumber[room.Number] = room
	}

	return r, nil
}

// FindByCategory возвращает номера указанной категории в порядке каталога.
// Сравнение категорий без учёта регистра. Отсутствие совпадений - не
// ошибка, возвращается пустой слайс.
func (r *Repository) FindByCategory(ctx context.Context, category string) []domain.Room {
	result := make([]domain.Room, 0)
	for i := range r.rooms {
		if r.rooms[i].MatchesCategory(category) {
			result = append(result, r.rooms[i])
		}
	}
	return result
}

// GetByNumber получает номер по номеру комнаты
func (r *Repository) GetByNumber(ctx context.Context, number int) (domain.Room, error) {
	room, ok := r.byNumber[number]
	if !ok {
		return domain.Room{}, fmt.Errorf("%w: room %d", ErrRoomNotFound, number)
	}
	return room, nil
}

// All возвращает весь инвентарь в порядке каталога
func (r *Repository) All(ctx context.Context) []domain.Room {
	result := make([]domain.Room, len(r.rooms))
	copy(result, r.rooms)
	return result
}
