package ledger

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-HotelService/internal/domain"
)

func newBooking(id string, roomNumber int) *domain.Booking {
	return &domain.Booking{
		ID:         id,
		Guest:      domain.Guest{Name: "Иван Петров", Email: "ivan@example.com"},
		RoomNumber: roomNumber,
		CheckIn:    time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		CheckOut:   time.Date(2024, 1, 4, 0, 0, 0, 0, time.UTC),
		CreatedAt:  time.Date(2023, 12, 20, 12, 0, 0, 0, time.UTC),
	}
}

func TestRepository_Insert(t *testing.T) {
	repo := NewRepository()
	ctx := context.Background()

	require.NoError(t, repo.Insert(ctx, newBooking("b-1", 101)))
	assert.Equal(t, 1, repo.Count())

	// Единственная причина отказа - дубликат ID
	err := repo.Insert(ctx, newBooking("b-1", 102))
	assert.ErrorIs(t, err, ErrDuplicateID)
	assert.Equal(t, 1, repo.Count())
}

func TestRepository_RemoveByID(t *testing.T) {
	repo := NewRepository()
	ctx := context.Background()

	require.NoError(t, repo.Insert(ctx, newBooking("b-1", 101)))

	assert.True(t, repo.RemoveByID(ctx, "b-1"))
	assert.Equal(t, 0, repo.Count())

	// Повторное удаление и удаление неизвестного ID - не ошибка
	assert.False(t, repo.RemoveByID(ctx, "b-1"))
	assert.False(t, repo.RemoveByID(ctx, "never-existed"))
}

func TestRepository_GetByID(t *testing.T) {
	repo := NewRepository()
	ctx := context.Background()

	require.NoError(t, repo.Insert(ctx, newBooking("b-1", 101)))

	booking, err := repo.GetByID(ctx, "b-1")
	require.NoError(t, err)
	assert.Equal(t, 101, booking.RoomNumber)

	_, err = repo.GetByID(ctx, "b-2")
	assert.ErrorIs(t, err, ErrBookingNotFound)

	// После удаления бронирование неотличимо от несуществующего
	repo.RemoveByID(ctx, "b-1")
	_, err = repo.GetByID(ctx, "b-1")
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestRepository_AllForRoom(t *testing.T) {
	repo := NewRepository()
	ctx := context.Background()

	require.NoError(t, repo.Insert(ctx, newBooking("b-1", 101)))
	require.NoError(t, repo.Insert(ctx, newBooking("b-2", 102)))
	require.NoError(t, repo.Insert(ctx, newBooking("b-3", 101)))

	forRoom := repo.AllForRoom(ctx, 101)
	require.Len(t, forRoom, 2)

	assert.Empty(t, repo.AllForRoom(ctx, 103))
}

func TestRepository_All_InsertionOrder(t *testing.T) {
	repo := NewRepository()
	ctx := context.Background()

	for i := 1; i <= 5; i++ {
		require.NoError(t, repo.Insert(ctx, newBooking(fmt.Sprintf("b-%d", i), 100+i)))
	}
	// Удаление из середины не меняет порядок остальных
	require.True(t, repo.RemoveByID(ctx, "b-3"))

	all := repo.All(ctx)
	require.Len(t, all, 4)
	assert.Equal(t, "b-1", all[0].ID)
	assert.Equal(t, "b-2", all[1].ID)
	assert.Equal(t, "b-4", all[2].ID)
	assert.Equal(t, "b-5", all[3].ID)
}
