package catalog

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-HotelService/internal/domain"
)

func seedRooms() []domain.Room {
	return []domain.Room{
		{Number: 101, Category: "Standard", NightlyRate: 1000},
		{Number: 102, Category: "Deluxe", NightlyRate: 1500},
		{Number: 103, Category: "Suite", NightlyRate: 2000},
		{Number: 104, Category: "Standard", NightlyRate: 1100},
	}
}

func TestNewRepository_Validation(t *testing.T) {
	tests := []struct {
		name    string
		rooms   []domain.Room
		wantErr error
	}{
		{
			name:    "пустой инвентарь допустим",
			rooms:   nil,
			wantErr: nil,
		},
		{
			name: "неположительный номер комнаты",
			rooms: []domain.Room{
				{Number: 0, Category: "Standard", NightlyRate: 1000},
			},
			wantErr: ErrInvalidRoom,
		},
		{
			name: "пустая категория",
			rooms: []domain.Room{
				{Number: 101, Category: "  ", NightlyRate: 1000},
			},
			wantErr: ErrInvalidRoom,
		},
		{
			name: "неположительная цена",
			rooms: []domain.Room{
				{Number: 101, Category: "Standard", NightlyRate: 0},
			},
			wantErr: ErrInvalidRoom,
		},
		{
			name: "дубликат номера комнаты",
			rooms: []domain.Room{
				{Number: 101, Category: "Standard", NightlyRate: 1000},
				{Number: 101, Category: "Deluxe", NightlyRate: 1500},
			},
			wantErr: ErrDuplicateRoom,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, err := NewRepository(tt.rooms)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, repo)
				return
			}
			require.NoError(t, err)
			require.NotNil(t, repo)
		})
	}
}

func TestRepository_FindByCategory(t *testing.T) {
	repo, err := NewRepository(seedRooms())
	require.NoError(t, err)

	ctx := context.Background()

	// Порядок результата - порядок каталога
	standard := repo.FindByCategory(ctx, "Standard")
	require.Len(t, standard, 2)
	assert.Equal(t, 101, standard[0].Number)
	assert.Equal(t, 104, standard[1].Number)

	// Регистр не учитывается
	assert.Len(t, repo.FindByCategory(ctx, "sTaNdArD"), 2)
	assert.Len(t, repo.FindByCategory(ctx, "suite"), 1)

	// Неизвестная категория - пустой слайс, не ошибка
	unknown := repo.FindByCategory(ctx, "Penthouse")
	assert.NotNil(t, unknown)
	assert.Empty(t, unknown)
}

func TestRepository_GetByNumber(t *testing.T) {
	repo, err := NewRepository(seedRooms())
	require.NoError(t, err)

	ctx := context.Background()

	room, err := repo.GetByNumber(ctx, 102)
	require.NoError(t, err)
	assert.Equal(t, "Deluxe", room.Category)
	assert.Equal(t, 1500.0, room.NightlyRate)

	_, err = repo.GetByNumber(ctx, 999)
	assert.ErrorIs(t, err, ErrRoomNotFound)
}

func TestRepository_All(t *testing.T) {
	repo, err := NewRepository(seedRooms())
	require.NoError(t, err)

	all := repo.All(context.Background())
	require.Len(t, all, 4)
	assert.Equal(t, []int{101, 102, 103, 104}, []int{
		all[0].Number, all[1].Number, all[2].Number, all[3].Number,
	})
}
