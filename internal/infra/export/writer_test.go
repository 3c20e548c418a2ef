package export

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriter_Write(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bookings.csv")
	w := NewWriter(path)

	records := []Record{
		{
			BookingID:   "b-1",
			GuestName:   "Иван Петров",
			GuestEmail:  "ivan@example.com",
			RoomNumber:  101,
			Category:    "Standard",
			NightlyRate: 1000,
			CheckIn:     time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
			CheckOut:    time.Date(2024, 1, 4, 0, 0, 0, 0, time.UTC),
		},
		{
			BookingID:   "b-2",
			GuestName:   "Анна Сидорова",
			GuestEmail:  "anna@example.com",
			RoomNumber:  102,
			Category:    "Deluxe",
			NightlyRate: 1500.5,
			CheckIn:     time.Date(2024, 2, 10, 0, 0, 0, 0, time.UTC),
			CheckOut:    time.Date(2024, 2, 12, 0, 0, 0, 0, time.UTC),
		},
	}

	require.NoError(t, w.Write(context.Background(), records))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	// Стабильный порядок полей: id, имя, email, номер, категория,
	// цена за ночь, заезд, выезд; даты ISO-8601
	want := "b-1,Иван Петров,ivan@example.com,101,Standard,1000,2024-01-01,2024-01-04\n" +
		"b-2,Анна Сидорова,anna@example.com,102,Deluxe,1500.5,2024-02-10,2024-02-12\n"
	assert.Equal(t, want, string(data))
}

func TestWriter_Write_Overwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bookings.csv")
	w := NewWriter(path)
	ctx := context.Background()

	require.NoError(t, w.Write(ctx, []Record{{
		BookingID: "b-1", GuestName: "a", GuestEmail: "a@a", RoomNumber: 101,
		Category: "Standard", NightlyRate: 1000,
		CheckIn:  time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		CheckOut: time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC),
	}}))

	// Повторная выгрузка полностью перезаписывает файл
	require.NoError(t, w.Write(ctx, nil))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Empty(t, string(data))
}
