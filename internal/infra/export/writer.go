// Package export односторонняя выгрузка активных бронирований в CSV.
//
// Выгрузка write-only: обратный импорт не поддерживается, формат
// зафиксирован для внешних потребителей. Одна запись на строку,
// поля через запятую, даты в ISO-8601 (YYYY-MM-DD).
package export

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/m04kA/SMC-HotelService/internal/domain"
)

// Record одна запись экспорта. Порядок полей стабилен:
// bookingId, guestName, guestEmail, roomNumber, category, nightlyRate,
// checkIn, checkOut.
type Record struct {
	BookingID   string
	GuestName   string
	GuestEmail  string
	RoomNumber  int
	Category    string
	NightlyRate float64
	CheckIn     time.Time
	CheckOut    time.Time
}

// fields возвращает поля записи в зафиксированном порядке
func (r Record) fields() []string {
	return []string{
		r.BookingID,
		r.GuestName,
		r.GuestEmail,
		strconv.Itoa(r.RoomNumber),
		r.Category,
		strconv.FormatFloat(r.NightlyRate, 'f', -1, 64),
		r.CheckIn.Format(domain.DateFormat),
		r.CheckOut.Format(domain.DateFormat),
	}
}

// Writer пишет файл экспорта, полностью перезаписывая его при каждом вызове
type Writer struct {
	path string
}

// NewWriter создает writer для указанного файла
func NewWriter(path string) *Writer {
	return &Writer{path: path}
}

// Path путь к файлу экспорта
func (w *Writer) Path() string {
	return w.path
}

// Write записывает все переданные записи в файл экспорта
func (w *Writer) Write(ctx context.Context, records []Record) error {
	f, err := os.Create(w.path)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrWriteFile, err)
	}
	defer f.Close()

	cw := csv.NewWriter(f)
	for _, rec := range records {
		if err := cw.Write(rec.fields()); err != nil {
			return fmt.Errorf("%w: %v", ErrWriteFile, err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("%w: %v", ErrWriteFile, err)
	}

	return nil
}
