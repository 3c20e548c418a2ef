package book_room

import (
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/SMC-HotelService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if strings.TrimSpace(req.GuestName) == "" {
		return fmt.Errorf("%w: guestName is required", ErrInvalidInput)
	}

	if strings.TrimSpace(req.GuestEmail) == "" {
		return fmt.Errorf("%w: guestEmail is required", ErrInvalidInput)
	}

	if strings.TrimSpace(req.Category) == "" {
		return fmt.Errorf("%w: category is required", ErrInvalidInput)
	}

	if req.CheckIn.IsZero() || req.CheckOut.IsZero() {
		return fmt.Errorf("%w: checkIn and checkOut are required", ErrInvalidInput)
	}

	// Бронирования нулевой или отрицательной длительности запрещены
	if !req.CheckOut.After(req.CheckIn) {
		return ErrInvalidDateRange
	}

	return nil
}

// hasOverlap проверяет, пересекается ли интервал [checkIn, checkOut)
// хотя бы с одним из существующих бронирований номера.
// Интервалы полуоткрытые: день выезда свободен для нового заезда.
func hasOverlap(bookings []*domain.Booking, checkIn, checkOut time.Time) bool {
	for _, b := range bookings {
		if b.Overlaps(checkIn, checkOut) {
			return true
		}
	}
	return false
}

// normalizeDate отбрасывает время суток, оставляя только дату.
// Частичные сутки не поддерживаются, гранулярность бронирования - день.
func normalizeDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
