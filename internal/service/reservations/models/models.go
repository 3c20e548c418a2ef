package models

import (
	"time"

	"github.com/m04kA/SMC-HotelService/internal/domain"
)

// RoomResponse данные номера для выдачи наружу
type RoomResponse struct {
	Number      int     `json:"number"`
	Category    string  `json:"category"`
	NightlyRate float64 `json:"nightlyRate"`
}

// BookingResponse проекция бронирования: гость, номер, даты и
// производные значения (ночи, полная стоимость)
type BookingResponse struct {
	ID          string    `json:"id"`
	GuestName   string    `json:"guestName"`
	GuestEmail  string    `json:"guestEmail"`
	RoomNumber  int       `json:"roomNumber"`
	Category    string    `json:"category"`
	NightlyRate float64   `json:"nightlyRate"`
	CheckIn     string    `json:"checkIn"`  // "2024-01-01"
	CheckOut    string    `json:"checkOut"` // "2024-01-04"
	Nights      int       `json:"nights"`
	TotalCost   float64   `json:"totalCost"`
	CreatedAt   time.Time `json:"createdAt"`
}

// FromDomainBooking собирает проекцию из бронирования и его номера
func FromDomainBooking(b *domain.Booking, room domain.Room) *BookingResponse {
	if b == nil {
		return nil
	}

	return &BookingResponse{
		ID:          b.ID,
		GuestName:   b.Guest.Name,
		GuestEmail:  b.Guest.Email,
		RoomNumber:  b.RoomNumber,
		Category:    room.Category,
		NightlyRate: room.NightlyRate,
		CheckIn:     b.CheckIn.Format(domain.DateFormat),
		CheckOut:    b.CheckOut.Format(domain.DateFormat),
		Nights:      b.Nights(),
		TotalCost:   b.TotalCost(room.NightlyRate),
		CreatedAt:   b.CreatedAt,
	}
}

// FromDomainRooms конвертирует список номеров в DTO
func FromDomainRooms(rooms []domain.Room) []RoomResponse {
	result := make([]RoomResponse, 0, len(rooms))
	for _, r := range rooms {
		result = append(result, RoomResponse{
			Number:      r.Number,
			Category:    r.Category,
			NightlyRate: r.NightlyRate,
		})
	}
	return result
}
