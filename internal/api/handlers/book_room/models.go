package book_room

import (
	"time"

	"github.com/m04kA/SMC-HotelService/internal/domain"
	bookRoom "github.com/m04kA/SMC-HotelService/internal/usecase/book_room"
)

// BookRoomRequest HTTP request model
type BookRoomRequest struct {
	GuestName  string `json:"guestName"`
	GuestEmail string `json:"guestEmail"`
	Category   string `json:"category"`
	CheckIn    string `json:"checkIn"`  // "2024-01-01"
	CheckOut   string `json:"checkOut"` // "2024-01-04"
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID          string  `json:"id"`
	GuestName   string  `json:"guestName"`
	GuestEmail  string  `json:"guestEmail"`
	RoomNumber  int     `json:"roomNumber"`
	Category    string  `json:"category"`
	NightlyRate float64 `json:"nightlyRate"`
	CheckIn     string  `json:"checkIn"`
	CheckOut    string  `json:"checkOut"`
	Nights      int     `json:"nights"`
	TotalCost   float64 `json:"totalCost"`
	CreatedAt   string  `json:"createdAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
// (с парсингом дат)
func (r *BookRoomRequest) ToUseCaseRequest() (*bookRoom.Request, error) {
	checkIn, err := time.Parse(domain.DateFormat, r.CheckIn)
	if err != nil {
		return nil, err
	}

	checkOut, err := time.Parse(domain.DateFormat, r.CheckOut)
	if err != nil {
		return nil, err
	}

	return &bookRoom.Request{
		GuestName:  r.GuestName,
		GuestEmail: r.GuestEmail,
		Category:   r.Category,
		CheckIn:    checkIn,
		CheckOut:   checkOut,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *bookRoom.Response) *BookingResponse {
	return &BookingResponse{
		ID:          resp.BookingID,
		GuestName:   resp.GuestName,
		GuestEmail:  resp.GuestEmail,
		RoomNumber:  resp.RoomNumber,
		Category:    resp.Category,
		NightlyRate: resp.NightlyRate,
		CheckIn:     resp.CheckIn.Format(domain.DateFormat),
		CheckOut:    resp.CheckOut.Format(domain.DateFormat),
		Nights:      resp.Nights,
		TotalCost:   resp.TotalCost,
		CreatedAt:   resp.CreatedAt.Format(time.RFC3339),
	}
}
