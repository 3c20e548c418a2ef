package search_rooms

import "github.com/m04kA/SMC-HotelService/internal/service/reservations/models"

// RoomListResponse ответ со списком номеров
type RoomListResponse struct {
	Rooms []models.RoomResponse `json:"rooms"`
}
