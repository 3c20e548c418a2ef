package book_room

import "time"

// Request модель запроса на бронирование номера
type Request struct {
	GuestName  string    // имя гостя
	GuestEmail string    // контактный email гостя
	Category   string    // запрошенная категория номера
	CheckIn    time.Time // дата заезда (без времени)
	CheckOut   time.Time // дата выезда, строго позже заезда
}

// Response модель ответа с созданным бронированием
type Response struct {
	BookingID   string    // ID созданного бронирования
	GuestName   string    // имя гостя
	GuestEmail  string    // email гостя
	RoomNumber  int       // выделенный номер
	Category    string    // категория номера
	NightlyRate float64   // цена за ночь
	CheckIn     time.Time // дата заезда
	CheckOut    time.Time // дата выезда
	Nights      int       // количество ночей
	TotalCost   float64   // полная стоимость: ночи * цена за ночь
	CreatedAt   time.Time // время создания
}
