package domain

import "time"

// Booking активное бронирование номера. После создания бронирование
// не изменяется: единственный переход состояния - удаление из реестра
// при отмене, после чего оно неотличимо от никогда не существовавшего.
type Booking struct {
	ID         string // уникальный идентификатор (UUID), никогда не переиспользуется
	Guest      Guest
	RoomNumber int // ссылка на номер, данные номера в бронирование не дублируются
	CheckIn    time.Time
	CheckOut   time.Time
	CreatedAt  time.Time
}

// Nights количество ночей проживания.
// Даты хранятся с точностью до дня, CheckOut всегда строго позже CheckIn.
func (b *Booking) Nights() int {
	return int(b.CheckOut.Sub(b.CheckIn) / (24 * time.Hour))
}

// TotalCost полная стоимость проживания по цене за ночь.
func (b *Booking) TotalCost(nightlyRate float64) float64 {
	return float64(b.Nights()) * nightlyRate
}

// Overlaps проверяет пересечение бронирования с интервалом
// [checkIn, checkOut). Интервалы полуоткрытые: день выезда не считается
// занятым, поэтому новое бронирование может начинаться в день, когда
// заканчивается существующее.
func (b *Booking) Overlaps(checkIn, checkOut time.Time) bool {
	return checkIn.Before(b.CheckOut) && b.CheckIn.Before(checkOut)
}
