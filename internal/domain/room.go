package domain

import "strings"

// Room номер отеля. Создаётся один раз при инициализации каталога
// и далее не изменяется; удаление номеров во время работы сервиса
// не поддерживается.
type Room struct {
	Number      int     // уникальный положительный номер комнаты
	Category    string  // категория (Standard, Deluxe, Suite)
	NightlyRate float64 // цена за одну ночь
}

// MatchesCategory проверяет принадлежность номера к категории.
// Сравнение без учёта регистра, категория - непрозрачная метка.
func (r *Room) MatchesCategory(category string) bool {
	return strings.EqualFold(r.Category, category)
}
