package domain

// Guest гость отеля. Создаётся заново при каждом успешном бронировании
// и принадлежит только этому бронированию: реестра гостей и
// дедупликации по email нет.
type Guest struct {
	Name  string
	Email string
}
