// Package idgen генерация уникальных идентификаторов бронирований.
package idgen

import "github.com/google/uuid"

// Generator генератор случайных UUID.
// За интерфейсом IDGenerator в use case, чтобы тесты могли подставлять
// детерминированные идентификаторы.
type Generator struct{}

// New создает новый генератор
func New() *Generator {
	return &Generator{}
}

// NewID возвращает свежий UUID v4 в строковом виде
func (g *Generator) NewID() string {
	return uuid.NewString()
}
