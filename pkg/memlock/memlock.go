// Package memlock сериализует составные операции над inventory в памяти.
//
// Последовательность "просканировать бронирования - вставить новое"
// является check-then-act гонкой при нескольких конкурентных вызовах,
// поэтому book и cancel выполняются под одним общим замком. Для
// хранилища в памяти это прямая замена сериализуемых транзакций БД.
package memlock

import (
	"context"
	"sync"
)

// Manager однозамковый менеджер, закрывающий каталог и реестр вместе
type Manager struct {
	mu sync.Mutex
}

// NewManager создает новый менеджер
func NewManager() *Manager {
	return &Manager{}
}

// Do выполняет fn под замком.
// Если контекст уже отменён, fn не вызывается.
func (m *Manager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	return fn(ctx)
}
