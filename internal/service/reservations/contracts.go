package reservations

import (
	"context"

	"github.com/m04kA/SMC-HotelService/internal/domain"
	"github.com/m04kA/SMC-HotelService/internal/infra/export"
)

// BookingLedger интерфейс реестра бронирований
type BookingLedger interface {
	GetByID(ctx context.Context, id string) (*domain.Booking, error)
	RemoveByID(ctx context.Context, id string) bool
	All(ctx context.Context) []*domain.Booking
}

// RoomCatalog интерфейс каталога номеров
type RoomCatalog interface {
	FindByCategory(ctx context.Context, category string) []domain.Room
	GetByNumber(ctx context.Context, number int) (domain.Room, error)
}

// LockManager интерфейс сериализации составных операций
type LockManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// ExportSink приёмник выгрузки активных бронирований
type ExportSink interface {
	Write(ctx context.Context, records []export.Record) error
}

// Metrics интерфейс метрик бронирований
type Metrics interface {
	IncBookingCancelled()
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
