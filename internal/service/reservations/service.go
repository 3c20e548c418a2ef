package reservations

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-HotelService/internal/infra/export"
	ledgerRepo "github.com/m04kA/SMC-HotelService/internal/infra/storage/ledger"
	"github.com/m04kA/SMC-HotelService/internal/service/reservations/models"
)

// Service сервис чтения, отмены и экспорта бронирований.
// Создание бронирований живёт отдельно, в usecase book_room.
type Service struct {
	ledger      BookingLedger
	catalog     RoomCatalog
	lockManager LockManager
	exportSink  ExportSink
	metrics     Metrics
	logger      Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(
	ledger BookingLedger,
	catalog RoomCatalog,
	lockManager LockManager,
	exportSink ExportSink,
	metrics Metrics,
	logger Logger,
) *Service {
	return &Service{
		ledger:      ledger,
		catalog:     catalog,
		lockManager: lockManager,
		exportSink:  exportSink,
		metrics:     metrics,
		logger:      logger,
	}
}

// Search возвращает номера запрошенной категории в порядке каталога.
// Чистое чтение без побочных эффектов; пустой результат - не ошибка.
func (s *Service) Search(ctx context.Context, category string) []models.RoomResponse {
	rooms := s.catalog.FindByCategory(ctx, category)
	s.logger.Info("Search: category=%q, found %d rooms", category, len(rooms))
	return models.FromDomainRooms(rooms)
}

// GetByID возвращает проекцию бронирования: гость, номер, даты,
// количество ночей и полная стоимость
func (s *Service) GetByID(ctx context.Context, id string) (*models.BookingResponse, error) {
	booking, err := s.ledger.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, ledgerRepo.ErrBookingNotFound) {
			s.logger.Warn("GetByID: booking id=%s not found", id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("GetByID: ledger error for booking id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - ledger error: %v", ErrInternal, err)
	}

	room, err := s.catalog.GetByNumber(ctx, booking.RoomNumber)
	if err != nil {
		// Реестр ссылается на номер, которого нет в каталоге -
		// инвентарь рассогласован
		s.logger.Error("GetByID: booking id=%s references unknown room %d: %v",
			id, booking.RoomNumber, err)
		return nil, fmt.Errorf("%w: GetByID - room lookup: %v", ErrInternal, err)
	}

	s.logger.Info("GetByID: successfully fetched booking id=%s", id)
	return models.FromDomainBooking(booking, room), nil
}

// Cancel отменяет бронирование, полностью удаляя его из реестра.
// Возвращает, было ли бронирование найдено. Повторная отмена и отмена
// неизвестного ID безопасны и просто возвращают false.
func (s *Service) Cancel(ctx context.Context, id string) (bool, error) {
	var found bool

	err := s.lockManager.Do(ctx, func(lockCtx context.Context) error {
		found = s.ledger.RemoveByID(lockCtx, id)
		return nil
	})
	if err != nil {
		s.logger.Error("Cancel: lock error for booking id=%s: %v", id, err)
		return false, fmt.Errorf("%w: Cancel - lock error: %v", ErrInternal, err)
	}

	if !found {
		s.logger.Warn("Cancel: booking id=%s not found", id)
		return false, nil
	}

	s.metrics.IncBookingCancelled()
	s.logger.Info("Cancel: successfully cancelled booking id=%s", id)
	return true, nil
}

// Export выгружает все активные бронирования в приёмник экспорта.
// Возвращает количество выгруженных записей.
func (s *Service) Export(ctx context.Context) (int, error) {
	bookings := s.ledger.All(ctx)

	records := make([]export.Record, 0, len(bookings))
	for _, b := range bookings {
		room, err := s.catalog.GetByNumber(ctx, b.RoomNumber)
		if err != nil {
			s.logger.Error("Export: booking id=%s references unknown room %d: %v",
				b.ID, b.RoomNumber, err)
			return 0, fmt.Errorf("%w: Export - room lookup: %v", ErrInternal, err)
		}

		records = append(records, export.Record{
			BookingID:   b.ID,
			GuestName:   b.Guest.Name,
			GuestEmail:  b.Guest.Email,
			RoomNumber:  b.RoomNumber,
			Category:    room.Category,
			NightlyRate: room.NightlyRate,
			CheckIn:     b.CheckIn,
			CheckOut:    b.CheckOut,
		})
	}

	if err := s.exportSink.Write(ctx, records); err != nil {
		s.logger.Error("Export: failed to write export: %v", err)
		return 0, fmt.Errorf("%w: Export - write: %v", ErrInternal, err)
	}

	s.logger.Info("Export: successfully exported %d bookings", len(records))
	return len(records), nil
}
