package book_room

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-HotelService/internal/domain"
)

// UseCase use case бронирования номера
type UseCase struct {
	catalog      RoomCatalog
	ledger       BookingLedger
	idGen        IDGenerator
	lockManager  LockManager
	selector     RoomSelector
	timeProvider TimeProvider
	metrics      Metrics
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	catalog RoomCatalog,
	ledger BookingLedger,
	idGen IDGenerator,
	lockManager LockManager,
	metrics Metrics,
	logger Logger,
) *UseCase {
	return &UseCase{
		catalog:      catalog,
		ledger:       ledger,
		idGen:        idGen,
		lockManager:  lockManager,
		selector:     &FirstFreeSelector{},
		timeProvider: &RealTimeProvider{},
		metrics:      metrics,
		logger:       logger,
	}
}

// Execute выполняет бронирование номера.
// Последовательность "найти свободный номер - вставить бронирование"
// выполняется под общим замком: две конкурентные заявки на один номер
// с пересекающимися датами не могут пройти обе.
//
// Бронирование атомарно: либо в реестр добавляется ровно одна запись,
// либо реестр остаётся нетронутым.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("BookRoom: guest=%s, category=%s, checkIn=%s, checkOut=%s",
		req.GuestName, req.Category,
		req.CheckIn.Format(domain.DateFormat), req.CheckOut.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("BookRoom: validation failed: %v", err)
		return nil, err
	}

	checkIn := normalizeDate(req.CheckIn)
	checkOut := normalizeDate(req.CheckOut)

	// 2. Кандидаты в порядке каталога - это же порядок предпочтения
	candidates := uc.catalog.FindByCategory(ctx, req.Category)
	if len(candidates) == 0 {
		uc.logger.Warn("BookRoom: no rooms of category %q in catalog", req.Category)
		return nil, ErrNoAvailability
	}

	var result *Response

	// 3. Проверка пересечений и вставка под замком
	err := uc.lockManager.Do(ctx, func(lockCtx context.Context) error {
		room, ok := uc.selector.Select(candidates, func(room domain.Room) bool {
			return !hasOverlap(uc.ledger.AllForRoom(lockCtx, room.Number), checkIn, checkOut)
		})
		if !ok {
			uc.logger.Warn("BookRoom: all %d rooms of category %q are busy for %s..%s",
				len(candidates), req.Category,
				checkIn.Format(domain.DateFormat), checkOut.Format(domain.DateFormat))
			return ErrNoAvailability
		}

		booking := &domain.Booking{
			ID: uc.idGen.NewID(),
			Guest: domain.Guest{
				Name:  req.GuestName,
				Email: req.GuestEmail,
			},
			RoomNumber: room.Number,
			CheckIn:    checkIn,
			CheckOut:   checkOut,
			CreatedAt:  uc.timeProvider.Now(),
		}

		if err := uc.ledger.Insert(lockCtx, booking); err != nil {
			uc.logger.Error("BookRoom: failed to insert booking: %v", err)
			return fmt.Errorf("%w: failed to insert booking: %v", ErrInternal, err)
		}

		result = &Response{
			BookingID:   booking.ID,
			GuestName:   booking.Guest.Name,
			GuestEmail:  booking.Guest.Email,
			RoomNumber:  room.Number,
			Category:    room.Category,
			NightlyRate: room.NightlyRate,
			CheckIn:     booking.CheckIn,
			CheckOut:    booking.CheckOut,
			Nights:      booking.Nights(),
			TotalCost:   booking.TotalCost(room.NightlyRate),
			CreatedAt:   booking.CreatedAt,
		}
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.metrics.IncBookingCreated()
	uc.logger.Info("BookRoom: successfully created booking id=%s, room=%d, total=%.2f",
		result.BookingID, result.RoomNumber, result.TotalCost)

	return result, nil
}
