package book_room

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-HotelService/internal/api/handlers"
	bookRoom "github.com/m04kA/SMC-HotelService/internal/usecase/book_room"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDate        = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidDateRange   = "дата выезда должна быть строго позже даты заезда"
	msgInvalidInput       = "некорректные данные бронирования"
	msgNoAvailability     = "нет свободных номеров выбранной категории на указанные даты"
)

type Handler struct {
	useCase BookRoomUseCase
	logger  Logger
}

func NewHandler(useCase BookRoomUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req BookRoomRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /bookings - Failed to parse dates: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, bookRoom.ErrNoAvailability):
			h.logger.Warn("POST /bookings - No availability: category=%s, checkIn=%s, checkOut=%s",
				req.Category, req.CheckIn, req.CheckOut)
			handlers.RespondConflict(w, msgNoAvailability)

		case errors.Is(err, bookRoom.ErrInvalidDateRange):
			h.logger.Warn("POST /bookings - Invalid date range: checkIn=%s, checkOut=%s",
				req.CheckIn, req.CheckOut)
			handlers.RespondBadRequest(w, msgInvalidDateRange)

		case errors.Is(err, bookRoom.ErrInvalidInput):
			h.logger.Warn("POST /bookings - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /bookings - Failed to book room: category=%s, error=%v",
				req.Category, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings - Booking created successfully: booking_id=%s, room=%d",
		result.BookingID, result.RoomNumber)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
