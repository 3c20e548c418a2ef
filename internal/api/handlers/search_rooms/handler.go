package search_rooms

import (
	"net/http"
	"strings"

	"github.com/m04kA/SMC-HotelService/internal/api/handlers"
)

const msgMissingCategory = "не указана категория номера"

type Handler struct {
	service ReservationService
	logger  Logger
}

func NewHandler(service ReservationService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/rooms?category=Standard
//
// Категория с отсутствующими в каталоге номерами - не ошибка,
// возвращается пустой список.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	category := strings.TrimSpace(r.URL.Query().Get("category"))
	if category == "" {
		h.logger.Warn("GET /rooms - Missing category query parameter")
		handlers.RespondBadRequest(w, msgMissingCategory)
		return
	}

	rooms := h.service.Search(r.Context(), category)

	h.logger.Info("GET /rooms - Found %d rooms for category=%q", len(rooms), category)
	handlers.RespondJSON(w, http.StatusOK, RoomListResponse{Rooms: rooms})
}
