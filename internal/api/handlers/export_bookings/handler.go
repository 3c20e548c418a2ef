package export_bookings

import (
	"net/http"

	"github.com/m04kA/SMC-HotelService/internal/api/handlers"
)

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

// Handle POST /api/v1/bookings/export
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	count, err := h.service.Export(r.Context())
	if err != nil {
		h.logger.Error("POST /bookings/export - Failed to export bookings: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("POST /bookings/export - Exported %d bookings", count)
	handlers.RespondJSON(w, http.StatusOK, ExportResponse{ExportedCount: count})
}
