package get_free_rooms

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-HotelDashboard/internal/api/handlers"
	"github.com/m04kA/SMC-HotelDashboard/internal/service/dashboard"
)

type Handler struct {
	service DashboardService
	logger  Logger
}

func NewHandler(service DashboardService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/rooms/free?checkIn=YYYY-MM-DD&checkOut=YYYY-MM-DD
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	checkIn := handlers.QueryString(r, "checkIn")
	checkOut := handlers.QueryString(r, "checkOut")

	rooms, err := h.service.FreeRooms(r.Context(), checkIn, checkOut)
	if err != nil {
		if errors.Is(err, dashboard.ErrInvalidInput) {
			h.logger.Warn("GET /rooms/free - Invalid period: %v", err)
			handlers.RespondBadRequest(w, handlers.DateRangeMessage(err))
			return
		}
		status := handlers.RespondBackendError(w, err)
		h.logger.Error("GET /rooms/free - Failed to get free rooms: status=%d, error=%v", status, err)
		return
	}

	resp := NewFreeRoomsResponse(checkIn, checkOut, rooms)
	h.logger.Info("GET /rooms/free - Free rooms: %s..%s, rooms=%d, free=%d", checkIn, checkOut, len(resp.Rooms), resp.TotalFree)
	handlers.RespondJSON(w, http.StatusOK, resp)
}
