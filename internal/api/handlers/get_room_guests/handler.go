package get_room_guests

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-HotelDashboard/internal/api/handlers"
	"github.com/m04kA/SMC-HotelDashboard/internal/service/dashboard"
)

const msgRoomNotFound = "Xona topilmadi."

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

// Handle GET /api/v1/rooms/{number}/guests
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	number := mux.Vars(r)["number"]

	room, err := h.service.Room(number)
	if err != nil {
		if errors.Is(err, dashboard.ErrRoomNotFound) {
			h.logger.Warn("GET /rooms/{number}/guests - Room not found: number=%q", number)
			handlers.RespondNotFound(w, msgRoomNotFound)
			return
		}
		h.logger.Error("GET /rooms/{number}/guests - Failed to get room: number=%q, error=%v", number, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromRoom(room))
}
