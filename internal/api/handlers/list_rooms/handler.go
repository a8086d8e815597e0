package list_rooms

import (
	"net/http"

	"github.com/m04kA/SMC-HotelDashboard/internal/api/handlers"
)

type Handler struct {
	service DashboardService
}

func NewHandler(service DashboardService) *Handler {
	return &Handler{service: service}
}

// Handle GET /api/v1/rooms
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	refreshedAt, refreshed := h.service.LastRefreshed()
	handlers.RespondJSON(w, http.StatusOK, FromRooms(h.service.Rooms(), refreshedAt, refreshed))
}
