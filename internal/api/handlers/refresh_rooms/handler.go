package refresh_rooms

import (
	"net/http"

	"github.com/m04kA/SMC-HotelDashboard/internal/api/handlers"
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

// Handle POST /api/v1/rooms/refresh
// Если бэкенд не ответил, ранее загруженный список номеров остается в силе.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Refresh(r.Context()); err != nil {
		status := handlers.RespondBackendError(w, err)
		h.logger.Warn("POST /rooms/refresh - Failed to refresh rooms: status=%d, error=%v", status, err)
		return
	}

	resp := RefreshResponse{RoomsLoaded: len(h.service.Rooms())}
	if refreshedAt, ok := h.service.LastRefreshed(); ok {
		resp.RefreshedAt = &refreshedAt
	}

	h.logger.Info("POST /rooms/refresh - Rooms refreshed: rooms=%d", resp.RoomsLoaded)
	handlers.RespondJSON(w, http.StatusOK, resp)
}
