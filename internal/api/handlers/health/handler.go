package health

import (
	"net/http"
	"time"

	"github.com/m04kA/SMC-HotelDashboard/internal/api/handlers"
)

// Response HTTP response model
type Response struct {
	Status      string     `json:"status"`
	RoomsLoaded bool       `json:"roomsLoaded"`
	RefreshedAt *time.Time `json:"refreshedAt,omitempty"`
}

type Handler struct {
	service DashboardService
}

func NewHandler(service DashboardService) *Handler {
	return &Handler{service: service}
}

// Handle GET /healthz
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	resp := Response{Status: "ok"}
	if refreshedAt, ok := h.service.LastRefreshed(); ok {
		resp.RoomsLoaded = true
		resp.RefreshedAt = &refreshedAt
	}
	handlers.RespondJSON(w, http.StatusOK, resp)
}
