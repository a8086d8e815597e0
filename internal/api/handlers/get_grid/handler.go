package get_grid

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

// Handle GET /api/v1/grid?start=YYYY-MM-DD&days=N
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	start, err := handlers.QueryDate(r, "start")
	if err != nil {
		h.logger.Warn("GET /grid - Invalid start: %v", err)
		handlers.RespondBadRequest(w, handlers.MsgInvalidStart)
		return
	}

	days, err := handlers.QueryInt(r, "days", 0)
	if err != nil || days < 0 {
		h.logger.Warn("GET /grid - Invalid days: days=%d, error=%v", days, err)
		handlers.RespondBadRequest(w, handlers.MsgInvalidDays)
		return
	}

	grid, err := h.service.Grid(start, days)
	if err != nil {
		if errors.Is(err, dashboard.ErrInvalidInput) {
			h.logger.Warn("GET /grid - Invalid input: %v", err)
			handlers.RespondBadRequest(w, handlers.MsgInvalidDays)
			return
		}
		h.logger.Error("GET /grid - Failed to build grid: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	refreshedAt, refreshed := h.service.LastRefreshed()
	handlers.RespondJSON(w, http.StatusOK, FromGrid(grid, refreshedAt, refreshed))
}
