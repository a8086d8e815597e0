package export_grid

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/m04kA/SMC-HotelDashboard/internal/api/handlers"
	"github.com/m04kA/SMC-HotelDashboard/internal/service/dashboard"
	"github.com/m04kA/SMC-HotelDashboard/internal/service/export"
)

const contentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type Handler struct {
	service DashboardService
	export  Exporter
	logger  Logger
}

// NewHandler создает обработчик выгрузки. Если exporter nil, используется export.GridToXLSX.
func NewHandler(service DashboardService, exporter Exporter, logger Logger) *Handler {
	if exporter == nil {
		exporter = export.GridToXLSX
	}
	return &Handler{
		service: service,
		export:  exporter,
		logger:  logger,
	}
}

// Handle GET /api/v1/grid/export?start=YYYY-MM-DD&days=N
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	start, err := handlers.QueryDate(r, "start")
	if err != nil {
		h.logger.Warn("GET /grid/export - Invalid start: %v", err)
		handlers.RespondBadRequest(w, handlers.MsgInvalidStart)
		return
	}

	days, err := handlers.QueryInt(r, "days", 0)
	if err != nil || days < 0 {
		h.logger.Warn("GET /grid/export - Invalid days: days=%d, error=%v", days, err)
		handlers.RespondBadRequest(w, handlers.MsgInvalidDays)
		return
	}

	grid, err := h.service.Grid(start, days)
	if err != nil {
		if errors.Is(err, dashboard.ErrInvalidInput) {
			h.logger.Warn("GET /grid/export - Invalid input: %v", err)
			handlers.RespondBadRequest(w, handlers.MsgInvalidDays)
			return
		}
		h.logger.Error("GET /grid/export - Failed to build grid: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	data, err := h.export(grid)
	if err != nil {
		h.logger.Error("GET /grid/export - Failed to export grid: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	filename := fmt.Sprintf("shaxmatka_%s_%dd.xlsx", grid.Start, len(grid.Days))
	h.logger.Info("GET /grid/export - Exported grid: start=%s, days=%d, rooms=%d, bytes=%d",
		grid.Start, len(grid.Days), len(grid.Rows), len(data))
	handlers.RespondFile(w, contentTypeXLSX, filename, data)
}
