package shaxmatka_page

import (
	"bytes"
	"embed"
	"errors"
	"html/template"
	"net/http"

	"github.com/m04kA/SMC-HotelDashboard/internal/api/handlers"
	"github.com/m04kA/SMC-HotelDashboard/internal/service/dashboard"
)

//go:embed templates/shaxmatka.html
var templatesFS embed.FS

var pageTemplate = template.Must(template.ParseFS(templatesFS, "templates/shaxmatka.html"))

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

// Handle GET /?start=YYYY-MM-DD&days=N
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	start, err := handlers.QueryDate(r, "start")
	if err != nil {
		h.logger.Warn("GET / - Invalid start: %v", err)
		http.Error(w, handlers.MsgInvalidStart, http.StatusBadRequest)
		return
	}

	days, err := handlers.QueryInt(r, "days", 0)
	if err != nil || days < 0 {
		h.logger.Warn("GET / - Invalid days: days=%d, error=%v", days, err)
		http.Error(w, handlers.MsgInvalidDays, http.StatusBadRequest)
		return
	}

	grid, err := h.service.Grid(start, days)
	if err != nil {
		if errors.Is(err, dashboard.ErrInvalidInput) {
			h.logger.Warn("GET / - Invalid input: %v", err)
			http.Error(w, handlers.MsgInvalidDays, http.StatusBadRequest)
			return
		}
		h.logger.Error("GET / - Failed to build grid: %v", err)
		http.Error(w, handlers.MsgInternalError, http.StatusInternalServerError)
		return
	}

	refreshedAt, refreshed := h.service.LastRefreshed()

	// Рендерим в буфер, чтобы при ошибке шаблона не отдать половину страницы
	var buf bytes.Buffer
	if err := pageTemplate.Execute(&buf, newPageData(grid, refreshedAt, refreshed)); err != nil {
		h.logger.Error("GET / - Failed to render page: %v", err)
		http.Error(w, handlers.MsgInternalError, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = buf.WriteTo(w)
}
