package get_company_rooms

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

// Handle GET /api/v1/rooms/by-company?checkIn=YYYY-MM-DD&checkOut=YYYY-MM-DD
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	checkIn := handlers.QueryString(r, "checkIn")
	checkOut := handlers.QueryString(r, "checkOut")

	companies, err := h.service.CompanyRooms(r.Context(), checkIn, checkOut)
	if err != nil {
		if errors.Is(err, dashboard.ErrInvalidInput) {
			h.logger.Warn("GET /rooms/by-company - Invalid period: %v", err)
			handlers.RespondBadRequest(w, handlers.DateRangeMessage(err))
			return
		}
		status := handlers.RespondBackendError(w, err)
		h.logger.Error("GET /rooms/by-company - Failed to group rooms: status=%d, error=%v", status, err)
		return
	}

	h.logger.Info("GET /rooms/by-company - Companies: %s..%s, companies=%d", checkIn, checkOut, len(companies))
	handlers.RespondJSON(w, http.StatusOK, NewCompanyRoomsResponse(checkIn, checkOut, companies))
}
