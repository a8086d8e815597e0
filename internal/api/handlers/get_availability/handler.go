package get_availability

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-HotelDashboard/internal/api/handlers"
	"github.com/m04kA/SMC-HotelDashboard/internal/usecase/get_home_summary"
)

type Handler struct {
	useCase SummaryUseCase
	logger  Logger
}

func NewHandler(useCase SummaryUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/availability?checkIn=YYYY-MM-DD&checkOut=YYYY-MM-DD
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	checkIn := handlers.QueryString(r, "checkIn")
	checkOut := handlers.QueryString(r, "checkOut")

	resp, err := h.useCase.Availability(r.Context(), checkIn, checkOut)
	if err != nil {
		if errors.Is(err, get_home_summary.ErrInvalidInput) {
			h.logger.Warn("GET /availability - Invalid period: %v", err)
			handlers.RespondBadRequest(w, handlers.DateRangeMessage(err))
			return
		}
		status := handlers.RespondBackendError(w, err)
		h.logger.Error("GET /availability - Failed to get availability: status=%d, error=%v", status, err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromUseCase(resp))
}
