package get_monthly_stats

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-HotelDashboard/internal/api/handlers"
	"github.com/m04kA/SMC-HotelDashboard/internal/usecase/get_home_summary"
)

const msgInvalidMonth = "Yil yoki oy noto‘g‘ri."

type Handler struct {
	useCase SummaryUseCase
	clock   Clock
	logger  Logger
}

func NewHandler(useCase SummaryUseCase, clock Clock, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		clock:   clock,
		logger:  logger,
	}
}

// Handle GET /api/v1/stats/monthly?year=YYYY&month=M
// Без параметров берется текущий месяц.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	today := h.clock.Today()

	year, err := handlers.QueryInt(r, "year", today.Year())
	if err != nil {
		h.logger.Warn("GET /stats/monthly - Invalid year: %v", err)
		handlers.RespondBadRequest(w, msgInvalidMonth)
		return
	}

	month, err := handlers.QueryInt(r, "month", int(today.Month()))
	if err != nil {
		h.logger.Warn("GET /stats/monthly - Invalid month: %v", err)
		handlers.RespondBadRequest(w, msgInvalidMonth)
		return
	}

	resp, err := h.useCase.MonthlyComparison(r.Context(), year, month)
	if err != nil {
		if errors.Is(err, get_home_summary.ErrInvalidInput) {
			h.logger.Warn("GET /stats/monthly - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidMonth)
			return
		}
		status := handlers.RespondBackendError(w, err)
		h.logger.Error("GET /stats/monthly - Failed to get monthly stats: status=%d, error=%v", status, err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromUseCase(resp))
}
