package cancel_booking

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-HotelDashboard/internal/api/handlers"
	usecase "github.com/m04kA/SMC-HotelDashboard/internal/usecase/cancel_booking"
)

type Handler struct {
	useCase UseCase
	logger  Logger
}

func NewHandler(useCase UseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle DELETE /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req BookingFormRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("DELETE /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, handlers.MsgInvalidBody)
		return
	}

	resp, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest())
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidInput) {
			h.logger.Warn("DELETE /bookings - Invalid form: %v", err)
			handlers.RespondBadRequest(w, handlers.MsgInvalidForm)
			return
		}
		status := handlers.RespondBackendError(w, err)
		h.logger.Error("DELETE /bookings - Failed to cancel booking: status=%d, company=%q, error=%v",
			status, req.CompanyName, err)
		return
	}

	h.logger.Info("DELETE /bookings - Booking cancelled: company=%q, guests=%d, %s..%s, refreshed=%t",
		resp.Booking.CompanyName, resp.Booking.GuestsCount, resp.Booking.CheckIn, resp.Booking.CheckOut, resp.Refreshed)
	handlers.RespondJSON(w, http.StatusOK, FromUseCase(resp))
}
