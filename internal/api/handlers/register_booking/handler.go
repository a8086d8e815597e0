package register_booking

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-HotelDashboard/internal/api/handlers"
	usecase "github.com/m04kA/SMC-HotelDashboard/internal/usecase/register_booking"
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

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req BookingFormRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, handlers.MsgInvalidBody)
		return
	}

	resp, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest())
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidInput) {
			h.logger.Warn("POST /bookings - Invalid form: %v", err)
			handlers.RespondBadRequest(w, handlers.MsgInvalidForm)
			return
		}
		status := handlers.RespondBackendError(w, err)
		h.logger.Error("POST /bookings - Failed to register booking: status=%d, company=%q, error=%v",
			status, req.CompanyName, err)
		return
	}

	h.logger.Info("POST /bookings - Booking registered: company=%q, guests=%d, %s..%s, refreshed=%t",
		resp.Booking.CompanyName, resp.Booking.GuestsCount, resp.Booking.CheckIn, resp.Booking.CheckOut, resp.Refreshed)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCase(resp))
}
