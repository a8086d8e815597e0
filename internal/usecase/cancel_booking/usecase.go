package cancel_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-HotelDashboard/internal/domain"
	"github.com/m04kA/SMC-HotelDashboard/internal/usecase/bookingflow"
	"github.com/m04kA/SMC-HotelDashboard/internal/usecase/bookingform"
)

// UseCase use case для отмены проживаний
type UseCase struct {
	backend HotelBackend
	flow    *bookingflow.Flow
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	backend HotelBackend,
	journal Journal,
	rooms RoomsRefresher,
	parser *bookingform.Parser,
	logger Logger,
) *UseCase {
	return &UseCase{
		backend: backend,
		flow:    bookingflow.New(domain.ActionCancel, "CancelBooking", journal, rooms, parser, logger),
	}
}

// Execute выполняет use case.
// Ошибка формы возвращается до обращения к бэкенду, после успеха список номеров перезагружается.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	result, err := uc.flow.Run(ctx, bookingform.Form{
		GuestsCount: req.GuestsCount,
		CheckIn:     req.CheckIn,
		CheckOut:    req.CheckOut,
		CompanyName: req.CompanyName,
		PhoneNumber: req.PhoneNumber,
	}, uc.backend.CancelBooking)
	switch {
	case errors.Is(err, bookingflow.ErrInvalidInput):
		return nil, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	case err != nil:
		return nil, fmt.Errorf("%w: %w", ErrBackend, err)
	}

	message := result.Message
	if message == "" {
		message = DefaultMessage
	}

	return &Response{
		Message:   message,
		Booking:   result.Booking,
		Refreshed: result.Refreshed,
	}, nil
}
