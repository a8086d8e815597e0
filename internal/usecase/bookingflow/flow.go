package bookingflow

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-HotelDashboard/internal/domain"
	"github.com/m04kA/SMC-HotelDashboard/internal/integrations/hotelbackend"
	"github.com/m04kA/SMC-HotelDashboard/internal/usecase/bookingform"
	"github.com/m04kA/SMC-HotelDashboard/pkg/requestid"
)

// Flow общий порядок мутации брони: форма, бэкенд, журнал, перезагрузка номеров
type Flow struct {
	action  domain.BookingAction
	name    string
	journal Journal
	rooms   RoomsRefresher
	parser  *bookingform.Parser
	logger  Logger
}

// New создает Flow. name используется как префикс в логах
func New(
	action domain.BookingAction,
	name string,
	journal Journal,
	rooms RoomsRefresher,
	parser *bookingform.Parser,
	logger Logger,
) *Flow {
	return &Flow{
		action:  action,
		name:    name,
		journal: journal,
		rooms:   rooms,
		parser:  parser,
		logger:  logger,
	}
}

// Run проверяет форму и вызывает call.
// Ошибка формы возвращается до обращения к бэкенду. Попытка пишется в журнал и при успехе, и при ошибке.
// После успеха список номеров перезагружается; неудачная перезагрузка не отменяет результат.
func (f *Flow) Run(ctx context.Context, form bookingform.Form, call BackendCall) (*Result, error) {
	booking, err := f.parser.Parse(form)
	if err != nil {
		f.logger.Warn("%s: validation failed: %v", f.name, err)
		return nil, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	f.logger.Info("%s: guests=%d, %s..%s, company=%q",
		f.name, booking.GuestsCount, booking.CheckIn, booking.CheckOut, booking.CompanyName)

	message, backendErr := call(ctx, booking)
	f.record(ctx, booking, message, backendErr)

	if backendErr != nil {
		f.logger.Error("%s: backend rejected company=%q: %v", f.name, booking.CompanyName, backendErr)
		return nil, fmt.Errorf("%w: %w", ErrBackend, backendErr)
	}

	// Перезагрузка даже если клиент уже отключился
	refreshed := true
	if err := f.rooms.Refresh(context.WithoutCancel(ctx)); err != nil {
		f.logger.Warn("%s: %s succeeded, but rooms refresh failed: %v", f.name, f.action, err)
		refreshed = false
	}

	return &Result{
		Message:   message,
		Booking:   booking,
		Refreshed: refreshed,
	}, nil
}

func (f *Flow) record(ctx context.Context, booking domain.BookingRequest, message string, backendErr error) {
	entry := domain.NewJournalEntry(f.action, booking)
	entry.RequestID = requestid.FromContext(ctx)
	entry.Succeeded = backendErr == nil
	entry.Message = message

	var serverErr *hotelbackend.ServerError
	switch {
	case errors.As(backendErr, &serverErr):
		entry.Message = serverErr.Message
	case backendErr != nil:
		entry.Message = backendErr.Error()
	}

	if _, err := f.journal.Record(context.WithoutCancel(ctx), entry); err != nil {
		f.logger.Error("%s: failed to write journal: %v", f.name, err)
	}
}
