package cancel_booking

import (
	"context"

	usecase "github.com/m04kA/SMC-HotelDashboard/internal/usecase/cancel_booking"
)

type UseCase interface {
	Execute(ctx context.Context, req *usecase.Request) (*usecase.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
