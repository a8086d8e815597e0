package bookingflow

import "github.com/m04kA/SMC-HotelDashboard/internal/domain"

// Result итог мутации
type Result struct {
	Message   string                // Сообщение бэкенда, может быть пустым
	Booking   domain.BookingRequest // Отправленные в бэкенд данные
	Refreshed bool                  // Удалось ли перезагрузить список номеров
}
