package register_booking

import "github.com/m04kA/SMC-HotelDashboard/internal/domain"

// DefaultMessage сообщение об успехе, если бэкенд не прислал своего
const DefaultMessage = "✅ Bron qilish muvaffaqiyatli bajarildi."

// Request данные формы регистрации, как их ввел сотрудник
type Request struct {
	GuestsCount string
	CheckIn     string
	CheckOut    string
	CompanyName string
	PhoneNumber string
}

// Response результат регистрации
type Response struct {
	Message   string                // Сообщение бэкенда или DefaultMessage
	Booking   domain.BookingRequest // Отправленные в бэкенд данные (телефон как введен или в E.164)
	Refreshed bool                  // Удалось ли перезагрузить список номеров
}
