package cancel_booking

import "github.com/m04kA/SMC-HotelDashboard/internal/domain"

// DefaultMessage сообщение об успехе, если бэкенд не прислал своего
const DefaultMessage = "✅ Bronlar bekor qilindi."

// Request данные формы отмены. Бэкенд удаляет проживания, совпадающие со всеми полями
type Request struct {
	GuestsCount string
	CheckIn     string
	CheckOut    string
	CompanyName string
	PhoneNumber string
}

// Response результат отмены
type Response struct {
	Message   string                // Сообщение бэкенда или DefaultMessage
	Booking   domain.BookingRequest // Данные, по которым искались проживания (телефон как введен или в E.164)
	Refreshed bool                  // Удалось ли перезагрузить список номеров
}
