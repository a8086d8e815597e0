package hotelbackend

import "github.com/m04kA/SMC-HotelDashboard/internal/domain"

// messageResponse ответ бэкенда на мутации
type messageResponse struct {
	Message string `json:"message"`
}

// errorResponse тело ошибки бэкенда
type errorResponse struct {
	Message string `json:"message"`
	Error   string `json:"error"`
}

// bookingBody тело запросов /guests/register и /guests/deleteByDate
type bookingBody struct {
	GuestsCount int    `json:"guestsCount"`
	CheckIn     string `json:"checkIn"`
	CheckOut    string `json:"checkOut"`
	CompanyName string `json:"companyName"`
	PhoneNumber string `json:"phoneNumber"`
}

func newBookingBody(req domain.BookingRequest) bookingBody {
	return bookingBody{
		GuestsCount: req.GuestsCount,
		CheckIn:     req.CheckIn.String(),
		CheckOut:    req.CheckOut.String(),
		CompanyName: req.CompanyName,
		PhoneNumber: req.PhoneNumber,
	}
}

// Ключи, под которыми бэкенд может вернуть список вместо голого массива
var listKeys = []string{"rooms", "availableRoomsList", "details", "data"}

// Имена вызовов для метрик и логов
const (
	callListRooms         = "list_rooms"
	callAvailabilityStats = "availability_stats"
	callMonthlyStats      = "monthly_stats"
	callFreeRooms         = "free_rooms"
	callBookedRooms       = "booked_rooms"
	callRegisterBooking   = "register_booking"
	callCancelBooking     = "cancel_booking"
)

// Исходы вызова для метрик
const (
	outcomeOK              = "ok"
	outcomeNoResponse      = "no_response"
	outcomeRequestSetup    = "request_setup"
	outcomeServerError     = "server_error"
	outcomeInvalidResponse = "invalid_response"
)
