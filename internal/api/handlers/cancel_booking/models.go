package cancel_booking

import (
	"strings"

	"github.com/m04kA/SMC-HotelDashboard/internal/api/handlers"
	"github.com/m04kA/SMC-HotelDashboard/internal/domain"
	usecase "github.com/m04kA/SMC-HotelDashboard/internal/usecase/cancel_booking"
)

// BookingFormRequest HTTP request model.
// guestsCount принимается и числом, и строкой, как его прислала форма.
type BookingFormRequest struct {
	GuestsCount handlers.FormValue `json:"guestsCount"`
	CheckIn     string             `json:"checkIn"`
	CheckOut    string             `json:"checkOut"`
	CompanyName string             `json:"companyName"`
	PhoneNumber string             `json:"phoneNumber"`
}

// ToUseCaseRequest конвертирует HTTP request в модель use case
func (r *BookingFormRequest) ToUseCaseRequest() *usecase.Request {
	return &usecase.Request{
		GuestsCount: strings.TrimSpace(string(r.GuestsCount)),
		CheckIn:     r.CheckIn,
		CheckOut:    r.CheckOut,
		CompanyName: r.CompanyName,
		PhoneNumber: r.PhoneNumber,
	}
}

// BookingResponse HTTP response model
type BookingResponse struct {
	Message   string                `json:"message"`
	Booking   domain.BookingRequest `json:"booking"`
	Refreshed bool                  `json:"refreshed"` // false: бэкенд принял запрос, но список номеров не обновился
}

func FromUseCase(resp *usecase.Response) *BookingResponse {
	return &BookingResponse{
		Message:   resp.Message,
		Booking:   resp.Booking,
		Refreshed: resp.Refreshed,
	}
}
