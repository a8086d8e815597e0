package get_company_rooms

import (
	"github.com/m04kA/SMC-HotelDashboard/internal/service/shaxmatka"
)

// MsgNoBookedRooms показывается, когда за период нет ни одного занятого номера
const MsgNoBookedRooms = "Berilgan sanalarda bronlangan xona topilmadi yoki server bo‘sh ro‘yxat qaytardi."

// CompanyRoomsResponse HTTP response model
type CompanyRoomsResponse struct {
	CheckIn   string                   `json:"checkIn"`
	CheckOut  string                   `json:"checkOut"`
	Companies []shaxmatka.CompanyRooms `json:"companies"`
	Message   string                   `json:"message,omitempty"`
}

func NewCompanyRoomsResponse(checkIn, checkOut string, companies []shaxmatka.CompanyRooms) *CompanyRoomsResponse {
	resp := &CompanyRoomsResponse{
		CheckIn:   checkIn,
		CheckOut:  checkOut,
		Companies: companies,
	}
	if len(companies) == 0 {
		resp.Companies = []shaxmatka.CompanyRooms{}
		resp.Message = MsgNoBookedRooms
	}
	return resp
}
