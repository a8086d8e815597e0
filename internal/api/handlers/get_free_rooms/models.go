package get_free_rooms

import (
	"github.com/m04kA/SMC-HotelDashboard/internal/domain"
)

// FreeRoomsResponse HTTP response model
type FreeRoomsResponse struct {
	CheckIn   string               `json:"checkIn"`
	CheckOut  string               `json:"checkOut"`
	Rooms     []domain.RoomVacancy `json:"rooms"`
	TotalFree int                  `json:"totalFree"`
}

func NewFreeRoomsResponse(checkIn, checkOut string, rooms []domain.RoomVacancy) *FreeRoomsResponse {
	resp := &FreeRoomsResponse{
		CheckIn:  checkIn,
		CheckOut: checkOut,
		Rooms:    rooms,
	}
	if resp.Rooms == nil {
		resp.Rooms = []domain.RoomVacancy{}
	}
	for _, room := range rooms {
		resp.TotalFree += room.Free
	}
	return resp
}
