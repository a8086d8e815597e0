package get_room_guests

import (
	"github.com/m04kA/SMC-HotelDashboard/internal/domain"
)

// RoomGuestsResponse HTTP response model
type RoomGuestsResponse struct {
	Number   string             `json:"number"`
	Capacity int                `json:"capacity"`
	Guests   []domain.GuestStay `json:"guests"`
}

func FromRoom(room domain.Room) *RoomGuestsResponse {
	guests := room.Guests
	if guests == nil {
		guests = []domain.GuestStay{}
	}
	return &RoomGuestsResponse{
		Number:   room.Number,
		Capacity: room.Capacity,
		Guests:   guests,
	}
}
