package list_rooms

import (
	"time"

	"github.com/m04kA/SMC-HotelDashboard/internal/domain"
)

// RoomResponse номер без списка гостей
type RoomResponse struct {
	Number      string `json:"number"`
	Capacity    int    `json:"capacity"`
	GuestsCount int    `json:"guestsCount"` // Сколько проживаний известно по номеру
}

// RoomsResponse HTTP response model
type RoomsResponse struct {
	Rooms         []RoomResponse `json:"rooms"`
	TotalCapacity int            `json:"totalCapacity"`
	RefreshedAt   *time.Time     `json:"refreshedAt,omitempty"`
}

func FromRooms(rooms []domain.Room, refreshedAt time.Time, refreshed bool) *RoomsResponse {
	resp := &RoomsResponse{
		Rooms:         make([]RoomResponse, 0, len(rooms)),
		TotalCapacity: domain.TotalCapacity(rooms),
	}
	for _, room := range rooms {
		resp.Rooms = append(resp.Rooms, RoomResponse{
			Number:      room.Number,
			Capacity:    room.Capacity,
			GuestsCount: len(room.Guests),
		})
	}
	if refreshed {
		resp.RefreshedAt = &refreshedAt
	}
	return resp
}
