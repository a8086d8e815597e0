package refresh_rooms

import "time"

// RefreshResponse HTTP response model
type RefreshResponse struct {
	RoomsLoaded int        `json:"roomsLoaded"`
	RefreshedAt *time.Time `json:"refreshedAt,omitempty"`
}
