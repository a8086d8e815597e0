package get_grid

import (
	"time"

	"github.com/m04kA/SMC-HotelDashboard/internal/domain"
	"github.com/m04kA/SMC-HotelDashboard/internal/service/shaxmatka"
)

// GridResponse HTTP response model
type GridResponse struct {
	Start       domain.Date         `json:"start"`
	Days        []shaxmatka.Day     `json:"days"`
	Rows        []shaxmatka.Row     `json:"rows"`
	TierCounts  map[domain.Tier]int `json:"tierCounts"`
	RefreshedAt *time.Time          `json:"refreshedAt,omitempty"` // Нет, если номера еще не загружались
}

func FromGrid(grid *shaxmatka.Grid, refreshedAt time.Time, refreshed bool) *GridResponse {
	resp := &GridResponse{
		Start:      grid.Start,
		Days:       grid.Days,
		Rows:       grid.Rows,
		TierCounts: grid.TierCounts(),
	}
	if resp.Rows == nil {
		resp.Rows = []shaxmatka.Row{}
	}
	if refreshed {
		resp.RefreshedAt = &refreshedAt
	}
	return resp
}
