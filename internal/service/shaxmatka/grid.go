package shaxmatka

import (
	"github.com/m04kA/SMC-HotelDashboard/internal/domain"
)

// Row строка шахматки: номер и его ячейки по дням
type Row struct {
	Number   string `json:"number"`
	Capacity int    `json:"capacity"`
	Cells    []Cell `json:"cells"`
}

// Grid шахматка: колонки-дни и строки-номера
type Grid struct {
	Start domain.Date `json:"start"`
	Days  []Day       `json:"days"`
	Rows  []Row       `json:"rows"`
}

// BuildGrid строит шахматку на numberOfDays дней начиная со start.
// Номера упорядочиваются по номеру, ячейка считается для каждой пары (номер, день).
func BuildGrid(rooms []domain.Room, start domain.Date, numberOfDays int) (*Grid, error) {
	days, err := GenerateDays(start, numberOfDays)
	if err != nil {
		return nil, err
	}

	sorted := SortRoomsByNumber(rooms)
	rows := make([]Row, len(sorted))
	for i, room := range sorted {
		cells := make([]Cell, len(days))
		for j, day := range days {
			cells[j] = OccupancyForCell(room, day.Date)
		}
		rows[i] = Row{
			Number:   room.Number,
			Capacity: room.Capacity,
			Cells:    cells,
		}
	}

	return &Grid{
		Start: start,
		Days:  days,
		Rows:  rows,
	}, nil
}

// TierCounts сколько ячеек шахматки попало в каждую категорию
func (g *Grid) TierCounts() map[domain.Tier]int {
	counts := make(map[domain.Tier]int, len(domain.Tiers))
	for _, tier := range domain.Tiers {
		counts[tier] = 0
	}
	for _, row := range g.Rows {
		for _, cell := range row.Cells {
			counts[cell.Tier]++
		}
	}
	return counts
}
