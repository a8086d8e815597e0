package shaxmatka

import (
	"fmt"
	"strings"

	"github.com/m04kA/SMC-HotelDashboard/internal/domain"
)

// VacantTitle подсказка для пустой ячейки
const VacantTitle = "Bo‘sh"

// Cell загрузка номера за один день
type Cell struct {
	Date       domain.Date        `json:"date"`
	Occupants  []domain.GuestStay `json:"occupants"`
	Occupied   int                `json:"occupied"`
	Capacity   int                `json:"capacity"`
	Tier       domain.Tier        `json:"tier"`
	Title      string             `json:"title"`      // Имена гостей через запятую или VacantTitle
	CountLabel string             `json:"countLabel"` // "занято/вместимость", пусто для свободного дня
}

// OccupancyForCell считает, кто из гостей номера проживает в указанный день, и категорию загрузки.
// Входные данные не изменяются.
func OccupancyForCell(room domain.Room, date domain.Date) Cell {
	occupants := make([]domain.GuestStay, 0)
	for _, guest := range room.Guests {
		if guest.Covers(date) {
			occupants = append(occupants, guest)
		}
	}

	occupied := len(occupants)
	cell := Cell{
		Date:      date,
		Occupants: occupants,
		Occupied:  occupied,
		Capacity:  room.Capacity,
		Tier:      TierFor(occupied, room.Capacity),
		Title:     VacantTitle,
	}

	if occupied > 0 {
		names := make([]string, occupied)
		for i, guest := range occupants {
			names[i] = guest.Name
		}
		cell.Title = strings.Join(names, ", ")
		cell.CountLabel = fmt.Sprintf("%d/%d", occupied, room.Capacity)
	}

	return cell
}

// TierFor переводит отношение занятых мест к вместимости в цветовую категорию.
// Сравнение целочисленное: occupied*100 против порога*capacity, без деления.
// Номер с нулевой вместимостью пустой, пока в нем никого нет, и переполнен, если кто-то есть.
func TierFor(occupied, capacity int) domain.Tier {
	if capacity <= 0 {
		if occupied > 0 {
			return domain.TierQizil
		}
		return domain.TierVacant
	}

	percent := occupied * 100
	switch {
	case percent >= 100*capacity:
		return domain.TierQizil
	case percent >= 75*capacity:
		return domain.TierSabzi
	case percent >= 50*capacity:
		return domain.TierSariq
	case percent >= 25*capacity:
		return domain.TierKok
	default:
		return domain.TierVacant
	}
}
