package shaxmatka

import (
	"errors"
	"fmt"

	"github.com/m04kA/SMC-HotelDashboard/internal/domain"
)

// ErrInvalidDayCount возвращается, когда запрошено неположительное количество дней
var ErrInvalidDayCount = errors.New("number of days must be positive")

// weekdayLabels сокращения дней недели, индекс 0 это воскресенье
var weekdayLabels = [7]string{"Yak", "Du", "Se", "Chor", "Pay", "Ju", "Sha"}

// Day колонка шахматки
type Day struct {
	Label string      `json:"label"` // Например "Du 05.02"
	Date  domain.Date `json:"date"`
}

// GenerateDays возвращает numberOfDays подряд идущих дней начиная со start включительно
func GenerateDays(start domain.Date, numberOfDays int) ([]Day, error) {
	if numberOfDays <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidDayCount, numberOfDays)
	}

	days := make([]Day, numberOfDays)
	for i := range days {
		date := start.AddDays(i)
		days[i] = Day{
			Label: DayLabel(date),
			Date:  date,
		}
	}

	return days, nil
}

// DayLabel подпись колонки: сокращение дня недели и дд.мм
func DayLabel(date domain.Date) string {
	weekday := weekdayLabels[int(date.Weekday())%len(weekdayLabels)]
	return fmt.Sprintf("%s %02d.%02d", weekday, date.Day(), int(date.Month()))
}
