package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingDateRange возвращается, когда не указана дата заезда или выезда
	ErrMissingDateRange = errors.New("checkIn and checkOut are required")

	// ErrInvalidDateRange возвращается, когда дата выезда раньше даты заезда
	ErrInvalidDateRange = errors.New("checkOut is before checkIn")
)

// DateRange период проживания, обе границы включительно
type DateRange struct {
	CheckIn  Date
	CheckOut Date
}

// ParseDateRange разбирает период из строк формы.
// Пустая граница дает ErrMissingDateRange, неразборчивая дата ErrInvalidDate.
func ParseDateRange(checkIn, checkOut string) (DateRange, error) {
	in, err := ParseDate(checkIn)
	if errors.Is(err, ErrEmptyDate) {
		return DateRange{}, ErrMissingDateRange
	}
	if err != nil {
		return DateRange{}, fmt.Errorf("checkIn: %w", err)
	}

	out, err := ParseDate(checkOut)
	if errors.Is(err, ErrEmptyDate) {
		return DateRange{}, ErrMissingDateRange
	}
	if err != nil {
		return DateRange{}, fmt.Errorf("checkOut: %w", err)
	}

	if out.Before(in) {
		return DateRange{}, fmt.Errorf("%w: %s > %s", ErrInvalidDateRange, in, out)
	}

	return DateRange{CheckIn: in, CheckOut: out}, nil
}

// Days количество дней в периоде с учетом обеих границ
func (r DateRange) Days() int {
	return int(r.CheckOut.Time().Sub(r.CheckIn.Time()).Hours()/24) + 1
}
