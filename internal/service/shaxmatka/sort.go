package shaxmatka

import (
	"cmp"
	"errors"
	"math"
	"slices"
	"strconv"
	"strings"

	"github.com/m04kA/SMC-HotelDashboard/internal/domain"
)

// SortRoomsByNumber возвращает новый список номеров, упорядоченный по числу из цифр номера.
// "R2" < "R10", номера без цифр считаются нулем, равные ключи сохраняют исходный порядок.
func SortRoomsByNumber(rooms []domain.Room) []domain.Room {
	sorted := slices.Clone(rooms)
	slices.SortStableFunc(sorted, func(a, b domain.Room) int {
		return cmp.Compare(RoomNumberKey(a.Number), RoomNumberKey(b.Number))
	})
	return sorted
}

// SortNumbers упорядочивает идентификаторы номеров так же, как SortRoomsByNumber
func SortNumbers(numbers []string) []string {
	sorted := slices.Clone(numbers)
	slices.SortStableFunc(sorted, func(a, b string) int {
		if c := cmp.Compare(RoomNumberKey(a), RoomNumberKey(b)); c != 0 {
			return c
		}
		return strings.Compare(a, b)
	})
	return sorted
}

// RoomNumberKey ключ сортировки: все цифры номера, прочитанные как десятичное число
func RoomNumberKey(number string) int64 {
	digits := strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, number)
	if digits == "" {
		return 0
	}

	key, err := strconv.ParseInt(digits, 10, 64)
	if errors.Is(err, strconv.ErrRange) {
		return math.MaxInt64
	}
	if err != nil {
		return 0
	}
	return key
}
