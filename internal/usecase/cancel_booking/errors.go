package cancel_booking

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных данных формы, бэкенд при этом не вызывается
	ErrInvalidInput = errors.New("cancel_booking: invalid input data")

	// ErrBackend возвращается, когда бэкенд не ответил или отклонил отмену
	ErrBackend = errors.New("cancel_booking: hotel backend call failed")
)
