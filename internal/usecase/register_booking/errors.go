package register_booking

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных данных формы, бэкенд при этом не вызывается
	ErrInvalidInput = errors.New("register_booking: invalid input data")

	// ErrBackend возвращается, когда бэкенд не ответил или отклонил регистрацию
	ErrBackend = errors.New("register_booking: hotel backend call failed")
)
