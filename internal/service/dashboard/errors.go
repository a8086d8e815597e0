package dashboard

import "errors"

var (
	// ErrRoomNotFound возвращается, когда номера нет в загруженном списке
	ErrRoomNotFound = errors.New("room not found")

	// ErrInvalidInput возвращается при некорректных параметрах запроса
	ErrInvalidInput = errors.New("invalid input data")

	// ErrBackend возвращается, когда бэкенд гостиницы не ответил или ответил ошибкой
	ErrBackend = errors.New("hotel backend call failed")
)
