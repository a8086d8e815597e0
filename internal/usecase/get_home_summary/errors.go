package get_home_summary

import "errors"

var (
	// ErrInvalidInput возвращается при некорректном периоде или месяце
	ErrInvalidInput = errors.New("get_home_summary: invalid input data")

	// ErrBackend возвращается, когда бэкенд не ответил или ответил ошибкой
	ErrBackend = errors.New("get_home_summary: hotel backend call failed")
)
