package bookingflow

import "errors"

var (
	// ErrInvalidInput форма заполнена некорректно, бэкенд не вызывался
	ErrInvalidInput = errors.New("booking flow: invalid input data")

	// ErrBackend бэкенд не ответил или отклонил мутацию
	ErrBackend = errors.New("booking flow: hotel backend call failed")
)
