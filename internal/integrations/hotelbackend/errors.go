package hotelbackend

import (
	"errors"
	"fmt"
)

var (
	// ErrNoResponse запрос ушел, но ответа нет (соединение, таймаут, DNS, отмена контекста)
	ErrNoResponse = errors.New("hotel backend: no response")

	// ErrRequestSetup запрос не удалось собрать
	ErrRequestSetup = errors.New("hotel backend: request setup failed")

	// ErrServer бэкенд ответил статусом не из 2xx, детали в *ServerError
	ErrServer = errors.New("hotel backend: server error")

	// ErrInvalidResponse ответ 2xx, но тело не удалось разобрать
	ErrInvalidResponse = errors.New("hotel backend: invalid response")
)

// ServerError ошибка, о которой сообщил сам бэкенд
type ServerError struct {
	StatusCode int
	Message    string
}

func (e *ServerError) Error() string {
	return fmt.Sprintf("hotel backend: status %d: %s", e.StatusCode, e.Message)
}

// Is позволяет проверять errors.Is(err, ErrServer)
func (e *ServerError) Is(target error) bool {
	return target == ErrServer
}
