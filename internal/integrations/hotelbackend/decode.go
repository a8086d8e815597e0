package hotelbackend

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
)

// decodeList разбирает список, пришедший голым массивом или объектом с массивом под одним из listKeys
func decodeList[T any](body []byte) ([]T, error) {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 {
		return nil, fmt.Errorf("%w: empty body", ErrInvalidResponse)
	}

	raw := json.RawMessage(trimmed)
	if trimmed[0] == '{' {
		var wrapper map[string]json.RawMessage
		if err := json.Unmarshal(trimmed, &wrapper); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidResponse, err)
		}

		raw = nil
		for _, key := range listKeys {
			candidate := bytes.TrimSpace(wrapper[key])
			if len(candidate) > 0 && candidate[0] == '[' {
				raw = candidate
				break
			}
		}
		if raw == nil {
			return nil, fmt.Errorf("%w: object without a list field", ErrInvalidResponse)
		}
	}

	if raw[0] != '[' {
		return nil, fmt.Errorf("%w: expected a list, got %.32s", ErrInvalidResponse, string(raw))
	}

	items := make([]T, 0)
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidResponse, err)
	}
	return items, nil
}

// decodeObject разбирает JSON объект в dst
func decodeObject(body []byte, dst interface{}) error {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return fmt.Errorf("%w: expected an object", ErrInvalidResponse)
	}
	if err := json.Unmarshal(trimmed, dst); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidResponse, err)
	}
	return nil
}

// decodeMessage достает поле message из ответа на мутацию.
// Мутация уже выполнена, поэтому неразборчивое тело дает пустое сообщение, а не ошибку.
func decodeMessage(body []byte) string {
	var resp messageResponse
	if err := json.Unmarshal(bytes.TrimSpace(body), &resp); err != nil {
		return ""
	}
	return strings.TrimSpace(resp.Message)
}

// serverMessage текст ошибки для пользователя: message, затем error, затем тело как есть
func serverMessage(statusCode int, body []byte) string {
	var resp errorResponse
	if err := json.Unmarshal(body, &resp); err == nil {
		if msg := strings.TrimSpace(resp.Message); msg != "" {
			return msg
		}
		if msg := strings.TrimSpace(resp.Error); msg != "" {
			return msg
		}
	}

	if raw := strings.TrimSpace(string(body)); raw != "" && raw != "{}" {
		return raw
	}
	return http.StatusText(statusCode)
}
