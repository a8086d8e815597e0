package domain

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
)

// Бэкенд в разных ревизиях присылает одни и те же поля то строкой, то числом.
// Хелперы ниже приводят такие значения к одному типу.

func isNull(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null"))
}

// flexString читает строку или число как строку
func flexString(raw json.RawMessage) string {
	if isNull(raw) {
		return ""
	}

	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return strings.TrimSpace(s)
	}

	var n json.Number
	if err := json.Unmarshal(raw, &n); err == nil {
		return n.String()
	}

	return ""
}

// flexInt читает целое число, записанное числом или строкой
func flexInt(raw json.RawMessage) (int, bool) {
	s := flexString(raw)
	if s == "" {
		return 0, false
	}

	if n, err := strconv.Atoi(s); err == nil {
		return n, true
	}

	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return int(f), true
}

// flexFloat читает дробное число, записанное числом или строкой (допускается суффикс %)
func flexFloat(raw json.RawMessage) (float64, bool) {
	s := strings.TrimSuffix(flexString(raw), "%")
	if s == "" {
		return 0, false
	}

	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

// firstNonEmpty возвращает первое непустое строковое значение по списку ключей
func firstNonEmpty(fields map[string]json.RawMessage, keys ...string) string {
	for _, key := range keys {
		if v := flexString(fields[key]); v != "" {
			return v
		}
	}
	return ""
}
