package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/m04kA/SMC-HotelDashboard/internal/integrations/hotelbackend"
)

// ErrorResponse тело ответа с ошибкой
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// RespondJSON отправляет JSON ответ
func RespondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if data != nil {
		_ = json.NewEncoder(w).Encode(data)
	}
}

// RespondError отправляет ошибку с указанным статусом
func RespondError(w http.ResponseWriter, status int, message string) {
	RespondJSON(w, status, ErrorResponse{Code: status, Message: message})
}

func RespondBadRequest(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusBadRequest, message)
}

func RespondNotFound(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusNotFound, message)
}

func RespondInternalError(w http.ResponseWriter) {
	RespondError(w, http.StatusInternalServerError, MsgInternalError)
}

// RespondBackendError переводит ошибку бэкенда гостиницы в HTTP ответ:
// сообщение сервера передается как есть (502), отсутствие ответа дает 503,
// неразборчивый ответ и ошибки подготовки запроса дают 500.
// Возвращает статус, с которым ответили.
func RespondBackendError(w http.ResponseWriter, err error) int {
	var serverErr *hotelbackend.ServerError
	switch {
	case errors.As(err, &serverErr):
		RespondError(w, http.StatusBadGateway, serverErr.Message)
		return http.StatusBadGateway
	case errors.Is(err, hotelbackend.ErrNoResponse):
		RespondError(w, http.StatusServiceUnavailable, MsgNoResponse)
		return http.StatusServiceUnavailable
	default:
		RespondInternalError(w)
		return http.StatusInternalServerError
	}
}

// RespondFile отправляет файл как вложение
func RespondFile(w http.ResponseWriter, contentType, filename string, data []byte) {
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.Header().Set("Content-Length", strconv.Itoa(len(data)))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}

// DecodeJSON декодирует тело запроса, неизвестные поля допускаются
func DecodeJSON(r *http.Request, dst interface{}) error {
	if r.Body == nil {
		return errors.New("empty request body")
	}
	defer r.Body.Close()

	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return fmt.Errorf("failed to decode JSON: %w", err)
	}
	return nil
}

// QueryInt читает целый параметр запроса. Отсутствующий параметр дает def.
func QueryInt(r *http.Request, name string, def int) (int, error) {
	raw := strings.TrimSpace(r.URL.Query().Get(name))
	if raw == "" {
		return def, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s=%q: %w", name, raw, err)
	}
	return v, nil
}

// QueryString читает строковый параметр запроса без пробелов по краям
func QueryString(r *http.Request, name string) string {
	return strings.TrimSpace(r.URL.Query().Get(name))
}
