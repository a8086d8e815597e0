package handlers

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-HotelDashboard/internal/domain"
)

// Общие сообщения, которые видит сотрудник. Сообщения одного эндпоинта живут в его пакете.
const (
	MsgSelectDates   = "Iltimos, kirish va chiqish sanalarini tanlang."
	MsgInvalidForm   = "Iltimos, to‘g‘ri ma’lumotlarni kiriting."
	MsgInvalidBody   = "So‘rov tanasi noto‘g‘ri."
	MsgNoResponse    = "Xatolik yuz berdi. Server bilan bog‘lanib bo‘lmadi."
	MsgInternalError = "❌ Xatolik yuz berdi"
	MsgDatesReversed = "Chiqish sanasi kirish sanasidan oldin bo‘lishi mumkin emas."
	MsgInvalidDate   = "Sana noto‘g‘ri, YYYY-MM-DD formatida kiriting."
	MsgInvalidStart  = "Boshlanish sanasi noto‘g‘ri, YYYY-MM-DD formatida kiriting."
	MsgInvalidDays   = "Kunlar soni 1 dan 366 gacha bo‘lishi kerak."
)

// DateRangeMessage сообщение для ошибки периода заезда и выезда
func DateRangeMessage(err error) string {
	switch {
	case errors.Is(err, domain.ErrInvalidDateRange):
		return MsgDatesReversed
	case errors.Is(err, domain.ErrInvalidDate):
		return MsgInvalidDate
	default:
		return MsgSelectDates
	}
}

// QueryDate читает дату YYYY-MM-DD из параметра запроса. Отсутствующий параметр дает нулевую дату.
func QueryDate(r *http.Request, name string) (domain.Date, error) {
	raw := QueryString(r, name)
	if raw == "" {
		return domain.Date{}, nil
	}
	return domain.ParseDate(raw)
}
