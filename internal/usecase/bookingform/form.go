package bookingform

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/nyaruka/phonenumbers"

	"github.com/m04kA/SMC-HotelDashboard/internal/domain"
)

// ErrInvalidInput возвращается, когда форма брони заполнена некорректно
var ErrInvalidInput = errors.New("booking form: invalid input")

// DefaultPhoneRegion регион для номеров без кода страны
const DefaultPhoneRegion = "UZ"

// Form поля формы брони, как их ввел сотрудник
type Form struct {
	GuestsCount string
	CheckIn     string
	CheckOut    string
	CompanyName string
	PhoneNumber string
}

// Parser проверяет форму брони и приводит её к domain.BookingRequest
type Parser struct {
	region    string
	normalize bool
}

// NewParser создает парсер формы. region это регион ISO 3166-1 для номеров без "+".
// Если normalize выключен, телефон уходит в бэкенд ровно так, как его ввели (без пробелов по краям):
// бэкенд ищет бронь для отмены по точному совпадению номера.
func NewParser(region string, normalize bool) *Parser {
	region = strings.ToUpper(strings.TrimSpace(region))
	if region == "" {
		region = DefaultPhoneRegion
	}
	return &Parser{region: region, normalize: normalize}
}

// Parse проверяет, что все поля заполнены, количество гостей положительное,
// даты в формате YYYY-MM-DD и выезд не раньше заезда. С включенной нормализацией телефон приводится к E.164.
func (p *Parser) Parse(form Form) (domain.BookingRequest, error) {
	guests := strings.TrimSpace(form.GuestsCount)
	company := strings.TrimSpace(form.CompanyName)
	phone := strings.TrimSpace(form.PhoneNumber)

	if guests == "" || company == "" || phone == "" ||
		strings.TrimSpace(form.CheckIn) == "" || strings.TrimSpace(form.CheckOut) == "" {
		return domain.BookingRequest{}, fmt.Errorf("%w: all fields are required", ErrInvalidInput)
	}

	count, err := strconv.Atoi(guests)
	if err != nil || count <= 0 {
		return domain.BookingRequest{}, fmt.Errorf("%w: guestsCount must be a positive integer, got %q", ErrInvalidInput, guests)
	}

	period, err := domain.ParseDateRange(form.CheckIn, form.CheckOut)
	if err != nil {
		return domain.BookingRequest{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if p.normalize {
		if phone, err = p.NormalizePhone(phone); err != nil {
			return domain.BookingRequest{}, err
		}
	}

	return domain.BookingRequest{
		GuestsCount: count,
		CheckIn:     period.CheckIn,
		CheckOut:    period.CheckOut,
		CompanyName: company,
		PhoneNumber: phone,
	}, nil
}

// NormalizePhone приводит номер телефона к E.164 ("+998901234567")
func (p *Parser) NormalizePhone(raw string) (string, error) {
	num, err := phonenumbers.Parse(raw, p.region)
	if err != nil {
		return "", fmt.Errorf("%w: phoneNumber %q: %v", ErrInvalidInput, raw, err)
	}
	if !phonenumbers.IsValidNumber(num) {
		return "", fmt.Errorf("%w: phoneNumber %q is not a valid number", ErrInvalidInput, raw)
	}
	return phonenumbers.Format(num, phonenumbers.E164), nil
}
