package domain

import "time"

// BookingAction действие с бронью, выполненное через дашборд
type BookingAction string

const (
	ActionRegister BookingAction = "register"
	ActionCancel   BookingAction = "cancel"
)

// IsValid проверяет, что действие известно
func (a BookingAction) IsValid() bool {
	return a == ActionRegister || a == ActionCancel
}

// BookingRequest данные формы брони.
// Одна и та же форма используется и для регистрации, и для отмены:
// бэкенд находит отменяемые проживания по совпадению полей.
type BookingRequest struct {
	GuestsCount int    `json:"guestsCount"`
	CheckIn     Date   `json:"checkIn"`
	CheckOut    Date   `json:"checkOut"`
	CompanyName string `json:"companyName"`
	PhoneNumber string `json:"phoneNumber"`
}

// JournalEntry запись журнала о мутации, отправленной дашбордом в бэкенд
type JournalEntry struct {
	ID          int64
	Action      BookingAction
	GuestsCount int
	CheckIn     Date
	CheckOut    Date
	CompanyName string
	PhoneNumber string
	Succeeded   bool
	Message     string
	RequestID   string
	CreatedAt   time.Time
}

// NewJournalEntry создает запись журнала по форме брони
func NewJournalEntry(action BookingAction, req BookingRequest) *JournalEntry {
	return &JournalEntry{
		Action:      action,
		GuestsCount: req.GuestsCount,
		CheckIn:     req.CheckIn,
		CheckOut:    req.CheckOut,
		CompanyName: req.CompanyName,
		PhoneNumber: req.PhoneNumber,
	}
}

// JournalFilter фильтр выборки журнала
type JournalFilter struct {
	Action      *BookingAction // Только указанное действие (опционально)
	CompanyName *string        // Только указанная организация (опционально)
	Limit       uint64         // 0 = DefaultJournalLimit
}

const (
	DefaultJournalLimit = 50
	MaxJournalLimit     = 500
)
