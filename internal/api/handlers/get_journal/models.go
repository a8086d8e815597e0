package get_journal

import (
	"time"

	"github.com/m04kA/SMC-HotelDashboard/internal/domain"
)

// JournalEntryResponse HTTP response model
type JournalEntryResponse struct {
	ID          int64                `json:"id"`
	Action      domain.BookingAction `json:"action"`
	GuestsCount int                  `json:"guestsCount"`
	CheckIn     domain.Date          `json:"checkIn"`
	CheckOut    domain.Date          `json:"checkOut"`
	CompanyName string               `json:"companyName"`
	PhoneNumber string               `json:"phoneNumber"`
	Succeeded   bool                 `json:"succeeded"`
	Message     string               `json:"message,omitempty"`
	RequestID   string               `json:"requestId,omitempty"`
	CreatedAt   time.Time            `json:"createdAt"`
}

func FromEntries(entries []*domain.JournalEntry) []JournalEntryResponse {
	result := make([]JournalEntryResponse, 0, len(entries))
	for _, e := range entries {
		result = append(result, JournalEntryResponse{
			ID:          e.ID,
			Action:      e.Action,
			GuestsCount: e.GuestsCount,
			CheckIn:     e.CheckIn,
			CheckOut:    e.CheckOut,
			CompanyName: e.CompanyName,
			PhoneNumber: e.PhoneNumber,
			Succeeded:   e.Succeeded,
			Message:     e.Message,
			RequestID:   e.RequestID,
			CreatedAt:   e.CreatedAt,
		})
	}
	return result
}
