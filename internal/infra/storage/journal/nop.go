package journal

import (
	"context"

	"github.com/m04kA/SMC-HotelDashboard/internal/domain"
)

// NopRepository журнал без базы данных: записи не сохраняются, чтение возвращает ErrDisabled
type NopRepository struct{}

func NewNopRepository() *NopRepository {
	return &NopRepository{}
}

func (NopRepository) Record(_ context.Context, entry *domain.JournalEntry) (*domain.JournalEntry, error) {
	return entry, nil
}

func (NopRepository) List(context.Context, domain.JournalFilter) ([]*domain.JournalEntry, error) {
	return nil, ErrDisabled
}
