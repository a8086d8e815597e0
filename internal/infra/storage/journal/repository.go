package journal

import (
	"context"
	_ "embed"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-HotelDashboard/internal/domain"
	"github.com/m04kA/SMC-HotelDashboard/pkg/psqlbuilder"
)

//go:embed schema.sql
var schema string

const tableName = "booking_journal"

var columns = []string{
	"id",
	"action",
	"guests_count",
	"check_in",
	"check_out",
	"company_name",
	"phone_number",
	"succeeded",
	"message",
	"request_id",
	"created_at",
}

// Repository журнал мутаций, отправленных дашбордом в бэкенд гостиницы
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория журнала
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// EnsureSchema создает таблицу журнала, если её еще нет
func (r *Repository) EnsureSchema(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("%w: EnsureSchema - create table: %v", ErrExecQuery, err)
	}
	return nil
}

// Record сохраняет запись журнала и заполняет ID и CreatedAt
func (r *Repository) Record(ctx context.Context, entry *domain.JournalEntry) (*domain.JournalEntry, error) {
	if entry == nil || !entry.Action.IsValid() {
		return nil, fmt.Errorf("%w: Record - unknown action", ErrInvalidEntry)
	}

	query, args, err := psqlbuilder.Insert(tableName).
		Columns(
			"action",
			"guests_count",
			"check_in",
			"check_out",
			"company_name",
			"phone_number",
			"succeeded",
			"message",
			"request_id",
		).
		Values(
			string(entry.Action),
			entry.GuestsCount,
			entry.CheckIn.Time(),
			entry.CheckOut.Time(),
			entry.CompanyName,
			entry.PhoneNumber,
			entry.Succeeded,
			entry.Message,
			entry.RequestID,
		).
		Suffix("RETURNING id, created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Record - build insert query: %v", ErrBuildQuery, err)
	}

	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&entry.ID, &entry.CreatedAt); err != nil {
		return nil, fmt.Errorf("%w: Record - execute insert: %v", ErrExecQuery, err)
	}

	return entry, nil
}

// List возвращает записи журнала, новые сначала
func (r *Repository) List(ctx context.Context, filter domain.JournalFilter) ([]*domain.JournalEntry, error) {
	builder := psqlbuilder.Select(columns...).
		From(tableName).
		OrderBy("created_at DESC", "id DESC").
		Limit(normalizeLimit(filter.Limit))

	if filter.Action != nil {
		builder = builder.Where(squirrel.Eq{"action": string(*filter.Action)})
	}
	if filter.CompanyName != nil {
		builder = builder.Where(squirrel.Eq{"company_name": *filter.CompanyName})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute select: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	entries := make([]*domain.JournalEntry, 0)
	for rows.Next() {
		var (
			entry             domain.JournalEntry
			action            string
			checkIn, checkOut time.Time
		)

		err := rows.Scan(
			&entry.ID,
			&action,
			&entry.GuestsCount,
			&checkIn,
			&checkOut,
			&entry.CompanyName,
			&entry.PhoneNumber,
			&entry.Succeeded,
			&entry.Message,
			&entry.RequestID,
			&entry.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: List - scan row: %v", ErrScanRow, err)
		}

		entry.Action = domain.BookingAction(action)
		entry.CheckIn = domain.DateOf(checkIn)
		entry.CheckOut = domain.DateOf(checkOut)
		entries = append(entries, &entry)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - iterate rows: %v", ErrScanRow, err)
	}

	return entries, nil
}

func normalizeLimit(limit uint64) uint64 {
	switch {
	case limit == 0:
		return domain.DefaultJournalLimit
	case limit > domain.MaxJournalLimit:
		return domain.MaxJournalLimit
	default:
		return limit
	}
}
