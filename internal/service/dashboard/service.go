package dashboard

import (
	"cmp"
	"context"
	"fmt"
	"slices"
	"sync"
	"sync/atomic"
	"time"

	"github.com/m04kA/SMC-HotelDashboard/internal/domain"
	"github.com/m04kA/SMC-HotelDashboard/internal/service/shaxmatka"
	"github.com/m04kA/SMC-HotelDashboard/pkg/metrics"
)

// Service состояние дашборда: последний загруженный список номеров.
// Ячейки шахматки не хранятся, а считаются заново при каждом чтении.
type Service struct {
	backend  HotelBackend
	logger   Logger
	metrics  Metrics
	now      func() time.Time
	location *time.Location
	gridDays int

	// lastGen выдает номера поколений обновлениям
	lastGen atomic.Uint64

	mu            sync.RWMutex
	rooms         []domain.Room // отсортированы по номеру, заменяются целиком
	appliedGen    uint64
	lastRefreshed time.Time
}

// Option настройка сервиса
type Option func(*Service)

// WithClock подменяет источник текущего времени
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		s.now = now
	}
}

// WithLocation зона, в которой считается "сегодня"
func WithLocation(loc *time.Location) Option {
	return func(s *Service) {
		if loc != nil {
			s.location = loc
		}
	}
}

// WithMetrics подключает учет обновлений
func WithMetrics(m Metrics) Option {
	return func(s *Service) {
		if m != nil {
			s.metrics = m
		}
	}
}

// WithGridDays количество дней шахматки по умолчанию
func WithGridDays(days int) Option {
	return func(s *Service) {
		if days > 0 {
			s.gridDays = days
		}
	}
}

// NewService создает новый экземпляр сервиса дашборда. Список номеров пуст до первого Refresh.
func NewService(backend HotelBackend, logger Logger, opts ...Option) *Service {
	s := &Service{
		backend:  backend,
		logger:   logger,
		metrics:  nopMetrics{},
		now:      time.Now,
		location: time.Local,
		gridDays: domain.DefaultGridDays,
		rooms:    []domain.Room{},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Refresh загружает список номеров заново.
// Результат применяется, только если он новее последнего примененного,
// иначе отбрасывается. При ошибке прежний список остается нетронутым.
func (s *Service) Refresh(ctx context.Context) error {
	gen := s.lastGen.Add(1)

	rooms, err := s.backend.ListRooms(ctx)
	if err != nil {
		s.metrics.ObserveRefresh(metrics.RefreshFailed, 0)
		s.logger.Error("Refresh: generation=%d failed: %v", gen, err)
		return fmt.Errorf("%w: %w", ErrBackend, err)
	}

	sorted := shaxmatka.SortRoomsByNumber(rooms)

	s.mu.Lock()
	if gen <= s.appliedGen {
		applied := s.appliedGen
		s.mu.Unlock()

		s.metrics.ObserveRefresh(metrics.RefreshStale, len(sorted))
		s.logger.Warn("Refresh: dropping stale generation=%d, already applied generation=%d", gen, applied)
		return nil
	}
	s.rooms = sorted
	s.appliedGen = gen
	s.lastRefreshed = s.now()
	s.mu.Unlock()

	s.metrics.ObserveRefresh(metrics.RefreshApplied, len(sorted))
	s.logger.Info("Refresh: generation=%d applied, rooms=%d", gen, len(sorted))
	return nil
}

// Rooms копия текущего списка номеров, упорядоченного по номеру
func (s *Service) Rooms() []domain.Room {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return domain.CloneRooms(s.rooms)
}

// Room номер с проживающими (окно "гости номера")
func (s *Service) Room(number string) (domain.Room, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, room := range s.rooms {
		if room.Number == number {
			return room.Clone(), nil
		}
	}
	return domain.Room{}, fmt.Errorf("%w: %s", ErrRoomNotFound, number)
}

// Grid строит шахматку по текущему списку номеров.
// Нулевая дата означает "сегодня", days <= 0 означает количество дней по умолчанию.
func (s *Service) Grid(start domain.Date, days int) (*shaxmatka.Grid, error) {
	if start.IsZero() {
		start = s.Today()
	}
	if days <= 0 {
		days = s.gridDays
	}
	if days > domain.MaxGridDays {
		return nil, fmt.Errorf("%w: days must not exceed %d, got %d", ErrInvalidInput, domain.MaxGridDays, days)
	}

	// Список заменяется целиком и не меняется на месте, поэтому достаточно взять ссылку
	s.mu.RLock()
	rooms := s.rooms
	s.mu.RUnlock()

	grid, err := shaxmatka.BuildGrid(rooms, start, days)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	return grid, nil
}

// Today текущая дата в зоне дашборда
func (s *Service) Today() domain.Date {
	return domain.DateOf(s.now().In(s.location))
}

// GridDays количество дней шахматки по умолчанию
func (s *Service) GridDays() int {
	return s.gridDays
}

// LastRefreshed время последнего примененного обновления, false если обновлений еще не было
func (s *Service) LastRefreshed() (time.Time, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lastRefreshed, !s.lastRefreshed.IsZero()
}

// TotalCapacity суммарная вместимость загруженных номеров
func (s *Service) TotalCapacity() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return domain.TotalCapacity(s.rooms)
}

// FreeRooms свободные места по номерам за период (окно "свободные номера").
// Период проверяется до обращения к бэкенду.
func (s *Service) FreeRooms(ctx context.Context, checkIn, checkOut string) ([]domain.RoomVacancy, error) {
	period, err := domain.ParseDateRange(checkIn, checkOut)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	vacancies, err := s.backend.FreeRooms(ctx, period)
	if err != nil {
		s.logger.Error("FreeRooms: %s..%s failed: %v", period.CheckIn, period.CheckOut, err)
		return nil, fmt.Errorf("%w: %w", ErrBackend, err)
	}

	slices.SortStableFunc(vacancies, func(a, b domain.RoomVacancy) int {
		return cmp.Compare(shaxmatka.RoomNumberKey(a.Number), shaxmatka.RoomNumberKey(b.Number))
	})
	return vacancies, nil
}

// CompanyRooms номера, занятые организациями за период (окно "по организациям").
// Период проверяется до обращения к бэкенду.
func (s *Service) CompanyRooms(ctx context.Context, checkIn, checkOut string) ([]shaxmatka.CompanyRooms, error) {
	period, err := domain.ParseDateRange(checkIn, checkOut)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	rooms, err := s.backend.BookedRooms(ctx, period)
	if err != nil {
		s.logger.Error("CompanyRooms: %s..%s failed: %v", period.CheckIn, period.CheckOut, err)
		return nil, fmt.Errorf("%w: %w", ErrBackend, err)
	}

	return shaxmatka.GroupByCompany(rooms), nil
}
