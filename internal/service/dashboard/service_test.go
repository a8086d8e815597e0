package dashboard

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-HotelDashboard/internal/domain"
	"github.com/m04kA/SMC-HotelDashboard/pkg/logger"
	"github.com/m04kA/SMC-HotelDashboard/pkg/metrics"
)

type fakeBackend struct {
	mu sync.Mutex

	rooms    []domain.Room
	listErr  error
	free     []domain.RoomVacancy
	booked   []domain.Room
	otherErr error

	listCalls   int
	freeCalls   int
	bookedCalls int
	lastPeriod  domain.DateRange
}

func (f *fakeBackend) ListRooms(_ context.Context) ([]domain.Room, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.listCalls++
	if f.listErr != nil {
		return nil, f.listErr
	}
	return domain.CloneRooms(f.rooms), nil
}

func (f *fakeBackend) FreeRooms(_ context.Context, period domain.DateRange) ([]domain.RoomVacancy, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.freeCalls++
	f.lastPeriod = period
	if f.otherErr != nil {
		return nil, f.otherErr
	}
	return append([]domain.RoomVacancy(nil), f.free...), nil
}

func (f *fakeBackend) BookedRooms(_ context.Context, period domain.DateRange) ([]domain.Room, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.bookedCalls++
	f.lastPeriod = period
	if f.otherErr != nil {
		return nil, f.otherErr
	}
	return domain.CloneRooms(f.booked), nil
}

type refreshRecorder struct {
	mu       sync.Mutex
	outcomes []string
}

func (r *refreshRecorder) ObserveRefresh(outcome string, _ int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.outcomes = append(r.outcomes, outcome)
}

func date(t *testing.T, s string) domain.Date {
	t.Helper()
	d, err := domain.ParseDate(s)
	require.NoError(t, err)
	return d
}

func stay(t *testing.T, name, company, from, to string) domain.GuestStay {
	t.Helper()
	return domain.GuestStay{Name: name, CompanyName: company, From: date(t, from), To: date(t, to)}
}

func numbers(rooms []domain.Room) []string {
	result := make([]string, len(rooms))
	for i, r := range rooms {
		result[i] = r.Number
	}
	return result
}

func TestService_Refresh(t *testing.T) {
	backend := &fakeBackend{rooms: []domain.Room{
		{Number: "10", Capacity: 2},
		{Number: "2", Capacity: 3},
		{Number: "A1", Capacity: 1},
	}}
	rec := &refreshRecorder{}
	fixed := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
	svc := NewService(backend, logger.NewNop(), WithMetrics(rec), WithClock(func() time.Time { return fixed }))

	_, ok := svc.LastRefreshed()
	assert.False(t, ok)
	assert.Empty(t, svc.Rooms())

	require.NoError(t, svc.Refresh(context.Background()))

	assert.Equal(t, []string{"A1", "2", "10"}, numbers(svc.Rooms()))
	assert.Equal(t, 6, svc.TotalCapacity())

	refreshed, ok := svc.LastRefreshed()
	assert.True(t, ok)
	assert.Equal(t, fixed, refreshed)
	assert.Equal(t, []string{metrics.RefreshApplied}, rec.outcomes)
}

func TestService_Refresh_FailureKeepsRooms(t *testing.T) {
	backend := &fakeBackend{rooms: []domain.Room{{Number: "1", Capacity: 2}}}
	rec := &refreshRecorder{}
	svc := NewService(backend, logger.NewNop(), WithMetrics(rec))

	require.NoError(t, svc.Refresh(context.Background()))

	backendErr := errors.New("connection refused")
	backend.listErr = backendErr

	err := svc.Refresh(context.Background())
	assert.ErrorIs(t, err, ErrBackend)
	assert.ErrorIs(t, err, backendErr)
	assert.Equal(t, []string{"1"}, numbers(svc.Rooms()))
	assert.Equal(t, []string{metrics.RefreshApplied, metrics.RefreshFailed}, rec.outcomes)
}

type listResult struct {
	rooms []domain.Room
	err   error
}

// gatedBackend отдает результат ListRooms только когда тест откроет соответствующий шлюз
type gatedBackend struct {
	fakeBackend
	started chan struct{}

	gateMu sync.Mutex
	calls  int
	gates  []chan listResult
}

func (g *gatedBackend) ListRooms(_ context.Context) ([]domain.Room, error) {
	g.gateMu.Lock()
	gate := g.gates[g.calls]
	g.calls++
	g.gateMu.Unlock()

	g.started <- struct{}{}
	res := <-gate
	return res.rooms, res.err
}

func TestService_Refresh_DropsStaleResult(t *testing.T) {
	backend := &gatedBackend{
		started: make(chan struct{}),
		gates:   []chan listResult{make(chan listResult, 1), make(chan listResult, 1)},
	}
	rec := &refreshRecorder{}
	svc := NewService(backend, logger.NewNop(), WithMetrics(rec))

	first := make(chan error, 1)
	go func() { first <- svc.Refresh(context.Background()) }()
	<-backend.started

	second := make(chan error, 1)
	go func() { second <- svc.Refresh(context.Background()) }()
	<-backend.started

	// Второй запрос отвечает раньше первого
	backend.gates[1] <- listResult{rooms: []domain.Room{{Number: "new", Capacity: 1}}}
	require.NoError(t, <-second)

	backend.gates[0] <- listResult{rooms: []domain.Room{{Number: "old", Capacity: 1}}}
	require.NoError(t, <-first)

	assert.Equal(t, []string{"new"}, numbers(svc.Rooms()))
	assert.Equal(t, []string{metrics.RefreshApplied, metrics.RefreshStale}, rec.outcomes)
}

func TestService_Rooms_ReturnsCopy(t *testing.T) {
	backend := &fakeBackend{rooms: []domain.Room{
		{Number: "1", Capacity: 2, Guests: []domain.GuestStay{stay(t, "Ali", "", "2024-03-01", "2024-03-02")}},
	}}
	svc := NewService(backend, logger.NewNop())
	require.NoError(t, svc.Refresh(context.Background()))

	rooms := svc.Rooms()
	rooms[0].Guests[0].Name = "changed"
	rooms[0].Number = "changed"

	room, err := svc.Room("1")
	require.NoError(t, err)
	assert.Equal(t, "Ali", room.Guests[0].Name)
}

func TestService_Room_NotFound(t *testing.T) {
	svc := NewService(&fakeBackend{}, logger.NewNop())

	_, err := svc.Room("404")
	assert.ErrorIs(t, err, ErrRoomNotFound)
}

func TestService_Grid(t *testing.T) {
	backend := &fakeBackend{rooms: []domain.Room{
		{Number: "2", Capacity: 4, Guests: []domain.GuestStay{
			stay(t, "Ali", "Acme", "2024-03-01", "2024-03-02"),
			stay(t, "Vali", "Acme", "2024-03-02", "2024-03-03"),
		}},
		{Number: "1", Capacity: 2},
	}}
	now := time.Date(2024, 2, 29, 23, 30, 0, 0, time.UTC)
	tashkent := time.FixedZone("UZT", 5*60*60)
	svc := NewService(backend, logger.NewNop(),
		WithClock(func() time.Time { return now }),
		WithLocation(tashkent),
		WithGridDays(3),
	)
	require.NoError(t, svc.Refresh(context.Background()))

	// 23:30 UTC это уже 1 марта в Ташкенте
	assert.Equal(t, "2024-03-01", svc.Today().String())

	grid, err := svc.Grid(domain.Date{}, 0)
	require.NoError(t, err)
	require.Len(t, grid.Days, 3)
	require.Len(t, grid.Rows, 2)

	assert.Equal(t, "1", grid.Rows[0].Number)
	row := grid.Rows[1]
	assert.Equal(t, 1, row.Cells[0].Occupied)
	assert.Equal(t, domain.TierKok, row.Cells[0].Tier)
	assert.Equal(t, 2, row.Cells[1].Occupied)
	assert.Equal(t, domain.TierSariq, row.Cells[1].Tier)
	assert.Equal(t, 1, row.Cells[2].Occupied)

	grid, err = svc.Grid(date(t, "2024-03-03"), 1)
	require.NoError(t, err)
	assert.Equal(t, "2024-03-03", grid.Start.String())
	assert.Len(t, grid.Days, 1)

	_, err = svc.Grid(domain.Date{}, domain.MaxGridDays+1)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestService_FreeRooms(t *testing.T) {
	backend := &fakeBackend{free: []domain.RoomVacancy{
		{Number: "10", Free: 1},
		{Number: "9", Free: 2},
	}}
	svc := NewService(backend, logger.NewNop())

	vacancies, err := svc.FreeRooms(context.Background(), "2024-03-01", "2024-03-05")
	require.NoError(t, err)
	assert.Equal(t, "9", vacancies[0].Number)
	assert.Equal(t, "10", vacancies[1].Number)
	assert.Equal(t, "2024-03-05", backend.lastPeriod.CheckOut.String())
}

func TestService_ValidationBeforeNetwork(t *testing.T) {
	tests := []struct {
		name     string
		checkIn  string
		checkOut string
	}{
		{name: "missing check-in", checkIn: "", checkOut: "2024-03-05"},
		{name: "missing check-out", checkIn: "2024-03-01", checkOut: " "},
		{name: "unparseable", checkIn: "01.03.2024", checkOut: "2024-03-05"},
		{name: "reversed", checkIn: "2024-03-05", checkOut: "2024-03-01"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			backend := &fakeBackend{}
			svc := NewService(backend, logger.NewNop())

			_, err := svc.FreeRooms(context.Background(), tt.checkIn, tt.checkOut)
			assert.ErrorIs(t, err, ErrInvalidInput)

			_, err = svc.CompanyRooms(context.Background(), tt.checkIn, tt.checkOut)
			assert.ErrorIs(t, err, ErrInvalidInput)

			assert.Zero(t, backend.freeCalls)
			assert.Zero(t, backend.bookedCalls)
		})
	}
}

func TestService_CompanyRooms(t *testing.T) {
	backend := &fakeBackend{booked: []domain.Room{
		{Number: "12", Capacity: 2, Guests: []domain.GuestStay{
			stay(t, "A", "Beta", "2024-03-01", "2024-03-02"),
			stay(t, "B", "Acme", "2024-03-01", "2024-03-02"),
			stay(t, "C", "Acme", "2024-03-01", "2024-03-02"),
		}},
		{Number: "3", Capacity: 2, Guests: []domain.GuestStay{
			stay(t, "D", "Acme", "2024-03-01", "2024-03-02"),
			stay(t, "E", "", "2024-03-01", "2024-03-02"),
		}},
	}}
	svc := NewService(backend, logger.NewNop())

	groups, err := svc.CompanyRooms(context.Background(), "2024-03-01", "2024-03-02")
	require.NoError(t, err)
	require.Len(t, groups, 2)
	assert.Equal(t, "Acme", groups[0].Company)
	assert.Equal(t, []string{"3", "12"}, groups[0].Rooms)
	assert.Equal(t, "Beta", groups[1].Company)
	assert.Equal(t, []string{"12"}, groups[1].Rooms)
}

func TestService_CompanyRooms_BackendError(t *testing.T) {
	backend := &fakeBackend{otherErr: errors.New("boom")}
	svc := NewService(backend, logger.NewNop())

	_, err := svc.CompanyRooms(context.Background(), "2024-03-01", "2024-03-02")
	assert.ErrorIs(t, err, ErrBackend)
}
