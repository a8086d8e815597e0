package hotelbackend

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/m04kA/SMC-HotelDashboard/internal/domain"
	"github.com/m04kA/SMC-HotelDashboard/pkg/requestid"
)

// Client клиент для работы с бэкендом гостиницы.
// Запросы не повторяются: ошибка сразу возвращается вызывающему.
type Client struct {
	http    *resty.Client
	log     Logger
	metrics Metrics
}

// NewClient создает новый экземпляр клиента бэкенда гостиницы.
// metrics может быть nil.
func NewClient(baseURL string, timeout time.Duration, log Logger, metrics Metrics) *Client {
	if metrics == nil {
		metrics = nopMetrics{}
	}

	httpClient := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetRetryCount(0).
		SetHeader("Accept", "application/json")

	return &Client{
		http:    httpClient,
		log:     log,
		metrics: metrics,
	}
}

// ListRooms получает все номера с проживающими
func (c *Client) ListRooms(ctx context.Context) ([]domain.Room, error) {
	var rooms []domain.Room
	err := c.do(ctx, callListRooms, http.MethodGet, "/rooms/getRoom", nil, func(body []byte) (err error) {
		rooms, err = decodeList[domain.Room](body)
		return err
	})
	if err != nil {
		return nil, err
	}
	return rooms, nil
}

// AvailabilityStats получает сводку свободных мест за период
func (c *Client) AvailabilityStats(ctx context.Context, period domain.DateRange) (*domain.AvailabilityStats, error) {
	var stats domain.AvailabilityStats
	err := c.do(ctx, callAvailabilityStats, http.MethodGet, "/rooms/availableStat", withPeriod(period), func(body []byte) error {
		return decodeObject(body, &stats)
	})
	if err != nil {
		return nil, err
	}
	return &stats, nil
}

// MonthlyStats получает статистику загрузки за месяц
func (c *Client) MonthlyStats(ctx context.Context, year, month int) (*domain.MonthlyStats, error) {
	query := func(r *resty.Request) {
		r.SetQueryParams(map[string]string{
			"year":  strconv.Itoa(year),
			"month": strconv.Itoa(month),
		})
	}

	var stats domain.MonthlyStats
	err := c.do(ctx, callMonthlyStats, http.MethodGet, "/rooms/monthlyStat", query, func(body []byte) error {
		return decodeObject(body, &stats)
	})
	if err != nil {
		return nil, err
	}

	// Бэкенд отдает подпись месяца, номер и год берем из запроса
	if stats.Year == 0 {
		stats.Year = year
	}
	if stats.Month == 0 {
		stats.Month = month
	}
	return &stats, nil
}

// FreeRooms получает свободные места по номерам за период
func (c *Client) FreeRooms(ctx context.Context, period domain.DateRange) ([]domain.RoomVacancy, error) {
	var vacancies []domain.RoomVacancy
	err := c.do(ctx, callFreeRooms, http.MethodGet, "/rooms/freeRooms", withPeriod(period), func(body []byte) (err error) {
		vacancies, err = decodeList[domain.RoomVacancy](body)
		return err
	})
	if err != nil {
		return nil, err
	}
	return vacancies, nil
}

// BookedRooms получает номера с проживающими, пересекающимися с периодом
func (c *Client) BookedRooms(ctx context.Context, period domain.DateRange) ([]domain.Room, error) {
	var rooms []domain.Room
	err := c.do(ctx, callBookedRooms, http.MethodGet, "/rooms/getBookedRooms", withPeriod(period), func(body []byte) (err error) {
		rooms, err = decodeList[domain.Room](body)
		return err
	})
	if err != nil {
		return nil, err
	}
	return rooms, nil
}

// RegisterBooking регистрирует проживание и возвращает сообщение бэкенда (может быть пустым)
func (c *Client) RegisterBooking(ctx context.Context, req domain.BookingRequest) (string, error) {
	return c.mutate(ctx, callRegisterBooking, http.MethodPost, "/guests/register", req)
}

// CancelBooking удаляет проживания, совпадающие с формой, и возвращает сообщение бэкенда (может быть пустым)
func (c *Client) CancelBooking(ctx context.Context, req domain.BookingRequest) (string, error) {
	return c.mutate(ctx, callCancelBooking, http.MethodDelete, "/guests/deleteByDate", req)
}

func (c *Client) mutate(ctx context.Context, call, method, path string, req domain.BookingRequest) (string, error) {
	var message string
	err := c.do(ctx, call, method, path, func(r *resty.Request) {
		r.SetHeader("Content-Type", "application/json").SetBody(newBookingBody(req))
	}, func(body []byte) error {
		message = decodeMessage(body)
		return nil
	})
	if err != nil {
		return "", err
	}
	return message, nil
}

// do выполняет запрос и приводит ошибки к ErrNoResponse, ErrRequestSetup, *ServerError или ErrInvalidResponse
func (c *Client) do(ctx context.Context, call, method, path string, prepare func(*resty.Request), decode func([]byte) error) error {
	started := time.Now()

	req := c.http.R().SetContext(ctx)
	if id := requestid.FromContext(ctx); id != "" {
		req.SetHeader(requestid.Header, id)
	}
	if prepare != nil {
		prepare(req)
	}

	resp, err := req.Execute(method, path)
	if err != nil {
		err = classifyTransportError(err)
		c.metrics.ObserveBackendCall(call, outcomeOf(err), time.Since(started))
		c.log.Warn("hotel backend %s %s failed: %v", method, path, err)
		return err
	}

	body := resp.Body()
	if !resp.IsSuccess() {
		serverErr := &ServerError{
			StatusCode: resp.StatusCode(),
			Message:    serverMessage(resp.StatusCode(), body),
		}
		c.metrics.ObserveBackendCall(call, outcomeServerError, time.Since(started))
		c.log.Warn("hotel backend %s %s returned %d: %s", method, path, serverErr.StatusCode, serverErr.Message)
		return serverErr
	}

	if err := decode(body); err != nil {
		c.metrics.ObserveBackendCall(call, outcomeInvalidResponse, time.Since(started))
		c.log.Warn("hotel backend %s %s: %v", method, path, err)
		return err
	}

	c.metrics.ObserveBackendCall(call, outcomeOK, time.Since(started))
	c.log.Debug("hotel backend %s %s: %d in %s", method, path, resp.StatusCode(), time.Since(started))
	return nil
}

func classifyTransportError(err error) error {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%w: %w", ErrNoResponse, err)
	}

	var urlErr *url.Error
	if errors.As(err, &urlErr) && urlErr.Op != "parse" {
		return fmt.Errorf("%w: %w", ErrNoResponse, err)
	}

	return fmt.Errorf("%w: %v", ErrRequestSetup, err)
}

func outcomeOf(err error) string {
	if errors.Is(err, ErrNoResponse) {
		return outcomeNoResponse
	}
	return outcomeRequestSetup
}

func withPeriod(period domain.DateRange) func(*resty.Request) {
	return func(r *resty.Request) {
		r.SetQueryParams(map[string]string{
			"checkIn":  period.CheckIn.String(),
			"checkOut": period.CheckOut.String(),
		})
	}
}
