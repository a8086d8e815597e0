package bookingflow

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-HotelDashboard/internal/domain"
	"github.com/m04kA/SMC-HotelDashboard/internal/integrations/hotelbackend"
	"github.com/m04kA/SMC-HotelDashboard/internal/usecase/bookingform"
	"github.com/m04kA/SMC-HotelDashboard/pkg/logger"
	"github.com/m04kA/SMC-HotelDashboard/pkg/requestid"
)

type journalStub struct {
	entries []*domain.JournalEntry
}

func (j *journalStub) Record(_ context.Context, entry *domain.JournalEntry) (*domain.JournalEntry, error) {
	j.entries = append(j.entries, entry)
	return entry, nil
}

type refresherStub struct {
	calls int
	err   error
}

func (r *refresherStub) Refresh(context.Context) error {
	r.calls++
	return r.err
}

func validForm() bookingform.Form {
	return bookingform.Form{
		GuestsCount: "2",
		CheckIn:     "2024-03-01",
		CheckOut:    "2024-03-02",
		CompanyName: "Acme",
		PhoneNumber: "90 123 45 67",
	}
}

func newFlow(action domain.BookingAction, j *journalStub, r *refresherStub) *Flow {
	return New(action, "Test", j, r, bookingform.NewParser("UZ", false), logger.NewNop())
}

func TestFlow_Run(t *testing.T) {
	for _, action := range []domain.BookingAction{domain.ActionRegister, domain.ActionCancel} {
		t.Run(string(action), func(t *testing.T) {
			journal := &journalStub{}
			rooms := &refresherStub{}

			var got domain.BookingRequest
			call := func(_ context.Context, req domain.BookingRequest) (string, error) {
				got = req
				return "ok", nil
			}

			ctx := requestid.NewContext(context.Background(), "req-7")
			result, err := newFlow(action, journal, rooms).Run(ctx, validForm(), call)
			require.NoError(t, err)

			assert.Equal(t, "ok", result.Message)
			assert.True(t, result.Refreshed)
			assert.Equal(t, "90 123 45 67", got.PhoneNumber)
			assert.Equal(t, 1, rooms.calls)

			require.Len(t, journal.entries, 1)
			assert.Equal(t, action, journal.entries[0].Action)
			assert.Equal(t, "req-7", journal.entries[0].RequestID)
			assert.True(t, journal.entries[0].Succeeded)
		})
	}
}

func TestFlow_Run_InvalidInput(t *testing.T) {
	journal := &journalStub{}
	rooms := &refresherStub{}
	calls := 0

	form := validForm()
	form.PhoneNumber = " "

	_, err := newFlow(domain.ActionCancel, journal, rooms).Run(context.Background(), form,
		func(context.Context, domain.BookingRequest) (string, error) {
			calls++
			return "", nil
		})

	assert.ErrorIs(t, err, ErrInvalidInput)
	assert.ErrorIs(t, err, bookingform.ErrInvalidInput)
	assert.Zero(t, calls)
	assert.Empty(t, journal.entries)
	assert.Zero(t, rooms.calls)
}

func TestFlow_Run_BackendError(t *testing.T) {
	journal := &journalStub{}
	rooms := &refresherStub{}

	_, err := newFlow(domain.ActionCancel, journal, rooms).Run(context.Background(), validForm(),
		func(context.Context, domain.BookingRequest) (string, error) {
			return "", &hotelbackend.ServerError{StatusCode: 404, Message: "Topilmadi"}
		})

	assert.ErrorIs(t, err, ErrBackend)
	var serverErr *hotelbackend.ServerError
	require.True(t, errors.As(err, &serverErr))

	assert.Zero(t, rooms.calls)
	require.Len(t, journal.entries, 1)
	assert.False(t, journal.entries[0].Succeeded)
	assert.Equal(t, "Topilmadi", journal.entries[0].Message)
}

func TestFlow_Run_RefreshFailure(t *testing.T) {
	rooms := &refresherStub{err: errors.New("timeout")}

	result, err := newFlow(domain.ActionRegister, &journalStub{}, rooms).Run(context.Background(), validForm(),
		func(context.Context, domain.BookingRequest) (string, error) { return "", nil })

	require.NoError(t, err)
	assert.False(t, result.Refreshed)
	assert.Empty(t, result.Message)
}
