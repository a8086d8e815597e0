package get_journal

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-HotelDashboard/internal/domain"
	"github.com/m04kA/SMC-HotelDashboard/internal/infra/storage/journal"
	"github.com/m04kA/SMC-HotelDashboard/pkg/logger"
)

type repoStub struct {
	got     domain.JournalFilter
	entries []*domain.JournalEntry
	err     error
}

func (r *repoStub) List(_ context.Context, filter domain.JournalFilter) ([]*domain.JournalEntry, error) {
	r.got = filter
	return r.entries, r.err
}

func TestHandle_Filter(t *testing.T) {
	repo := &repoStub{entries: []*domain.JournalEntry{{
		ID:          7,
		Action:      domain.ActionCancel,
		GuestsCount: 1,
		CheckIn:     domain.NewDate(2024, time.March, 1),
		CheckOut:    domain.NewDate(2024, time.March, 2),
		CompanyName: "Acme",
		Succeeded:   true,
		CreatedAt:   time.Date(2024, 3, 1, 8, 0, 0, 0, time.UTC),
	}}}
	h := NewHandler(repo, logger.NewNop())

	rec := httptest.NewRecorder()
	h.Handle(rec, httptest.NewRequest(http.MethodGet, "/api/v1/journal?action=cancel&company=Acme&limit=10", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, repo.got.Action)
	assert.Equal(t, domain.ActionCancel, *repo.got.Action)
	require.NotNil(t, repo.got.CompanyName)
	assert.Equal(t, "Acme", *repo.got.CompanyName)
	assert.Equal(t, uint64(10), repo.got.Limit)

	var resp []JournalEntryResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp, 1)
	assert.Equal(t, int64(7), resp[0].ID)
	assert.Equal(t, "2024-03-02", resp[0].CheckOut.String())
}

func TestHandle_NoFilter(t *testing.T) {
	repo := &repoStub{}
	rec := httptest.NewRecorder()
	NewHandler(repo, logger.NewNop()).Handle(rec, httptest.NewRequest(http.MethodGet, "/api/v1/journal", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Nil(t, repo.got.Action)
	assert.Nil(t, repo.got.CompanyName)
	assert.Zero(t, repo.got.Limit)
	assert.JSONEq(t, `[]`, rec.Body.String())
}

func TestHandle_Errors(t *testing.T) {
	tests := []struct {
		name   string
		query  string
		err    error
		status int
	}{
		{name: "unknown action", query: "?action=delete", status: http.StatusBadRequest},
		{name: "bad limit", query: "?limit=-5", status: http.StatusBadRequest},
		{name: "disabled", err: journal.ErrDisabled, status: http.StatusNotFound},
		{name: "db failure", err: errors.New("connection reset"), status: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			NewHandler(&repoStub{err: tt.err}, logger.NewNop()).
				Handle(rec, httptest.NewRequest(http.MethodGet, "/api/v1/journal"+tt.query, nil))
			assert.Equal(t, tt.status, rec.Code)
		})
	}
}
