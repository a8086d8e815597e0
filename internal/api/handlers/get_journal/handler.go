package get_journal

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-HotelDashboard/internal/api/handlers"
	"github.com/m04kA/SMC-HotelDashboard/internal/domain"
	"github.com/m04kA/SMC-HotelDashboard/internal/infra/storage/journal"
)

const (
	msgJournalDisabled = "Jurnal yoqilmagan."
	msgInvalidAction   = "action faqat register yoki cancel bo‘lishi mumkin."
	msgInvalidLimit    = "limit musbat son bo‘lishi kerak."
)

type Handler struct {
	repo   JournalRepository
	logger Logger
}

func NewHandler(repo JournalRepository, logger Logger) *Handler {
	return &Handler{
		repo:   repo,
		logger: logger,
	}
}

// Handle GET /api/v1/journal?action=register|cancel&company=...&limit=N
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var filter domain.JournalFilter

	if raw := handlers.QueryString(r, "action"); raw != "" {
		action := domain.BookingAction(raw)
		if !action.IsValid() {
			h.logger.Warn("GET /journal - Invalid action: %q", raw)
			handlers.RespondBadRequest(w, msgInvalidAction)
			return
		}
		filter.Action = &action
	}

	if company := handlers.QueryString(r, "company"); company != "" {
		filter.CompanyName = &company
	}

	limit, err := handlers.QueryInt(r, "limit", 0)
	if err != nil || limit < 0 {
		h.logger.Warn("GET /journal - Invalid limit: limit=%d, error=%v", limit, err)
		handlers.RespondBadRequest(w, msgInvalidLimit)
		return
	}
	filter.Limit = uint64(limit)

	entries, err := h.repo.List(r.Context(), filter)
	if err != nil {
		if errors.Is(err, journal.ErrDisabled) {
			handlers.RespondNotFound(w, msgJournalDisabled)
			return
		}
		h.logger.Error("GET /journal - Failed to list journal: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromEntries(entries))
}
